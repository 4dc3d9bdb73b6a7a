package coord

// Direction is one of the four orthogonal headings. Y grows downwards,
// matching row indices of the text input.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all headings in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

var offsets = [4]Key{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Offset returns the unit step for d.
func (d Direction) Offset() Key {
	return offsets[d&3]
}

// TurnRight rotates d clockwise by 90 degrees.
func (d Direction) TurnRight() Direction { return (d + 1) & 3 }

// TurnLeft rotates d counter-clockwise by 90 degrees.
func (d Direction) TurnLeft() Direction { return (d + 3) & 3 }

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return (d + 2) & 3 }

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// Perpendicular returns the two headings at right angles to d.
func (d Direction) Perpendicular() [2]Direction {
	return [2]Direction{d.TurnLeft(), d.TurnRight()}
}

func (d Direction) String() string {
	switch d & 3 {
	case Up:
		return "U"
	case Right:
		return "R"
	case Down:
		return "D"
	default:
		return "L"
	}
}

// ParseDirection maps one of "U", "R", "D", "L" (or "^", ">", "v", "<")
// to its heading.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "U", "^", "N":
		return Up, true
	case "R", ">", "E":
		return Right, true
	case "D", "v", "S":
		return Down, true
	case "L", "<", "W":
		return Left, true
	}
	return 0, false
}
