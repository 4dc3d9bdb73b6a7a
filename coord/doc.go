// Package coord provides the identity types shared by every grid in lvlgrid.
//
// What:
//
//   - Key is a comparable (x, y) pair used directly as a map key. Two keys are
//     equal exactly when both components are equal, so no separator or
//     string encoding can ever collide ({1,23} and {12,3} stay distinct).
//   - State[S] folds one extra discrete dimension (a direction, a remaining
//     run length, ...) into a key for visited-sets and cost maps.
//   - Direction enumerates the four orthogonal headings with their offsets.
//
// Coordinates are unbounded signed integers; negative values are normal after
// grid-growth operations.
//
// Errors:
//
//   - ErrMalformedKey: Parse was given text that is not "x,y".
package coord
