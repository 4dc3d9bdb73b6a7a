// Package cycle finds the period of a deterministic grid simulation so that
// an enormous iteration count can be answered from a short prefix.
//
// Detect applies step to a working copy of the grid and snapshots the state
// after every application. When the state after step i equals the snapshot
// after step j < i (sparsegrid Equals, defaults included), the simulation is
// periodic with Start j and Length i-j, and the state after any n ≥ Start
// steps is the snapshot at Start + (n-Start) mod Length.
//
// By default each new state is compared against every earlier snapshot,
// O(period²) comparisons in total. WithHashing indexes snapshots by a
// deephash digest of their canonical cell list and only confirms digest
// hits with Equals, which keeps detection linear. Hashing assumes the
// grid's default provider does not depend on grid content.
package cycle
