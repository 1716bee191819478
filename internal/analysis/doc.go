// Package analysis runs trajectories and builds phase-space views of the
// teaching systems.
//
//   - [Simulate]: fixed-step integration with cancellation and NaN guards
//   - [GeneratePortrait]: 2D phase portrait with nullcline and
//     fixed-point overlays
//   - [EquilibriumSweep]: records how equilibria move and change
//     stability as one parameter varies
package analysis
