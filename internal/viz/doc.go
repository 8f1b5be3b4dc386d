// Package viz renders list snapshots and traces for the terminal.
//
//   - [Slots]: a strip of occupied and spare slots
//   - [StepLine]: one line per applied op
//   - [GrowthPlot]: count and capacity over a trace
//   - [Tree]: an ASCII tree dump of a snapshot
//
// Colors come from a [Theme]; see [ThemeNames] for the built-in ones.
package viz
