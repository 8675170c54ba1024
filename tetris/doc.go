// Package tetris implements the per-board simulation of a falling block game.
//
// A Board owns a 12x20 grid whose outer columns and bottom row are walls, the
// falling (active) piece, the preview (incoming) piece, a handful of frame
// counters and its statistics. Board.Step advances a board by exactly one
// frame; the individual phases (Spawn, ApplyGravity, ResolveLateral,
// ResolveRotation, CheckCompletion, DeleteCompleteLines) are exported so
// they can be driven and tested on their own.
//
// The package has no global state and performs no I/O. Input and randomness
// are supplied through the Input and Random interfaces.
package tetris
