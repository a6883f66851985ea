// Package board owns the placed items on the hex canvas.
//
// Every cell is in one of three states: empty, inert (placed but unnamed)
// or activated (named). The Store is the only place these transitions
// happen; callers go through Place, Activate, AttachFile and Remove.
package board
