// Package interact turns pointer and drag-and-drop input into board
// mutations. It owns click-versus-drag disambiguation, hover highlighting
// and hit testing of screen points against the grid.
package interact
