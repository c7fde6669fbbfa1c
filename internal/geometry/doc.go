// Package geometry maps pointer coordinates onto a single row of equally
// sized cells.
//
// All functions are pure. Coordinates are in the host's space; the host is
// responsible for normalizing them (terminal columns, pixels, ...).
//
// # Cell Resolution
//
// A row of n cells spanning [Left, Right] has slots of width (Right-Left)/n.
// A coordinate x falls into cell floor((x-Left)/width), mirrored as
// n-1-cell for right-to-left layouts, and clamped to [0, n-1]:
//
//	width := geometry.SlotWidth(row, 7)
//	idx := geometry.CellAtX(row, p.X, width, rtl, 7)
//
// A coordinate exactly on a boundary belongs to the cell on its right in
// left-to-right layouts. Horizontal overshoot clamps to the first or last
// cell; only leaving the row vertically produces no cell.
//
// # Sentinels
//
// NoCell (-1) marks an index that could not be resolved. ResolveDateCells
// reports why through Resolution.Kind, while DateCellSelection collapses
// every failure into the sentinel range {-1, -1}.
package geometry
