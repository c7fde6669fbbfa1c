package geometry

import "math"

// ResolutionKind tells why a cell range was or was not resolved.
type ResolutionKind uint8

const (
	// Unresolved means the geometry was degenerate (no cells, zero width)
	// or the anchor itself lies outside the row.
	Unresolved ResolutionKind = iota
	// OutsideVertical means the current point left the row vertically.
	OutsideVertical
	// Resolved means both endpoints map to cells.
	Resolved
)

// String returns a string representation of the kind.
func (k ResolutionKind) String() string {
	switch k {
	case OutsideVertical:
		return "outside-vertical"
	case Resolved:
		return "resolved"
	default:
		return "unresolved"
	}
}

// CellRange is an ordered pair of cell indices. Both are NoCell when the
// range is unresolved.
type CellRange struct {
	StartIdx int
	EndIdx   int
}

// NoRange is the sentinel range.
var NoRange = CellRange{StartIdx: NoCell, EndIdx: NoCell}

// IsValid reports whether both indices are set.
func (r CellRange) IsValid() bool {
	return r.StartIdx != NoCell && r.EndIdx != NoCell
}

// Len returns the number of cells covered, or 0 for the sentinel range.
func (r CellRange) Len() int {
	if !r.IsValid() {
		return 0
	}
	return r.EndIdx - r.StartIdx + 1
}

// Contains reports whether idx lies inside a valid range.
func (r CellRange) Contains(idx int) bool {
	return r.IsValid() && idx >= r.StartIdx && idx <= r.EndIdx
}

// Resolution is the tagged result of resolving a drag against a row.
type Resolution struct {
	Kind  ResolutionKind
	cells CellRange
}

// Range returns the resolved cells, or NoRange when Kind is not Resolved.
func (r Resolution) Range() CellRange {
	if r.Kind != Resolved {
		return NoRange
	}
	return r.cells
}

// SlotWidth returns the width of one cell. It returns 0 when cellCount is
// not positive; callers must guard against that.
func SlotWidth(row Box, cellCount int) float64 {
	if cellCount <= 0 {
		return 0
	}
	return (row.Right - row.Left) / float64(cellCount)
}

// CellAtX maps x to a cell index, mirrored when rtl is set and clamped to
// [0, cellCount-1]. It returns NoCell only when cellCount is not positive.
func CellAtX(row Box, x, slotWidth float64, rtl bool, cellCount int) int {
	if cellCount <= 0 {
		return NoCell
	}
	last := cellCount - 1

	f := math.Floor((x - row.Left) / slotWidth)
	// Clamp in float space; converting an out-of-range float to int is
	// implementation-defined.
	var raw int
	switch {
	case math.IsNaN(f):
		raw = 0
	case f < 0:
		raw = 0
	case f > float64(last):
		raw = last
	default:
		raw = int(f)
	}

	if rtl {
		raw = last - raw
	}
	return clamp(raw, 0, last)
}

// ResolveDateCells resolves the anchor and the current drag position to an
// ascending cell range within row.
func ResolveDateCells(anchor Point, row Box, current Box, cellCount int, rtl bool) Resolution {
	width := SlotWidth(row, cellCount)
	if cellCount <= 0 || !(width > 0) || math.IsInf(width, 0) {
		return Resolution{Kind: Unresolved}
	}
	if !inRowBand(row, current.Y) {
		return Resolution{Kind: OutsideVertical}
	}
	if !inRowBand(row, anchor.Y) {
		return Resolution{Kind: Unresolved}
	}

	start := CellAtX(row, anchor.X, width, rtl, cellCount)
	end := CellAtX(row, current.X, width, rtl, cellCount)
	if end < start {
		start, end = end, start
	}
	return Resolution{Kind: Resolved, cells: CellRange{StartIdx: start, EndIdx: end}}
}

// DateCellSelection is ResolveDateCells collapsed to a plain range: any
// unresolved outcome becomes NoRange.
func DateCellSelection(anchor Point, row Box, current Box, cellCount int, rtl bool) CellRange {
	return ResolveDateCells(anchor, row, current, cellCount, rtl).Range()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
