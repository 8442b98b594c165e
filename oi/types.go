package oi

import "errors"

// Mode selects the bit-removal signal used by BestToStayMinME.
type Mode int

const (
	// ModeMaxOI scores a candidate column by the size of the maximal OI
	// subset that survives removing it.
	ModeMaxOI Mode = iota

	// ModeBlockers scores a candidate column by how many filters gain a
	// blocker when it is removed.
	ModeBlockers
)

// String names the mode for logs.
func (m Mode) String() string {
	switch m {
	case ModeMaxOI:
		return "max_oi"
	case ModeBlockers:
		return "blockers"
	default:
		return "unknown"
	}
}

// Sentinel errors for caller-side validation.
var (
	// ErrNoFilters is returned when the filter list is empty.
	ErrNoFilters = errors.New("oi: filter list must be non-empty")

	// ErrTargetWidth is returned when the requested width is negative or
	// exceeds the filter width.
	ErrTargetWidth = errors.New("oi: target width out of range")

	// ErrUnknownMode is returned for a Mode outside the declared
	// constants.
	ErrUnknownMode = errors.New("oi: unknown reduction mode")
)
