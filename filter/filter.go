package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/willf/bitset"
)

// MaxWidth bounds the width of every filter: 32 + 32 + 16 + 16 + 8 bits,
// the widest key the target match stage accepts.
const MaxWidth = 32 + 32 + 16 + 16 + 8

// Bit is the tri-state value of a single filter position.
type Bit uint8

const (
	// One requires the packet bit to be set.
	One Bit = iota
	// Zero requires the packet bit to be clear.
	Zero
	// Any matches regardless of the packet bit.
	Any
)

// String returns the conventional single-character spelling of b.
func (b Bit) String() string {
	switch b {
	case One:
		return "1"
	case Zero:
		return "0"
	default:
		return "*"
	}
}

// Sentinel errors for filter construction.
var (
	// ErrWidthMismatch is returned when value and mask differ in length.
	ErrWidthMismatch = errors.New("filter: value and mask must have equal length")

	// ErrWidthRange is returned when the requested width is 0 or exceeds MaxWidth.
	ErrWidthRange = errors.New("filter: width out of range")

	// ErrBadSymbol is returned by Parse for characters outside {0, 1, *}.
	ErrBadSymbol = errors.New("filter: ternary string may contain only '0', '1' and '*'")
)

// Filter is a ternary match rule of fixed maximum width.
//
// The representation is canonical: value bits outside the mask are kept
// clear, so two filters are equal iff their tri-state projections are.
type Filter struct {
	value *bitset.BitSet
	mask  *bitset.BitSet
	width int
}

// New builds a Filter from two equal-length, least-significant-first bit
// sequences. Value bits at masked-out positions are discarded.
// Returns ErrWidthMismatch or ErrWidthRange on malformed input.
func New(value, mask []bool) (Filter, error) {
	if len(value) != len(mask) {
		return Filter{}, ErrWidthMismatch
	}
	if len(value) == 0 || len(value) > MaxWidth {
		return Filter{}, fmt.Errorf("%w: %d", ErrWidthRange, len(value))
	}

	f := Filter{
		value: bitset.New(uint(len(value))),
		mask:  bitset.New(uint(len(value))),
		width: len(value),
	}
	for i := range value {
		if mask[i] {
			f.mask.Set(uint(i))
			if value[i] {
				f.value.Set(uint(i))
			}
		}
	}

	return f, nil
}

// Parse builds a Filter from a ternary literal such as "1*00",
// position 0 first. Returns ErrBadSymbol on any other character and the
// New validation errors on bad width.
func Parse(s string) (Filter, error) {
	value := make([]bool, len(s))
	mask := make([]bool, len(s))
	for i, c := range s {
		switch c {
		case '1':
			value[i] = true
			mask[i] = true
		case '0':
			mask[i] = true
		case '*':
			// don't-care: mask stays clear
		default:
			return Filter{}, fmt.Errorf("%w: %q", ErrBadSymbol, c)
		}
	}

	return New(value, mask)
}

// MustParse is Parse for literals known to be well-formed; it panics on
// error. Intended for tests and examples.
func MustParse(s string) Filter {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return f
}

// Width reports the runtime width of the filter.
func (f Filter) Width() int {
	return f.width
}

// Bit returns the tri-state value at position i. The caller guarantees
// 0 ≤ i < Width().
func (f Filter) Bit(i int) Bit {
	if !f.mask.Test(uint(i)) {
		return Any
	}
	if f.value.Test(uint(i)) {
		return One
	}

	return Zero
}

// Equal reports whether f and g have identical tri-state projections.
func (f Filter) Equal(g Filter) bool {
	return f.width == g.width && f.mask.Equal(g.mask) && f.value.Equal(g.value)
}

// String renders the filter as a ternary literal, position 0 first.
func (f Filter) String() string {
	var sb strings.Builder
	sb.Grow(f.width)
	for i := 0; i < f.width; i++ {
		sb.WriteString(f.Bit(i).String())
	}

	return sb.String()
}

// Intersect reports whether a and b are compatible at every position in
// bits — that is, no position in bits has both masks set with differing
// values. Commutative; O(|bits|).
func Intersect(a, b Filter, bits []int) bool {
	for _, i := range bits {
		u := uint(i)
		if a.mask.Test(u) && b.mask.Test(u) && a.value.Test(u) != b.value.Test(u) {
			return false
		}
	}

	return true
}
