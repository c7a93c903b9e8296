package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule is returned for rule strings that cannot drive a sparse
// world.
var ErrInvalidRule = errors.New("invalid rule")

// Rule is an outer-totalistic Life-like rule: the neighbour counts that give
// birth to a dead cell and those that keep a live cell alive.
type Rule struct {
	birth   uint16
	survive uint16
}

// Conway is B3/S23.
var Conway = Rule{birth: 1 << 3, survive: 1<<2 | 1<<3}

// HighLife is B36/S23.
var HighLife = Rule{birth: 1<<3 | 1<<6, survive: 1<<2 | 1<<3}

// ParseRule reads B/S notation such as "B3/S23". Counts must be in 1..8:
// a 0 in either set would make empty space or isolated cells significant,
// which a sparse world only tracking neighbours of live cells cannot express.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w %q: want B<digits>/S<digits>", ErrInvalidRule, s)
	}
	var r Rule
	seen := make(map[byte]bool, 2)
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("%w %q: empty section", ErrInvalidRule, s)
		}
		if seen[part[0]] {
			return Rule{}, fmt.Errorf("%w %q: repeated section %q", ErrInvalidRule, s, part[:1])
		}
		seen[part[0]] = true
		var mask *uint16
		switch part[0] {
		case 'B':
			mask = &r.birth
		case 'S':
			mask = &r.survive
		default:
			return Rule{}, fmt.Errorf("%w %q: unknown section %q", ErrInvalidRule, s, part)
		}
		for _, ch := range part[1:] {
			if ch < '1' || ch > '8' {
				return Rule{}, fmt.Errorf("%w %q: neighbour count %q out of range", ErrInvalidRule, s, ch)
			}
			*mask |= 1 << (ch - '0')
		}
	}
	if r.birth == 0 {
		return Rule{}, fmt.Errorf("%w %q: no birth counts", ErrInvalidRule, s)
	}
	return r, nil
}

// MustParseRule is ParseRule for rule literals known to be valid.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// IsZero reports whether r is the zero value.
func (r Rule) IsZero() bool { return r.birth == 0 && r.survive == 0 }

// Next reports whether a cell with the given state and live neighbour count
// is alive in the following generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.survive&(1<<neighbors) != 0
	}
	return r.birth&(1<<neighbors) != 0
}

// String renders r in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.birth)
	b.WriteString("/S")
	writeCounts(&b, r.survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
}
