package query

import "strconv"

// Key is an object key or array index prepared for comparison. A key that
// parses as an unsigned integer compares numerically; any other key only
// supports equality.
type Key struct {
	text    string
	n       uint64
	numeric bool
}

// ParseKey prepares s for comparison.
func ParseKey(s string) Key {
	n, err := parseIndex(s)
	return Key{text: s, n: n, numeric: err == nil}
}

// IndexKey returns the key of an array position.
func IndexKey(i uint64) Key {
	return Key{text: strconv.FormatUint(i, 10), n: i, numeric: true}
}

func (k Key) String() string { return k.text }

// Uint returns the numeric value of the key, if any.
func (k Key) Uint() (uint64, bool) {
	return k.n, k.numeric
}

// Compare orders k against o. The boolean is false when either key is not
// numeric: such keys are incomparable and never fall back to lexical order.
func (k Key) Compare(o Key) (int, bool) {
	if !k.numeric || !o.numeric {
		return 0, false
	}
	switch {
	case k.n < o.n:
		return -1, true
	case k.n > o.n:
		return 1, true
	}
	return 0, true
}

// Equal reports whether two keys name the same member: numerically when both
// are numeric, by literal text when neither is. Mixed keys are never equal.
func (k Key) Equal(o Key) bool {
	if k.numeric != o.numeric {
		return false
	}
	if k.numeric {
		return k.n == o.n
	}
	return k.text == o.text
}

// between reports lo <= k <= hi.
func (k Key) between(lo, hi uint64) bool {
	return k.numeric && lo <= k.n && k.n <= hi
}
