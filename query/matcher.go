package query

// Matches reports whether key is admitted by expr. Keys are array indices in
// decimal form or object keys.
func Matches(key string, expr IndexExpr) bool {
	return matchKey(ParseKey(key), expr)
}

// matchKey treats a nil expr as Wildcard, matching how Generic{} prints.
func matchKey(k Key, expr IndexExpr) bool {
	switch e := expr.(type) {
	case nil, Wildcard:
		return true
	case Slice:
		return matchSlice(k, e)
	}
	return false
}

// matchSlice evaluates slicers in order and stops at the first that admits k.
// A SliceFrom only takes effect together with the SliceTo that follows it.
func matchSlice(k Key, slicers Slice) bool {
	for i := 0; i < len(slicers); i++ {
		switch s := slicers[i].(type) {
		case Index:
			if k.Equal(IndexKey(uint64(s))) {
				return true
			}
		case SliceFrom:
			if i+1 >= len(slicers) {
				return false
			}
			to, ok := slicers[i+1].(SliceTo)
			if !ok {
				continue
			}
			i++
			if k.between(uint64(s), uint64(to)) {
				return true
			}
		case SliceTo:
			// closes a range handled with its SliceFrom
		case Ident:
			if k.Equal(ParseKey(string(s))) {
				return true
			}
		}
	}
	return false
}
