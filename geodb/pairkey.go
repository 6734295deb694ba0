package geodb

// pairKey returns a canonical, order-independent key for an unordered pair
// of point names, used by every pair-indexed map (pairDir, pairMul, pairAdd,
// pairToLine).
func pairKey(a, b string) string {
	if a <= b {
		return a + "\x00" + b
	}
	return b + "\x00" + a
}

// tripleKey returns a canonical, order-independent key for an unordered
// triple of point names, used by tripleToCircle.
func tripleKey(a, b, c string) string {
	s := []string{a, b, c}
	// insertion sort: triples are always length 3, not worth sort.Strings overhead.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
	return s[0] + "\x00" + s[1] + "\x00" + s[2]
}

// thirdPartyOf reports whether a pairKey involves target, returning the
// other name in the pair.
func thirdPartyOf(key, target string) (string, bool) {
	for i := 0; i < len(key); i++ {
		if key[i] == 0 {
			a, b := key[:i], key[i+1:]
			switch target {
			case a:
				return b, true
			case b:
				return a, true
			default:
				return "", false
			}
		}
	}
	return "", false
}

// splitTripleKey splits a tripleKey back into its three names.
func splitTripleKey(key string) ([3]string, bool) {
	var out [3]string
	idx := 0
	start := 0
	for i := 0; i <= len(key); i++ {
		if i == len(key) || key[i] == 0 {
			if idx > 2 {
				return out, false
			}
			out[idx] = key[start:i]
			idx++
			start = i + 1
		}
	}
	return out, idx == 3
}

// additiveOrder returns the pair in canonical (lo, hi) order together with
// the sign that converts a length measured lo→hi into the length requested
// as a→b: +1 if a is already lo, -1 if the request is reversed. The signed
// length system's per-pair variable is always seeded and stored in the
// canonical lo→hi direction; call sites multiply by the returned sign when
// folding that variable into a locally-oriented equation.
func additiveOrder(a, b string) (lo, hi string, sign int64) {
	if a <= b {
		return a, b, 1
	}
	return b, a, -1
}
