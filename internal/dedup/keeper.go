package dedup

// SelectKeeper returns the member of g to keep: for each extension in keep,
// in priority order, the first member whose extension matches it
// case-insensitively. ok is false when no member matches any keep
// extension; the group must then be left untouched.
//
// Case folding is ASCII-only: "JPG" matches "jpg", but non-ASCII letters
// must match exactly.
//
// When several members share the winning extension (possible only on
// case-sensitive filesystems, e.g. "a.JPG" and "a.jpg"), the first in
// listing order wins.
func SelectKeeper(g FileGroup, keep []string) (keeper Entry, ok bool) {
	for _, want := range keep {
		for _, e := range g.Entries {
			if equalFoldASCII(e.Ext, want) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Discards returns every member of g other than keeper, in group order.
func Discards(g FileGroup, keeper Entry) []Entry {
	var out []Entry
	for _, e := range g.Entries {
		if e.Path != keeper.Path {
			out = append(out, e)
		}
	}
	return out
}

// equalFoldASCII reports whether a and b are equal under ASCII case folding.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
