package clipslice

// By returns the sub-slice of s selected by r, with each endpoint clipped
// via [Clip]. The result shares s's backing array, so writes through it are
// visible in s. By panics if a bounded range clips to start > end.
func By[E any](s []E, r Range) []E {
	start, end := Bounds(r, len(s))
	return s[start:end]
}
