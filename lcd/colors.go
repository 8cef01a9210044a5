package lcd

// ColorIter is a pull iterator over colors; ok is false once exhausted.
type ColorIter func() (c RGB565, ok bool)

// Repeat returns an endless sequence of c.
func Repeat(c RGB565) ColorIter {
	return func() (RGB565, bool) { return c, true }
}

// Colors returns the elements of s in order.
func Colors(s []RGB565) ColorIter {
	i := 0
	return func() (RGB565, bool) {
		if i >= len(s) {
			return RGB565{}, false
		}
		c := s[i]
		i++
		return c, true
	}
}
