package catalog

import "unicode/utf16"

// dateHash is the 32-bit signed polynomial rolling hash (h = h*31 + c) over the
// UTF-16 code units of s. int32 arithmetic wraps, which is the required behavior.
func dateHash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	return h
}

// pickIndex maps a hash onto [0, n). The absolute value is taken in 64 bits so
// that math.MinInt32 stays positive.
func pickIndex(h int32, n int) int {
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % int64(n))
}
