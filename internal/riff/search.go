package riff

// Index locates the first occurrence of needle in hay at or after start,
// returning its byte offset, or -1 when there is none. It uses the
// Boyer-Moore-Horspool algorithm: a 256-entry table gives the skip
// distance for the byte under the end of the candidate window, so every
// mismatch advances the window by at least one position.
//
// An empty needle matches immediately at start. A window that would
// extend past the end of hay never matches; no byte outside hay is read.
func Index(hay, needle []byte, start int) int {
	if start < 0 {
		start = 0
	}
	n := len(needle)
	if n == 0 {
		if start > len(hay) {
			return -1
		}
		return start
	}
	if start+n > len(hay) {
		return -1
	}

	var skip [256]int
	for i := range skip {
		skip[i] = n
	}
	for i := 0; i < n-1; i++ {
		skip[needle[i]] = n - i - 1
	}

	for k := start + n - 1; k < len(hay); k += skip[hay[k]] {
		i, j := k, n-1
		for j >= 0 && hay[i] == needle[j] {
			i--
			j--
		}
		if j < 0 {
			return i + 1
		}
	}
	return -1
}
