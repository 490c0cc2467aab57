package bytealg

import "bytes"

// String converts b byte slice to string.
//go:inline
func String(b []byte) string {
	return string(b)
}

var Equal = bytes.Equal

// Swap provides in place byte slice swap
func Swap(a, b []byte) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		a[i], b[i] = b[i], a[i]
	}
}
