package jnet

import (
	"fmt"
	"io"

	"github.com/soypat/net"
)

func IsEOF(err error) bool {
	return err == io.EOF
}

func u32toa(u uint32) string {
	return fmt.Sprintf("%d", u)
}

// local string concatenation primitive which
// can be replaced with a no-heap version for weeding
// out heap allocations in this package.
func strcat(s ...string) (out string) {
	if len(s) == 0 {
		return ""
	}
	for i := range s {
		out += s[i]
	}
	return out
}

// bytesAreAll returns true if b is composed of only unit bytes
func bytesAreAll(b []byte, unit byte) bool {
	for i := range b {
		if b[i] != unit {
			return false
		}
	}
	return true
}

// isBroadcast reports whether mac is the all-ones link layer address.
func isBroadcast(mac net.HardwareAddr) bool {
	return bytesAreAll(mac, 0xff)
}

// isUnspecified reports whether ip is the all-zero address, the sentinel
// a host announces interest in an address with before it owns one.
func isUnspecified(ip net.IP) bool {
	return bytesAreAll(ip, 0)
}
