package rfc791

import "encoding/binary"

// Sum16 is the checksum function as defined by RFC 791: the 16-bit ones'
// complement of the ones' complement sum of all 16-bit words in the data.
// For purposes of computing the checksum, the value of the checksum field
// itself is zero. Uneven data is padded automatically.
func Sum16(data []byte) uint16 {
	var sum uint32
	n := len(data) / 2
	if len(data)%2 != 0 {
		sum += uint32(data[len(data)-1]) << 8
	}
	for i := 0; i < n; i++ {
		sum += uint32(binary.BigEndian.Uint16(data[i*2 : i*2+2]))
	}
	for sum > 0xffff {
		sum = sum&0xffff + sum>>16
	}
	return ^uint16(sum)
}
