package jnet

import (
	"encoding/binary"

	"github.com/isgasho/jnet/bytealg"
)

// UDP packet logic.

const UDPHeaderLen = 8

// A UDP is a typed view of a UDP packet over a caller owned buffer,
// clipped to the header's declared length.
type UDP struct {
	data []byte
}

// ParseUDP validates buf as a UDP packet and clips the view to the
// declared length. A length field shorter than the header or longer than
// the buffer is rejected.
func ParseUDP(buf []byte) (UDP, error) {
	if len(buf) < UDPHeaderLen {
		return UDP{}, ErrShortFrame
	}
	length := int(binary.BigEndian.Uint16(buf[4:6]))
	if length < UDPHeaderLen || length > len(buf) {
		return UDP{}, ErrUDPLength
	}
	return UDP{data: buf[:length]}, nil
}

func (u UDP) SourcePort() uint16      { return binary.BigEndian.Uint16(u.data[0:2]) }
func (u UDP) DestinationPort() uint16 { return binary.BigEndian.Uint16(u.data[2:4]) }
func (u UDP) Length() uint16          { return binary.BigEndian.Uint16(u.data[4:6]) }

// Checksum returns the checksum field; 0 means the sender disabled it,
// which UDP over IPv4 allows.
func (u UDP) Checksum() uint16 { return binary.BigEndian.Uint16(u.data[6:8]) }

// Payload returns the datagram contents past the header. The slice
// aliases the parsed buffer.
func (u UDP) Payload() []byte { return u.data[UDPHeaderLen:] }

// SetEcho rewrites the packet in place into the echo of itself: ports
// swapped, payload untouched. The checksum is disabled rather than
// recomputed, valid over IPv4.
func (u UDP) SetEcho() {
	bytealg.Swap(u.data[0:2], u.data[2:4])
	u.data[6] = 0
	u.data[7] = 0
}

func (u UDP) String() string {
	return strcat("UDP ", u32toa(uint32(u.SourcePort())), "->", u32toa(uint32(u.DestinationPort())),
		" len ", u32toa(uint32(u.Length())))
}
