package jnet

import (
	"encoding/binary"

	"github.com/isgasho/jnet/rfc791"
	"github.com/soypat/net"
)

// IPv4 header logic.

const (
	IPHEADER_FLAG_DONTFRAGMENT  = 0x4000
	IPHEADER_FLAG_MOREFRAGMENTS = 0x8000
	IPHEADER_VERSION_4          = 4
	IPHEADER_PROTOCOL_ICMP      = 1
	IPHEADER_PROTOCOL_TCP       = 6
	IPHEADER_PROTOCOL_UDP       = 17
)

// IPv4HeaderLen is the length of a header carrying no options, the only
// profile this stack emits.
const IPv4HeaderLen = 20

// See https://hpd.gasmi.net/ to decode Hex Frames

// An IPv4 is a typed view of an IPv4 packet over a caller owned buffer,
// clipped to the header's declared total length.
type IPv4 struct {
	data []byte
}

// ParseIPv4 validates the fixed header fields of buf and returns a view
// clipped to the declared total length. Trailing link layer padding past
// the total length is tolerated; a total length pointing past the buffer
// or inside its own header is rejected.
func ParseIPv4(buf []byte) (IPv4, error) {
	if len(buf) < IPv4HeaderLen {
		return IPv4{}, ErrShortFrame
	}
	if buf[0]>>4 != IPHEADER_VERSION_4 {
		return IPv4{}, ErrIPVersion
	}
	headerLen := int(buf[0]&0x0f) * 4
	totalLen := int(binary.BigEndian.Uint16(buf[2:4]))
	if headerLen < IPv4HeaderLen || totalLen < headerLen || totalLen > len(buf) {
		return IPv4{}, ErrIPLength
	}
	return IPv4{data: buf[:totalLen]}, nil
}

func (ip IPv4) Version() uint8 { return ip.data[0] >> 4 }

// HeaderLength returns the header length in octets as declared by the IHL
// field.
func (ip IPv4) HeaderLength() int { return int(ip.data[0]&0x0f) * 4 }

func (ip IPv4) TotalLength() uint16 { return binary.BigEndian.Uint16(ip.data[2:4]) }
func (ip IPv4) ID() uint16          { return binary.BigEndian.Uint16(ip.data[4:6]) }
func (ip IPv4) Flags() IPFlags      { return IPFlags(binary.BigEndian.Uint16(ip.data[6:8])) }
func (ip IPv4) TTL() uint8          { return ip.data[8] }
func (ip IPv4) Protocol() uint8     { return ip.data[9] }
func (ip IPv4) Checksum() uint16    { return binary.BigEndian.Uint16(ip.data[10:12]) }

// Source IPv4 Address
func (ip IPv4) Source() net.IP { return ip.data[12:16] }

// Destination IPv4 Address
func (ip IPv4) Destination() net.IP { return ip.data[16:20] }

// Payload returns the contents past the header up to the declared total
// length. The slice aliases the parsed buffer.
func (ip IPv4) Payload() []byte { return ip.data[ip.HeaderLength():] }

func (ip IPv4) String() string {
	return "IPv4 " + ip.Source().String() + "->" + ip.Destination().String()
}

// RecomputeChecksum overwrites the header checksum field with the RFC 791
// checksum of the current header bytes. Must be called after replacing
// the source or destination address.
func (ip IPv4) RecomputeChecksum() {
	ip.data[10] = 0
	ip.data[11] = 0
	binary.BigEndian.PutUint16(ip.data[10:12], rfc791.Sum16(ip.data[:ip.HeaderLength()]))
}

func (ip IPv4) Set() IPv4Set {
	return IPv4Set{ip: ip}
}

type IPv4Set struct {
	ip IPv4
}

func (s IPv4Set) Source(addr net.IP)      { copy(s.ip.data[12:16], addr) }
func (s IPv4Set) Destination(addr net.IP) { copy(s.ip.data[16:20], addr) }

type IPFlags uint16

func (f IPFlags) DontFragment() bool     { return f&IPHEADER_FLAG_DONTFRAGMENT != 0 }
func (f IPFlags) MoreFragments() bool    { return f&IPHEADER_FLAG_MOREFRAGMENTS != 0 }
func (f IPFlags) FragmentOffset() uint16 { return uint16(f) & 0x1fff }
