package jnet

import (
	"encoding/binary"

	"github.com/isgasho/jnet/rfc791"
)

// ICMP message logic.

// ICMPHeaderLen is the length of an echo message header: type, code,
// checksum, identifier and sequence number.
const ICMPHeaderLen = 8

type ICMPType uint8

const (
	ICMPTypeEchoReply   ICMPType = 0
	ICMPTypeEchoRequest ICMPType = 8
)

// An ICMP is a typed view of an ICMP message over a caller owned buffer,
// usually the payload of an IPv4 view.
type ICMP struct {
	data []byte
}

// ParseICMP validates buf as an ICMP message long enough to carry an echo
// header.
func ParseICMP(buf []byte) (ICMP, error) {
	if len(buf) < ICMPHeaderLen {
		return ICMP{}, ErrShortFrame
	}
	return ICMP{data: buf}, nil
}

func (m ICMP) Type() ICMPType   { return ICMPType(m.data[0]) }
func (m ICMP) Code() uint8      { return m.data[1] }
func (m ICMP) Checksum() uint16 { return binary.BigEndian.Uint16(m.data[2:4]) }

// Identifier and Sequence are meaningful for echo messages only.
func (m ICMP) Identifier() uint16 { return binary.BigEndian.Uint16(m.data[4:6]) }
func (m ICMP) Sequence() uint16   { return binary.BigEndian.Uint16(m.data[6:8]) }

// Payload returns the opaque echo data past the header. The slice aliases
// the parsed buffer.
func (m ICMP) Payload() []byte { return m.data[ICMPHeaderLen:] }

// IsEchoRequest reports whether the message is one this stack answers.
func (m ICMP) IsEchoRequest() bool {
	return m.Type() == ICMPTypeEchoRequest && m.Code() == 0
}

// SetEchoReply converts an echo request into its reply in place.
// Identifier, sequence number and payload bytes are untouched; the
// checksum is recomputed over the whole message.
func (m ICMP) SetEchoReply() {
	m.data[0] = byte(ICMPTypeEchoReply)
	m.data[2] = 0
	m.data[3] = 0
	binary.BigEndian.PutUint16(m.data[2:4], rfc791.Sum16(m.data))
}

func (m ICMP) String() string {
	return strcat("ICMP type ", u32toa(uint32(m.Type())), " id ", u32toa(uint32(m.Identifier())),
		" seq ", u32toa(uint32(m.Sequence())))
}
