package jnet

// The accessor layout below was taken from github.com/mdlayher/ethernet and
// adapted for in-place use. All credit to mdlayher and the ethernet Authors

import (
	"encoding/binary"

	"github.com/isgasho/jnet/bytealg"
	"github.com/isgasho/jnet/hex"
	"github.com/soypat/net"
)

// Ethernet frame logic.

// EthernetHeaderLen is the length of an Ethernet II header carrying no
// 802.1Q VLAN tag. The 4 byte trailing CRC is assumed stripped by the
// link layer and is never part of a frame view.
const EthernetHeaderLen = 14

var (
	// Broadcast is a special hardware address which indicates a Frame should
	// be sent to every device on a given LAN segment.
	Broadcast = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
)

// An EtherType is a value used to identify an upper layer protocol
// encapsulated in a Frame.
//
// A list of IANA-assigned EtherType values may be found here:
// http://www.iana.org/assignments/ieee-802-numbers/ieee-802-numbers.xhtml.
type EtherType uint16

// Common EtherType values frequently used in a Frame.
const (
	EtherTypeIPv4 EtherType = 0x0800
	EtherTypeARP  EtherType = 0x0806
	EtherTypeIPv6 EtherType = 0x86DD

	// EtherTypeVLAN is used as the 802.1Q Tag Protocol Identifier (TPID).
	EtherTypeVLAN EtherType = 0x8100
)

// An Ethernet is a typed view of an IEEE 802.3 Ethernet II frame over a
// caller owned buffer. Parsing copies nothing; mutating the view through
// Set mutates the underlying buffer.
type Ethernet struct {
	data []byte
}

// ParseEthernet validates buf as an Ethernet II frame and returns a view
// over it. The only structural requirement at this layer is the minimum
// header length.
func ParseEthernet(buf []byte) (Ethernet, error) {
	if len(buf) < EthernetHeaderLen {
		return Ethernet{}, ErrShortFrame
	}
	return Ethernet{data: buf}, nil
}

func (f Ethernet) Destination() net.HardwareAddr {
	return f.data[0:6]
}
func (f Ethernet) Source() net.HardwareAddr {
	return f.data[6:12]
}

func (f Ethernet) EtherType() EtherType {
	return EtherType(binary.BigEndian.Uint16(f.data[12:14]))
}

func (f Ethernet) IsVLAN() bool { return f.EtherType() == EtherTypeVLAN }

// Payload returns the frame contents past the header. The slice aliases
// the parsed buffer.
func (f Ethernet) Payload() []byte { return f.data[EthernetHeaderLen:] }

// Bytes returns the whole frame as it sits on the wire, same length as
// the buffer it was parsed from.
func (f Ethernet) Bytes() []byte { return f.data }

func (f Ethernet) String() string {
	var vlanstr string
	if f.IsVLAN() {
		vlanstr = "(VLAN)"
	}
	return strcat("dst: ", f.Destination().String(), ", ",
		"src: ", f.Source().String(), ", ",
		"etype: ", bytealg.String(append(hex.Byte(byte(f.EtherType()>>8)), hex.Byte(byte(f.EtherType()))...)), vlanstr)
}

func (f Ethernet) Set() EthernetSet {
	return EthernetSet{eth: f}
}

type EthernetSet struct {
	eth Ethernet
}

func (e EthernetSet) Destination(MAC net.HardwareAddr) { copy(e.eth.Destination(), MAC) }
func (e EthernetSet) Source(MAC net.HardwareAddr)      { copy(e.eth.Source(), MAC) }

func (e EthernetSet) EtherType(et EtherType) {
	binary.BigEndian.PutUint16(e.eth.data[12:14], uint16(et))
}
