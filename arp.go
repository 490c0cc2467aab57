package jnet

import (
	"encoding/binary"

	"github.com/isgasho/jnet/bytealg"
	"github.com/soypat/net"
)

// ARP packet logic.

/* ARP Frame (Address resolution protocol)
see https://www.youtube.com/watch?v=aamG4-tH_m8

Legend:
	HW:    Hardware
	AT:    Address type
	AL:    Address Length
	AoS:   Address of sender
	AoT:   Address of Target
	Proto: Protocol (below is ipv4 example)
0      2          4       5          6         8       14          18       24          28
| HW AT | Proto AT | HW AL | Proto AL | OP Code | HW AoS | Proto AoS | HW AoT | Proto AoT |
|  2B   |  2B      |  1B   |  1B      | 2B      |   6B   |    4B     |  6B    |   4B
| ethern| IP       |macaddr|          |ask|reply|                    |for op=1|
| = 1   |=0x0800   |=6     |=4        | 1 | 2   |       known        |=0      |
*/

// ARPHeaderLen is the wire size of an IPv4-over-Ethernet ARP packet.
const ARPHeaderLen = 28

const arpHardwareTypeEthernet = 1

type ARPOperation uint16

const (
	ARPOperationRequest ARPOperation = 1
	ARPOperationReply   ARPOperation = 2
)

// An ARPv4 is a typed view of an IPv4-over-Ethernet ARP packet over a
// caller owned buffer.
type ARPv4 struct {
	data []byte
}

// ParseARPv4 validates buf as the IPv4-over-Ethernet ARP profile:
// hardware type Ethernet, protocol type IPv4, address lengths 6/4.
// Trailing link layer padding past the 28 byte packet is tolerated.
func ParseARPv4(buf []byte) (ARPv4, error) {
	if len(buf) < ARPHeaderLen {
		return ARPv4{}, ErrShortFrame
	}
	a := ARPv4{data: buf[:ARPHeaderLen]}
	if a.HardwareType() != arpHardwareTypeEthernet || a.ProtocolType() != EtherTypeIPv4 ||
		a.HWSize() != 6 || a.ProtoSize() != 4 {
		return ARPv4{}, ErrNotARPv4
	}
	return a, nil
}

func (a ARPv4) HardwareType() uint16    { return binary.BigEndian.Uint16(a.data[0:2]) }
func (a ARPv4) ProtocolType() EtherType { return EtherType(binary.BigEndian.Uint16(a.data[2:4])) }

// HWSize Hardware address size
func (a ARPv4) HWSize() uint8 { return a.data[4] }

// ProtoSize Protocol address size (IPv4 is 4, should always return 4)
func (a ARPv4) ProtoSize() uint8 { return a.data[5] }

func (a ARPv4) Operation() ARPOperation {
	return ARPOperation(binary.BigEndian.Uint16(a.data[6:8]))
}

func (a ARPv4) HWSender() net.HardwareAddr {
	return a.data[8:14]
}
func (a ARPv4) ProtoSender() net.IP {
	return a.data[14:18]
}
func (a ARPv4) HWTarget() net.HardwareAddr {
	return a.data[18:24]
}
func (a ARPv4) ProtoTarget() net.IP {
	return a.data[24:28]
}

// IsProbe reports whether the packet announces interest in an address the
// sender does not own yet (sender protocol address all-zero).
func (a ARPv4) IsProbe() bool { return isUnspecified(a.ProtoSender()) }

// SetResponse rewrites the packet in place into the reply to it, naming
// MAC as the resolved hardware address. The reply has the same wire
// length as the request.
func (a ARPv4) SetResponse(MAC net.HardwareAddr) {
	// copy HW AoS to HW AoT and MAC to HW AoS
	copy(a.HWTarget(), a.HWSender())
	copy(a.HWSender(), MAC)
	// switch target and source protocol addresses
	bytealg.Swap(a.ProtoSender(), a.ProtoTarget())
	a.Set().Operation(ARPOperationReply)
}

func (a ARPv4) String() string {
	// if target hardware address bytes are only 0, then it is an ARP request
	if bytesAreAll(a.HWTarget(), 0) {
		return strcat("ARP ", a.HWSender().String(), "->",
			"who has ", a.ProtoTarget().String(), "?", " Tell ", a.ProtoSender().String())
	}
	return strcat("ARP ", a.HWSender().String(), "->",
		"I have ", a.ProtoSender().String(), "! Tell ", a.ProtoTarget().String(), ", aka ", a.HWTarget().String())
}

func (a ARPv4) Set() ARPv4Set {
	return ARPv4Set{arp: a}
}

type ARPv4Set struct {
	arp ARPv4
}

func (a ARPv4Set) Operation(op ARPOperation) {
	binary.BigEndian.PutUint16(a.arp.data[6:8], uint16(op))
}

func (a ARPv4Set) HWSender(MAC net.HardwareAddr) {
	copy(a.arp.data[8:14], MAC)
}
func (a ARPv4Set) ProtoSender(ip net.IP) {
	copy(a.arp.data[14:18], ip)
}
func (a ARPv4Set) HWTarget(MAC net.HardwareAddr) {
	copy(a.arp.data[18:24], MAC)
}
func (a ARPv4Set) ProtoTarget(ip net.IP) {
	copy(a.arp.data[24:28], ip)
}
