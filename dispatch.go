package jnet

import (
	"github.com/isgasho/jnet/bytealg"
	"github.com/soypat/net"
)

// Frame dispatch logic.

type ActionKind uint8

const (
	// ActionNone covers malformed, unaddressed and unresolvable traffic;
	// nothing is transmitted.
	ActionNone ActionKind = iota
	ActionARPReply
	ActionEchoReply
	ActionUDPReply
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionARPReply:
		return "ARP reply"
	case ActionEchoReply:
		return "echo reply"
	case ActionUDPReply:
		return "UDP reply"
	}
	return "unknown"
}

// An Action is the outcome of processing one frame. The reply kinds carry
// a frame view borrowing the buffer handed to Process, now holding the
// constructed reply of identical byte length; the caller must transmit or
// discard it before the next Process call reuses the buffer.
type Action struct {
	Kind  ActionKind
	Frame Ethernet
}

// Process interprets buf as a received Ethernet frame and decides what to
// transmit back, constructing any reply in place inside buf. The
// resolution cache is its only side effect. It performs no I/O and is
// deterministic given the buffer contents and cache state.
func (s *Stack) Process(buf []byte) Action {
	eth, err := ParseEthernet(buf)
	if err != nil {
		s.log.Errorf("not a valid Ethernet frame: %v", err)
		return Action{}
	}
	switch eth.EtherType() {
	case EtherTypeARP:
		return s.serveARP(eth)
	case EtherTypeIPv4:
		return s.serveIPv4(eth)
	}
	s.log.Infof("unhandled EtherType %#04x", uint16(eth.EtherType()))
	return Action{}
}

func (s *Stack) serveARP(eth Ethernet) Action {
	arp, err := ParseARPv4(eth.Payload())
	if err != nil {
		s.log.Errorf("invalid ARP packet: %v", err)
		return Action{}
	}
	// Opportunistic: every non-probe packet teaches us a mapping, whether
	// addressed to us or not. This device never sends its own requests.
	if !arp.IsProbe() {
		if err := s.cache.Insert(arp.ProtoSender(), arp.HWSender()); err != nil {
			s.log.Warningf("resolution cache full, %s not stored", arp.ProtoSender())
		}
	}
	// are they asking for our MAC address?
	if arp.Operation() == ARPOperationRequest && bytealg.Equal(arp.ProtoTarget(), s.ip) {
		s.log.Infof("ARP request addressed to us: %s", arp)
		arp.SetResponse(s.mac)
		ethSet := eth.Set()
		ethSet.Destination(eth.Source())
		ethSet.Source(s.mac)
		return Action{Kind: ActionARPReply, Frame: eth}
	}
	return Action{}
}

func (s *Stack) serveIPv4(eth Ethernet) Action {
	ip, err := ParseIPv4(eth.Payload())
	if err != nil {
		s.log.Errorf("not a valid IPv4 packet: %v", err)
		return Action{}
	}
	// The source address view is rewritten in place below, so keep a copy.
	var srcIP [4]byte
	copy(srcIP[:], ip.Source())
	// A broadcast sender would associate a real IP with a meaningless
	// shared address, so it teaches us nothing.
	if !isBroadcast(eth.Source()) {
		if err := s.cache.Insert(ip.Source(), eth.Source()); err != nil {
			s.log.Warningf("resolution cache full, %s not stored", ip.Source())
		}
	}

	switch ip.Protocol() {
	case IPHEADER_PROTOCOL_ICMP:
		msg, err := ParseICMP(ip.Payload())
		if err != nil {
			s.log.Errorf("not a valid ICMP message: %v", err)
			return Action{}
		}
		if !msg.IsEchoRequest() {
			s.log.Infof("unhandled ICMP message: %s", msg)
			return Action{}
		}
		dstMAC, ok := s.cache.Lookup(srcIP[:])
		if !ok {
			s.log.Errorf("%s not in the resolution cache", ip.Source())
			return Action{}
		}
		msg.SetEchoReply()
		s.setReplyHeaders(eth, ip, srcIP[:], dstMAC)
		return Action{Kind: ActionEchoReply, Frame: eth}

	case IPHEADER_PROTOCOL_UDP:
		udp, err := ParseUDP(ip.Payload())
		if err != nil {
			s.log.Errorf("not a valid UDP packet: %v", err)
			return Action{}
		}
		dstMAC, ok := s.cache.Lookup(srcIP[:])
		if !ok {
			s.log.Errorf("%s not in the resolution cache", ip.Source())
			return Action{}
		}
		udp.SetEcho()
		s.setReplyHeaders(eth, ip, srcIP[:], dstMAC)
		return Action{Kind: ActionUDPReply, Frame: eth}
	}
	s.log.Infof("unhandled IPv4 protocol %d", ip.Protocol())
	return Action{}
}

// setReplyHeaders points an in-place reply back at the requester: IPv4
// source becomes the device address, destination the requester, and the
// header checksum is recomputed; the Ethernet addresses follow suit.
func (s *Stack) setReplyHeaders(eth Ethernet, ip IPv4, dstIP net.IP, dstMAC net.HardwareAddr) {
	ipSet := ip.Set()
	ipSet.Source(s.ip)
	ipSet.Destination(dstIP)
	ip.RecomputeChecksum()
	ethSet := eth.Set()
	ethSet.Destination(dstMAC)
	ethSet.Source(s.mac)
}
