package jnet

import (
	"bytes"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/isgasho/jnet/hex"
)

// The replies this stack constructs must be understood by an independent
// decoder, not only by our own parsers.

func TestEchoReplyDecodesWithGopacket(t *testing.T) {
	s := newTestStack(t)
	act := s.Process(hex.Decode(echoRequest))
	if act.Kind != ActionEchoReply {
		t.Fatalf("expected echo reply action, got %s", act.Kind)
	}

	p := gopacket.NewPacket(act.Frame.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
	if err := p.ErrorLayer(); err != nil {
		t.Fatalf("gopacket could not decode reply: %v", err.Error())
	}
	eth, ok := p.Layer(layers.LayerTypeEthernet).(*layers.Ethernet)
	if !ok {
		t.Fatal("no Ethernet layer in reply")
	}
	if !bytes.Equal(eth.DstMAC, peerMAC) || !bytes.Equal(eth.SrcMAC, testMAC) {
		t.Errorf("ethernet addresses %s -> %s", eth.SrcMAC, eth.DstMAC)
	}
	ip, ok := p.Layer(layers.LayerTypeIPv4).(*layers.IPv4)
	if !ok {
		t.Fatal("no IPv4 layer in reply")
	}
	if !bytes.Equal(ip.SrcIP, testIP) || !bytes.Equal(ip.DstIP, peerIP) {
		t.Errorf("ip addresses %s -> %s", ip.SrcIP, ip.DstIP)
	}
	icmp, ok := p.Layer(layers.LayerTypeICMPv4).(*layers.ICMPv4)
	if !ok {
		t.Fatal("no ICMPv4 layer in reply")
	}
	if icmp.TypeCode.Type() != layers.ICMPv4TypeEchoReply {
		t.Errorf("expected echo reply, got type %d", icmp.TypeCode.Type())
	}
	if icmp.Id != 1 || icmp.Seq != 42 {
		t.Errorf("identifier/sequence not preserved: id %d seq %d", icmp.Id, icmp.Seq)
	}
	if !bytes.Equal(icmp.Payload, []byte("abcd")) {
		t.Errorf("payload not preserved: %q", icmp.Payload)
	}
}

func TestUDPReplyDecodesWithGopacket(t *testing.T) {
	s := newTestStack(t)
	act := s.Process(hex.Decode(udpRequest))
	if act.Kind != ActionUDPReply {
		t.Fatalf("expected UDP reply action, got %s", act.Kind)
	}

	p := gopacket.NewPacket(act.Frame.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
	if err := p.ErrorLayer(); err != nil {
		t.Fatalf("gopacket could not decode reply: %v", err.Error())
	}
	udp, ok := p.Layer(layers.LayerTypeUDP).(*layers.UDP)
	if !ok {
		t.Fatal("no UDP layer in reply")
	}
	if udp.SrcPort != 1337 || udp.DstPort != 58920 {
		t.Errorf("ports not swapped: %d -> %d", udp.SrcPort, udp.DstPort)
	}
	if udp.Checksum != 0 {
		t.Errorf("expected disabled checksum, got %#x", udp.Checksum)
	}
	if !bytes.Equal(udp.Payload, []byte("hello")) {
		t.Errorf("payload not preserved: %q", udp.Payload)
	}
}

func TestARPReplyDecodesWithGopacket(t *testing.T) {
	s := newTestStack(t)
	act := s.Process(hex.Decode(arpRequest))
	if act.Kind != ActionARPReply {
		t.Fatalf("expected ARP reply action, got %s", act.Kind)
	}

	p := gopacket.NewPacket(act.Frame.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
	arp, ok := p.Layer(layers.LayerTypeARP).(*layers.ARP)
	if !ok {
		t.Fatal("no ARP layer in reply")
	}
	if arp.Operation != layers.ARPReply {
		t.Errorf("expected ARP reply operation, got %d", arp.Operation)
	}
	if !bytes.Equal(arp.SourceHwAddress, testMAC) || !bytes.Equal(arp.SourceProtAddress, testIP) {
		t.Errorf("sender %x/%x", arp.SourceHwAddress, arp.SourceProtAddress)
	}
	if !bytes.Equal(arp.DstHwAddress, peerMAC) || !bytes.Equal(arp.DstProtAddress, peerIP) {
		t.Errorf("target %x/%x", arp.DstHwAddress, arp.DstProtAddress)
	}
}
