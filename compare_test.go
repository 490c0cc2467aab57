package jnet

import (
	"bytes"
	"fmt"
)

func assertEqualEthernet(a, b Ethernet) (errs []error) {
	if !bytes.Equal(a.Destination(), b.Destination()) {
		errs = append(errs, fmt.Errorf("destination MAC %s != %s", a.Destination(), b.Destination()))
	}
	if !bytes.Equal(a.Source(), b.Source()) {
		errs = append(errs, fmt.Errorf("source MAC %s != %s", a.Source(), b.Source()))
	}
	if a.EtherType() != b.EtherType() {
		errs = append(errs, fmt.Errorf("ethertype %#x != %#x", a.EtherType(), b.EtherType()))
	}
	if a.IsVLAN() != b.IsVLAN() {
		errs = append(errs, fmt.Errorf("VLAN %t != %t", a.IsVLAN(), b.IsVLAN()))
	}
	return errs
}

func assertEqualARPv4(a, b ARPv4) (errs []error) {
	if a.Operation() != b.Operation() {
		errs = append(errs, fmt.Errorf("operation %d != %d", a.Operation(), b.Operation()))
	}
	if !bytes.Equal(a.HWSender(), b.HWSender()) {
		errs = append(errs, fmt.Errorf("sender MAC %s != %s", a.HWSender(), b.HWSender()))
	}
	if !bytes.Equal(a.ProtoSender(), b.ProtoSender()) {
		errs = append(errs, fmt.Errorf("sender IP %d != %d", a.ProtoSender(), b.ProtoSender()))
	}
	if !bytes.Equal(a.HWTarget(), b.HWTarget()) {
		errs = append(errs, fmt.Errorf("target MAC %s != %s", a.HWTarget(), b.HWTarget()))
	}
	if !bytes.Equal(a.ProtoTarget(), b.ProtoTarget()) {
		errs = append(errs, fmt.Errorf("target IP %d != %d", a.ProtoTarget(), b.ProtoTarget()))
	}
	return errs
}

func assertEqualIPv4(a, b IPv4) (errs []error) {
	if a.Version() != b.Version() {
		errs = append(errs, fmt.Errorf("version %#x != %#x", a.Version(), b.Version()))
	}
	if a.TotalLength() != b.TotalLength() {
		errs = append(errs, fmt.Errorf("totallength %d != %d", a.TotalLength(), b.TotalLength()))
	}
	if a.ID() != b.ID() {
		errs = append(errs, fmt.Errorf("ID %#x != %#x", a.ID(), b.ID()))
	}
	if a.Flags() != b.Flags() {
		errs = append(errs, fmt.Errorf("flag %#x != %#x", a.Flags(), b.Flags()))
	}
	if a.TTL() != b.TTL() {
		errs = append(errs, fmt.Errorf("ttl %d != %d", a.TTL(), b.TTL()))
	}
	if a.Protocol() != b.Protocol() {
		errs = append(errs, fmt.Errorf("protocol %d != %d", a.Protocol(), b.Protocol()))
	}
	if a.Checksum() != b.Checksum() {
		errs = append(errs, fmt.Errorf("checksum %#x != %#x", a.Checksum(), b.Checksum()))
	}
	if !bytes.Equal(a.Source(), b.Source()) {
		errs = append(errs, fmt.Errorf("source ip %d != %d", a.Source(), b.Source()))
	}
	if !bytes.Equal(a.Destination(), b.Destination()) {
		errs = append(errs, fmt.Errorf("destination ip %d != %d", a.Destination(), b.Destination()))
	}
	return errs
}

func assertEqualUDP(a, b UDP) (errs []error) {
	if a.SourcePort() != b.SourcePort() {
		errs = append(errs, fmt.Errorf("source port %d != %d", a.SourcePort(), b.SourcePort()))
	}
	if a.DestinationPort() != b.DestinationPort() {
		errs = append(errs, fmt.Errorf("dest. port %d != %d", a.DestinationPort(), b.DestinationPort()))
	}
	if a.Length() != b.Length() {
		errs = append(errs, fmt.Errorf("length %d != %d", a.Length(), b.Length()))
	}
	if a.Checksum() != b.Checksum() {
		errs = append(errs, fmt.Errorf("checksum %#x != %#x", a.Checksum(), b.Checksum()))
	}
	if !bytes.Equal(a.Payload(), b.Payload()) {
		errs = append(errs, fmt.Errorf("payload %#x != %#x", a.Payload(), b.Payload()))
	}
	return errs
}
