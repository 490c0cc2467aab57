package jnet

import "errors"

var (
	ErrShortFrame = errors.New("jnet: frame too short")
	ErrNotARPv4   = errors.New("jnet: not an IPv4-over-Ethernet ARP packet")
	ErrIPVersion  = errors.New("jnet: not an IPv4 header")
	ErrIPLength   = errors.New("jnet: inconsistent IPv4 length field")
	ErrUDPLength  = errors.New("jnet: inconsistent UDP length field")
)

var (
	ErrBadMac    = errors.New("jnet: bad MAC address")
	ErrBadIP     = errors.New("jnet: bad IPv4 address")
	ErrCacheFull = errors.New("jnet: resolution cache full")
)

// DriverError wraps a NIC receive/transmit failure. The serve loop treats
// these as fatal and returns; the caller picks the terminal policy.
type DriverError struct {
	Op  string
	Err error
}

func (e *DriverError) Error() string { return "jnet: driver " + e.Op + ": " + e.Err.Error() }

func (e *DriverError) Unwrap() error { return e.Err }
