package jnet

import (
	"github.com/soypat/net"
)

// A Stack bundles the fixed device identity with the only state carried
// across calls, the resolution cache, plus an optional telemetry sink.
// It replaces ambient globals: everything Process needs travels with it.
type Stack struct {
	mac   net.HardwareAddr
	ip    net.IP
	cache *Cache
	log   Telemetry
}

// NewStack returns a stack answering for the given MAC and IPv4 address.
// A nil cache gets the default capacity; a nil telemetry sink is replaced
// with a no-op one.
func NewStack(MAC net.HardwareAddr, IP net.IP, cache *Cache, log Telemetry) (*Stack, error) {
	if len(MAC) != 6 || isBroadcast(MAC) {
		return nil, ErrBadMac
	}
	if len(IP) != 4 || isUnspecified(IP) {
		return nil, ErrBadIP
	}
	if cache == nil {
		cache = NewCache(DefaultCacheEntries)
	}
	if log == nil {
		log = nopTelemetry{}
	}
	s := &Stack{cache: cache, log: log}
	s.mac = append(s.mac, MAC...)
	s.ip = append(s.ip, IP...)
	return s, nil
}

// HardwareAddr returns the configured MAC address.
func (s *Stack) HardwareAddr() net.HardwareAddr { return s.mac }

// Addr returns the configured IPv4 address.
func (s *Stack) Addr() net.IP { return s.ip }

// Cache returns the resolution cache mutated by Process.
func (s *Stack) Cache() *Cache { return s.cache }
