package jnet

import (
	"github.com/isgasho/jnet/bytealg"
	"github.com/soypat/net"
)

// Resolution cache.

// DefaultCacheEntries is the capacity of the reference configuration.
const DefaultCacheEntries = 8

type cacheEntry struct {
	ip  [4]byte
	mac [6]byte
}

// A Cache is a bounded IPv4 to MAC mapping with unique keys and no
// eviction or expiry. Once full it only accepts updates of keys already
// present; a network with more distinct peers than capacity permanently
// starves resolution for new hosts, a limitation carried over from the
// reference behavior.
//
// Cache is not safe for concurrent use; the single threaded dispatcher is
// its only writer.
type Cache struct {
	entries []cacheEntry
	used    int
}

// NewCache returns an empty cache holding at most entries mappings.
// Non-positive entries falls back to DefaultCacheEntries.
func NewCache(entries int) *Cache {
	if entries <= 0 {
		entries = DefaultCacheEntries
	}
	return &Cache{entries: make([]cacheEntry, entries)}
}

// Lookup returns the MAC stored for ip. The returned slice is the cache's
// own storage and must not be mutated by the caller.
func (c *Cache) Lookup(ip net.IP) (net.HardwareAddr, bool) {
	for i := 0; i < c.used; i++ {
		if bytealg.Equal(c.entries[i].ip[:], ip) {
			return c.entries[i].mac[:], true
		}
	}
	return nil, false
}

// Insert stores or updates the mapping ip to mac. Inserting a new key
// when full fails with ErrCacheFull and leaves the cache unchanged.
func (c *Cache) Insert(ip net.IP, mac net.HardwareAddr) error {
	if len(ip) != 4 {
		return ErrBadIP
	}
	if len(mac) != 6 {
		return ErrBadMac
	}
	for i := 0; i < c.used; i++ {
		if bytealg.Equal(c.entries[i].ip[:], ip) {
			copy(c.entries[i].mac[:], mac)
			return nil
		}
	}
	if c.used == len(c.entries) {
		return ErrCacheFull
	}
	copy(c.entries[c.used].ip[:], ip)
	copy(c.entries[c.used].mac[:], mac)
	c.used++
	return nil
}

// Len returns the number of stored mappings.
func (c *Cache) Len() int { return c.used }

// Cap returns the fixed capacity.
func (c *Cache) Cap() int { return len(c.entries) }
