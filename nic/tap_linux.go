// Package nic provides network interface controllers implementing the
// jnet Datagrammer interface, so the stack can be exercised against real
// peers without MCU hardware.
package nic

import (
	"io"

	"golang.org/x/sys/unix"

	"github.com/isgasho/jnet"
)

const tunDevice = "/dev/net/tun"

// A TAP is a Linux TAP device carrying raw Ethernet frames. It holds one
// receive and one transmit buffer; packets are handed out one at a time,
// matching the single buffer discipline of the serve loop.
type TAP struct {
	fd   int
	name string
	rx   []byte
	tx   []byte
}

// OpenTAP attaches to the named TAP device, creating it if the kernel
// allows. Pass an empty name to let the kernel pick one.
func OpenTAP(name string) (*TAP, error) {
	fd, err := unix.Open(tunDevice, unix.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	ifr, err := unix.NewIfreq(name)
	if err != nil {
		unix.Close(fd)
		return nil, err
	}
	// IFF_NO_PI: frames come without the packet information preamble.
	ifr.SetUint16(unix.IFF_TAP | unix.IFF_NO_PI)
	if err := unix.IoctlIfreq(fd, unix.TUNSETIFF, ifr); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return &TAP{
		fd:   fd,
		name: ifr.Name(),
		rx:   make([]byte, jnet.FrameBufLen),
	}, nil
}

// Name returns the interface name the kernel settled on.
func (t *TAP) Name() string { return t.name }

func (t *TAP) Close() error { return unix.Close(t.fd) }

// NextPacket blocks until a frame arrives on the device. The returned
// Reader is only valid until the next call.
func (t *TAP) NextPacket() (jnet.Reader, error) {
	n, err := unix.Read(t.fd, t.rx)
	if err != nil {
		return nil, err
	}
	return &tapPacket{data: t.rx[:n]}, nil
}

func (t *TAP) Write(b []byte) (int, error) {
	t.tx = append(t.tx, b...)
	return len(b), nil
}

// Flush transmits everything written since the last flush as one frame.
func (t *TAP) Flush() error {
	if len(t.tx) == 0 {
		return nil
	}
	_, err := unix.Write(t.fd, t.tx)
	t.tx = t.tx[:0]
	return err
}

// tapPacket implements jnet.Reader over one received frame.
type tapPacket struct {
	data []byte
	ptr  int
}

func (p *tapPacket) Read(b []byte) (n int, err error) {
	if p.ptr == len(p.data) {
		return 0, io.EOF
	}
	n = copy(b, p.data[p.ptr:])
	p.ptr += n
	if p.ptr == len(p.data) {
		return n, io.EOF
	}
	return n, nil
}

func (p *tapPacket) Discard() error {
	p.ptr = len(p.data)
	return nil
}
