package jnet

// Reader reads from a packet that was received through stream.
type Reader interface {
	// Read copies packet bytes into b. It returns io.EOF alongside the
	// final bytes of the packet.
	Read(b []byte) (n int, err error)
	// Discard discards packet data. Reader is terminated as well.
	// If reader already terminated then it should have no effect.
	Discard() error
}

type Writer interface {
	// Writes data to buffer. Flush may need to be called to send packet over stream.
	Write(b []byte) (n int, err error)
}

type PacketReader interface {
	// NextPacket returns a Reader over the next received packet, blocking
	// until one is available.
	NextPacket() (Reader, error)
}

type PacketWriter interface {
	Writer
	// Flush writes buffer to the underlying stream.
	Flush() error
}

// Datagrammer can marshal and unmarshal packets sent over ethernet. Typically is an
// IC with read/write capabilities such as the ENC28J60, or a TAP device.
type Datagrammer interface {
	PacketWriter
	PacketReader
}
