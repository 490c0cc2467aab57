package jnet

// Polling loop tying a NIC driver to the dispatcher.

// FrameBufLen is the size of the single receive/transmit buffer: a full
// Ethernet II frame without CRC, plus room for an 802.1Q tag.
const FrameBufLen = 1518

// An Indicator is invoked once per transmitted echo or UDP reply, e.g. to
// toggle an LED. May be nil.
type Indicator func()

// ListenAndServe runs the receive, process, transmit loop over dg until
// the driver fails, reusing one fixed buffer for every frame. Per-packet
// problems are reported to the stack's telemetry sink and skipped; only
// driver I/O failures end the loop, returned wrapped in *DriverError so
// the caller can pick its terminal policy.
func ListenAndServe(dg Datagrammer, s *Stack, indicate Indicator) error {
	var buf [FrameBufLen]byte
	var packet Reader
	for {
		if packet != nil {
			// Discard any unread data before procuring a new packet.
			if err := packet.Discard(); err != nil {
				s.log.Errorf("discard failed: %v", err)
				return &DriverError{Op: "discard", Err: err}
			}
		}
		var err error
		packet, err = dg.NextPacket()
		if err != nil {
			s.log.Errorf("next packet failed: %v", err)
			return &DriverError{Op: "receive", Err: err}
		}
		n, err := packet.Read(buf[:])
		if err != nil && !IsEOF(err) {
			s.log.Errorf("packet read failed: %v", err)
			return &DriverError{Op: "read", Err: err}
		}
		if err == nil {
			// Read did not hit EOF, so the frame continues past our buffer.
			s.log.Warningf("packet too big for our buffer")
			continue
		}
		s.log.Infof("new packet, %d octets", n)

		act := s.Process(buf[:n])
		switch act.Kind {
		case ActionNone:
			continue
		case ActionEchoReply, ActionUDPReply:
			if indicate != nil {
				indicate()
			}
		}
		s.log.Infof("sending %s", act.Kind)
		if _, err = dg.Write(act.Frame.Bytes()); err != nil {
			s.log.Errorf("transmit failed: %v", err)
			return &DriverError{Op: "transmit", Err: err}
		}
		if err = dg.Flush(); err != nil {
			s.log.Errorf("flush failed: %v", err)
			return &DriverError{Op: "flush", Err: err}
		}
	}
}
