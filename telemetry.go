package jnet

// A Telemetry is a leveled event sink notified alongside every dispatch
// decision. It is purely observational: nothing about the returned Action
// or the cache outcome depends on it, and it may be left nil.
//
// *logging.Logger from github.com/op/go-logging satisfies it directly.
type Telemetry interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type nopTelemetry struct{}

func (nopTelemetry) Infof(string, ...interface{})    {}
func (nopTelemetry) Warningf(string, ...interface{}) {}
func (nopTelemetry) Errorf(string, ...interface{})   {}
