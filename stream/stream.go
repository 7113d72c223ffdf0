// Package stream provides the public API for device execution streams.
package stream

import (
	"github.com/codinganother/HLUs/internal/stream"
)

// Stream is an ordered, device-associated queue of asynchronous work.
type Stream = stream.Stream

// New creates a stream and starts its worker.
func New(name string) *Stream {
	return stream.New(name)
}

// Sentinel errors.
var (
	ErrClosed      = stream.ErrClosed
	ErrDeviceFault = stream.ErrDeviceFault
)
