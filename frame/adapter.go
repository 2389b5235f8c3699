// Package frame adapts the sans-I/O dpwire codec to a byte-stream buffer,
// the way a tokio_util Encoder/Decoder pair adapts a sans-I/O parser to an
// AsyncRead/AsyncWrite transport. It owns no socket: callers read datagrams
// into a *bytes.Buffer and hand it to Adapter.Decode, and write
// Adapter.Encode's output to a socket themselves.
package frame

import (
	"bytes"
	"fmt"

	"github.com/dpmaster-go/dpwire/dpwire"
)

// Adapter encodes GetServers requests and decodes GetServersResponse
// datagrams. It carries no state of its own; a zero-value Adapter is ready
// to use.
type Adapter struct{}

// NewAdapter returns a ready-to-use Adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Encode renders msg as a full getservers datagram (including the message
// prefix) and appends it to dst.
func (a *Adapter) Encode(msg dpwire.GetServers, dst *bytes.Buffer) error {
	dst.Write(dpwire.SerializeGetServersMessage(msg))
	return nil
}

// Decode parses a getserversResponse datagram out of src. It assumes src
// holds exactly one datagram's worth of bytes, matching the master
// server's one-datagram-per-response behavior: src is always drained by the
// call, success or failure, since the parser operates on whole packets and
// leftover bytes from a malformed datagram would corrupt whatever the next
// independent datagram writes into the same buffer. An empty src yields
// (nil, false, nil) rather than an error, so callers can poll a buffer
// that hasn't received a datagram yet.
func (a *Adapter) Decode(src *bytes.Buffer) (*dpwire.GetServersResponse, bool, error) {
	if src.Len() == 0 {
		return nil, false, nil
	}
	_, msg, err := dpwire.ParseGetServersResponseMessage(src.Bytes())
	if err != nil {
		src.Reset()
		return nil, false, fmt.Errorf("frame: decode getserversResponse: %w", err)
	}
	src.Reset()
	return &msg, true, nil
}
