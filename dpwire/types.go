// Package dpwire implements the dpmaster master-server wire codec: the
// byte-constrained value types, the message model, the parser, and the
// serializer. It is sans-I/O — every function here is a pure transformation
// over byte slices; see the frame package for the datagram-adapter layer
// that plugs this codec into a UDP transport.
package dpwire

// ProtocolNumber is the `getservers`/`getserversExt` protocol-revision
// number, carried on the wire as ASCII decimal and parsed as unsigned 32-bit.
type ProtocolNumber uint32

// ClientsNumber is a server's current client count as reported in an Info
// map's "clients" entry. The id Tech 3 family never exceeds a byte's worth
// of player slots on the wire.
type ClientsNumber uint8

// MaxClientsNumber is a server's configured maximum client count, as
// reported in an Info map's "sv_maxclients" entry.
type MaxClientsNumber uint8

// Challenge is the anti-spoofing nonce sent in a `getinfo` request and
// echoed back in the corresponding `infoResponse`. It must be non-empty,
// every byte must be ASCII-printable (0x21..=0x7E), and it must not contain
// any of '\', '/', ';', '"', '%'.
type Challenge struct{ b []byte }

// NewChallenge validates b against the Challenge constraints and, on
// success, returns an owned copy wrapped as a Challenge.
func NewChallenge(b []byte) (Challenge, error) {
	if len(b) == 0 {
		return Challenge{}, ErrEmptyChallenge
	}
	for i, c := range b {
		if !isChallengeByte(c) {
			return Challenge{}, &InvalidChallengeError{Byte: c, Offset: i}
		}
	}
	return Challenge{b: cloneBytes(b)}, nil
}

func isChallengeByte(c byte) bool {
	if c < 33 || c > 126 {
		return false
	}
	switch c {
	case '\\', '/', ';', '"', '%':
		return false
	}
	return true
}

// Bytes returns the challenge's underlying bytes. The caller must not
// mutate the returned slice.
func (c Challenge) Bytes() []byte { return c.b }

// String renders the challenge bytes as a string (they are always ASCII-printable).
func (c Challenge) String() string { return string(c.b) }

// Equal reports whether c and other hold the same bytes.
func (c Challenge) Equal(other Challenge) bool { return bytesEqual(c.b, other.b) }

// GameName is a short game identifier (e.g. "Nexuiz", "qfusion"). It must
// contain neither a NUL byte nor a space.
type GameName struct{ b []byte }

// NewGameName validates b against the GameName constraints.
func NewGameName(b []byte) (GameName, error) {
	for i, c := range b {
		if c == 0x00 || c == ' ' {
			return GameName{}, &InvalidGameNameError{Byte: c, Offset: i}
		}
	}
	return GameName{b: cloneBytes(b)}, nil
}

// Bytes returns the game name's underlying bytes.
func (g GameName) Bytes() []byte { return g.b }

// String renders the game name as a string.
func (g GameName) String() string { return string(g.b) }

// Equal reports whether g and other hold the same bytes.
func (g GameName) Equal(other GameName) bool { return bytesEqual(g.b, other.b) }

// GameType is the `gametype=` filter option's value. The original source
// documents no byte-level constraint on it; this port matches that.
type GameType struct{ b []byte }

// NewGameType wraps b as a GameType. It never fails: there is no documented
// byte-level constraint on gametype values.
func NewGameType(b []byte) (GameType, error) {
	return GameType{b: cloneBytes(b)}, nil
}

// Bytes returns the gametype's underlying bytes.
func (g GameType) Bytes() []byte { return g.b }

// String renders the gametype as a string.
func (g GameType) String() string { return string(g.b) }

// Equal reports whether g and other hold the same bytes.
func (g GameType) Equal(other GameType) bool { return bytesEqual(g.b, other.b) }

// ProtocolName is a heartbeat's free-form protocol identifier (e.g.
// "DarkPlaces", "QuakeArena-1"). It must not contain a line-feed byte.
type ProtocolName struct{ b []byte }

// NewProtocolName validates b against the ProtocolName constraint.
func NewProtocolName(b []byte) (ProtocolName, error) {
	for i, c := range b {
		if c == '\n' {
			return ProtocolName{}, &InvalidByteError{Field: "ProtocolName", Byte: c, Offset: i}
		}
	}
	return ProtocolName{b: cloneBytes(b)}, nil
}

// Bytes returns the protocol name's underlying bytes.
func (p ProtocolName) Bytes() []byte { return p.b }

// String renders the protocol name as a string.
func (p ProtocolName) String() string { return string(p.b) }

// Equal reports whether p and other hold the same bytes.
func (p ProtocolName) Equal(other ProtocolName) bool { return bytesEqual(p.b, other.b) }

// InfoKey is an Info map key. It must not contain a backslash, the
// delimiter byte used between entries on the wire.
type InfoKey struct{ b []byte }

// NewInfoKey validates b against the InfoKey constraint.
func NewInfoKey(b []byte) (InfoKey, error) {
	if i := indexByte(b, '\\'); i >= 0 {
		return InfoKey{}, &InvalidByteError{Field: "InfoKey", Byte: '\\', Offset: i}
	}
	return InfoKey{b: cloneBytes(b)}, nil
}

// Bytes returns the key's underlying bytes.
func (k InfoKey) Bytes() []byte { return k.b }

// String renders the key as a string.
func (k InfoKey) String() string { return string(k.b) }

// Equal reports whether k and other hold the same bytes.
func (k InfoKey) Equal(other InfoKey) bool { return bytesEqual(k.b, other.b) }

// InfoValue is an Info map value. Like InfoKey, it must not contain a backslash.
type InfoValue struct{ b []byte }

// NewInfoValue validates b against the InfoValue constraint.
func NewInfoValue(b []byte) (InfoValue, error) {
	if i := indexByte(b, '\\'); i >= 0 {
		return InfoValue{}, &InvalidByteError{Field: "InfoValue", Byte: '\\', Offset: i}
	}
	return InfoValue{b: cloneBytes(b)}, nil
}

// Bytes returns the value's underlying bytes.
func (v InfoValue) Bytes() []byte { return v.b }

// String renders the value as a string.
func (v InfoValue) String() string { return string(v.b) }

// Equal reports whether v and other hold the same bytes.
func (v InfoValue) Equal(other InfoValue) bool { return bytesEqual(v.b, other.b) }

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}
