package dpwire

import "strconv"

// InfoEntry is a single key/value pair within an Info map, in wire order.
type InfoEntry struct {
	Key   InfoKey
	Value InfoValue
}

// Info is the ordered key→value mapping reported by a game server in an
// infoResponse message. Insertion order is preserved and is observable on
// the wire: re-serializing an Info re-emits its entries in that order.
// Re-inserting an existing key overwrites the value in place, keeping the
// original position.
type Info struct {
	entries []InfoEntry
	index   map[string]int
}

// NewInfo returns an empty, ready-to-use Info map.
func NewInfo() *Info {
	return &Info{index: make(map[string]int)}
}

// Set inserts or overwrites key with value. A pre-existing key keeps its
// original position; a new key is appended.
func (i *Info) Set(key InfoKey, value InfoValue) {
	if i.index == nil {
		i.index = make(map[string]int)
	}
	if pos, ok := i.index[key.String()]; ok {
		i.entries[pos].Value = value
		return
	}
	i.index[key.String()] = len(i.entries)
	i.entries = append(i.entries, InfoEntry{Key: key, Value: value})
}

// Get looks up key, reporting whether it is present.
func (i *Info) Get(key InfoKey) (InfoValue, bool) {
	pos, ok := i.index[key.String()]
	if !ok {
		return InfoValue{}, false
	}
	return i.entries[pos].Value, true
}

// Entries returns the entries in insertion (wire) order. The returned slice
// is owned by the caller and safe to mutate without affecting i.
func (i *Info) Entries() []InfoEntry {
	out := make([]InfoEntry, len(i.entries))
	copy(out, i.entries)
	return out
}

// Len returns the number of entries.
func (i *Info) Len() int { return len(i.entries) }

// Equal compares two Info maps as an order-sensitive sequence of entries:
// re-emission order is observable on the wire, so two maps with the same
// pairs in different orders are not considered equal here.
func (i *Info) Equal(other *Info) bool {
	if i == nil || other == nil {
		return i == other
	}
	if len(i.entries) != len(other.entries) {
		return false
	}
	for idx, e := range i.entries {
		oe := other.entries[idx]
		if !e.Key.Equal(oe.Key) || !e.Value.Equal(oe.Value) {
			return false
		}
	}
	return true
}

func (i *Info) lookupString(key string) (InfoValue, bool) {
	pos, ok := i.index[key]
	if !ok {
		return InfoValue{}, false
	}
	return i.entries[pos].Value, true
}

// Challenge returns the well-known "challenge" entry, if present.
func (i *Info) Challenge() (InfoValue, bool) { return i.lookupString("challenge") }

// GameName returns the well-known "gamename" entry, if present.
func (i *Info) GameName() (InfoValue, bool) { return i.lookupString("gamename") }

// Gametype returns the well-known "gametype" entry, if present.
func (i *Info) Gametype() (InfoValue, bool) { return i.lookupString("gametype") }

// SVMaxClients returns the well-known "sv_maxclients" entry parsed as a
// MaxClientsNumber. ok is false if the key is absent; err is non-nil if the
// key is present but its value doesn't parse as a decimal byte.
func (i *Info) SVMaxClients() (value MaxClientsNumber, ok bool, err error) {
	raw, present := i.lookupString("sv_maxclients")
	if !present {
		return 0, false, nil
	}
	n, parseErr := strconv.ParseUint(raw.String(), 10, 8)
	if parseErr != nil {
		return 0, true, parseErr
	}
	return MaxClientsNumber(n), true, nil
}

// Clients returns the well-known "clients" entry parsed as a ClientsNumber.
// ok is false if the key is absent; err is non-nil if the key is present
// but its value doesn't parse as a decimal byte.
func (i *Info) Clients() (value ClientsNumber, ok bool, err error) {
	raw, present := i.lookupString("clients")
	if !present {
		return 0, false, nil
	}
	n, parseErr := strconv.ParseUint(raw.String(), 10, 8)
	if parseErr != nil {
		return 0, true, parseErr
	}
	return ClientsNumber(n), true, nil
}

// Protocol returns the well-known "protocol" entry parsed as a ProtocolNumber.
// ok is false if the key is absent; err is non-nil if the key is present
// but its value doesn't parse as a decimal uint32.
func (i *Info) Protocol() (value ProtocolNumber, ok bool, err error) {
	raw, present := i.lookupString("protocol")
	if !present {
		return 0, false, nil
	}
	n, parseErr := strconv.ParseUint(raw.String(), 10, 32)
	if parseErr != nil {
		return 0, true, parseErr
	}
	return ProtocolNumber(n), true, nil
}
