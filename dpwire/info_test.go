package dpwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustKey(t *testing.T, s string) InfoKey {
	t.Helper()
	k, err := NewInfoKey([]byte(s))
	require.NoError(t, err)
	return k
}

func mustValue(t *testing.T, s string) InfoValue {
	t.Helper()
	v, err := NewInfoValue([]byte(s))
	require.NoError(t, err)
	return v
}

func TestInfoSetPreservesInsertionOrderAndOverwritesInPlace(t *testing.T) {
	info := NewInfo()
	info.Set(mustKey(t, "gamename"), mustValue(t, "Nexuiz"))
	info.Set(mustKey(t, "protocol"), mustValue(t, "3"))
	info.Set(mustKey(t, "gamename"), mustValue(t, "Xonotic"))

	require.Equal(t, 2, info.Len())
	entries := info.Entries()
	assert.Equal(t, "gamename", entries[0].Key.String())
	assert.Equal(t, "Xonotic", entries[0].Value.String())
	assert.Equal(t, "protocol", entries[1].Key.String())
}

func TestInfoGet(t *testing.T) {
	info := NewInfo()
	info.Set(mustKey(t, "clients"), mustValue(t, "4"))

	value, ok := info.Get(mustKey(t, "clients"))
	require.True(t, ok)
	assert.Equal(t, "4", value.String())

	_, ok = info.Get(mustKey(t, "missing"))
	assert.False(t, ok)
}

func TestInfoEntriesReturnsDefensiveCopy(t *testing.T) {
	info := NewInfo()
	info.Set(mustKey(t, "a"), mustValue(t, "1"))

	entries := info.Entries()
	entries[0].Value = mustValue(t, "mutated")

	value, _ := info.Get(mustKey(t, "a"))
	assert.Equal(t, "1", value.String())
}

func TestInfoEqual(t *testing.T) {
	a := NewInfo()
	a.Set(mustKey(t, "x"), mustValue(t, "1"))
	a.Set(mustKey(t, "y"), mustValue(t, "2"))

	b := NewInfo()
	b.Set(mustKey(t, "x"), mustValue(t, "1"))
	b.Set(mustKey(t, "y"), mustValue(t, "2"))

	c := NewInfo()
	c.Set(mustKey(t, "y"), mustValue(t, "2"))
	c.Set(mustKey(t, "x"), mustValue(t, "1"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "differently ordered entries are not equal")
}

func TestInfoWellKnownAccessors(t *testing.T) {
	info := NewInfo()
	info.Set(mustKey(t, "challenge"), mustValue(t, "abc123"))
	info.Set(mustKey(t, "gamename"), mustValue(t, "Nexuiz"))
	info.Set(mustKey(t, "gametype"), mustValue(t, "dm"))
	info.Set(mustKey(t, "sv_maxclients"), mustValue(t, "16"))
	info.Set(mustKey(t, "clients"), mustValue(t, "4"))
	info.Set(mustKey(t, "protocol"), mustValue(t, "3"))

	challenge, ok := info.Challenge()
	require.True(t, ok)
	assert.Equal(t, "abc123", challenge.String())

	gameName, ok := info.GameName()
	require.True(t, ok)
	assert.Equal(t, "Nexuiz", gameName.String())

	gametype, ok := info.Gametype()
	require.True(t, ok)
	assert.Equal(t, "dm", gametype.String())

	maxClients, ok, err := info.SVMaxClients()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, MaxClientsNumber(16), maxClients)

	clients, ok, err := info.Clients()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ClientsNumber(4), clients)

	protocol, ok, err := info.Protocol()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ProtocolNumber(3), protocol)
}

func TestInfoWellKnownAccessorsAbsentKey(t *testing.T) {
	info := NewInfo()

	_, ok := info.Challenge()
	assert.False(t, ok)

	_, ok, err := info.Protocol()
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestInfoWellKnownAccessorsBadValue(t *testing.T) {
	info := NewInfo()
	info.Set(mustKey(t, "protocol"), mustValue(t, "not-a-number"))

	_, ok, err := info.Protocol()
	assert.True(t, ok)
	assert.Error(t, err)
}
