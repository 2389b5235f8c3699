package dpwire

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartbeatEqual(t *testing.T) {
	p1, err := NewProtocolName([]byte("DarkPlaces"))
	require.NoError(t, err)
	p2, err := NewProtocolName([]byte("DarkPlaces"))
	require.NoError(t, err)
	p3, err := NewProtocolName([]byte("QuakeArena-1"))
	require.NoError(t, err)

	a := NewHeartbeat(p1)
	b := NewHeartbeat(p2)
	c := NewHeartbeat(p3)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestGetInfoEqual(t *testing.T) {
	c1, err := NewChallenge([]byte("abc123"))
	require.NoError(t, err)
	c2, err := NewChallenge([]byte("abc123"))
	require.NoError(t, err)
	c3, err := NewChallenge([]byte("xyz789"))
	require.NoError(t, err)

	assert.True(t, NewGetInfo(c1).Equal(NewGetInfo(c2)))
	assert.False(t, NewGetInfo(c1).Equal(NewGetInfo(c3)))
}

func TestGetServersEqualNilGameName(t *testing.T) {
	filter := NewFilterOptions(nil, false, false)
	a := NewGetServers(nil, 3, filter)
	b := NewGetServers(nil, 3, filter)
	assert.True(t, a.Equal(b))

	name, err := NewGameName([]byte("Nexuiz"))
	require.NoError(t, err)
	withName := NewGetServers(&name, 3, filter)
	assert.False(t, a.Equal(withName))
	assert.False(t, withName.Equal(a))
}

func TestGetServersEqualSameGameName(t *testing.T) {
	filter := NewFilterOptions(nil, false, false)
	name1, err := NewGameName([]byte("Nexuiz"))
	require.NoError(t, err)
	name2, err := NewGameName([]byte("Nexuiz"))
	require.NoError(t, err)

	a := NewGetServers(&name1, 3, filter)
	b := NewGetServers(&name2, 3, filter)
	assert.True(t, a.Equal(b))
}

func TestGetServersResponseEqualAndCopySemantics(t *testing.T) {
	servers := []netip.AddrPort{
		netip.MustParseAddrPort("192.168.1.1:27960"),
		netip.MustParseAddrPort("10.0.0.1:27961"),
	}
	resp := NewGetServersResponse(servers, true)

	servers[0] = netip.MustParseAddrPort("1.2.3.4:1")
	assert.Equal(t, "192.168.1.1:27960", resp.Servers()[0].String(), "constructor must copy its input slice")

	out := resp.Servers()
	out[0] = netip.MustParseAddrPort("1.2.3.4:1")
	assert.Equal(t, "192.168.1.1:27960", resp.Servers()[0].String(), "accessor must return a defensive copy")

	other := NewGetServersResponse([]netip.AddrPort{
		netip.MustParseAddrPort("192.168.1.1:27960"),
		netip.MustParseAddrPort("10.0.0.1:27961"),
	}, true)
	assert.True(t, resp.Equal(other))

	notEOT := NewGetServersResponse(resp.Servers(), false)
	assert.False(t, resp.Equal(notEOT))
}

func TestGetServersExtResponseCopySemantics(t *testing.T) {
	servers := []netip.AddrPort{netip.MustParseAddrPort("[::1]:27960")}
	resp := NewGetServersExtResponse(servers, false)
	servers[0] = netip.MustParseAddrPort("[::2]:1")
	assert.Equal(t, "[::1]:27960", resp.Servers()[0].String())
	assert.False(t, resp.EOT())
}
