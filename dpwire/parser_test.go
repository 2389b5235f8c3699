package dpwire

import (
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withPrefix(payload string) []byte {
	return append(append([]byte{}, messagePrefix...), []byte(payload)...)
}

func TestParseHeartbeatMessage(t *testing.T) {
	rest, msg, err := ParseHeartbeatMessage(withPrefix("heartbeat DarkPlaces\n"))
	require.Nil(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "DarkPlaces", msg.ProtocolName().String())
}

func TestParseHeartbeatAcceptsMultipleTrailingNewlines(t *testing.T) {
	rest, msg, err := ParseHeartbeat([]byte("heartbeat QuakeArena-1\n\n\n"))
	require.Nil(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "QuakeArena-1", msg.ProtocolName().String())
}

func TestParseHeartbeatMissingSeparatorFails(t *testing.T) {
	_, _, err := ParseHeartbeat([]byte("heartbeatDarkPlaces\n"))
	require.NotNil(t, err)
}

func TestParseHeartbeatWrongPrefixIsFramingError(t *testing.T) {
	_, _, err := ParseHeartbeatMessage([]byte{0x00, 0x00, 0x00, 0x00, 'x'})
	require.NotNil(t, err)
	assert.Equal(t, DomainFraming, err.Domain)
}

func TestParseGetInfoMessage(t *testing.T) {
	rest, msg, err := ParseGetInfoMessage(withPrefix("getinfo abc123XYZ"))
	require.Nil(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "abc123XYZ", msg.Challenge().String())
}

func TestParseGetInfoRejectsInvalidChallengeByte(t *testing.T) {
	_, _, err := ParseGetInfo([]byte(`getinfo a\b`))
	require.NotNil(t, err)
}

func TestParseGetInfoRejectsEmptyChallenge(t *testing.T) {
	_, _, err := ParseGetInfo([]byte("getinfo "))
	require.NotNil(t, err)
}

func TestParseInfoResponseMessage(t *testing.T) {
	rest, msg, err := ParseInfoResponseMessage(withPrefix("infoResponse\n\\gamename\\Nexuiz\\protocol\\3\\sv_maxclients\\16"))
	require.Nil(t, err)
	assert.Empty(t, rest)

	gameName, ok := msg.Info().GameName()
	require.True(t, ok)
	assert.Equal(t, "Nexuiz", gameName.String())

	protocol, ok, perr := msg.Info().Protocol()
	require.NoError(t, perr)
	require.True(t, ok)
	assert.Equal(t, ProtocolNumber(3), protocol)
}

func TestParseInfoResponseRequiresAtLeastOnePair(t *testing.T) {
	_, _, err := ParseInfoResponse([]byte("infoResponse\n"))
	require.NotNil(t, err)
}

func TestParseGetServersMessageWithGameNameAndFilters(t *testing.T) {
	rest, msg, err := ParseGetServersMessage(withPrefix("getservers Nexuiz 3 gametype=dm empty full"))
	require.Nil(t, err)
	assert.Empty(t, rest)

	require.NotNil(t, msg.GameName())
	assert.Equal(t, "Nexuiz", msg.GameName().String())
	assert.Equal(t, ProtocolNumber(3), msg.ProtocolNumber())
	require.NotNil(t, msg.Filter().Gametype())
	assert.Equal(t, "dm", msg.Filter().Gametype().String())
	assert.True(t, msg.Filter().Empty())
	assert.True(t, msg.Filter().Full())
}

func TestParseGetServersMessageWithoutGameName(t *testing.T) {
	// The original Quake III dialect omits the game name entirely: the
	// protocol number immediately follows the mandatory separator.
	_, msg, err := ParseGetServersMessage(withPrefix("getservers 71"))
	require.Nil(t, err)
	assert.Nil(t, msg.GameName())
	assert.Equal(t, ProtocolNumber(71), msg.ProtocolNumber())
}

func TestParseGetServersProtocolNumberOverflow(t *testing.T) {
	_, _, err := ParseGetServers([]byte("getservers 99999999999"))
	require.NotNil(t, err)
	assert.Equal(t, KindOverflow, err.Kind)
}

func TestParseGetServersProtocolNumberMissingIsError(t *testing.T) {
	_, _, err := ParseGetServers([]byte("getservers "))
	require.NotNil(t, err)
	assert.Equal(t, KindDigit, err.Kind)
}

func TestParseGetServersResponseAddressesAndEOT(t *testing.T) {
	payload := []byte("getserversResponse")
	payload = append(payload, '\\', 192, 168, 1, 1, 0x6d, 0x38)
	payload = append(payload, '\\', 10, 0, 0, 1, 0x6d, 0x39)
	payload = append(payload, eotSentinel...)

	rest, msg, err := ParseGetServersResponse(payload)
	require.Nil(t, err)
	assert.Nil(t, rest)
	require.True(t, msg.EOT())

	want := []netip.AddrPort{
		netip.MustParseAddrPort("192.168.1.1:27960"),
		netip.MustParseAddrPort("10.0.0.1:27961"),
	}
	if diff := cmp.Diff(want, msg.Servers(), cmp.Comparer(func(a, b netip.AddrPort) bool { return a == b })); diff != "" {
		t.Fatalf("servers mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGetServersResponseWithoutEOT(t *testing.T) {
	payload := []byte("getserversResponse")
	payload = append(payload, '\\', 1, 2, 3, 4, 0, 80)

	rest, msg, err := ParseGetServersResponse(payload)
	require.Nil(t, err)
	assert.Empty(t, rest)
	assert.False(t, msg.EOT())
	assert.Len(t, msg.Servers(), 1)
}

func TestParseGetServersResponseEmpty(t *testing.T) {
	rest, msg, err := ParseGetServersResponse([]byte("getserversResponse"))
	require.Nil(t, err)
	assert.Empty(t, rest)
	assert.False(t, msg.EOT())
	assert.Empty(t, msg.Servers())
}

// TestParseGetServersResponseEOTIsWholeInputEquality ensures the EOT
// sentinel check is an exact match against the entire remainder rather than
// a prefix test: trailing garbage after a look-alike sentinel must fail
// instead of silently being treated as the end of the list.
func TestParseGetServersResponseEOTIsWholeInputEquality(t *testing.T) {
	payload := []byte("getserversResponse")
	payload = append(payload, eotSentinel...)
	payload = append(payload, 'X')

	_, _, err := ParseGetServersResponse(payload)
	require.NotNil(t, err)
	assert.Equal(t, DomainTail, err.Domain)
}

func TestParseGetServersResponseTruncatedAddressIsError(t *testing.T) {
	payload := []byte("getserversResponse")
	payload = append(payload, '\\', 1, 2, 3)

	_, _, err := ParseGetServersResponse(payload)
	require.NotNil(t, err)
}
