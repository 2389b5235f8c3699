package dpwire

import "net/netip"

// Heartbeat is the `heartbeat` message a game server sends to announce
// itself (or a state change) to the master server.
type Heartbeat struct {
	protocolName ProtocolName
}

// NewHeartbeat builds a Heartbeat message.
func NewHeartbeat(protocolName ProtocolName) Heartbeat {
	return Heartbeat{protocolName: protocolName}
}

// ProtocolName returns the heartbeat's protocol identifier.
func (h Heartbeat) ProtocolName() ProtocolName { return h.protocolName }

// Equal reports whether h and other carry the same protocol name.
func (h Heartbeat) Equal(other Heartbeat) bool { return h.protocolName.Equal(other.protocolName) }

// GetInfo is the `getinfo` message a master server (or a game client) sends
// to request a server's current configuration.
type GetInfo struct {
	challenge Challenge
}

// NewGetInfo builds a GetInfo message.
func NewGetInfo(challenge Challenge) GetInfo {
	return GetInfo{challenge: challenge}
}

// Challenge returns the request's anti-spoofing nonce.
func (g GetInfo) Challenge() Challenge { return g.challenge }

// Equal reports whether g and other carry the same challenge.
func (g GetInfo) Equal(other GetInfo) bool { return g.challenge.Equal(other.challenge) }

// InfoResponse is the `infoResponse` message a game server sends in answer
// to a `getinfo` request.
type InfoResponse struct {
	info *Info
}

// NewInfoResponse builds an InfoResponse message wrapping info.
func NewInfoResponse(info *Info) InfoResponse {
	return InfoResponse{info: info}
}

// Info returns the response's key/value map.
func (r InfoResponse) Info() *Info { return r.info }

// Equal reports whether r and other carry the same entries in the same order.
func (r InfoResponse) Equal(other InfoResponse) bool { return r.info.Equal(other.info) }

// GetServers is the `getservers` message a game client sends to the master
// server to request a list of registered servers.
type GetServers struct {
	gameName       *GameName
	protocolNumber ProtocolNumber
	filter         FilterOptions
}

// NewGetServers builds a GetServers message. gameName may be nil: the
// original Quake III dialect omits it, newer dialects require it.
func NewGetServers(gameName *GameName, protocolNumber ProtocolNumber, filter FilterOptions) GetServers {
	return GetServers{gameName: gameName, protocolNumber: protocolNumber, filter: filter}
}

// GameName returns the optional game name, or nil if absent.
func (g GetServers) GameName() *GameName { return g.gameName }

// ProtocolNumber returns the requested protocol revision.
func (g GetServers) ProtocolNumber() ProtocolNumber { return g.protocolNumber }

// Filter returns the request's filter options.
func (g GetServers) Filter() FilterOptions { return g.filter }

// Equal reports whether g and other are structurally identical.
func (g GetServers) Equal(other GetServers) bool {
	if g.protocolNumber != other.protocolNumber || !g.filter.Equal(other.filter) {
		return false
	}
	switch {
	case g.gameName == nil && other.gameName == nil:
		return true
	case g.gameName == nil || other.gameName == nil:
		return false
	default:
		return g.gameName.Equal(*other.gameName)
	}
}

// GetServersResponse is the master server's answer to a `getservers`
// request: zero or more server addresses, plus whether this datagram was
// the last one in the reply.
type GetServersResponse struct {
	servers []netip.AddrPort
	eot     bool
}

// NewGetServersResponse builds a GetServersResponse message. servers is
// copied; the stored order is the order servers will be re-serialized in.
func NewGetServersResponse(servers []netip.AddrPort, eot bool) GetServersResponse {
	out := make([]netip.AddrPort, len(servers))
	copy(out, servers)
	return GetServersResponse{servers: out, eot: eot}
}

// Servers returns the server list in wire order.
func (r GetServersResponse) Servers() []netip.AddrPort {
	out := make([]netip.AddrPort, len(r.servers))
	copy(out, r.servers)
	return out
}

// EOT reports whether the end-of-transmission sentinel was present.
func (r GetServersResponse) EOT() bool { return r.eot }

// Equal reports whether r and other carry the same servers, in the same order, with the same EOT flag.
func (r GetServersResponse) Equal(other GetServersResponse) bool {
	if r.eot != other.eot || len(r.servers) != len(other.servers) {
		return false
	}
	for i := range r.servers {
		if r.servers[i] != other.servers[i] {
			return false
		}
	}
	return true
}

// GetServersExt is the `getserversExt` message. Model only: no wire codec
// is implemented for the ext message family here.
type GetServersExt struct {
	gameName       GameName
	protocolNumber ProtocolNumber
	filter         FilterExtOptions
}

// NewGetServersExt builds a GetServersExt message. Unlike GetServers, the
// game name is mandatory in the ext dialect.
func NewGetServersExt(gameName GameName, protocolNumber ProtocolNumber, filter FilterExtOptions) GetServersExt {
	return GetServersExt{gameName: gameName, protocolNumber: protocolNumber, filter: filter}
}

// GameName returns the mandatory game name.
func (g GetServersExt) GameName() GameName { return g.gameName }

// ProtocolNumber returns the requested protocol revision.
func (g GetServersExt) ProtocolNumber() ProtocolNumber { return g.protocolNumber }

// Filter returns the request's extended filter options.
func (g GetServersExt) Filter() FilterExtOptions { return g.filter }

// GetServersExtResponse is the `getserversExtResponse` message (model only,
// same scope note as GetServersExt).
type GetServersExtResponse struct {
	servers []netip.AddrPort
	eot     bool
}

// NewGetServersExtResponse builds a GetServersExtResponse message. Unlike
// GetServersResponse, servers may be either IPv4 or IPv6 addresses.
func NewGetServersExtResponse(servers []netip.AddrPort, eot bool) GetServersExtResponse {
	out := make([]netip.AddrPort, len(servers))
	copy(out, servers)
	return GetServersExtResponse{servers: out, eot: eot}
}

// Servers returns the server list in wire order.
func (r GetServersExtResponse) Servers() []netip.AddrPort {
	out := make([]netip.AddrPort, len(r.servers))
	copy(out, r.servers)
	return out
}

// EOT reports whether the end-of-transmission sentinel was present.
func (r GetServersExtResponse) EOT() bool { return r.eot }
