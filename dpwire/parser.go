package dpwire

import (
	"bytes"
	"encoding/binary"
	"net/netip"

	"github.com/dpmaster-go/dpwire/internal/grammar"
)

// messagePrefix is the 4-byte sentinel every dpmaster datagram begins with.
var messagePrefix = []byte{0xFF, 0xFF, 0xFF, 0xFF}

var eotSentinel = []byte("\\EOT\x00\x00\x00")

func isNotBackslash(b byte) bool { return b != '\\' }
func isNotSpace(b byte) bool     { return b != ' ' }
func isNotDigitOrSpace(b byte) bool {
	return !(grammar.IsDigit(b) || grammar.IsSpace(b))
}

func parseMessagePrefix(input []byte) ([]byte, *ParseError) {
	rest, err := grammar.Tag(input, messagePrefix)
	if err != nil {
		return nil, grammar.WithDomain(DomainFraming, grammar.WithContext("message prefix", err))
	}
	return rest, nil
}

// ---- heartbeat ----

// ParseHeartbeat parses a `heartbeat` command payload (without the 4-byte
// message prefix): `"heartbeat" SP+ <protocol-name> LF*`.
func ParseHeartbeat(input []byte) ([]byte, Heartbeat, *ParseError) {
	rest, err := grammar.Tag(input, []byte("heartbeat"))
	if err != nil {
		return nil, Heartbeat{}, grammar.WithDomain(DomainCommand, grammar.WithContext("heartbeat command", err))
	}
	rest, _, err = grammar.TakeWhile1(rest, grammar.IsSpace)
	if err != nil {
		return nil, Heartbeat{}, grammar.WithContext("heartbeat separator", err)
	}
	rest, nameBytes, err := grammar.TakeWhile1(rest, func(b byte) bool { return !grammar.IsNewline(b) })
	if err != nil {
		return nil, Heartbeat{}, grammar.WithContext("protocol name", err)
	}
	rest, _ = grammar.TakeWhile(rest, grammar.IsNewline)
	protocolName, constructErr := NewProtocolName(nameBytes)
	if constructErr != nil {
		return nil, Heartbeat{}, grammar.WithDomain(DomainSemantic, grammar.WithContext("protocol name", grammar.New(nameBytes, grammar.KindChar)))
	}
	return rest, NewHeartbeat(protocolName), nil
}

// ParseHeartbeatMessage parses a full heartbeat datagram, including the
// 4-byte message prefix.
func ParseHeartbeatMessage(input []byte) ([]byte, Heartbeat, *ParseError) {
	rest, err := parseMessagePrefix(input)
	if err != nil {
		return nil, Heartbeat{}, err
	}
	return ParseHeartbeat(rest)
}

// ---- getinfo ----

// ParseGetInfo parses a `getinfo` command payload (without the message
// prefix): `"getinfo" SP+ <challenge>`, where challenge is the remainder of
// the datagram.
func ParseGetInfo(input []byte) ([]byte, GetInfo, *ParseError) {
	rest, err := grammar.Tag(input, []byte("getinfo"))
	if err != nil {
		return nil, GetInfo{}, grammar.WithDomain(DomainCommand, grammar.WithContext("getinfo command", err))
	}
	rest, _, err = grammar.TakeWhile1(rest, grammar.IsSpace)
	if err != nil {
		return nil, GetInfo{}, grammar.WithContext("getinfo separator", err)
	}
	challenge, constructErr := NewChallenge(rest)
	if constructErr != nil {
		return nil, GetInfo{}, grammar.WithDomain(DomainSemantic, grammar.WithContext("challenge", grammar.New(rest, grammar.KindChar)))
	}
	return nil, NewGetInfo(challenge), nil
}

// ParseGetInfoMessage parses a full getinfo datagram, including the 4-byte message prefix.
func ParseGetInfoMessage(input []byte) ([]byte, GetInfo, *ParseError) {
	rest, err := parseMessagePrefix(input)
	if err != nil {
		return nil, GetInfo{}, err
	}
	return ParseGetInfo(rest)
}

// ---- infoResponse ----

// ParseInfoResponse parses an `infoResponse` command payload (without the
// message prefix): `"infoResponse" LF ( "\" <key> "\" <value> )+`.
func ParseInfoResponse(input []byte) ([]byte, InfoResponse, *ParseError) {
	rest, err := grammar.Tag(input, []byte("infoResponse"))
	if err != nil {
		return nil, InfoResponse{}, grammar.WithDomain(DomainCommand, grammar.WithContext("infoResponse command", err))
	}
	rest, err = grammar.Tag(rest, []byte("\n"))
	if err != nil {
		return nil, InfoResponse{}, grammar.WithContext("infoResponse separator", err)
	}

	info := NewInfo()
	for first := true; first || len(rest) > 0; first = false {
		var key InfoKey
		var value InfoValue
		var parseErr *ParseError
		rest, key, parseErr = parseInfoEntryKey(rest)
		if parseErr != nil {
			return nil, InfoResponse{}, grammar.WithContext("info key", parseErr)
		}
		rest, value, parseErr = parseInfoEntryValue(rest)
		if parseErr != nil {
			return nil, InfoResponse{}, grammar.WithContext("info value", parseErr)
		}
		info.Set(key, value)
	}
	return rest, NewInfoResponse(info), nil
}

func parseInfoEntryKey(input []byte) ([]byte, InfoKey, *ParseError) {
	rest, err := grammar.Tag(input, []byte("\\"))
	if err != nil {
		return nil, InfoKey{}, err
	}
	rest, keyBytes, err := grammar.TakeWhile1(rest, isNotBackslash)
	if err != nil {
		return nil, InfoKey{}, err
	}
	key, constructErr := NewInfoKey(keyBytes)
	if constructErr != nil {
		return nil, InfoKey{}, grammar.New(keyBytes, grammar.KindChar)
	}
	return rest, key, nil
}

func parseInfoEntryValue(input []byte) ([]byte, InfoValue, *ParseError) {
	rest, err := grammar.Tag(input, []byte("\\"))
	if err != nil {
		return nil, InfoValue{}, err
	}
	rest, valBytes, err := grammar.TakeWhile1(rest, isNotBackslash)
	if err != nil {
		return nil, InfoValue{}, err
	}
	value, constructErr := NewInfoValue(valBytes)
	if constructErr != nil {
		return nil, InfoValue{}, grammar.New(valBytes, grammar.KindChar)
	}
	return rest, value, nil
}

// ParseInfoResponseMessage parses a full infoResponse datagram, including the 4-byte message prefix.
func ParseInfoResponseMessage(input []byte) ([]byte, InfoResponse, *ParseError) {
	rest, err := parseMessagePrefix(input)
	if err != nil {
		return nil, InfoResponse{}, err
	}
	return ParseInfoResponse(rest)
}

// ---- getservers ----

func parseGameName(input []byte) ([]byte, *GameName, *ParseError) {
	rest, token := grammar.Opt(input, func(in []byte) ([]byte, []byte, *grammar.ParseError) {
		return grammar.TakeWhile1(in, isNotDigitOrSpace)
	})
	if token == nil {
		return rest, nil, nil
	}
	name, err := NewGameName(token)
	if err != nil {
		return nil, nil, grammar.WithDomain(DomainSemantic, grammar.WithContext("game name", grammar.New(token, grammar.KindChar)))
	}
	return rest, &name, nil
}

func parseProtocolNumber(input []byte) ([]byte, ProtocolNumber, *ParseError) {
	rest, digits := grammar.TakeWhile(input, grammar.IsDigit)
	n, err := grammar.ParseUint32Decimal(digits)
	if err != nil {
		return nil, 0, grammar.WithDomain(DomainSemantic, grammar.WithContext("protocol number", err))
	}
	return rest, ProtocolNumber(n), nil
}

type filterOptionKind int

const (
	filterOptionGametype filterOptionKind = iota
	filterOptionEmpty
	filterOptionFull
)

type filterOption struct {
	kind     filterOptionKind
	gametype GameType
}

func parseFilterOptionGametype(input []byte) ([]byte, filterOption, *ParseError) {
	rest, err := grammar.Tag(input, []byte("gametype="))
	if err != nil {
		return nil, filterOption{}, err
	}
	rest, token, err := grammar.TakeWhile1(rest, isNotSpace)
	if err != nil {
		return nil, filterOption{}, err
	}
	gt, _ := NewGameType(token)
	return rest, filterOption{kind: filterOptionGametype, gametype: gt}, nil
}

func parseFilterOptionEmpty(input []byte) ([]byte, filterOption, *ParseError) {
	rest, err := grammar.Tag(input, []byte("empty"))
	if err != nil {
		return nil, filterOption{}, err
	}
	return rest, filterOption{kind: filterOptionEmpty}, nil
}

func parseFilterOptionFull(input []byte) ([]byte, filterOption, *ParseError) {
	rest, err := grammar.Tag(input, []byte("full"))
	if err != nil {
		return nil, filterOption{}, err
	}
	return rest, filterOption{kind: filterOptionFull}, nil
}

func parseFilterOption(input []byte) ([]byte, filterOption, *ParseError) {
	if rest, opt, err := parseFilterOptionGametype(input); err == nil {
		return rest, opt, nil
	}
	if rest, opt, err := parseFilterOptionEmpty(input); err == nil {
		return rest, opt, nil
	}
	if rest, opt, err := parseFilterOptionFull(input); err == nil {
		return rest, opt, nil
	}
	return nil, filterOption{}, grammar.WithContext("filter option", grammar.New(input, grammar.KindAlt))
}

func parseFilterOptions(input []byte) ([]byte, FilterOptions, *ParseError) {
	var gametype *GameType
	empty, full := false, false

	rest := input
	for {
		newRest, opt, err := parseFilterOption(rest)
		if err != nil {
			break
		}
		switch opt.kind {
		case filterOptionGametype:
			gt := opt.gametype
			gametype = &gt
		case filterOptionEmpty:
			empty = true
		case filterOptionFull:
			full = true
		}
		rest = newRest
		if sepRest, _, sepErr := grammar.TakeWhile1(rest, grammar.IsSpace); sepErr == nil {
			rest = sepRest
			continue
		}
		break
	}
	return rest, NewFilterOptions(gametype, empty, full), nil
}

// ParseGetServers parses a `getservers` command payload (without the
// message prefix):
// `"getservers" SP+ [ <game-name> SP+ ] <protocol-number> ( SP+ <filter-option> )*`.
func ParseGetServers(input []byte) ([]byte, GetServers, *ParseError) {
	rest, err := grammar.Tag(input, []byte("getservers"))
	if err != nil {
		return nil, GetServers{}, grammar.WithDomain(DomainCommand, grammar.WithContext("getservers command", err))
	}
	rest, _, err = grammar.TakeWhile1(rest, grammar.IsSpace)
	if err != nil {
		return nil, GetServers{}, grammar.WithContext("getservers separator", err)
	}

	rest, gameName, perr := parseGameName(rest)
	if perr != nil {
		return nil, GetServers{}, perr
	}
	rest, _ = grammar.TakeWhile(rest, grammar.IsSpace)

	rest, protocolNumber, perr := parseProtocolNumber(rest)
	if perr != nil {
		return nil, GetServers{}, perr
	}
	rest, _ = grammar.TakeWhile(rest, grammar.IsSpace)

	rest, filter, perr := parseFilterOptions(rest)
	if perr != nil {
		return nil, GetServers{}, perr
	}

	return rest, NewGetServers(gameName, protocolNumber, filter), nil
}

// ParseGetServersMessage parses a full getservers datagram, including the 4-byte message prefix.
func ParseGetServersMessage(input []byte) ([]byte, GetServers, *ParseError) {
	rest, err := parseMessagePrefix(input)
	if err != nil {
		return nil, GetServers{}, err
	}
	return ParseGetServers(rest)
}

// ---- getserversResponse ----

func parseSocketAddr4(input []byte) (netip.AddrPort, []byte, *ParseError) {
	if len(input) < 6 {
		return netip.AddrPort{}, nil, grammar.WithContext("server address", grammar.New(input, grammar.KindTakeWhile1))
	}
	ip := netip.AddrFrom4([4]byte{input[0], input[1], input[2], input[3]})
	port := binary.BigEndian.Uint16(input[4:6])
	return netip.AddrPortFrom(ip, port), input[6:], nil
}

// ParseGetServersResponse parses a `getserversResponse` command payload
// (without the message prefix):
// `"getserversResponse" ( "\" <ipv4:4> <port:be_u16> )* [ "\EOT\0\0\0" ]`.
//
// The EOT sentinel is matched against the whole remaining input, not as a
// prefix, so a sentinel-like sequence followed by further bytes is never
// taken as the end of the list. An address whose bytes spell "EOT\0" with
// port 0 is only read as the sentinel when it is the final entry, since its
// seven wire bytes are then identical to the sentinel's.
func ParseGetServersResponse(input []byte) ([]byte, GetServersResponse, *ParseError) {
	rest, err := grammar.Tag(input, []byte("getserversResponse"))
	if err != nil {
		return nil, GetServersResponse{}, grammar.WithDomain(DomainCommand, grammar.WithContext("getserversResponse command", err))
	}

	var servers []netip.AddrPort
	for {
		if len(rest) == 0 {
			return rest, NewGetServersResponse(servers, false), nil
		}
		if bytes.Equal(rest, eotSentinel) {
			return nil, NewGetServersResponse(servers, true), nil
		}
		afterSep, sepErr := grammar.Tag(rest, []byte("\\"))
		if sepErr != nil {
			return nil, GetServersResponse{}, grammar.WithDomain(DomainTail, grammar.WithContext("server entry", sepErr))
		}
		addr, afterAddr, addrErr := parseSocketAddr4(afterSep)
		if addrErr != nil {
			return nil, GetServersResponse{}, grammar.WithDomain(DomainTail, addrErr)
		}
		servers = append(servers, addr)
		rest = afterAddr
	}
}

// ParseGetServersResponseMessage parses a full getserversResponse datagram, including the 4-byte message prefix.
func ParseGetServersResponseMessage(input []byte) ([]byte, GetServersResponse, *ParseError) {
	rest, err := parseMessagePrefix(input)
	if err != nil {
		return nil, GetServersResponse{}, err
	}
	return ParseGetServersResponse(rest)
}
