package dpwire

import (
	"bytes"
	"encoding/binary"
	"strconv"
)

// SerializeHeartbeatMessage renders msg as a full heartbeat datagram,
// including the 4-byte message prefix.
func SerializeHeartbeatMessage(msg Heartbeat) []byte {
	var buf bytes.Buffer
	buf.Write(messagePrefix)
	writeHeartbeat(&buf, msg)
	return buf.Bytes()
}

// SerializeHeartbeat renders msg as a `heartbeat` command payload, without
// the message prefix.
func SerializeHeartbeat(msg Heartbeat) []byte {
	var buf bytes.Buffer
	writeHeartbeat(&buf, msg)
	return buf.Bytes()
}

func writeHeartbeat(buf *bytes.Buffer, msg Heartbeat) {
	buf.WriteString("heartbeat")
	buf.WriteByte(' ')
	buf.Write(msg.ProtocolName().Bytes())
	// The grammar accepts zero or more trailing line feeds on parse; the
	// serializer always emits exactly one.
	buf.WriteByte('\n')
}

// SerializeGetInfoMessage renders msg as a full getinfo datagram, including
// the 4-byte message prefix.
func SerializeGetInfoMessage(msg GetInfo) []byte {
	var buf bytes.Buffer
	buf.Write(messagePrefix)
	writeGetInfo(&buf, msg)
	return buf.Bytes()
}

// SerializeGetInfo renders msg as a `getinfo` command payload, without the
// message prefix.
func SerializeGetInfo(msg GetInfo) []byte {
	var buf bytes.Buffer
	writeGetInfo(&buf, msg)
	return buf.Bytes()
}

func writeGetInfo(buf *bytes.Buffer, msg GetInfo) {
	buf.WriteString("getinfo")
	buf.WriteByte(' ')
	buf.Write(msg.Challenge().Bytes())
}

// SerializeInfoResponseMessage renders msg as a full infoResponse datagram,
// including the 4-byte message prefix.
func SerializeInfoResponseMessage(msg InfoResponse) []byte {
	var buf bytes.Buffer
	buf.Write(messagePrefix)
	writeInfoResponse(&buf, msg)
	return buf.Bytes()
}

// SerializeInfoResponse renders msg as an `infoResponse` command payload,
// without the message prefix.
func SerializeInfoResponse(msg InfoResponse) []byte {
	var buf bytes.Buffer
	writeInfoResponse(&buf, msg)
	return buf.Bytes()
}

func writeInfoResponse(buf *bytes.Buffer, msg InfoResponse) {
	buf.WriteString("infoResponse")
	buf.WriteByte('\n')
	for _, entry := range msg.Info().Entries() {
		buf.WriteByte('\\')
		buf.Write(entry.Key.Bytes())
		buf.WriteByte('\\')
		buf.Write(entry.Value.Bytes())
	}
}

// SerializeGetServersMessage renders msg as a full getservers datagram,
// including the 4-byte message prefix.
func SerializeGetServersMessage(msg GetServers) []byte {
	var buf bytes.Buffer
	buf.Write(messagePrefix)
	writeGetServers(&buf, msg)
	return buf.Bytes()
}

// SerializeGetServers renders msg as a `getservers` command payload,
// without the message prefix.
func SerializeGetServers(msg GetServers) []byte {
	var buf bytes.Buffer
	writeGetServers(&buf, msg)
	return buf.Bytes()
}

func writeGetServers(buf *bytes.Buffer, msg GetServers) {
	buf.WriteString("getservers")
	buf.WriteByte(' ')
	if name := msg.GameName(); name != nil {
		buf.Write(name.Bytes())
		buf.WriteByte(' ')
	}
	buf.WriteString(strconv.FormatUint(uint64(msg.ProtocolNumber()), 10))
	writeFilterOptions(buf, msg.Filter())
}

// Field order here (gametype, then empty, then full) is fixed: it is not
// dictated by the grammar, which accepts any order and any repetition, but
// this serializer always emits the canonical order so that re-serializing a
// parsed message is deterministic.
func writeFilterOptions(buf *bytes.Buffer, filter FilterOptions) {
	if gt := filter.Gametype(); gt != nil {
		buf.WriteByte(' ')
		buf.WriteString("gametype=")
		buf.Write(gt.Bytes())
	}
	if filter.Empty() {
		buf.WriteByte(' ')
		buf.WriteString("empty")
	}
	if filter.Full() {
		buf.WriteByte(' ')
		buf.WriteString("full")
	}
}

// SerializeGetServersResponseMessage renders msg as a full
// getserversResponse datagram, including the 4-byte message prefix.
func SerializeGetServersResponseMessage(msg GetServersResponse) []byte {
	var buf bytes.Buffer
	buf.Write(messagePrefix)
	writeGetServersResponse(&buf, msg)
	return buf.Bytes()
}

// SerializeGetServersResponse renders msg as a `getserversResponse` command
// payload, without the message prefix.
func SerializeGetServersResponse(msg GetServersResponse) []byte {
	var buf bytes.Buffer
	writeGetServersResponse(&buf, msg)
	return buf.Bytes()
}

func writeGetServersResponse(buf *bytes.Buffer, msg GetServersResponse) {
	buf.WriteString("getserversResponse")
	for _, addr := range msg.Servers() {
		buf.WriteByte('\\')
		ip4 := addr.Addr().As4()
		buf.Write(ip4[:])
		var portBytes [2]byte
		binary.BigEndian.PutUint16(portBytes[:], addr.Port())
		buf.Write(portBytes[:])
	}
	if msg.EOT() {
		buf.Write(eotSentinel)
	}
}
