package dpwire

import (
	"errors"
	"fmt"

	"github.com/dpmaster-go/dpwire/internal/grammar"
)

// ParseError is the structured parse-error chain: a linked chain of (input
// slice, kind) pairs enriched with optional named context and a domain code
// as it unwinds through the parser's combinators.
type ParseError = grammar.ParseError

// Kind identifies the low-level combinator mismatch that produced a ParseError.
type Kind = grammar.Kind

// Domain is the high-level classification attached to a ParseError.
type Domain = grammar.Domain

// Re-exported Kind and Domain values, so callers never need to import
// internal/grammar directly to inspect a ParseError.
const (
	KindTag        = grammar.KindTag
	KindChar       = grammar.KindChar
	KindTakeWhile1 = grammar.KindTakeWhile1
	KindDigit      = grammar.KindDigit
	KindAlt        = grammar.KindAlt
	KindEof        = grammar.KindEof
	KindOverflow   = grammar.KindOverflow

	DomainNone     = grammar.DomainNone
	DomainFraming  = grammar.DomainFraming
	DomainCommand  = grammar.DomainCommand
	DomainSyntax   = grammar.DomainSyntax
	DomainSemantic = grammar.DomainSemantic
	DomainTail     = grammar.DomainTail
)

// ErrEmptyChallenge is returned by NewChallenge for a zero-length challenge.
var ErrEmptyChallenge = errors.New("dpwire: challenge must not be empty")

// ErrInvalidEndOfTransmission names the condition where a getserversResponse
// payload's trailing bytes are neither a complete address nor the 7-byte EOT
// sentinel. The parser does not return it: ParseGetServersResponse reports
// such trailing bytes as a *ParseError whose Domain is DomainTail.
var ErrInvalidEndOfTransmission = errors.New("dpwire: invalid end-of-transmission marker")

// InvalidByteError reports the first byte (and its offset) that violated a
// byte-constrained wrapper type's constraints.
type InvalidByteError struct {
	// Field names which wrapper type rejected the byte ("InfoKey", "InfoValue", "ProtocolName").
	Field string
	// Byte is the first offending byte.
	Byte byte
	// Offset is its position within the rejected input.
	Offset int
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("dpwire: invalid %s byte 0x%02x at offset %d", e.Field, e.Byte, e.Offset)
}

// InvalidGameNameError reports the offending byte in a rejected GameName.
// Kept distinct from InvalidByteError so a caller can switch on the
// concrete type to tell which field was rejected.
type InvalidGameNameError struct {
	Byte   byte
	Offset int
}

func (e *InvalidGameNameError) Error() string {
	return fmt.Sprintf("dpwire: invalid game name byte 0x%02x at offset %d", e.Byte, e.Offset)
}

// InvalidGameTypeError reports the offending byte in a rejected GameType.
type InvalidGameTypeError struct {
	Byte   byte
	Offset int
}

func (e *InvalidGameTypeError) Error() string {
	return fmt.Sprintf("dpwire: invalid gametype byte 0x%02x at offset %d", e.Byte, e.Offset)
}

// InvalidChallengeError reports the offending byte in a rejected Challenge.
type InvalidChallengeError struct {
	Byte   byte
	Offset int
}

func (e *InvalidChallengeError) Error() string {
	return fmt.Sprintf("dpwire: invalid challenge byte 0x%02x at offset %d", e.Byte, e.Offset)
}
