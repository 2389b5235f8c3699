// Package grammar implements the byte-oriented parser combinators and the
// structured parse-error chain shared by every dpmaster message parser.
//
// There is no general-purpose parser-combinator dependency in this module
// (see the project's DESIGN.md for why); this package is the idiomatic-Go
// stand-in for the nom combinator stack the protocol was originally
// specified against.
package grammar

import "fmt"

// Kind identifies what a combinator expected and didn't find. It plays the
// role nom's ErrorKind plays in the original grammar: a low-level,
// combinator-scoped mismatch code.
type Kind int

const (
	// KindTag means a literal byte sequence was expected and not found.
	KindTag Kind = iota
	// KindChar means a single expected byte was not found.
	KindChar
	// KindTakeWhile1 means a non-empty run of bytes matching a predicate was required but empty.
	KindTakeWhile1
	// KindDigit means an ASCII decimal digit run was expected.
	KindDigit
	// KindAlt means none of a set of alternatives matched.
	KindAlt
	// KindEof means the input was expected to be fully consumed and wasn't.
	KindEof
	// KindOverflow means a numeric conversion did not fit its target width.
	KindOverflow
)

func (k Kind) String() string {
	switch k {
	case KindTag:
		return "tag mismatch"
	case KindChar:
		return "expected character"
	case KindTakeWhile1:
		return "take-while failed"
	case KindDigit:
		return "expected digit"
	case KindAlt:
		return "no alternative matched"
	case KindEof:
		return "expected end of input"
	case KindOverflow:
		return "numeric overflow"
	default:
		return "unknown"
	}
}

// Domain is a high-level, protocol-specific classification attached to a
// ParseError as it unwinds through named contexts.
type Domain int

const (
	// DomainNone means no domain classification has been attached.
	DomainNone Domain = iota
	// DomainFraming means the 4-byte message prefix was missing or wrong.
	DomainFraming
	// DomainCommand means the command token was absent or misspelled.
	DomainCommand
	// DomainSyntax means a combinator-level mismatch occurred.
	DomainSyntax
	// DomainSemantic means a value violated a field-level invariant (overflow, invalid byte, empty).
	DomainSemantic
	// DomainTail means residual bytes remained after a message that expects to consume all input.
	DomainTail
)

func (d Domain) String() string {
	switch d {
	case DomainFraming:
		return "framing"
	case DomainCommand:
		return "command"
	case DomainSyntax:
		return "syntax"
	case DomainSemantic:
		return "semantic"
	case DomainTail:
		return "tail"
	default:
		return "none"
	}
}

// ParseError is a linked chain of (input slice, kind) pairs enriched with
// optional named context and a domain code as it propagates through
// Alt/Preceded/Context-style combinators. It never unwinds past the point
// where a combinator returned it; each layer only appends the context it
// knows about.
type ParseError struct {
	// Input is the remaining input slice at the point this layer observed the failure.
	Input []byte
	// Kind is the low-level combinator mismatch.
	Kind Kind
	// Context is an optional named stage ("message prefix", "protocol number", ...).
	Context string
	// Domain is an optional high-level classification.
	Domain Domain
	// Cause is the next (inner) link in the chain, or nil at the root.
	Cause *ParseError
}

// New creates a root ParseError with no context or domain attached yet.
func New(input []byte, kind Kind) *ParseError {
	return &ParseError{Input: input, Kind: kind}
}

// WithContext wraps err with a named stage, returning a new outer link.
func WithContext(name string, err *ParseError) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Input: err.Input, Kind: err.Kind, Context: name, Domain: err.Domain, Cause: err}
}

// WithDomain attaches a high-level domain classification to err, returning a new outer link.
func WithDomain(domain Domain, err *ParseError) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Input: err.Input, Kind: err.Kind, Context: err.Context, Domain: domain, Cause: err}
}

// Error implements the error interface with a short, single-line summary.
// Callers who want the full chain should walk Cause directly.
func (e *ParseError) Error() string {
	if e == nil {
		return "<nil parse error>"
	}
	n := len(e.Input)
	const maxShown = 16
	shown := n
	if shown > maxShown {
		shown = maxShown
	}
	if e.Context != "" {
		return fmt.Sprintf("parse error: %s (%s) near %q, %d bytes remaining", e.Context, e.Kind, e.Input[:shown], n)
	}
	if e.Domain != DomainNone {
		return fmt.Sprintf("parse error: %s: %s near %q, %d bytes remaining", e.Domain, e.Kind, e.Input[:shown], n)
	}
	return fmt.Sprintf("parse error: %s near %q, %d bytes remaining", e.Kind, e.Input[:shown], n)
}

// Unwrap returns the next link in the chain, enabling errors.Is/As across the whole stack.
func (e *ParseError) Unwrap() error {
	if e == nil || e.Cause == nil {
		return nil
	}
	return e.Cause
}
