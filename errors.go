package argparse

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrHelp is returned by Parse when usage help was requested via
// HelpCallback. It is a cooperative-termination signal, not a parse
// failure; callers should test for it with errors.Is and exit cleanly.
var ErrHelp = errors.New("argparse: help requested")

// ErrStop can be returned by a Callback to end parsing early. The engine
// treats it as success: all tokens not yet classified are returned as
// positionals.
var ErrStop = errors.New("argparse: stop parsing")

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// ErrorUnknownOption reports an option token that matches no
	// descriptor.
	ErrorUnknownOption ErrorKind = iota
	// ErrorAmbiguousOption reports a long-option prefix matching two or
	// more descriptors.
	ErrorAmbiguousOption
	// ErrorMissingValue reports a value-taking option at the end of input.
	ErrorMissingValue
	// ErrorInvalidInteger reports integer value text that does not parse,
	// or overflows the destination.
	ErrorInvalidInteger
	// ErrorUnexpectedValue reports an inline value attached to an option
	// that takes none, e.g. --verbose=true.
	ErrorUnexpectedValue
)

// ParseError is a fatal parsing failure. Destination cells written before
// the failing token remain written; there is no rollback.
type ParseError struct {
	Kind       ErrorKind
	Option     string   // the option as written, e.g. "--count" or "-n"
	Text       string   // offending value text, for ErrorInvalidInteger
	Detail     string   // extra diagnostic, e.g. "out of range"
	Candidates []string // matching long names, for ErrorAmbiguousOption
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrorUnknownOption:
		return fmt.Sprintf("unknown option %s", e.Option)
	case ErrorAmbiguousOption:
		return fmt.Sprintf("ambiguous option %s (could be --%s)",
			e.Option, strings.Join(e.Candidates, ", --"))
	case ErrorMissingValue:
		return fmt.Sprintf("option %s requires a value", e.Option)
	case ErrorInvalidInteger:
		if e.Detail != "" {
			return fmt.Sprintf("option %s: integer value %q %s", e.Option, e.Text, e.Detail)
		}
		return fmt.Sprintf("option %s expects an integer value, got %q", e.Option, e.Text)
	case ErrorUnexpectedValue:
		return fmt.Sprintf("option %s takes no value", e.Option)
	}
	return fmt.Sprintf("bad option %s", e.Option)
}
