package argparse

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParserFlags configure parsing behavior.
type ParserFlags uint

const (
	// StopAtNonOption makes the first token that does not start with "-"
	// end option matching; it and every token after it are returned as
	// positionals verbatim.
	StopAtNonOption ParserFlags = 1 << iota
)

// Parser matches a token vector against an option table, writing values
// through the table's destination cells and collecting positional tokens.
//
// The table is read-only and may be shared across parsers, provided
// destinations do not alias. Each Parse call owns its transient state
// exclusively, so a single Parser must not be used concurrently.
type Parser struct {
	options     Options
	usages      []string
	flags       ParserFlags
	description string
	epilog      string

	// HelpWriter receives usage text rendered by HelpCallback. Defaults
	// to os.Stdout.
	HelpWriter io.Writer

	// transient, valid for the duration of one Parse call
	args    []string
	out     []string
	stopped bool
}

// NewParser creates a Parser over the given option table and usage-pattern
// lines. It panics if the table is not terminated by a single End
// descriptor, which is always a programming error.
func NewParser(options Options, usages []string, flags ParserFlags) *Parser {
	if !options.terminated() {
		panic("argparse: option table must end with exactly one End descriptor")
	}
	return &Parser{
		options:    options,
		usages:     usages,
		flags:      flags,
		HelpWriter: os.Stdout,
	}
}

// Describe sets free text printed after the usage lines (description) and
// after the option list (epilog).
func (p *Parser) Describe(description, epilog string) {
	p.description = description
	p.epilog = epilog
}

// Options returns the parser's option table, for downstream consumers such
// as custom help renderers.
func (p *Parser) Options() Options {
	return p.options
}

// Parse walks args left to right, classifying each token as a long option,
// a short-option cluster, or a positional. Option values are written
// through their destination cells as they are matched; the positional
// tokens are returned in input order.
//
// A literal "--" ends option matching unconditionally; everything after it
// is positional. A lone "-" is a positional. Values are consumed either
// inline ("--name=v", "-nv") or from the next token.
//
// Errors are fatal and immediate. Destinations written before the failing
// token remain written. ErrHelp is returned when help was requested; it is
// distinct from both success and failure.
func (p *Parser) Parse(args []string) ([]string, error) {
	p.args = args
	p.out = nil
	p.stopped = false

	for len(p.args) > 0 && !p.stopped {
		arg := p.args[0]
		if arg == "--" {
			p.args = p.args[1:]
			break
		}
		if arg == "-" {
			// conventionally "read from stdin"
			p.out = append(p.out, arg)
			p.args = p.args[1:]
			continue
		}
		if len(arg) < 2 || arg[0] != '-' {
			if p.flags&StopAtNonOption != 0 {
				break
			}
			p.out = append(p.out, arg)
			p.args = p.args[1:]
			continue
		}
		p.args = p.args[1:]
		var err error
		if strings.HasPrefix(arg, "--") {
			err = p.parseLong(arg[2:])
		} else {
			err = p.parseShort(arg[1:])
		}
		if err != nil {
			p.args, p.out = nil, nil
			return nil, err
		}
	}

	out := append(p.out, p.args...)
	p.args, p.out = nil, nil
	return out, nil
}

// parseLong handles one long-option token, already stripped of its leading
// dashes.
func (p *Parser) parseLong(arg string) error {
	name := arg
	src := valueSource{}
	if i := strings.IndexByte(arg, '='); i >= 0 {
		name = arg[:i]
		inline := arg[i+1:]
		src.inline = &inline
	}
	written := "--" + name
	if name == "" {
		// "--=value"; a bare "--" never reaches here
		return &ParseError{Kind: ErrorUnknownOption, Option: written}
	}

	// An exact name wins over every other interpretation, so an option
	// literally named "no-color" stays addressable.
	if opt := p.options.findLong(name); opt != nil {
		return p.applyOption(opt, written, src, false)
	}

	if strings.HasPrefix(name, "no-") {
		opt, err := p.resolveNegated(name[len("no-"):], written)
		if err != nil {
			return err
		}
		if opt != nil {
			return p.applyOption(opt, written, src, true)
		}
	}

	candidates := p.options.matchLongPrefix(name)
	switch len(candidates) {
	case 0:
		return &ParseError{Kind: ErrorUnknownOption, Option: written}
	case 1:
		return p.applyOption(candidates[0], written, src, false)
	default:
		return &ParseError{
			Kind:       ErrorAmbiguousOption,
			Option:     written,
			Candidates: longNames(candidates),
		}
	}
}

// resolveNegated resolves the residual name of a --no-<name> token to a
// negatable descriptor, by exact match or unique prefix. A nil, nil return
// means the token is not a negation and should resolve normally.
func (p *Parser) resolveNegated(rest, written string) (*Option, error) {
	if rest == "" {
		return nil, nil
	}
	if opt := p.options.findLong(rest); opt != nil {
		if !opt.negatable() {
			return nil, nil
		}
		return opt, nil
	}
	var negatable []*Option
	for _, opt := range p.options.matchLongPrefix(rest) {
		if opt.negatable() {
			negatable = append(negatable, opt)
		}
	}
	switch len(negatable) {
	case 0:
		return nil, nil
	case 1:
		return negatable[0], nil
	default:
		return nil, &ParseError{
			Kind:       ErrorAmbiguousOption,
			Option:     written,
			Candidates: longNames(negatable),
		}
	}
}

// parseShort handles one short-option token, already stripped of its
// leading dash. Characters are unpacked as a cluster: no-value options let
// scanning continue, a value-taking option consumes the rest of the token
// (or the next token) and ends the cluster.
func (p *Parser) parseShort(cluster string) error {
	runes := []rune(cluster)
	for i := 0; i < len(runes); i++ {
		written := "-" + string(runes[i])
		opt := p.options.findShort(runes[i])
		if opt == nil {
			return &ParseError{Kind: ErrorUnknownOption, Option: written}
		}
		if opt.takesValue() {
			src := valueSource{}
			if rest := string(runes[i+1:]); rest != "" {
				src.inline = &rest
			}
			return p.applyOption(opt, written, src, false)
		}
		if err := p.applyOption(opt, written, valueSource{}, false); err != nil {
			return err
		}
	}
	return nil
}

// valueSource is where an option's value text comes from: attached inline
// ("--name=v", "-nv") or, when inline is nil, the next whole token. Both
// forms are consumed identically.
type valueSource struct {
	inline *string
}

func (p *Parser) takeValue(written string, src valueSource) (string, error) {
	if src.inline != nil {
		return *src.inline, nil
	}
	if len(p.args) == 0 {
		return "", &ParseError{Kind: ErrorMissingValue, Option: written}
	}
	v := p.args[0]
	p.args = p.args[1:]
	return v, nil
}

// applyOption stores the option's value per its kind, then dispatches its
// callback. A nil destination cell is legal for no-value options; the
// callback still runs.
func (p *Parser) applyOption(opt *Option, written string, src valueSource, negated bool) error {
	switch opt.Kind {
	case KindBoolean:
		if src.inline != nil {
			return &ParseError{Kind: ErrorUnexpectedValue, Option: written}
		}
		if cell, ok := opt.Value.(*bool); ok && cell != nil {
			*cell = !negated
		}
	case KindBit:
		if src.inline != nil {
			return &ParseError{Kind: ErrorUnexpectedValue, Option: written}
		}
		bit, _ := opt.Data.(uint)
		if cell, ok := opt.Value.(*uint); ok && cell != nil {
			if negated {
				*cell &^= bit
			} else {
				*cell |= bit
			}
		}
	case KindInteger:
		text, err := p.takeValue(written, src)
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(text, 0, strconv.IntSize)
		if err != nil {
			perr := &ParseError{Kind: ErrorInvalidInteger, Option: written, Text: text}
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				perr.Detail = "out of range"
			}
			return perr
		}
		if cell, ok := opt.Value.(*int); ok && cell != nil {
			*cell = int(n)
		}
	case KindString:
		text, err := p.takeValue(written, src)
		if err != nil {
			return err
		}
		if cell, ok := opt.Value.(*string); ok && cell != nil {
			*cell = text
		}
	default:
		return errors.Errorf("argparse: descriptor for %s has non-matchable kind", written)
	}
	return p.dispatchCallback(opt, written)
}

func (p *Parser) dispatchCallback(opt *Option, written string) error {
	if opt.Callback == nil {
		return nil
	}
	err := opt.Callback(p, opt)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStop):
		p.stopped = true
		return nil
	case errors.Is(err, ErrHelp):
		return err
	default:
		return errors.Wrapf(err, "option %s", written)
	}
}

func longNames(opts []*Option) []string {
	names := make([]string, len(opts))
	for i, opt := range opts {
		names[i] = opt.Long
	}
	return names
}
