package argparse

// Kind discriminates option descriptors.
type Kind int

const (
	// KindEnd terminates an option table. Every table must contain exactly
	// one End descriptor, as its last element.
	KindEnd Kind = iota
	// KindGroup introduces a group of options in help output. It carries
	// only help text and never matches a token.
	KindGroup
	// KindBoolean takes no value and sets its destination to true, or to
	// false via the negated --no-<name> form.
	KindBoolean
	// KindBit takes no value and sets (or clears, when negated) a single
	// bit in its destination mask. The bit is carried in Option.Data.
	KindBit
	// KindInteger consumes one value, parsed as a signed integer.
	KindInteger
	// KindString consumes one value, stored verbatim.
	KindString
)

// OptionFlags modify matching behavior for a single option.
type OptionFlags uint

const (
	// FlagNoNegation disables the --no-<name> negated form for a Boolean
	// or Bit option.
	FlagNoNegation OptionFlags = 1 << iota
)

// Callback is invoked after an option's value (if any) has been stored.
// Returning nil resumes normal parsing. Returning ErrStop ends parsing
// cooperatively: all remaining tokens are returned as positionals and Parse
// succeeds. Returning ErrHelp (as HelpCallback does) makes Parse return
// ErrHelp to the caller. Any other error aborts the parse.
type Callback func(p *Parser, opt *Option) error

// Option is a single declared option: its kind, names, destination cell,
// help text, and optional callback.
//
// Short and long names must be unique across the table (End and Group
// descriptors aside). The engine does not detect duplicates; the first
// declared match wins.
type Option struct {
	Kind     Kind
	Short    rune        // short name, 0 if none
	Long     string      // long name without leading dashes, "" if none
	Value    interface{} // destination cell; shape depends on Kind
	Help     string
	Callback Callback
	Data     interface{} // opaque callback payload; the bit for KindBit
	Flags    OptionFlags
}

func (o *Option) takesValue() bool {
	return o.Kind == KindInteger || o.Kind == KindString
}

func (o *Option) negatable() bool {
	return (o.Kind == KindBoolean || o.Kind == KindBit) && o.Flags&FlagNoNegation == 0
}

// matchable reports whether the descriptor participates in token matching.
func (o *Option) matchable() bool {
	return o.Kind != KindEnd && o.Kind != KindGroup
}

// Modifier customizes an Option at construction time.
type Modifier func(*Option)

// WithCallback attaches a callback to the option.
func WithCallback(cb Callback) Modifier {
	return func(o *Option) {
		o.Callback = cb
	}
}

// WithData attaches an opaque payload for the option's callback. Not
// interpreted by the engine, except that Bit overwrites it with the bit.
func WithData(data interface{}) Modifier {
	return func(o *Option) {
		o.Data = data
	}
}

// NoNegation disables the --no-<name> form for the option.
func NoNegation() Modifier {
	return func(o *Option) {
		o.Flags |= FlagNoNegation
	}
}

// End returns the table terminator. It must be the last element of every
// option table.
func End() Option {
	return Option{Kind: KindEnd}
}

// Group returns a group header shown before the options that follow it in
// help output.
func Group(help string) Option {
	return Option{Kind: KindGroup, Help: help}
}

// Boolean declares an option that takes no value and sets *value to true
// when seen, or to false via --no-<long>. value may be nil for
// callback-only options such as Help.
func Boolean(short rune, long string, value *bool, help string, mods ...Modifier) Option {
	return newOption(KindBoolean, short, long, value, help, mods)
}

// Bit declares an option that sets bit in *value when seen, or clears it
// via --no-<long>. Other bits are left untouched.
func Bit(short rune, long string, value *uint, bit uint, help string, mods ...Modifier) Option {
	o := newOption(KindBit, short, long, value, help, mods)
	o.Data = bit
	return o
}

// Integer declares an option that consumes one value, parsed as a signed
// integer. Base prefixes (0x, 0o, 0b, leading 0) are honored.
func Integer(short rune, long string, value *int, help string, mods ...Modifier) Option {
	return newOption(KindInteger, short, long, value, help, mods)
}

// String declares an option that consumes one value, stored verbatim.
func String(short rune, long string, value *string, help string, mods ...Modifier) Option {
	return newOption(KindString, short, long, value, help, mods)
}

// Help returns the built-in help option: -h, --help bound to HelpCallback.
func Help() Option {
	return Boolean('h', "help", nil, "show this help message and exit",
		WithCallback(HelpCallback), NoNegation())
}

func newOption(kind Kind, short rune, long string, value interface{}, help string, mods []Modifier) Option {
	o := Option{
		Kind:  kind,
		Short: short,
		Long:  long,
		Value: value,
		Help:  help,
	}
	for _, mod := range mods {
		mod(&o)
	}
	return o
}

// Options is an ordered option table, built by the caller and read-only to
// the engine: values are written through each Option's destination cell,
// never through the table itself.
type Options []Option

// terminated reports whether the table ends with its single End descriptor.
func (opts Options) terminated() bool {
	if len(opts) == 0 || opts[len(opts)-1].Kind != KindEnd {
		return false
	}
	for i := range opts[:len(opts)-1] {
		if opts[i].Kind == KindEnd {
			return false
		}
	}
	return true
}

// findShort returns the first matchable descriptor with the given short
// name, or nil.
func (opts Options) findShort(r rune) *Option {
	for i := range opts {
		o := &opts[i]
		if o.Kind == KindEnd {
			break
		}
		if o.matchable() && o.Short == r {
			return o
		}
	}
	return nil
}

// findLong returns the matchable descriptor whose long name equals name
// exactly, or nil.
func (opts Options) findLong(name string) *Option {
	for i := range opts {
		o := &opts[i]
		if o.Kind == KindEnd {
			break
		}
		if o.matchable() && o.Long != "" && o.Long == name {
			return o
		}
	}
	return nil
}

// matchLongPrefix returns every matchable descriptor whose long name starts
// with prefix, in declaration order.
func (opts Options) matchLongPrefix(prefix string) []*Option {
	var matches []*Option
	for i := range opts {
		o := &opts[i]
		if o.Kind == KindEnd {
			break
		}
		if o.matchable() && o.Long != "" && len(o.Long) >= len(prefix) && o.Long[:len(prefix)] == prefix {
			matches = append(matches, o)
		}
	}
	return matches
}
