package argparse

import (
	"reflect"
	"strconv"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// Bind builds an option table from a struct pointer, one option per
// exported field. It is the declarative alternative to writing the table
// out with Boolean, Integer, String and Bit.
//
// Field types map to kinds directly: bool to Boolean, int to Integer,
// string to String, and uint to Bit (a `bit` tag naming the bit is
// required). Long names derive from the field name in kebab-case unless
// overridden.
//
// Behavior is controlled with `argparse:"key1,key2=value"` struct tags:
//
// `-` skip this field
//
// `name=<name>` override the derived long name
//
// `short=<c>` add a short name; must be 1 rune
//
// `help=<text>` help text; quote with single quotes to include commas
//
// `group=<header>` start a new help group before this option
//
// `bit=<n>` the bit to set for uint fields (base prefixes honored)
//
// `noneg` disable the --no-<name> form
//
// The returned table is not terminated: append Help() and End() (or your
// own trailing descriptors) before handing it to NewParser.
func Bind(config interface{}) (Options, error) {
	v := reflect.ValueOf(config)
	if !v.IsValid() || v.Kind() != reflect.Ptr {
		return nil, errors.New("argparse: config must be a struct pointer")
	}
	sv := v.Elem()
	if !sv.IsValid() || sv.Kind() != reflect.Struct {
		return nil, errors.Errorf("argparse: config must be a struct pointer (got %s)", v.Type())
	}

	opts := Options{}
	for i := 0; i < sv.NumField(); i++ {
		sf := sv.Type().Field(i)
		fv := sv.Field(i)
		if !fv.CanSet() {
			continue
		}
		fieldOpts, err := bindField(sf, fv)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s.%s", sv.Type(), sf.Name)
		}
		opts = append(opts, fieldOpts...)
	}
	return opts, nil
}

// MustBind is like Bind but panics on error, for table construction in
// variable initializers.
func MustBind(config interface{}) Options {
	opts, err := Bind(config)
	if err != nil {
		panic(err)
	}
	return opts
}

func bindField(sf reflect.StructField, fv reflect.Value) (Options, error) {
	tags := parseTagString(sf.Tag.Get("argparse"))
	pop := func(key string) (string, bool) {
		val, ok := tags[key]
		if ok {
			delete(tags, key)
		}
		return val, ok
	}

	if _, ok := pop("-"); ok {
		return nil, nil
	}

	out := Options{}
	if header, ok := pop("group"); ok {
		out = append(out, Group(header))
	}

	long, ok := pop("name")
	if !ok || long == "" {
		long = xstrings.ToKebabCase(sf.Name)
	}

	var short rune
	if s, ok := pop("short"); ok {
		runes := []rune(s)
		if len(runes) != 1 {
			return nil, errors.New("short name must be 1 rune")
		}
		short = runes[0]
	}

	help, _ := pop("help")

	mods := []Modifier{}
	if _, ok := pop("noneg"); ok {
		mods = append(mods, NoNegation())
	}

	bitText, hasBit := pop("bit")

	var opt Option
	switch cell := fv.Addr().Interface().(type) {
	case *bool:
		opt = Boolean(short, long, cell, help, mods...)
	case *int:
		opt = Integer(short, long, cell, help, mods...)
	case *string:
		opt = String(short, long, cell, help, mods...)
	case *uint:
		if !hasBit {
			return nil, errors.New("uint field requires a bit tag")
		}
		bit, err := strconv.ParseUint(bitText, 0, strconv.IntSize)
		if err != nil {
			return nil, errors.Wrapf(err, "bad bit tag %q", bitText)
		}
		opt = Bit(short, long, cell, uint(bit), help, mods...)
	default:
		return nil, errors.Errorf("unsupported field type %s", sf.Type)
	}

	if hasBit && opt.Kind != KindBit {
		return nil, errors.Errorf("bit tag on non-uint field type %s", sf.Type)
	}
	if len(tags) > 0 {
		keys := make([]string, 0, len(tags))
		for k := range tags {
			keys = append(keys, k)
		}
		return nil, errors.Errorf("unknown tags: %s", joinSorted(keys))
	}

	return append(out, opt), nil
}
