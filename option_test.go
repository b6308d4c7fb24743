package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFindShort(t *testing.T) {
	var force bool
	var count int
	options := Options{
		Group("basic"),
		Boolean('f', "force", &force, "force it"),
		Integer('n', "count", &count, "how many"),
		End(),
	}

	opt := options.findShort('n')
	require.NotNil(t, opt)
	assert.Equal(t, "count", opt.Long)

	assert.Nil(t, options.findShort('z'))
}

func TestOptionsFindLong(t *testing.T) {
	var force bool
	options := Options{
		Boolean('f', "force", &force, "force it"),
		End(),
	}

	opt := options.findLong("force")
	require.NotNil(t, opt)
	assert.Equal(t, 'f', opt.Short)

	assert.Nil(t, options.findLong("for"))
	assert.Nil(t, options.findLong("forcex"))
}

func TestOptionsMatchLongPrefix(t *testing.T) {
	var force, fold bool
	var count int
	options := Options{
		Boolean('f', "force", &force, "force it"),
		Boolean(0, "fold", &fold, "fold it"),
		Integer('n', "count", &count, "how many"),
		End(),
	}

	assert.Len(t, options.matchLongPrefix("fo"), 2)
	assert.Len(t, options.matchLongPrefix("for"), 1)
	assert.Len(t, options.matchLongPrefix("count"), 1)
	assert.Empty(t, options.matchLongPrefix("z"))
}

func TestOptionsGroupNeverMatches(t *testing.T) {
	options := Options{
		Group("force"),
		End(),
	}

	assert.Nil(t, options.findLong("force"))
	assert.Empty(t, options.matchLongPrefix("f"))
}

func TestNewParserRequiresTerminator(t *testing.T) {
	var force bool

	assert.Panics(t, func() {
		NewParser(Options{Boolean('f', "force", &force, "force it")}, nil, 0)
	})
	assert.Panics(t, func() {
		NewParser(Options{}, nil, 0)
	})
	assert.Panics(t, func() {
		NewParser(Options{End(), End()}, nil, 0)
	})
	assert.NotPanics(t, func() {
		NewParser(Options{Boolean('f', "force", &force, "force it"), End()}, nil, 0)
	})
}

func TestOptionModifiers(t *testing.T) {
	var force bool
	cb := func(p *Parser, opt *Option) error { return nil }

	opt := Boolean('f', "force", &force, "force it",
		WithCallback(cb), WithData(42), NoNegation())
	assert.NotNil(t, opt.Callback)
	assert.Equal(t, 42, opt.Data)
	assert.False(t, opt.negatable())

	bit := Bit(0, "exec", new(uint), 0b100, "exec access")
	assert.Equal(t, uint(0b100), bit.Data)
	assert.True(t, bit.negatable())
}
