package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindBasic(t *testing.T) {
	type Config struct {
		Force    bool   `argparse:"short=f,help=force it"`
		MaxCount int    `argparse:"short=n,help=how many"`
		Path     string `argparse:"help=path to read"`
	}
	cfg := Config{}

	options, err := Bind(&cfg)
	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, KindBoolean, options[0].Kind)
	assert.Equal(t, "max-count", options[1].Long)

	options = append(options, End())
	rest, err := NewParser(options, nil, 0).Parse([]string{
		"-f", "--max-count=3", "--path", "a/b", "extra",
	})
	require.NoError(t, err)

	expected := Config{
		Force:    true,
		MaxCount: 3,
		Path:     "a/b",
	}
	assert.Equal(t, expected, cfg)
	assert.Equal(t, []string{"extra"}, rest)
}

func TestBindTags(t *testing.T) {
	type Config struct {
		Skipped    string `argparse:"-"`
		unexported bool
		Renamed    string `argparse:"name=other,help='with, comma'"`
		Quiet      bool   `argparse:"noneg"`
		Grouped    bool   `argparse:"group=Extras,help=grouped option"`
	}
	cfg := Config{}

	options, err := Bind(&cfg)
	require.NoError(t, err)
	require.Len(t, options, 4)

	assert.Equal(t, "other", options[0].Long)
	assert.Equal(t, "with, comma", options[0].Help)
	assert.Equal(t, FlagNoNegation, options[1].Flags)
	assert.Equal(t, KindGroup, options[2].Kind)
	assert.Equal(t, "Extras", options[2].Help)
	assert.Equal(t, "grouped", options[3].Long)

	assert.Nil(t, options.findLong("skipped"))
	assert.False(t, cfg.unexported)
}

func TestBindBit(t *testing.T) {
	type Config struct {
		Mode uint `argparse:"short=m,bit=0x4,help=set mode bit"`
	}
	cfg := Config{Mode: 0x1}

	options, err := Bind(&cfg)
	require.NoError(t, err)

	_, err = NewParser(append(options, End()), nil, 0).Parse([]string{"--mode"})
	require.NoError(t, err)
	assert.Equal(t, uint(0x5), cfg.Mode)

	_, err = NewParser(append(options, End()), nil, 0).Parse([]string{"--no-mode"})
	require.NoError(t, err)
	assert.Equal(t, uint(0x1), cfg.Mode)
}

func TestBindErrors(t *testing.T) {
	_, err := Bind(nil)
	assert.Error(t, err)

	_, err = Bind(struct{}{})
	assert.Error(t, err)

	_, err = Bind(&struct {
		F float64
	}{})
	assert.ErrorContains(t, err, "unsupported field type")

	_, err = Bind(&struct {
		F bool `argparse:"short=toolong"`
	}{})
	assert.ErrorContains(t, err, "short name must be 1 rune")

	_, err = Bind(&struct {
		F uint
	}{})
	assert.ErrorContains(t, err, "requires a bit tag")

	_, err = Bind(&struct {
		F uint `argparse:"bit=nope"`
	}{})
	assert.ErrorContains(t, err, "bad bit tag")

	_, err = Bind(&struct {
		F bool `argparse:"bit=1"`
	}{})
	assert.ErrorContains(t, err, "bit tag on non-uint field")

	_, err = Bind(&struct {
		F bool `argparse:"wat=huh"`
	}{})
	assert.ErrorContains(t, err, "unknown tags: wat")
}

func TestMustBind(t *testing.T) {
	assert.Panics(t, func() {
		MustBind(42)
	})
	assert.NotPanics(t, func() {
		MustBind(&struct{ Force bool }{})
	})
}
