package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{
		"auto":   ColorAuto,
		"":       ColorAuto,
		"always": ColorAlways,
		"never":  ColorNever,
	} {
		got, err := ParseColorMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseColorMode("rainbow")
	require.Error(t, err)
}

func TestResolveColors(t *testing.T) {
	require.True(t, ResolveColors(ColorAlways))
	require.False(t, ResolveColors(ColorNever))

	t.Setenv("NO_COLOR", "1")
	require.False(t, ResolveColors(ColorAuto))
}

func TestResolveColorsDumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	require.False(t, ResolveColors(ColorAuto))
}

func TestPrinterStreams(t *testing.T) {
	var out, errw bytes.Buffer
	p := NewPrinter(&out, &errw, false)

	p.Printf("hello %s", "world")
	p.Successf("ok")
	p.Warnf("careful")
	p.Errorf("bad: %d", 7)

	require.Contains(t, out.String(), "hello world")
	require.Contains(t, out.String(), "ok")
	require.Contains(t, out.String(), "careful")
	require.Contains(t, errw.String(), "bad: 7")
	require.NotContains(t, out.String(), "bad: 7")
}
