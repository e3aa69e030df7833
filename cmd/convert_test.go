package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/htmldown/core/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	flagFormat = "markdown"

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertDefaultFormat(t *testing.T) {
	out, err := execute(t, "<p>Hello <b>world</b></p>")
	require.NoError(t, err)
	assert.Equal(t, "Hello **world**\n", out)
}

func TestConvertExplicitFormat(t *testing.T) {
	for _, args := range [][]string{{"--format", "markdown"}, {"-f", "markdown"}} {
		out, err := execute(t, "text<ul><li>a</li></ul>", args...)
		require.NoError(t, err)
		assert.Equal(t, "text\n\n* a\n\n\n", out)
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	out, err := execute(t, "<p>x</p>", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
	assert.Empty(t, out)
}

func TestConvertRejectsArguments(t *testing.T) {
	_, err := execute(t, "<p>x</p>", "page.html")
	require.Error(t, err)
}

func TestConvertInvalidInputWritesNothing(t *testing.T) {
	out, err := execute(t, "bad \xff input")
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrInvalidUTF8)
	assert.Empty(t, out)
}

func TestConvertBadLogLevel(t *testing.T) {
	t.Setenv(logLevelEnv, "loud")
	_, err := execute(t, "<p>x</p>")
	require.Error(t, err)
}

func TestConvertDebugLogLevel(t *testing.T) {
	t.Setenv(logLevelEnv, "debug")
	out, err := execute(t, "<i>x</i>")
	require.NoError(t, err)
	assert.Equal(t, "*x*\n", out)
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "0.1")
}
