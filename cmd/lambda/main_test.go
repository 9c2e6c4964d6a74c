// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"

	"github.com/wdamron/lambda/parse"
)

func TestMain(m *testing.M) {
	commonlog.Configure(0, nil)
	os.Exit(m.Run())
}

func testContext() *Context {
	return &Context{Log: commonlog.GetLogger("lambda.test")}
}

func TestFree(t *testing.T) {
	var out bytes.Buffer
	err := free(testContext(), `\x.z (x y) (\y.y a)`, &out)
	require.NoError(t, err)
	require.Equal(t, "a\ny\nz\n", out.String())
}

func TestFreeSyntaxError(t *testing.T) {
	var out bytes.Buffer
	err := free(testContext(), `\x.(x`, &out)
	var perr *parse.Error
	require.True(t, errors.As(err, &perr), "error: %v", err)
	require.Empty(t, out.String())
}

func TestInferText(t *testing.T) {
	cases := []struct {
		source  string
		context bool
		want    string
	}{
		{`\x.x`, false, "t0 -> t0\n"},
		{`\f.\x.f (f x)`, false, "(t0 -> t0) -> t0 -> t0\n"},
		{`\x.\y.x`, false, "t0 -> t1 -> t0\n"},
		{`\x.x x`, false, "no type\n"},
		{`\x.x y`, true, "(t0 -> t1) -> t1\ny : t0\n"},
		{`f x`, true, "t0\nf : t1 -> t0\nx : t1\n"},
	}
	for _, c := range cases {
		var out bytes.Buffer
		err := infer(testContext(), c.source, &out, inferOptions{Context: c.context, Format: "text"})
		require.NoError(t, err, c.source)
		require.Equal(t, c.want, out.String(), c.source)
	}
}

func TestInferYAML(t *testing.T) {
	var typed, untyped bytes.Buffer
	opts := inferOptions{Context: true, Format: "yaml"}
	require.NoError(t, infer(testContext(), `\g.f (g x)`, &typed, opts))
	require.NoError(t, infer(testContext(), `\x.x x`, &untyped, opts))

	require.Equal(t, `term: \g.f (g x)
type: (t0 -> t1) -> t2
context:
  - name: f
    type: t1 -> t2
  - name: x
    type: t0
`, typed.String())
	require.Equal(t, `term: \x.x x
type: null
error: 'Inconsistent system of equations: tx1 occurs in tx1 -> t0'
`, untyped.String())
	snaps.MatchSnapshot(t, typed.String(), untyped.String())
}

func TestInferColor(t *testing.T) {
	var plain, colored bytes.Buffer
	require.NoError(t, infer(testContext(), `\x.x`, &plain, inferOptions{Format: "text"}))
	require.NoError(t, infer(testContext(), `\x.x`, &colored, inferOptions{Format: "text", Colorize: true}))
	require.Equal(t, "t0 -> t0\n", plain.String())
	require.NotEqual(t, plain.String(), colored.String())
	require.Contains(t, colored.String(), "\x1b[")
}

func TestFirstLine(t *testing.T) {
	line, err := firstLine(strings.NewReader("\\x.x\r\nignored\n"))
	require.NoError(t, err)
	require.Equal(t, `\x.x`, line)

	line, err = firstLine(strings.NewReader("f x"))
	require.NoError(t, err)
	require.Equal(t, "f x", line)
}

func TestColorizeMode(t *testing.T) {
	var buf bytes.Buffer
	require.True(t, colorize("always", &buf))
	require.False(t, colorize("never", &buf))
	require.False(t, colorize("auto", &buf))
}

func writeInput(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "term.txt")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestFreeCmdFiles(t *testing.T) {
	in := writeInput(t, "\\x.f x y\nz\n")
	out := filepath.Join(t.TempDir(), "free.txt")

	cmd := FreeCmd{IOFlags{Input: in, Output: out}}
	require.NoError(t, cmd.Run(testContext()))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "f\ny\n", string(written))
}

func TestInferCmdFiles(t *testing.T) {
	in := writeInput(t, "\\f.\\x.f (f x)\n")
	out := filepath.Join(t.TempDir(), "type.txt")

	// Files are never colorized in auto mode:
	cmd := InferCmd{IOFlags: IOFlags{Input: in, Output: out}, Format: "text", Color: "auto"}
	require.NoError(t, cmd.Run(testContext()))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "(t0 -> t0) -> t0 -> t0\n", string(written))
}

func TestCmdMissingFiles(t *testing.T) {
	dir := t.TempDir()

	freeCmd := FreeCmd{IOFlags{Input: filepath.Join(dir, "missing.txt"), Output: "-"}}
	require.True(t, errors.Is(freeCmd.Run(testContext()), os.ErrNotExist))

	in := writeInput(t, "x\n")
	inferCmd := InferCmd{IOFlags: IOFlags{Input: in, Output: filepath.Join(dir, "missing", "out.txt")}, Format: "text"}
	require.True(t, errors.Is(inferCmd.Run(testContext()), os.ErrNotExist))
}

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

func TestCloseOutput(t *testing.T) {
	closeErr := errors.New("disk full")

	var err error
	closeOutput(failingCloser{closeErr}, &err)
	require.Equal(t, closeErr, err)

	// An earlier error takes precedence:
	writeErr := errors.New("write failed")
	err = writeErr
	closeOutput(failingCloser{closeErr}, &err)
	require.Equal(t, writeErr, err)

	err = nil
	closeOutput(nopCloser{os.Stdout}, &err)
	require.NoError(t, err)
}
