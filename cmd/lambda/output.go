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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/lambda"
	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/parse"
	"github.com/wdamron/lambda/types"
)

func readFirstLine(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	return firstLine(r)
}

func firstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// closeOutput closes out, and reports its error through err unless err is already set.
func closeOutput(out io.Closer, err *error) {
	if cerr := out.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

func isTerminal(w io.Writer) bool {
	if nc, ok := w.(nopCloser); ok {
		w = nc.Writer
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func colorize(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return isTerminal(w) && os.Getenv("NO_COLOR") == ""
}

func free(ctx *Context, source string, w io.Writer) error {
	term, err := parse.Parse(source)
	if err != nil {
		return err
	}
	ctx.Log.Infof("term: %s", ast.TermString(term))
	for _, name := range ast.FreeVars(term) {
		if _, err := io.WriteString(w, name+"\n"); err != nil {
			return err
		}
	}
	return nil
}

type inferOptions struct {
	Context  bool
	Format   string
	Colorize bool
}

type inferenceResult struct {
	Term    string         `yaml:"term"`
	Type    *string        `yaml:"type"`
	Error   string         `yaml:"error,omitempty"`
	Context []contextEntry `yaml:"context,omitempty"`
}

type contextEntry struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

func infer(ctx *Context, source string, w io.Writer, opts inferOptions) error {
	term, err := parse.Parse(source)
	if err != nil {
		return err
	}
	ctx.Log.Infof("term: %s", ast.TermString(term))

	ti := lambda.NewContext()
	ti.SetLogger(ctx.Log)
	vars, t := ti.InferWithContext(term)

	result := inferenceResult{Term: ast.TermString(term)}
	if t == nil {
		result.Error = ti.Error().Error()
	} else {
		// Type-variables are renamed consistently across the type and the context:
		all := []types.Type{t}
		var names []string
		vars.Range(func(b lambda.Binding) bool {
			all = append(all, b.Type)
			names = append(names, b.Var.Name)
			return true
		})
		all = types.CanonicalAll(all...)
		s := types.TypeString(all[0])
		result.Type = &s
		if opts.Context {
			for i, name := range names {
				result.Context = append(result.Context, contextEntry{Name: name, Type: types.TypeString(all[i+1])})
			}
		}
	}

	if opts.Format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeText(w, result, opts.Colorize)
}

func writeText(w io.Writer, result inferenceResult, colorized bool) error {
	typeColor, nameColor, failColor := color.New(color.FgCyan), color.New(color.Bold), color.New(color.FgRed)
	for _, c := range []*color.Color{typeColor, nameColor, failColor} {
		if colorized {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	if result.Type == nil {
		_, err := fmt.Fprintln(w, failColor.Sprint("no type"))
		return err
	}
	if _, err := fmt.Fprintln(w, typeColor.Sprint(*result.Type)); err != nil {
		return err
	}
	for _, entry := range result.Context {
		if _, err := fmt.Fprintf(w, "%s : %s\n", nameColor.Sprint(entry.Name), typeColor.Sprint(entry.Type)); err != nil {
			return err
		}
	}
	return nil
}
