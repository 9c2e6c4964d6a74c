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
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

type Context struct {
	Log commonlog.Logger
}

type IOFlags struct {
	Input  string `short:"i" default:"-" env:"LAMBDA_INPUT" help:"File containing the term on its first line (- for stdin)."`
	Output string `short:"o" default:"-" env:"LAMBDA_OUTPUT" help:"File to write results to (- for stdout)."`
}

type FreeCmd struct {
	IOFlags `embed:""`
}

func (cmd *FreeCmd) Run(ctx *Context) (err error) {
	source, err := readFirstLine(cmd.Input)
	if err != nil {
		return err
	}
	out, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}
	defer closeOutput(out, &err)
	return free(ctx, source, out)
}

type InferCmd struct {
	IOFlags `embed:""`
	Context bool   `short:"c" help:"Also print the types of free variables."`
	Format  string `short:"f" enum:"text,yaml" default:"text" env:"LAMBDA_FORMAT" help:"Output format (text, yaml)."`
	Color   string `enum:"auto,always,never" default:"auto" env:"LAMBDA_COLOR" help:"Colorize text output (auto, always, never)."`
}

func (cmd *InferCmd) Run(ctx *Context) (err error) {
	source, err := readFirstLine(cmd.Input)
	if err != nil {
		return err
	}
	out, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}
	defer closeOutput(out, &err)
	return infer(ctx, source, out, inferOptions{
		Context:  cmd.Context,
		Format:   cmd.Format,
		Colorize: colorize(cmd.Color, out),
	})
}

var cli struct {
	Verbose int `short:"v" type:"counter" help:"Increase log verbosity."`

	Free  FreeCmd  `cmd:"" help:"List the free variables of a term, one per line."`
	Infer InferCmd `cmd:"" help:"Infer the principal type of a term."`
}

func main() {
	// Settings may be provided through a .env file in the working directory.
	godotenv.Load()

	ctx := kong.Parse(&cli,
		kong.Name("lambda"),
		kong.Description("Type inference for the untyped lambda calculus."),
		kong.UsageOnError())
	commonlog.Configure(cli.Verbose, nil)
	err := ctx.Run(&Context{Log: commonlog.GetLogger("lambda")})
	ctx.FatalIfErrorf(err)
}
