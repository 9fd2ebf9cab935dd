// seehuhn.de/go/genera - a procedural art generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genera renders procedural compositions.
//
// Usage:
//
//	genera png [flags] out.png
//	genera svg [flags] out.svg
//	genera params [flags]
//	genera preview [flags]
//
// All subcommands accept the composition parameters as flags, and an
// optional JSON parameter file given by -params.  Flags given on the
// command line take precedence over the file.  Run "genera <cmd> -help"
// for the list of flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

type command struct {
	name  string
	usage string
	run   func(args []string) error
}

var commands = []command{
	{"png", "render a PNG image", runPNG},
	{"svg", "render an SVG document", runSVG},
	{"params", "print the effective parameters as JSON", runParams},
	{"preview", "show compositions in the terminal", runPreview},
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	name := os.Args[1]
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		err := cmd.run(os.Args[2:])
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "genera %s: %v\n", name, err)
			os.Exit(1)
		}
		return
	}
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: genera <command> [flags]")
	fmt.Fprintln(os.Stderr)
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", cmd.name, cmd.usage)
	}
}

// newLogger returns a text logger on stderr.  Debug messages are shown
// only if verbose is set.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
