// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mgcorp/i8080emu/cpu"
	"github.com/mgcorp/i8080emu/rom"

	"gopkg.in/urfave/cli.v2"
)

// stdLogger adapts cpu.Logger onto the standard library logger.
type stdLogger struct {
	l *log.Logger
}

func (s *stdLogger) Log(msg string) {
	s.l.Println(msg)
}

func main() {
	app := &cli.App{
		Name:      "run8080",
		Usage:     "run an Intel 8080 CP/M-style ROM image to completion",
		Version:   "v0.1.0",
		ArgsUsage: "ROM",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log PC/opcode/register state for every step",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.Args().Get(0)
	if path == "" {
		return cli.Exit("run8080: missing ROM path", 1)
	}

	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer f.Close()

	data, err := rom.Load(f)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("trace") {
		cpu.SetLogger(&stdLogger{l: log.New(os.Stderr, "", 0)})
		cpu.SetLogEnable(true)
	}

	state := cpu.NewState()
	state.Init()
	if err := state.LoadROM(data, cpu.ROMLoadOffset); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	machine := cpu.NewCPU(state)
	for !machine.Halted() {
		machine.Step()
	}

	return nil
}
