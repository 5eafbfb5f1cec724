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
	"os"

	"github.com/mgcorp/i8080emu/disasm"
	"github.com/mgcorp/i8080emu/rom"

	"gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Name:      "disasm8080",
		Usage:     "disassemble an Intel 8080 ROM image",
		Version:   "v0.1.0",
		ArgsUsage: "ROM",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.Args().Get(0)
	if path == "" {
		return cli.Exit("disasm8080: missing ROM path", 1)
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

	fmt.Printf("ROM size: %d bytes\n", len(data))
	for _, line := range disasm.Disassemble(data) {
		fmt.Println(line.String())
	}
	return nil
}
