// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Command evmrun runs a single piece of EVM bytecode against this
// repository's interpreter core and prints the resulting state, gas left,
// final stack size and memory size.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/fantom-foundation/levm/interpreter"
)

func main() {
	app := &cli.App{
		Name:  "evmrun",
		Usage: "run a piece of EVM bytecode against the interpreter core",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "code",
				Usage:    "hex-encoded bytecode to run, with or without a 0x prefix",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "input",
				Usage: "hex-encoded call data, with or without a 0x prefix",
			},
			&cli.Uint64Flag{
				Name:  "gas",
				Usage: "gas budget for the run",
				Value: 10_000_000,
			},
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "run with a fresh interpreter Cache for SHA3 hashes and jump analysis",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "evmrun:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	code, err := decodeHex(ctx.String("code"))
	if err != nil {
		return fmt.Errorf("decoding --code: %w", err)
	}
	input, err := decodeHex(ctx.String("input"))
	if err != nil {
		return fmt.Errorf("decoding --input: %w", err)
	}

	args := interpreter.Args{
		Code:  code,
		Input: input,
		Gas:   interpreter.Gas(ctx.Uint64("gas")),
	}
	if ctx.Bool("cache") {
		args.Cache = interpreter.NewCache()
	}

	result := interpreter.Interpret(args)

	fmt.Printf("state:       %s\n", result.State)
	fmt.Printf("gas left:    %d\n", result.GasLeft)
	fmt.Printf("stack size:  %d\n", result.StackSize)
	fmt.Printf("memory size: %d\n", result.MemorySize)

	if result.State.IsError() {
		os.Exit(1)
	}
	return nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}
