// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command droid drives an Intcode text adventure: scripted solving, an
// interactive console, and program disassembly.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/droid"
	"github.com/db47h/intcode/vm"
)

// walkthrough gathers every safe item and ends in the room next to the
// security checkpoint, with everything dropped on the floor.
var walkthrough = []string{
	"north", "north", "east", "east", "take cake",
	"west", "west", "south", "south", "south",
	"west", "take fuel cell",
	"west", "take easter egg",
	"east", "east", "north",
	"east", "take ornament",
	"east", "take hologram",
	"east", "take dark matter",
	"north", "north", "east", "take klein bottle",
	"north", "take hypercube", "north",
	"drop ornament", "drop easter egg", "drop hypercube", "drop hologram",
	"drop cake", "drop fuel cell", "drop dark matter", "drop klein bottle",
}

// the items the walkthrough leaves at the checkpoint
var items = []string{
	"ornament", "easter egg", "hypercube", "hologram",
	"cake", "fuel cell", "dark matter", "klein bottle",
}

var verbose bool

func logger() *slog.Logger {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func newSession(fileName string) (*droid.Session, error) {
	img, err := vm.Load(fileName)
	if err != nil {
		return nil, err
	}
	return droid.NewSession(img)
}

func solveCmd() *cobra.Command {
	var (
		script string
		door   string
	)
	cmd := &cobra.Command{
		Use:   "solve PROGRAM",
		Short: "replay the walkthrough and brute force the pressure plate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			s, err := newSession(args[0])
			if err != nil {
				return err
			}
			if _, err = s.Boot(); err != nil {
				return err
			}

			cmds := walkthrough
			if script != "" {
				if cmds, err = readScript(script); err != nil {
					return err
				}
			}
			for _, c := range cmds {
				reply, err := s.Send(c)
				if err != nil {
					return err
				}
				log.Debug("walkthrough", "cmd", c, "reply", strings.TrimSpace(reply))
			}

			reply, err := droid.Hunt(s, items, door)
			if err != nil {
				return err
			}
			fmt.Println(strings.TrimSpace(reply))
			return nil
		},
	}
	cmd.Flags().StringVar(&script, "script", "", "walkthrough file, one command per line (default: built-in)")
	cmd.Flags().StringVar(&door, "door", "west", "direction of the pressure plate")
	return cmd
}

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play PROGRAM",
		Short: "play the adventure interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			s, err := newSession(args[0])
			if err != nil {
				return err
			}
			banner, err := s.Boot()
			if err != nil {
				return err
			}
			fmt.Print(banner)

			rl, err := readline.New("> ")
			if err != nil {
				return err
			}
			defer rl.Close()

			for !s.Halted() {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt || err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				reply, err := s.Send(line)
				if err != nil {
					return err
				}
				fmt.Print(reply)
				if inv := s.Invalid(); len(inv) > 0 {
					log.Warn("undecodable output values", "values", inv)
				}
			}
			return nil
		},
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump PROGRAM",
		Short: "disassemble an Intcode program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := vm.LoadProgram(args[0])
			if err != nil {
				return err
			}
			return asm.DisassembleAll(prog, 0, os.Stdout)
		},
	}
}

func readScript(fileName string) ([]string, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	var cmds []string
	for _, l := range strings.Split(string(data), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			cmds = append(cmds, l)
		}
	}
	return cmds, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "droid",
		Short:         "drive an Intcode text adventure",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log the conversation")
	rootCmd.AddCommand(solveCmd(), playCmd(), dumpCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
