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

// Command beam runs a beam probe program and locates the closest square that
// fits inside the beam.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/db47h/intcode/beam"
	"github.com/db47h/intcode/vm"
)

func main() {
	var (
		size    int64
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "beam PROGRAM",
		Short: "locate the closest square fitting inside a beam region",
		Long: `beam runs the given Intcode probe program once per coordinate query and
searches for the closest axis-aligned square that lies entirely inside the
beam. It prints the square's top-left corner and its x*10000+y encoding.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl := slog.LevelWarn
			if verbose {
				lvl = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

			img, err := vm.Load(args[0])
			if err != nil {
				return err
			}
			p, err := beam.NewProgramProber(img)
			if err != nil {
				return err
			}

			start := time.Now()
			x, y, err := beam.FitSquare(p, vm.Cell(size))
			if err != nil {
				return err
			}
			log.Debug("search done", "size", size, "elapsed", time.Since(start))

			fmt.Printf("%d,%d\n", x, y)
			fmt.Println(beam.Answer(x, y))
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().Int64VarP(&size, "size", "s", 100, "edge length of the square to fit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log search progress")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
