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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

func ExampleAssemble() {
	prog, err := asm.Assemble("hello", strings.NewReader(`
		( print HI )
		out #'H'
		out #'I'
		out #10
		halt
	`))
	if err != nil {
		panic(err)
	}
	i, _ := vm.New(vm.NewImage(prog))
	out, _ := i.Run(nil)
	for _, c := range out {
		fmt.Printf("%c", rune(c))
	}

	// Output:
	// HI
}

func ExampleDisassembleAll() {
	asm.DisassembleAll([]vm.Cell{109, 1, 204, -1, 99}, 0, os.Stdout)

	// Output:
	//          0	arb #1
	//          2	out ~-1
	//          4	halt
}
