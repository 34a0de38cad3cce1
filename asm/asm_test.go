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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

func assemble(t *testing.T, src string) []vm.Cell {
	t.Helper()
	prog, err := asm.Assemble(t.Name(), strings.NewReader(src))
	require.NoError(t, err)
	return prog
}

func TestAssemble(t *testing.T) {
	tests := [...]struct {
		name string
		src  string
		prog []vm.Cell
	}{
		{"add positions", "add 0 0 0 halt", []vm.Cell{1, 0, 0, 0, 99}},
		{"immediate", "mul #3 4 5 halt", []vm.Cell{102, 3, 4, 5, 99}},
		{"relative", "arb #1 out ~-1 halt", []vm.Cell{109, 1, 204, -1, 99}},
		{"data cells", "halt -17 42", []vm.Cell{99, -17, 42}},
		{"char value", "out #'A' halt", []vm.Cell{104, 65, 99}},
		{"comment", "( copy in to out ) in 3 out 3 halt 0", []vm.Cell{3, 3, 4, 3, 99, 0}},
		{"label", ":start jnz #1 #start", []vm.Cell{1105, 1, 0}},
		{"forward label", "jz #0 #end out #7 :end halt", []vm.Cell{1106, 0, 5, 104, 7, 99}},
		{"equ", ".equ tgt 50 in tgt halt", []vm.Cell{3, 50, 99}},
		{"org", "jnz #1 #top .org 10 :top halt", []vm.Cell{1105, 1, 10, 0, 0, 0, 0, 0, 0, 0, 99}},
		{"aliases", "jit #1 #3 end", []vm.Cell{1105, 1, 3, 99}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.prog, assemble(t, test.src))
		})
	}
}

func TestAssemble_errors(t *testing.T) {
	tests := [...]struct {
		name string
		src  string
		msg  string
	}{
		{"immediate write", "add #1 #2 #3", "immediate mode write target"},
		{"immediate input", "in #0", "immediate mode write target"},
		{"missing operand", "add 0 0", "missing operand"},
		{"undefined label", "jnz #1 #nowhere", "Missing label definition"},
		{"label redefinition", ":a halt :a", "Label redefinition"},
		{"bad directive", ".foo", "Unknown dot directive"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := asm.Assemble(test.name, strings.NewReader(test.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.msg)
		})
	}
}

// assembled programs must actually run.
func TestAssemble_roundTrip(t *testing.T) {
	prog := assemble(t, `
		( output the sum of two inputs )
		in a
		in b
		add a b a
		out a
		halt
		:a 0
		:b 0
	`)
	i, err := vm.New(vm.NewImage(prog))
	require.NoError(t, err)
	out, err := i.Run([]vm.Cell{30, 12})
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{42}, out)
	assert.True(t, i.Halted())
}

func TestDisassemble(t *testing.T) {
	var b strings.Builder
	prog := []vm.Cell{109, 1, 204, -1, 99, 1234}
	pc := 0
	var lines []string
	for pc < len(prog) {
		b.Reset()
		next, err := asm.Disassemble(prog, pc, &b)
		require.NoError(t, err)
		lines = append(lines, b.String())
		pc = next
	}
	assert.Equal(t, []string{"arb #1", "out ~-1", "halt", "1234"}, lines)
}

func TestDisassemble_truncated(t *testing.T) {
	// an add with its operands cut off must come out as data
	var b strings.Builder
	next, err := asm.Disassemble([]vm.Cell{1, 0}, 0, &b)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
	assert.Equal(t, "1", b.String())
}

func TestDisassembleAll(t *testing.T) {
	var b strings.Builder
	err := asm.DisassembleAll([]vm.Cell{104, 7, 99}, 0, &b)
	require.NoError(t, err)
	assert.Equal(t, "         0\tout #7\n         2\thalt\n", b.String())
}
