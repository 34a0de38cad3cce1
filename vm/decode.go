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

package vm

import "github.com/pkg/errors"

// Intcode opcodes. The opcode is the instruction word modulo 100.
const (
	OpAdd        Cell = 1
	OpMul        Cell = 2
	OpInput      Cell = 3
	OpOutput     Cell = 4
	OpJumpTrue   Cell = 5
	OpJumpFalse  Cell = 6
	OpLessThan   Cell = 7
	OpEquals     Cell = 8
	OpAdjustBase Cell = 9
	OpHalt       Cell = 99
)

// Mode is a parameter addressing mode, encoded one decimal digit per
// parameter in the high digits of the instruction word.
type Mode Cell

// Parameter addressing modes.
const (
	ModePosition  Mode = 0 // parameter is an address
	ModeImmediate Mode = 1 // parameter is the value itself
	ModeRelative  Mode = 2 // parameter is an offset from the relative base
)

// Errors reported by the decoder. Run wraps them with the faulting program
// position; use errors.Cause to test against these values.
var (
	ErrInvalidOpcode = errors.New("invalid opcode")
	ErrInvalidMode   = errors.New("invalid parameter mode")
)

// operands[op] is the operand count of opcode op. The instruction width is
// the operand count plus one.
var operands = map[Cell]int{
	OpAdd:        3,
	OpMul:        3,
	OpInput:      1,
	OpOutput:     1,
	OpJumpTrue:   2,
	OpJumpFalse:  2,
	OpLessThan:   3,
	OpEquals:     3,
	OpAdjustBase: 1,
	OpHalt:       0,
}

type instruction struct {
	op    Cell
	modes [3]Mode
}

// decode splits an instruction word into its opcode and up to three parameter
// mode digits. Digits not present in the word default to position mode.
func decode(word Cell) (instruction, error) {
	ins := instruction{op: word % 100}
	n, ok := operands[ins.op]
	if !ok {
		return ins, errors.Wrapf(ErrInvalidOpcode, "word %d", word)
	}
	digits := word / 100
	for p := 0; p < n; p++ {
		d := Mode(digits % 10)
		digits /= 10
		if d > ModeRelative {
			return ins, errors.Wrapf(ErrInvalidMode, "mode digit %d of parameter %d, word %d", d, p+1, word)
		}
		ins.modes[p] = d
	}
	return ins, nil
}
