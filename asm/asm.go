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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ics"
	"github.com/db47h/intcode/vm"
)

// op describes one instruction for the assembler and disassembler: its
// mnemonics, operand count, and which operand is a write target (-1 for
// none). Write targets cannot use immediate mode.
type op struct {
	code  vm.Cell
	names []string
	n     int
	wr    int
}

var optable = [...]op{
	{vm.OpAdd, []string{"add"}, 3, 2},
	{vm.OpMul, []string{"mul"}, 3, 2},
	{vm.OpInput, []string{"in"}, 1, 0},
	{vm.OpOutput, []string{"out"}, 1, -1},
	{vm.OpJumpTrue, []string{"jnz", "jit"}, 2, -1},
	{vm.OpJumpFalse, []string{"jz", "jif"}, 2, -1},
	{vm.OpLessThan, []string{"lt"}, 3, 2},
	{vm.OpEquals, []string{"eq"}, 3, 2},
	{vm.OpAdjustBase, []string{"arb", "rel"}, 1, -1},
	{vm.OpHalt, []string{"halt", "end"}, 0, -1},
}

var opcodeIndex = make(map[string]*op)
var opcodeName = make(map[vm.Cell]*op)

func init() {
	for i := range optable {
		o := &optable[i]
		opcodeName[o.code] = o
		for _, n := range o.names {
			opcodeIndex[n] = o
		}
	}
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program cells and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) (prog []vm.Cell, err error) {
	p := newParser()
	prog, err = p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// writeOperand writes a disassembled operand with its mode sigil: immediate
// values as #v, relative offsets as ~v, position addresses bare.
func writeOperand(w io.Writer, v vm.Cell, m vm.Mode) {
	switch m {
	case vm.ModeImmediate:
		io.WriteString(w, "#")
	case vm.ModeRelative:
		io.WriteString(w, "~")
	}
	io.WriteString(w, strconv.FormatInt(int64(v), 10))
}

// Disassemble writes a disassembly of the cells in the given slice at position
// pc to the specified io.Writer and returns the position of the next opcode
// and any write error. Cells that do not decode as a valid instruction are
// written as bare data values and skipped one at a time.
func Disassemble(prog []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*ics.ErrWriter)
	if ew == nil {
		ew = ics.NewErrWriter(w)
	}

	word := prog[pc]
	o := opcodeName[word%100]
	if word < 0 || o == nil || pc+o.n >= len(prog) || !validModes(word/100, o.n) {
		// not a decodable instruction: emit as bare data
		io.WriteString(ew, strconv.FormatInt(int64(word), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, o.names[0])
	digits := word / 100
	for i := 0; i < o.n; i++ {
		ew.Write([]byte{' '})
		writeOperand(ew, prog[pc+1+i], vm.Mode(digits%10))
		digits /= 10
	}
	return pc + 1 + o.n, ew.Err
}

// validModes reports whether the mode digits are all in {0,1,2} with no
// digits beyond the operand count.
func validModes(digits vm.Cell, n int) bool {
	for ; n > 0; n-- {
		if digits%10 > 2 {
			return false
		}
		digits /= 10
	}
	return digits == 0
}

// DisassembleAll writes a disassembly of all cells in the given slice to the
// specified io.Writer. The base argument specifies the real address of the
// first cell (prog[0]). It will return any write error.
func DisassembleAll(prog []vm.Cell, base int, w io.Writer) error {
	ew := ics.NewErrWriter(w)
	for pc := 0; pc < len(prog); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(prog, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
