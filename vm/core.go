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

// Errors reported by the run loop, in addition to the decoder errors.
var (
	ErrInvalidWriteMode = errors.New("immediate mode write target")
	ErrEmptyInput       = errors.New("input exhausted")
)

// arg resolves the parameter at the given offset from the instruction pointer
// into a read value.
func (i *Instance) arg(off Cell, m Mode) Cell {
	w := i.Mem.Fetch(i.PC + off)
	switch m {
	case ModeImmediate:
		return w
	case ModeRelative:
		return i.Mem.Fetch(i.rbase + w)
	default:
		return i.Mem.Fetch(w)
	}
}

// dest resolves the parameter at the given offset into a write address.
// Immediate mode is never valid for a write target.
func (i *Instance) dest(off Cell, m Mode) (Cell, error) {
	w := i.Mem.Fetch(i.PC + off)
	switch m {
	case ModePosition:
		return w, nil
	case ModeRelative:
		return i.rbase + w, nil
	default:
		return 0, errors.Wrapf(ErrInvalidWriteMode, "parameter %d", off)
	}
}

// Run resumes execution of the VM with the given input values queued, and
// returns the output produced by this invocation.
//
// Run returns when the program halts (Halted reports true from then on), when
// it starves on an input instruction (the machine stays on that instruction
// and the next Run resumes it), or on the first invalid instruction. On error
// the PC points at the instruction that triggered it.
func (i *Instance) Run(in []Cell) (out []Cell, err error) {
	i.in = in
	for !i.halted {
		ins, err := decode(i.Mem.Fetch(i.PC))
		if err != nil {
			return out, errors.Wrapf(err, "@pc=%d", i.PC)
		}
		switch ins.op {
		case OpAdd:
			d, err := i.dest(3, ins.modes[2])
			if err != nil {
				return out, errors.Wrapf(err, "@pc=%d", i.PC)
			}
			i.Mem.Store(d, i.arg(1, ins.modes[0])+i.arg(2, ins.modes[1]))
			i.PC += 4
		case OpMul:
			d, err := i.dest(3, ins.modes[2])
			if err != nil {
				return out, errors.Wrapf(err, "@pc=%d", i.PC)
			}
			i.Mem.Store(d, i.arg(1, ins.modes[0])*i.arg(2, ins.modes[1]))
			i.PC += 4
		case OpInput:
			if len(i.in) == 0 {
				if i.blocking {
					return out, errors.Wrapf(ErrEmptyInput, "@pc=%d", i.PC)
				}
				// suspend: leave the PC on this instruction so that the next
				// Run re-executes it with fresh input.
				return out, nil
			}
			d, err := i.dest(1, ins.modes[0])
			if err != nil {
				return out, errors.Wrapf(err, "@pc=%d", i.PC)
			}
			i.Mem.Store(d, i.in[0])
			i.in = i.in[1:]
			i.PC += 2
		case OpOutput:
			out = append(out, i.arg(1, ins.modes[0]))
			i.PC += 2
		case OpJumpTrue:
			if i.arg(1, ins.modes[0]) != 0 {
				i.PC = i.arg(2, ins.modes[1])
			} else {
				i.PC += 3
			}
		case OpJumpFalse:
			if i.arg(1, ins.modes[0]) == 0 {
				i.PC = i.arg(2, ins.modes[1])
			} else {
				i.PC += 3
			}
		case OpLessThan:
			d, err := i.dest(3, ins.modes[2])
			if err != nil {
				return out, errors.Wrapf(err, "@pc=%d", i.PC)
			}
			if i.arg(1, ins.modes[0]) < i.arg(2, ins.modes[1]) {
				i.Mem.Store(d, 1)
			} else {
				i.Mem.Store(d, 0)
			}
			i.PC += 4
		case OpEquals:
			d, err := i.dest(3, ins.modes[2])
			if err != nil {
				return out, errors.Wrapf(err, "@pc=%d", i.PC)
			}
			if i.arg(1, ins.modes[0]) == i.arg(2, ins.modes[1]) {
				i.Mem.Store(d, 1)
			} else {
				i.Mem.Store(d, 0)
			}
			i.PC += 4
		case OpAdjustBase:
			i.rbase += i.arg(1, ins.modes[0])
			i.PC += 2
		case OpHalt:
			i.halted = true
		}
		i.insCount++
	}
	return out, nil
}
