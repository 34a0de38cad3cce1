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

// Cell is the raw type stored in a memory location. Arithmetic is exact
// signed 64-bit and wraps on overflow.
type Cell int64

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       Cell   // Instruction Pointer, address of the next opcode word
	Mem      *Image // Working memory image
	rbase    Cell   // relative base register
	halted   bool
	blocking bool
	orig     *Image // pristine image, reinstalled by Reset
	in       []Cell
	insCount int64
}

// Option interface
type Option func(*Instance) error

// BlockingInput makes an empty input queue at an input instruction a fatal
// error instead of a suspension. Only use it when all input is known up front
// and a starved read can only mean a broken program.
func BlockingInput() Option {
	return func(i *Instance) error { i.blocking = true; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The machine takes ownership of the given image and keeps a pristine copy of
// it for Reset, so a single image must not be handed to two machines. Use
// Image.Clone when running several machines from one loaded program.
func New(img *Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem:  img,
		orig: img.Clone(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Halted reports whether the machine has executed a halt instruction. A
// halted machine cannot meaningfully be run again; a machine that returned
// from Run without halting is suspended on an input instruction and will
// resume from there on the next call.
func (i *Instance) Halted() bool {
	return i.halted
}

// RelativeBase returns the current value of the relative base register.
func (i *Instance) RelativeBase() Cell {
	return i.rbase
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Reset reinstalls the original memory image as initially loaded (runtime
// writes never touch it), resets the instruction pointer and
// relative base to zero and clears the halted state. The host pattern of
// probing many coordinates from one parsed program is a Reset and a Run per
// probe.
func (i *Instance) Reset() {
	i.Mem = i.orig.Clone()
	i.PC = 0
	i.rbase = 0
	i.halted = false
	i.in = nil
	i.insCount = 0
}
