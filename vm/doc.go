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

// Package vm implements an Intcode virtual machine.
//
// An Intcode program is a flat sequence of signed integers that encodes both
// instructions and data in a single address space, so programs are free to
// modify themselves. The machine has an instruction pointer, a relative base
// register, and an unbounded, sparsely populated memory where unset addresses
// read as zero.
//
// The machine performs no I/O of its own. Hosts pass input values to Run and
// collect the output values it returns. When a program executes an input
// instruction and no input is available, Run returns with the output produced
// so far and the machine suspended on that instruction; a later call to Run
// with more input resumes exactly where execution left off. This makes the
// machine a cooperative state machine that a host can drive one exchange at a
// time, which is how the droid package holds a conversation with a program.
// Hosts that pre-load all input up front can opt into treating input
// starvation as an error instead, see BlockingInput.
package vm
