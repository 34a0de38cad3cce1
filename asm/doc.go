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

// Package asm provides an assembler and disassembler for Intcode programs.
//
// Intcode programs are normally shipped as opaque comma separated integers;
// this package exists so that programs (in particular test programs) can be
// written and inspected symbolically.
//
// The assembly syntax is whitespace separated. Instruction mnemonics are
// followed by their operands:
//
//	add mul in out jnz jz lt eq arb halt
//
// with the aliases jit (jnz), jif (jz), rel (arb) and end (halt). An operand
// is a value in position mode, #value in immediate mode, or ~offset in
// relative mode. Write targets (the destination of add, mul, lt, eq and in)
// cannot be immediate. Values are integers in Go literal syntax, quoted
// characters such as 'a', or the names of constants and labels.
//
// A word starting with a colon defines a label at the current position, and a
// label name used as an operand (or as a bare word) compiles to the label's
// address. Bare values compile to raw data cells. Comments are enclosed in
// ( parentheses with surrounding whitespace ). Two directives are supported:
// .org moves the compilation position, and .equ name value defines a
// constant.
//
// For example, a program that echoes its input until it reads a zero:
//
//	:loop	in val
//		jz val #done
//		out val
//		jnz #1 #loop
//	:done	halt
//	:val	0
package asm
