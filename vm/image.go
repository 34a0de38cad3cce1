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

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Addresses below denseLimit live in the dense cell slice, anything above (or
// negative) goes to the overflow map. Programs rarely reach past a few
// thousand cells, but relative-mode writes can land anywhere.
const denseLimit = 1 << 20

// Image encapsulates a machine's memory: a dense prefix that grows lazily as
// programs write past the end of the loaded code, plus a sparse overflow for
// far-flung addresses. Unset addresses read as zero and any address may be
// written to.
type Image struct {
	cells []Cell
	far   map[Cell]Cell
}

// NewImage returns an Image initialized with the given program, loaded at
// addresses 0..len(prog)-1. The program slice is copied, the caller keeps
// ownership of it.
func NewImage(prog []Cell) *Image {
	m := &Image{cells: make([]Cell, len(prog))}
	copy(m.cells, prog)
	return m
}

// Fetch returns the value stored at address a.
func (m *Image) Fetch(a Cell) Cell {
	if a >= 0 && a < Cell(len(m.cells)) {
		return m.cells[a]
	}
	return m.far[a]
}

// Store writes v at address a, extending the memory as needed.
func (m *Image) Store(a, v Cell) {
	if a >= 0 && a < denseLimit {
		if a >= Cell(len(m.cells)) {
			m.cells = append(m.cells, make([]Cell, int(a)+1-len(m.cells))...)
		}
		m.cells[a] = v
		return
	}
	if m.far == nil {
		m.far = make(map[Cell]Cell)
	}
	m.far[a] = v
}

// Len returns the extent of the dense part of the image. It starts out as the
// program length and only ever grows.
func (m *Image) Len() int {
	return len(m.cells)
}

// Clone returns a deep copy of the image. Two machines never share memory, so
// anything handing an image to a second machine must clone it first.
func (m *Image) Clone() *Image {
	c := &Image{cells: make([]Cell, len(m.cells))}
	copy(c.cells, m.cells)
	if len(m.far) > 0 {
		c.far = make(map[Cell]Cell, len(m.far))
		for a, v := range m.far {
			c.far[a] = v
		}
	}
	return c
}

// ParseProgram reads program text, a comma separated list of signed integers,
// and returns the program cells. Whitespace around values is ignored.
func ParseProgram(r io.Reader) ([]Cell, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read program")
	}
	fields := strings.Split(string(data), ",")
	prog := make([]Cell, len(fields))
	for n, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "program value %d", n)
		}
		prog[n] = Cell(v)
	}
	return prog, nil
}

// LoadProgram reads program text from file fileName.
func LoadProgram(fileName string) ([]Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "load")
	}
	defer f.Close()
	prog, err := ParseProgram(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return prog, nil
}

// Load reads program text from file fileName and returns it as a memory
// image ready to be handed to New.
func Load(fileName string) (*Image, error) {
	prog, err := LoadProgram(fileName)
	if err != nil {
		return nil, err
	}
	return NewImage(prog), nil
}
