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

package vm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/vm"
)

func TestParseProgram(t *testing.T) {
	prog, err := vm.ParseProgram(strings.NewReader("109,1, -204 ,-1,\n99"))
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{109, 1, -204, -1, 99}, prog)

	_, err = vm.ParseProgram(strings.NewReader("1,x,2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "program value 1")
}

func TestImage_storeFetch(t *testing.T) {
	m := vm.NewImage([]vm.Cell{1, 2, 3})

	assert.Equal(t, vm.Cell(2), m.Fetch(1))
	assert.Equal(t, vm.Cell(0), m.Fetch(3), "unset address")
	assert.Equal(t, vm.Cell(0), m.Fetch(-5), "negative address")

	// writes land wherever they are aimed, dense or not.
	for _, a := range []vm.Cell{0, 100, 1 << 19, 1 << 30, -7} {
		m.Store(a, a+1)
	}
	for _, a := range []vm.Cell{0, 100, 1 << 19, 1 << 30, -7} {
		assert.Equal(t, a+1, m.Fetch(a), "address %d", a)
	}
	assert.Equal(t, vm.Cell(2), m.Fetch(1), "neighboring cells untouched")
}

func TestImage_clone(t *testing.T) {
	m := vm.NewImage([]vm.Cell{1, 2, 3})
	m.Store(1<<30, 42)

	c := m.Clone()
	c.Store(0, -1)
	c.Store(1<<30, -1)

	assert.Equal(t, vm.Cell(1), m.Fetch(0))
	assert.Equal(t, vm.Cell(42), m.Fetch(1<<30))
	assert.Equal(t, vm.Cell(-1), c.Fetch(0))
	assert.Equal(t, vm.Cell(-1), c.Fetch(1<<30))
}

func TestNewImage_copies(t *testing.T) {
	prog := []vm.Cell{1, 2, 3}
	m := vm.NewImage(prog)
	m.Store(0, 99)
	assert.Equal(t, vm.Cell(1), prog[0], "NewImage must not alias the program slice")
}
