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

// Package beam locates the closest axis-aligned square that fits inside a
// beam shaped region of the plane.
//
// The region itself is only known through a probe: a program that, fed a
// coordinate pair, answers whether that point is inside the beam. The beam is
// assumed to be a cone opening away from the origin, so both the top edge of
// the beam at a column and the first column where a square fits are monotonic,
// which is what makes the exponential growth plus binary search in FitSquare
// valid.
package beam

import (
	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// maxEdgeScan bounds the top-edge walk at a single column. A conforming
// probe program hits the beam within a few thousand rows; anything past this
// means the column misses the beam entirely.
const maxEdgeScan = 1 << 20

// A Prober reports whether the point (x, y) is inside the beam.
type Prober interface {
	Pulled(x, y vm.Cell) (bool, error)
}

// The ProberFunc type is an adapter to allow the use of ordinary functions as
// Probers.
type ProberFunc func(x, y vm.Cell) (bool, error)

// Pulled calls f(x, y).
func (f ProberFunc) Pulled(x, y vm.Cell) (bool, error) { return f(x, y) }

// ProgramProber probes the beam by running an Intcode program: one machine
// reset and run per coordinate query, feeding [x, y] as input and reading the
// first output value as the inside/outside answer.
type ProgramProber struct {
	m *vm.Instance
}

// NewProgramProber returns a ProgramProber running the given image. The
// prober takes ownership of the image.
func NewProgramProber(img *vm.Image) (*ProgramProber, error) {
	m, err := vm.New(img, vm.BlockingInput())
	if err != nil {
		return nil, err
	}
	return &ProgramProber{m: m}, nil
}

// Pulled implements the Prober interface.
func (p *ProgramProber) Pulled(x, y vm.Cell) (bool, error) {
	p.m.Reset()
	out, err := p.m.Run([]vm.Cell{x, y})
	if err != nil {
		return false, errors.Wrapf(err, "probe (%d,%d)", x, y)
	}
	if len(out) == 0 {
		return false, errors.Errorf("probe (%d,%d): no output", x, y)
	}
	return out[0] == 1, nil
}

// topEdge returns the lowest y at or below which column x is inside the beam,
// walking down from the given seed row. The seed must not be below the actual
// edge; the edge of a previous, closer column always qualifies.
func topEdge(p Prober, x, seed vm.Cell) (vm.Cell, error) {
	for y := seed; y < seed+maxEdgeScan; y++ {
		in, err := p.Pulled(x, y)
		if err != nil {
			return 0, err
		}
		if in {
			return y, nil
		}
	}
	return 0, errors.Errorf("no beam found at column %d", x)
}

// fits reports whether a size×size square with its top-right corner on the
// beam's top edge at column x lies entirely inside the beam. With a convex
// beam, checking the bottom-left corner is enough. The returned y is the top
// edge at column x.
func fits(p Prober, x, seed, size vm.Cell) (ok bool, y vm.Cell, err error) {
	y, err = topEdge(p, x, seed)
	if err != nil {
		return false, 0, err
	}
	ok, err = p.Pulled(x-size+1, y+size-1)
	return ok, y, err
}

// FitSquare returns the top-left corner of the closest size×size square fully
// inside the beam. Columns are probed with exponential growth until the
// square fits, then the smallest fitting right-edge column is found by binary
// search.
func FitSquare(p Prober, size vm.Cell) (x, y vm.Cell, err error) {
	if size < 1 {
		return 0, 0, errors.Errorf("invalid square size %d", size)
	}

	// grow until the square fits
	var lo, seed vm.Cell
	hi := 2 * size
	for {
		ok, edge, err := fits(p, hi, seed, size)
		if err != nil {
			return 0, 0, err
		}
		if ok {
			break
		}
		seed = edge
		lo = hi
		hi += 3 * size
	}

	// then find the first column where it does
	loSeed := seed
	for lo < hi {
		mid := (lo + hi) / 2
		ok, _, err := fits(p, mid, loSeed, size)
		if err != nil {
			return 0, 0, err
		}
		if ok {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	y, err = topEdge(p, lo, loSeed)
	if err != nil {
		return 0, 0, err
	}
	return lo - size + 1, y, nil
}

// Answer folds a square's top-left corner into the conventional single-value
// encoding x*10000 + y.
func Answer(x, y vm.Cell) vm.Cell {
	return x*10000 + y
}
