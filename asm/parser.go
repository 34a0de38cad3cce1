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
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	i       []vm.Cell
	pc      int
	end     int
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	cstName string
	cstPos  scanner.Position
	err     error
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Cell, 16384)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Pos(), -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Pos(), p.pc})
}

func scanError(s *scanner.Scanner, msg string) error {
	pos := s.Position
	if !pos.IsValid() {
		pos = s.Pos()
	}
	return fmt.Errorf("%s: %s", pos, msg)
}

// value parses the token text as an integer, a quoted character, or a defined
// constant. ok is false when the text is none of those (i.e. a label name).
func (p *parser) value(s string) (v vm.Cell, ok bool) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, _, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil {
			p.err = scanError(&p.s, err.Error())
			return 0, false
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// operand scans and compiles one instruction operand, returning its mode
// digit. Operands are a bare value or label for position mode, or prefixed
// with # for immediate mode and ~ for relative mode.
func (p *parser) operand(o *op, idx int) vm.Cell {
	tok := p.s.Scan()
	if p.err != nil {
		return 0
	}
	if tok == scanner.EOF {
		p.err = scanError(&p.s, o.names[0]+": missing operand")
		return 0
	}
	s := p.s.TokenText()
	mode := vm.ModePosition
	switch s[0] {
	case '#':
		mode, s = vm.ModeImmediate, s[1:]
	case '~':
		mode, s = vm.ModeRelative, s[1:]
	}
	if mode == vm.ModeImmediate && idx == o.wr {
		p.err = scanError(&p.s, o.names[0]+": immediate mode write target")
		return 0
	}
	if len(s) == 0 {
		p.err = scanError(&p.s, o.names[0]+": empty operand")
		return 0
	}
	if v, ok := p.value(s); ok || p.err != nil {
		p.write(v)
	} else {
		p.useLabel(s)
		p.write(0)
	}
	return vm.Cell(mode)
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]vm.Cell, error) {
	// state:
	// 0: accept anything
	// 2: need integer or const (for .org directive)
	// 3: need integer or const (for .equ value)
	var state int

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.err = scanError(s, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); p.err == nil && tok != scanner.EOF; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.err = scanError(&p.s, "Unexpected character "+strconv.QuoteRune(tok))
			break
		}
		s := p.s.TokenText()

		// Words can start with and contain digits, symbols, punctuation and
		// so on: the scanner only splits on whitespace, classification
		// happens here.
		if s == "(" {
			// skip comments
			for tok = p.s.Scan(); p.err == nil && tok != scanner.EOF && p.s.TokenText() != ")"; tok = p.s.Scan() {
			}
			continue
		}

		if v, ok := p.value(s); ok {
			switch state {
			case 2:
				p.pc = int(v)
			case 3:
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			default:
				// bare value: a raw data cell
				p.write(v)
			}
			state = 0
			continue
		}
		if p.err != nil {
			break
		}
		if state >= 2 {
			p.err = scanError(&p.s, "Unexpected label as directive argument: "+s)
			break
		}

		switch s[0] {
		case ':':
			n := s[1:]
			if len(n) == 0 {
				p.err = scanError(&p.s, "Empty label name")
				break
			}
			if cst, ok := p.consts[n]; ok {
				p.err = scanError(&p.s, "Label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
				break
			}
			if l, ok := p.labels[n]; ok {
				if l.address != -1 {
					p.err = scanError(&p.s, "Label redefinition: "+n+", previous definition here: "+l.pos.String())
					break
				}
				l.address = p.pc
				l.pos = p.s.Pos()
			} else {
				p.labels[n] = &label{
					labelSite{p.s.Pos(), p.pc},
					nil,
				}
			}
		case '.':
			switch s {
			case ".org":
				state = 2
			case ".equ":
				t := p.s.Scan()
				if t != scanner.Ident {
					p.err = scanError(&p.s, ".equ: expected identifier, got "+p.s.TokenText())
					break
				}
				p.cstName = p.s.TokenText()
				if l, ok := p.labels[p.cstName]; ok {
					p.err = scanError(&p.s, ".equ: redefinition of "+p.cstName+", previously defined/used as a label here: "+l.pos.String())
					break
				}
				p.cstPos = p.s.Pos()
				state = 3
			default:
				p.err = scanError(&p.s, "Unknown dot directive: "+s)
			}
		default:
			if o, ok := opcodeIndex[s]; ok {
				opPC := p.pc
				p.write(o.code)
				mul := vm.Cell(100)
				for idx := 0; idx < o.n && p.err == nil; idx++ {
					p.i[opPC] += p.operand(o, idx) * mul
					mul *= 10
				}
			} else {
				// bare label: a raw address cell
				p.useLabel(s)
				p.write(0)
			}
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			return nil, fmt.Errorf("Missing label definition for %s, first use here: %s", n, l.uses[0].pos)
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	return p.i[:p.end], nil
}
