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

// Package droid drives an Intcode text adventure.
//
// The adventure program converses in ASCII: it prints room descriptions as
// integer character codes and reads commands the same way, one line per turn.
// A Session holds such a conversation over a suspended machine, one Run per
// exchange. On top of it, Play replays a scripted walkthrough and Hunt brute
// forces the item combination that gets the droid past the pressure plate.
package droid

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// A Session is a line-oriented conversation with an adventure program. The
// machine suspends on input between exchanges, so each Send resumes it with
// one command line and collects its reply.
type Session struct {
	m       *vm.Instance
	invalid []vm.Cell
}

// NewSession returns a Session conversing with the program in the given
// image. The session takes ownership of the image. Call Boot to collect the
// program's opening message before sending commands.
func NewSession(img *vm.Image) (*Session, error) {
	m, err := vm.New(img)
	if err != nil {
		return nil, err
	}
	return &Session{m: m}, nil
}

// Halted reports whether the underlying machine has halted. The adventure
// program halts on game over, in either direction.
func (s *Session) Halted() bool {
	return s.m.Halted()
}

// Invalid returns the output values of the last exchange that were not valid
// code points and are therefore missing from the decoded reply.
func (s *Session) Invalid() []vm.Cell {
	return s.invalid
}

// decode interprets machine output as text, one value per code point. Values
// that do not form valid code points are reported through Invalid rather
// than decoded.
func (s *Session) decode(out []vm.Cell) string {
	var b strings.Builder
	s.invalid = s.invalid[:0]
	for _, c := range out {
		if c >= 0 && c <= utf8.MaxRune && utf8.ValidRune(rune(c)) {
			b.WriteRune(rune(c))
		} else {
			s.invalid = append(s.invalid, c)
		}
	}
	return b.String()
}

// Boot runs the program with no input and returns its opening message.
func (s *Session) Boot() (string, error) {
	out, err := s.m.Run(nil)
	if err != nil {
		return "", errors.Wrap(err, "boot")
	}
	return s.decode(out), nil
}

// Send issues one command line (without the trailing newline) and returns the
// program's reply. Sending to a halted machine returns an empty reply.
func (s *Session) Send(line string) (string, error) {
	in := make([]vm.Cell, 0, len(line)+1)
	for _, r := range line {
		in = append(in, vm.Cell(r))
	}
	in = append(in, '\n')
	out, err := s.m.Run(in)
	if err != nil {
		return "", errors.Wrapf(err, "send %q", line)
	}
	return s.decode(out), nil
}

// A Transport is anything that can exchange one command line for a reply.
// Session is the Intcode-backed implementation; Play and Hunt only rely on
// this interface.
type Transport interface {
	Send(line string) (string, error)
}

// Play sends a scripted command sequence and returns the reply to each
// command.
func Play(t Transport, script []string) ([]string, error) {
	replies := make([]string, 0, len(script))
	for _, cmd := range script {
		reply, err := t.Send(cmd)
		if err != nil {
			return replies, err
		}
		replies = append(replies, reply)
	}
	return replies, nil
}

// Failure keywords: the pressure plate rejects a wrong item combination with
// a message saying the droid is too light or too heavy.
var failureWords = []string{"heavier", "lighter"}

// rejected reports whether a reply is the pressure plate turning the droid
// away.
func rejected(reply string) bool {
	for _, w := range failureWords {
		if strings.Contains(reply, w) {
			return true
		}
	}
	return false
}

// Hunt finds the item combination that satisfies the pressure plate guarding
// the direction dir. The droid must be standing in the room next to the
// plate, with all candidate items dropped there. Hunt tries every subset of
// items: takes it, walks into dir capturing the plate's verdict, and drops
// the subset again when turned away. It returns the reply to the successful
// attempt.
func Hunt(t Transport, items []string, dir string) (string, error) {
	if len(items) > 16 {
		return "", errors.Errorf("too many candidate items (%d)", len(items))
	}
	for subset := 0; subset < 1<<len(items); subset++ {
		for b, item := range items {
			if subset&(1<<b) != 0 {
				if _, err := t.Send("take " + item); err != nil {
					return "", err
				}
			}
		}
		reply, err := t.Send(dir)
		if err != nil {
			return "", err
		}
		if !rejected(reply) {
			return reply, nil
		}
		for b, item := range items {
			if subset&(1<<b) != 0 {
				if _, err := t.Send("drop " + item); err != nil {
					return "", err
				}
			}
		}
	}
	return "", errors.New("no item combination satisfies the pressure plate")
}
