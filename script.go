// Copyright 2025 Naren Yellavula
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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/cybrota/avlmap/avl"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong number of arguments")
	errQuit           = errors.New("quit")
)

// Session applies script commands to one tree and writes their output.
type Session struct {
	Tree    *avl.Tree[string]
	Out     io.Writer
	Display DisplayConfig
}

func NewSession(out io.Writer, display DisplayConfig) *Session {
	return &Session{Tree: avl.New[string](), Out: out, Display: display}
}

// splitLine splits a script line into words using shell quoting rules.
// Comments and blank lines yield no words.
func splitLine(line string) ([]string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}
	args, err := shellwords.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %v", trimmed, err)
	}
	return args, nil
}

func parseKey(arg string) (int, error) {
	key, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: must be an integer", arg)
	}
	return key, nil
}

func usage(cmd, args string) error {
	return fmt.Errorf("%w: usage: %s %s", ErrUsage, cmd, args)
}

// Exec runs a single script line.
func (s *Session) Exec(line string) error {
	args, err := splitLine(line)
	if err != nil || len(args) == 0 {
		return err
	}

	cmd, rest := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "upsert", "set", "put":
		if len(rest) < 2 {
			return usage(cmd, "KEY VALUE")
		}
		key, err := parseKey(rest[0])
		if err != nil {
			return err
		}
		if s.Tree.Upsert(key, strings.Join(rest[1:], " ")) {
			fmt.Fprintf(s.Out, "updated %d\n", key)
		} else {
			fmt.Fprintf(s.Out, "inserted %d\n", key)
		}

	case "get", "lookup":
		if len(rest) != 1 {
			return usage(cmd, "KEY")
		}
		key, err := parseKey(rest[0])
		if err != nil {
			return err
		}
		value, err := s.Tree.Lookup(key)
		if err != nil {
			fmt.Fprintln(s.Out, err)
			return nil
		}
		fmt.Fprintln(s.Out, value)

	case "has":
		if len(rest) != 1 {
			return usage(cmd, "KEY")
		}
		key, err := parseKey(rest[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(s.Out, s.Tree.Contains(key))

	case "len":
		fmt.Fprintln(s.Out, s.Tree.Len())

	case "height":
		fmt.Fprintln(s.Out, s.Tree.Height())

	case "list":
		for k, v := range s.Tree.All() {
			fmt.Fprintf(s.Out, "%d=%s\n", k, v)
		}

	case "range":
		if len(rest) != 2 {
			return usage(cmd, "LO HI")
		}
		lo, err := parseKey(rest[0])
		if err != nil {
			return err
		}
		hi, err := parseKey(rest[1])
		if err != nil {
			return err
		}
		for k, v := range s.Tree.Range(lo, hi) {
			fmt.Fprintf(s.Out, "%d=%s\n", k, v)
		}

	case "print", "tree":
		fmt.Fprint(s.Out, renderTree(s.Tree, s.Display))

	case "check":
		if err := s.Tree.Validate(); err != nil {
			fmt.Fprintln(s.Out, err)
			return nil
		}
		fmt.Fprintln(s.Out, "ok")

	case "quit", "exit":
		return errQuit

	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, args[0])
	}

	return nil
}

// RunScript executes r line by line and stops at the first failing line.
func RunScript(r io.Reader, s *Session) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := s.Exec(scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// RunREPL reads commands from in until EOF or quit. Errors are reported and
// the prompt continues.
func RunREPL(in io.Reader, s *Session, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.Out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.Out)
			return scanner.Err()
		}
		if err := s.Exec(scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(s.Out, s.errorLine(err))
		}
	}
}

// errorLine formats a failed command for the prompt, colored when enabled.
func (s *Session) errorLine(err error) string {
	line := fmt.Sprintf("error: %v", err)
	if !s.Display.Color {
		return line
	}
	return GetColorScheme().Error.Render(line)
}
