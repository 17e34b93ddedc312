// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-calcy/pkg/calc"
	log "github.com/sirupsen/logrus"
)

// PROMPT is written before each line is read.
const PROMPT = "> "

// Shell is a read-eval-print loop over a given input and output.
type Shell struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewShell constructs a shell which reads commands from in, and writes prompts
// and results to out.
func NewShell(in io.Reader, out io.Writer) *Shell {
	return &Shell{bufio.NewReader(in), out}
}

// A single line read from the input, or the error which prevented it.
type input struct {
	text string
	err  error
}

// Run the shell until either a quit command is read, the input is exhausted
// or the context is cancelled.  Cancellation takes effect even whilst waiting
// for input.  The only errors returned are those arising from reading the
// input, or from cancellation.
func (p *Shell) Run(ctx context.Context) error {
	var (
		next  = make(chan struct{})
		lines = make(chan input, 1)
	)
	//
	defer close(next)
	//
	go p.read(next, lines)
	//
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		//
		fmt.Fprint(p.out, PROMPT)
		// Request the next line
		next <- struct{}{}
		//
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in := <-lines:
			if errors.Is(in.err, io.EOF) {
				return nil
			} else if in.err != nil {
				return in.err
			} else if quit := p.Step(in.text); quit {
				return nil
			}
		}
	}
}

// read one line of input for each request received, stopping once the
// requests channel is closed.  Lines may be of any length.
func (p *Shell) read(next <-chan struct{}, lines chan<- input) {
	for range next {
		text, err := p.reader.ReadString('\n')
		// A final line without a newline is still a line
		if errors.Is(err, io.EOF) && text != "" {
			err = nil
		}
		//
		lines <- input{strings.TrimRight(text, "\r\n"), err}
	}
}

// Step executes a single line of input, returning true if the shell should
// terminate.
func (p *Shell) Step(line string) bool {
	cmd := ParseLine(line)
	//
	switch cmd.Kind {
	case QUIT:
		fmt.Fprintln(p.out, "Bye!")
		return true
	case USAGE_ERROR:
		log.Debug(fmt.Sprintf("malformed line %q", line))
		fmt.Fprintln(p.out, USAGE)
	case CALCULATE:
		log.Debug(fmt.Sprintf("evaluating %s %s under %q", cmd.Left, cmd.Right, cmd.Tag))
		//
		if report, err := calc.Evaluate(cmd.Tag, cmd.Left, cmd.Right); err != nil {
			fmt.Fprintln(p.out, err)
		} else {
			fmt.Fprintln(p.out, report)
		}
	}
	//
	return false
}

// Run a shell over the given input and output.
func Run(ctx context.Context, in io.Reader, out io.Writer) error {
	return NewShell(in, out).Run(ctx)
}
