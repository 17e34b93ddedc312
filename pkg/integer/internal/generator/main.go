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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// Generates the per-width machine integer types (package integer) and the
// dispatch table over all widths (package calc).
//
//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-calcy")
	cfg := newConfig(widthSpecs)
	//
	assertNoError(bgen.Generate(cfg, "integer", "templates",
		bavard.Entry{
			File:      "../../machine.go",
			Templates: []string{"machine.go.tmpl"},
		},
	), "for package \"integer\"")
	//
	assertNoError(bgen.Generate(cfg, "calc", "templates",
		bavard.Entry{
			File:      "../../../calc/dispatch.go",
			Templates: []string{"dispatch.go.tmpl"},
		},
	), "for package \"calc\"")
	// run gofmt on generated files
	runCmd("gofmt", "-w", "../../machine.go", "../../../calc/dispatch.go")
}

// widthSpec describes one integer type.  Types wider than 64 bits have no
// machine representation and are handwritten (see wide.go).
type widthSpec struct {
	Bits   uint
	Signed bool
}

var widthSpecs = []widthSpec{
	{8, true}, {16, true}, {32, true}, {64, true}, {128, true},
	{8, false}, {16, false}, {32, false}, {64, false}, {128, false},
}

// widthConfig is the view of a widthSpec consumed by the templates.
type widthConfig struct {
	widthSpec
	// Name of the Go type, e.g. "I32".
	Name string
	// Name of the Tag constant, e.g. "TagI32".
	TagName string
	// Underlying machine type, e.g. "int32".
	Machine string
	// Minimum and maximum values as Go constant expressions.
	Min string
	Max string
	// Article to use before the bitwidth in documentation.
	Article string
}

type config struct {
	// All integer types, in canonical order.
	All []widthConfig
	// Those integer types with a machine representation.
	Machine []widthConfig
}

func newConfig(specs []widthSpec) *config {
	var cfg config
	//
	for _, spec := range specs {
		wc := spec.config()
		//
		cfg.All = append(cfg.All, wc)
		//
		if spec.Bits <= 64 {
			cfg.Machine = append(cfg.Machine, wc)
		}
	}
	//
	return &cfg
}

func (w widthSpec) config() widthConfig {
	var (
		prefix  = "U"
		machine = fmt.Sprintf("uint%d", w.Bits)
		lo      = "0"
		hi      = fmt.Sprintf("math.MaxUint%d", w.Bits)
		article = "a"
	)
	//
	if w.Signed {
		prefix = "I"
		machine = fmt.Sprintf("int%d", w.Bits)
		lo = fmt.Sprintf("math.MinInt%d", w.Bits)
		hi = fmt.Sprintf("math.MaxInt%d", w.Bits)
	}
	//
	if w.Bits == 8 {
		article = "an"
	}
	//
	name := fmt.Sprintf("%s%d", prefix, w.Bits)
	//
	return widthConfig{
		widthSpec: w,
		Name:      name,
		TagName:   "Tag" + name,
		Machine:   machine,
		Min:       lo,
		Max:       hi,
		Article:   article,
	}
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
