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
package calc

import (
	"github.com/consensys/go-calcy/pkg/integer"
	"github.com/consensys/go-calcy/pkg/util"
	"gopkg.in/yaml.v3"
)

// Summary is a structured form of the report produced for a calculator,
// suitable for serialisation.
type Summary struct {
	Type       integer.Tag        `yaml:"type"`
	BitWidth   uint               `yaml:"bitwidth"`
	Operands   []Value            `yaml:"operands"`
	Arithmetic []ArithmeticResult `yaml:"arithmetic"`
	Bitwise    []BitwiseResult    `yaml:"bitwise"`
}

// Value gives the decimal, hex and binary forms of a single value.
type Value struct {
	Decimal string `yaml:"dec"`
	Hex     string `yaml:"hex"`
	Binary  string `yaml:"bin"`
}

// ArithmeticResult holds the outcome of a checked arithmetic operation.  The
// result is empty (and encoded as null) when undefined.
type ArithmeticResult struct {
	Op     string              `yaml:"op"`
	Result util.Option[string] `yaml:"result"`
}

// BitwiseResult holds the outcome of a bitwise operation.
type BitwiseResult struct {
	Op     string `yaml:"op"`
	Result Value  `yaml:"result"`
}

// ParseAndSummarise parses both operands as values of type T, and summarises
// the results for them.
func ParseAndSummarise[T integer.Word[T]](a, b string) (*Summary, error) {
	calc, err := Parse[T](a, b)
	if err != nil {
		return nil, err
	}
	//
	return calc.Summary(), nil
}

// Summary evaluates all operations and returns them in structured form.
func (c Calculator[T]) Summary() *Summary {
	var bits = c.op1.BitWidth()
	//
	summary := &Summary{
		Type:     c.op1.Tag(),
		BitWidth: bits,
		Operands: []Value{valueOf(c.op1, bits), valueOf(c.op2, bits)},
	}
	//
	for _, op := range c.arithmetic() {
		var res = ArithmeticResult{op.symbol, util.None[string]()}
		//
		if val := op.eval(); val.HasValue() {
			res.Result = util.Some(val.Unwrap().String())
		}
		//
		summary.Arithmetic = append(summary.Arithmetic, res)
	}
	//
	for _, op := range c.bitwise() {
		summary.Bitwise = append(summary.Bitwise, BitwiseResult{op.symbol, valueOf(op.result, bits)})
	}
	//
	return summary
}

// Yaml serialises this summary as a YAML document.
func (s *Summary) Yaml() ([]byte, error) {
	return yaml.Marshal(s)
}

func valueOf[T integer.Word[T]](val T, bits uint) Value {
	return Value{val.String(), "0x" + val.Hex(), FormatBinary(val, bits)}
}
