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
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-calcy/pkg/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_Eval_Text(t *testing.T) {
	var out bytes.Buffer
	//
	expected, err := calc.Evaluate("i8", "-128", "-1")
	require.NoError(t, err)
	//
	require.NoError(t, runEval(&out, "text", "-128_i8", "-1"))
	assert.Equal(t, expected+"\n", out.String())
}

func Test_Eval_DefaultType(t *testing.T) {
	var out bytes.Buffer
	//
	require.NoError(t, runEval(&out, "text", "10", "20"))
	assert.True(t, strings.HasPrefix(out.String(), "10 + 20 = Some(30)\n10 - 20 = None\n"))
}

func Test_Eval_Yaml(t *testing.T) {
	var (
		out     bytes.Buffer
		summary calc.Summary
	)
	//
	require.NoError(t, runEval(&out, "yaml", "250_u8", "10"))
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &summary))
	//
	assert.Equal(t, "u8", string(summary.Type))
	assert.True(t, summary.Arithmetic[0].Result.IsEmpty())
	assert.Equal(t, "240", summary.Arithmetic[1].Result.Unwrap())
	assert.Equal(t, "0x0A", summary.Operands[1].Hex)
}

func Test_Eval_Errors(t *testing.T) {
	var out bytes.Buffer
	//
	assert.EqualError(t, runEval(&out, "text", "1_q7", "2"), "Unknown type: q7")
	assert.EqualError(t, runEval(&out, "yaml", "1_", "2"), "Unknown type: ")
	assert.EqualError(t, runEval(&out, "text", "1_u16", "65536"), "u16 cannot hold 65536")
	assert.EqualError(t, runEval(&out, "json", "1", "2"), "unknown output format \"json\"")
	assert.Empty(t, out.String())
}

func Test_Layout_Output(t *testing.T) {
	var out bytes.Buffer
	//
	printLayouts(&out)
	//
	text := out.String()
	assert.True(t, strings.HasPrefix(text, "=== Type Layouts ===\n"))
	assert.Contains(t, text, "Calculator[i8]:\n  size:  2 bytes\n")
	assert.Contains(t, text, "Calculator[u64]:\n  size:  16 bytes\n")
	assert.Contains(t, text, "ENTRIES (10 x calc.Entry):\n")
}
