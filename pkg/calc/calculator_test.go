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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-calcy/pkg/integer"
	"github.com/consensys/go-calcy/pkg/util"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Determines the (relative) location of the golden reports.
const TestDir = "testdata"

func Test_Report_U8_10_20(t *testing.T) {
	checkReport(t, "u8", "10", "20")
}

func Test_Report_I8_Min_Minus1(t *testing.T) {
	checkReport(t, "i8", "-128", "-1")
}

func Test_Report_I16_Neg(t *testing.T) {
	checkReport(t, "i16", "-300", "7")
}

func Test_Report_U32_Max_1(t *testing.T) {
	checkReport(t, "u32", "4294967295", "1")
}

func Test_Report_U128_Zero(t *testing.T) {
	checkReport(t, "u128", "0", "0")
}

func Test_Calculator_I8_Overflow(t *testing.T) {
	calc, err := Parse[integer.I8]("127", "1")
	require.NoError(t, err)
	//
	lines := strings.Split(calc.String(), "\n")
	//
	assert.Equal(t, "127 + 1 = None", lines[0])
	assert.Equal(t, "127 - 1 = Some(126)", lines[1])
	assert.Equal(t, "127 * 1 = Some(127)", lines[2])
	assert.Equal(t, "127 / 1 = Some(127)", lines[3])
}

func Test_Calculator_Operations(t *testing.T) {
	calc := NewCalculator(integer.I32(-7), integer.I32(2))
	//
	assert.Equal(t, integer.I32(-7), calc.Op1())
	assert.Equal(t, integer.I32(2), calc.Op2())
	checkDefined(t, "-5", calc.Add())
	checkDefined(t, "-9", calc.Sub())
	checkDefined(t, "-14", calc.Mul())
	// Truncation toward zero
	checkDefined(t, "-3", calc.Div())
	assert.Equal(t, integer.I32(-7&2), calc.And())
	assert.Equal(t, integer.I32(-7|2), calc.Or())
	assert.Equal(t, integer.I32(-7^2), calc.Xor())
	// Undefined results
	assert.True(t, NewCalculator(integer.I32(1), integer.I32(0)).Div().IsEmpty())
	assert.True(t, NewCalculator(integer.U16(0), integer.U16(1)).Sub().IsEmpty())
}

func Test_Calculator_ParseFailure(t *testing.T) {
	// First failing operand is reported
	_, err := Parse[integer.U8]("300", "-1")
	assert.EqualError(t, err, "u8 cannot hold 300")
	//
	_, err = Parse[integer.U8]("3", "-1")
	assert.EqualError(t, err, "u8 cannot hold -1")
	//
	_, err = ParseAndDisplay[integer.I128]("1", "")
	assert.EqualError(t, err, "i128 cannot hold ")
}

// ============================================================================
// Helpers
// ============================================================================

func checkReport(t *testing.T, tag, a, b string) {
	t.Helper()
	//
	filename := fmt.Sprintf("%s_%s_%s.txt", tag, a, b)
	bytes, err := os.ReadFile(filepath.Join(TestDir, filename))
	require.NoError(t, err)
	//
	report, err := Evaluate(tag, a, b)
	require.NoError(t, err)
	//
	if diff := cmp.Diff(string(bytes), report); diff != "" {
		t.Errorf("report mismatch for %s (-want +got):\n%s", filename, diff)
	}
}

func checkDefined[T fmt.Stringer](t *testing.T, expected string, actual util.Option[T]) {
	t.Helper()
	//
	if assert.True(t, actual.HasValue()) {
		assert.Equal(t, expected, actual.Unwrap().String())
	}
}
