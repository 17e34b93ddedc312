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
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/consensys/go-calcy/pkg/integer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Table_Keys(t *testing.T) {
	require.Len(t, ENTRIES, len(integer.Tags()))
	//
	for i, tag := range integer.Tags() {
		assert.Equal(t, tag, ENTRIES[i].Tag)
		//
		entry, ok := Lookup(string(tag))
		require.True(t, ok, "missing entry for %s", tag)
		assert.Equal(t, tag, entry.Tag)
	}
}

func Test_Table_Frozen(t *testing.T) {
	expected, err := Evaluate("u8", "10", "20")
	require.NoError(t, err)
	// Overwrite an entry once the table has been built
	saved := ENTRIES[5]
	defer func() { ENTRIES[5] = saved }()
	//
	require.Equal(t, integer.TagU8, ENTRIES[5].Tag)
	ENTRIES[5].Evaluate = func(a, b string) (string, error) { return "tampered", nil }
	//
	actual, err := Evaluate("u8", "10", "20")
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	// Nor can an entry be modified through Lookup
	entry, _ := Lookup("u8")
	entry.Evaluate = nil
	again, _ := Lookup("u8")
	assert.Nil(t, entry.Evaluate)
	assert.NotNil(t, again.Evaluate)
}

func Test_Table_UnknownType(t *testing.T) {
	for _, tag := range []string{"nope", "q7", "", "U8", "i256", " u8"} {
		_, ok := Lookup(tag)
		assert.False(t, ok)
		//
		_, err := Evaluate(tag, "1", "2")
		assert.EqualError(t, err, "Unknown type: "+tag)
		//
		var target *UnknownTypeError
		assert.True(t, errors.As(err, &target))
		//
		_, err = Summarise(tag, "1", "2")
		assert.EqualError(t, err, "Unknown type: "+tag)
	}
}

func Test_Table_Malformed(t *testing.T) {
	_, err := Evaluate("u8", "300", "1")
	assert.EqualError(t, err, "u8 cannot hold 300")
	//
	_, err = Evaluate("i16", "1", "x")
	assert.EqualError(t, err, "i16 cannot hold x")
	//
	var target *integer.RangeError
	assert.True(t, errors.As(err, &target))
}

func Test_Table_AllSamples(t *testing.T) {
	for _, tag := range integer.Tags() {
		for _, a := range samples(tag) {
			for _, b := range samples(tag) {
				report, err := Evaluate(string(tag), a, b)
				require.NoError(t, err, "%s %s %s", tag, a, b)
				//
				lines := strings.Split(report, "\n")
				// 4 arithmetic lines + 3 x 4 bitwise lines + trailing newline
				require.Len(t, lines, 17)
				// Bitwise operations are never undefined
				for _, line := range lines[4:] {
					assert.NotContains(t, line, UNDEFINED)
				}
			}
		}
	}
}

func Test_Table_DivideByZero(t *testing.T) {
	for _, tag := range integer.Tags() {
		for _, a := range samples(tag) {
			report, err := Evaluate(string(tag), a, "0")
			require.NoError(t, err)
			assert.Equal(t, a+" / 0 = None", strings.Split(report, "\n")[3])
		}
	}
}

func Test_Table_SignedMinDivMinus1(t *testing.T) {
	for _, tag := range integer.Tags() {
		if tag.Signed() {
			lo := samples(tag)[5]
			//
			report, err := Evaluate(string(tag), lo, "-1")
			require.NoError(t, err)
			//
			lines := strings.Split(report, "\n")
			assert.Equal(t, lo+" * -1 = None", lines[2])
			assert.Equal(t, lo+" / -1 = None", lines[3])
		}
	}
}

func Test_Table_Concurrent(t *testing.T) {
	var (
		wg      sync.WaitGroup
		reports = make([]string, 16)
	)
	//
	for i := range reports {
		wg.Add(1)
		//
		go func(i int) {
			defer wg.Done()
			reports[i], _ = Evaluate("i64", "-9223372036854775808", "3")
		}(i)
	}
	//
	wg.Wait()
	//
	for _, r := range reports {
		assert.Equal(t, reports[0], r)
	}
}
