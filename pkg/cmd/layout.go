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
	"fmt"
	"io"
	"unsafe"

	"github.com/consensys/go-calcy/pkg/calc"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the memory layout of each calculator instantiation.",
	Long: `Print the size and alignment of the calculator for each supported
	integer type, along with the offset of each operand and the size of the
	dispatch table.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printLayouts(cmd.OutOrStdout())
	},
}

func printLayouts(out io.Writer) {
	fmt.Fprintln(out, "=== Type Layouts ===")
	fmt.Fprintln(out)
	//
	for _, l := range calc.Layouts() {
		fmt.Fprintf(out, "Calculator[%s]:\n", l.Tag)
		fmt.Fprintf(out, "  size:  %d bytes\n", l.Size)
		fmt.Fprintf(out, "  align: %d bytes\n", l.Align)
		fmt.Fprintf(out, "  op1:   offset %d, size %d\n", l.Op1Offset, l.OperandSize)
		fmt.Fprintf(out, "  op2:   offset %d, size %d\n", l.Op2Offset, l.OperandSize)
		fmt.Fprintln(out)
	}
	//
	var entry calc.Entry
	//
	fmt.Fprintf(out, "ENTRIES (%d x calc.Entry):\n", len(calc.ENTRIES))
	fmt.Fprintf(out, "  entry size:  %d bytes\n", unsafe.Sizeof(entry))
	fmt.Fprintf(out, "  entry align: %d bytes\n", unsafe.Alignof(entry))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "===================")
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
