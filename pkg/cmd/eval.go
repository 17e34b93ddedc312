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
	"os"

	"github.com/consensys/go-calcy/pkg/calc"
	"github.com/consensys/go-calcy/pkg/repl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] <num>_<type> <num>",
	Short: "Evaluate a single pair of operands.",
	Long: `Evaluate a single pair of operands, exactly as a line of the
	interactive calculator would.  The type suffix on the first operand
	defaults to u8.  Results can be reported as text or as yaml.  Use "--"
	before negative operands, e.g. "eval -- -128_i8 -1".`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		output := GetString(cmd, "output")
		//
		if err := runEval(cmd.OutOrStdout(), output, args[0], args[1]); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), err)
			os.Exit(1)
		}
	},
}

// Evaluate a single command, writing the report in the given output format.
func runEval(out io.Writer, output string, first string, second string) error {
	num, tag := repl.SplitOperand(first)
	//
	log.Debug(fmt.Sprintf("evaluating %s %s under %q", num, second, tag))
	//
	switch output {
	case "text":
		report, err := calc.Evaluate(tag, num, second)
		if err != nil {
			return err
		}
		//
		fmt.Fprintln(out, report)
	case "yaml":
		summary, err := calc.Summarise(tag, num, second)
		if err != nil {
			return err
		}
		//
		bytes, err := summary.Yaml()
		if err != nil {
			return err
		}
		//
		if _, err = out.Write(bytes); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format \"%s\"", output)
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringP("output", "o", "text", "output format (text or yaml)")
}
