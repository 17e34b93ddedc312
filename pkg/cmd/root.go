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
	"os"
	"runtime/debug"

	"github.com/consensys/go-calcy/pkg/repl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "calcy",
	Short: "A calculator for fixed-width integer arithmetic.",
	Long: `An interactive calculator which evaluates arithmetic and bitwise
	operations over a pair of operands of a chosen fixed-width integer type,
	such as "10_i32 20".  Results are shown in binary, hex and decimal.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			printVersion(cmd)
			return
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Only greet interactive users
		if term.IsTerminal(int(os.Stdin.Fd())) {
			printBanner(cmd)
		}
		//
		if err := repl.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	//
	fmt.Fprint(out, "calcy ")
	//
	if Version != "" {
		// Built via "make"
		fmt.Fprintf(out, "%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		fmt.Fprintf(out, "%s", info.Main.Version)
	} else {
		// Unknown, perhaps "go run"
		fmt.Fprintf(out, "(unknown version)")
	}
	//
	fmt.Fprintln(out)
}

func printBanner(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	//
	fmt.Fprintln(out, "Calcy REPL")
	fmt.Fprintln(out, "Usage: <num>_<type> <num>  (e.g., 10_i32 20)")
	fmt.Fprintln(out, "       .quit to exit")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
