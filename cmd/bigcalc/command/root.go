// Copyright 2024 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package command

import (
	"fmt"
	"strconv"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	rootArgs = struct {
		Base uint64
	}{
		Base: 2,
	}

	Root = &cobra.Command{
		Use:   "bigcalc",
		Short: "bigcalc prints factorials, powers and Fibonacci numbers of any size.",
		Long: "`bigcalc` computes with arbitrary-precision decimal integers.\n\n" +
			"Each subcommand prints its result as a decimal string on its own line.\n" +
			"`bigcalc session` reads its operands from standard input instead of the command line.",
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}
)

func init() {
	RegisterFlags(Root.PersistentFlags())

	Root.AddCommand(Factorial)
	Root.AddCommand(Power)
	Root.AddCommand(Fibonacci)
	Root.AddCommand(Sum)
	Root.AddCommand(Diff)
	Root.AddCommand(Session)
}

// RegisterFlags installs bigcalc's flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Uint64Var(&rootArgs.Base, "base", rootArgs.Base, "Base of the powers printed by sum, diff and session.")
}

// parseUint parses a non-negative machine integer operand.
func parseUint(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		glog.Warningf("rejected %s %q: %v", name, s, err)
		return 0, fmt.Errorf("invalid %s %q: expected a non-negative integer", name, s)
	}
	return n, nil
}
