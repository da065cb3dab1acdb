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
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/cockroachdb/bigdec"
)

var (
	Factorial = &cobra.Command{
		Use:   "factorial <n>",
		Short: "Print n!.",
		Args:  cobra.ExactArgs(1),
		RunE:  commandFactorial,
	}

	Power = &cobra.Command{
		Use:   "power <base> <exponent>",
		Short: "Print base raised to exponent. base may have any number of digits.",
		Args:  cobra.ExactArgs(2),
		RunE:  commandPower,
	}

	Fibonacci = &cobra.Command{
		Use:   "fibonacci <n>",
		Short: "Print the nth Fibonacci number, counting from F(0) = 0.",
		Args:  cobra.ExactArgs(1),
		RunE:  commandFibonacci,
	}
)

func commandFactorial(cmd *cobra.Command, args []string) error {
	n, err := parseUint("n", args[0])
	if err != nil {
		return err
	}
	return printResult(cmd, fmt.Sprintf("factorial(%d)", n), func() *bigdec.BigDecimal {
		return bigdec.Factorial(n)
	})
}

func commandPower(cmd *cobra.Command, args []string) error {
	base, err := bigdec.NewFromString(args[0])
	if err != nil {
		glog.Warningf("rejected base %q: %v", args[0], err)
		return fmt.Errorf("invalid base %q: %w", args[0], err)
	}
	exponent, err := parseUint("exponent", args[1])
	if err != nil {
		return err
	}
	return printResult(cmd, fmt.Sprintf("power(%s, %d)", base, exponent), func() *bigdec.BigDecimal {
		return bigdec.Power(base, exponent)
	})
}

func commandFibonacci(cmd *cobra.Command, args []string) error {
	n, err := parseUint("n", args[0])
	if err != nil {
		return err
	}
	return printResult(cmd, fmt.Sprintf("fibonacci(%d)", n), func() *bigdec.BigDecimal {
		return bigdec.Fibonacci(n)
	})
}

// printResult runs fn and writes its result to the command's output.
func printResult(cmd *cobra.Command, name string, fn func() *bigdec.BigDecimal) error {
	start := time.Now()
	r := fn()
	glog.V(1).Infof("%s: %d digits in %v", name, r.NumDigits(), time.Since(start))
	_, err := fmt.Fprintln(cmd.OutOrStdout(), r)
	return err
}
