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
	"bufio"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/cockroachdb/bigdec"
)

const orderMessage = "The first number should be greater or equal than the second number!"

var Session = &cobra.Command{
	Use:   "session",
	Short: "Read operands from standard input and print a fixed sequence of results.",
	Long: "Reads whitespace-separated non-negative integers from standard input and prints, in order:\n\n" +
		"  n    -> n!\n" +
		"  n    -> base^n\n" +
		"  a b  -> base^a + base^b\n" +
		"  a b  -> base^a - base^b, asking again while a < b\n" +
		"  n    -> the nth Fibonacci number",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), rootArgs.Base)
	},
}

type sessionReader struct {
	in *bufio.Reader
}

func (r *sessionReader) read(vals ...*uint64) error {
	for _, v := range vals {
		if _, err := fmt.Fscan(r.in, v); err != nil {
			return fmt.Errorf("session: read operand: %w", err)
		}
	}
	return nil
}

func runSession(in io.Reader, out io.Writer, base uint64) error {
	r := &sessionReader{in: bufio.NewReader(in)}
	write := func(v interface{}) error {
		if _, err := fmt.Fprintln(out, v); err != nil {
			return fmt.Errorf("session: write result: %w", err)
		}
		return nil
	}
	var a, b uint64

	if err := r.read(&a); err != nil {
		return err
	}
	if err := write(bigdec.Factorial(a)); err != nil {
		return err
	}

	if err := r.read(&a); err != nil {
		return err
	}
	if err := write(bigdec.PowerUint64(base, a)); err != nil {
		return err
	}

	if err := r.read(&a, &b); err != nil {
		return err
	}
	if err := write(powerSum(base, a, b)); err != nil {
		return err
	}

	if err := r.read(&a, &b); err != nil {
		return err
	}
	for a < b {
		glog.Warningf("session: first exponent %d is less than second exponent %d", a, b)
		if err := write(orderMessage); err != nil {
			return err
		}
		if err := r.read(&a, &b); err != nil {
			return err
		}
	}
	d, err := powerDiff(base, a, b)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := write(d); err != nil {
		return err
	}

	if err := r.read(&a); err != nil {
		return err
	}
	return write(bigdec.Fibonacci(a))
}
