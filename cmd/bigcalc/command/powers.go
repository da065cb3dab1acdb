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

	"github.com/spf13/cobra"

	"github.com/cockroachdb/bigdec"
)

var (
	Sum = &cobra.Command{
		Use:   "sum <a> <b>",
		Short: "Print base^a + base^b.",
		Args:  cobra.ExactArgs(2),
		RunE:  commandSum,
	}

	Diff = &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Print base^a - base^b. Fails if the result would be negative.",
		Args:  cobra.ExactArgs(2),
		RunE:  commandDiff,
	}
)

func parseExponents(args []string) (a, b uint64, err error) {
	if a, err = parseUint("a", args[0]); err != nil {
		return 0, 0, err
	}
	if b, err = parseUint("b", args[1]); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func commandSum(cmd *cobra.Command, args []string) error {
	a, b, err := parseExponents(args)
	if err != nil {
		return err
	}
	base := rootArgs.Base
	return printResult(cmd, fmt.Sprintf("%d^%d + %d^%d", base, a, base, b), func() *bigdec.BigDecimal {
		return powerSum(base, a, b)
	})
}

func commandDiff(cmd *cobra.Command, args []string) error {
	a, b, err := parseExponents(args)
	if err != nil {
		return err
	}
	base := rootArgs.Base
	d, err := powerDiff(base, a, b)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	return printResult(cmd, fmt.Sprintf("%d^%d - %d^%d", base, a, base, b), func() *bigdec.BigDecimal {
		return d
	})
}

func powerSum(base, a, b uint64) *bigdec.BigDecimal {
	return bigdec.Add(bigdec.PowerUint64(base, a), bigdec.PowerUint64(base, b))
}

func powerDiff(base, a, b uint64) (*bigdec.BigDecimal, error) {
	return bigdec.Sub(bigdec.PowerUint64(base, a), bigdec.PowerUint64(base, b))
}
