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

// bigcalc prints factorials, powers and Fibonacci numbers of any size.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/cockroachdb/bigdec/cmd/bigcalc/command"
)

func main() {
	// Expose glog's flags (--logtostderr, -v, ...) on the command line.
	command.Root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	if err := command.Root.Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
