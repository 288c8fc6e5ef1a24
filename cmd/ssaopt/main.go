/*
 * Copyright 2022 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/snava/ssaopt"
	"github.com/snava/ssaopt/internal/logs"
	"github.com/snava/ssaopt/internal/opts"
	"github.com/tebeka/atexit"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "", "TOML configuration file")
	rounds     = flag.Int("rounds", opts.Rounds, "optimization rounds before and after lowering")
	slots      = flag.Int("slots", opts.MemorySlots, "named value slots available for lifted literals")
	stats      = flag.Bool("stats", false, "print pass statistics to stderr")
	logLevel   = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: ssaopt [options] <program.ssa>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "ssaopt: %v\n", err)
	atexit.Exit(1)
}

// options loads the configuration file, then applies the flags that were
// explicitly set on the command line.
func options() (opts.Options, error) {
	o := opts.GetDefaultOptions()
	if *configFile != "" {
		if err := opts.LoadFile(*configFile, &o); err != nil {
			return o, err
		}
	}

	/* flags win over the configuration file */
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rounds":
			o.Rounds = *rounds
		case "slots":
			o.MemorySlots = *slots
		case "stats":
			o.Stats = *stats
		case "log-level":
			o.LogLevel = *logLevel
		}
	})
	return o, o.Validate()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	/* exactly one input file */
	if flag.NArg() != 1 {
		usage()
		atexit.Exit(2)
	}

	/* load the configuration */
	o, err := options()
	if err != nil {
		fatal(err)
	}

	/* install the logger, flushed on exit */
	logger, err := logs.New(o.LogLevel)
	if err != nil {
		fatal(err)
	}
	zap.ReplaceGlobals(logger)
	atexit.Register(func() { _ = logger.Sync() })

	/* compiler options */
	copts := []ssaopt.Option{
		ssaopt.WithRounds(o.Rounds),
		ssaopt.WithMemorySlots(o.MemorySlots),
	}
	if o.Stats {
		copts = append(copts, ssaopt.WithStats(os.Stderr))
	}

	/* compile and print */
	if err = ssaopt.CompileFile(flag.Arg(0), os.Stdout, copts...); err != nil {
		zap.L().Error("compilation failed", zap.String("input", flag.Arg(0)), zap.Error(err))
		fatal(err)
	}
	atexit.Exit(0)
}
