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

package ssaopt

import (
	"fmt"
	"io"

	"github.com/snava/ssaopt/internal/opts"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithRounds sets the number of optimization rounds run before and after
// lowering.
//
// Every round runs every pass once, whether the previous round changed the
// program or not. More rounds let eliminations cascade further at the cost
// of compilation time.
//
// The default value of this option is "5".
func WithRounds(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("ssaopt: invalid round count: %d", n))
	} else {
		return func(o *opts.Options) { o.Rounds = n }
	}
}

// WithMemorySlots sets the number of named values the target can address.
// Literals are lifted into named constants while free slots remain.
//
// Set this option to "0" disables literal lifting.
//
// The default value of this option is "32".
func WithMemorySlots(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("ssaopt: invalid memory slot count: %d", n))
	} else {
		return func(o *opts.Options) { o.MemorySlots = n }
	}
}

// WithStats writes a table with the instruction count after every pass to w
// once the compilation succeeds.
func WithStats(w io.Writer) Option {
	return func(o *opts.Options) {
		o.Stats = w != nil
		o.StatsWriter = w
	}
}
