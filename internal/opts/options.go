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

package opts

import (
	"io"
)

type Options struct {
	Rounds      int       `toml:"rounds"`
	MemorySlots int       `toml:"memory_slots"`
	Stats       bool      `toml:"stats"`
	LogLevel    string    `toml:"log_level"`
	StatsWriter io.Writer `toml:"-"`
}

func (self *Options) Validate() error {
	if self.Rounds < 1 {
		return ConfigError{Key: "rounds", Reason: "must be at least 1"}
	} else if self.MemorySlots < 0 {
		return ConfigError{Key: "memory_slots", Reason: "must not be negative"}
	} else {
		return nil
	}
}

func GetDefaultOptions() Options {
	return Options{
		Rounds:      Rounds,
		MemorySlots: MemorySlots,
		LogLevel:    _DefaultLogLevel,
	}
}
