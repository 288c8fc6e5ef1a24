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
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ConfigError occures when a configuration value is out of range.
type ConfigError struct {
	Key    string
	Reason string
}

func (self ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", self.Key, self.Reason)
}

// LoadFile overrides o with the values found in the TOML file at path.
// Keys missing from the file keep their current value, unknown keys are
// rejected.
func LoadFile(path string, o *Options) error {
	fp, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	/* strict decoding */
	defer fp.Close()
	dec := toml.NewDecoder(fp).DisallowUnknownFields()

	/* decode over the current values */
	if err = dec.Decode(o); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return fmt.Errorf("config %s: %s", path, sme.String())
		}
		return fmt.Errorf("config %s: %w", path, err)
	}

	/* check the ranges */
	return o.Validate()
}
