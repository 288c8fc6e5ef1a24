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
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/snava/ssaopt/internal/ir"
	"github.com/snava/ssaopt/internal/opts"
	"github.com/snava/ssaopt/internal/ssa"
)

// Compile parses the program read from r, optimizes it, lowers every literal
// into immediates, optimizes it again and writes the result to w.
//
// Nothing is written to w if any step fails.
func Compile(r io.Reader, w io.Writer, options ...Option) error {
	o := opts.GetDefaultOptions()
	for _, fn := range options {
		fn(&o)
	}

	/* parse the program */
	p, err := ir.Parse(r)
	if err != nil {
		return err
	}

	/* run the pipeline */
	drv := ssa.NewDriver(o)
	if err = drv.Compile(p); err != nil {
		return err
	}

	/* render the result before touching w */
	var buf bytes.Buffer
	if err = p.Dump(&buf); err != nil {
		return err
	}

	/* pass statistics */
	if drv.Stats != nil && o.StatsWriter != nil {
		if err = drv.Stats.Render(o.StatsWriter); err != nil {
			return fmt.Errorf("write statistics: %w", err)
		}
	}

	/* write the program */
	_, err = buf.WriteTo(w)
	return err
}

// CompileFile is like Compile, but reads the program from the file at path.
func CompileFile(path string, w io.Writer, options ...Option) error {
	fp, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open program: %w", err)
	}
	defer fp.Close()
	return Compile(fp, w, options...)
}
