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

package ssa

import (
    `github.com/snava/ssaopt/internal/ir`
    `go.uber.org/zap`
)

// DCE removes temporaries that have no consumers. It makes a single pass
// over the current use-sets and does not cascade: producers that lose their
// last consumer are picked up after the next analysis.
type DCE struct{}

func (DCE) Apply(p *ir.Program) {
    p.ForEach(func(id ir.InstId) {
        var dead bool
        var name string

        /* unused temporary */
        p.View(id, func(ins *ir.Inst) {
            name = ins.Dst
            dead = ins.IsTemp() && len(ins.Uses) == 0
        })

        /* remove from the program */
        if dead {
            p.Unlink(id)
            zap.L().Debug("dead code", zap.String("dst", name))
        }
    })
}
