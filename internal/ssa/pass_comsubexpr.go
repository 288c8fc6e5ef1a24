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
    `strings`

    `github.com/snava/ssaopt/internal/ir`
    `go.uber.org/zap`
)

func vid(ins *ir.Inst) string {
    buf := make([]string, 0, len(ins.Args) + 1)
    buf = append(buf, ins.Op)

    /* structural key of every operand */
    for _, v := range ins.Args {
        buf = append(buf, v.VID())
    }

    /* build the value ID */
    return "(" + strings.Join(buf, " ") + ")"
}

// CSE performs the Common Sub-expression Elimintation optimization. A later
// temporary that computes the same value as an earlier temporary is removed,
// and it's consumers are redirected to the earlier one. Named destinations
// are never merged.
type CSE struct{}

func (CSE) Apply(p *ir.Program) {
    vals := make(map[string]ir.InstId)
    refs := make(map[string][]string)

    /* scan in program order */
    p.ForEach(func(id ir.InstId) {
        var key string
        var dst string
        var uses []ir.InstId

        /* calculate the VID */
        p.View(id, func(ins *ir.Inst) {
            key = vid(ins)
            dst = ins.Dst
            uses = append(uses, ins.Uses...)

            /* remember which names this value reads */
            for _, v := range ins.Args {
                if v.IsName() {
                    refs[v.Name] = append(refs[v.Name], key)
                }
            }
        })

        /* writing a name invalidates every value computed from it */
        if !ir.IsTemp(dst) {
            for _, k := range refs[dst] { delete(vals, k) }
            delete(refs, dst)
        }

        /* first occurance */
        prev, ok := vals[key]
        if !ok || !p.Live(prev) {
            vals[key] = id
            return
        }

        /* both sides must be temporaries */
        if !ir.IsTemp(dst) || !ir.IsTemp(p.Dst(prev)) {
            return
        }

        /* redirect the consumers to the first occurance */
        uses = redirect(p, uses, id, ir.Ref(prev))
        p.Update(prev, func(ins *ir.Inst) { ins.Uses = append(ins.Uses, uses...) })

        /* remove the duplicate */
        p.Unlink(id)
        zap.L().Debug("common sub-expression", zap.String("dst", dst), zap.String("into", p.Dst(prev)))
    })
}
