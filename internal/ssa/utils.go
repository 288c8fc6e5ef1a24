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
)

// usesreplace removes every occurrence of old from uses and appends with.
func usesreplace(uses []ir.InstId, old ir.InstId, with ...ir.InstId) []ir.InstId {
    ret := uses[:0]
    for _, u := range uses {
        if u != old {
            ret = append(ret, u)
        }
    }
    return append(ret, with...)
}

// redirect rewrites the references to old in every live consumer to v, and
// returns the consumers, once per operand rewritten.
func redirect(p *ir.Program, users []ir.InstId, old ir.InstId, v ir.Value) (ret []ir.InstId) {
    n := 0
    seen := make(map[ir.InstId]struct{}, len(users))

    /* a consumer may appear more than once in a use-set */
    for _, u := range users {
        if _, ok := seen[u]; ok || !p.Live(u) {
            continue
        }

        /* replace all the references */
        seen[u] = struct{}{}
        p.Update(u, func(ins *ir.Inst) { n = ins.Replace(ir.Ref(old), v) })

        /* record the new uses */
        for i := 0; i < n; i++ {
            ret = append(ret, u)
        }
    }
    return
}
