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
    `github.com/oleiade/lane`
    `github.com/snava/ssaopt/internal/ir`
    `go.uber.org/zap`
)

const (
    ConstPrefix = "C_"
)

// Lift moves the literals that are most expensive to materialize into named
// constants, as long as there are free named-value slots left.
type Lift struct {
    Slots int
}

// cost returns the number of instructions needed to build the literal from
// immediates, or 0 if it fits the low immediate field.
func cost(v ir.Literal) int {
    switch {
        case v.Kind == ir.LitFloat && v.Lo() == 0 : return 1
        case v.Kind == ir.LitFloat                : return 2
        case v.Bits &^ ir.ImmMask != 0            : return 2
        default                                   : return 0
    }
}

// ConstName returns the name of the constant that holds a lifted literal.
func ConstName(v ir.Literal) string {
    if v.Kind == ir.LitFloat {
        return ConstPrefix + "f_" + v.Mangle()
    } else {
        return ConstPrefix + "i_" + v.Mangle()
    }
}

func (Lift) names(p *ir.Program) map[string]struct{} {
    ret := make(map[string]struct{})
    p.ForEach(func(id ir.InstId) {
        p.View(id, func(ins *ir.Inst) {
            if !ins.IsTemp() {
                ret[ins.Dst] = struct{}{}
            }

            /* every named operand takes a slot */
            for _, v := range ins.Args {
                if v.IsName() {
                    ret[v.Name] = struct{}{}
                }
            }
        })
    })
    return ret
}

func (Lift) literals(p *ir.Program) (ret []ir.Literal) {
    seen := make(map[ir.Literal]struct{})
    p.ForEach(func(id ir.InstId) {
        p.View(id, func(ins *ir.Inst) {
            for _, v := range ins.Args {
                if _, ok := seen[v.Lit]; v.IsLiteral() && !ok && cost(v.Lit) != 0 {
                    seen[v.Lit] = struct{}{}
                    ret = append(ret, v.Lit)
                }
            }
        })
    })
    return
}

func (self Lift) Apply(p *ir.Program) {
    n := self.Slots - len(self.names(p))
    if n <= 0 {
        return
    }

    /* candidates in order of first occurance */
    lits := self.literals(p)
    pq := lane.NewPQueue(lane.MAXPQ)

    /* most expensive first, ties go to the earliest one */
    for i, v := range lits {
        pq.Push(v, cost(v) * len(lits) + len(lits) - i)
    }

    /* pick as many as the slots allow */
    sel := make(map[ir.Literal]ir.Value, n)
    for len(sel) < n && pq.Size() > 0 {
        v, _ := pq.Pop()
        lit := v.(ir.Literal)
        sel[lit] = ir.Name(ConstName(lit))
        zap.L().Debug("literal lifted to memory", zap.Stringer("literal", lit), zap.Int("cost", cost(lit)))
    }

    /* nothing to lift */
    if len(sel) == 0 {
        return
    }

    /* replace every occurance */
    p.ForEach(func(id ir.InstId) {
        p.Update(id, func(ins *ir.Inst) {
            for i, v := range ins.Args {
                if r, ok := sel[v.Lit]; ok && v.IsLiteral() {
                    ins.Args[i] = r
                }
            }
        })
    })
}
