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

// Peephole removes redundant moves.
type Peephole struct{}

// r3 = op(r1, r2) ; V_r3 = move(r3) --> V_r3 = op(r1, r2), if r3 has only one use
//
// The consumers of the move are redirected to the producer, which takes over
// the use-set of the move. Producers that write a named destination are left
// alone, their result is externally visible.
func (Peephole) rename(p *ir.Program) {
    p.ForEach(func(id ir.InstId) {
        var dst string
        var uses []ir.InstId
        var user = ir.Nil

        /* temporaries with a single use */
        p.View(id, func(ins *ir.Inst) {
            if ins.IsTemp() && len(ins.Uses) == 1 {
                user = ins.Uses[0]
            }
        })

        /* the only use must be a live move */
        if user == ir.Nil || !p.Live(user) {
            return
        }

        /* load the move */
        p.View(user, func(mov *ir.Inst) {
            if mov.Op == ir.OpMove && len(mov.Args) == 1 && mov.Args[0] == ir.Ref(id) {
                dst = mov.Dst
                uses = append(uses, mov.Uses...)
            }
        })

        /* not a move */
        if dst == "" {
            return
        }

        /* remove the move, and forward it's consumers to the producer */
        p.Unlink(user)
        uses = redirect(p, uses, user, ir.Ref(id))

        /* the producer takes over the destination */
        p.Update(id, func(ins *ir.Inst) {
            zap.L().Debug("move renaming", zap.String("from", ins.Dst), zap.String("to", dst))
            ins.Dst = dst
            ins.Uses = uses
        })
    })
}

// T_r2 = move(r1) --> replace all uses of T_r2 with r1
func (Peephole) forward(p *ir.Program) {
    p.ForEach(func(id ir.InstId) {
        var ok bool
        var src ir.Value
        var uses []ir.InstId

        /* moves into temporaries */
        p.View(id, func(ins *ir.Inst) {
            if ok = ins.Op == ir.OpMove && ins.IsTemp() && len(ins.Args) == 1; ok {
                src = ins.Args[0]
                uses = append(uses, ins.Uses...)
            }
        })

        /* not a move */
        if !ok {
            return
        }

        /* replace every use with the source operand */
        uses = redirect(p, uses, id, src)
        zap.L().Debug("move forwarding", zap.String("dst", p.Dst(id)), zap.Stringer("src", src))

        /* the source producer now feeds the consumers directly */
        if src.IsInst() {
            p.Update(src.Ref, func(def *ir.Inst) { def.Uses = usesreplace(def.Uses, id, uses...) })
        }

        /* the move is no longer needed */
        p.Unlink(id)
    })
}

func (self Peephole) Apply(p *ir.Program) {
    self.rename(p)
    self.forward(p)
}
