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

var _FusedOps = map[string]string {
    ir.OpAddF: ir.OpMulAddF,
    ir.OpSubF: ir.OpMulSubF,
}

// Fusion merges a multiplication with its only consumer, if that consumer
// is an addition or subtraction.
//
//     v2 = mul_f(v0, v1) ; v4 = add_f(v2, v3) --> v4 = muladd_f(v0, v1, v3)
//     v2 = mul_f(v0, v1) ; v4 = add_f(v3, v2) --> v4 = muladd_f(v0, v1, v3)
//     v2 = mul_f(v0, v1) ; v4 = sub_f(v2, v3) --> v4 = mulsub_f(v0, v1, v3)
//
// The product must be the minuend of a subtraction.
type Fusion struct{}

func (Fusion) fuse(user *ir.Inst, mul ir.InstId, args []ir.Value) bool {
    op, ok := _FusedOps[user.Op]
    if !ok || len(user.Args) != 2 {
        return false
    }

    /* addition commutes, subtraction does not */
    switch ref := ir.Ref(mul); {
        case user.Args[0] == ref                         : user.Args = []ir.Value { args[0], args[1], user.Args[1] }
        case user.Args[1] == ref && user.Op == ir.OpAddF : user.Args = []ir.Value { args[0], args[1], user.Args[0] }
        default                                          : return false
    }

    /* switch to the fused opcode */
    user.Op = op
    return true
}

func (self Fusion) Apply(p *ir.Program) {
    p.ForEach(func(id ir.InstId) {
        var ok bool
        var args []ir.Value
        var user = ir.Nil

        /* single-use multiplications only */
        p.View(id, func(ins *ir.Inst) {
            if ins.Op == ir.OpMulF && len(ins.Args) == 2 && len(ins.Uses) == 1 {
                user = ins.Uses[0]
                args = append(args, ins.Args...)
            }
        })

        /* the consumer must still be in the program */
        if user == ir.Nil || !p.Live(user) {
            return
        }

        /* rewrite the consumer */
        if p.Update(user, func(ins *ir.Inst) { ok = self.fuse(ins, id, args) }); !ok {
            return
        }

        /* the consumer inherits the uses of the multiplication */
        for _, v := range args {
            if v.IsInst() {
                p.Update(v.Ref, func(def *ir.Inst) { def.Uses = usesreplace(def.Uses, id, user) })
            }
        }

        /* the multiplication is no longer needed */
        p.Unlink(id)
        zap.L().Debug("multiply-add fusion", zap.String("dst", p.Dst(user)), zap.String("op", p.Op(user)))
    })
}
