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

var _One = ir.Lit(ir.Float(1.0))

// Algebra rewrites trivial floating-point identities. Literals are matched
// by bit pattern, never by approximate comparison.
type Algebra struct{}

// mul_f(1.0, x) --> move(x)
func (Algebra) unitmul(ins *ir.Inst) {
    if ins.Op == ir.OpMulF && len(ins.Args) == 2 && ins.Args[0] == _One {
        ins.Op = ir.OpMove
        ins.Args = []ir.Value { ins.Args[1] }
        zap.L().Debug("multiplication by one", zap.String("dst", ins.Dst))
    }
}

// muladd_f(a, 1.0, b) --> add_f(a, b)
func (Algebra) unitmuladd(ins *ir.Inst) {
    if ins.Op == ir.OpMulAddF && len(ins.Args) == 3 && ins.Args[1] == _One {
        ins.Op = ir.OpAddF
        ins.Args = []ir.Value { ins.Args[0], ins.Args[2] }
        zap.L().Debug("multiply-add by one", zap.String("dst", ins.Dst))
    }
}

// div_f(x, k) --> mul_f(x, 1/k)
func (Algebra) divconst(ins *ir.Inst) {
    if ins.Op != ir.OpDivF || len(ins.Args) != 2 {
        return
    }

    /* only literal float divisors can be inverted */
    if k := ins.Args[1]; k.IsLiteral() && k.Lit.Kind == ir.LitFloat {
        ins.Op = ir.OpMulF
        ins.Args[1] = ir.Lit(ir.Float(1 / k.Lit.Float()))
        zap.L().Debug("division by constant", zap.String("dst", ins.Dst), zap.Stringer("divisor", k.Lit))
    }
}

func (self Algebra) Apply(p *ir.Program) {
    for _, rule := range []func(*ir.Inst) { self.unitmul, self.unitmuladd, self.divconst } {
        p.ForEach(func(id ir.InstId) { p.Update(id, rule) })
    }
}
