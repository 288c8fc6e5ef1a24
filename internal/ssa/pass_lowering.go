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
    `fmt`
    `strings`

    `github.com/snava/ssaopt/internal/ir`
    `go.uber.org/zap`
)

// opcodes that have an immediate-operand form
var _ImmOps = map[string]bool {
    ir.OpGtI  : true,
    ir.OpSubI : true,
}

// Lowering replaces literal operands with target-native immediates.
//
// A float is materialized once, at the beginning of the program:
//
//     T_f_hi = lu_imm(hi) ; T_f = or_i_imm(T_f_hi, lo)
//
// where hi is the literal above bit 13 and lo the low 13 bits. The second
// instruction is omitted when lo is zero.
type Lowering struct {
    floats map[ir.Literal]ir.InstId
}

func (self *Lowering) float(p *ir.Program, v ir.Literal) ir.InstId {
    if r, ok := self.floats[v]; ok {
        return r
    }

    /* split the bit pattern */
    var r ir.InstId
    hi := ir.Lit(ir.Int(int32(v.Hi())))
    lo := ir.Lit(ir.Int(int32(v.Lo())))

    /* build the value, instructions are prepended so they precede every use */
    if v.Lo() == 0 {
        r = p.Prepend(ir.NewInst(ir.TempPrefix + "f_" + v.Mangle(), ir.OpLUImm, hi))
    } else {
        r = p.Prepend(ir.NewInst(ir.TempPrefix + "f_" + v.Mangle(), ir.OpOrIImm, lo))
        h := p.Prepend(ir.NewInst(ir.TempPrefix + "f_hi_" + v.Mangle(), ir.OpLUImm, hi))
        p.Update(r, func(ins *ir.Inst) { ins.Args = []ir.Value { ir.Ref(h), lo } })
    }

    /* cache by bit pattern */
    self.floats[v] = r
    zap.L().Debug("float literal lowered", zap.Stringer("literal", v))
    return r
}

func (self *Lowering) integer(ins *ir.Inst, v ir.Literal) error {
    switch {
        case ins.Op == ir.OpMove                     : break
        case strings.HasSuffix(ins.Op, ir.ImmSuffix) : return nil
        case _ImmOps[ins.Op]                         : ins.Op += ir.ImmSuffix; return nil
        default                                      : return ir.EUnsupported(ins.Op, fmt.Sprintf("no immediate form for integer %s", v))
    }

    /* only the high field can be encoded in place */
    if v.Lo() != 0 {
        return ir.EUnsupported(ins.Op, fmt.Sprintf("integer %s has a non-zero low field", v))
    }

    /* the high field alone */
    ins.Op = ir.OpLUImm
    ins.Args = []ir.Value { ir.Lit(ir.Int(int32(v.Hi()))) }
    return nil
}

func (self *Lowering) instr(p *ir.Program, id ir.InstId) (err error) {
    for i := 0; err == nil; i++ {
        var ok bool
        var v ir.Value

        /* load the next operand, the list may shrink while lowering */
        p.View(id, func(ins *ir.Inst) {
            if ok = i < len(ins.Args); ok {
                v = ins.Args[i]
            }
        })

        /* all operands are lowered */
        if !ok {
            break
        }

        /* lower the literals */
        if v.IsLiteral() {
            if v.Lit.Kind == ir.LitFloat {
                r := self.float(p, v.Lit)
                p.Update(id, func(ins *ir.Inst) { ins.Args[i] = ir.Ref(r) })
            } else {
                p.Update(id, func(ins *ir.Inst) { err = self.integer(ins, v.Lit) })
            }
        }
    }
    return
}

func (self *Lowering) Lower(p *ir.Program) error {
    self.floats = make(map[ir.Literal]ir.InstId)

    /* instructions inserted at the head are not visited */
    for id := p.Head(); id != ir.Nil; id = p.Next(id) {
        if err := self.instr(p, id); err != nil {
            return err
        }
    }
    return nil
}

// Lower lowers every literal that survived lifting into immediates.
func Lower(p *ir.Program) error {
    return new(Lowering).Lower(p)
}
