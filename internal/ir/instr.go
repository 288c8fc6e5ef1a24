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

package ir

import (
    `fmt`
    `strings`
)

// TempPrefix marks a destination as a compiler temporary. Temporaries are
// referenced by instruction identity, everything else by name.
const TempPrefix = "T_"

const (
    OpMove    = "move"
    OpAddF    = "add_f"
    OpSubF    = "sub_f"
    OpMulF    = "mul_f"
    OpDivF    = "div_f"
    OpMulAddF = "muladd_f"
    OpMulSubF = "mulsub_f"
    OpGtI     = "gt_i"
    OpSubI    = "sub_i"
    OpLUImm   = "lu_imm"
    OpOrIImm  = "or_i_imm"
)

// ImmSuffix is appended to an opcode to select its immediate-operand form.
const ImmSuffix = "_imm"

func IsTemp(name string) bool {
    return strings.HasPrefix(name, TempPrefix)
}

// InstId is the stable identity of an instruction inside a Program.
// It is assigned once and never reused.
type InstId int

// Nil is the absent instruction.
const Nil InstId = -1

func (self InstId) String() string {
    if self == Nil {
        return "%nil"
    } else {
        return fmt.Sprintf("%%%d", int(self))
    }
}

type Inst struct {
    Dst  string
    Op   string
    Args []Value
    Uses []InstId
    prev InstId
    next InstId
}

func NewInst(dst string, op string, args ...Value) *Inst {
    return &Inst {
        Dst  : dst,
        Op   : op,
        Args : args,
        prev : Nil,
        next : Nil,
    }
}

func (self *Inst) Prev() InstId { return self.prev }
func (self *Inst) Next() InstId { return self.next }

func (self *Inst) IsTemp() bool {
    return IsTemp(self.Dst)
}

// Replace substitutes every operand equal to old with v, and returns the
// number of operands replaced.
func (self *Inst) Replace(old Value, v Value) (n int) {
    for i, a := range self.Args {
        if a == old {
            n++
            self.Args[i] = v
        }
    }
    return
}

func (self *Inst) String() string {
    args := make([]string, 0, len(self.Args))
    for _, v := range self.Args { args = append(args, v.String()) }
    return fmt.Sprintf("%s = %s(%s)", self.Dst, self.Op, strings.Join(args, ", "))
}
