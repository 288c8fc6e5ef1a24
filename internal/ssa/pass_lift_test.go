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
    `testing`

    `github.com/snava/ssaopt/internal/ir`
    `github.com/stretchr/testify/require`
)

// withNames prepends moves that keep n distinct names alive.
func withNames(n int, src string) string {
    var buf strings.Builder
    for i := 0; i < n / 2; i++ {
        fmt.Fprintf(&buf, "V_%d = move(N_%d)\n", i, i)
    }
    if n % 2 != 0 {
        buf.WriteString("V_odd = move(0)\n")
    }
    return buf.String() + src
}

func TestLift_Cost(t *testing.T) {
    require.Equal(t, 1, cost(ir.Float(2.0)))
    require.Equal(t, 2, cost(ir.Float(0.1)))
    require.Equal(t, 2, cost(ir.Int(100000)))
    require.Equal(t, 2, cost(ir.Int(8192)))
    require.Equal(t, 0, cost(ir.Int(8191)))
    require.Equal(t, 0, cost(ir.Int(0)))
}

func TestLift_ConstName(t *testing.T) {
    require.Equal(t, "C_f_0_1", ConstName(ir.Float(0.1)))
    require.Equal(t, "C_f_m2_0", ConstName(ir.Float(-2)))
    require.Equal(t, "C_i_100000", ConstName(ir.Int(100000)))
}

func TestLift_Budget(t *testing.T) {
    src := "T_0 = move(2.0)\n" +
        "T_1 = mul_f(T_0, 0.1)\n" +
        "T_2 = add_f(T_1, 0.3)\n" +
        "T_3 = add_f(T_2, 5)\n" +
        "T_4 = sub_f(T_3, 0.1)\n"
    p := parse(t, withNames(30, src))
    new(Lift).Apply(p)
    Lift { Slots: 32 }.Apply(p)
    requireProgram(t, p, withNames(30, "T_0 = move(2.0)\n" +
        "T_1 = mul_f(T_0, C_f_0_1)\n" +
        "T_2 = add_f(T_1, C_f_0_3)\n" +
        "T_3 = add_f(T_2, 5)\n" +
        "T_4 = sub_f(T_3, C_f_0_1)\n",
    ))

    /* every slot is taken now */
    before := p.String()
    Lift { Slots: 32 }.Apply(p)
    requireProgram(t, p, before)
}

func TestLift_TieBreak(t *testing.T) {
    p := parse(t, withNames(31, "T_0 = mul_f(x, 0.3)\nT_1 = mul_f(T_0, 0.1)\n"))
    Lift { Slots: 33 }.Apply(p)
    requireProgram(t, p, withNames(31, "T_0 = mul_f(x, C_f_0_3)\nT_1 = mul_f(T_0, 0.1)\n"))
}

func TestLift_CheapFirst(t *testing.T) {
    p := parse(t, "V_0 = gt_i(x, 100000)\nV_1 = mul_f(x, 2.0)\nV_2 = sub_i(x, 7)\n")
    Lift { Slots: 32 }.Apply(p)
    requireProgram(t, p, "V_0 = gt_i(x, C_i_100000)\nV_1 = mul_f(x, C_f_2_0)\nV_2 = sub_i(x, 7)\n")
}

func TestLift_NoSlots(t *testing.T) {
    src := "V_0 = mul_f(x, 0.1)\n"
    p := parse(t, src)
    Lift { Slots: 0 }.Apply(p)
    requireProgram(t, p, src)
}
