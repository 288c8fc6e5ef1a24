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
    `testing`

    `github.com/snava/ssaopt/internal/ir`
    `github.com/stretchr/testify/require`
)

func TestFusion_Rules(t *testing.T) {
    tests := []struct {
        name string
        src  string
        want string
    } {{
        name: "add, product first",
        src : "T_0 = mul_f(a, b)\nT_1 = add_f(T_0, c)\n",
        want: "T_1 = muladd_f(a, b, c)\n",
    }, {
        name: "add, product second",
        src : "T_0 = mul_f(a, b)\nT_1 = add_f(c, T_0)\n",
        want: "T_1 = muladd_f(a, b, c)\n",
    }, {
        name: "sub, product as minuend",
        src : "T_0 = mul_f(a, b)\nV_1 = sub_f(T_0, c)\n",
        want: "V_1 = mulsub_f(a, b, c)\n",
    }, {
        name: "sub, product as subtrahend",
        src : "T_0 = mul_f(a, b)\nV_1 = sub_f(c, T_0)\n",
        want: "T_0 = mul_f(a, b)\nV_1 = sub_f(c, T_0)\n",
    }, {
        name: "multiple uses",
        src : "T_0 = mul_f(a, b)\nV_1 = add_f(T_0, c)\nV_2 = add_f(T_0, d)\n",
        want: "T_0 = mul_f(a, b)\nV_1 = add_f(T_0, c)\nV_2 = add_f(T_0, d)\n",
    }, {
        name: "squared product",
        src : "T_0 = mul_f(a, b)\nV_1 = add_f(T_0, T_0)\n",
        want: "T_0 = mul_f(a, b)\nV_1 = add_f(T_0, T_0)\n",
    }, {
        name: "other consumer",
        src : "T_0 = mul_f(a, b)\nV_1 = div_f(T_0, c)\n",
        want: "T_0 = mul_f(a, b)\nV_1 = div_f(T_0, c)\n",
    }, {
        name: "named product",
        src : "V_0 = mul_f(a, b)\nV_1 = add_f(V_0, c)\n",
        want: "V_0 = mul_f(a, b)\nV_1 = add_f(V_0, c)\n",
    }}
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            p := parse(t, tc.src)
            apply(p, new(Analysis), new(Fusion))
            requireProgram(t, p, tc.want)
        })
    }
}

func TestFusion_InheritUses(t *testing.T) {
    p := parse(t, "T_a = add_f(x, y)\n" +
        "T_0 = mul_f(T_a, T_a)\n" +
        "T_1 = add_f(T_0, c)\n",
    )
    apply(p, new(Analysis), new(Fusion))
    requireProgram(t, p, "T_a = add_f(x, y)\nT_1 = muladd_f(T_a, T_a, c)\n")
    uses := p.Uses(0)
    require.Equal(t, []ir.InstId { 2, 2 }, uses)

    /* patched use-sets agree with a fresh analysis */
    p.Analyze()
    require.Equal(t, uses, p.Uses(0))
}

func TestFusion_StaleUses(t *testing.T) {
    p := parse(t, "T_0 = mul_f(a, b)\nT_1 = add_f(T_0, c)\n")
    p.Analyze()
    p.Unlink(1)
    new(Fusion).Apply(p)
    requireProgram(t, p, "T_0 = mul_f(a, b)\n")
}
