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

    `github.com/golang/mock/gomock`
    . `github.com/onsi/ginkgo/v2`
    . `github.com/onsi/gomega`
    `github.com/snava/ssaopt/internal/ir`
    `github.com/snava/ssaopt/internal/opts`
)

var _ = Describe("Driver", func() {
    var (
        mockCtrl *gomock.Controller
        first    *MockPass
        second   *MockPass
        driver   *Driver
        prog     *ir.Program
    )

    BeforeEach(func() {
        mockCtrl = gomock.NewController(GinkgoT())
        first = NewMockPass(mockCtrl)
        second = NewMockPass(mockCtrl)
        prog = ir.NewProgram()
        driver = &Driver {
            Rounds: 3,
            Passes: []PassDescriptor {
                { Name: "first" , Pass: first },
                { Name: "second", Pass: second },
            },
        }
    })

    AfterEach(func() {
        mockCtrl.Finish()
    })

    It("should run every pass once per round, in order", func() {
        var calls []*gomock.Call
        for i := 0; i < 3; i++ {
            calls = append(calls, first.EXPECT().Apply(prog), second.EXPECT().Apply(prog))
        }
        gomock.InOrder(calls...)
        driver.Optimize(prog)
    })

    It("should run rounds that change nothing", func() {
        driver.Rounds = 5
        first.EXPECT().Apply(prog).Times(5)
        second.EXPECT().Apply(prog).Times(5)
        driver.Optimize(prog)
    })

    It("should record statistics per run", func() {
        driver.Stats = new(Stats)
        first.EXPECT().Apply(prog).Times(6)
        second.EXPECT().Apply(prog).Times(6).Do(func(p *ir.Program) {
            p.Append(ir.NewInst("V_x", ir.OpMove, ir.Name("y")))
        })

        /* two separate optimization runs */
        driver.Optimize(prog)
        driver.Optimize(prog)

        Expect(driver.Stats.Rows).To(HaveLen(12))
        Expect(driver.Stats.Rows[0]).To(Equal(StatsRow { Phase: "optimize #1", Round: 1, Pass: "first", Insts: 0 }))
        Expect(driver.Stats.Rows[1]).To(Equal(StatsRow { Phase: "optimize #1", Round: 1, Pass: "second", Insts: 1 }))
        Expect(driver.Stats.Rows[11]).To(Equal(StatsRow { Phase: "optimize #2", Round: 3, Pass: "second", Insts: 6 }))

        var buf strings.Builder
        Expect(driver.Stats.Render(&buf)).To(Succeed())
        Expect(buf.String()).To(ContainSubstring("optimize #2"))
    })

    It("should not touch the passes when lowering", func() {
        driver.Stats = new(Stats)
        prog.Append(ir.NewInst("V_x", ir.OpMulF, ir.Name("y"), ir.Lit(ir.Float(0.5))))
        Expect(driver.Lower(prog)).To(Succeed())
        Expect(prog.String()).To(Equal("T_f_0_5 = lu_imm(129024)\nV_x = mul_f(y, T_f_0_5)\n"))
        Expect(driver.Stats.Rows).To(Equal([]StatsRow {{ Phase: "lower", Round: 1, Pass: "Immediate Lowering", Insts: 2 }}))
    })
})

var _ = Describe("Pipeline", func() {
    var driver *Driver

    compile := func(src string) (string, error) {
        p, err := ir.Parse(strings.NewReader(src))
        Expect(err).NotTo(HaveOccurred())
        if err = driver.Compile(p); err != nil {
            return "", err
        } else {
            return p.String(), nil
        }
    }

    BeforeEach(func() {
        driver = NewDriver(opts.GetDefaultOptions())
    })

    It("should use the default pass table", func() {
        var names []string
        for _, d := range driver.Passes {
            names = append(names, d.Name)
        }
        Expect(names).To(Equal([]string {
            "Use-Def Analysis",
            "Multiply-Add Fusion",
            "Algebraic Simplification",
            "Dead Code Elimination",
            "Peephole Reduction",
            "Common Sub-expression Elimination",
            "Literal Lifting",
        }))
        Expect(driver.Passes[6].Pass).To(Equal(&Lift { Slots: opts.MemorySlots }))
        Expect(driver.Rounds).To(Equal(opts.Rounds))
        Expect(driver.Stats).To(BeNil())
    })

    It("should fuse a multiplication into its only consumer", func() {
        Expect(compile("T_0 = mul_f(a, b)\nV_out = add_f(T_0, c)\n")).To(Equal("V_out = muladd_f(a, b, c)\n"))
    })

    It("should forward the operand of a multiplication by one", func() {
        Expect(compile("T_0 = mul_f(1.0, x)\nV_out = mul_f(T_0, y)\n")).To(Equal("V_out = mul_f(x, y)\n"))
    })

    It("should merge duplicated temporaries", func() {
        Expect(compile("T_0 = add_f(a, b)\n" +
            "T_1 = add_f(a, b)\n" +
            "V_2 = mul_f(T_1, c)\n" +
            "V_3 = sub_f(d, T_0)\n",
        )).To(Equal("T_0 = add_f(a, b)\n" +
            "V_2 = mul_f(T_0, c)\n" +
            "V_3 = sub_f(d, T_0)\n",
        ))
    })

    It("should lift literals into free slots", func() {
        Expect(compile("T_0 = mul_f(V_v, 0.5)\nV_v = add_f(T_0, I_in)\nV_c = move(8192)\n")).To(Equal(
            "V_v = muladd_f(V_v, C_f_0_5, I_in)\nV_c = move(C_i_8192)\n",
        ))
    })

    It("should lower literals when no slot is free", func() {
        driver = NewDriver(opts.Options { Rounds: 5 })
        Expect(compile("T_0 = mul_f(V_v, 0.5)\nV_v = add_f(T_0, I_in)\nV_c = move(8192)\n")).To(Equal(
            "T_f_0_5 = lu_imm(129024)\nV_v = muladd_f(V_v, T_f_0_5, I_in)\nV_c = lu_imm(1)\n",
        ))
    })

    It("should fail on literals without an immediate form", func() {
        var ue ir.UnsupportedError
        _, err := compile("V_o = add_i(x, 5)\n")
        Expect(err).To(BeAssignableToTypeOf(ue))
        Expect(err.(ir.UnsupportedError).Op).To(Equal("add_i"))
    })
})
