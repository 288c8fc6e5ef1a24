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
    `strconv`

    `github.com/snava/ssaopt/internal/ir`
    `github.com/snava/ssaopt/internal/opts`
    `go.uber.org/zap`
)

type Pass interface {
    Apply(*ir.Program)
}

type PassDescriptor struct {
    Pass Pass
    Name string
}

// Analysis recomputes the use-sets.
type Analysis struct{}

func (Analysis) Apply(p *ir.Program) {
    p.Analyze()
}

// Passes returns the passes of one optimization round, in order.
func Passes(o opts.Options) []PassDescriptor {
    return []PassDescriptor {
        { Name: "Use-Def Analysis"                  , Pass: new(Analysis) },
        { Name: "Multiply-Add Fusion"               , Pass: new(Fusion) },
        { Name: "Algebraic Simplification"          , Pass: new(Algebra) },
        { Name: "Dead Code Elimination"             , Pass: new(DCE) },
        { Name: "Peephole Reduction"                , Pass: new(Peephole) },
        { Name: "Common Sub-expression Elimination" , Pass: new(CSE) },
        { Name: "Literal Lifting"                   , Pass: &Lift { Slots: o.MemorySlots } },
    }
}

// Driver runs a fixed number of optimization rounds. The bound is not a
// fixed point: a round that changes nothing is still executed.
type Driver struct {
    Rounds int
    Passes []PassDescriptor
    Stats  *Stats
    runs   int
}

func NewDriver(o opts.Options) *Driver {
    ret := &Driver {
        Rounds: o.Rounds,
        Passes: Passes(o),
    }

    /* collect statistics if requested */
    if o.Stats {
        ret.Stats = new(Stats)
    }
    return ret
}

func (self *Driver) record(phase string, round int, pass string, p *ir.Program) {
    if self.Stats != nil {
        self.Stats.add(phase, round, pass, p.Len())
    }
}

// Optimize runs all the rounds on p.
func (self *Driver) Optimize(p *ir.Program) {
    self.runs++
    phase := "optimize #" + strconv.Itoa(self.runs)

    /* every round runs every pass */
    for i := 1; i <= self.Rounds; i++ {
        for _, d := range self.Passes {
            d.Pass.Apply(p)
            self.record(phase, i, d.Name, p)
        }
    }

    /* done */
    zap.L().Debug("optimization finished", zap.String("phase", phase), zap.Int("rounds", self.Rounds))
}

// Lower runs the immediate lowering on p.
func (self *Driver) Lower(p *ir.Program) error {
    if err := Lower(p); err != nil {
        return err
    } else {
        self.record("lower", 1, "Immediate Lowering", p)
        return nil
    }
}

// Compile runs the whole pipeline on a parsed program: analyze, optimize,
// lower, analyze and optimize again.
func (self *Driver) Compile(p *ir.Program) error {
    p.Analyze()
    self.Optimize(p)

    /* lowering may expose new redundancies */
    if err := self.Lower(p); err != nil {
        return err
    }

    /* clean them up */
    p.Analyze()
    self.Optimize(p)
    return nil
}
