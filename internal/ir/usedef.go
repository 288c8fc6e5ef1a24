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

// Analyze recomputes the use-set of every live instruction. Consumers are
// recorded in program order, once per referencing operand.
func (self *Program) Analyze() {
    self.ForEach(func(id InstId) {
        self.Update(id, func(ins *Inst) { ins.Uses = nil })
    })

    /* record every reference to a producing instruction */
    self.ForEach(func(id InstId) {
        for _, v := range self.Args(id) {
            if v.IsInst() {
                self.Update(v.Ref, func(def *Inst) { def.Uses = append(def.Uses, id) })
            }
        }
    })
}
