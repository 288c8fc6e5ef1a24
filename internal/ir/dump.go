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
    `bytes`
    `fmt`
    `io`
)

// Dump writes the live program in the input text format. Float literals
// must have been lowered before, the output is left untouched otherwise.
func (self *Program) Dump(w io.Writer) error {
    var err error
    var buf bytes.Buffer

    /* render into a buffer, so a failure leaves w untouched */
    self.ForEach(func(id InstId) {
        if err == nil {
            err = self.render(&buf, id, true)
        }
    })

    /* write all at once */
    if err != nil {
        return err
    } else {
        _, err = buf.WriteTo(w)
        return err
    }
}

// String renders the live program, float literals included.
func (self *Program) String() string {
    var buf bytes.Buffer
    self.ForEach(func(id InstId) { _ = self.render(&buf, id, false) })
    return buf.String()
}

func (self *Program) render(buf *bytes.Buffer, id InstId, strict bool) (err error) {
    self.View(id, func(ins *Inst) {
        fmt.Fprintf(buf, "%s = %s(", ins.Dst, ins.Op)

        /* dump every operand */
        for i, v := range ins.Args {
            if i != 0 {
                buf.WriteString(", ")
            }

            /* floats cannot be encoded in the output */
            switch {
                case v.IsInst()                      : buf.WriteString(self.Dst(v.Ref))
                case !v.IsLiteral()                  : buf.WriteString(v.Name)
                case v.Lit.Kind == LitInt || !strict : buf.WriteString(v.Lit.String())
                default                              : err = InternalError { Reason: fmt.Sprintf("float literal %s survived lowering in %s", v.Lit, ins.Dst) }
            }
        }

        /* close the operand list */
        buf.WriteString(")\n")
    })
    return
}
