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
)

type ValueKind uint8

const (
    ValLiteral ValueKind = iota
    ValInst
    ValName
)

// Value is an instruction operand: a literal, the result of another
// instruction, or a named input, output, variable or constant.
type Value struct {
    Kind ValueKind
    Lit  Literal
    Ref  InstId
    Name string
}

func Lit(v Literal) Value {
    return Value { Kind: ValLiteral, Lit: v }
}

func Ref(id InstId) Value {
    return Value { Kind: ValInst, Ref: id }
}

func Name(name string) Value {
    return Value { Kind: ValName, Name: name }
}

func (self Value) IsLiteral() bool { return self.Kind == ValLiteral }
func (self Value) IsInst()    bool { return self.Kind == ValInst }
func (self Value) IsName()    bool { return self.Kind == ValName }

// VID returns a string that is equal for two values iff the values are
// structurally equal.
func (self Value) VID() string {
    switch self.Kind {
        case ValInst : return self.Ref.String()
        case ValName : return self.Name
        default      : break
    }

    /* literals are keyed by kind and raw bits */
    if self.Lit.Kind == LitFloat {
        return fmt.Sprintf("$f%08x", self.Lit.Bits)
    } else {
        return fmt.Sprintf("$i%08x", self.Lit.Bits)
    }
}

func (self Value) String() string {
    switch self.Kind {
        case ValLiteral : return self.Lit.String()
        case ValInst    : return self.Ref.String()
        case ValName    : return self.Name
        default         : panic("unreachable")
    }
}
