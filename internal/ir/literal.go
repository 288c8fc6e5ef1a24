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
    `math`
    `strconv`
    `strings`
)

const (
    ImmShift = 13
    ImmMask  = (1 << ImmShift) - 1
)

const (
    _NaN = 0x7fc00000
)

type LiteralKind uint8

const (
    LitInt LiteralKind = iota
    LitFloat
)

// Literal is a 32-bit integer or float constant. Floats are stored by their
// raw bit pattern, so two literals are equal iff their bits are equal, which
// makes Literal usable as a map key. All NaNs share one bit pattern.
type Literal struct {
    Kind LiteralKind
    Bits uint32
}

func Int(v int32) Literal {
    return Literal {
        Kind: LitInt,
        Bits: uint32(v),
    }
}

func Float(v float32) Literal {
    if v != v {
        return Literal { Kind: LitFloat, Bits: _NaN }
    } else {
        return Literal { Kind: LitFloat, Bits: math.Float32bits(v) }
    }
}

func (self Literal) Int() int32 {
    return int32(self.Bits)
}

func (self Literal) Float() float32 {
    return math.Float32frombits(self.Bits)
}

// Hi returns the bits above the low immediate field.
func (self Literal) Hi() uint32 {
    return self.Bits >> ImmShift
}

// Lo returns the low immediate field.
func (self Literal) Lo() uint32 {
    return self.Bits & ImmMask
}

func (self Literal) String() string {
    switch self.Kind {
        case LitInt   : return strconv.FormatInt(int64(self.Int()), 10)
        case LitFloat : return formatFloat(self.Float())
        default       : panic("unreachable")
    }
}

// Mangle renders the literal as an identifier fragment, suitable for
// building synthetic operand names.
func (self Literal) Mangle() string {
    return _Mangler.Replace(self.String())
}

var _Mangler = strings.NewReplacer(
    ".", "_",
    "-", "m",
    "+", "p",
)

func formatFloat(v float32) string {
    s := strconv.FormatFloat(float64(v), 'g', -1, 32)

    /* integral values keep a fractional part, so they never read as integers */
    if !strings.ContainsAny(s, ".eIN") {
        s += ".0"
    }
    return s
}
