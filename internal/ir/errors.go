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

// SyntaxError occures when an input line cannot be parsed.
type SyntaxError struct {
    Line   int
    Src    string
    Reason string
}

func (self SyntaxError) Error() string {
    return fmt.Sprintf("Syntax error at line %d: %s: %q", self.Line, self.Reason, self.Src)
}

// UnsupportedError occures when lowering meets an operand that the target
// cannot encode.
type UnsupportedError struct {
    Op     string
    Reason string
}

func (self UnsupportedError) Error() string {
    return fmt.Sprintf("Unsupported program (%s): %s", self.Op, self.Reason)
}

// InternalError signals a defect in one of the passes.
type InternalError struct {
    Reason string
}

func (self InternalError) Error() string {
    return "Internal error: " + self.Reason
}

// AliasingError is raised as a panic when an instruction is accessed while
// an incompatible access to it is still in progress.
type AliasingError struct {
    Id   InstId
    Want string
    Held string
}

func (self AliasingError) Error() string {
    return fmt.Sprintf("Aliasing violation on %s: %s requested while %s is held", self.Id, self.Want, self.Held)
}

func ESyntax(line int, src string, reason string) SyntaxError {
    return SyntaxError {
        Line   : line,
        Src    : src,
        Reason : reason,
    }
}

func EUnsupported(op string, reason string) UnsupportedError {
    return UnsupportedError {
        Op     : op,
        Reason : reason,
    }
}
