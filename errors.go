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

package ssaopt

import (
	"github.com/snava/ssaopt/internal/ir"
)

// SyntaxError occures when a line of the input program is malformed.
type SyntaxError = ir.SyntaxError

// UnsupportedError occures when the program uses an operand that the target
// cannot encode as an immediate.
type UnsupportedError = ir.UnsupportedError

// InternalError signals a defect in one of the optimization passes.
type InternalError = ir.InternalError
