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
    `bufio`
    `fmt`
    `io`
    `os`
    `strconv`
    `strings`

    `go.uber.org/zap`
)

const (
    _MaxLineSize = 1 << 20
)

type _Parser struct {
    p    *Program
    src  string
    line int
}

// Parse reads a program, one `dst = op(arg, ...)` instruction per line.
func Parse(r io.Reader) (*Program, error) {
    sc := bufio.NewScanner(r)
    ps := &_Parser { p: NewProgram() }
    sc.Buffer(make([]byte, 0, 4096), _MaxLineSize)

    /* parse line by line */
    for sc.Scan() {
        ps.line++
        ps.src = sc.Text()

        /* every line is exactly one instruction */
        if err := ps.parse(); err != nil {
            return nil, err
        }
    }

    /* check for read errors */
    if err := sc.Err(); err != nil {
        return nil, fmt.Errorf("read program: %w", err)
    } else {
        return ps.p, nil
    }
}

// ParseFile parses the program stored in the file at path.
func ParseFile(path string) (*Program, error) {
    fp, err := os.Open(path)
    if err != nil {
        return nil, fmt.Errorf("open program: %w", err)
    }

    /* parse the file content */
    defer fp.Close()
    return Parse(fp)
}

func (self *_Parser) error(reason string) error {
    return ESyntax(self.line, self.src, reason)
}

func (self *_Parser) parse() error {
    lr := strings.Split(self.src, "=")
    if len(lr) != 2 {
        return self.error("expected exactly one '='")
    }

    /* split the opcode and the operand list */
    dst := strings.TrimSpace(lr[0])
    rhs := strings.TrimSpace(lr[1])
    call := strings.Split(rhs, "(")

    /* check the parenthesis structure */
    if len(call) != 2 || strings.Count(call[1], ")") != 1 || !strings.HasSuffix(call[1], ")") {
        return self.error("malformed operand list")
    }

    /* destination and opcode are both identifiers */
    op := strings.TrimSpace(call[0])
    if !isident(dst) {
        return self.error("invalid destination")
    } else if !isident(op) {
        return self.error("invalid opcode")
    }

    /* parse every operand */
    toks := strings.Split(strings.TrimSuffix(call[1], ")"), ",")
    args := make([]Value, 0, len(toks))

    /* operands are resolved before the destination is bound */
    for _, tok := range toks {
        if v, err := self.operand(strings.TrimSpace(tok)); err != nil {
            return err
        } else {
            args = append(args, v)
        }
    }

    /* add to the program */
    id := self.p.Append(NewInst(dst, op, args...))
    if !IsTemp(dst) {
        return nil
    }

    /* later references resolve to the most recent definition */
    if old, ok := self.p.bind(dst, id); ok {
        zap.L().Warn("temporary redefined",
            zap.String("name", dst),
            zap.Int("line", self.line),
            zap.Stringer("previous", old),
        )
    }
    return nil
}

func (self *_Parser) operand(tok string) (Value, error) {
    switch {
        case tok == ""        : return Value{}, self.error("empty operand")
        case isdigit(tok[0])  : return self.literal(tok)
        case !isident(tok)    : return Value{}, self.error(fmt.Sprintf("invalid operand %q", tok))
        case !IsTemp(tok)     : return Name(tok), nil
    }

    /* temporaries must be defined before use */
    if id, ok := self.p.Lookup(tok); !ok {
        return Value{}, self.error(fmt.Sprintf("temporary %s used before definition", tok))
    } else {
        return Ref(id), nil
    }
}

func (self *_Parser) literal(tok string) (Value, error) {
    if v, err := strconv.ParseInt(tok, 10, 32); err == nil {
        return Lit(Int(int32(v))), nil
    } else if v, err := strconv.ParseFloat(tok, 32); err == nil {
        return Lit(Float(float32(v))), nil
    } else {
        return Value{}, self.error(fmt.Sprintf("invalid literal %q", tok))
    }
}

func isdigit(c byte) bool {
    return c >= '0' && c <= '9'
}

func isident(s string) bool {
    if s == "" || isdigit(s[0]) {
        return false
    }

    /* letters, digits and underscores only */
    for i := 0; i < len(s); i++ {
        if c := s[i]; c != '_' && !isdigit(c) && (c | 0x20 < 'a' || c | 0x20 > 'z') {
            return false
        }
    }
    return true
}
