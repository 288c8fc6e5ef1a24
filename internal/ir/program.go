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

type _Slot struct {
    ins    *Inst
    live   bool
    borrow int
}

// Program is an append-only arena of instructions, threaded into a doubly
// linked list that defines the live program order.
//
// Instructions are only reachable through View and Update, which track the
// access in progress on every slot: an Update must be exclusive, and any
// access that conflicts with an Update in progress panics with an
// AliasingError. The *Inst passed to the callback must not escape it.
type Program struct {
    head  InstId
    tail  InstId
    slots []*_Slot
    temps map[string]InstId
}

func NewProgram() *Program {
    return &Program {
        head  : Nil,
        tail  : Nil,
        temps : make(map[string]InstId),
    }
}

func (self *Program) Head() InstId { return self.head }
func (self *Program) Tail() InstId { return self.tail }

func (self *Program) slot(id InstId) *_Slot {
    if id < 0 || int(id) >= len(self.slots) {
        panic(fmt.Sprintf("ir: invalid instruction %s", id))
    } else {
        return self.slots[id]
    }
}

func (self *Program) alloc(ins *Inst) InstId {
    if ins.prev != Nil || ins.next != Nil {
        panic("ir: inserting an instruction that is already linked")
    }

    /* every instruction gets a fresh slot, slots are never reused */
    id := InstId(len(self.slots))
    self.slots = append(self.slots, &_Slot { ins: ins, live: true })
    return id
}

// View calls fn with shared access to the instruction.
func (self *Program) View(id InstId, fn func(ins *Inst)) {
    s := self.slot(id)
    if s.borrow < 0 {
        panic(AliasingError { Id: id, Want: "view", Held: "update" })
    }

    /* hold the shared borrow for the duration of fn */
    s.borrow++
    defer func() { s.borrow-- }()
    fn(s.ins)
}

// Update calls fn with exclusive access to the instruction.
func (self *Program) Update(id InstId, fn func(ins *Inst)) {
    s := self.slot(id)
    switch {
        case s.borrow < 0 : panic(AliasingError { Id: id, Want: "update", Held: "update" })
        case s.borrow > 0 : panic(AliasingError { Id: id, Want: "update", Held: "view" })
    }

    /* hold the exclusive borrow for the duration of fn */
    s.borrow = -1
    defer func() { s.borrow = 0 }()
    fn(s.ins)
}

// Live reports whether the instruction is part of the program order.
func (self *Program) Live(id InstId) bool {
    return id != Nil && self.slot(id).live
}

// Append links a new instruction at the end of the program.
func (self *Program) Append(ins *Inst) InstId {
    id := self.alloc(ins)

    /* link after the current tail */
    if self.tail == Nil {
        self.head = id
    } else {
        ins.prev = self.tail
        self.Update(self.tail, func(t *Inst) { t.next = id })
    }

    /* the new instruction is the tail */
    self.tail = id
    return id
}

// Prepend links a new instruction at the beginning of the program.
func (self *Program) Prepend(ins *Inst) InstId {
    id := self.alloc(ins)

    /* link before the current head */
    if self.head == Nil {
        self.tail = id
    } else {
        ins.next = self.head
        self.Update(self.head, func(h *Inst) { h.prev = id })
    }

    /* the new instruction is the head */
    self.head = id
    return id
}

// Unlink removes the instruction from the program order. The slot is kept,
// so the identity stays valid, but it can never be linked again.
func (self *Program) Unlink(id InstId) {
    var prev InstId
    var next InstId

    /* double unlinking is a bug in the caller */
    if !self.Live(id) {
        panic(fmt.Sprintf("ir: unlinking instruction %s twice", id))
    }

    /* detach the instruction, leaving a tombstone */
    self.Update(id, func(ins *Inst) {
        prev, next = ins.prev, ins.next
        ins.prev, ins.next = Nil, Nil
    })

    /* fix the predecessor */
    if prev == Nil {
        self.head = next
    } else {
        self.Update(prev, func(p *Inst) { p.next = next })
    }

    /* fix the successor */
    if next == Nil {
        self.tail = prev
    } else {
        self.Update(next, func(n *Inst) { n.prev = prev })
    }

    /* mark as removed */
    self.slots[id].live = false
}

func (self *Program) Next(id InstId) (r InstId) {
    self.View(id, func(ins *Inst) { r = ins.next })
    return
}

func (self *Program) Op(id InstId) (r string) {
    self.View(id, func(ins *Inst) { r = ins.Op })
    return
}

func (self *Program) Dst(id InstId) (r string) {
    self.View(id, func(ins *Inst) { r = ins.Dst })
    return
}

// Args returns a copy of the operand list.
func (self *Program) Args(id InstId) (r []Value) {
    self.View(id, func(ins *Inst) { r = append([]Value(nil), ins.Args...) })
    return
}

// Uses returns a copy of the use-set.
func (self *Program) Uses(id InstId) (r []InstId) {
    self.View(id, func(ins *Inst) { r = append([]InstId(nil), ins.Uses...) })
    return
}

// ForEach calls fn for every live instruction in program order. fn may
// unlink the instruction it is called with, or any instruction after it
// as long as the visited one stays live.
func (self *Program) ForEach(fn func(id InstId)) {
    for id := self.head; id != Nil; {
        next := self.Next(id)
        fn(id)

        /* the visited instruction may have lost its successor */
        if self.Live(id) {
            next = self.Next(id)
        }

        /* move to the next one */
        id = next
    }
}

// Len returns the number of live instructions.
func (self *Program) Len() (n int) {
    self.ForEach(func(InstId) { n++ })
    return
}

// Lookup resolves a temporary name to its most recent definition.
func (self *Program) Lookup(name string) (InstId, bool) {
    id, ok := self.temps[name]
    return id, ok
}

func (self *Program) bind(name string, id InstId) (InstId, bool) {
    old, ok := self.temps[name]
    self.temps[name] = id
    return old, ok
}
