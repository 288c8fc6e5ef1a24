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
    `io`

    `github.com/jedib0t/go-pretty/v6/table`
)

type StatsRow struct {
    Phase string
    Round int
    Pass  string
    Insts int
}

// Stats records the number of live instructions after every pass.
type Stats struct {
    Rows []StatsRow
}

func (self *Stats) add(phase string, round int, pass string, n int) {
    self.Rows = append(self.Rows, StatsRow {
        Phase: phase,
        Round: round,
        Pass : pass,
        Insts: n,
    })
}

// Render writes the statistics as a table.
func (self *Stats) Render(w io.Writer) error {
    tab := table.NewWriter()
    tab.SetTitle("Pass Statistics")
    tab.AppendHeader(table.Row { "Phase", "Round", "Pass", "Instructions" })

    /* one row per pass run */
    for _, r := range self.Rows {
        tab.AppendRow(table.Row { r.Phase, r.Round, r.Pass, r.Insts })
    }

    /* render the table */
    _, err := io.WriteString(w, tab.Render() + "\n")
    return err
}
