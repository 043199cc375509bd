// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package column

import "fmt"

// Columns is a named, equal-length list of Column values: the unit every
// pipeline operator (C7) consumes and produces, and the shape a Frame (C6
// evaluation context) wraps for expression evaluation (spec.md §3 "Frame").
type Columns struct {
	cols []*Column
}

// NewColumns builds a Columns batch, panicking if the columns disagree on
// row count (Invariant, spec.md §8: every column in a batch has the same
// length).
func NewColumns(cols ...*Column) *Columns {
	if len(cols) > 0 {
		n := cols[0].Len()
		for _, c := range cols[1:] {
			if c.Len() != n {
				panic(fmt.Sprintf("column: row count mismatch in batch: %q has %d rows, %q has %d", cols[0].Name, n, c.Name, c.Len()))
			}
		}
	}
	return &Columns{cols: cols}
}

// Len reports the shared row count, or 0 for a columnless batch.
func (cs *Columns) Len() int {
	if len(cs.cols) == 0 {
		return 0
	}
	return cs.cols[0].Len()
}

// Width reports the number of columns.
func (cs *Columns) Width() int { return len(cs.cols) }

// Column returns the i'th column by position.
func (cs *Columns) Column(i int) *Column { return cs.cols[i] }

// ColumnByName returns the named column and whether it was found.
func (cs *Columns) ColumnByName(name string) (*Column, bool) {
	for _, c := range cs.cols {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// All returns the underlying column slice; callers must not mutate it.
func (cs *Columns) All() []*Column { return cs.cols }

// Select returns a new Columns retaining only the named columns, in the
// given order (the Select pipeline operator, spec.md §6).
func (cs *Columns) Select(names ...string) (*Columns, error) {
	out := make([]*Column, 0, len(names))
	for _, name := range names {
		c, ok := cs.ColumnByName(name)
		if !ok {
			return nil, fmt.Errorf("column: no such column %q", name)
		}
		out = append(out, c)
	}
	return &Columns{cols: out}, nil
}

// Extend returns a new Columns with extra appended after the existing
// columns (the Extend pipeline operator, spec.md §6).
func (cs *Columns) Extend(extra ...*Column) *Columns {
	out := make([]*Column, 0, len(cs.cols)+len(extra))
	out = append(out, cs.cols...)
	out = append(out, extra...)
	return &Columns{cols: out}
}

// Take returns a new Columns containing only the first n rows of every
// column (the Take pipeline operator, spec.md §6).
func (cs *Columns) Take(n int) *Columns {
	if n > cs.Len() {
		n = cs.Len()
	}
	out := make([]*Column, len(cs.cols))
	for i, c := range cs.cols {
		out[i] = c.Slice(0, n)
	}
	return &Columns{cols: out}
}

// Filter returns a new Columns retaining only the rows whose index is
// listed in keep, in order (the Filter pipeline operator applies its
// compiled predicate upstream and passes the surviving row indices here).
func (cs *Columns) Filter(keep []int) *Columns {
	out := make([]*Column, len(cs.cols))
	for i, c := range cs.cols {
		specialized := WithCapacity(c.Name, c.Type(), len(keep))
		for _, row := range keep {
			specialized.Push(c.Get(row))
		}
		out[i] = specialized
	}
	return &Columns{cols: out}
}
