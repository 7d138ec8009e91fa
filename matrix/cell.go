// SPDX-License-Identifier: MIT

// Package matrix - Cell: explicit mutable-access token.
//
// Purpose:
//   - Replace a reference-returning accessor with a token whose writes are
//     routed through the owning storage and checked against its open cell.
//   - Let sparse storage defer the sorted insert/remove until the cell closes.
//
// Lifecycle:
//
//	Idle --Open(r,c)--> Open(r,c) --Commit | Open(other) | Set | Det--> Idle
//
// Every transition back to Idle commits the pending value. A token whose
// cell was closed is stale forever; reopening the same coordinates yields
// a new token.
package matrix

// cellOwner is implemented by *Dense and *Sparse.
type cellOwner[T Element] interface {
	writeCell(gen uint64, v T) error
	commitCell(gen uint64) error
	isOpen(gen uint64) bool
}

// Cell is the token returned by Open. Obtain it, Set the value, Commit it.
//
// Holding two tokens of the same storage is legal but only the newest one is
// open: writes through the older token fail with ErrStaleCell instead of
// silently overwriting or losing data.
type Cell[T Element] struct {
	owner    cellOwner[T]
	gen      uint64 // owner generation this token was issued for
	row, col int
	val      T // last value observed or written through this token
}

// Row returns the cell's row index.
func (c *Cell[T]) Row() int { return c.row }

// Col returns the cell's column index.
func (c *Cell[T]) Col() int { return c.col }

// Value returns the value seen when the cell was opened, or the last value
// written through this token.
func (c *Cell[T]) Value() T { return c.val }

// Open reports whether this token is still the open cell of its storage.
func (c *Cell[T]) Open() bool { return c.owner.isOpen(c.gen) }

// Set writes v through the token.
// Dense storage applies it immediately; sparse storage keeps it pending
// until the cell closes.
//
// Errors:
//   - ErrStaleCell when the token is no longer open (nothing is written).
func (c *Cell[T]) Set(v T) error {
	if err := c.owner.writeCell(c.gen, v); err != nil {
		return err
	}
	c.val = v

	return nil
}

// Commit closes the cell, making any pending value part of the storage.
// Afterwards the token is stale.
//
// Errors:
//   - ErrStaleCell when the token was already closed.
func (c *Cell[T]) Commit() error {
	return c.owner.commitCell(c.gen)
}
