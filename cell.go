// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demand

// Cell is the type-erased carrier. It wraps exactly one shape value together
// with the identity of the tag it was erased under, and gives that value back
// only to callers holding a tag with the matching identity.
//
// Cell is the package's single erased representation. Its fields are
// unexported and [NewCell] is the only constructor, which is what makes the
// recovery assertion in the downcast functions total: the payload's dynamic
// type and the recorded identity are bound to the same tag at the one point
// where a Cell comes into existence, and nothing can rebind them afterwards.
//
// Go has no transparent-wrapper reinterpretation, so the carrier is an
// identity plus a boxed payload: erasing costs one allocation, recovery costs
// one identity comparison and never copies the payload.
//
// The zero Cell is spent: it matches no tag.
type Cell struct {
	id ID
	// box always holds a *T where T is the shape of the tag recorded in id,
	// or nil once ownership has been transferred out by DowncastOwned.
	box any
}

// NewCell erases value under tag.
func NewCell[T any](tag Tag[T], value T) *Cell {
	p := new(T)
	*p = value
	return &Cell{id: IDOf(tag), box: p}
}

// ID returns the identity the cell was erased under, or the zero ID if the
// cell is spent.
func (c *Cell) ID() ID {
	return c.id
}

// Is reports whether the cell currently carries a value erased under tag.
// No side effects.
func Is[T any](c *Cell, tag Tag[T]) bool {
	return c.box != nil && c.id == IDOf(tag)
}

// DowncastRef returns a shared view of the wrapped value as tag's shape, or
// nil and false if the identity does not match. The view is valid only while
// the cell is; callers must not write through it.
func DowncastRef[T any](c *Cell, tag Tag[T]) (*T, bool) {
	if c.box == nil || c.id != IDOf(tag) {
		return nil, false
	}
	return c.box.(*T), true
}

// DowncastMut returns an exclusive, writable view of the wrapped value as
// tag's shape, or nil and false if the identity does not match.
//
// DowncastRef and DowncastMut are runtime-identical in Go; both exist so
// call sites state whether they read or write.
func DowncastMut[T any](c *Cell, tag Tag[T]) (*T, bool) {
	if c.box == nil || c.id != IDOf(tag) {
		return nil, false
	}
	return c.box.(*T), true
}

// DowncastOwned transfers ownership of the wrapped value out of the cell.
// On an identity match it returns the exact value erased under tag and
// leaves the cell spent: its identity is cleared and every later match
// fails. On a mismatch it returns the zero shape and false and the cell is
// untouched, so no value is ever lost to a failed downcast.
func DowncastOwned[T any](c *Cell, tag Tag[T]) (T, bool) {
	if c.box == nil || c.id != IDOf(tag) {
		var zero T
		return zero, false
	}
	p := c.box.(*T)
	c.id = ID{}
	c.box = nil
	return *p, true
}
