// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demand

// The standard marker set. All markers are zero-sized; their Shape methods
// are phantoms and panic if called directly.

// Ref is a tag whose shape is a shared view of a T owned by the provider.
// The returned pointer is valid only for the duration of the call that
// produced it and must not be written through.
type Ref[T any] struct{}

// Shape is a phantom method binding Ref[T] to shape *T.
func (Ref[T]) Shape() *T { panic("phantom") }

// RefMut is a tag whose shape is an exclusive, writable view of a T owned
// by the provider. Distinct from [Ref] by identity even though the shapes
// coincide in Go.
type RefMut[T any] struct{}

// Shape is a phantom method binding RefMut[T] to shape *T.
func (RefMut[T]) Shape() *T { panic("phantom") }

// Value is a tag whose shape is an owned T, independent of the call that
// produced it.
type Value[T any] struct{}

// Shape is a phantom method binding Value[T] to shape T.
func (Value[T]) Shape() T { panic("phantom") }

// Optional lifts a tag's shape into Option of that shape. It is pure
// composition: no new erasure logic, only a derived shape and a composite
// identity. An unanswered request and an answered one share one physical
// slot because request slots are tagged Optional(tag).
type Optional[T any] struct {
	Inner Tag[T]
}

// OptionalOf wraps inner in an [Optional] tag.
func OptionalOf[T any](inner Tag[T]) Optional[T] {
	return Optional[T]{Inner: inner}
}

// Shape is a phantom method binding Optional[T] to shape Option[T].
func (Optional[T]) Shape() Option[T] { panic("phantom") }

// compositeID keys an Optional tag by its inner tag's identity plus one
// level of wrapping, so Optional(A) ≠ Optional(B) whenever A ≠ B and
// Optional(Optional(A)) ≠ Optional(A).
func (o Optional[T]) compositeID() ID {
	if o.Inner == nil {
		panic("demand: Optional tag with nil inner tag")
	}
	id := IDOf(o.Inner)
	id.opt++
	return id
}
