// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demand

import "reflect"

// Tag is implemented by marker types that name one logical kind of value.
// The type parameter T is the tag's shape: the concrete value type the tag
// describes.
//
// Shape is a phantom method. It is never called; it exists solely to bind
// the marker type to its shape at compile time, so that type inference can
// recover T from a tag passed by value:
//
//	type Deadline struct{}
//	func (Deadline) Shape() time.Time { panic("phantom") }
//
// Markers should be zero-sized. Identity is keyed on the marker type itself,
// never on the shape, so independent packages may declare tags with
// overlapping shapes without collision and without any registration step.
type Tag[T any] interface {
	Shape() T
}

// ID identifies a tag marker type. IDs are comparable; two tags name the
// same kind iff their IDs are equal.
//
// An ID records the marker's own type plus the number of [Optional] layers
// wrapped around it, so Optional(A) and Optional(B) stay distinct even when
// A and B share a shape, and Optional(Optional(A)) stays distinct from
// Optional(A).
type ID struct {
	marker reflect.Type
	opt    int
}

// composite is implemented by combinator tags whose identity derives from
// an inner tag rather than from their own (shape-parameterized) type.
type composite interface {
	compositeID() ID
}

// IDOf derives the identity of a tag. It is the single source of identity:
// every identity comparison in the package goes through it.
func IDOf[T any](tag Tag[T]) ID {
	if c, ok := tag.(composite); ok {
		return c.compositeID()
	}
	return ID{marker: reflect.TypeOf(tag)}
}

// String returns a readable form of the identity for diagnostics.
func (id ID) String() string {
	if id.marker == nil {
		return "<no tag>"
	}
	s := id.marker.String()
	for range id.opt {
		s = "Optional(" + s + ")"
	}
	return s
}
