// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demand

// Request is a type-erased outparameter for one value lookup. The driver
// builds it around an empty Option slot for the tag it is asking about,
// passes it to a provider, and extracts the final Option after the call
// returns. The provider sees only the erased form and can learn which kind
// is being asked for only by attempting identity checks.
//
// A Request lives for the dynamic extent of one provide call. Once the
// driver has taken the result the request is spent, and every later
// operation on it panics: a spent request reached again means a provider
// retained the pointer past its call, which the protocol forbids.
//
// The slot has two states, Empty and Filled, and moves between them at most
// once: a write happens only when the identity matches and the slot is still
// Empty, so the first applicable fulfillment wins and later ones no-op.
type Request struct {
	cell  Cell
	spent bool
}

// NewRequest creates an unfulfilled request for tag. The slot is tagged
// Optional(tag) so that Empty and Filled share one physical form.
func NewRequest[T any](tag Tag[T]) *Request {
	return &Request{cell: *NewCell(OptionalOf(tag), None[T]())}
}

func (r *Request) assertLive() {
	if r.spent {
		panic("demand: request used after its provide call returned")
	}
}

// Wants reports whether the request is asking for tag. No side effects.
func Wants[T any](r *Request, tag Tag[T]) bool {
	r.assertLive()
	return Is(&r.cell, OptionalOf(tag))
}

// Provide fulfills the request with value if it is asking for tag and has
// not been fulfilled yet; otherwise it is a no-op. It returns r so a
// provider can chain several candidate fulfillments.
func Provide[T any](r *Request, tag Tag[T], value T) *Request {
	r.assertLive()
	if slot, ok := DowncastMut(&r.cell, OptionalOf(tag)); ok && slot.IsNone() {
		*slot = Some(value)
	}
	return r
}

// ProvideWith is [Provide] with a lazily produced value: produce runs only
// if the write will actually happen, never on a tag mismatch and never when
// the slot is already filled.
func ProvideWith[T any](r *Request, tag Tag[T], produce func() T) *Request {
	r.assertLive()
	if slot, ok := DowncastMut(&r.cell, OptionalOf(tag)); ok && slot.IsNone() {
		*slot = Some(produce())
	}
	return r
}

// Take extracts the final result on the driver side. On an identity match
// it consumes the slot, marks the request spent, and returns whatever the
// providers filled in (possibly still None). On a mismatch it returns None
// and leaves the request intact.
func Take[T any](r *Request, tag Tag[T]) Option[T] {
	opt, ok := DowncastOwned(&r.cell, OptionalOf(tag))
	if !ok {
		return None[T]()
	}
	r.spent = true
	return opt
}
