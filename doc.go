// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package demand provides demand-driven, type-safe value lookup between
// loosely coupled components.
//
// A consumer asks an opaque object "do you have a value of this kind for
// this call?" and the object may fill in an answer during the call, without
// either side needing compile-time knowledge of the other's full type. The
// core is a type-erasure primitive: a value whose type is unknown at the
// erasure site travels inside one uniform opaque carrier and is recovered
// exactly, and only, by a caller holding the matching identity.
//
// # Design Philosophy
//
// demand provides:
//   - Tags as zero-sized marker types with phantom-method shape binding
//   - A single sealed erased representation with identity-gated recovery
//   - A single-shot, first-writer-wins request protocol on top of it
//
// # Tags and Identity
//
// A tag is a marker type implementing [Tag] by declaring a phantom Shape
// method. Identity is derived from the marker type itself via [IDOf], never
// from the shape, so two tags with identical shapes remain distinguishable
// and independent packages cannot collide. The standard set:
//
//   - [Ref]: shape *T, a shared view bounded by the call
//   - [RefMut]: shape *T, an exclusive writable view bounded by the call
//   - [Value]: shape T, owned and call-independent
//   - [Optional]: lifts any tag's shape into [Option] of that shape
//
// # The Erasure Cell
//
// [Cell] carries one shape value plus the identity of the tag it was erased
// under. Recovery comes in three forms, all gated on a single identity
// comparison and all total: a mismatch yields absence, never a fault.
//
//   - [Is]: identity check
//   - [DowncastRef], [DowncastMut]: borrow the payload in place
//   - [DowncastOwned]: transfer the payload out, leaving the cell spent
//
// # Request Protocol
//
// A [Request] is a Cell of Option[T] used as a mutable outparameter. The
// driver allocates it empty, a [Provider] fills it through [Provide] or
// [ProvideWith] for any tag it recognizes, and the driver extracts the
// final Option with [Take]. The slot moves Empty → Filled at most once:
// the first applicable fulfillment wins and later ones no-op, so a provider
// may chain its own candidates after those of a wrapped inner provider and
// the inner answer takes precedence. [ProvideWith] invokes its producer
// only when the write will actually happen.
//
// [Drive] and [From] package the allocate-erase-call-extract cycle.
//
// # Call Scope
//
// A Request exists for the dynamic extent of one provide call. Views
// recovered from it are bounded the same way. Retention is asserted
// dynamically: once the driver has taken the result the request is spent,
// and any later use panics.
//
// # Concurrency
//
// Strictly synchronous. Every lookup allocates its own slot and no call can
// observe another call's slot, so there is no shared mutable state and no
// locking. Provider values whose own state is read-only may serve any
// number of concurrent lookups.
//
// # Example
//
//	type example struct{ s string }
//
//	func (e *example) Provide(req *demand.Request) {
//		demand.Provide(req, demand.Ref[string]{}, &e.s)
//		demand.ProvideWith(req, demand.Value[string]{}, func() string {
//			return strings.Clone(e.s)
//		})
//	}
//
//	e := &example{s: "hello, world!"}
//	s, ok := demand.From(e, demand.Value[string]{}).Get()
//	// s == "hello, world!", ok == true
//	_, ok = demand.From(e, demand.Value[int]{}).Get()
//	// ok == false: absence, not an error
package demand
