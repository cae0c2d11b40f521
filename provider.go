// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demand

// Provider is the single extension point. A type implements Provide to
// answer zero or more tag kinds per call, typically as a chain of
// [Provide]/[ProvideWith] candidates:
//
//	func (e example) Provide(req *demand.Request) {
//		demand.Provide(req, demand.Ref[string]{}, &e.s)
//		demand.ProvideWith(req, demand.Value[string]{}, func() string {
//			return strings.Clone(e.s)
//		})
//	}
//
// Providers must not retain the request past the call.
type Provider interface {
	Provide(req *Request)
}

// Drive runs one lookup for tag: it allocates a fresh empty slot, hands the
// erased request to driver, and returns whatever the driver's providers
// filled in. The request is spent when Drive returns.
func Drive[T any](tag Tag[T], driver func(*Request)) Option[T] {
	r := NewRequest(tag)
	driver(r)
	return Take(r, tag)
}

// From asks p for a value of tag's kind.
//
//	if s, ok := demand.From(p, demand.Value[string]{}).Get(); ok { ... }
func From[T any](p Provider, tag Tag[T]) Option[T] {
	return Drive(tag, p.Provide)
}
