// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demand

// Option represents a value that may be absent. It is the shape of
// [Optional] tags and the physical form of a request slot: an unanswered
// request holds None, a fulfilled one holds Some.
type Option[T any] struct {
	some  bool
	value T
}

// Some creates a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{some: true, value: v}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	if o.some {
		return o.value, true
	}
	var zero T
	return zero, false
}

// OrElse returns the value if present, otherwise def.
func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the value if present.
func MapOption[T, R any](o Option[T], f func(T) R) Option[R] {
	if o.some {
		return Some(f(o.value))
	}
	return None[R]()
}
