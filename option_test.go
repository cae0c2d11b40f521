// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demand_test

import (
	"testing"

	"code.hybscloud.com/demand"
)

func TestOptionSome(t *testing.T) {
	o := demand.Some(42)
	if !o.IsSome() || o.IsNone() {
		t.Fatalf("Some(42): IsSome = %v, IsNone = %v", o.IsSome(), o.IsNone())
	}
	got, ok := o.Get()
	if !ok || got != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", got, ok)
	}
}

func TestOptionNone(t *testing.T) {
	o := demand.None[int]()
	if o.IsSome() || !o.IsNone() {
		t.Fatalf("None: IsSome = %v, IsNone = %v", o.IsSome(), o.IsNone())
	}
	got, ok := o.Get()
	if ok || got != 0 {
		t.Fatalf("got (%d, %v), want (0, false)", got, ok)
	}
}

func TestOptionOrElse(t *testing.T) {
	if got := demand.Some(1).OrElse(9); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if got := demand.None[int]().OrElse(9); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestMatchOption(t *testing.T) {
	got := demand.MatchOption(demand.Some(21),
		func(x int) int { return x * 2 },
		func() int { return -1 },
	)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}

	got = demand.MatchOption(demand.None[int](),
		func(x int) int { return x * 2 },
		func() int { return -1 },
	)
	if got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func TestMapOption(t *testing.T) {
	got, ok := demand.MapOption(demand.Some(7), func(x int) string {
		return "n"
	}).Get()
	if !ok || got != "n" {
		t.Fatalf("got (%q, %v), want (%q, true)", got, ok, "n")
	}

	if mapped := demand.MapOption(demand.None[int](), func(x int) string {
		return "n"
	}); !mapped.IsNone() {
		t.Fatalf("MapOption(None) = %v, want None", mapped)
	}
}
