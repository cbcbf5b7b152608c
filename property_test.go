// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import "testing"

func TestPropertyListAddDuplicate(t *testing.T) {
	list := NewPropertyList()
	if err := list.Add(Property{Name: "isHuman", Type: PropertyBool, Value: true}); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	err := list.Add(Property{Name: "isHuman", Type: PropertyBool, Value: false})
	if err != ErrDuplicateProperty {
		t.Errorf("got %v, want ErrDuplicateProperty", err)
	}
}

func TestPropertyListPreservesInsertionOrder(t *testing.T) {
	list := NewPropertyList()
	names := []string{"c", "a", "b"}
	for _, n := range names {
		if err := list.Add(Property{Name: n, Type: PropertyInt32, Value: int32(0)}); err != nil {
			t.Fatalf("Add(%s): %v", n, err)
		}
	}
	items := list.Items()
	if len(items) != len(names) {
		t.Fatalf("Items() len = %d, want %d", len(items), len(names))
	}
	for i, n := range names {
		if items[i].Name != n {
			t.Errorf("Items()[%d].Name = %q, want %q", i, items[i].Name, n)
		}
	}
}

func TestPropertyListGet(t *testing.T) {
	list := NewPropertyList()
	list.Add(Property{Name: "radius", Type: PropertyReal, Value: float32(12.5)})

	p, ok := list.Get("radius")
	if !ok {
		t.Fatal("Get(radius) not found")
	}
	if p.Value.(float32) != 12.5 {
		t.Errorf("Value = %v, want 12.5", p.Value)
	}
	if _, ok := list.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
}
