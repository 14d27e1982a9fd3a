package runtime

import "testing"

func TestSetOwnPropertyRespectsWritable(t *testing.T) {
	o := NewObject(NullID)
	o.DefineOwnProperty("frozen", String("a"), AccessEnum)
	o.SetOwnProperty("frozen", String("b"))
	v, ok := o.GetOwn("frozen")
	if !ok || v.Str != "a" {
		t.Errorf("write to a non-writable property should be silently dropped, got %+v", v)
	}

	o.SetOwnProperty("plain", String("first"))
	o.SetOwnProperty("plain", String("second"))
	v, ok = o.GetOwn("plain")
	if !ok || v.Str != "second" {
		t.Errorf("writable property should be overwritten, got %+v", v)
	}
}

func TestArrayPayloadIndexAndLength(t *testing.T) {
	o := NewObject(NullID)
	o.Payload = Payload{Kind: PayloadArray, Array: []Value{Number(1), Number(2)}}

	o.SetOwnProperty("2", Number(3))
	v, ok := o.GetOwn("length")
	if !ok || v.Num != 3 {
		t.Errorf("length after growing index 2 = %+v, want 3", v)
	}

	o.SetOwnProperty("length", Number(1))
	arr, _ := o.AsArray()
	if len(arr) != 1 {
		t.Errorf("truncating length to 1 left %d elements, want 1", len(arr))
	}
}

func TestDeleteRespectsConfigurable(t *testing.T) {
	o := NewObject(NullID)
	o.SetNonConf("fixed", Number(1))
	o.SetOwnProperty("movable", Number(2))

	if ok := o.Delete("fixed"); ok {
		t.Error("deleting a non-configurable property should report false")
	}
	if !o.HasOwn("fixed") {
		t.Error("a failed delete should leave the property in place")
	}

	if ok := o.Delete("movable"); !ok {
		t.Error("deleting a configurable property should report true")
	}
	if o.HasOwn("movable") {
		t.Error("a successful delete should remove the property")
	}

	if ok := o.Delete("neverSet"); !ok {
		t.Error("deleting an absent property should still report true")
	}
}

func TestOwnEnumerableKeysArrayOrder(t *testing.T) {
	o := NewObject(NullID)
	o.Payload = Payload{Kind: PayloadArray, Array: []Value{Number(1), Number(2)}}
	o.SetOwnProperty("extra", Number(3))

	keys := o.OwnEnumerableKeys()
	want := []string{"0", "1", "extra"}
	if len(keys) != len(want) {
		t.Fatalf("got keys %v, want %v", keys, want)
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], k)
		}
	}
}

func TestStringPayloadIndexAndLength(t *testing.T) {
	o := NewObject(NullID)
	o.Payload = Payload{Kind: PayloadString, Str: "abc"}

	v, ok := o.GetOwn("1")
	if !ok || v.Str != "b" {
		t.Errorf("GetOwn(\"1\") on a boxed string = %+v, want \"b\"", v)
	}
	v, ok = o.GetOwn("length")
	if !ok || v.Num != 3 {
		t.Errorf("GetOwn(\"length\") = %+v, want 3", v)
	}
}
