package yamlutil

import (
	"errors"
	"testing"

	"strainstats/pkg/schema"
)

func TestRoot_Empty(t *testing.T) {
	for _, in := range []string{"", "null\n", "---\n"} {
		n, err := Root([]byte(in))
		if err != nil {
			t.Fatalf("Root(%q): %v", in, err)
		}
		if n != nil {
			t.Fatalf("Root(%q) = %+v, want nil", in, n)
		}
	}
}

func TestRoot_Malformed(t *testing.T) {
	_, err := Root([]byte("a: [unclosed"))
	var se *schema.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("want SchemaError, got %v", err)
	}
}

func TestRequire(t *testing.T) {
	n, err := Root([]byte("a: 1\nb: null\n"))
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if v, err := Require(n, "a"); err != nil || IsNull(v) {
		t.Fatalf("a: %v %v", v, err)
	}
	v, err := Require(n, "b")
	if err != nil {
		t.Fatalf("b: %v", err)
	}
	if !IsNull(v) {
		t.Fatalf("b not null: %+v", v)
	}
	_, err = Require(n, "c")
	var se *schema.SchemaError
	if !errors.As(err, &se) || se.Key != "c" {
		t.Fatalf("missing key: got %v", err)
	}
}

func TestScalars(t *testing.T) {
	n, err := Root([]byte("i: 7\nf: 0.5\ns: tig1\nwrong: [1]\n"))
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if v, err := Int(n, "i"); err != nil || v != 7 {
		t.Fatalf("Int: %v %v", v, err)
	}
	if v, err := Float(n, "f"); err != nil || v != 0.5 {
		t.Fatalf("Float: %v %v", v, err)
	}
	// yaml numeric coercion: an integer is a valid float.
	if v, err := Float(n, "i"); err != nil || v != 7 {
		t.Fatalf("Float from int: %v %v", v, err)
	}
	if v, err := String(n, "s"); err != nil || v != "tig1" {
		t.Fatalf("String: %v %v", v, err)
	}
	if _, err := Int(n, "wrong"); err == nil {
		t.Fatal("sequence accepted as int")
	}
}

func TestKindErrors(t *testing.T) {
	n, err := Root([]byte("m:\n  k: 1\nseq:\n  - 1\n"))
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if _, err := Seq(n, "m"); err == nil {
		t.Fatal("mapping accepted as sequence")
	}
	if _, err := Map(n, "seq"); err == nil {
		t.Fatal("sequence accepted as mapping")
	}
	items, err := Seq(n, "seq")
	if err != nil || len(items) != 1 {
		t.Fatalf("Seq: %v %v", items, err)
	}
}
