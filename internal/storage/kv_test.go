package storage

import "testing"

func TestKeyValue(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("studentName"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v", ok, err)
	}

	if err := store.Set("studentName", "Asha"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	v, ok, err := store.Get("studentName")
	if err != nil || !ok || v != "Asha" {
		t.Fatalf("Get() = %q, %v, %v", v, ok, err)
	}

	if err := store.Set("studentName", "Ravi"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	if v, _, _ := store.Get("studentName"); v != "Ravi" {
		t.Errorf("after overwrite = %q, want Ravi", v)
	}

	if err := store.Remove("studentName"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if _, ok, _ := store.Get("studentName"); ok {
		t.Error("key still present after Remove")
	}
	if err := store.Remove("studentName"); err != nil {
		t.Errorf("Remove(missing) = %v, want nil", err)
	}
}

func TestKeyValueEmptyValue(t *testing.T) {
	store := openTestStore(t)
	if err := store.Set("k", ""); err != nil {
		t.Fatal(err)
	}
	v, ok, err := store.Get("k")
	if err != nil || !ok || v != "" {
		t.Errorf("Get() = %q, %v, %v; want empty but present", v, ok, err)
	}
}
