package sqlstore

import "testing"

func TestSQLitePutGet(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenSQLite(dir)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.GetString("product_list"); err != nil || ok {
		t.Fatalf("empty db: ok=%v err=%v", ok, err)
	}
	if err := s.PutString("product_list", "[]"); err != nil {
		t.Fatalf("PutString: %v", err)
	}
	if err := s.PutString("product_list", `[{"id":"a"}]`); err != nil {
		t.Fatalf("PutString overwrite: %v", err)
	}
	v, ok, err := s.GetString("product_list")
	if err != nil || !ok || v != `[{"id":"a"}]` {
		t.Fatalf("GetString = %q, %v, %v", v, ok, err)
	}
}

func TestSQLiteReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenSQLite(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.PutString("k", "v"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := OpenSQLite(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	if v, ok, _ := s2.GetString("k"); !ok || v != "v" {
		t.Fatalf("after reopen: %q, %v", v, ok)
	}
}

func TestOpenMySQLEmptyDSN(t *testing.T) {
	if _, err := OpenMySQL(""); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}
