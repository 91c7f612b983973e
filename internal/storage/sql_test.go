package storage

import (
	"testing"

	"github.com/yourorg/hceweb/internal/db"
)

func newSQLiteStore(t *testing.T, namespace string) *SQLStore {
	t.Helper()
	conn, err := db.Connect(db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := db.EnsureSchema(conn); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return NewSQLStore(conn, namespace)
}

func TestSQLStoreRoundTrip(t *testing.T) {
	store := newSQLiteStore(t, "puesto-1")

	if _, found, err := store.Get(TokenKey); err != nil || found {
		t.Fatalf("Expected empty slot, got found=%v err=%v", found, err)
	}

	if err := store.Set(TokenKey, "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(TokenKey, "def"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, found, err := store.Get(TokenKey)
	if err != nil || !found {
		t.Fatalf("Expected slot present, got found=%v err=%v", found, err)
	}
	if value != "def" {
		t.Errorf("Expected 'def', got %q", value)
	}

	if err := store.Remove(TokenKey); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := store.Remove(TokenKey); err != nil {
		t.Errorf("Expected idempotent remove, got %v", err)
	}
	if _, found, _ := store.Get(TokenKey); found {
		t.Error("Expected slot removed")
	}
}

func TestSQLStoreNamespacesAreIsolated(t *testing.T) {
	conn, err := db.Connect(db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close()
	if err := db.EnsureSchema(conn); err != nil {
		t.Fatalf("schema: %v", err)
	}

	a := NewSQLStore(conn, "bogota-1")
	b := NewSQLStore(conn, "cali-1")

	a.Set(TokenKey, "token-a")

	if _, found, _ := b.Get(TokenKey); found {
		t.Error("Expected namespace cali-1 not to see bogota-1 token")
	}
	if value, _, _ := a.Get(TokenKey); value != "token-a" {
		t.Errorf("Expected 'token-a', got %q", value)
	}
}

func TestOpenMemory(t *testing.T) {
	store, closer, err := Open("memory", "", "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer closer.Close()

	if _, ok := store.(*MemoryStore); !ok {
		t.Errorf("Expected *MemoryStore, got %T", store)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, _, err := Open("redis", "", ""); err == nil {
		t.Error("Expected error for unsupported driver")
	}
}
