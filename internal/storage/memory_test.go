package storage

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Put(ctx, "cache:tusa", []byte("valor")); err != nil {
		t.Fatalf("Put falhou: %v", err)
	}

	got, ok, err := store.Get(ctx, "cache:tusa")
	if err != nil {
		t.Fatalf("Get falhou: %v", err)
	}
	if !ok || string(got) != "valor" {
		t.Errorf("Get = (%q, %v), want (valor, true)", got, ok)
	}

	if _, ok, _ := store.Get(ctx, "inexistente"); ok {
		t.Error("chave inexistente não deveria retornar ok")
	}
}

func TestMemoryStoreIsolaBuffers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := []byte("valor")
	_ = store.Put(ctx, "k", original)

	// Mutação do buffer de entrada não vaza para o store.
	original[0] = 'X'
	got, _, _ := store.Get(ctx, "k")
	if string(got) != "valor" {
		t.Errorf("Put não copiou o buffer: %q", got)
	}

	// Nem a mutação do buffer devolvido.
	got[0] = 'Y'
	again, _, _ := store.Get(ctx, "k")
	if string(again) != "valor" {
		t.Errorf("Get não copiou o buffer: %q", again)
	}
}

func TestMemoryStoreDeletePrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_ = store.Put(ctx, "session:a", []byte("1"))
	_ = store.Put(ctx, "session:b", []byte("2"))
	_ = store.Put(ctx, "cache:x", []byte("3"))

	if err := store.DeletePrefix(ctx, "session:"); err != nil {
		t.Fatalf("DeletePrefix falhou: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "session:a"); ok {
		t.Error("session:a deveria ter sido removida")
	}
	if _, ok, _ := store.Get(ctx, "cache:x"); !ok {
		t.Error("cache:x não deveria ter sido removida")
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_ = store.Put(ctx, "cache:a", []byte("1"))
	_ = store.Put(ctx, "cache:b", []byte("2"))
	_ = store.Put(ctx, "history", []byte("3"))

	entries, err := store.List(ctx, "cache:")
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("List retornou %d entradas, want 2", len(entries))
	}
	if string(entries["cache:a"]) != "1" {
		t.Errorf("cache:a = %q, want 1", entries["cache:a"])
	}
}
