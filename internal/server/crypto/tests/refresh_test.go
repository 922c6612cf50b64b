package tests

import (
	"bytes"
	"testing"

	crypt "github.com/IvanChernomyrdin/go-medkeeper/internal/server/crypto"
)

func TestNewRefreshToken_UniqueAndNonEmpty(t *testing.T) {
	t1, err := crypt.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	t2, err := crypt.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}

	if t1 == "" || t2 == "" {
		t.Fatal("expected non-empty tokens")
	}
	if t1 == t2 {
		t.Fatal("expected unique tokens")
	}
}

func TestHashRefreshToken_DeterministicAnd32Bytes(t *testing.T) {
	h1 := crypt.HashRefreshToken("token")
	h2 := crypt.HashRefreshToken("token")

	if len(h1) != 32 {
		t.Fatalf("expected 32-byte hash, got %d", len(h1))
	}
	if !bytes.Equal(h1, h2) {
		t.Fatal("expected deterministic hash")
	}

	h3 := crypt.HashRefreshToken("other")
	if bytes.Equal(h1, h3) {
		t.Fatal("expected different hashes for different tokens")
	}
}
