package bip32

import (
	"bytes"
	"testing"

	"github.com/tyler-smith/go-bip39"

	wcrypto "github.com/vaultkit/walletengine/internal/crypto"
	"github.com/vaultkit/walletengine/internal/derivation"
)

func testSeed(t *testing.T) []byte {
	t.Helper()
	words := "team engine square letter hero song dizzy scrub tornado fabric divert saddle"
	return bip39.NewSeed(words, "")
}

func TestDeriveNodeSecp256k1Deterministic(t *testing.T) {
	seed := testSeed(t)
	path, err := derivation.Parse("m/44'/60'/0'/0/0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	n1, err := DeriveNode(seed, path, wcrypto.Secp256k1)
	if err != nil {
		t.Fatalf("DeriveNode: %v", err)
	}
	n2, err := DeriveNode(seed, path, wcrypto.Secp256k1)
	if err != nil {
		t.Fatalf("DeriveNode: %v", err)
	}
	if !bytes.Equal(n1.PrivateKeyBytes, n2.PrivateKeyBytes) {
		t.Error("same seed+path produced different keys")
	}
	if n1.ExtendedPublicKey() == "" {
		t.Error("expected a non-empty extended public key for a secp256k1 node")
	}
}

func TestDeriveNodeDivergesOnPath(t *testing.T) {
	seed := testSeed(t)
	p0, _ := derivation.Parse("m/44'/60'/0'/0/0")
	p1, _ := derivation.Parse("m/44'/60'/0'/0/1")

	n0, err := DeriveNode(seed, p0, wcrypto.Secp256k1)
	if err != nil {
		t.Fatalf("DeriveNode: %v", err)
	}
	n1, err := DeriveNode(seed, p1, wcrypto.Secp256k1)
	if err != nil {
		t.Fatalf("DeriveNode: %v", err)
	}
	if bytes.Equal(n0.PrivateKeyBytes, n1.PrivateKeyBytes) {
		t.Error("different indices produced the same private key")
	}
}

func TestDeriveNodeSLIP10NoExtendedPublicKey(t *testing.T) {
	seed := testSeed(t)
	path, err := derivation.Parse("m/44'/354'/0'/0'/0'")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	node, err := DeriveNode(seed, path, wcrypto.SR25519)
	if err != nil {
		t.Fatalf("DeriveNode: %v", err)
	}
	if len(node.PrivateKeyBytes) != 32 {
		t.Errorf("PrivateKeyBytes length = %d, want 32", len(node.PrivateKeyBytes))
	}
	if node.ExtendedPublicKey() != "" {
		t.Error("expected empty extended public key for an SR25519 node")
	}
}
