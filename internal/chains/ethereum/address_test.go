package ethereum

import (
	"encoding/hex"
	"testing"

	"github.com/vaultkit/walletengine/internal/coins"
	"github.com/vaultkit/walletengine/internal/crypto/publickey"
	"github.com/vaultkit/walletengine/internal/walleterr"
)

func TestDeriveAddress(t *testing.T) {
	pubBytes, err := hex.DecodeString("0499c6f51ad6f98c9c583f8e92bb7758ab2ca9a04110c0a1126ec43e5453d196c166b489a4b7c491e7688e6ebea3a71fc3a1a48d60f98d5ce84c93b65e423fde91")
	if err != nil {
		t.Fatalf("decode fixture pubkey: %v", err)
	}
	pub, err := publickey.New(publickey.SECP256k1Extended, pubBytes)
	if err != nil {
		t.Fatalf("New public key: %v", err)
	}

	got, err := Deriver{}.DeriveAddress(coins.Coin{}, pub, nil, nil)
	if err != nil {
		t.Fatalf("DeriveAddress: %v", err)
	}

	const want = "0xAc1ec44E4f0ca7D172B7803f6836De87Fb72b309"
	if got != want {
		t.Errorf("DeriveAddress() = %s, want %s", got, want)
	}
}

func TestDeriveAddressRejectsCompressedKey(t *testing.T) {
	compressed, err := publickey.New(publickey.SECP256k1, append([]byte{0x02}, make([]byte, 32)...))
	if err != nil {
		t.Fatalf("New public key: %v", err)
	}
	_, err = Deriver{}.DeriveAddress(coins.Coin{}, compressed, nil, nil)
	if err != walleterr.ErrNotSupportedPublicKeyType {
		t.Errorf("DeriveAddress() error = %v, want %v", err, walleterr.ErrNotSupportedPublicKeyType)
	}
}
