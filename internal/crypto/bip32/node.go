// Package bip32 derives child keys from a BIP-39 seed along a derivation
// path. Secp256k1 coins use github.com/tyler-smith/go-bip32 directly, the
// same library the teacher's address generators call through their
// deriveKey helper. ED25519 and SR25519 coins use a SLIP-0010-style
// hardened-only derivation built on HMAC-SHA512, since go-bip32 only
// speaks the secp256k1 curve.
package bip32

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"

	"github.com/tyler-smith/go-bip32"

	wcrypto "github.com/vaultkit/walletengine/internal/crypto"
	"github.com/vaultkit/walletengine/internal/derivation"
	"github.com/vaultkit/walletengine/internal/walleterr"
)

// Node is the result of walking a derivation path from a seed: the child
// private key and, for curves that support it, enough state to render an
// extended public key.
type Node struct {
	PrivateKeyBytes []byte
	ChainCode       []byte
	secpKey         *bip32.Key // non-nil only for Secp256k1
}

// DeriveNode walks path from seed under curve and returns the resulting
// node.
func DeriveNode(seed []byte, path derivation.Path, curve wcrypto.Curve) (Node, error) {
	switch curve {
	case wcrypto.Secp256k1:
		return deriveSecp256k1(seed, path)
	case wcrypto.ED25519, wcrypto.SR25519:
		return deriveSLIP10(seed, path)
	default:
		return Node{}, fmt.Errorf("%w: curve %d", walleterr.ErrInvalidDerivationPath, curve)
	}
}

func deriveSecp256k1(seed []byte, path derivation.Path) (Node, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return Node{}, fmt.Errorf("master key: %w", err)
	}
	for _, c := range path {
		key, err = key.NewChildKey(c.RawIndex())
		if err != nil {
			return Node{}, fmt.Errorf("derive %v: %w", c, err)
		}
	}
	return Node{PrivateKeyBytes: key.Key, ChainCode: key.ChainCode, secpKey: key}, nil
}

// ExtendedPublicKey returns the Base58Check-encoded extended public key
// (xpub) for a node derived on the Secp256k1 curve. Returns "" for any
// other curve, matching the coin catalogue's xpub-less entries for
// non-secp256k1 chains.
func (n Node) ExtendedPublicKey() string {
	if n.secpKey == nil {
		return ""
	}
	pub := n.secpKey.PublicKey()
	xpub, err := pub.B58Serialize()
	if err != nil {
		return ""
	}
	return xpub
}

// deriveSLIP10 implements SLIP-0010's Ed25519 derivation scheme, which is
// hardened-only: every component, hardened or not, is derived with the
// hardened formula because ed25519/sr25519 scalars have no public-key-only
// derivation path. It is reused for SR25519 since no SLIP-0010 variant
// specific to SR25519 exists in the reference corpus.
func deriveSLIP10(seed []byte, path derivation.Path) (Node, error) {
	key, chainCode := slip10Master(seed)
	for _, c := range path {
		key, chainCode = slip10Child(key, chainCode, c.RawIndex()|derivation.HardenedOffset)
	}
	return Node{PrivateKeyBytes: key, ChainCode: chainCode}, nil
}

func slip10Master(seed []byte) (key, chainCode []byte) {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

func slip10Child(parentKey, parentChainCode []byte, index uint32) (key, chainCode []byte) {
	mac := hmac.New(sha512.New, parentChainCode)
	mac.Write([]byte{0x00})
	mac.Write(parentKey)
	mac.Write([]byte{byte(index >> 24), byte(index >> 16), byte(index >> 8), byte(index)})
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}
