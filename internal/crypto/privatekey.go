// Package crypto holds the curve-level primitives the rest of the engine
// builds on: private key validation/derivation and the secp256k1/ed25519
// bindings used by BIP-32 nodes and chain address modules.
package crypto

import (
	"crypto/ed25519"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/vaultkit/walletengine/internal/crypto/publickey"
	"github.com/vaultkit/walletengine/internal/walleterr"
)

// Curve names the elliptic curve a coin's keys are defined over. It
// determines both the PrivateKey validation rule and which HD derivation
// scheme (BIP-32 vs SLIP-0010) produces child keys.
type Curve int

const (
	Secp256k1 Curve = iota
	ED25519
	SR25519
)

// CurveFromString maps a coin catalogue's "curve" field to a Curve.
func CurveFromString(s string) (Curve, error) {
	switch s {
	case "secp256k1":
		return Secp256k1, nil
	case "ed25519":
		return ED25519, nil
	case "sr25519":
		return SR25519, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized curve %q", walleterr.ErrInvalidPrivateKey, s)
	}
}

// PrivateKey is raw scalar/seed bytes tagged with the curve they belong to.
type PrivateKey struct {
	Curve Curve
	Data  []byte
}

// NewPrivateKey validates data for curve and wraps it.
func NewPrivateKey(curve Curve, data []byte) (PrivateKey, error) {
	if !IsValid(data, curve) {
		return PrivateKey{}, fmt.Errorf("%w: curve %d len %d", walleterr.ErrInvalidPrivateKey, curve, len(data))
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return PrivateKey{Curve: curve, Data: cp}, nil
}

// IsValid reports whether data is a well-formed private key for curve.
// Secp256k1 keys must be a 32-byte scalar in [1, n-1]; ed25519 and sr25519
// keys are 32-byte seeds, validated only by length (the engine does not
// implement point-on-curve checks for seeds, since any 32-byte seed is a
// valid input to the corresponding derivation function).
func IsValid(data []byte, curve Curve) bool {
	switch curve {
	case Secp256k1:
		if len(data) != 32 {
			return false
		}
		k := new(big.Int).SetBytes(data)
		return k.Sign() > 0 && k.Cmp(btcec.S256().N) < 0
	case ED25519, SR25519:
		return len(data) == 32
	default:
		return false
	}
}

// PublicKeyFor derives the public key for this private key, encoded per
// pkType (which must be compatible with Curve; SECP256k1/SECP256k1Extended
// require Secp256k1, ED25519 requires ED25519, SR25519 requires SR25519).
func (k PrivateKey) PublicKeyFor(pkType publickey.Type) (publickey.PublicKey, error) {
	switch k.Curve {
	case Secp256k1:
		if pkType != publickey.SECP256k1 && pkType != publickey.SECP256k1Extended {
			return publickey.PublicKey{}, walleterr.ErrNotSupportedPublicKeyType
		}
		_, pub := btcec.PrivKeyFromBytes(k.Data)
		if pkType == publickey.SECP256k1 {
			return publickey.New(publickey.SECP256k1, pub.SerializeCompressed())
		}
		return publickey.New(publickey.SECP256k1Extended, pub.SerializeUncompressed())
	case ED25519:
		if pkType != publickey.ED25519 {
			return publickey.PublicKey{}, walleterr.ErrNotSupportedPublicKeyType
		}
		seed := ed25519.NewKeyFromSeed(k.Data)
		pub := seed.Public().(ed25519.PublicKey)
		return publickey.New(publickey.ED25519, pub)
	case SR25519:
		if pkType != publickey.SR25519 {
			return publickey.PublicKey{}, walleterr.ErrNotSupportedPublicKeyType
		}
		pub, err := sr25519PublicKey(k.Data)
		if err != nil {
			return publickey.PublicKey{}, err
		}
		return publickey.New(publickey.SR25519, pub)
	default:
		return publickey.PublicKey{}, walleterr.ErrInvalidPrivateKey
	}
}
