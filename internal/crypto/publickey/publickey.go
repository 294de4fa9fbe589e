// Package publickey implements the tagged-union PublicKey representation
// shared by every chain address module: SECP256k1 (compressed, 33 bytes),
// SECP256k1Extended (uncompressed, 65 bytes), ED25519, and SR25519 (both
// 32 bytes). The type tag is what chain dispatchers switch on rather than
// separate Go types, mirroring the closed-set dispatch the coin registry
// uses for blockchains.
package publickey

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/sha3"

	"github.com/vaultkit/walletengine/internal/walleterr"
)

// Type tags the encoding of a PublicKey's Data.
type Type int

const (
	// SECP256k1 is a 33-byte compressed point, leading byte 0x02 or 0x03.
	SECP256k1 Type = iota
	// SECP256k1Extended is a 65-byte uncompressed point, leading byte 0x04.
	SECP256k1Extended
	// ED25519 is a 32-byte Edwards curve point.
	ED25519
	// SR25519 is a 32-byte Ristretto-encoded Schnorr public key (Substrate).
	SR25519
)

const (
	secp256k1Size         = 33
	secp256k1ExtendedSize = 65
	ed25519Size           = 32
	sr25519Size           = 32
)

// PublicKey is an immutable, validated public key tagged with its curve
// and encoding.
type PublicKey struct {
	Type Type
	Data []byte
}

// New validates data against the rules for typ and returns a PublicKey.
func New(typ Type, data []byte) (PublicKey, error) {
	if !isValidData(typ, data) {
		return PublicKey{}, fmt.Errorf("%w: type %d len %d", walleterr.ErrInvalidPublicKey, typ, len(data))
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return PublicKey{Type: typ, Data: cp}, nil
}

// FromSecp256k1 builds a SECP256k1Extended public key from a btcec public
// key, the representation every secp256k1-based chain address module
// consumes.
func FromSecp256k1(pub *btcec.PublicKey) (PublicKey, error) {
	return New(SECP256k1Extended, pub.SerializeUncompressed())
}

func isValidData(typ Type, data []byte) bool {
	switch typ {
	case SECP256k1:
		return len(data) == secp256k1Size && (data[0] == 0x02 || data[0] == 0x03)
	case SECP256k1Extended:
		return len(data) == secp256k1ExtendedSize && data[0] == 0x04
	case ED25519:
		return len(data) == ed25519Size
	case SR25519:
		return len(data) == sr25519Size
	default:
		return false
	}
}

// Hash returns Keccak256(prefix || data[skip:]), where skip is 1 when
// skipType is set (used by chains that hash only the curve point and
// discard the leading type byte, e.g. Ethereum's uncompressed-key
// addressing) and 0 otherwise.
func (k PublicKey) Hash(prefix []byte, skipType bool) []byte {
	start := 0
	if skipType {
		start = 1
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(prefix)
	h.Write(k.Data[start:])
	return h.Sum(nil)
}
