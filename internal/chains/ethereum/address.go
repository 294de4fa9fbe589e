// Package ethereum implements Ethereum's EIP-55 checksummed addressing,
// grounded on the original Rust chain/ethereum/src/address.rs (which
// requires a SECP256k1Extended key, hashes everything but the leading
// 0x04 byte, and takes the last 20 bytes) and on the teacher's eth.go,
// which performs the same Keccak256-last-20-bytes derivation.
package ethereum

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/vaultkit/walletengine/internal/chains"
	"github.com/vaultkit/walletengine/internal/coins"
	"github.com/vaultkit/walletengine/internal/crypto/publickey"
	"github.com/vaultkit/walletengine/internal/walleterr"
)

func init() {
	chains.Register("Ethereum", Deriver{})
}

// Deriver implements chains.AddressDeriver for Ethereum-family chains
// (Ethereum itself, and any EVM chain reusing its addressing scheme).
type Deriver struct{}

// DeriveAddress computes the EIP-55 checksummed address for pubKey, which
// must be a SECP256k1Extended (uncompressed) public key.
func (Deriver) DeriveAddress(_ coins.Coin, pubKey publickey.PublicKey, _, _ []byte) (string, error) {
	if pubKey.Type != publickey.SECP256k1Extended {
		return "", walleterr.ErrNotSupportedPublicKeyType
	}
	hash := pubKey.Hash(nil, true) // skip the leading 0x04 type byte
	addr := hash[len(hash)-20:]
	return checksum(addr), nil
}

// checksum renders addr as an EIP-55 mixed-case checksummed hex address.
func checksum(addr []byte) string {
	lower := hex.EncodeToString(addr)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	hashed := h.Sum(nil)
	hashHex := hex.EncodeToString(hashed)

	var b strings.Builder
	b.WriteString("0x")
	for i, c := range lower {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
			continue
		}
		// hashHex[i] in [8, f] means this hex digit is upper-cased.
		if hashHex[i] >= '8' {
			b.WriteRune(c - 32) // to upper
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// String formats raw address bytes as lowercase 0x-prefixed hex, without
// going through DeriveAddress and without the EIP-55 checksum.
func String(addr []byte) string {
	return fmt.Sprintf("0x%s", hex.EncodeToString(addr))
}
