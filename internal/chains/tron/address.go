// Package tron implements TRON's Base58Check addressing: 0x41 || last 20
// bytes of Keccak256(uncompressed pubkey[1:]), the same hash TRON shares
// with Ethereum but with a TRON-specific version byte and Base58Check
// instead of hex. Grounded on the teacher's trx.go and on
// not-for-prod-crypto/tron.go, both of which derive TRON addresses this
// way.
package tron

import (
	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/vaultkit/walletengine/internal/chains"
	"github.com/vaultkit/walletengine/internal/coins"
	"github.com/vaultkit/walletengine/internal/crypto/publickey"
	"github.com/vaultkit/walletengine/internal/walleterr"
)

const versionByte = 0x41

func init() {
	chains.Register("Tron", Deriver{})
}

// Deriver implements chains.AddressDeriver for TRON.
type Deriver struct{}

// DeriveAddress computes the Base58Check TRON address for pubKey, which
// must be a SECP256k1Extended public key.
func (Deriver) DeriveAddress(_ coins.Coin, pubKey publickey.PublicKey, _, _ []byte) (string, error) {
	if pubKey.Type != publickey.SECP256k1Extended {
		return "", walleterr.ErrNotSupportedPublicKeyType
	}
	hash := pubKey.Hash(nil, true)
	return base58.CheckEncode(hash[len(hash)-20:], versionByte), nil
}
