// Package wallet implements the HD wallet derivation pipeline and the
// StoredKey lifecycle: create/import/persist/export, account management,
// and password updates. Grounded on the original Rust wallet::hd_wallet
// and wallet::stored_key modules, reimplemented against the teacher's
// secp256k1/BIP-32 plumbing and the corpus's Keystore V3 pattern.
package wallet

import (
	"fmt"
	"log/slog"

	// Blank-imported so their init() functions register with the coin
	// dispatcher before any DeriveAddress call runs.
	_ "github.com/vaultkit/walletengine/internal/chains/ethereum"
	_ "github.com/vaultkit/walletengine/internal/chains/polkadot"
	_ "github.com/vaultkit/walletengine/internal/chains/tron"

	"github.com/vaultkit/walletengine/internal/chains"
	"github.com/vaultkit/walletengine/internal/coins"
	wcrypto "github.com/vaultkit/walletengine/internal/crypto"
	"github.com/vaultkit/walletengine/internal/crypto/bip32"
	"github.com/vaultkit/walletengine/internal/crypto/bip39"
	"github.com/vaultkit/walletengine/internal/crypto/publickey"
	"github.com/vaultkit/walletengine/internal/derivation"
	"github.com/vaultkit/walletengine/internal/walleterr"
)

var logger = slog.Default().With("component", "wallet")

// HdWallet wraps a BIP-39 mnemonic and the seed derived from it, and
// derives per-coin keys and addresses on demand. It holds no account
// bookkeeping of its own — that lives in StoredKey, which owns zero or
// more derived accounts.
type HdWallet struct {
	mnemonic bip39.Mnemonic
}

// New creates an HdWallet by generating a fresh wordCount-word mnemonic.
// passphrase is the BIP-39 passphrase (the "25th word"), independent of
// any StoredKey encryption password.
func New(wordCount int, passphrase string) (HdWallet, error) {
	m, err := bip39.Generate(wordCount, passphrase)
	if err != nil {
		return HdWallet{}, err
	}
	return HdWallet{mnemonic: m}, nil
}

// NewWithMnemonic builds an HdWallet from an existing mnemonic phrase.
func NewWithMnemonic(mnemonic, passphrase string) (HdWallet, error) {
	m, err := bip39.New(mnemonic, passphrase)
	if err != nil {
		return HdWallet{}, err
	}
	return HdWallet{mnemonic: m}, nil
}

// Mnemonic returns the wallet's mnemonic phrase.
func (w HdWallet) Mnemonic() string {
	return w.mnemonic.Words
}

// GetKey derives the private key for coin at path.
func (w HdWallet) GetKey(coin coins.Coin, path derivation.Path) (wcrypto.PrivateKey, error) {
	curve, err := wcrypto.CurveFromString(coin.Curve)
	if err != nil {
		return wcrypto.PrivateKey{}, err
	}
	node, err := bip32.DeriveNode(w.mnemonic.Seed, path, curve)
	if err != nil {
		return wcrypto.PrivateKey{}, fmt.Errorf("derive node: %w", err)
	}
	return wcrypto.NewPrivateKey(curve, node.PrivateKeyBytes)
}

// GetAddressForCoin derives the address for coin at its catalogue default
// derivation path.
func (w HdWallet) GetAddressForCoin(coin coins.Coin) (string, error) {
	return w.GetAddressForCoinOfPath(coin, coin.DerivationPath)
}

// GetAddressForCoinOfPath derives the address for coin at an explicit
// derivation path, overriding the catalogue default (used when an
// account needs a non-default index).
func (w HdWallet) GetAddressForCoinOfPath(coin coins.Coin, path string) (string, error) {
	parsed, err := derivation.Parse(path)
	if err != nil {
		return "", err
	}
	privKey, err := w.GetKey(coin, parsed)
	if err != nil {
		return "", err
	}
	pkType, err := publicKeyTypeFor(coin)
	if err != nil {
		return "", err
	}
	pubKey, err := privKey.PublicKeyFor(pkType)
	if err != nil {
		return "", fmt.Errorf("public key: %w", err)
	}
	addr, err := chains.DeriveAddress(coin, pubKey)
	if err != nil {
		return "", err
	}
	logger.Debug("derived address", "coin", coin.ID, "path", path)
	return addr, nil
}

// GetExtendedPublicKey returns the xpub for coin at its default path, or
// "" for coins whose curve has no extended-public-key concept.
func (w HdWallet) GetExtendedPublicKey(coin coins.Coin) string {
	return w.GetExtendedPublicKeyOfPath(coin, coin.DerivationPath)
}

// GetExtendedPublicKeyOfPath returns the xpub for coin at an explicit
// path, or "" when the coin has no xpub (non-secp256k1 curves).
func (w HdWallet) GetExtendedPublicKeyOfPath(coin coins.Coin, path string) string {
	if _, ok := coin.XPub(); !ok {
		return ""
	}
	parsed, err := derivation.Parse(path)
	if err != nil {
		return ""
	}
	curve, err := wcrypto.CurveFromString(coin.Curve)
	if err != nil {
		return ""
	}
	node, err := bip32.DeriveNode(w.mnemonic.Seed, parsed, curve)
	if err != nil {
		return ""
	}
	return node.ExtendedPublicKey()
}

func publicKeyTypeFor(coin coins.Coin) (publickey.Type, error) {
	switch coin.PublicKeyType {
	case "secp256k1":
		return publickey.SECP256k1, nil
	case "secp256k1Extended":
		return publickey.SECP256k1Extended, nil
	case "ed25519":
		return publickey.ED25519, nil
	case "sr25519":
		return publickey.SR25519, nil
	default:
		return 0, fmt.Errorf("%w: public key type %q", walleterr.ErrInvalidPublicKey, coin.PublicKeyType)
	}
}
