// Package bip39 implements mnemonic generation, validation, and seed
// derivation per BIP-39, building on github.com/tyler-smith/go-bip39 for
// the wordlist and checksum logic — the same library the teacher and
// every HD-wallet example repo in the reference corpus depends on.
package bip39

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"

	"github.com/vaultkit/walletengine/internal/walleterr"
)

// Mnemonic is a validated BIP-39 mnemonic phrase together with the entropy
// it encodes and the seed derived from it. Words is stored as UTF-8 text;
// the engine never normalizes or re-encodes it, since password-based
// decryption of a StoredKey's payload yields these same UTF-8 bytes back.
type Mnemonic struct {
	Words    string
	Entropy  []byte
	Seed     []byte
	language string
}

// Generate creates a new random mnemonic with wordCount words (12, 15, 18,
// 21, or 24) and derives its seed using passphrase (may be empty).
func Generate(wordCount int, passphrase string) (Mnemonic, error) {
	entropyBits, err := entropyBitsForWordCount(wordCount)
	if err != nil {
		return Mnemonic{}, err
	}
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return Mnemonic{}, fmt.Errorf("generate entropy: %w", err)
	}
	words, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return Mnemonic{}, fmt.Errorf("generate mnemonic: %w", err)
	}
	return New(words, passphrase)
}

// New validates an existing mnemonic phrase and derives its seed using
// passphrase (may be empty).
func New(words string, passphrase string) (Mnemonic, error) {
	if !IsValid(words) {
		return Mnemonic{}, walleterr.ErrInvalidMnemonic
	}
	entropy, err := bip39.EntropyFromMnemonic(words)
	if err != nil {
		return Mnemonic{}, fmt.Errorf("%w: %v", walleterr.ErrInvalidMnemonic, err)
	}
	seed := bip39.NewSeed(words, passphrase)
	return Mnemonic{Words: words, Entropy: entropy, Seed: seed, language: "english"}, nil
}

// IsValid reports whether words is a checksum-valid BIP-39 mnemonic drawn
// from the English wordlist.
func IsValid(words string) bool {
	return bip39.IsMnemonicValid(words)
}

func entropyBitsForWordCount(wordCount int) (int, error) {
	switch wordCount {
	case 12:
		return 128, nil
	case 15:
		return 160, nil
	case 18:
		return 192, nil
	case 21:
		return 224, nil
	case 24:
		return 256, nil
	default:
		return 0, fmt.Errorf("%w: unsupported word count %d", walleterr.ErrInvalidMnemonic, wordCount)
	}
}
