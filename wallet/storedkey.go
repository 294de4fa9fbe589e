package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/vaultkit/walletengine/internal/chains"
	"github.com/vaultkit/walletengine/internal/coins"
	wcrypto "github.com/vaultkit/walletengine/internal/crypto"
	"github.com/vaultkit/walletengine/internal/crypto/bip39"
	"github.com/vaultkit/walletengine/internal/derivation"
	"github.com/vaultkit/walletengine/internal/keystorev3"
	"github.com/vaultkit/walletengine/internal/walleterr"
)

// Type tags which kind of secret a StoredKey encrypts: a single raw
// private key, or a mnemonic from which a whole HD tree is derivable.
// Which operations are legal on a StoredKey is gated by this tag — e.g.
// GetWallet only makes sense for Mnemonic.
type Type int

const (
	PrivateKeyType Type = iota + 1
	MnemonicType
)

// StoredKey is an encrypted key container with zero or more derived
// accounts. It owns no plaintext key material outside the lifetime of a
// single Decrypt call.
type StoredKey struct {
	Type     Type
	ID       string
	Name     string
	payload  keystorev3.KeyFile
	accounts []Account
}

// CreateWithPrivateKey encrypts privateKeyHex under password and returns
// a StoredKey with no accounts yet.
func CreateWithPrivateKey(name, password, privateKeyHex string) (*StoredKey, error) {
	raw, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", walleterr.ErrInvalidPrivateKey, err)
	}
	return createWithData(PrivateKeyType, name, password, raw)
}

// CreateWithPrivateKeyAndDefaultAddress encrypts privateKeyHex under
// password and immediately derives and stores the default account for
// coin.
func CreateWithPrivateKeyAndDefaultAddress(name, password, privateKeyHex string, coin coins.Coin) (*StoredKey, error) {
	raw, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", walleterr.ErrInvalidPrivateKey, err)
	}
	curve, err := wcrypto.CurveFromString(coin.Curve)
	if err != nil {
		return nil, err
	}
	if !wcrypto.IsValid(raw, curve) {
		return nil, walleterr.ErrInvalidPrivateKey
	}

	sk, err := CreateWithPrivateKey(name, password, privateKeyHex)
	if err != nil {
		return nil, err
	}

	privKey, err := wcrypto.NewPrivateKey(curve, raw)
	if err != nil {
		return nil, err
	}
	pkType, err := publicKeyTypeFor(coin)
	if err != nil {
		return nil, err
	}
	pubKey, err := privKey.PublicKeyFor(pkType)
	if err != nil {
		return nil, err
	}
	addr, err := chains.DeriveAddress(coin, pubKey)
	if err != nil {
		return nil, err
	}

	sk.accounts = append(sk.accounts, Account{
		Address:        addr,
		Coin:           coin,
		DerivationPath: coin.DerivationPath,
	})
	return sk, nil
}

// CreateWithMnemonic encrypts an existing, checksum-valid mnemonic under
// password.
func CreateWithMnemonic(name, password, mnemonic string) (*StoredKey, error) {
	if !bip39.IsValid(mnemonic) {
		return nil, walleterr.ErrInvalidMnemonic
	}
	return createWithData(MnemonicType, name, password, []byte(mnemonic))
}

// CreateWithMnemonicRandom generates a fresh wordCount-word mnemonic and
// encrypts it under password.
//
// The BIP-39 passphrase used to seed the HD tree is always empty here,
// independent of password. This mirrors the original implementation's
// HdWallet::new(word_count, "") call inside create_with_mnemonic_random —
// password encrypts the stored mnemonic text, it is never fed into BIP-39
// seed derivation. See DESIGN.md for the alternative considered.
func CreateWithMnemonicRandom(name, password string, wordCount int) (*StoredKey, error) {
	w, err := New(wordCount, "")
	if err != nil {
		return nil, err
	}
	return createWithData(MnemonicType, name, password, []byte(w.Mnemonic()))
}

// CreateWithMnemonicRandomAddDefaultAddress generates a fresh mnemonic,
// encrypts it, and derives coin's default account from it in one step.
func CreateWithMnemonicRandomAddDefaultAddress(name, password string, wordCount int, coin coins.Coin) (*StoredKey, error) {
	w, err := New(wordCount, "")
	if err != nil {
		return nil, err
	}
	sk, err := CreateWithMnemonic(name, password, w.Mnemonic())
	if err != nil {
		return nil, err
	}
	if err := sk.addAccountFromWallet(w, coin); err != nil {
		return nil, err
	}
	return sk, nil
}

func createWithData(typ Type, name, password string, data []byte) (*StoredKey, error) {
	payload, err := keystorev3.New(password, data)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", walleterr.ErrCryptoBadRNG, err)
	}
	return &StoredKey{
		Type:    typ,
		ID:      id.String(),
		Name:    name,
		payload: payload,
	}, nil
}

// GetWallet decrypts the mnemonic payload under password and returns the
// resulting HdWallet. Only legal on a Mnemonic-type StoredKey.
func (sk *StoredKey) GetWallet(password string) (HdWallet, error) {
	if sk.Type != MnemonicType {
		return HdWallet{}, walleterr.ErrInvalidAccountRequested
	}
	mnemonicBytes, err := sk.payload.Decrypt(password)
	if err != nil {
		return HdWallet{}, err
	}
	return NewWithMnemonic(string(mnemonicBytes), "")
}

// DecryptPrivateKey decrypts the raw private key payload under password.
// Only legal on a PrivateKey-type StoredKey.
func (sk *StoredKey) DecryptPrivateKey(password string) ([]byte, error) {
	if sk.Type != PrivateKeyType {
		return nil, walleterr.ErrInvalidAccountRequested
	}
	return sk.payload.Decrypt(password)
}

// AccountsCount returns the number of accounts currently attached.
func (sk *StoredKey) AccountsCount() int {
	return len(sk.accounts)
}

// Account returns the account at index.
func (sk *StoredKey) Account(index int) (Account, error) {
	if index < 0 || index >= len(sk.accounts) {
		return Account{}, walleterr.ErrIndexOutOfBounds
	}
	return sk.accounts[index], nil
}

// AllAccounts returns every attached account.
func (sk *StoredKey) AllAccounts() []Account {
	out := make([]Account, len(sk.accounts))
	copy(out, sk.accounts)
	return out
}

// AccountOfCoin returns the account bound to coin, if any.
func (sk *StoredKey) AccountOfCoin(coin coins.Coin) (Account, bool) {
	for _, a := range sk.accounts {
		if a.sameCoin(coin) {
			return a, true
		}
	}
	return Account{}, false
}

// GetOrCreateAccountForCoin returns the existing account for coin if one
// exists, deriving and filling in its address if it was previously
// created with no wallet available. If no account exists yet and wallet
// is non-nil, a new one is derived and appended. If wallet is nil and no
// account exists, it returns ok=false rather than an error, matching the
// original's "no wallet, no matching account" no-op case.
func (sk *StoredKey) GetOrCreateAccountForCoin(coin coins.Coin, wallet *HdWallet) (Account, bool, error) {
	if wallet == nil {
		a, ok := sk.AccountOfCoin(coin)
		return a, ok, nil
	}

	for i, a := range sk.accounts {
		if a.sameCoin(coin) {
			if a.Address == "" {
				addr, err := wallet.GetAddressForCoin(coin)
				if err != nil {
					return Account{}, false, err
				}
				sk.accounts[i].Address = addr
			}
			return sk.accounts[i], true, nil
		}
	}

	if err := sk.addAccountFromWallet(*wallet, coin); err != nil {
		return Account{}, false, err
	}
	return sk.accounts[len(sk.accounts)-1], true, nil
}

func (sk *StoredKey) addAccountFromWallet(w HdWallet, coin coins.Coin) error {
	path, err := derivation.Parse(coin.DerivationPath)
	if err != nil {
		return err
	}
	addr, err := w.GetAddressForCoin(coin)
	if err != nil {
		return err
	}
	sk.accounts = append(sk.accounts, Account{
		Address:           addr,
		Coin:              coin,
		DerivationPath:    path.String(),
		ExtendedPublicKey: w.GetExtendedPublicKey(coin),
	})
	return nil
}
