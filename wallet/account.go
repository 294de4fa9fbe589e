package wallet

import "github.com/vaultkit/walletengine/internal/coins"

// Account binds a coin to the address and (when applicable) extended
// public key derived for it within one StoredKey.
type Account struct {
	Address           string     `json:"address"`
	Coin              coins.Coin `json:"coin"`
	DerivationPath    string     `json:"derivation_path"`
	ExtendedPublicKey string     `json:"extended_public_key"`
}

// sameCoin reports whether a belongs to the same catalogue coin as coin.
// Account equality is scoped to Coin.ID alone, per the original
// chain-common::Coin PartialEq implementation.
func (a Account) sameCoin(coin coins.Coin) bool {
	return a.Coin.Equal(coin)
}
