// Package walleterr defines the sentinel error values shared across the
// keystore engine. Callers compare against these with errors.Is; every
// wrapping site uses fmt.Errorf("...: %w", err) so the sentinel survives
// through the call stack.
package walleterr

import "errors"

var (
	// ErrInvalidMnemonic is returned when a mnemonic fails BIP-39 checksum
	// validation or uses words outside the configured wordlist.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidPrivateKey is returned when private key bytes are the wrong
	// length or fail curve-specific validation (e.g. not a valid secp256k1
	// scalar).
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey is returned when public key bytes are the wrong
	// length or carry an unrecognized type prefix.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidDerivationPath is returned when a derivation path string
	// cannot be parsed, e.g. missing the leading "m" or a non-numeric index.
	ErrInvalidDerivationPath = errors.New("invalid derivation path")

	// ErrPasswordIncorrect is returned when a keystore MAC check fails,
	// meaning the supplied password does not match the one used to encrypt.
	ErrPasswordIncorrect = errors.New("password incorrect")

	// ErrUnsupportedKDF is returned when a keystore's "kdf" field names a
	// key-derivation function this engine does not implement.
	ErrUnsupportedKDF = errors.New("unsupported kdf")

	// ErrUnsupportedCipher is returned when a keystore's "cipher" field
	// names a cipher this engine does not implement.
	ErrUnsupportedCipher = errors.New("unsupported cipher")

	// ErrNotSupportedPublicKeyType is returned when a chain address module
	// is asked to derive an address from a public key type it cannot
	// consume (e.g. an SR25519 key handed to the Ethereum module).
	ErrNotSupportedPublicKeyType = errors.New("public key type not supported by this chain")

	// ErrUnknownCoin is returned when a coin id has no entry in the coin
	// catalogue.
	ErrUnknownCoin = errors.New("unknown coin")

	// ErrNoDispatcherForBlockchain is returned when the coin catalogue names
	// a blockchain with no registered address dispatcher.
	ErrNoDispatcherForBlockchain = errors.New("no address dispatcher registered for blockchain")

	// ErrInvalidAccountRequested is returned when an operation that only
	// makes sense for one StoredKey type (e.g. GetWallet, which requires a
	// mnemonic-backed key) is called on a key of the other type.
	ErrInvalidAccountRequested = errors.New("invalid account requested for this stored key type")

	// ErrIndexOutOfBounds is returned when an account index is requested
	// that is outside the stored key's account list.
	ErrIndexOutOfBounds = errors.New("account index out of bounds")

	// ErrCryptoBadRNG signals the process-wide CSPRNG could not be read;
	// the engine never falls back to a weaker source.
	ErrCryptoBadRNG = errors.New("failed to read from system entropy source")
)
