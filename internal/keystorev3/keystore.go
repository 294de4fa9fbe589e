// Package keystorev3 implements the Web3 Secret Storage ("Keystore V3")
// encryption envelope: scrypt or PBKDF2 key derivation, AES-128-CTR
// encryption, and a Keccak256 MAC. Grounded on the same pattern used by
// github.com/hyperledger/firefly-signer's internal/keystorev3 package and
// github.com/defiweb/go-eth's wallet key_json_v3.go, both retrieved
// alongside the teacher repo.
package keystorev3

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
	"golang.org/x/crypto/sha3"

	"github.com/vaultkit/walletengine/internal/walleterr"
)

// Cost presets for scrypt, mirroring the "light" and "standard" tiers the
// firefly-signer and go-ethereum keystores both expose.
const (
	StandardScryptN = 1 << 18
	StandardScryptP = 1
	LightScryptN    = 1 << 12
	LightScryptP    = 6

	scryptR     = 8
	scryptDKLen = 32

	saltLen = 32
	ivLen   = aes.BlockSize

	kdfScrypt = "scrypt"
	kdfPBKDF2 = "pbkdf2"
	cipherCTR = "aes-128-ctr"
)

// hexBytes (de)serializes as a plain hex string, the encoding the Keystore
// V3 JSON format uses for salt/iv/ciphertext/mac fields (no "0x" prefix).
type hexBytes []byte

func (h hexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

func (h *hexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	*h = b
	return nil
}

type cipherParams struct {
	IV hexBytes `json:"iv"`
}

type scryptParams struct {
	DKLen int      `json:"dklen"`
	N     int      `json:"n"`
	P     int      `json:"p"`
	R     int      `json:"r"`
	Salt  hexBytes `json:"salt"`
}

type pbkdf2Params struct {
	DKLen int      `json:"dklen"`
	C     int      `json:"c"`
	PRF   string   `json:"prf"`
	Salt  hexBytes `json:"salt"`
}

// CryptoJSON is the "crypto" object of a Keystore V3 envelope. KDFParams
// is kept as raw JSON and switched on KDF at decrypt time, since its shape
// depends on which KDF produced it.
type CryptoJSON struct {
	Cipher       string          `json:"cipher"`
	CipherText   hexBytes        `json:"ciphertext"`
	CipherParams cipherParams    `json:"cipherparams"`
	KDF          string          `json:"kdf"`
	KDFParams    json.RawMessage `json:"kdfparams"`
	MAC          hexBytes        `json:"mac"`
}

// KeyFile is a full Keystore V3 document: the encrypted payload plus its
// identifying metadata.
type KeyFile struct {
	Version int        `json:"version"`
	ID      string     `json:"id"`
	Crypto  CryptoJSON `json:"crypto"`
}

// DefaultScryptN and DefaultScryptP are this engine's default cost
// parameters for newly created stored keys (n=4096, r=8, p=6, dklen=32).
const (
	DefaultScryptN = 4096
	DefaultScryptP = 6
)

// New encrypts data with password using this engine's default scrypt
// parameters, producing the EncryptionParams payload a new StoredKey
// wraps around its key material.
func New(password string, data []byte) (KeyFile, error) {
	return EncryptScrypt(data, password, DefaultScryptN, DefaultScryptP)
}

// EncryptScrypt encrypts plaintext with password using scrypt(n, p) and
// returns a complete KeyFile. r and dklen are fixed at the package
// defaults, matching every scrypt-based Keystore V3 writer in the
// reference corpus.
func EncryptScrypt(plaintext []byte, password string, n, p int) (KeyFile, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return KeyFile{}, fmt.Errorf("%w: %v", walleterr.ErrCryptoBadRNG, err)
	}
	derivedKey, err := scrypt.Key([]byte(password), salt, n, scryptR, p, scryptDKLen)
	if err != nil {
		return KeyFile{}, fmt.Errorf("scrypt: %w", err)
	}

	iv := make([]byte, ivLen)
	if _, err := rand.Read(iv); err != nil {
		return KeyFile{}, fmt.Errorf("%w: %v", walleterr.ErrCryptoBadRNG, err)
	}

	cipherText, err := aesCTR(derivedKey[:16], iv, plaintext)
	if err != nil {
		return KeyFile{}, fmt.Errorf("aes-128-ctr: %w", err)
	}
	mac := computeMAC(derivedKey[16:32], cipherText)

	params, err := json.Marshal(scryptParams{DKLen: scryptDKLen, N: n, P: p, R: scryptR, Salt: salt})
	if err != nil {
		return KeyFile{}, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return KeyFile{}, fmt.Errorf("%w: %v", walleterr.ErrCryptoBadRNG, err)
	}

	return KeyFile{
		Version: 3,
		ID:      id.String(),
		Crypto: CryptoJSON{
			Cipher:       cipherCTR,
			CipherText:   cipherText,
			CipherParams: cipherParams{IV: iv},
			KDF:          kdfScrypt,
			KDFParams:    params,
			MAC:          mac,
		},
	}, nil
}

// Decrypt derives the KDF key from password, verifies the MAC before
// touching the ciphertext (constant-time comparison, so a wrong password
// never reaches the decrypt step), and returns the plaintext.
func (kf KeyFile) Decrypt(password string) ([]byte, error) {
	if kf.Crypto.Cipher != cipherCTR {
		return nil, fmt.Errorf("%w: %s", walleterr.ErrUnsupportedCipher, kf.Crypto.Cipher)
	}

	derivedKey, err := kf.Crypto.deriveKey(password)
	if err != nil {
		return nil, err
	}

	computedMAC := computeMAC(derivedKey[16:32], kf.Crypto.CipherText)
	if subtle.ConstantTimeCompare(computedMAC, kf.Crypto.MAC) != 1 {
		return nil, walleterr.ErrPasswordIncorrect
	}

	return aesCTR(derivedKey[:16], kf.Crypto.CipherParams.IV, kf.Crypto.CipherText)
}

func (c CryptoJSON) deriveKey(password string) ([]byte, error) {
	switch c.KDF {
	case kdfScrypt:
		var p scryptParams
		if err := json.Unmarshal(c.KDFParams, &p); err != nil {
			return nil, fmt.Errorf("scrypt params: %w", err)
		}
		return scrypt.Key([]byte(password), p.Salt, p.N, p.R, p.P, p.DKLen)
	case kdfPBKDF2:
		var p pbkdf2Params
		if err := json.Unmarshal(c.KDFParams, &p); err != nil {
			return nil, fmt.Errorf("pbkdf2 params: %w", err)
		}
		if p.PRF != "hmac-sha256" {
			return nil, fmt.Errorf("%w: prf %q", walleterr.ErrUnsupportedKDF, p.PRF)
		}
		return pbkdf2.Key([]byte(password), p.Salt, p.C, p.DKLen, sha256.New), nil
	default:
		return nil, fmt.Errorf("%w: %s", walleterr.ErrUnsupportedKDF, c.KDF)
	}
}

func aesCTR(key, iv, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)
	return out, nil
}

func computeMAC(keySlice, cipherText []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(keySlice)
	h.Write(cipherText)
	return h.Sum(nil)
}
