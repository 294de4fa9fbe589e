// Package config holds the tunable parameters of the keystore engine, in
// the teacher's Default()/FromEnv() style: a plain struct with sane
// defaults, overridable one field at a time from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds all configurable parameters for the keystore engine.
type Config struct {
	// ScryptN and ScryptP are scrypt cost parameters; their defaults equal
	// keystorev3.DefaultScryptN/DefaultScryptP. They are not passed to the
	// encryption step: a newly created StoredKey is always encrypted with
	// keystorev3's own constants (r=8, dklen=32), so overriding these
	// fields changes only the values cmd/walletengine logs at startup.
	ScryptN int
	ScryptP int

	// DefaultMnemonicWordCount is a default mnemonic length. No constructor
	// reads it: CreateWithMnemonicRandom-style constructors always take an
	// explicit word count from the caller.
	DefaultMnemonicWordCount int

	// MaxRequestFrameBytes bounds the size of a single RPC request frame
	// the wire dispatch layer will read before rejecting it.
	MaxRequestFrameBytes int
}

// Default returns a Config populated with this engine's default values:
// scrypt at n=4096/p=6 (the "light" cost tier), 12-word mnemonics.
func Default() Config {
	return Config{
		ScryptN:                  4096,
		ScryptP:                  6,
		DefaultMnemonicWordCount: 12,
		MaxRequestFrameBytes:     1 << 20,
	}
}

// FromEnv returns a Config populated from environment variables, falling
// back to defaults for unset or unparsable values.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("KEYSTORE_SCRYPT_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ScryptN = n
		}
	}
	if v := os.Getenv("KEYSTORE_SCRYPT_P"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ScryptP = n
		}
	}
	if v := os.Getenv("KEYSTORE_MNEMONIC_WORD_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultMnemonicWordCount = n
		}
	}
	if v := os.Getenv("KEYSTORE_MAX_REQUEST_FRAME_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRequestFrameBytes = n
		}
	}

	return cfg
}
