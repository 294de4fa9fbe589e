package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ScryptN != 4096 || cfg.ScryptP != 6 {
		t.Errorf("Default() scrypt params = (%d, %d), want (4096, 6)", cfg.ScryptN, cfg.ScryptP)
	}
	if cfg.DefaultMnemonicWordCount != 12 {
		t.Errorf("Default() word count = %d, want 12", cfg.DefaultMnemonicWordCount)
	}
}

func TestFromEnvOverride(t *testing.T) {
	t.Setenv("KEYSTORE_SCRYPT_N", "8192")
	t.Setenv("KEYSTORE_MNEMONIC_WORD_COUNT", "24")

	cfg := FromEnv()
	if cfg.ScryptN != 8192 {
		t.Errorf("ScryptN = %d, want 8192", cfg.ScryptN)
	}
	if cfg.DefaultMnemonicWordCount != 24 {
		t.Errorf("DefaultMnemonicWordCount = %d, want 24", cfg.DefaultMnemonicWordCount)
	}
	if cfg.ScryptP != 6 {
		t.Errorf("ScryptP = %d, want unchanged default 6", cfg.ScryptP)
	}
}
