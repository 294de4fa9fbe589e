package keystorev3

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("team engine square letter hero song dizzy scrub tornado fabric divert saddle")

	kf, err := EncryptScrypt(plaintext, "correct horse", LightScryptN, LightScryptP)
	if err != nil {
		t.Fatalf("EncryptScrypt: %v", err)
	}

	got, err := kf.Decrypt("correct horse")
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Decrypt() = %q, want %q", got, plaintext)
	}
}

func TestDecryptWrongPassword(t *testing.T) {
	kf, err := EncryptScrypt([]byte("secret"), "correct horse", LightScryptN, LightScryptP)
	if err != nil {
		t.Fatalf("EncryptScrypt: %v", err)
	}
	if _, err := kf.Decrypt("battery staple"); err == nil {
		t.Fatal("expected error decrypting with wrong password")
	}
}

func TestMarshalUnmarshalJSONRoundTrip(t *testing.T) {
	kf, err := New("pw", []byte("payload"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raw, err := json.Marshal(kf)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out KeyFile
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	plain, err := out.Decrypt("pw")
	if err != nil {
		t.Fatalf("Decrypt after round trip: %v", err)
	}
	if string(plain) != "payload" {
		t.Fatalf("Decrypt() = %q, want %q", plain, "payload")
	}
}

func TestDecryptPBKDF2(t *testing.T) {
	// PBKDF2 keystores are import-only in this engine (New always writes
	// scrypt); this exercises the decrypt-side pbkdf2 branch against a
	// hand-built envelope whose PRF is hmac-sha1, which the engine does
	// not support (only hmac-sha256 is accepted), so Decrypt must fail.
	kf, err := EncryptScrypt([]byte("x"), "pw", LightScryptN, LightScryptP)
	if err != nil {
		t.Fatalf("EncryptScrypt: %v", err)
	}
	kf.Crypto.KDF = kdfPBKDF2
	params, _ := json.Marshal(pbkdf2Params{DKLen: scryptDKLen, C: 1, PRF: "hmac-sha1", Salt: []byte("salt")})
	kf.Crypto.KDFParams = params

	if _, err := kf.Decrypt("pw"); err == nil {
		t.Fatal("expected unsupported PRF error")
	}
}
