package bip39

import "testing"

func TestNewValidatesChecksum(t *testing.T) {
	cases := []struct {
		name    string
		words   string
		wantErr bool
	}{
		{"valid twelve word", "team engine square letter hero song dizzy scrub tornado fabric divert saddle", false},
		{"bad checksum", "team engine square letter hero song dizzy scrub tornado fabric divert divert", true},
		{"unknown word", "notaword engine square letter hero song dizzy scrub tornado fabric divert saddle", true},
		{"empty", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.words, "")
			if (err != nil) != tc.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tc.words, err, tc.wantErr)
			}
		})
	}
}

func TestNewDeterministicSeed(t *testing.T) {
	words := "team engine square letter hero song dizzy scrub tornado fabric divert saddle"

	m1, err := New(words, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m2, err := New(words, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if string(m1.Seed) != string(m2.Seed) {
		t.Fatal("same mnemonic+passphrase produced different seeds")
	}

	m3, err := New(words, "non-empty")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if string(m1.Seed) == string(m3.Seed) {
		t.Fatal("different passphrases produced the same seed")
	}
}

func TestGenerateWordCounts(t *testing.T) {
	for _, wc := range []int{12, 15, 18, 21, 24} {
		m, err := Generate(wc, "")
		if err != nil {
			t.Fatalf("Generate(%d): %v", wc, err)
		}
		if !IsValid(m.Words) {
			t.Fatalf("Generate(%d) produced an invalid mnemonic", wc)
		}
	}

	if _, err := Generate(13, ""); err == nil {
		t.Fatal("expected error for unsupported word count")
	}
}
