package coins

import "testing"

func TestGetKnownCoins(t *testing.T) {
	for _, id := range []string{"ethereum", "polkadot", "kusama", "tron"} {
		c, err := Get(id)
		if err != nil {
			t.Fatalf("Get(%q): %v", id, err)
		}
		if c.ID != id {
			t.Errorf("Get(%q).ID = %q", id, c.ID)
		}
	}
}

func TestGetUnknownCoin(t *testing.T) {
	if _, err := Get("doesnotexist"); err == nil {
		t.Fatal("expected error for unknown coin id")
	}
}

func TestEqualByIDOnly(t *testing.T) {
	a, err := Get("ethereum")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b := a
	b.Name = "renamed"
	if !a.Equal(b) {
		t.Error("coins with the same ID but different Name should be Equal")
	}

	c, err := Get("tron")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a.Equal(c) {
		t.Error("coins with different IDs should not be Equal")
	}
}

func TestGetValueAndXPub(t *testing.T) {
	dot, err := Get("polkadot")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, ok := dot.GetValue("ss58_prefix"); !ok {
		t.Error("expected ss58_prefix in polkadot's all_info")
	}
	if _, ok := dot.XPub(); ok {
		t.Error("polkadot (sr25519) should not report an xpub")
	}

	eth, err := Get("ethereum")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, ok := eth.XPub(); !ok {
		t.Error("ethereum (secp256k1) should report an xpub")
	}
}
