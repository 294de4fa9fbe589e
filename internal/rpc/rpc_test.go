package rpc

import (
	"encoding/json"
	"testing"

	"github.com/vaultkit/walletengine/internal/storage"
)

func newHandler() Handler {
	return Handler{Store: storage.NewMemoryStoredKeyStore()}
}

func TestHandleRequestUnknownType(t *testing.T) {
	h := newHandler()
	out := h.HandleRequest([]byte(`{}`))

	var resp Response
	if err := json.Unmarshal(out, &resp); err != nil {
		t.Fatalf("Unmarshal response: %v", err)
	}
	if resp.OK {
		t.Fatal("expected ok=false for an empty request")
	}
	if resp.ErrorCode != "-1" {
		t.Errorf("ErrorCode = %q, want -1", resp.ErrorCode)
	}
}

func TestHandleRequestMalformedJSON(t *testing.T) {
	h := newHandler()
	out := h.HandleRequest([]byte(`not json`))

	var resp Response
	if err := json.Unmarshal(out, &resp); err != nil {
		t.Fatalf("Unmarshal response: %v", err)
	}
	if resp.ErrorCode != "-1" {
		t.Errorf("ErrorCode = %q, want -1", resp.ErrorCode)
	}
}

func TestHandleRequestImportMnemonic(t *testing.T) {
	h := newHandler()
	req := Request{
		Type: "import_mnemonic",
		ImportMnemonic: &ImportMnemonicParams{
			Name:     "acct",
			Password: "pw",
			Mnemonic: "team engine square letter hero song dizzy scrub tornado fabric divert saddle",
			CoinID:   "ethereum",
		},
	}
	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal request: %v", err)
	}

	out := h.HandleRequest(raw)

	var resp Response
	if err := json.Unmarshal(out, &resp); err != nil {
		t.Fatalf("Unmarshal response: %v", err)
	}
	if !resp.OK {
		t.Fatalf("response not ok: %s", resp.ErrorMsg)
	}
	if resp.StoredKey == nil {
		t.Fatal("expected a stored_key payload")
	}
}

func TestHandleRequestImportMnemonicUnknownCoin(t *testing.T) {
	h := newHandler()
	req := Request{
		Type: "import_mnemonic",
		ImportMnemonic: &ImportMnemonicParams{
			Name:     "acct",
			Password: "pw",
			Mnemonic: "team engine square letter hero song dizzy scrub tornado fabric divert saddle",
			CoinID:   "does-not-exist",
		},
	}
	raw, _ := json.Marshal(req)

	out := h.HandleRequest(raw)

	var resp Response
	if err := json.Unmarshal(out, &resp); err != nil {
		t.Fatalf("Unmarshal response: %v", err)
	}
	if resp.OK {
		t.Fatal("expected failure for unknown coin id")
	}
}
