// Package rpc is the engine's single foreign-function boundary: one
// byte-in/byte-out entry point dispatching a tagged-union JSON request to
// the StoredKey/HdWallet operations, and encoding the result back.
// Grounded on the original interface/src/lib.rs (request(input) -> Vec<u8>)
// and interface/src/handler.rs (match on request variant), with JSON
// standing in for the original's protobuf framing — see SPEC_FULL.md.
package rpc

import (
	"encoding/json"
	"log/slog"

	"github.com/vaultkit/walletengine/internal/coins"
	"github.com/vaultkit/walletengine/internal/storage"
	"github.com/vaultkit/walletengine/wallet"
)

var logger = slog.Default().With("component", "rpc")

// Request is the tagged union of supported operations. Type selects which
// of the pointer fields is populated ("import_private_key",
// "import_mnemonic" or "get_account", matching the field's JSON name);
// exactly one should be non-nil. A request whose Type is unknown or whose
// selected field is nil is rejected.
type Request struct {
	Type             string                  `json:"type"`
	ImportPrivateKey *ImportPrivateKeyParams `json:"import_private_key,omitempty"`
	ImportMnemonic   *ImportMnemonicParams   `json:"import_mnemonic,omitempty"`
	GetAccount       *GetAccountParams       `json:"get_account,omitempty"`
}

// ImportPrivateKeyParams creates a StoredKey from a raw hex private key
// and immediately derives its default account for Coin.
type ImportPrivateKeyParams struct {
	Name       string `json:"name"`
	Password   string `json:"password"`
	PrivateKey string `json:"private_key"`
	CoinID     string `json:"coin_id"`
}

// ImportMnemonicParams creates a StoredKey from an existing mnemonic and
// derives its default account for Coin.
type ImportMnemonicParams struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Mnemonic string `json:"mnemonic"`
	CoinID   string `json:"coin_id"`
}

// GetAccountParams looks up a previously stored account.
type GetAccountParams struct {
	StoredKeyID string `json:"stored_key_id"`
	CoinID      string `json:"coin_id"`
}

// Response is the tagged union of results. error_code = "-1" marks any
// failure (unknown request type, invalid params, or a propagated engine
// error), matching the original's blanket error-response behavior for
// everything it did not special-case.
type Response struct {
	OK        bool            `json:"ok"`
	StoredKey json.RawMessage `json:"stored_key,omitempty"`
	Account   *wallet.Account `json:"account,omitempty"`
	ErrorCode string          `json:"error_code,omitempty"`
	ErrorMsg  string          `json:"error_msg,omitempty"`
}

// Handler dispatches decoded requests against a StoredKeyStore.
type Handler struct {
	Store storage.StoredKeyStore
}

// HandleRequest is the engine's foreign-function entry point: JSON bytes
// in, JSON bytes out, never an error return (every failure becomes an
// error Response so the caller always has something to decode).
func (h Handler) HandleRequest(input []byte) []byte {
	var req Request
	if err := json.Unmarshal(input, &req); err != nil {
		return mustEncode(errorResponse(err))
	}

	resp, err := h.dispatch(req)
	if err != nil {
		logger.Warn("request failed", "type", req.Type, "error", err)
		return mustEncode(errorResponse(err))
	}
	return mustEncode(resp)
}

func (h Handler) dispatch(req Request) (Response, error) {
	switch {
	case req.Type == "import_private_key" && req.ImportPrivateKey != nil:
		return h.handleImportPrivateKey(*req.ImportPrivateKey)
	case req.Type == "import_mnemonic" && req.ImportMnemonic != nil:
		return h.handleImportMnemonic(*req.ImportMnemonic)
	case req.Type == "get_account" && req.GetAccount != nil:
		return h.handleGetAccount(*req.GetAccount)
	default:
		return Response{}, errUnknownRequest
	}
}

func (h Handler) handleImportPrivateKey(p ImportPrivateKeyParams) (Response, error) {
	coin, err := coins.Get(p.CoinID)
	if err != nil {
		return Response{}, err
	}
	sk, err := wallet.CreateWithPrivateKeyAndDefaultAddress(p.Name, p.Password, p.PrivateKey, coin)
	if err != nil {
		return Response{}, err
	}
	if err := h.Store.Put(sk); err != nil {
		return Response{}, err
	}
	return storedKeyResponse(sk)
}

func (h Handler) handleImportMnemonic(p ImportMnemonicParams) (Response, error) {
	coin, err := coins.Get(p.CoinID)
	if err != nil {
		return Response{}, err
	}
	sk, err := wallet.CreateWithMnemonic(p.Name, p.Password, p.Mnemonic)
	if err != nil {
		return Response{}, err
	}
	w, err := sk.GetWallet(p.Password)
	if err != nil {
		return Response{}, err
	}
	if _, _, err := sk.GetOrCreateAccountForCoin(coin, &w); err != nil {
		return Response{}, err
	}
	if err := h.Store.Put(sk); err != nil {
		return Response{}, err
	}
	return storedKeyResponse(sk)
}

func (h Handler) handleGetAccount(p GetAccountParams) (Response, error) {
	sk, err := h.Store.Get(p.StoredKeyID)
	if err != nil {
		return Response{}, err
	}
	if sk == nil {
		return Response{}, errUnknownStoredKey
	}
	coin, err := coins.Get(p.CoinID)
	if err != nil {
		return Response{}, err
	}
	account, ok := sk.AccountOfCoin(coin)
	if !ok {
		return Response{}, errUnknownAccount
	}
	return Response{OK: true, Account: &account}, nil
}

func storedKeyResponse(sk *wallet.StoredKey) (Response, error) {
	raw, err := json.Marshal(sk)
	if err != nil {
		return Response{}, err
	}
	return Response{OK: true, StoredKey: raw}, nil
}

// errorResponse maps any error to the wire's blanket "-1" error code, the
// same behavior interface/src/response_util.rs used for every error path.
func errorResponse(err error) Response {
	return Response{OK: false, ErrorCode: "-1", ErrorMsg: err.Error()}
}

func mustEncode(resp Response) []byte {
	out, err := json.Marshal(resp)
	if err != nil {
		// Response is always a plain struct of strings/raw JSON; a marshal
		// failure here means a prior Marshal call produced invalid JSON,
		// which indicates a bug rather than a runtime condition to recover
		// from.
		panic(err)
	}
	return out
}
