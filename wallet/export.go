package wallet

import "encoding/json"

// exportedStoredKey is the on-disk JSON shape of a StoredKey: its type
// tag, identity, Keystore V3 payload, and account list. Field names
// follow the original keystore's wire vocabulary ("type", "crypto").
type exportedStoredKey struct {
	Type     Type            `json:"type"`
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Crypto   json.RawMessage `json:"crypto"`
	Accounts []Account       `json:"accounts"`
}

// MarshalJSON exports sk as a Keystore-V3-shaped JSON document: the
// encrypted payload plus account list, suitable for writing to disk.
func (sk *StoredKey) MarshalJSON() ([]byte, error) {
	cryptoJSON, err := json.Marshal(sk.payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(exportedStoredKey{
		Type:     sk.Type,
		ID:       sk.ID,
		Name:     sk.Name,
		Crypto:   cryptoJSON,
		Accounts: sk.accounts,
	})
}

// UnmarshalJSON imports a previously exported StoredKey document.
func (sk *StoredKey) UnmarshalJSON(data []byte) error {
	var ext exportedStoredKey
	if err := json.Unmarshal(data, &ext); err != nil {
		return err
	}
	if err := json.Unmarshal(ext.Crypto, &sk.payload); err != nil {
		return err
	}
	sk.Type = ext.Type
	sk.ID = ext.ID
	sk.Name = ext.Name
	sk.accounts = ext.Accounts
	return nil
}
