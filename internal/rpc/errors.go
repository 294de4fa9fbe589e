package rpc

import "errors"

var (
	errUnknownRequest   = errors.New("unknown or empty request")
	errUnknownStoredKey = errors.New("no stored key with that id")
	errUnknownAccount   = errors.New("no account for that coin")
)
