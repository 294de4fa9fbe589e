// Package derivation parses and renders BIP-32 derivation path strings
// such as "m/44'/60'/0'/0/0", the form every coin catalogue entry and
// Account carries.
package derivation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vaultkit/walletengine/internal/walleterr"
)

// HardenedOffset is added to an index to mark it as a hardened child,
// matching BIP-32's 2^31 convention.
const HardenedOffset = uint32(0x80000000)

// Component is a single level of a derivation path.
type Component struct {
	Index    uint32
	Hardened bool
}

// Path is a parsed BIP-32 derivation path, rooted at the master node.
type Path []Component

// Parse parses a path string of the form "m/44'/60'/0'/0/0". Both "'" and
// "h" are accepted as the hardened marker.
func Parse(s string) (Path, error) {
	parts := strings.Split(s, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("%w: %q must start with \"m\"", walleterr.ErrInvalidDerivationPath, s)
	}

	path := make(Path, 0, len(parts)-1)
	for _, raw := range parts[1:] {
		if raw == "" {
			return nil, fmt.Errorf("%w: %q has an empty component", walleterr.ErrInvalidDerivationPath, s)
		}
		hardened := false
		numPart := raw
		switch {
		case strings.HasSuffix(raw, "'"):
			hardened = true
			numPart = strings.TrimSuffix(raw, "'")
		case strings.HasSuffix(raw, "h"), strings.HasSuffix(raw, "H"):
			hardened = true
			numPart = raw[:len(raw)-1]
		}
		idx, err := strconv.ParseUint(numPart, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", walleterr.ErrInvalidDerivationPath, s, err)
		}
		path = append(path, Component{Index: uint32(idx), Hardened: hardened})
	}
	return path, nil
}

// String renders the path back to "m/44'/60'/0'/0/0" form.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, c := range p {
		b.WriteString("/")
		b.WriteString(strconv.FormatUint(uint64(c.Index), 10))
		if c.Hardened {
			b.WriteString("'")
		}
	}
	return b.String()
}

// RawIndex returns the BIP-32 child index for c, with HardenedOffset
// added when c.Hardened is set.
func (c Component) RawIndex() uint32 {
	if c.Hardened {
		return c.Index + HardenedOffset
	}
	return c.Index
}
