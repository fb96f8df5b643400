package model

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
)

// ErrInvalidAddress is returned for malformed or badly checksummed wallet addresses
var ErrInvalidAddress = errors.New("invalid wallet address")

// WalletConnection is the account address obtained from the wallet provider
type WalletConnection struct {
	Connected    bool       `json:"connected"`
	Address      string     `json:"address,omitempty"`
	ShortAddress string     `json:"short_address,omitempty"`
	ConnectedAt  *time.Time `json:"connected_at,omitempty"`
}

const addressHexLength = 40

// ParseAddress validates a hex account address and returns its EIP-55
// checksummed form. All-lowercase and all-uppercase addresses carry no
// checksum and are accepted as-is; mixed-case input must match the checksum.
func ParseAddress(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", fmt.Errorf("%w: missing 0x prefix", ErrInvalidAddress)
	}
	body := s[2:]
	if len(body) != addressHexLength {
		return "", fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidAddress, addressHexLength, len(body))
	}
	if _, err := hex.DecodeString(body); err != nil {
		return "", fmt.Errorf("%w: not hex", ErrInvalidAddress)
	}

	checksummed := ChecksumAddress(body)
	lower, upper := strings.ToLower(body), strings.ToUpper(body)
	if body != lower && body != upper && "0x"+body != checksummed {
		return "", fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}
	return checksummed, nil
}

// ChecksumAddress applies EIP-55 mixed-case encoding to 40 hex characters
// (with or without the 0x prefix).
func ChecksumAddress(hexAddr string) string {
	body := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(hexAddr, "0x"), "0X"))

	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte(body))
	digest := h.Sum(nil)

	out := []byte(body)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		// Nibble i of the digest decides the case of character i
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return "0x" + string(out)
}

// ShortAddress renders an address as its first six and last four characters
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
