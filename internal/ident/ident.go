package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Wallet ids are 128 bits of randomness, transaction hashes 256 bits.
// The id space is large enough that collisions are treated as
// impossible; the stores keep no retry path.

func NewWalletID() (string, error) {
	return randomHex(16, "")
}

func NewTxHash() (string, error) {
	return randomHex(32, "0x")
}

func randomHex(size int, prefix string) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return prefix + hex.EncodeToString(buf), nil
}
