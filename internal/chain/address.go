package chain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
const bech32Alphabet = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// ValidateAddress checks an address against the shape rules of the given
// network. This is a simulation-level shape check, not a checksum or
// cryptographic validation. Invalid input yields false, never an error.
func ValidateAddress(address string, network Network) bool {
	switch network {
	case Solana, TeosToken:
		return len(address) >= 32 && len(address) <= 44
	case Ethereum:
		return len(address) == 42 && address[:2] == "0x"
	case Bitcoin:
		return len(address) >= 26 && len(address) <= 62
	}
	return false
}

// NewAddress synthesizes a demo address with the shape of the given
// network. The addresses are random and correspond to no real key pair.
func NewAddress(network Network) (string, error) {
	switch network {
	case Solana, TeosToken:
		return randomString(base58Alphabet, 44)
	case Ethereum:
		buf := make([]byte, common.AddressLength)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		return common.BytesToAddress(buf).Hex(), nil
	case Bitcoin:
		suffix, err := randomString(bech32Alphabet, 39)
		if err != nil {
			return "", err
		}
		return "bc1" + suffix, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func randomString(alphabet string, length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out), nil
}
