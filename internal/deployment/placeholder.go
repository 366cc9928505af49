package deployment

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"

	"github.com/banka-network/banka-backend/internal/domain"
)

// PlaceholderGenerator produces a fresh placeholder contract address on every call
type PlaceholderGenerator func() domain.PlaceholderAddress

// NewPlaceholderAddress derives a placeholder from a random UUID:
// 0x followed by the lowercase hex of the last 20 bytes of its keccak-256 hash.
func NewPlaceholderAddress() domain.PlaceholderAddress {
	id := uuid.New()
	hash := crypto.Keccak256(id[:])
	return domain.PlaceholderAddress(hexutil.Encode(hash[12:]))
}
