package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DeploymentStatus represents how a token contract address came to be
type DeploymentStatus string

const (
	// DeploymentStatusDeployed means the contract exists on-chain at ContractAddress
	DeploymentStatusDeployed DeploymentStatus = "deployed"
	// DeploymentStatusFailed means a deployment was attempted and did not succeed
	DeploymentStatusFailed DeploymentStatus = "failed"
	// DeploymentStatusMock means no chain client was available to attempt a deployment
	DeploymentStatusMock DeploymentStatus = "mock"
)

// Valid checks if a deployment status is one of the known values
func (s DeploymentStatus) Valid() bool {
	return s == DeploymentStatusDeployed ||
		s == DeploymentStatusFailed ||
		s == DeploymentStatusMock
}

// SaleMode represents where a token may be sold
type SaleMode string

const (
	SaleModeOnline  SaleMode = "online"
	SaleModeOffline SaleMode = "offline"
	SaleModeBoth    SaleMode = "both"
)

// Valid checks if a sale mode is valid
func (m SaleMode) Valid() bool {
	return m == SaleModeOnline || m == SaleModeOffline || m == SaleModeBoth
}

// ContractAddress is the address persisted for a token contract.
// It is either a ChainAddress (real, on-chain) or a PlaceholderAddress (local stand-in).
type ContractAddress interface {
	// String returns the 0x-prefixed hex form
	String() string
	// OnChain reports whether the address refers to a deployed contract
	OnChain() bool
}

// ChainAddress is a contract address observed on-chain
type ChainAddress struct {
	addr common.Address
}

// NewChainAddress wraps a go-ethereum address
func NewChainAddress(addr common.Address) ChainAddress {
	return ChainAddress{addr: addr}
}

// Address returns the underlying go-ethereum address for on-chain use
func (a ChainAddress) Address() common.Address {
	return a.addr
}

func (a ChainAddress) String() string {
	return a.addr.Hex()
}

func (a ChainAddress) OnChain() bool {
	return true
}

// PlaceholderAddress is a locally generated stand-in for a contract address.
// It is never a valid destination for on-chain interaction.
type PlaceholderAddress string

func (a PlaceholderAddress) String() string {
	return string(a)
}

func (a PlaceholderAddress) OnChain() bool {
	return false
}

var placeholderPattern = regexp.MustCompile(`^0x[0-9a-f]{40}$`)

// Valid checks the placeholder has the expected 0x + 40 hex format
func (a PlaceholderAddress) Valid() bool {
	return placeholderPattern.MatchString(string(a))
}

// ParseContractAddress restores the typed contract address of a persisted token.
// Only records with status deployed produce a ChainAddress.
func ParseContractAddress(status DeploymentStatus, raw string) (ContractAddress, error) {
	if status != DeploymentStatusDeployed {
		return PlaceholderAddress(raw), nil
	}

	if !common.IsHexAddress(raw) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAddress, raw)
	}

	return NewChainAddress(common.HexToAddress(raw)), nil
}

// NormalizeAddress lowercases and validates a 0x-prefixed address string
func NormalizeAddress(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !common.IsHexAddress(raw) || !strings.HasPrefix(raw, "0x") {
		return "", fmt.Errorf("%w: %s", ErrInvalidAddress, raw)
	}
	return strings.ToLower(raw), nil
}

// DeploymentRequest carries the constructor parameters of one token deployment
type DeploymentRequest struct {
	TokenName    string
	TokenSymbol  string
	TotalSupply  int64 // whole tokens, before decimal scaling
	Decimals     uint8
	OwnerAddress common.Address
}

// AttemptResult is the tagged result of one deployment attempt.
// It is implemented by Deployed, Failed and Unavailable only.
type AttemptResult interface {
	attemptResult()
}

// Deployed is returned when the deployment receipt reports success
type Deployed struct {
	ContractAddress ChainAddress
	TxHash          string
	GasUsed         uint64
	BlockNumber     uint64
}

// Failed is returned when signing, submission or confirmation did not succeed
type Failed struct {
	Reason string
	// TxHash is set when a transaction was submitted before the failure
	TxHash string
}

// Unavailable is returned when no chain client could be reached
type Unavailable struct{}

func (Deployed) attemptResult()    {}
func (Failed) attemptResult()      {}
func (Unavailable) attemptResult() {}

// TokenRecord is the persisted entity describing an event's fungible token
type TokenRecord struct {
	// Identity
	ID       string
	Name     string
	Symbol   string
	FullName string

	// Economics
	PriceInCents  int64
	InitialSupply int64
	TotalSold     int64
	Decimals      uint8

	// Deployment metadata
	ContractAddress  ContractAddress
	ContractABI      json.RawMessage // nil unless deployed
	DeploymentTxHash *string         // nil unless deployed
	DeploymentStatus DeploymentStatus

	// Ownership
	EventID      string
	OwnerAddress string

	SaleMode SaleMode

	// Lifecycle
	CreatedAt time.Time
	IsActive  bool
}

// TransactionType distinguishes the entries of a user's transaction history
type TransactionType string

const (
	TransactionTypePurchase TransactionType = "purchase"
	TransactionTypeTransfer TransactionType = "transfer"
)

// TransactionStatus represents the state of a purchase or transfer
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
)
