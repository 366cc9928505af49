package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/banka-network/banka-backend/internal/domain"
	"github.com/banka-network/banka-backend/internal/store/schema"
)

// TokenResponse represents an event token.
// OnChain is true only for deployed tokens; a placeholder contract_address must not be used on-chain.
type TokenResponse struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Symbol           string                  `json:"symbol"`
	FullName         string                  `json:"full_name"`
	PriceCents       int64                   `json:"price_cents"`
	Price            string                  `json:"price"`
	InitialSupply    int64                   `json:"initial_supply"`
	TotalSold        int64                   `json:"total_sold"`
	Remaining        int64                   `json:"remaining"`
	Decimals         uint8                   `json:"decimals"`
	ContractAddress  string                  `json:"contract_address"`
	ContractABI      json.RawMessage         `json:"contract_abi,omitempty"`
	DeploymentTxHash *string                 `json:"deployment_tx_hash"`
	DeploymentStatus domain.DeploymentStatus `json:"deployment_status"`
	OnChain          bool                    `json:"on_chain"`
	EventID          string                  `json:"event_id"`
	OwnerAddress     string                  `json:"owner_address"`
	SaleMode         domain.SaleMode         `json:"sale_mode"`
	IsActive         bool                    `json:"is_active"`
	CreatedAt        time.Time               `json:"created_at"`
}

// FormatCents renders an amount of cents as a fixed two-decimal string ("12.50")
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// MapTokenRecordToSchema converts a built token record into its database model
func MapTokenRecordToSchema(record domain.TokenRecord) *schema.Token {
	token := &schema.Token{
		ID:               record.ID,
		Name:             record.Name,
		Symbol:           record.Symbol,
		FullName:         record.FullName,
		PriceInCents:     record.PriceInCents,
		InitialSupply:    record.InitialSupply,
		TotalSold:        record.TotalSold,
		Decimals:         int16(record.Decimals),
		ContractAddress:  record.ContractAddress.String(),
		DeploymentTxHash: record.DeploymentTxHash,
		DeploymentStatus: string(record.DeploymentStatus),
		EventID:          record.EventID,
		OwnerAddress:     record.OwnerAddress,
		SaleMode:         string(record.SaleMode),
		IsActive:         record.IsActive,
		CreatedAt:        record.CreatedAt,
	}
	if len(record.ContractABI) > 0 {
		token.ContractABI = datatypes.JSON(record.ContractABI)
	}
	return token
}

// MapTokenToRecord restores the domain record of a persisted token
func MapTokenToRecord(token *schema.Token) (domain.TokenRecord, error) {
	status := domain.DeploymentStatus(token.DeploymentStatus)
	if !status.Valid() {
		return domain.TokenRecord{}, fmt.Errorf("token %s has unknown deployment status %q", token.ID, token.DeploymentStatus)
	}

	address, err := domain.ParseContractAddress(status, token.ContractAddress)
	if err != nil {
		return domain.TokenRecord{}, fmt.Errorf("token %s: %w", token.ID, err)
	}

	var contractABI json.RawMessage
	if len(token.ContractABI) > 0 {
		contractABI = json.RawMessage(token.ContractABI)
	}

	return domain.TokenRecord{
		ID:               token.ID,
		Name:             token.Name,
		Symbol:           token.Symbol,
		FullName:         token.FullName,
		PriceInCents:     token.PriceInCents,
		InitialSupply:    token.InitialSupply,
		TotalSold:        token.TotalSold,
		Decimals:         uint8(token.Decimals), //nolint:gosec,G115
		ContractAddress:  address,
		ContractABI:      contractABI,
		DeploymentTxHash: token.DeploymentTxHash,
		DeploymentStatus: status,
		EventID:          token.EventID,
		OwnerAddress:     token.OwnerAddress,
		SaleMode:         domain.SaleMode(token.SaleMode),
		CreatedAt:        token.CreatedAt,
		IsActive:         token.IsActive,
	}, nil
}

// MapTokenRecordToDTO maps a token record to its API representation
func MapTokenRecordToDTO(record domain.TokenRecord) *TokenResponse {
	return &TokenResponse{
		ID:               record.ID,
		Name:             record.Name,
		Symbol:           record.Symbol,
		FullName:         record.FullName,
		PriceCents:       record.PriceInCents,
		Price:            FormatCents(record.PriceInCents),
		InitialSupply:    record.InitialSupply,
		TotalSold:        record.TotalSold,
		Remaining:        record.InitialSupply - record.TotalSold,
		Decimals:         record.Decimals,
		ContractAddress:  record.ContractAddress.String(),
		ContractABI:      record.ContractABI,
		DeploymentTxHash: record.DeploymentTxHash,
		DeploymentStatus: record.DeploymentStatus,
		OnChain:          record.ContractAddress.OnChain(),
		EventID:          record.EventID,
		OwnerAddress:     record.OwnerAddress,
		SaleMode:         record.SaleMode,
		IsActive:         record.IsActive,
		CreatedAt:        record.CreatedAt,
	}
}

// MapTokenToDTO maps a persisted token to its API representation
func MapTokenToDTO(token *schema.Token) (*TokenResponse, error) {
	record, err := MapTokenToRecord(token)
	if err != nil {
		return nil, err
	}
	return MapTokenRecordToDTO(record), nil
}
