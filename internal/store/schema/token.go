package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Token represents the tokens table - one fungible token per event offering
type Token struct {
	// ID is the token identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the token name as given by the organizer (e.g. "VIP Pass")
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is derived from the event and token names; not unique
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// FullName is "{event name} - {token name}", the on-chain token name
	FullName string `gorm:"column:full_name;not null;type:text"`
	// PriceInCents is the fiat price of one token
	PriceInCents int64 `gorm:"column:price_in_cents;not null"`
	// InitialSupply is the number of whole tokens minted to the owner
	InitialSupply int64 `gorm:"column:initial_supply;not null"`
	// TotalSold is the number of tokens sold so far
	TotalSold int64 `gorm:"column:total_sold;not null;default:0"`
	// Decimals is the ERC-20 decimals (always 18)
	Decimals int16 `gorm:"column:decimals;not null;default:18"`
	// ContractAddress is the deployed contract address, or a placeholder unless deployment_status is deployed
	ContractAddress string `gorm:"column:contract_address;not null;type:text"`
	// ContractABI is the contract ABI, set only for deployed tokens
	ContractABI datatypes.JSON `gorm:"column:contract_abi;type:jsonb"`
	// DeploymentTxHash is the contract creation transaction hash, set only for deployed tokens
	DeploymentTxHash *string `gorm:"column:deployment_tx_hash;type:text"`
	// DeploymentStatus is one of deployed, failed, mock
	DeploymentStatus string `gorm:"column:deployment_status;not null;type:text"`
	// EventID references the event the token belongs to
	EventID string `gorm:"column:event_id;not null;index;type:text"`
	// OwnerAddress is the organizer wallet holding the initial supply
	OwnerAddress string `gorm:"column:owner_address;not null;type:text"`
	// SaleMode is one of online, offline, both
	SaleMode string `gorm:"column:sale_mode;not null;default:'both';type:text"`
	// IsActive is false once the token is deactivated; tokens are never deleted
	IsActive bool `gorm:"column:is_active;not null;index"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
