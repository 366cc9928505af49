package schema

import (
	"time"
)

// Purchase represents the purchases table - simulated token purchases
type Purchase struct {
	// ID is the purchase identifier (ULID, sortable by creation time)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// UserID references the buyer
	UserID string `gorm:"column:user_id;not null;index;type:text"`
	// TokenID references the purchased token
	TokenID string `gorm:"column:token_id;not null;type:text"`
	// TokenAddress is the token's contract address at purchase time
	TokenAddress string `gorm:"column:token_address;not null;index;type:text"`
	// Amount is the number of whole tokens bought
	Amount int64 `gorm:"column:amount;not null"`
	// TotalCents is amount * price_in_cents
	TotalCents int64 `gorm:"column:total_cents;not null"`
	// Status is the purchase status (completed)
	Status string `gorm:"column:status;not null;type:text"`
	// TxHash is a simulated transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// Timestamp is when the purchase happened
	Timestamp time.Time `gorm:"column:timestamp;not null;default:now();index;type:timestamptz"`
}

// TableName specifies the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}
