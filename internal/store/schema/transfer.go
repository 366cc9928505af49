package schema

import (
	"time"
)

// Transfer represents the transfers table - simulated token payments to vendors
type Transfer struct {
	// ID is the transfer identifier (ULID, sortable by creation time)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// FromUserID references the paying user
	FromUserID string `gorm:"column:from_user_id;not null;index;type:text"`
	// ToAddress is the recipient wallet address, lowercased
	ToAddress string `gorm:"column:to_address;not null;type:text"`
	// TokenAddress is the transferred token's contract address
	TokenAddress string `gorm:"column:token_address;not null;index;type:text"`
	// Amount is the number of whole tokens transferred
	Amount int64 `gorm:"column:amount;not null"`
	// Status is the transfer status (completed)
	Status string `gorm:"column:status;not null;type:text"`
	// TxHash is a simulated transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// Timestamp is when the transfer happened
	Timestamp time.Time `gorm:"column:timestamp;not null;default:now();index;type:timestamptz"`
}

// TableName specifies the table name for the Transfer model
func (Transfer) TableName() string {
	return "transfers"
}
