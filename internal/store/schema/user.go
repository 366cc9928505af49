package schema

import (
	"time"
)

// User represents the users table - registered attendees, organizers and vendors
type User struct {
	// ID is the user identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// Email is the login identifier, stored lowercased
	Email string `gorm:"column:email;not null;uniqueIndex;type:text"`
	// Phone is an optional contact number
	Phone *string `gorm:"column:phone;type:text"`
	// PasswordHash is the bcrypt hash of the user's password
	PasswordHash string `gorm:"column:password_hash;not null;type:text"`
	// WalletAddress is the checksummed address of the custodial wallet created at registration
	WalletAddress string `gorm:"column:wallet_address;not null;index;type:text"`
	// WalletPrivateKey is the hex private key of the custodial wallet
	WalletPrivateKey string `gorm:"column:wallet_private_key;not null;type:text"`
	// CreatedAt is the registration timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
