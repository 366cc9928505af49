package schema

import (
	"time"
)

// Event represents the events table
type Event struct {
	// ID is the event identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the event name, also used for token symbol derivation
	Name string `gorm:"column:name;not null;type:text"`
	// Description is an optional free-text description
	Description *string `gorm:"column:description;type:text"`
	// Location is an optional venue
	Location *string `gorm:"column:location;type:text"`
	// Date is when the event takes place
	Date time.Time `gorm:"column:date;not null;index;type:timestamptz"`
	// OrganizerID references the user who created the event
	OrganizerID string `gorm:"column:organizer_id;not null;index;type:text"`
	// OrganizerWallet is the organizer's wallet address, owner of the event's token supply
	OrganizerWallet string `gorm:"column:organizer_wallet;not null;type:text"`
	// IsActive indicates whether the event is listed publicly
	IsActive bool `gorm:"column:is_active;not null;index"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}
