package store

import (
	"context"

	"github.com/banka-network/banka-backend/internal/store/schema"
)

// Store defines the interface for database operations.
// Get methods return (nil, nil) when the record does not exist.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Ping checks the database connection
	Ping(ctx context.Context) error

	// CreateUser inserts a user; returns domain.ErrEmailTaken when the email exists
	CreateUser(ctx context.Context, user *schema.User) error
	// GetUserByID retrieves a user by ID
	GetUserByID(ctx context.Context, id string) (*schema.User, error)
	// GetUserByEmail retrieves a user by email (case-insensitive)
	GetUserByEmail(ctx context.Context, email string) (*schema.User, error)

	// CreateEvent inserts an event
	CreateEvent(ctx context.Context, event *schema.Event) error
	// GetEventByID retrieves an event by ID
	GetEventByID(ctx context.Context, id string) (*schema.Event, error)
	// ListEventsByOrganizer lists the events of an organizer, newest first
	ListEventsByOrganizer(ctx context.Context, organizerID string) ([]schema.Event, error)
	// ListPublicEvents lists active events ordered by date
	ListPublicEvents(ctx context.Context, limit int) ([]schema.Event, error)

	// CreateToken inserts a token record
	CreateToken(ctx context.Context, token *schema.Token) error
	// GetTokenByID retrieves a token by ID
	GetTokenByID(ctx context.Context, id string) (*schema.Token, error)
	// GetTokenByContractAddress retrieves a token by its (possibly placeholder) contract address
	GetTokenByContractAddress(ctx context.Context, address string) (*schema.Token, error)
	// ListTokensByEvent lists the tokens of an event, oldest first
	ListTokensByEvent(ctx context.Context, eventID string) ([]schema.Token, error)
	// IncrementTokenSold atomically adds amount to total_sold of an active token.
	// Returns domain.ErrInsufficientSupply when the remaining supply is too small.
	IncrementTokenSold(ctx context.Context, tokenID string, amount int64) error
	// DeactivateToken marks a token inactive; returns domain.ErrTokenNotFound when missing
	DeactivateToken(ctx context.Context, tokenID string) error

	// CreatePurchase inserts a purchase record
	CreatePurchase(ctx context.Context, purchase *schema.Purchase) error
	// CreateTransfer inserts a transfer record
	CreateTransfer(ctx context.Context, transfer *schema.Transfer) error
	// ListPurchasesByUser lists a user's purchases, newest first
	ListPurchasesByUser(ctx context.Context, userID string) ([]schema.Purchase, error)
	// ListTransfersByUser lists the transfers sent by a user, newest first
	ListTransfersByUser(ctx context.Context, userID string) ([]schema.Transfer, error)
}
