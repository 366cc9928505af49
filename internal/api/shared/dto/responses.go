package dto

import (
	"time"

	"github.com/banka-network/banka-backend/internal/domain"
	"github.com/banka-network/banka-backend/internal/store/schema"
)

// UserResponse represents the authenticated user's own profile
type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone,omitempty"`
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublicUserResponse represents a user as seen by anyone. It never carries secrets.
type PublicUserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	Message     string       `json:"message,omitempty"`
}

// EventResponse represents an event
type EventResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Date            time.Time `json:"date"`
	OrganizerID     string    `json:"organizer_id"`
	OrganizerWallet string    `json:"organizer_wallet"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`

	// Expansions
	Tokens []TokenResponse `json:"tokens,omitempty"`
}

// EventListResponse represents a list of events
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// CreateEventResponse is returned after creating an event
type CreateEventResponse struct {
	Event   EventResponse `json:"event"`
	Message string        `json:"message"`
}

// CreateTokenResponse is returned after creating a token, whatever the deployment outcome
type CreateTokenResponse struct {
	Token   TokenResponse `json:"token"`
	Message string        `json:"message"`
}

// TokenListResponse represents a list of tokens
type TokenListResponse struct {
	Tokens []TokenResponse `json:"tokens"`
}

// PurchaseResponse represents a simulated purchase
type PurchaseResponse struct {
	ID           string                   `json:"id"`
	UserID       string                   `json:"user_id"`
	TokenID      string                   `json:"token_id"`
	TokenAddress string                   `json:"token_address"`
	Amount       int64                    `json:"amount"`
	TotalCents   int64                    `json:"total_cents"`
	Total        string                   `json:"total"`
	Status       domain.TransactionStatus `json:"status"`
	TxHash       string                   `json:"tx_hash"`
	Timestamp    time.Time                `json:"timestamp"`
}

// CreatePurchaseResponse is returned after a purchase
type CreatePurchaseResponse struct {
	Purchase PurchaseResponse `json:"purchase"`
	Message  string           `json:"message"`
}

// TransferResponse represents a simulated transfer
type TransferResponse struct {
	ID           string                   `json:"id"`
	FromUserID   string                   `json:"from_user_id"`
	ToAddress    string                   `json:"to_address"`
	TokenAddress string                   `json:"token_address"`
	Amount       int64                    `json:"amount"`
	Status       domain.TransactionStatus `json:"status"`
	TxHash       string                   `json:"tx_hash"`
	Timestamp    time.Time                `json:"timestamp"`
}

// CreateTransferResponse is returned after a transfer
type CreateTransferResponse struct {
	Transfer TransferResponse `json:"transfer"`
	Message  string           `json:"message"`
}

// TransactionResponse is one entry of a user's transaction history
type TransactionResponse struct {
	ID           string                   `json:"id"`
	Type         domain.TransactionType   `json:"type"`
	TokenAddress string                   `json:"token_address"`
	Amount       int64                    `json:"amount"`
	ToAddress    *string                  `json:"to_address,omitempty"`
	TotalCents   *int64                   `json:"total_cents,omitempty"`
	Status       domain.TransactionStatus `json:"status"`
	TxHash       string                   `json:"tx_hash"`
	Timestamp    time.Time                `json:"timestamp"`
}

// TransactionListResponse represents a user's transaction history, newest first
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// QRResponse carries the payment QR payload of a vendor
type QRResponse struct {
	VendorAddress string `json:"vendor_address"`
	QRData        string `json:"qr_data"`
	DisplayName   string `json:"display_name"`
}

// HealthResponse reports the state of the API dependencies
type HealthResponse struct {
	Status              string  `json:"status"`
	Service             string  `json:"service"`
	DatabaseConnected   bool    `json:"database_connected"`
	BlockchainConnected bool    `json:"blockchain_connected"`
	DeployerAvailable   bool    `json:"deployer_available"`
	LatestBlock         *uint64 `json:"latest_block,omitempty"`
	Error               string  `json:"error,omitempty"`
}

// MapUserToDTO maps a user to the owner's view
func MapUserToDTO(user *schema.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		WalletAddress: user.WalletAddress,
		CreatedAt:     user.CreatedAt,
	}
}

// MapPublicUserToDTO maps a user to the public view
func MapPublicUserToDTO(user *schema.User) *PublicUserResponse {
	return &PublicUserResponse{
		ID:            user.ID,
		Name:          user.Name,
		WalletAddress: user.WalletAddress,
		CreatedAt:     user.CreatedAt,
	}
}

// MapEventToDTO maps an event
func MapEventToDTO(event *schema.Event) *EventResponse {
	return &EventResponse{
		ID:              event.ID,
		Name:            event.Name,
		Description:     event.Description,
		Location:        event.Location,
		Date:            event.Date,
		OrganizerID:     event.OrganizerID,
		OrganizerWallet: event.OrganizerWallet,
		IsActive:        event.IsActive,
		CreatedAt:       event.CreatedAt,
	}
}

// MapPurchaseToDTO maps a purchase
func MapPurchaseToDTO(purchase *schema.Purchase) *PurchaseResponse {
	return &PurchaseResponse{
		ID:           purchase.ID,
		UserID:       purchase.UserID,
		TokenID:      purchase.TokenID,
		TokenAddress: purchase.TokenAddress,
		Amount:       purchase.Amount,
		TotalCents:   purchase.TotalCents,
		Total:        FormatCents(purchase.TotalCents),
		Status:       domain.TransactionStatus(purchase.Status),
		TxHash:       purchase.TxHash,
		Timestamp:    purchase.Timestamp,
	}
}

// MapTransferToDTO maps a transfer
func MapTransferToDTO(transfer *schema.Transfer) *TransferResponse {
	return &TransferResponse{
		ID:           transfer.ID,
		FromUserID:   transfer.FromUserID,
		ToAddress:    transfer.ToAddress,
		TokenAddress: transfer.TokenAddress,
		Amount:       transfer.Amount,
		Status:       domain.TransactionStatus(transfer.Status),
		TxHash:       transfer.TxHash,
		Timestamp:    transfer.Timestamp,
	}
}

// MapPurchaseToTransaction maps a purchase to a history entry
func MapPurchaseToTransaction(purchase schema.Purchase) TransactionResponse {
	totalCents := purchase.TotalCents
	return TransactionResponse{
		ID:           purchase.ID,
		Type:         domain.TransactionTypePurchase,
		TokenAddress: purchase.TokenAddress,
		Amount:       purchase.Amount,
		TotalCents:   &totalCents,
		Status:       domain.TransactionStatus(purchase.Status),
		TxHash:       purchase.TxHash,
		Timestamp:    purchase.Timestamp,
	}
}

// MapTransferToTransaction maps a transfer to a history entry
func MapTransferToTransaction(transfer schema.Transfer) TransactionResponse {
	toAddress := transfer.ToAddress
	return TransactionResponse{
		ID:           transfer.ID,
		Type:         domain.TransactionTypeTransfer,
		TokenAddress: transfer.TokenAddress,
		Amount:       transfer.Amount,
		ToAddress:    &toAddress,
		Status:       domain.TransactionStatus(transfer.Status),
		TxHash:       transfer.TxHash,
		Timestamp:    transfer.Timestamp,
	}
}
