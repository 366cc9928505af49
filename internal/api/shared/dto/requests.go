package dto

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/banka-network/banka-backend/internal/api/shared/constants"
	apierrors "github.com/banka-network/banka-backend/internal/api/shared/errors"
	"github.com/banka-network/banka-backend/internal/domain"
)

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
}

// Validate validates the request body
func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if r.Name == "" {
		return apierrors.NewValidationError("name is required")
	}
	if len(r.Name) > constants.MAX_NAME_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("name must be at most %d characters", constants.MAX_NAME_LENGTH))
	}
	if _, err := mail.ParseAddress(r.Email); err != nil || r.Email == "" {
		return apierrors.NewValidationError("a valid email is required")
	}
	if len(r.Password) < constants.MIN_PASSWORD_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", constants.MIN_PASSWORD_LENGTH))
	}

	return nil
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the request body
func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" || r.Password == "" {
		return apierrors.NewValidationError("email and password are required")
	}
	return nil
}

// CreateEventRequest represents the request body for creating an event
type CreateEventRequest struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
}

// Validate validates the request body
func (r *CreateEventRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return apierrors.NewValidationError("name is required")
	}
	if len(r.Name) > constants.MAX_NAME_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("name must be at most %d characters", constants.MAX_NAME_LENGTH))
	}
	if r.Date.IsZero() {
		return apierrors.NewValidationError("date is required")
	}
	return nil
}

// CreateTokenRequest represents the request body for creating an event token
type CreateTokenRequest struct {
	Name          string          `json:"name"`
	PriceCents    int64           `json:"price_cents"`
	InitialSupply int64           `json:"initial_supply"`
	SaleMode      domain.SaleMode `json:"sale_mode,omitempty"`
}

// Validate validates the request body and applies the default sale mode
func (r *CreateTokenRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return apierrors.NewValidationError("name is required")
	}
	if len(r.Name) > constants.MAX_NAME_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("name must be at most %d characters", constants.MAX_NAME_LENGTH))
	}
	if r.PriceCents <= 0 {
		return apierrors.NewValidationError("price_cents must be positive")
	}
	if r.PriceCents > constants.MAX_PRICE_CENTS {
		return apierrors.NewValidationError(fmt.Sprintf("price_cents must be at most %d", constants.MAX_PRICE_CENTS))
	}
	if r.InitialSupply <= 0 {
		return apierrors.NewValidationError("initial_supply must be positive")
	}
	if r.InitialSupply > constants.MAX_TOKEN_SUPPLY {
		return apierrors.NewValidationError(fmt.Sprintf("initial_supply must be at most %d", constants.MAX_TOKEN_SUPPLY))
	}

	if r.SaleMode == "" {
		r.SaleMode = domain.SaleModeBoth
	}
	if !r.SaleMode.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid sale_mode: %s. Must be one of online, offline, both", r.SaleMode))
	}

	return nil
}

// PurchaseRequest represents the request body for a simulated token purchase
type PurchaseRequest struct {
	TokenAddress string `json:"token_address"`
	Amount       int64  `json:"amount"`
}

// Validate validates the request body
func (r *PurchaseRequest) Validate() error {
	r.TokenAddress = strings.TrimSpace(r.TokenAddress)
	if r.TokenAddress == "" {
		return apierrors.NewValidationError("token_address is required")
	}
	if r.Amount <= 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	if r.Amount > constants.MAX_PURCHASE_AMOUNT {
		return apierrors.NewValidationError(fmt.Sprintf("amount must be at most %d", constants.MAX_PURCHASE_AMOUNT))
	}
	return nil
}

// TransferRequest represents the request body for a simulated token transfer to a vendor
type TransferRequest struct {
	ToAddress    string `json:"to_address"`
	TokenAddress string `json:"token_address"`
	Amount       int64  `json:"amount"`
}

// Validate validates the request body and normalizes the recipient address
func (r *TransferRequest) Validate() error {
	to, err := domain.NormalizeAddress(r.ToAddress)
	if err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid to_address: %s", r.ToAddress))
	}
	r.ToAddress = to

	r.TokenAddress = strings.TrimSpace(r.TokenAddress)
	if r.TokenAddress == "" {
		return apierrors.NewValidationError("token_address is required")
	}
	if r.Amount <= 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	return nil
}
