package token

import (
	"strings"
	"time"
	"unicode"

	"github.com/banka-network/banka-backend/internal/deployment"
	"github.com/banka-network/banka-backend/internal/domain"
)

const (
	// SYMBOL_PART_LENGTH is the number of alphanumeric characters taken from each name
	SYMBOL_PART_LENGTH = 5
	// FALLBACK_SYMBOL is used when neither name contains an alphanumeric character
	FALLBACK_SYMBOL = "TKN"
)

// EventContext is the event a token is created for
type EventContext struct {
	ID   string
	Name string
	// OrganizerWallet owns the token supply
	OrganizerWallet string
}

// CreateRequest is a token creation request
type CreateRequest struct {
	Name          string
	PriceInCents  int64
	InitialSupply int64
	SaleMode      domain.SaleMode
}

// DeriveSymbol builds a token symbol from the first alphanumeric characters
// of the event and token names, uppercased. Symbols are not unique across events.
func DeriveSymbol(eventName, tokenName string) string {
	symbol := symbolPart(eventName) + symbolPart(tokenName)
	if symbol == "" {
		return FALLBACK_SYMBOL
	}
	return symbol
}

func symbolPart(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range name {
		if n == SYMBOL_PART_LENGTH {
			break
		}
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			n++
		}
	}
	return strings.ToUpper(b.String())
}

// FullName returns the display name of an event token
func FullName(eventName, tokenName string) string {
	return eventName + " - " + tokenName
}

// DeploymentRequest returns the on-chain deployment parameters of a token
func DeploymentRequest(event EventContext, req CreateRequest, owner domain.ChainAddress) domain.DeploymentRequest {
	return domain.DeploymentRequest{
		TokenName:    FullName(event.Name, req.Name),
		TokenSymbol:  DeriveSymbol(event.Name, req.Name),
		TotalSupply:  req.InitialSupply,
		Decimals:     domain.TOKEN_DECIMALS,
		OwnerAddress: owner.Address(),
	}
}

// BuildRecord assembles a token record. It performs no I/O: id and createdAt are
// supplied by the caller.
func BuildRecord(id string, createdAt time.Time, event EventContext, req CreateRequest, outcome deployment.Outcome) domain.TokenRecord {
	return domain.TokenRecord{
		ID:       id,
		Name:     req.Name,
		Symbol:   DeriveSymbol(event.Name, req.Name),
		FullName: FullName(event.Name, req.Name),

		PriceInCents:  req.PriceInCents,
		InitialSupply: req.InitialSupply,
		TotalSold:     0,
		Decimals:      domain.TOKEN_DECIMALS,

		ContractAddress:  outcome.ContractAddress,
		ContractABI:      outcome.ContractABI,
		DeploymentTxHash: outcome.DeploymentTxHash,
		DeploymentStatus: outcome.Status,

		EventID:      event.ID,
		OwnerAddress: event.OrganizerWallet,
		SaleMode:     req.SaleMode,

		CreatedAt: createdAt,
		IsActive:  true,
	}
}
