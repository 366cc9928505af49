package deployment

import (
	"bytes"
	"encoding/json"

	"github.com/banka-network/banka-backend/internal/contracts"
	"github.com/banka-network/banka-backend/internal/domain"
)

// Outcome is the persisted shape of a deployment attempt
type Outcome struct {
	ContractAddress  domain.ContractAddress
	ContractABI      json.RawMessage // nil unless deployed
	DeploymentTxHash *string         // nil unless deployed
	Status           domain.DeploymentStatus
}

// Message returns the human readable status returned to API callers
func (o Outcome) Message() string {
	if o.Status == domain.DeploymentStatusDeployed {
		return "Token created and deployed on-chain successfully"
	}
	return "Token created successfully (deployment status: " + string(o.Status) + ")"
}

// Resolver maps attempt results to outcomes without any I/O
type Resolver struct {
	abi         json.RawMessage
	placeholder PlaceholderGenerator
}

// NewResolver creates a resolver. abi is attached to deployed outcomes and
// falls back to the embedded ERC-20 ABI when empty, so a deployed outcome always carries one.
// A nil generator defaults to NewPlaceholderAddress.
func NewResolver(abi json.RawMessage, placeholder PlaceholderGenerator) *Resolver {
	if trimmed := bytes.TrimSpace(abi); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		abi = contracts.EventTokenABIJSON()
	}
	if placeholder == nil {
		placeholder = NewPlaceholderAddress
	}
	return &Resolver{abi: abi, placeholder: placeholder}
}

// Resolve maps every attempt result to exactly one of deployed, failed or mock.
// A nil result is treated as unavailable.
func (r *Resolver) Resolve(result domain.AttemptResult) Outcome {
	switch res := result.(type) {
	case domain.Deployed:
		txHash := res.TxHash
		abi := make(json.RawMessage, len(r.abi))
		copy(abi, r.abi)
		return Outcome{
			ContractAddress:  res.ContractAddress,
			ContractABI:      abi,
			DeploymentTxHash: &txHash,
			Status:           domain.DeploymentStatusDeployed,
		}
	case domain.Failed:
		return Outcome{
			ContractAddress: r.placeholder(),
			Status:          domain.DeploymentStatusFailed,
		}
	default:
		return Outcome{
			ContractAddress: r.placeholder(),
			Status:          domain.DeploymentStatusMock,
		}
	}
}
