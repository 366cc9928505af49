package contracts

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"

	"github.com/banka-network/banka-backend/internal/domain"
)

// erc20ABIJSON is the ABI of the event token contract. Every deployable artifact
// must expose the same constructor.
//
//go:embed erc20_abi.json
var erc20ABIJSON []byte

// ERC20ABI is the parsed event token ABI, used for read-back calls after deployment
var ERC20ABI = mustParseABI(erc20ABIJSON)

// EventTokenABIJSON returns a copy of the embedded event token ABI
func EventTokenABIJSON() json.RawMessage {
	out := make(json.RawMessage, len(erc20ABIJSON))
	copy(out, erc20ABIJSON)
	return out
}

var (
	// ErrEmptyBytecode is returned when an artifact carries no creation bytecode
	ErrEmptyBytecode = errors.New("artifact has no bytecode")
	// ErrConstructorMismatch is returned when an artifact's constructor differs from the event token's
	ErrConstructorMismatch = errors.New("artifact constructor does not match event token constructor")
)

// Descriptor is an immutable (ABI, bytecode) pair describing the token contract to deploy
type Descriptor struct {
	name     string
	abi      abi.ABI
	rawABI   json.RawMessage
	bytecode []byte
}

// artifact mirrors the Hardhat/Truffle compilation artifact layout
type artifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// LoadArtifact reads a compilation artifact from disk
func LoadArtifact(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path) //nolint:gosec,G304
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	return ParseArtifact(data)
}

// ParseArtifact parses and validates a compilation artifact
func ParseArtifact(data []byte) (*Descriptor, error) {
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}

	return NewDescriptor(a.ContractName, a.ABI, a.Bytecode)
}

// NewDescriptor builds a descriptor from a JSON ABI and 0x-prefixed creation bytecode
func NewDescriptor(name string, rawABI json.RawMessage, bytecodeHex string) (*Descriptor, error) {
	parsed, err := abi.JSON(bytes.NewReader(rawABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	if !sameConstructor(parsed.Constructor, ERC20ABI.Constructor) {
		return nil, fmt.Errorf("%w: got (%s)", ErrConstructorMismatch, constructorTypes(parsed.Constructor))
	}

	bytecodeHex = strings.TrimSpace(bytecodeHex)
	if bytecodeHex == "" || bytecodeHex == "0x" {
		return nil, ErrEmptyBytecode
	}
	if !strings.HasPrefix(bytecodeHex, "0x") {
		bytecodeHex = "0x" + bytecodeHex
	}
	code, err := hexutil.Decode(bytecodeHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bytecode: %w", err)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, rawABI); err != nil {
		return nil, fmt.Errorf("failed to compact ABI: %w", err)
	}

	return &Descriptor{
		name:     name,
		abi:      parsed,
		rawABI:   compact.Bytes(),
		bytecode: code,
	}, nil
}

// Name returns the contract name recorded in the artifact
func (d *Descriptor) Name() string {
	return d.name
}

// ABI returns the parsed ABI
func (d *Descriptor) ABI() abi.ABI {
	return d.abi
}

// ABIJSON returns a copy of the compact JSON ABI as persisted on token records
func (d *Descriptor) ABIJSON() json.RawMessage {
	out := make(json.RawMessage, len(d.rawABI))
	copy(out, d.rawABI)
	return out
}

// PackConstructor returns the contract creation payload: bytecode followed by the
// ABI-encoded constructor arguments (name, symbol, supply scaled by decimals, owner)
func (d *Descriptor) PackConstructor(req domain.DeploymentRequest) ([]byte, error) {
	args, err := d.abi.Pack("", req.TokenName, req.TokenSymbol, ScaleSupply(req.TotalSupply, req.Decimals), req.OwnerAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to pack constructor: %w", err)
	}

	data := make([]byte, 0, len(d.bytecode)+len(args))
	data = append(data, d.bytecode...)
	data = append(data, args...)
	return data, nil
}

// ScaleSupply converts a whole-token supply to base units (supply * 10^decimals)
func ScaleSupply(supply int64, decimals uint8) *big.Int {
	return decimal.NewFromInt(supply).Shift(int32(decimals)).BigInt()
}

func sameConstructor(a, b abi.Method) bool {
	if len(a.Inputs) != len(b.Inputs) {
		return false
	}
	for i := range a.Inputs {
		if a.Inputs[i].Type.String() != b.Inputs[i].Type.String() {
			return false
		}
	}
	return true
}

func constructorTypes(m abi.Method) string {
	types := make([]string, len(m.Inputs))
	for i, in := range m.Inputs {
		types[i] = in.Type.String()
	}
	return strings.Join(types, ",")
}

func mustParseABI(data []byte) abi.ABI {
	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded ABI: %v", err))
	}
	return parsed
}
