package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"

	"github.com/banka-network/banka-backend/internal/domain"
)

// ErrInvalidMnemonic is returned when a mnemonic fails BIP39 validation
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Wallet is a secp256k1 key pair with its Ethereum-compatible address
type Wallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// New generates a wallet with a fresh random key
func New() (*Wallet, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return fromKey(key), nil
}

// FromPrivateKeyHex restores a wallet from a hex private key, with or without 0x prefix
func FromPrivateKeyHex(hexKey string) (*Wallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return fromKey(key), nil
}

// FromMnemonic derives a wallet from a BIP39 mnemonic along a BIP32 path.
// An empty path uses m/44'/60'/0'/0/0.
func FromMnemonic(mnemonic, passphrase, path string) (*Wallet, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	if path == "" {
		path = domain.DEFAULT_DERIVATION_PATH
	}

	derivationPath, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse derivation path: %w", err)
	}

	seed := bip39.NewSeed(mnemonic, passphrase)
	// network params only affect serialization, not derivation
	extKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	for _, index := range derivationPath {
		extKey, err = extKey.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child key %d: %w", index, err)
		}
	}

	privKey, err := extKey.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get private key: %w", err)
	}

	return fromKey(privKey.ToECDSA()), nil
}

// NewMnemonic generates a 12-word BIP39 mnemonic
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	return bip39.NewMnemonic(entropy)
}

func fromKey(key *ecdsa.PrivateKey) *Wallet {
	return &Wallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// PrivateKey returns the signing key
func (w *Wallet) PrivateKey() *ecdsa.PrivateKey {
	return w.key
}

// Address returns the checksummed account address
func (w *Wallet) Address() common.Address {
	return w.address
}

// ChainAddress returns the address as an on-chain destination
func (w *Wallet) ChainAddress() domain.ChainAddress {
	return domain.NewChainAddress(w.address)
}

// PrivateKeyHex returns the 0x-prefixed hex private key
func (w *Wallet) PrivateKeyHex() string {
	return hexutil.Encode(crypto.FromECDSA(w.key))
}
