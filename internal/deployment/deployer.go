package deployment

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/banka-network/banka-backend/internal/adapter"
	"github.com/banka-network/banka-backend/internal/contracts"
	"github.com/banka-network/banka-backend/internal/domain"
	"github.com/banka-network/banka-backend/internal/logger"
)

const (
	DEFAULT_DEPLOY_GAS_LIMIT      = uint64(2_000_000)
	DEFAULT_CONNECT_TIMEOUT       = 10 * time.Second
	DEFAULT_RECEIPT_TIMEOUT       = 300 * time.Second
	DEFAULT_RECEIPT_POLL_INTERVAL = 2 * time.Second

	// REASON_TIMEOUT is the failure reason when no receipt is observed within the receipt timeout
	REASON_TIMEOUT = "timeout"
)

// DEFAULT_MIN_DEPLOYER_BALANCE_WEI is 0.01 of the native coin
var DEFAULT_MIN_DEPLOYER_BALANCE_WEI = big.NewInt(10_000_000_000_000_000)

// Config holds the deployer configuration
type Config struct {
	// ChainID, when set, must match the chain ID reported by the node
	ChainID *big.Int

	GasLimit       uint64
	ConnectTimeout time.Duration
	ReceiptTimeout time.Duration
	PollInterval   time.Duration

	// MinBalanceWei is the balance under which a low-balance warning is logged
	MinBalanceWei *big.Int
}

func (c *Config) applyDefaults() {
	if c.GasLimit == 0 {
		c.GasLimit = DEFAULT_DEPLOY_GAS_LIMIT
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DEFAULT_CONNECT_TIMEOUT
	}
	if c.ReceiptTimeout <= 0 {
		c.ReceiptTimeout = DEFAULT_RECEIPT_TIMEOUT
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DEFAULT_RECEIPT_POLL_INTERVAL
	}
	if c.MinBalanceWei == nil {
		c.MinBalanceWei = DEFAULT_MIN_DEPLOYER_BALANCE_WEI
	}
}

// Deployer attempts on-chain deployments of the event token contract
//
//go:generate mockgen -source=deployer.go -destination=../mocks/deployer.go -package=mocks -mock_names=Deployer=MockDeployer
type Deployer interface {
	// Deploy submits exactly one contract creation transaction and waits for its receipt.
	// It never returns an error: every outcome is carried by the returned result.
	Deploy(ctx context.Context, req domain.DeploymentRequest) domain.AttemptResult

	// Available reports whether a chain client, descriptor and key are configured
	Available() bool
}

type deployer struct {
	client     adapter.EthClient
	descriptor *contracts.Descriptor
	key        *ecdsa.PrivateKey
	from       common.Address
	config     Config
}

// NewDeployer creates a deployer. Any of client, descriptor and key may be nil,
// in which case every attempt resolves to domain.Unavailable.
func NewDeployer(client adapter.EthClient, descriptor *contracts.Descriptor, key *ecdsa.PrivateKey, cfg Config) Deployer {
	cfg.applyDefaults()

	d := &deployer{
		client:     client,
		descriptor: descriptor,
		key:        key,
		config:     cfg,
	}
	if key != nil {
		d.from = crypto.PubkeyToAddress(key.PublicKey)
	}

	return d
}

func (d *deployer) Available() bool {
	return d.client != nil && d.descriptor != nil && d.key != nil
}

func (d *deployer) Deploy(ctx context.Context, req domain.DeploymentRequest) (result domain.AttemptResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("panic during deployment: %v", r),
				zap.String("tokenName", req.TokenName))
			result = domain.Failed{Reason: fmt.Sprintf("panic: %v", r)}
		}
	}()

	if !d.Available() {
		logger.WarnCtx(ctx, "Deployer not configured, skipping on-chain deployment",
			zap.String("tokenName", req.TokenName))
		return domain.Unavailable{}
	}

	chainID, err := d.probe(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Chain client not connected", zap.Error(err))
		return domain.Unavailable{}
	}
	if d.config.ChainID != nil && d.config.ChainID.Cmp(chainID) != 0 {
		return d.fail(ctx, fmt.Sprintf("chain id mismatch: expected %s, node reports %s", d.config.ChainID, chainID), "")
	}

	d.checkBalance(ctx)

	nonce, err := d.client.PendingNonceAt(ctx, d.from)
	if err != nil {
		return d.fail(ctx, fmt.Sprintf("failed to get nonce: %v", err), "")
	}

	gasPrice, err := d.client.SuggestGasPrice(ctx)
	if err != nil {
		return d.fail(ctx, fmt.Sprintf("failed to get gas price: %v", err), "")
	}

	data, err := d.descriptor.PackConstructor(req)
	if err != nil {
		return d.fail(ctx, err.Error(), "")
	}

	tx := types.NewContractCreation(nonce, big.NewInt(0), d.config.GasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), d.key)
	if err != nil {
		return d.fail(ctx, fmt.Sprintf("failed to sign transaction: %v", err), "")
	}

	if err := d.client.SendTransaction(ctx, signedTx); err != nil {
		return d.fail(ctx, fmt.Sprintf("failed to send transaction: %v", err), "")
	}

	txHash := signedTx.Hash().Hex()
	logger.InfoCtx(ctx, "Deployment transaction submitted",
		zap.String("txHash", txHash),
		zap.Uint64("nonce", nonce),
		zap.String("gasPrice", gasPrice.String()),
		zap.String("tokenName", req.TokenName),
		zap.String("tokenSymbol", req.TokenSymbol),
	)

	receipt, err := d.waitForReceipt(ctx, signedTx.Hash())
	if err != nil {
		if ctx.Err() != nil {
			return d.fail(ctx, fmt.Sprintf("receipt wait aborted: %v", ctx.Err()), txHash)
		}
		return d.fail(ctx, REASON_TIMEOUT, txHash)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return d.fail(ctx, fmt.Sprintf("transaction reverted in block %s", receipt.BlockNumber), txHash)
	}
	if receipt.ContractAddress == (common.Address{}) {
		return d.fail(ctx, "receipt carries no contract address", txHash)
	}

	deployed := domain.Deployed{
		ContractAddress: domain.NewChainAddress(receipt.ContractAddress),
		TxHash:          txHash,
		GasUsed:         receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		deployed.BlockNumber = receipt.BlockNumber.Uint64()
	}

	logger.InfoCtx(ctx, "Token contract deployed",
		zap.String("contractAddress", deployed.ContractAddress.String()),
		zap.String("txHash", txHash),
		zap.Uint64("gasUsed", deployed.GasUsed),
		zap.Uint64("blockNumber", deployed.BlockNumber),
	)

	d.verify(ctx, receipt.ContractAddress)

	return deployed
}

// probe checks connectivity and returns the chain ID reported by the node
func (d *deployer) probe(ctx context.Context) (*big.Int, error) {
	probeCtx, cancel := context.WithTimeout(ctx, d.config.ConnectTimeout)
	defer cancel()

	return d.client.ChainID(probeCtx)
}

// checkBalance logs a warning when the deployer balance is low. It never fails the attempt.
func (d *deployer) checkBalance(ctx context.Context) {
	balance, err := d.client.BalanceAt(ctx, d.from, nil)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to get deployer balance", zap.Error(err))
		return
	}

	if balance.Cmp(d.config.MinBalanceWei) < 0 {
		logger.WarnCtx(ctx, "Deployer balance is low",
			zap.String("address", d.from.Hex()),
			zap.String("balanceWei", balance.String()),
			zap.String("minBalanceWei", d.config.MinBalanceWei.String()),
		)
	}
}

// waitForReceipt polls for the receipt of an already submitted transaction.
// The transaction is never resubmitted.
func (d *deployer) waitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, d.config.ReceiptTimeout)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.config.PollInterval
	b.MaxInterval = 10 * d.config.PollInterval
	b.MaxElapsedTime = d.config.ReceiptTimeout
	b.Multiplier = 1.5
	b.RandomizationFactor = 0.2

	var receipt *types.Receipt
	operation := func() error {
		r, err := d.client.TransactionReceipt(waitCtx, hash)
		if err != nil {
			if !errors.Is(err, ethereum.NotFound) {
				logger.DebugCtx(ctx, "Receipt query failed, retrying",
					zap.String("txHash", hash.Hex()),
					zap.Error(err),
				)
			}
			return err
		}
		receipt = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, waitCtx)); err != nil {
		return nil, fmt.Errorf("receipt not observed for %s: %w", hash.Hex(), err)
	}

	return receipt, nil
}

// verify reads back the deployed contract's identity. Failures are logged only.
func (d *deployer) verify(ctx context.Context, address common.Address) {
	name, err := d.callString(ctx, address, "name")
	if err != nil {
		logger.WarnCtx(ctx, "Failed to verify deployed contract", zap.String("method", "name"), zap.Error(err))
		return
	}
	symbol, err := d.callString(ctx, address, "symbol")
	if err != nil {
		logger.WarnCtx(ctx, "Failed to verify deployed contract", zap.String("method", "symbol"), zap.Error(err))
		return
	}
	supply, err := d.call(ctx, address, "totalSupply")
	if err != nil {
		logger.WarnCtx(ctx, "Failed to verify deployed contract", zap.String("method", "totalSupply"), zap.Error(err))
		return
	}

	logger.InfoCtx(ctx, "Deployed contract verified",
		zap.String("contractAddress", address.Hex()),
		zap.String("name", name),
		zap.String("symbol", symbol),
		zap.Any("totalSupply", supply),
	)
}

func (d *deployer) callString(ctx context.Context, address common.Address, method string) (string, error) {
	out, err := d.call(ctx, address, method)
	if err != nil {
		return "", err
	}
	s, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("unexpected %s output type %T", method, out)
	}
	return s, nil
}

func (d *deployer) call(ctx context.Context, address common.Address, method string) (interface{}, error) {
	input, err := contracts.ERC20ABI.Pack(method)
	if err != nil {
		return nil, err
	}

	output, err := d.client.CallContract(ctx, ethereum.CallMsg{To: &address, Data: input}, nil)
	if err != nil {
		return nil, err
	}

	values, err := contracts.ERC20ABI.Unpack(method, output)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected %s output length %d", method, len(values))
	}

	return values[0], nil
}

func (d *deployer) fail(ctx context.Context, reason string, txHash string) domain.Failed {
	logger.WarnCtx(ctx, "Token deployment failed",
		zap.String("reason", reason),
		zap.String("txHash", txHash),
	)
	return domain.Failed{Reason: reason, TxHash: txHash}
}
