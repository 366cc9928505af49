package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/banka-network/banka-backend/internal/adapter"
	"github.com/banka-network/banka-backend/internal/config"
	"github.com/banka-network/banka-backend/internal/contracts"
	"github.com/banka-network/banka-backend/internal/deployment"
	"github.com/banka-network/banka-backend/internal/domain"
	"github.com/banka-network/banka-backend/internal/logger"
	"github.com/banka-network/banka-backend/internal/token"
	"github.com/banka-network/banka-backend/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	eventName  = flag.String("event", "", "Event name, used for the token full name and symbol")
	tokenName  = flag.String("token", "", "Token name")
	supply     = flag.Int64("supply", 0, "Initial supply in whole tokens")
	owner      = flag.String("owner", "", "Owner address receiving the initial supply (defaults to the deployer)")
)

// result is the JSON document printed on stdout
type result struct {
	Status           domain.DeploymentStatus `json:"deployment_status"`
	Message          string                  `json:"message"`
	TokenName        string                  `json:"token_name"`
	TokenSymbol      string                  `json:"token_symbol"`
	TotalSupply      int64                   `json:"total_supply"`
	OwnerAddress     string                  `json:"owner_address"`
	ContractAddress  string                  `json:"contract_address"`
	OnChain          bool                    `json:"on_chain"`
	DeploymentTxHash *string                 `json:"deployment_tx_hash"`
	SubmittedTxHash  string                  `json:"submitted_tx_hash,omitempty"`
	FailureReason    string                  `json:"failure_reason,omitempty"`
	GasUsed          uint64                  `json:"gas_used,omitempty"`
	BlockNumber      uint64                  `json:"block_number,omitempty"`
}

func main() {
	flag.Parse()

	if *eventName == "" || *tokenName == "" || *supply <= 0 {
		fmt.Fprintln(os.Stderr, "usage: token-deployer -event <name> -token <name> -supply <n> [-owner <address>]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *owner != "" && !common.IsHexAddress(*owner) {
		fmt.Fprintf(os.Stderr, "invalid owner address: %s\n", *owner)
		os.Exit(2)
	}

	config.ChdirRepoRoot()
	cfg, err := config.LoadDeployerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Service:         "token-deployer",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	if cfg.Ethereum.RPCURL == "" {
		logger.FatalCtx(ctx, "ethereum.rpc_url is required")
	}
	if !cfg.Ethereum.HasDeployerKey() {
		logger.FatalCtx(ctx, "ethereum.deployer_private_key or ethereum.deployer_mnemonic is required")
	}
	if cfg.Contract.ArtifactPath == "" {
		logger.FatalCtx(ctx, "contract.artifact_path is required")
	}

	var w *wallet.Wallet
	if cfg.Ethereum.DeployerPrivateKey != "" {
		w, err = wallet.FromPrivateKeyHex(cfg.Ethereum.DeployerPrivateKey)
	} else {
		w, err = wallet.FromMnemonic(cfg.Ethereum.DeployerMnemonic, "", cfg.Ethereum.DerivationPath)
	}
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load deployer key", zap.Error(err))
	}

	descriptor, err := contracts.LoadArtifact(cfg.Contract.ArtifactPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load contract artifact", zap.Error(err), zap.String("path", cfg.Contract.ArtifactPath))
	}

	minBalance, err := cfg.Ethereum.MinBalanceWei()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid ethereum configuration", zap.Error(err))
	}

	// A dial failure is not fatal: the deployer resolves it to a mock outcome like the API does
	var chain adapter.EthClient
	dialCtx, dialCancel := context.WithTimeout(ctx, cfg.Ethereum.ConnectTimeout)
	chain, err = adapter.NewEthClientDialer().Dial(dialCtx, cfg.Ethereum.RPCURL)
	dialCancel()
	if err != nil {
		logger.WarnCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err))
		chain = nil
	} else {
		defer chain.Close()
	}

	var chainID *big.Int
	if cfg.Ethereum.ChainID > 0 {
		chainID = big.NewInt(cfg.Ethereum.ChainID)
	}
	deployer := deployment.NewDeployer(chain, descriptor, w.PrivateKey(), deployment.Config{
		ChainID:        chainID,
		GasLimit:       cfg.Ethereum.DeployGasLimit,
		ConnectTimeout: cfg.Ethereum.ConnectTimeout,
		ReceiptTimeout: cfg.Ethereum.ReceiptTimeout,
		PollInterval:   cfg.Ethereum.ReceiptPollInterval,
		MinBalanceWei:  minBalance,
	})
	resolver := deployment.NewResolver(descriptor.ABIJSON(), nil)

	ownerAddress := w.ChainAddress()
	if *owner != "" {
		ownerAddress = domain.NewChainAddress(common.HexToAddress(*owner))
	}

	req := token.DeploymentRequest(
		token.EventContext{Name: *eventName, OrganizerWallet: ownerAddress.String()},
		token.CreateRequest{Name: *tokenName, InitialSupply: *supply},
		ownerAddress,
	)
	logger.InfoCtx(ctx, "Deploying event token",
		zap.String("tokenName", req.TokenName),
		zap.String("tokenSymbol", req.TokenSymbol),
		zap.Int64("totalSupply", req.TotalSupply),
		zap.String("owner", ownerAddress.String()),
		zap.String("deployer", w.Address().Hex()),
	)

	attempt := deployer.Deploy(ctx, req)
	outcome := resolver.Resolve(attempt)

	out := newResult(req, ownerAddress, attempt, outcome)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		logger.FatalCtx(ctx, "Failed to encode result", zap.Error(err))
	}

	if outcome.Status != domain.DeploymentStatusDeployed {
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}

// newResult builds the printed document. A failed attempt that already sent its transaction
// reports the hash as submitted_tx_hash so the operator can follow it.
func newResult(req domain.DeploymentRequest, owner domain.ChainAddress, attempt domain.AttemptResult, outcome deployment.Outcome) result {
	out := result{
		Status:           outcome.Status,
		Message:          outcome.Message(),
		TokenName:        req.TokenName,
		TokenSymbol:      req.TokenSymbol,
		TotalSupply:      req.TotalSupply,
		OwnerAddress:     owner.String(),
		ContractAddress:  outcome.ContractAddress.String(),
		OnChain:          outcome.ContractAddress.OnChain(),
		DeploymentTxHash: outcome.DeploymentTxHash,
	}
	switch a := attempt.(type) {
	case domain.Deployed:
		out.SubmittedTxHash = a.TxHash
		out.GasUsed = a.GasUsed
		out.BlockNumber = a.BlockNumber
	case domain.Failed:
		out.SubmittedTxHash = a.TxHash
		out.FailureReason = a.Reason
	}
	return out
}
