package main

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/banka-network/banka-backend/internal/adapter"
	"github.com/banka-network/banka-backend/internal/api/middleware"
	"github.com/banka-network/banka-backend/internal/api/server"
	"github.com/banka-network/banka-backend/internal/api/shared/constants"
	"github.com/banka-network/banka-backend/internal/api/shared/executor"
	"github.com/banka-network/banka-backend/internal/auth"
	"github.com/banka-network/banka-backend/internal/block"
	"github.com/banka-network/banka-backend/internal/config"
	"github.com/banka-network/banka-backend/internal/contracts"
	"github.com/banka-network/banka-backend/internal/deployment"
	"github.com/banka-network/banka-backend/internal/logger"
	"github.com/banka-network/banka-backend/internal/metrics"
	"github.com/banka-network/banka-backend/internal/store"
	"github.com/banka-network/banka-backend/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Service:         constants.SERVICE_NAME,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting BanKa API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Chain client is optional: without it every token is created in mock mode
	var chain adapter.EthClient
	if cfg.Ethereum.RPCURL != "" {
		dialCtx, dialCancel := context.WithTimeout(ctx, cfg.Ethereum.ConnectTimeout)
		chain, err = adapter.NewEthClientDialer().Dial(dialCtx, cfg.Ethereum.RPCURL)
		dialCancel()
		if err != nil {
			logger.WarnCtx(ctx, "Failed to dial Ethereum RPC, tokens will be created in mock mode", zap.Error(err))
			chain = nil
		} else {
			defer chain.Close()
			logger.InfoCtx(ctx, "Connected to Ethereum RPC", zap.Int64("chain_id", cfg.Ethereum.ChainID))
		}
	} else {
		logger.WarnCtx(ctx, "Ethereum RPC URL not configured, tokens will be created in mock mode")
	}

	key := loadDeployerKey(ctx, cfg.Ethereum)
	descriptor := loadDescriptor(ctx, cfg.Contract)

	minBalance, err := cfg.Ethereum.MinBalanceWei()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid ethereum configuration", zap.Error(err))
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.New(registry)

	clock := adapter.NewClock()
	deployer := deployment.NewDeployer(chain, descriptor, key, deployment.Config{
		ChainID:        expectedChainID(cfg.Ethereum.ChainID),
		GasLimit:       cfg.Ethereum.DeployGasLimit,
		ConnectTimeout: cfg.Ethereum.ConnectTimeout,
		ReceiptTimeout: cfg.Ethereum.ReceiptTimeout,
		PollInterval:   cfg.Ethereum.ReceiptPollInterval,
		MinBalanceWei:  minBalance,
	})
	resolver := deployment.NewResolver(abiFor(descriptor), nil)

	if cfg.Auth.JWTSecret == "" {
		logger.WarnCtx(ctx, "JWT secret not configured, bearer authentication is disabled")
	}
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL, clock)

	var head block.HeadProvider
	if chain != nil {
		head = block.NewHeadProvider(chain, block.Config{TTL: block.DEFAULT_HEAD_TTL}, clock)
	}

	exec := executor.NewExecutor(
		executor.Config{
			QRScheme:       cfg.QR.Scheme,
			WorkerPoolSize: cfg.Worker.WorkerPoolSize,
		},
		dataStore,
		deployer,
		resolver,
		issuer,
		head,
		recorder,
		clock,
	)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,

		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}
	authConfig := middleware.AuthConfig{
		Issuer:  issuer,
		APIKeys: cfg.Auth.APIKeys,
	}

	srv := server.New(serverConfig, exec, authConfig, recorder, registry)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}

// loadDeployerKey returns the deployer key, or nil when none is configured
func loadDeployerKey(ctx context.Context, cfg config.EthereumConfig) *ecdsa.PrivateKey {
	if !cfg.HasDeployerKey() {
		logger.WarnCtx(ctx, "Deployer key not configured, tokens will be created in mock mode")
		return nil
	}

	var (
		w   *wallet.Wallet
		err error
	)
	if cfg.DeployerPrivateKey != "" {
		w, err = wallet.FromPrivateKeyHex(cfg.DeployerPrivateKey)
	} else {
		w, err = wallet.FromMnemonic(cfg.DeployerMnemonic, "", cfg.DerivationPath)
	}
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load deployer key", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Loaded deployer key", zap.String("address", w.Address().Hex()))
	return w.PrivateKey()
}

// loadDescriptor returns the token contract descriptor, or nil when the artifact is missing or invalid
func loadDescriptor(ctx context.Context, cfg config.ContractConfig) *contracts.Descriptor {
	if cfg.ArtifactPath == "" {
		logger.WarnCtx(ctx, "Contract artifact path not configured, tokens will be created in mock mode")
		return nil
	}

	descriptor, err := contracts.LoadArtifact(cfg.ArtifactPath)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load contract artifact, tokens will be created in mock mode",
			zap.Error(err),
			zap.String("path", cfg.ArtifactPath),
		)
		return nil
	}

	logger.InfoCtx(ctx, "Loaded contract artifact",
		zap.String("name", descriptor.Name()),
		zap.String("path", cfg.ArtifactPath),
	)
	return descriptor
}

// abiFor returns the ABI stored with deployed tokens
func abiFor(descriptor *contracts.Descriptor) json.RawMessage {
	if descriptor == nil {
		return contracts.EventTokenABIJSON()
	}
	return descriptor.ABIJSON()
}

// expectedChainID returns nil when no chain ID is configured, accepting whatever the node reports
func expectedChainID(id int64) *big.Int {
	if id <= 0 {
		return nil
	}
	return big.NewInt(id)
}
