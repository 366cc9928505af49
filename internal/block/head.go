package block

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/banka-network/banka-backend/internal/adapter"
	"github.com/banka-network/banka-backend/internal/logger"
)

// DEFAULT_HEAD_TTL keeps health probes from hitting the node on every request
const DEFAULT_HEAD_TTL = 5 * time.Second

// Head is the latest block observed from the node
type Head struct {
	Number    uint64
	FetchedAt time.Time
}

// HeadReader is the part of the chain client the head provider needs.
// adapter.EthClient satisfies it.
type HeadReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// HeadProvider returns the latest block number of the chain the deployer targets
//
//go:generate mockgen -source=head.go -destination=../mocks/block_head_provider.go -package=mocks -mock_names=HeadProvider=MockHeadProvider
type HeadProvider interface {
	// LatestBlock returns the latest block number, possibly cached
	LatestBlock(ctx context.Context) (uint64, error)
}

// Config holds configuration for the HeadProvider
type Config struct {
	// TTL is how long a fetched head is served from cache. Zero disables caching.
	TTL time.Duration

	// StaleWindow is how long a cached head may still be served when the node fails.
	// Zero reports every failure, which is what health checks want.
	StaleWindow time.Duration
}

type headProvider struct {
	reader HeadReader
	config Config
	clock  adapter.Clock

	mu   sync.RWMutex
	head *Head
}

// NewHeadProvider creates a HeadProvider with TTL-based caching
func NewHeadProvider(reader HeadReader, config Config, clock adapter.Clock) HeadProvider {
	if clock == nil {
		clock = adapter.NewClock()
	}
	return &headProvider{
		reader: reader,
		config: config,
		clock:  clock,
	}
}

func (p *headProvider) LatestBlock(ctx context.Context) (uint64, error) {
	p.mu.RLock()
	cached := p.head
	p.mu.RUnlock()

	now := p.clock.Now()
	if cached != nil && now.Sub(cached.FetchedAt) < p.config.TTL {
		logger.DebugCtx(ctx, "Using cached block head", zap.Uint64("block_number", cached.Number))
		return cached.Number, nil
	}

	number, err := p.reader.BlockNumber(ctx)
	if err != nil {
		if cached != nil && now.Sub(cached.FetchedAt) < p.config.StaleWindow {
			logger.DebugCtx(ctx, "Using stale block head", zap.Uint64("block_number", cached.Number), zap.Error(err))
			return cached.Number, nil
		}
		return 0, fmt.Errorf("failed to fetch latest block: %w", err)
	}

	p.mu.Lock()
	p.head = &Head{Number: number, FetchedAt: now}
	p.mu.Unlock()

	return number, nil
}
