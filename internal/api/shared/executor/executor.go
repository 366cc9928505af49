package executor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/banka-network/banka-backend/internal/adapter"
	"github.com/banka-network/banka-backend/internal/api/shared/constants"
	"github.com/banka-network/banka-backend/internal/api/shared/dto"
	apierrors "github.com/banka-network/banka-backend/internal/api/shared/errors"
	"github.com/banka-network/banka-backend/internal/auth"
	"github.com/banka-network/banka-backend/internal/block"
	"github.com/banka-network/banka-backend/internal/deployment"
	"github.com/banka-network/banka-backend/internal/domain"
	"github.com/banka-network/banka-backend/internal/logger"
	"github.com/banka-network/banka-backend/internal/metrics"
	"github.com/banka-network/banka-backend/internal/store"
	"github.com/banka-network/banka-backend/internal/store/schema"
	"github.com/banka-network/banka-backend/internal/token"
	"github.com/banka-network/banka-backend/internal/wallet"
)

const (
	HEALTH_STATUS_HEALTHY   = "healthy"
	HEALTH_STATUS_DEGRADED  = "degraded"
	HEALTH_STATUS_UNHEALTHY = "unhealthy"

	TOKEN_TYPE_BEARER = "Bearer"

	DEFAULT_WORKER_POOL_SIZE = 10
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Register creates a user with a fresh custodial wallet and returns a session token
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	// Login checks credentials and returns a session token
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	// GetProfile returns the user's own profile
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	// GetUser returns the public view of a user
	GetUser(ctx context.Context, userID string) (*dto.PublicUserResponse, error)

	// CreateEvent creates an event organized by organizerID
	CreateEvent(ctx context.Context, organizerID string, req dto.CreateEventRequest) (*dto.CreateEventResponse, error)
	// ListOrganizerEvents lists the events of an organizer
	ListOrganizerEvents(ctx context.Context, organizerID string) (*dto.EventListResponse, error)
	// ListPublicEvents lists active events
	ListPublicEvents(ctx context.Context, limit int) (*dto.EventListResponse, error)
	// GetEvent returns an event with its tokens
	GetEvent(ctx context.Context, eventID string) (*dto.EventResponse, error)

	// CreateToken deploys (or attempts to deploy) and records an event token
	CreateToken(ctx context.Context, userID string, eventID string, req dto.CreateTokenRequest) (*dto.CreateTokenResponse, error)
	// ListEventTokens lists the tokens of an event
	ListEventTokens(ctx context.Context, eventID string) (*dto.TokenListResponse, error)
	// GetToken returns a token
	GetToken(ctx context.Context, tokenID string) (*dto.TokenResponse, error)
	// DeactivateToken stops sales of a token
	DeactivateToken(ctx context.Context, userID string, tokenID string) (*dto.TokenResponse, error)

	// Purchase records a simulated token purchase
	Purchase(ctx context.Context, userID string, req dto.PurchaseRequest) (*dto.CreatePurchaseResponse, error)
	// Transfer records a simulated token transfer
	Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*dto.CreateTransferResponse, error)
	// GetTransactions returns the user's purchases and transfers, newest first
	GetTransactions(ctx context.Context, userID string) (*dto.TransactionListResponse, error)

	// GenerateQR returns the payment QR payload of a vendor address
	GenerateQR(ctx context.Context, vendorAddress string) (*dto.QRResponse, error)
	// Health probes the database and the chain
	Health(ctx context.Context) *dto.HealthResponse
}

// Config holds executor configuration
type Config struct {
	QRScheme       string
	WorkerPoolSize int
}

type executor struct {
	config   Config
	store    store.Store
	deployer deployment.Deployer
	resolver *deployment.Resolver
	issuer   *auth.TokenIssuer
	head     block.HeadProvider
	metrics  *metrics.Recorder
	clock    adapter.Clock
	pool     pond.Pool
}

// NewExecutor creates an executor. head and recorder may be nil.
func NewExecutor(
	cfg Config,
	store store.Store,
	deployer deployment.Deployer,
	resolver *deployment.Resolver,
	issuer *auth.TokenIssuer,
	head block.HeadProvider,
	recorder *metrics.Recorder,
	clock adapter.Clock,
) Executor {
	if cfg.QRScheme == "" {
		cfg.QRScheme = domain.DEFAULT_QR_SCHEME
	}
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}

	return &executor{
		config:   cfg,
		store:    store,
		deployer: deployer,
		resolver: resolver,
		issuer:   issuer,
		head:     head,
		metrics:  recorder,
		clock:    clock,
		pool:     pond.NewPool(cfg.WorkerPoolSize),
	}
}

// =============================================================================
// Users
// =============================================================================

func (e *executor) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := e.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if existing != nil {
		return nil, apierrors.NewConflictError("Email already registered")
	}

	w, err := wallet.New()
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to create wallet: %v", err))
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to hash password: %v", err))
	}

	user := &schema.User{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		PasswordHash:     passwordHash,
		WalletAddress:    w.Address().Hex(),
		WalletPrivateKey: w.PrivateKeyHex(),
		CreatedAt:        e.clock.Now(),
	}
	if err := e.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, apierrors.NewConflictError("Email already registered")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create user: %v", err))
	}

	logger.InfoCtx(ctx, "User registered",
		zap.String("userID", user.ID),
		zap.String("wallet", user.WalletAddress),
	)

	resp, err := e.authResponse(user)
	if err != nil {
		return nil, err
	}
	resp.Message = "User registered successfully"
	return resp, nil
}

func (e *executor) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := e.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apierrors.NewUnauthorizedError("Invalid email or password")
	}

	return e.authResponse(user)
}

func (e *executor) authResponse(user *schema.User) (*dto.AuthResponse, error) {
	accessToken, expiresAt, err := e.issuer.Issue(user.ID)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to issue token: %v", err))
	}

	return &dto.AuthResponse{
		User:        *dto.MapUserToDTO(user),
		AccessToken: accessToken,
		TokenType:   TOKEN_TYPE_BEARER,
		ExpiresAt:   expiresAt,
	}, nil
}

func (e *executor) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := e.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.MapUserToDTO(user), nil
}

func (e *executor) GetUser(ctx context.Context, userID string) (*dto.PublicUserResponse, error) {
	user, err := e.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.MapPublicUserToDTO(user), nil
}

func (e *executor) getUser(ctx context.Context, userID string) (*schema.User, error) {
	user, err := e.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, apierrors.NewNotFoundError("User not found")
	}
	return user, nil
}

// =============================================================================
// Events
// =============================================================================

func (e *executor) CreateEvent(ctx context.Context, organizerID string, req dto.CreateEventRequest) (*dto.CreateEventResponse, error) {
	organizer, err := e.getUser(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	event := &schema.Event{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		Location:        req.Location,
		Date:            req.Date.UTC(),
		OrganizerID:     organizer.ID,
		OrganizerWallet: organizer.WalletAddress,
		IsActive:        true,
		CreatedAt:       e.clock.Now(),
	}
	if err := e.store.CreateEvent(ctx, event); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create event: %v", err))
	}

	return &dto.CreateEventResponse{
		Event:   *dto.MapEventToDTO(event),
		Message: "Event created successfully",
	}, nil
}

func (e *executor) ListOrganizerEvents(ctx context.Context, organizerID string) (*dto.EventListResponse, error) {
	events, err := e.store.ListEventsByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list events: %v", err))
	}
	return &dto.EventListResponse{Events: mapEvents(events)}, nil
}

func (e *executor) ListPublicEvents(ctx context.Context, limit int) (*dto.EventListResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_PUBLIC_EVENTS_LIMIT
	}
	limit = min(limit, constants.MAX_PUBLIC_EVENTS_LIMIT)

	events, err := e.store.ListPublicEvents(ctx, limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list events: %v", err))
	}
	return &dto.EventListResponse{Events: mapEvents(events)}, nil
}

func mapEvents(events []schema.Event) []dto.EventResponse {
	return lo.Map(events, func(event schema.Event, _ int) dto.EventResponse {
		return *dto.MapEventToDTO(&event)
	})
}

func (e *executor) GetEvent(ctx context.Context, eventID string) (*dto.EventResponse, error) {
	event, err := e.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	tokens, err := e.listTokens(ctx, eventID)
	if err != nil {
		return nil, err
	}

	eventDTO := dto.MapEventToDTO(event)
	eventDTO.Tokens = tokens
	return eventDTO, nil
}

func (e *executor) getEvent(ctx context.Context, eventID string) (*schema.Event, error) {
	event, err := e.store.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get event: %v", err))
	}
	if event == nil {
		return nil, apierrors.NewNotFoundError("Event not found")
	}
	return event, nil
}

// =============================================================================
// Tokens
// =============================================================================

func (e *executor) CreateToken(ctx context.Context, userID string, eventID string, req dto.CreateTokenRequest) (*dto.CreateTokenResponse, error) {
	event, err := e.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != userID {
		return nil, apierrors.NewForbiddenError("Only the event organizer can create tokens")
	}
	if !common.IsHexAddress(event.OrganizerWallet) {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Event organizer wallet is invalid: %s", event.OrganizerWallet))
	}

	eventCtx := token.EventContext{
		ID:              event.ID,
		Name:            event.Name,
		OrganizerWallet: event.OrganizerWallet,
	}
	createReq := token.CreateRequest{
		Name:          req.Name,
		PriceInCents:  req.PriceCents,
		InitialSupply: req.InitialSupply,
		SaleMode:      req.SaleMode,
	}
	owner := domain.NewChainAddress(common.HexToAddress(event.OrganizerWallet))

	// a submitted transaction is always waited for and recorded, even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	start := e.clock.Now()
	result := e.deployer.Deploy(ctx, token.DeploymentRequest(eventCtx, createReq, owner))
	outcome := e.resolver.Resolve(result)
	e.metrics.ObserveDeployment(outcome.Status, e.clock.Since(start))

	record := token.BuildRecord(uuid.NewString(), e.clock.Now(), eventCtx, createReq, outcome)
	if err := e.store.CreateToken(ctx, dto.MapTokenRecordToSchema(record)); err != nil {
		if outcome.Status == domain.DeploymentStatusDeployed {
			// the contract exists on-chain but has no record
			logger.ErrorCtx(ctx, fmt.Errorf("failed to record deployed token: %w", err),
				zap.String("eventID", event.ID),
				zap.String("contractAddress", record.ContractAddress.String()),
			)
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create token: %v", err))
	}

	logger.InfoCtx(ctx, "Token created",
		zap.String("tokenID", record.ID),
		zap.String("eventID", event.ID),
		zap.String("symbol", record.Symbol),
		zap.String("deploymentStatus", string(record.DeploymentStatus)),
		zap.String("contractAddress", record.ContractAddress.String()),
	)

	return &dto.CreateTokenResponse{
		Token:   *dto.MapTokenRecordToDTO(record),
		Message: outcome.Message(),
	}, nil
}

func (e *executor) ListEventTokens(ctx context.Context, eventID string) (*dto.TokenListResponse, error) {
	if _, err := e.getEvent(ctx, eventID); err != nil {
		return nil, err
	}

	tokens, err := e.listTokens(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenListResponse{Tokens: tokens}, nil
}

func (e *executor) listTokens(ctx context.Context, eventID string) ([]dto.TokenResponse, error) {
	tokens, err := e.store.ListTokensByEvent(ctx, eventID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list tokens: %v", err))
	}

	tokenDTOs := make([]dto.TokenResponse, 0, len(tokens))
	for i := range tokens {
		tokenDTO, err := dto.MapTokenToDTO(&tokens[i])
		if err != nil {
			return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to map token: %v", err))
		}
		tokenDTOs = append(tokenDTOs, *tokenDTO)
	}
	return tokenDTOs, nil
}

func (e *executor) GetToken(ctx context.Context, tokenID string) (*dto.TokenResponse, error) {
	t, err := e.getToken(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	return mapToken(t)
}

func (e *executor) getToken(ctx context.Context, tokenID string) (*schema.Token, error) {
	t, err := e.store.GetTokenByID(ctx, tokenID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get token: %v", err))
	}
	if t == nil {
		return nil, apierrors.NewNotFoundError("Token not found")
	}
	return t, nil
}

func mapToken(t *schema.Token) (*dto.TokenResponse, error) {
	tokenDTO, err := dto.MapTokenToDTO(t)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to map token: %v", err))
	}
	return tokenDTO, nil
}

func (e *executor) DeactivateToken(ctx context.Context, userID string, tokenID string) (*dto.TokenResponse, error) {
	t, err := e.getToken(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	event, err := e.getEvent(ctx, t.EventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != userID {
		return nil, apierrors.NewForbiddenError("Only the event organizer can deactivate tokens")
	}

	if t.IsActive {
		if err := e.store.DeactivateToken(ctx, tokenID); err != nil {
			if errors.Is(err, domain.ErrTokenNotFound) {
				return nil, apierrors.NewNotFoundError("Token not found")
			}
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to deactivate token: %v", err))
		}
		t.IsActive = false
	}

	return mapToken(t)
}

// =============================================================================
// Purchases and transfers
// =============================================================================

// mockTxHash returns a deterministic stand-in transaction hash for a simulated operation
func mockTxHash(id string) string {
	return crypto.Keccak256Hash([]byte(id)).Hex()
}

// activeToken resolves the token traded under a contract address
func (e *executor) activeToken(ctx context.Context, tokenAddress string) (*schema.Token, error) {
	t, err := e.store.GetTokenByContractAddress(ctx, tokenAddress)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get token: %v", err))
	}
	if t == nil {
		return nil, apierrors.NewNotFoundError("Token not found")
	}
	if !t.IsActive {
		return nil, apierrors.NewConflictError(domain.ErrTokenInactive.Error())
	}
	return t, nil
}

// purchaseTotalCents multiplies amount by price, rejecting totals that do not fit in int64
func purchaseTotalCents(amount, priceInCents int64) (int64, error) {
	total := decimal.NewFromInt(amount).Mul(decimal.NewFromInt(priceInCents))
	if total.IsNegative() || total.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, apierrors.NewValidationError(fmt.Sprintf("purchase total out of range: %s cents", total.String()))
	}
	return total.IntPart(), nil
}

func (e *executor) Purchase(ctx context.Context, userID string, req dto.PurchaseRequest) (*dto.CreatePurchaseResponse, error) {
	user, err := e.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	t, err := e.activeToken(ctx, req.TokenAddress)
	if err != nil {
		return nil, err
	}

	totalCents, err := purchaseTotalCents(req.Amount, t.PriceInCents)
	if err != nil {
		return nil, err
	}

	if err := e.store.IncrementTokenSold(ctx, t.ID, req.Amount); err != nil {
		if errors.Is(err, domain.ErrInsufficientSupply) {
			return nil, apierrors.NewConflictError(domain.ErrInsufficientSupply.Error(),
				fmt.Sprintf("remaining supply: %d", t.InitialSupply-t.TotalSold))
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update token supply: %v", err))
	}

	now := e.clock.Now()
	id := ulid.MustNewDefault(now).String()
	purchase := &schema.Purchase{
		ID:           id,
		UserID:       user.ID,
		TokenID:      t.ID,
		TokenAddress: t.ContractAddress,
		Amount:       req.Amount,
		TotalCents:   totalCents,
		Status:       string(domain.TransactionStatusCompleted),
		TxHash:       mockTxHash(id),
		Timestamp:    now,
	}
	if err := e.store.CreatePurchase(ctx, purchase); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to record purchase: %v", err))
	}

	return &dto.CreatePurchaseResponse{
		Purchase: *dto.MapPurchaseToDTO(purchase),
		Message:  "Tokens purchased successfully",
	}, nil
}

func (e *executor) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*dto.CreateTransferResponse, error) {
	user, err := e.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	t, err := e.activeToken(ctx, req.TokenAddress)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	id := ulid.MustNewDefault(now).String()
	transfer := &schema.Transfer{
		ID:           id,
		FromUserID:   user.ID,
		ToAddress:    req.ToAddress,
		TokenAddress: t.ContractAddress,
		Amount:       req.Amount,
		Status:       string(domain.TransactionStatusCompleted),
		TxHash:       mockTxHash(id),
		Timestamp:    now,
	}
	if err := e.store.CreateTransfer(ctx, transfer); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to record transfer: %v", err))
	}

	return &dto.CreateTransferResponse{
		Transfer: *dto.MapTransferToDTO(transfer),
		Message:  "Tokens transferred successfully",
	}, nil
}

func (e *executor) GetTransactions(ctx context.Context, userID string) (*dto.TransactionListResponse, error) {
	if _, err := e.getUser(ctx, userID); err != nil {
		return nil, err
	}

	var (
		purchases []schema.Purchase
		transfers []schema.Transfer
	)
	group := e.pool.NewGroup()
	group.SubmitErr(
		func() error {
			var err error
			purchases, err = e.store.ListPurchasesByUser(ctx, userID)
			return err
		},
		func() error {
			var err error
			transfers, err = e.store.ListTransfersByUser(ctx, userID)
			return err
		},
	)
	if err := group.Wait(); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list transactions: %v", err))
	}

	transactions := append(
		lo.Map(purchases, func(p schema.Purchase, _ int) dto.TransactionResponse {
			return dto.MapPurchaseToTransaction(p)
		}),
		lo.Map(transfers, func(t schema.Transfer, _ int) dto.TransactionResponse {
			return dto.MapTransferToTransaction(t)
		})...,
	)
	slices.SortStableFunc(transactions, func(a, b dto.TransactionResponse) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return &dto.TransactionListResponse{Transactions: transactions}, nil
}

// =============================================================================
// Misc
// =============================================================================

func (e *executor) GenerateQR(_ context.Context, vendorAddress string) (*dto.QRResponse, error) {
	address, err := domain.NormalizeAddress(vendorAddress)
	if err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid vendor address: %s", vendorAddress))
	}

	return &dto.QRResponse{
		VendorAddress: address,
		QRData:        fmt.Sprintf("%s://pay/%s", e.config.QRScheme, address),
		DisplayName:   fmt.Sprintf("Vendor %s...", address[:constants.VENDOR_DISPLAY_PREFIX_LEN]),
	}, nil
}

func (e *executor) Health(ctx context.Context) *dto.HealthResponse {
	resp := &dto.HealthResponse{
		Service:           constants.SERVICE_NAME,
		DeployerAvailable: e.deployer.Available(),
	}

	var dbErr, chainErr error
	group := e.pool.NewGroup()
	group.Submit(func() {
		dbErr = e.store.Ping(ctx)
	})
	if e.head != nil {
		group.Submit(func() {
			number, err := e.head.LatestBlock(ctx)
			if err != nil {
				chainErr = err
				return
			}
			resp.LatestBlock = &number
		})
	}
	_ = group.Wait()

	resp.DatabaseConnected = dbErr == nil
	resp.BlockchainConnected = e.head != nil && chainErr == nil

	var problems []string
	if dbErr != nil {
		problems = append(problems, dbErr.Error())
	}
	if chainErr != nil {
		problems = append(problems, fmt.Sprintf("blockchain: %v", chainErr))
	}
	resp.Error = strings.Join(problems, "; ")

	switch {
	case !resp.DatabaseConnected:
		resp.Status = HEALTH_STATUS_UNHEALTHY
	case chainErr != nil:
		resp.Status = HEALTH_STATUS_DEGRADED
	default:
		resp.Status = HEALTH_STATUS_HEALTHY
	}

	return resp
}
