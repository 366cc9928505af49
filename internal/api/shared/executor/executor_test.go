package executor

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banka-network/banka-backend/internal/api/shared/constants"
	"github.com/banka-network/banka-backend/internal/api/shared/dto"
	apierrors "github.com/banka-network/banka-backend/internal/api/shared/errors"
	"github.com/banka-network/banka-backend/internal/auth"
	"github.com/banka-network/banka-backend/internal/block"
	"github.com/banka-network/banka-backend/internal/contracts"
	"github.com/banka-network/banka-backend/internal/deployment"
	"github.com/banka-network/banka-backend/internal/domain"
	"github.com/banka-network/banka-backend/internal/logger"
	"github.com/banka-network/banka-backend/internal/metrics"
	"github.com/banka-network/banka-backend/internal/mocks"
	"github.com/banka-network/banka-backend/internal/store/schema"
)

const (
	testOrganizerID     = "organizer-1"
	testOrganizerWallet = "0x1234567890123456789012345678901234567890"
	testEventID         = "event-1"
	testPlaceholder     = domain.PlaceholderAddress("0x00000000000000000000000000000000deadbeef")
	testContractAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// TestMain initializes the logger before running tests
func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	os.Exit(m.Run())
}

type executorTestMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	deployer *mocks.MockDeployer
	chain    *mocks.MockEthClient
	clock    *mocks.MockClock
	issuer   *auth.TokenIssuer
	registry *prometheus.Registry
	exec     Executor
}

func setupExecutorTest(t *testing.T) *executorTestMocks {
	ctrl := gomock.NewController(t)

	m := &executorTestMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		deployer: mocks.NewMockDeployer(ctrl),
		chain:    mocks.NewMockEthClient(ctrl),
		clock:    mocks.NewMockClock(ctrl),
		registry: prometheus.NewRegistry(),
	}
	m.clock.EXPECT().Now().Return(testNow).AnyTimes()
	m.clock.EXPECT().Since(gomock.Any()).Return(1500 * time.Millisecond).AnyTimes()
	m.issuer = auth.NewTokenIssuer("test-secret", time.Hour, m.clock)

	resolver := deployment.NewResolver(contracts.EventTokenABIJSON(), func() domain.PlaceholderAddress {
		return testPlaceholder
	})

	m.exec = NewExecutor(
		Config{QRScheme: "banka", WorkerPoolSize: 2},
		m.store,
		m.deployer,
		resolver,
		m.issuer,
		block.NewHeadProvider(m.chain, block.Config{}, m.clock),
		nil,
		m.clock,
	)
	return m
}

func (m *executorTestMocks) withMetrics() {
	m.exec.(*executor).metrics = metrics.New(m.registry)
}

func (m *executorTestMocks) tearDown() {
	m.ctrl.Finish()
}

func requireAPIError(t *testing.T, err error, code apierrors.ErrorCode) {
	t.Helper()
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, code, apiErr.Code)
}

func testEvent() *schema.Event {
	return &schema.Event{
		ID:              testEventID,
		Name:            "Summer Fest",
		Date:            testNow.Add(30 * 24 * time.Hour),
		OrganizerID:     testOrganizerID,
		OrganizerWallet: testOrganizerWallet,
		IsActive:        true,
		CreatedAt:       testNow,
	}
}

func testTokenRequest() dto.CreateTokenRequest {
	return dto.CreateTokenRequest{
		Name:          "VIP Pass",
		PriceCents:    2500,
		InitialSupply: 1000,
		SaleMode:      domain.SaleModeBoth,
	}
}

func testToken() *schema.Token {
	return &schema.Token{
		ID:               "token-1",
		Name:             "VIP Pass",
		Symbol:           "SUMMEVIPPA",
		FullName:         "Summer Fest - VIP Pass",
		PriceInCents:     2500,
		InitialSupply:    1000,
		TotalSold:        10,
		Decimals:         18,
		ContractAddress:  string(testPlaceholder),
		DeploymentStatus: string(domain.DeploymentStatusMock),
		EventID:          testEventID,
		OwnerAddress:     testOrganizerWallet,
		SaleMode:         string(domain.SaleModeBoth),
		IsActive:         true,
		CreatedAt:        testNow,
	}
}

// =============================================================================
// CreateToken
// =============================================================================

func TestCreateToken_Deployed(t *testing.T) {
	m := setupExecutorTest(t)
	defer m.tearDown()
	m.withMetrics()

	txHash := "0xabc0000000000000000000000000000000000000000000000000000000000001"

	m.store.EXPECT().GetEventByID(gomock.Any(), testEventID).Return(testEvent(), nil)
	m.deployer.EXPECT().
		Deploy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.DeploymentRequest) domain.AttemptResult {
			assert.Equal(t, "Summer Fest - VIP Pass", req.TokenName)
			assert.Equal(t, "SUMMEVIPPA", req.TokenSymbol)
			assert.Equal(t, int64(1000), req.TotalSupply)
			assert.Equal(t, domain.TOKEN_DECIMALS, req.Decimals)
			assert.Equal(t, common.HexToAddress(testOrganizerWallet), req.OwnerAddress)
			return domain.Deployed{
				ContractAddress: domain.NewChainAddress(common.HexToAddress(testContractAddress)),
				TxHash:          txHash,
				GasUsed:         1_200_000,
				BlockNumber:     42,
			}
		})
	m.store.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token *schema.Token) error {
			assert.Equal(t, string(domain.DeploymentStatusDeployed), token.DeploymentStatus)
			assert.Equal(t, testContractAddress, token.ContractAddress)
			assert.NotEmpty(t, token.ContractABI)
			require.NotNil(t, token.DeploymentTxHash)
			assert.Equal(t, txHash, *token.DeploymentTxHash)
			assert.Equal(t, int64(0), token.TotalSold)
			assert.True(t, token.IsActive)
			return nil
		})

	resp, err := m.exec.CreateToken(context.Background(), testOrganizerID, testEventID, testTokenRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Token created and deployed on-chain successfully", resp.Message)
	assert.Equal(t, domain.DeploymentStatusDeployed, resp.Token.DeploymentStatus)
	assert.True(t, resp.Token.OnChain)
	assert.Equal(t, testContractAddress, resp.Token.ContractAddress)
	assert.Equal(t, "25.00", resp.Token.Price)
	assert.Equal(t, int64(1000), resp.Token.Remaining)
	assert.NotEmpty(t, resp.Token.ID)

	count, err := testutil.GatherAndCount(m.registry, "banka_token_deployments_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateToken_FallbackOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		result  domain.AttemptResult
		status  domain.DeploymentStatus
		message string
	}{
		{
			name:    "failed deployment",
			result:  domain.Failed{Reason: "timeout", TxHash: "0xdead"},
			status:  domain.DeploymentStatusFailed,
			message: "Token created successfully (deployment status: failed)",
		},
		{
			name:    "chain unavailable",
			result:  domain.Unavailable{},
			status:  domain.DeploymentStatusMock,
			message: "Token created successfully (deployment status: mock)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupExecutorTest(t)
			defer m.tearDown()

			m.store.EXPECT().GetEventByID(gomock.Any(), testEventID).Return(testEvent(), nil)
			m.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).Return(tt.result)
			m.store.EXPECT().
				CreateToken(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, token *schema.Token) error {
					assert.Equal(t, string(tt.status), token.DeploymentStatus)
					assert.Equal(t, string(testPlaceholder), token.ContractAddress)
					assert.Empty(t, token.ContractABI)
					assert.Nil(t, token.DeploymentTxHash)
					return nil
				})

			resp, err := m.exec.CreateToken(context.Background(), testOrganizerID, testEventID, testTokenRequest())
			require.NoError(t, err)

			assert.Equal(t, tt.message, resp.Message)
			assert.Equal(t, tt.status, resp.Token.DeploymentStatus)
			assert.False(t, resp.Token.OnChain)
			assert.Nil(t, resp.Token.ContractABI)
			assert.Nil(t, resp.Token.DeploymentTxHash)
		})
	}
}

func TestCreateToken_Rejections(t *testing.T) {
	t.Run("event not found", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetEventByID(gomock.Any(), testEventID).Return(nil, nil)

		_, err := m.exec.CreateToken(context.Background(), testOrganizerID, testEventID, testTokenRequest())
		requireAPIError(t, err, apierrors.ErrCodeNotFound)
	})

	t.Run("not the organizer", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetEventByID(gomock.Any(), testEventID).Return(testEvent(), nil)

		_, err := m.exec.CreateToken(context.Background(), "someone-else", testEventID, testTokenRequest())
		requireAPIError(t, err, apierrors.ErrCodeForbidden)
	})

	t.Run("store failure after deployment", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetEventByID(gomock.Any(), testEventID).Return(testEvent(), nil)
		m.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).Return(domain.Deployed{
			ContractAddress: domain.NewChainAddress(common.HexToAddress(testContractAddress)),
			TxHash:          "0x01",
		})
		m.store.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := m.exec.CreateToken(context.Background(), testOrganizerID, testEventID, testTokenRequest())
		requireAPIError(t, err, apierrors.ErrCodeDatabaseError)
	})
}

// =============================================================================
// Users
// =============================================================================

func TestRegister(t *testing.T) {
	t.Run("creates user with wallet and token", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		var created *schema.User
		m.store.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
		m.store.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *schema.User) error {
				created = user
				return nil
			})

		resp, err := m.exec.Register(context.Background(), dto.RegisterRequest{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "secret-password",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.True(t, common.IsHexAddress(created.WalletAddress))
		assert.NotEmpty(t, created.WalletPrivateKey)
		assert.True(t, auth.CheckPassword(created.PasswordHash, "secret-password"))
		assert.Equal(t, created.ID, resp.User.ID)
		assert.Equal(t, created.WalletAddress, resp.User.WalletAddress)
		assert.Equal(t, TOKEN_TYPE_BEARER, resp.TokenType)
		assert.Equal(t, testNow.Add(time.Hour), resp.ExpiresAt)

		claims, err := m.issuer.Verify(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, created.ID, claims.Subject)
	})

	t.Run("email taken", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(&schema.User{ID: "u1"}, nil)

		_, err := m.exec.Register(context.Background(), dto.RegisterRequest{
			Name: "Ada", Email: "ada@example.com", Password: "secret-password",
		})
		requireAPIError(t, err, apierrors.ErrCodeConflict)
	})

	t.Run("email taken concurrently", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
		m.store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(domain.ErrEmailTaken)

		_, err := m.exec.Register(context.Background(), dto.RegisterRequest{
			Name: "Ada", Email: "ada@example.com", Password: "secret-password",
		})
		requireAPIError(t, err, apierrors.ErrCodeConflict)
	})
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)
	user := &schema.User{ID: "user-1", Email: "ada@example.com", PasswordHash: hash}

	t.Run("valid credentials", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(user, nil)

		resp, err := m.exec.Login(context.Background(), dto.LoginRequest{Email: "ada@example.com", Password: "right-password"})
		require.NoError(t, err)
		assert.Equal(t, "user-1", resp.User.ID)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(user, nil)

		_, err := m.exec.Login(context.Background(), dto.LoginRequest{Email: "ada@example.com", Password: "wrong"})
		requireAPIError(t, err, apierrors.ErrCodeUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		_, err := m.exec.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "x"})
		requireAPIError(t, err, apierrors.ErrCodeUnauthorized)
	})
}

func TestGetUser_NotFound(t *testing.T) {
	m := setupExecutorTest(t)
	defer m.tearDown()

	m.store.EXPECT().GetUserByID(gomock.Any(), "missing").Return(nil, nil)

	_, err := m.exec.GetUser(context.Background(), "missing")
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

// =============================================================================
// Events
// =============================================================================

func TestCreateEvent_UsesOrganizerWallet(t *testing.T) {
	m := setupExecutorTest(t)
	defer m.tearDown()

	m.store.EXPECT().GetUserByID(gomock.Any(), testOrganizerID).Return(&schema.User{
		ID:            testOrganizerID,
		WalletAddress: testOrganizerWallet,
	}, nil)
	m.store.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *schema.Event) error {
			assert.Equal(t, testOrganizerID, event.OrganizerID)
			assert.Equal(t, testOrganizerWallet, event.OrganizerWallet)
			assert.True(t, event.IsActive)
			return nil
		})

	resp, err := m.exec.CreateEvent(context.Background(), testOrganizerID, dto.CreateEventRequest{
		Name: "Summer Fest",
		Date: testNow.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "Summer Fest", resp.Event.Name)
	assert.Equal(t, "Event created successfully", resp.Message)
}

func TestListPublicEvents_Limit(t *testing.T) {
	m := setupExecutorTest(t)
	defer m.tearDown()

	m.store.EXPECT().ListPublicEvents(gomock.Any(), constants.DEFAULT_PUBLIC_EVENTS_LIMIT).Return([]schema.Event{*testEvent()}, nil)
	m.store.EXPECT().ListPublicEvents(gomock.Any(), constants.MAX_PUBLIC_EVENTS_LIMIT).Return(nil, nil)

	resp, err := m.exec.ListPublicEvents(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, resp.Events, 1)

	resp, err = m.exec.ListPublicEvents(context.Background(), 10_000)
	require.NoError(t, err)
	assert.Empty(t, resp.Events)
}

func TestGetEvent_IncludesTokens(t *testing.T) {
	m := setupExecutorTest(t)
	defer m.tearDown()

	m.store.EXPECT().GetEventByID(gomock.Any(), testEventID).Return(testEvent(), nil)
	m.store.EXPECT().ListTokensByEvent(gomock.Any(), testEventID).Return([]schema.Token{*testToken()}, nil)

	resp, err := m.exec.GetEvent(context.Background(), testEventID)
	require.NoError(t, err)
	require.Len(t, resp.Tokens, 1)
	assert.Equal(t, "token-1", resp.Tokens[0].ID)
	assert.False(t, resp.Tokens[0].OnChain)
}

// =============================================================================
// Token lifecycle
// =============================================================================

func TestDeactivateToken(t *testing.T) {
	t.Run("organizer deactivates", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetTokenByID(gomock.Any(), "token-1").Return(testToken(), nil)
		m.store.EXPECT().GetEventByID(gomock.Any(), testEventID).Return(testEvent(), nil)
		m.store.EXPECT().DeactivateToken(gomock.Any(), "token-1").Return(nil)

		resp, err := m.exec.DeactivateToken(context.Background(), testOrganizerID, "token-1")
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("already inactive is a no-op", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		token := testToken()
		token.IsActive = false
		m.store.EXPECT().GetTokenByID(gomock.Any(), "token-1").Return(token, nil)
		m.store.EXPECT().GetEventByID(gomock.Any(), testEventID).Return(testEvent(), nil)

		resp, err := m.exec.DeactivateToken(context.Background(), testOrganizerID, "token-1")
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetTokenByID(gomock.Any(), "token-1").Return(testToken(), nil)
		m.store.EXPECT().GetEventByID(gomock.Any(), testEventID).Return(testEvent(), nil)

		_, err := m.exec.DeactivateToken(context.Background(), "someone-else", "token-1")
		requireAPIError(t, err, apierrors.ErrCodeForbidden)
	})
}

func TestGetToken_CorruptRecord(t *testing.T) {
	m := setupExecutorTest(t)
	defer m.tearDown()

	token := testToken()
	token.DeploymentStatus = string(domain.DeploymentStatusDeployed)
	token.ContractAddress = "not-an-address"
	m.store.EXPECT().GetTokenByID(gomock.Any(), "token-1").Return(token, nil)

	_, err := m.exec.GetToken(context.Background(), "token-1")
	requireAPIError(t, err, apierrors.ErrCodeInternalError)
}

// =============================================================================
// Purchases and transfers
// =============================================================================

func TestPurchase(t *testing.T) {
	buyer := &schema.User{ID: "buyer-1"}

	t.Run("records purchase", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetUserByID(gomock.Any(), "buyer-1").Return(buyer, nil)
		m.store.EXPECT().GetTokenByContractAddress(gomock.Any(), string(testPlaceholder)).Return(testToken(), nil)
		m.store.EXPECT().IncrementTokenSold(gomock.Any(), "token-1", int64(4)).Return(nil)
		m.store.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := m.exec.Purchase(context.Background(), "buyer-1", dto.PurchaseRequest{
			TokenAddress: string(testPlaceholder),
			Amount:       4,
		})
		require.NoError(t, err)

		p := resp.Purchase
		assert.Len(t, p.ID, 26)
		assert.Equal(t, int64(10_000), p.TotalCents)
		assert.Equal(t, "100.00", p.Total)
		assert.Equal(t, domain.TransactionStatusCompleted, p.Status)
		assert.Len(t, p.TxHash, 66)
		assert.True(t, strings.HasPrefix(p.TxHash, "0x"))
		assert.Equal(t, mockTxHash(p.ID), p.TxHash)
		assert.Equal(t, "Tokens purchased successfully", resp.Message)
	})

	t.Run("inactive token", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		token := testToken()
		token.IsActive = false
		m.store.EXPECT().GetUserByID(gomock.Any(), "buyer-1").Return(buyer, nil)
		m.store.EXPECT().GetTokenByContractAddress(gomock.Any(), string(testPlaceholder)).Return(token, nil)

		_, err := m.exec.Purchase(context.Background(), "buyer-1", dto.PurchaseRequest{TokenAddress: string(testPlaceholder), Amount: 1})
		requireAPIError(t, err, apierrors.ErrCodeConflict)
	})

	t.Run("insufficient supply", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetUserByID(gomock.Any(), "buyer-1").Return(buyer, nil)
		m.store.EXPECT().GetTokenByContractAddress(gomock.Any(), string(testPlaceholder)).Return(testToken(), nil)
		m.store.EXPECT().IncrementTokenSold(gomock.Any(), "token-1", int64(991)).Return(domain.ErrInsufficientSupply)

		_, err := m.exec.Purchase(context.Background(), "buyer-1", dto.PurchaseRequest{TokenAddress: string(testPlaceholder), Amount: 991})
		requireAPIError(t, err, apierrors.ErrCodeConflict)
	})

	t.Run("total beyond int64 is rejected before selling", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		token := testToken()
		token.PriceInCents = 10_000_000_000_000
		token.InitialSupply = 1_000_000
		m.store.EXPECT().GetUserByID(gomock.Any(), "buyer-1").Return(buyer, nil)
		m.store.EXPECT().GetTokenByContractAddress(gomock.Any(), string(testPlaceholder)).Return(token, nil)
		m.store.EXPECT().IncrementTokenSold(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.store.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.exec.Purchase(context.Background(), "buyer-1", dto.PurchaseRequest{
			TokenAddress: string(testPlaceholder),
			Amount:       constants.MAX_PURCHASE_AMOUNT,
		})
		requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
	})

	t.Run("largest allowed price and amount", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		token := testToken()
		token.PriceInCents = constants.MAX_PRICE_CENTS
		token.InitialSupply = constants.MAX_PURCHASE_AMOUNT
		m.store.EXPECT().GetUserByID(gomock.Any(), "buyer-1").Return(buyer, nil)
		m.store.EXPECT().GetTokenByContractAddress(gomock.Any(), string(testPlaceholder)).Return(token, nil)
		m.store.EXPECT().IncrementTokenSold(gomock.Any(), "token-1", constants.MAX_PURCHASE_AMOUNT).Return(nil)
		m.store.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := m.exec.Purchase(context.Background(), "buyer-1", dto.PurchaseRequest{
			TokenAddress: string(testPlaceholder),
			Amount:       constants.MAX_PURCHASE_AMOUNT,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(100_000_000_000_000), resp.Purchase.TotalCents)
		assert.Equal(t, "1000000000000.00", resp.Purchase.Total)
	})

	t.Run("unknown token", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.store.EXPECT().GetUserByID(gomock.Any(), "buyer-1").Return(buyer, nil)
		m.store.EXPECT().GetTokenByContractAddress(gomock.Any(), "0xnope").Return(nil, nil)

		_, err := m.exec.Purchase(context.Background(), "buyer-1", dto.PurchaseRequest{TokenAddress: "0xnope", Amount: 1})
		requireAPIError(t, err, apierrors.ErrCodeNotFound)
	})
}

func TestTransfer(t *testing.T) {
	m := setupExecutorTest(t)
	defer m.tearDown()

	vendor := "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
	m.store.EXPECT().GetUserByID(gomock.Any(), "buyer-1").Return(&schema.User{ID: "buyer-1"}, nil)
	m.store.EXPECT().GetTokenByContractAddress(gomock.Any(), string(testPlaceholder)).Return(testToken(), nil)
	m.store.EXPECT().
		CreateTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, transfer *schema.Transfer) error {
			assert.Equal(t, vendor, transfer.ToAddress)
			assert.Equal(t, int64(2), transfer.Amount)
			return nil
		})

	resp, err := m.exec.Transfer(context.Background(), "buyer-1", dto.TransferRequest{
		ToAddress:    vendor,
		TokenAddress: string(testPlaceholder),
		Amount:       2,
	})
	require.NoError(t, err)
	assert.Equal(t, "buyer-1", resp.Transfer.FromUserID)
	assert.Equal(t, "Tokens transferred successfully", resp.Message)
}

func TestGetTransactions_MergedNewestFirst(t *testing.T) {
	m := setupExecutorTest(t)
	defer m.tearDown()

	m.store.EXPECT().GetUserByID(gomock.Any(), "buyer-1").Return(&schema.User{ID: "buyer-1"}, nil)
	m.store.EXPECT().ListPurchasesByUser(gomock.Any(), "buyer-1").Return([]schema.Purchase{
		{ID: "p2", Amount: 2, TotalCents: 200, Timestamp: testNow.Add(2 * time.Hour)},
		{ID: "p1", Amount: 1, TotalCents: 100, Timestamp: testNow},
	}, nil)
	m.store.EXPECT().ListTransfersByUser(gomock.Any(), "buyer-1").Return([]schema.Transfer{
		{ID: "t1", Amount: 1, ToAddress: "0xabc", Timestamp: testNow.Add(time.Hour)},
	}, nil)

	resp, err := m.exec.GetTransactions(context.Background(), "buyer-1")
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 3)

	assert.Equal(t, "p2", resp.Transactions[0].ID)
	assert.Equal(t, domain.TransactionTypePurchase, resp.Transactions[0].Type)
	assert.Equal(t, "t1", resp.Transactions[1].ID)
	assert.Equal(t, domain.TransactionTypeTransfer, resp.Transactions[1].Type)
	require.NotNil(t, resp.Transactions[1].ToAddress)
	assert.Equal(t, "p1", resp.Transactions[2].ID)
}

func TestGetTransactions_StoreError(t *testing.T) {
	m := setupExecutorTest(t)
	defer m.tearDown()

	m.store.EXPECT().GetUserByID(gomock.Any(), "buyer-1").Return(&schema.User{ID: "buyer-1"}, nil)
	m.store.EXPECT().ListPurchasesByUser(gomock.Any(), "buyer-1").Return(nil, errors.New("boom"))
	m.store.EXPECT().ListTransfersByUser(gomock.Any(), "buyer-1").Return(nil, nil).AnyTimes()

	_, err := m.exec.GetTransactions(context.Background(), "buyer-1")
	requireAPIError(t, err, apierrors.ErrCodeDatabaseError)
}

// =============================================================================
// QR and health
// =============================================================================

func TestGenerateQR(t *testing.T) {
	m := setupExecutorTest(t)
	defer m.tearDown()

	resp, err := m.exec.GenerateQR(context.Background(), "0xABCDEFabcdefABCDEFabcdefABCDEFabcdefABCD")
	require.NoError(t, err)
	assert.Equal(t, "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd", resp.VendorAddress)
	assert.Equal(t, "banka://pay/0xabcdefabcdefabcdefabcdefabcdefabcdefabcd", resp.QRData)
	assert.Equal(t, "Vendor 0xabcdef...", resp.DisplayName)

	_, err = m.exec.GenerateQR(context.Background(), "vendor-1")
	requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.deployer.EXPECT().Available().Return(true)
		m.store.EXPECT().Ping(gomock.Any()).Return(nil)
		m.chain.EXPECT().BlockNumber(gomock.Any()).Return(uint64(1234), nil)

		resp := m.exec.Health(context.Background())
		assert.Equal(t, HEALTH_STATUS_HEALTHY, resp.Status)
		assert.True(t, resp.DatabaseConnected)
		assert.True(t, resp.BlockchainConnected)
		assert.True(t, resp.DeployerAvailable)
		require.NotNil(t, resp.LatestBlock)
		assert.Equal(t, uint64(1234), *resp.LatestBlock)
		assert.Empty(t, resp.Error)
	})

	t.Run("chain down is degraded", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.deployer.EXPECT().Available().Return(true)
		m.store.EXPECT().Ping(gomock.Any()).Return(nil)
		m.chain.EXPECT().BlockNumber(gomock.Any()).Return(uint64(0), errors.New("dial tcp: refused"))

		resp := m.exec.Health(context.Background())
		assert.Equal(t, HEALTH_STATUS_DEGRADED, resp.Status)
		assert.False(t, resp.BlockchainConnected)
		assert.Nil(t, resp.LatestBlock)
		assert.Contains(t, resp.Error, "refused")
	})

	t.Run("database down is unhealthy", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()

		m.deployer.EXPECT().Available().Return(false)
		m.store.EXPECT().Ping(gomock.Any()).Return(errors.New("failed to ping database"))
		m.chain.EXPECT().BlockNumber(gomock.Any()).Return(uint64(1), nil)

		resp := m.exec.Health(context.Background())
		assert.Equal(t, HEALTH_STATUS_UNHEALTHY, resp.Status)
		assert.False(t, resp.DatabaseConnected)
	})

	t.Run("no chain configured", func(t *testing.T) {
		m := setupExecutorTest(t)
		defer m.tearDown()
		m.exec.(*executor).head = nil

		m.deployer.EXPECT().Available().Return(false)
		m.store.EXPECT().Ping(gomock.Any()).Return(nil)

		resp := m.exec.Health(context.Background())
		assert.Equal(t, HEALTH_STATUS_HEALTHY, resp.Status)
		assert.False(t, resp.BlockchainConnected)
		assert.False(t, resp.DeployerAvailable)
	})
}
