package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/banka-network/banka-backend/internal/domain"
	"github.com/banka-network/banka-backend/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestUser(email string) *schema.User {
	return &schema.User{
		ID:               uuid.NewString(),
		Name:             "Test User",
		Email:            email,
		PasswordHash:     "$2a$10$hash",
		WalletAddress:    "0x1234567890123456789012345678901234567890",
		WalletPrivateKey: "0xkey",
		CreatedAt:        time.Now().UTC(),
	}
}

func buildTestEvent(organizer *schema.User, name string, date time.Time) *schema.Event {
	return &schema.Event{
		ID:              uuid.NewString(),
		Name:            name,
		Date:            date,
		OrganizerID:     organizer.ID,
		OrganizerWallet: organizer.WalletAddress,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}
}

func buildTestToken(event *schema.Event, contractAddress string, supply int64, createdAt time.Time) *schema.Token {
	return &schema.Token{
		ID:               uuid.NewString(),
		Name:             "VIP Pass",
		Symbol:           "SUMMEVIPPA",
		FullName:         event.Name + " - VIP Pass",
		PriceInCents:     2500,
		InitialSupply:    supply,
		Decimals:         18,
		ContractAddress:  contractAddress,
		DeploymentStatus: string(domain.DeploymentStatusMock),
		EventID:          event.ID,
		OwnerAddress:     event.OrganizerWallet,
		SaleMode:         string(domain.SaleModeBoth),
		IsActive:         true,
		CreatedAt:        createdAt,
	}
}

func placeholder(n int) string {
	return fmt.Sprintf("0x%040x", n)
}

// RunStoreTests runs the store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, initDB(t).Ping(context.Background()))
	})

	t.Run("Users", func(t *testing.T) {
		testUsers(t, initDB)
	})

	t.Run("Events", func(t *testing.T) {
		testEvents(t, initDB)
	})

	t.Run("Tokens", func(t *testing.T) {
		testTokens(t, initDB)
	})

	t.Run("Transactions", func(t *testing.T) {
		testTransactions(t, initDB)
	})
}

func testUsers(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("create and get", func(t *testing.T) {
		s := initDB(t)
		ctx := context.Background()

		user := buildTestUser("Alice@Example.com ")
		require.NoError(t, s.CreateUser(ctx, user))
		assert.Equal(t, "alice@example.com", user.Email)

		byID, err := s.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, user.Name, byID.Name)

		byEmail, err := s.GetUserByEmail(ctx, "ALICE@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, user.ID, byEmail.ID)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		s := initDB(t)
		ctx := context.Background()

		user, err := s.GetUserByID(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = s.GetUserByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("duplicate email", func(t *testing.T) {
		s := initDB(t)
		ctx := context.Background()

		require.NoError(t, s.CreateUser(ctx, buildTestUser("bob@example.com")))
		err := s.CreateUser(ctx, buildTestUser("BOB@example.com"))
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func testEvents(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("create, get and list", func(t *testing.T) {
		s := initDB(t)
		ctx := context.Background()

		organizer := buildTestUser("org@example.com")
		other := buildTestUser("other@example.com")
		require.NoError(t, s.CreateUser(ctx, organizer))
		require.NoError(t, s.CreateUser(ctx, other))

		now := time.Now().UTC()
		later := buildTestEvent(organizer, "Winter Fest", now.Add(60*24*time.Hour))
		sooner := buildTestEvent(organizer, "Summer Fest", now.Add(30*24*time.Hour))
		inactive := buildTestEvent(other, "Cancelled", now.Add(10*24*time.Hour))
		inactive.IsActive = false
		for _, e := range []*schema.Event{later, sooner, inactive} {
			require.NoError(t, s.CreateEvent(ctx, e))
		}

		got, err := s.GetEventByID(ctx, sooner.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Summer Fest", got.Name)

		missing, err := s.GetEventByID(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, missing)

		own, err := s.ListEventsByOrganizer(ctx, organizer.ID)
		require.NoError(t, err)
		assert.Len(t, own, 2)

		public, err := s.ListPublicEvents(ctx, 0)
		require.NoError(t, err)
		ids := make([]string, 0, len(public))
		for _, e := range public {
			ids = append(ids, e.ID)
		}
		assert.NotContains(t, ids, inactive.ID)
		require.GreaterOrEqual(t, len(public), 2)

		limited, err := s.ListPublicEvents(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}

func setupEvent(t *testing.T, s Store) *schema.Event {
	ctx := context.Background()
	organizer := buildTestUser(uuid.NewString() + "@example.com")
	require.NoError(t, s.CreateUser(ctx, organizer))
	event := buildTestEvent(organizer, "Summer Fest", time.Now().UTC().Add(24*time.Hour))
	require.NoError(t, s.CreateEvent(ctx, event))
	return event
}

func testTokens(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("create and get", func(t *testing.T) {
		s := initDB(t)
		ctx := context.Background()
		event := setupEvent(t, s)

		txHash := "0xdeadbeef"
		deployed := buildTestToken(event, "0xAbCdEf0000000000000000000000000000000001", 100, time.Now().UTC())
		deployed.DeploymentStatus = string(domain.DeploymentStatusDeployed)
		deployed.ContractABI = datatypes.JSON(`[{"type":"constructor","inputs":[]}]`)
		deployed.DeploymentTxHash = &txHash
		require.NoError(t, s.CreateToken(ctx, deployed))

		got, err := s.GetTokenByID(ctx, deployed.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(0), got.TotalSold)
		assert.Equal(t, int16(18), got.Decimals)
		assert.JSONEq(t, `[{"type":"constructor","inputs":[]}]`, string(got.ContractABI))
		require.NotNil(t, got.DeploymentTxHash)
		assert.Equal(t, txHash, *got.DeploymentTxHash)

		byAddr, err := s.GetTokenByContractAddress(ctx, "0xabcdef0000000000000000000000000000000001")
		require.NoError(t, err)
		require.NotNil(t, byAddr)
		assert.Equal(t, deployed.ID, byAddr.ID)

		missing, err := s.GetTokenByID(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, missing)

		// last statement: a failed insert aborts the surrounding transaction
		duplicate := buildTestToken(event, "0xABCDEF0000000000000000000000000000000001", 10, time.Now().UTC())
		assert.Error(t, s.CreateToken(ctx, duplicate))
	})

	t.Run("mock token has no abi", func(t *testing.T) {
		s := initDB(t)
		ctx := context.Background()
		event := setupEvent(t, s)

		token := buildTestToken(event, placeholder(1), 10, time.Now().UTC())
		require.NoError(t, s.CreateToken(ctx, token))

		got, err := s.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got.ContractABI)
		assert.Nil(t, got.DeploymentTxHash)
	})

	t.Run("list by event in creation order", func(t *testing.T) {
		s := initDB(t)
		ctx := context.Background()
		event := setupEvent(t, s)

		base := time.Now().UTC()
		second := buildTestToken(event, placeholder(2), 10, base.Add(time.Minute))
		first := buildTestToken(event, placeholder(3), 10, base)
		require.NoError(t, s.CreateToken(ctx, second))
		require.NoError(t, s.CreateToken(ctx, first))

		tokens, err := s.ListTokensByEvent(ctx, event.ID)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, first.ID, tokens[0].ID)
		assert.Equal(t, second.ID, tokens[1].ID)
	})

	t.Run("increment sold respects supply", func(t *testing.T) {
		s := initDB(t)
		ctx := context.Background()
		event := setupEvent(t, s)

		token := buildTestToken(event, placeholder(4), 10, time.Now().UTC())
		require.NoError(t, s.CreateToken(ctx, token))

		require.NoError(t, s.IncrementTokenSold(ctx, token.ID, 4))
		require.NoError(t, s.IncrementTokenSold(ctx, token.ID, 6))
		assert.ErrorIs(t, s.IncrementTokenSold(ctx, token.ID, 1), domain.ErrInsufficientSupply)

		got, err := s.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), got.TotalSold)
	})

	t.Run("deactivate keeps record and blocks sales", func(t *testing.T) {
		s := initDB(t)
		ctx := context.Background()
		event := setupEvent(t, s)

		token := buildTestToken(event, placeholder(5), 10, time.Now().UTC())
		require.NoError(t, s.CreateToken(ctx, token))

		require.NoError(t, s.DeactivateToken(ctx, token.ID))
		assert.ErrorIs(t, s.DeactivateToken(ctx, "missing"), domain.ErrTokenNotFound)

		got, err := s.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.False(t, got.IsActive)

		assert.ErrorIs(t, s.IncrementTokenSold(ctx, token.ID, 1), domain.ErrInsufficientSupply)
	})
}

func testTransactions(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("purchases and transfers newest first", func(t *testing.T) {
		s := initDB(t)
		ctx := context.Background()
		event := setupEvent(t, s)

		buyer := buildTestUser("buyer@example.com")
		require.NoError(t, s.CreateUser(ctx, buyer))
		token := buildTestToken(event, placeholder(6), 100, time.Now().UTC())
		require.NoError(t, s.CreateToken(ctx, token))

		base := time.Now().UTC().Truncate(time.Second)
		older := &schema.Purchase{
			ID: "01A", UserID: buyer.ID, TokenID: token.ID, TokenAddress: token.ContractAddress,
			Amount: 1, TotalCents: 2500, Status: "completed", TxHash: "0x1", Timestamp: base,
		}
		newer := &schema.Purchase{
			ID: "01B", UserID: buyer.ID, TokenID: token.ID, TokenAddress: token.ContractAddress,
			Amount: 2, TotalCents: 5000, Status: "completed", TxHash: "0x2", Timestamp: base.Add(time.Minute),
		}
		require.NoError(t, s.CreatePurchase(ctx, older))
		require.NoError(t, s.CreatePurchase(ctx, newer))

		transfer := &schema.Transfer{
			ID: "01C", FromUserID: buyer.ID, ToAddress: "0xvendor", TokenAddress: token.ContractAddress,
			Amount: 1, Status: "completed", TxHash: "0x3", Timestamp: base.Add(2 * time.Minute),
		}
		require.NoError(t, s.CreateTransfer(ctx, transfer))

		purchases, err := s.ListPurchasesByUser(ctx, buyer.ID)
		require.NoError(t, err)
		require.Len(t, purchases, 2)
		assert.Equal(t, "01B", purchases[0].ID)
		assert.Equal(t, "01A", purchases[1].ID)

		transfers, err := s.ListTransfersByUser(ctx, buyer.ID)
		require.NoError(t, err)
		require.Len(t, transfers, 1)
		assert.Equal(t, "0xvendor", transfers[0].ToAddress)

		none, err := s.ListPurchasesByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
