package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/banka-network/banka-backend/internal/domain"
	"github.com/banka-network/banka-backend/internal/store/schema"
)

// PG_UNIQUE_VIOLATION is the PostgreSQL error code for unique constraint violations
const PG_UNIQUE_VIOLATION = "23505"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values are replaced by the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PG_UNIQUE_VIOLATION
}

// first runs query.First and maps gorm.ErrRecordNotFound to (nil, nil)
func first[T any](query *gorm.DB) (*T, error) {
	var record T
	if err := query.First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// =============================================================================
// Health
// =============================================================================

func (s *pgStore) Ping(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// =============================================================================
// Users
// =============================================================================

func (s *pgStore) CreateUser(ctx context.Context, user *schema.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *pgStore) GetUserByID(ctx context.Context, id string) (*schema.User, error) {
	user, err := first[schema.User](s.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *pgStore) GetUserByEmail(ctx context.Context, email string) (*schema.User, error) {
	user, err := first[schema.User](s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// =============================================================================
// Events
// =============================================================================

func (s *pgStore) CreateEvent(ctx context.Context, event *schema.Event) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *pgStore) GetEventByID(ctx context.Context, id string) (*schema.Event, error) {
	event, err := first[schema.Event](s.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *pgStore) ListEventsByOrganizer(ctx context.Context, organizerID string) ([]schema.Event, error) {
	var events []schema.Event
	err := s.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events by organizer: %w", err)
	}
	return events, nil
}

func (s *pgStore) ListPublicEvents(ctx context.Context, limit int) ([]schema.Event, error) {
	var events []schema.Event
	query := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list public events: %w", err)
	}
	return events, nil
}

// =============================================================================
// Tokens
// =============================================================================

func (s *pgStore) CreateToken(ctx context.Context, token *schema.Token) error {
	if err := s.db.WithContext(ctx).Create(token).Error; err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

func (s *pgStore) GetTokenByID(ctx context.Context, id string) (*schema.Token, error) {
	token, err := first[schema.Token](s.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return token, nil
}

// GetTokenByContractAddress matches case-insensitively, served by idx_tokens_contract_address_lower
func (s *pgStore) GetTokenByContractAddress(ctx context.Context, address string) (*schema.Token, error) {
	token, err := first[schema.Token](s.db.WithContext(ctx).
		Where("LOWER(contract_address) = ?", strings.ToLower(address)))
	if err != nil {
		return nil, fmt.Errorf("failed to get token by contract address: %w", err)
	}
	return token, nil
}

func (s *pgStore) ListTokensByEvent(ctx context.Context, eventID string) ([]schema.Token, error) {
	var tokens []schema.Token
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens by event: %w", err)
	}
	return tokens, nil
}

func (s *pgStore) IncrementTokenSold(ctx context.Context, tokenID string, amount int64) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("id = ? AND is_active = ? AND total_sold + ? <= initial_supply", tokenID, true, amount).
		Update("total_sold", gorm.Expr("total_sold + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to increment token sold: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInsufficientSupply
	}
	return nil
}

func (s *pgStore) DeactivateToken(ctx context.Context, tokenID string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("id = ?", tokenID).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// =============================================================================
// Purchases and transfers
// =============================================================================

func (s *pgStore) CreatePurchase(ctx context.Context, purchase *schema.Purchase) error {
	if err := s.db.WithContext(ctx).Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

func (s *pgStore) CreateTransfer(ctx context.Context, transfer *schema.Transfer) error {
	if err := s.db.WithContext(ctx).Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}

func (s *pgStore) ListPurchasesByUser(ctx context.Context, userID string) ([]schema.Purchase, error) {
	var purchases []schema.Purchase
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

func (s *pgStore) ListTransfersByUser(ctx context.Context, userID string) ([]schema.Transfer, error) {
	var transfers []schema.Transfer
	err := s.db.WithContext(ctx).
		Where("from_user_id = ?", userID).
		Order("timestamp DESC").
		Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, nil
}
