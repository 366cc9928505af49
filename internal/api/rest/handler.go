package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/banka-network/banka-backend/internal/api/middleware"
	"github.com/banka-network/banka-backend/internal/api/shared/dto"
	"github.com/banka-network/banka-backend/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// Root returns the API banner
	// GET /
	Root(c *gin.Context)

	// HealthCheck returns the health status of the API and its dependencies
	// GET /api/health
	HealthCheck(c *gin.Context)

	// Register creates a user and its custodial wallet
	// POST /api/auth/register
	Register(c *gin.Context)

	// Login exchanges credentials for a session token
	// POST /api/auth/login
	Login(c *gin.Context)

	// GetProfile returns the authenticated user's profile
	// GET /api/profile
	GetProfile(c *gin.Context)

	// GetUser returns the public view of a user
	// GET /api/users/:user_id
	GetUser(c *gin.Context)

	// CreateEvent creates an event organized by the authenticated user
	// POST /api/events
	CreateEvent(c *gin.Context)

	// ListMyEvents lists the authenticated user's events
	// GET /api/events
	ListMyEvents(c *gin.Context)

	// ListPublicEvents lists active events
	// GET /api/events/public?limit=<limit>
	ListPublicEvents(c *gin.Context)

	// GetEvent returns an event with its tokens
	// GET /api/events/:event_id
	GetEvent(c *gin.Context)

	// CreateToken creates an event token and attempts its on-chain deployment.
	// Responds 200 whatever the deployment outcome; see deployment_status.
	// POST /api/events/:event_id/tokens
	CreateToken(c *gin.Context)

	// ListEventTokens lists the tokens of an event
	// GET /api/events/:event_id/tokens
	ListEventTokens(c *gin.Context)

	// GetToken returns a token
	// GET /api/tokens/:token_id
	GetToken(c *gin.Context)

	// DeactivateToken stops sales of a token
	// POST /api/tokens/:token_id/deactivate
	DeactivateToken(c *gin.Context)

	// Purchase records a simulated token purchase
	// POST /api/users/:user_id/purchase
	Purchase(c *gin.Context)

	// Transfer records a simulated token transfer to a vendor
	// POST /api/users/:user_id/transfer
	Transfer(c *gin.Context)

	// GetTransactions returns a user's purchases and transfers
	// GET /api/users/:user_id/transactions
	GetTransactions(c *gin.Context)

	// GenerateQR returns the payment QR payload of a vendor
	// GET /api/generate-qr/:vendor_address
	GenerateQR(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "BanKa API - Blockchain Event Payment System",
	})
}

func (h *handler) HealthCheck(c *gin.Context) {
	health := h.executor.Health(c.Request.Context())

	status := http.StatusOK
	if health.Status == executor.HEALTH_STATUS_UNHEALTHY {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}

func (h *handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, validationMessage(err))
		return
	}

	response, err := h.executor.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, validationMessage(err))
		return
	}

	response, err := h.executor.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to login")
		return
	}

	c.JSON(http.StatusOK, response)
}

// currentUser returns the authenticated user ID or writes a 403
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.AuthSubject(c)
	if !ok {
		respondForbidden(c, "User authentication required")
		return "", false
	}
	return userID, true
}

func (h *handler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	response, err := h.executor.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetUser(c *gin.Context) {
	response, err := h.executor.GetUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) CreateEvent(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, validationMessage(err))
		return
	}

	response, err := h.executor.CreateEvent(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) ListMyEvents(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	response, err := h.executor.ListOrganizerEvents(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListPublicEvents(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			respondBadRequest(c, "Invalid limit", "limit must be a positive integer")
			return
		}
		limit = v
	}

	response, err := h.executor.ListPublicEvents(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetEvent(c *gin.Context) {
	response, err := h.executor.GetEvent(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		respondError(c, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) CreateToken(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, validationMessage(err))
		return
	}

	response, err := h.executor.CreateToken(c.Request.Context(), userID, c.Param("event_id"), req)
	if err != nil {
		respondError(c, err, "Failed to create token")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListEventTokens(c *gin.Context) {
	response, err := h.executor.ListEventTokens(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		respondError(c, err, "Failed to list tokens")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetToken(c *gin.Context) {
	response, err := h.executor.GetToken(c.Request.Context(), c.Param("token_id"))
	if err != nil {
		respondError(c, err, "Failed to get token")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) DeactivateToken(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	response, err := h.executor.DeactivateToken(c.Request.Context(), userID, c.Param("token_id"))
	if err != nil {
		respondError(c, err, "Failed to deactivate token")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, validationMessage(err))
		return
	}

	response, err := h.executor.Purchase(c.Request.Context(), c.Param("user_id"), req)
	if err != nil {
		respondError(c, err, "Failed to purchase tokens")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, validationMessage(err))
		return
	}

	response, err := h.executor.Transfer(c.Request.Context(), c.Param("user_id"), req)
	if err != nil {
		respondError(c, err, "Failed to transfer tokens")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetTransactions(c *gin.Context) {
	response, err := h.executor.GetTransactions(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err, "Failed to get transactions")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GenerateQR(c *gin.Context) {
	response, err := h.executor.GenerateQR(c.Request.Context(), c.Param("vendor_address"))
	if err != nil {
		respondError(c, err, "Failed to generate QR data")
		return
	}

	c.JSON(http.StatusOK, response)
}
