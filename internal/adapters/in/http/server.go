// Package http exposes the delivery workflow over an echo REST API.
// Handlers translate between HTTP requests and application use cases, and map
// typed domain errors onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/application/usecases/queries"
	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest carries agent credentials for POST /api/v1/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse identifies the authenticated agent.
type LoginResponse struct {
	AgentID  uuid.UUID `json:"agentId"`
	Username string    `json:"username"`
}

// Parcel is the JSON representation of one pending parcel.
type Parcel struct {
	ID           uuid.UUID `json:"id"`
	TrackingCode string    `json:"trackingCode"`
	Address      string    `json:"address"`
	Description  string    `json:"description"`
	IsDelivered  bool      `json:"isDelivered"`
}

// DeliveryResponse reports a recorded delivery.
type DeliveryResponse struct {
	ParcelID    uuid.UUID `json:"parcelId"`
	EvidenceURL string    `json:"evidenceUrl"`
	DeliveredAt string    `json:"deliveredAt"`
}

// NewAgentRequest carries the fields for POST /api/v1/admin/agents.
type NewAgentRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewAgentResponse returns the identifier of a provisioned agent.
type NewAgentResponse struct {
	AgentID uuid.UUID `json:"agentId"`
}

// NewParcelRequest carries the fields for POST /api/v1/admin/agents/:agentId/parcels.
type NewParcelRequest struct {
	TrackingCode string `json:"trackingCode"`
	Address      string `json:"address"`
	Description  string `json:"description"`
}

// NewParcelResponse returns the identifier of a registered parcel.
type NewParcelResponse struct {
	ParcelID uuid.UUID `json:"parcelId"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitDeliveryHandler commands.SubmitDeliveryCommandHandler
	createAgentHandler    commands.CreateAgentCommandHandler
	assignParcelHandler   commands.AssignParcelCommandHandler

	// Query handlers
	authenticateAgentHandler queries.AuthenticateAgentQueryHandler
	getPendingParcelsHandler queries.GetPendingParcelsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitDeliveryHandler commands.SubmitDeliveryCommandHandler,
	createAgentHandler commands.CreateAgentCommandHandler,
	assignParcelHandler commands.AssignParcelCommandHandler,
	authenticateAgentHandler queries.AuthenticateAgentQueryHandler,
	getPendingParcelsHandler queries.GetPendingParcelsQueryHandler,
) *Server {
	return &Server{
		submitDeliveryHandler:    submitDeliveryHandler,
		createAgentHandler:       createAgentHandler,
		assignParcelHandler:      assignParcelHandler,
		authenticateAgentHandler: authenticateAgentHandler,
		getPendingParcelsHandler: getPendingParcelsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
// The admin group is seed scaffolding and not part of the delivery workflow's
// public API.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/login", s.Login)
	api.GET("/agents/:agentId/parcels/pending", s.GetPendingParcels)
	api.POST("/parcels/:parcelId/delivery", s.SubmitDelivery)

	admin := api.Group("/admin")
	admin.POST("/agents", s.CreateAgent)
	admin.POST("/agents/:agentId/parcels", s.AssignParcel)
}

// Login handles POST /api/v1/login - stateless credential check.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	query, err := queries.NewAuthenticateAgentQuery(req.Username, req.Password)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Username and password are required")
	}

	identity, err := s.authenticateAgentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCredentials) {
			return errorResponse(ctx, http.StatusUnauthorized, "Invalid credentials")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Authentication failed")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		AgentID:  identity.AgentID.Bytes(),
		Username: identity.Username,
	})
}

// GetPendingParcels handles GET /api/v1/agents/:agentId/parcels/pending.
func (s *Server) GetPendingParcels(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent id")
	}

	query, err := queries.NewGetPendingParcelsQuery(agentID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent id")
	}

	parcels, err := s.getPendingParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve parcels")
	}

	response := make([]Parcel, len(parcels))
	for i, p := range parcels {
		response[i] = Parcel{
			ID:           p.ID.Bytes(),
			TrackingCode: p.TrackingCode,
			Address:      p.Address,
			Description:  p.Description,
			IsDelivered:  p.IsDelivered,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitDelivery handles POST /api/v1/parcels/:parcelId/delivery.
// Expects a multipart form with latitude, longitude and a photo file.
func (s *Server) SubmitDelivery(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel id")
	}

	latitude, err := strconv.ParseFloat(ctx.FormValue("latitude"), 64)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid latitude")
	}
	longitude, err := strconv.ParseFloat(ctx.FormValue("longitude"), 64)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid longitude")
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Evidence photo is required")
	}

	photo, err := fileHeader.Open()
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Evidence photo is unreadable")
	}
	defer photo.Close()

	cmd, err := commands.NewSubmitDeliveryCommand(parcelID, latitude, longitude, photo, fileHeader.Filename)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid delivery data: "+err.Error())
	}

	result, err := s.submitDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Parcel not found")
		case errors.Is(err, parcel.ErrParcelAlreadyDelivered):
			return errorResponse(ctx, http.StatusConflict, "Parcel already delivered")
		case errors.Is(err, commands.ErrEvidenceStorageFailed):
			return errorResponse(ctx, http.StatusInternalServerError, "Evidence storage unavailable")
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to record delivery")
		}
	}

	return ctx.JSON(http.StatusOK, DeliveryResponse{
		ParcelID:    parcelID.Bytes(),
		EvidenceURL: result.EvidenceURL,
		DeliveredAt: result.DeliveredAt.Format(time.RFC3339Nano),
	})
}

// CreateAgent handles POST /api/v1/admin/agents - provisions a delivery agent.
func (s *Server) CreateAgent(ctx echo.Context) error {
	var req NewAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAgentCommand(agentID, req.Username, req.Password)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent data: "+err.Error())
	}

	if err = s.createAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return errorResponse(ctx, http.StatusBadRequest, "Username already taken")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create agent")
	}

	return ctx.JSON(http.StatusCreated, NewAgentResponse{AgentID: agentID.Bytes()})
}

// AssignParcel handles POST /api/v1/admin/agents/:agentId/parcels - registers a
// parcel on an agent's pending list.
func (s *Server) AssignParcel(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent id")
	}

	var req NewParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewAssignParcelCommand(parcelID, agentID, req.TrackingCode, req.Address, req.Description)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel data: "+err.Error())
	}

	if err = s.assignParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Agent not found")
		case errors.Is(err, errs.ErrObjectAlreadyExists):
			return errorResponse(ctx, http.StatusBadRequest, "Tracking code already registered")
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to assign parcel")
		}
	}

	return ctx.JSON(http.StatusCreated, NewParcelResponse{ParcelID: parcelID.Bytes()})
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
