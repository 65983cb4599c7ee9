package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dkimh/Cybernetic-Design-Network/application/commands"
	commandbus "github.com/dkimh/Cybernetic-Design-Network/application/commands/bus"
	"github.com/dkimh/Cybernetic-Design-Network/application/queries"
	querybus "github.com/dkimh/Cybernetic-Design-Network/application/queries/bus"
	"github.com/dkimh/Cybernetic-Design-Network/application/services"
	"github.com/dkimh/Cybernetic-Design-Network/pkg/common"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// SessionHandler handles session lifecycle and interaction requests
type SessionHandler struct {
	sessions   *services.SessionManager
	commandBus *commandbus.CommandBus
	queryBus   *querybus.QueryBus
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(
	sessions *services.SessionManager,
	commandBus *commandbus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessions:   sessions,
		commandBus: commandBus,
		queryBus:   queryBus,
		validate:   validator.New(),
		logger:     logger,
	}
}

// createSessionRequest is the POST /sessions body
type createSessionRequest struct {
	RandomizeLayout bool `json:"randomize_layout"`
}

// createSessionResponse pairs the new session with its initial layout
type createSessionResponse struct {
	Session   services.Snapshot       `json:"session"`
	Positions queries.GetLayoutResult `json:"layout"`
}

// CreateSession handles POST /sessions. An empty body is allowed and
// means the deterministic circle start.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
			return
		}
	}

	session, err := h.sessions.CreateSession(r.Context(), req.RandomizeLayout)
	if err != nil {
		h.logger.Error("Failed to create session", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetLayoutQuery{SessionID: session.ID()})
	if err != nil {
		h.logger.Error("Failed to fetch initial layout", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	layout, _ := result.(queries.GetLayoutResult)

	common.RespondJSON(w, http.StatusCreated, createSessionResponse{
		Session:   session.Snapshot(),
		Positions: layout,
	})
}

// GetSession handles GET /sessions/{sessionID}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	result, err := h.queryBus.Ask(r.Context(), queries.GetSessionQuery{SessionID: sessionID})
	if err != nil {
		h.respondCommandError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// DeleteSession handles DELETE /sessions/{sessionID}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	cmd := commands.DeleteSessionCommand{SessionID: sessionID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.respondCommandError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"deleted": sessionID})
}

// GetLayout handles GET /sessions/{sessionID}/layout
func (h *SessionHandler) GetLayout(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	recompute, _ := strconv.ParseBool(r.URL.Query().Get("recompute"))
	randomize, _ := strconv.ParseBool(r.URL.Query().Get("randomize"))

	query := queries.GetLayoutQuery{
		SessionID: sessionID,
		Recompute: recompute,
		Randomize: randomize,
	}
	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.respondCommandError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// activateNodeRequest is the POST /sessions/{sessionID}/activate body
type activateNodeRequest struct {
	NodeID string `json:"node_id" validate:"required"`
}

// ActivateNode handles POST /sessions/{sessionID}/activate
func (h *SessionHandler) ActivateNode(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req activateNodeRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	cmd := commands.ActivateNodeCommand{SessionID: sessionID, NodeID: req.NodeID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.respondCommandError(w, err)
		return
	}

	// Return the refreshed session state so the frontend can redraw
	// layers without a second round trip
	result, err := h.queryBus.Ask(r.Context(), queries.GetSessionQuery{SessionID: sessionID})
	if err != nil {
		h.respondCommandError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// submitFeedbackRequest is the POST /sessions/{sessionID}/feedback body
type submitFeedbackRequest struct {
	NodeID string `json:"node_id" validate:"required"`
	Kind   string `json:"kind" validate:"required,oneof=insightful neutral familiar"`
}

// SubmitFeedback handles POST /sessions/{sessionID}/feedback
func (h *SessionHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req submitFeedbackRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	cmd := commands.SubmitFeedbackCommand{
		SessionID: sessionID,
		NodeID:    req.NodeID,
		Kind:      req.Kind,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.respondCommandError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"node_id": req.NodeID,
		"kind":    req.Kind,
	})
}

// RandomizeLinks handles POST /sessions/{sessionID}/randomize-links
func (h *SessionHandler) RandomizeLinks(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	cmd := commands.RandomizeLinksCommand{SessionID: sessionID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.respondCommandError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetLayoutQuery{SessionID: sessionID})
	if err != nil {
		h.respondCommandError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// setModeRequest is the POST /sessions/{sessionID}/mode body
type setModeRequest struct {
	Cybernetic bool `json:"cybernetic"`
}

// SetMode handles POST /sessions/{sessionID}/mode
func (h *SessionHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req setModeRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	cmd := commands.SetCyberneticModeCommand{SessionID: sessionID, Enabled: req.Cybernetic}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.respondCommandError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetSessionQuery{SessionID: sessionID})
	if err != nil {
		h.respondCommandError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// decodeAndValidate decodes a JSON body and applies struct validation
func (h *SessionHandler) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return pkgerrors.NewValidationError("invalid request body")
	}
	if err := h.validate.Struct(dst); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// respondCommandError maps bus errors onto HTTP responses
func (h *SessionHandler) respondCommandError(w http.ResponseWriter, err error) {
	if pkgerrors.IsAppError(err) {
		common.RespondAppError(w, err)
		return
	}
	// Non-AppError failures from the buses are validation problems or
	// malformed requests; registration bugs surface in tests, not here
	common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
}
