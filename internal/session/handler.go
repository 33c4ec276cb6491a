package session

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adhishthite/tippr/pkg/response"
)

// Handler handles HTTP requests for session operations
type Handler struct {
	service *Service
}

// NewHandler creates a new session handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for session endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/reduce", h.Reduce)

	return r
}

// Reduce handles POST /sessions/reduce
// @Summary      Apply an event to a session state
// @Description  Applies one interaction event to the supplied session state and returns the next state plus the amounts recomputed from it
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body ReduceRequest true "Current state and the event to apply"
// @Success      200 {object} response.APIResponse{data=ReduceResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /sessions/reduce [post]
func (h *Handler) Reduce(w http.ResponseWriter, r *http.Request) {
	var req ReduceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	res, err := h.service.Apply(&req)
	if err != nil {
		// Everything Apply can reject is a client fault: an unknown event
		// type, a bad rounding mode, or a failed field validation.
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, res)
}
