package calculation

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adhishthite/tippr/pkg/response"
)

// Handler handles HTTP requests for calculation operations
type Handler struct {
	service *Service
}

// NewHandler creates a new calculation handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for calculation endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Calculate)
	r.Post("/bill/validate", h.ValidateBill)
	r.Post("/tip/validate", h.ValidateTip)
	r.Post("/split", h.Split)
	r.Get("/format", h.Format)

	return r
}

// Calculate handles POST /calculations
// @Summary      Run a full tip calculation
// @Description  Validates the raw bill and tip inputs, computes tip and total, applies the rounding mode, and splits among participants when a count is supplied
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        request body CalculateRequest true "Raw inputs, rounding mode, optional split count"
// @Success      200 {object} response.APIResponse{data=CalculateResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /calculations [post]
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	res, err := h.service.Calculate(&req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, res)
}

// ValidateBill handles POST /calculations/bill/validate
// @Summary      Validate raw bill text
// @Description  Sanitizes and validates bill input; rejected input is reported in the result body, not as an HTTP error
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        request body ValidateInputRequest true "Raw bill text"
// @Success      200 {object} response.APIResponse{data=engine.ValidationResult}
// @Failure      400 {object} response.APIResponse
// @Router       /calculations/bill/validate [post]
func (h *Handler) ValidateBill(w http.ResponseWriter, r *http.Request) {
	var req ValidateInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	response.JSON(w, http.StatusOK, h.service.ValidateBill(&req))
}

// ValidateTip handles POST /calculations/tip/validate
// @Summary      Validate raw tip text
// @Description  Sanitizes and validates tip input, clamping percentages above 100
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        request body ValidateInputRequest true "Raw tip text"
// @Success      200 {object} response.APIResponse{data=engine.ValidationResult}
// @Failure      400 {object} response.APIResponse
// @Router       /calculations/tip/validate [post]
func (h *Handler) ValidateTip(w http.ResponseWriter, r *http.Request) {
	var req ValidateInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	response.JSON(w, http.StatusOK, h.service.ValidateTip(&req))
}

// Split handles POST /calculations/split
// @Summary      Split a total among participants
// @Description  Divides a total in integer cents so the per-person shares reconcile exactly; the count is clamped to 1-50
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        request body SplitRequest true "Total and participant count"
// @Success      200 {object} response.APIResponse{data=engine.SplitResult}
// @Failure      400 {object} response.APIResponse
// @Router       /calculations/split [post]
func (h *Handler) Split(w http.ResponseWriter, r *http.Request) {
	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	res, err := h.service.Split(&req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, res)
}

// Format handles GET /calculations/format
// @Summary      Format a value for display
// @Description  Renders a numeric value with thousands separators and exactly two decimals
// @Tags         calculations
// @Produce      json
// @Param        value query number true "Value to format"
// @Success      200 {object} response.APIResponse{data=FormatResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /calculations/format [get]
func (h *Handler) Format(w http.ResponseWriter, r *http.Request) {
	value, err := strconv.ParseFloat(r.URL.Query().Get("value"), 64)
	if err != nil {
		response.BadRequest(w, "Invalid value parameter")
		return
	}

	response.JSON(w, http.StatusOK, h.service.Format(value))
}
