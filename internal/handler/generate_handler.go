package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/renanduart3/promptopia-creation-platform/internal/domain"
)

// GenerateHandler runs the gated generate action and its gate preview.
type GenerateHandler struct {
	generationService domain.GenerationService
	logger            domain.Logger
}

func NewGenerateHandler(generationService domain.GenerationService, logger domain.Logger) *GenerateHandler {
	return &GenerateHandler{
		generationService: generationService,
		logger:            logger,
	}
}

type generateRequest struct {
	Text string `json:"text"`
}

// Generate validates the draft against the caller's subscription and word
// limit, then runs the (stubbed) generator.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	token, _ := GetTokenFromContext(r)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := h.generationService.Generate(r.Context(), user.ID, token, req.Text)
	if err != nil {
		h.writeGenerateError(w, user.ID, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// Preview returns the gate decision for the current draft without running
// anything. The page uses it to enable or disable the generate button.
func (h *GenerateHandler) Preview(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	token, _ := GetTokenFromContext(r)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.generationService.Preview(user.ID, token, req.Text))
}

func (h *GenerateHandler) writeGenerateError(w http.ResponseWriter, userID string, err error) {
	var gateErr *domain.GateError
	switch {
	case errors.As(err, &gateErr):
		h.writeGateRejection(w, gateErr)
	case errors.Is(err, domain.ErrActionInProgress):
		writeNotice(w, http.StatusConflict, domain.Notice{
			Title:       "Hold on",
			Description: "Another action is already in progress. Wait for it to finish.",
			Severity:    domain.NoticeWarning,
		})
	default:
		h.logger.Error("Generation failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to generate prompts")
	}
}

func (h *GenerateHandler) writeGateRejection(w http.ResponseWriter, gateErr *domain.GateError) {
	switch gateErr.Reason {
	case domain.GateReasonEmpty:
		writeNotice(w, http.StatusBadRequest, domain.Notice{
			Title:       "Nothing to generate",
			Description: "Type or paste your script first.",
			Severity:    domain.NoticeWarning,
		})
	case domain.GateReasonOverLimit:
		writeNotice(w, http.StatusBadRequest, domain.Notice{
			Title:       "Word limit exceeded",
			Description: fmt.Sprintf("Your script has %d words. The limit is %d.", gateErr.WordCount, gateErr.Limit),
			Severity:    domain.NoticeWarning,
		})
	case domain.GateReasonNotEntitled:
		price := domain.PriceForRegion(gateErr.Country)
		writeNotice(w, http.StatusPaymentRequired, domain.Notice{
			Title:       "Subscription required",
			Description: fmt.Sprintf("Subscribe for %s to generate prompts.", price),
			Severity:    domain.NoticeWarning,
		})
	case domain.GateReasonBusy:
		writeNotice(w, http.StatusConflict, domain.Notice{
			Title:       "Hold on",
			Description: "Another action is already in progress. Wait for it to finish.",
			Severity:    domain.NoticeWarning,
		})
	default:
		writeError(w, http.StatusBadRequest, gateErr.Error())
	}
}
