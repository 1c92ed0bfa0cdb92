package suggest_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	suggestSlots "github.com/rmarins/MEI-AgendaService/internal/usecase/suggest_slots"
)

const (
	msgInvalidCount = "quantidade inválida, esperado um inteiro positivo"

	defaultCount = 3
	maxCount     = 20
)

type Handler struct {
	useCase SuggestSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/suggested
// Query params: count (optional, default 3, capped at 20)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	count := defaultCount
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /slots/suggested - Invalid count: %q", countStr)
			handlers.RespondBadRequest(w, msgInvalidCount)
			return
		}
		count = parsed
	}
	if count > maxCount {
		count = maxCount
	}

	result, err := h.useCase.Execute(r.Context(), &suggestSlots.Request{Count: count})
	if err != nil {
		switch {
		case errors.Is(err, suggestSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/suggested - Invalid input: count=%d, error=%v", count, err)
			handlers.RespondBadRequest(w, msgInvalidCount)

		default:
			h.logger.Error("GET /slots/suggested - Failed to suggest slots: count=%d, error=%v", count, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/suggested - Suggestions retrieved successfully: count=%d, slots_count=%d",
		count, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
