package batch

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"Coilcalc/internal/metrics"
)

type Handler struct {
	Logger *slog.Logger
}

func (h *Handler) Coils(w http.ResponseWriter, r *http.Request) {
	var input CoilBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateCoils(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for _, item := range res.Results {
		metrics.ObserveCalculation("batch", item.err)
	}
	if res.Failed > 0 && h.Logger != nil {
		h.Logger.Warn("batch items rejected", "failed", res.Failed, "total", len(res.Results))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
