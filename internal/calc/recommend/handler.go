package recommend

import (
	"encoding/json"
	"net/http"

	"Coilcalc/internal/metrics"
)

type Handler struct{}

func (h *Handler) Build(w http.ResponseWriter, r *http.Request) {
	var input BuildInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Build(input)
	metrics.ObserveCalculation("recommend", err)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
