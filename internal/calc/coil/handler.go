package coil

import (
	"encoding/json"
	"net/http"

	"Coilcalc/internal/metrics"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Evaluate(input)
	metrics.ObserveCalculation("coil", err)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metrics.ObserveSafetyLevel(string(res.SafetyLevel))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type coilTypeInfo struct {
	ID         CoilType `json:"id"`
	Name       string   `json:"name"`
	Multiplier float64  `json:"multiplier"`
}

func (h *Handler) CoilTypes(w http.ResponseWriter, r *http.Request) {
	out := make([]coilTypeInfo, 0, len(coilTypes))
	for _, t := range CoilTypes() {
		out = append(out, coilTypeInfo{ID: t, Name: t.DisplayName(), Multiplier: t.Multiplier()})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *Handler) Styles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Styles())
}
