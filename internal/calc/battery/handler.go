package battery

import (
	"encoding/json"
	"net/http"

	"Coilcalc/internal/metrics"
)

type Handler struct{}

type CheckInput struct {
	BatteryCDR float64 `json:"battery_cdr_a"`
	Current    float64 `json:"current_a"`
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var input CheckInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CheckCurrent(input.BatteryCDR, input.Current)
	metrics.ObserveCalculation("battery_check", err)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metrics.ObserveSafetyLevel(string(res.Level))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Life(w http.ResponseWriter, r *http.Request) {
	var input LifeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Life(input)
	metrics.ObserveCalculation("battery_life", err)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
