package wire

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct{}

func (h *Handler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, Materials())
}

func (h *Handler) GetMaterial(w http.ResponseWriter, r *http.Request) {
	m, ok := LookupMaterial(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Material not found", http.StatusNotFound)
		return
	}
	writeJSON(w, m)
}

func (h *Handler) ListGauges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, Gauges())
}

func (h *Handler) GetGauge(w http.ResponseWriter, r *http.Request) {
	awg, err := strconv.Atoi(mux.Vars(r)["awg"])
	if err != nil {
		http.Error(w, "Invalid AWG", http.StatusBadRequest)
		return
	}
	d, ok := DiameterForGauge(awg)
	if !ok {
		http.Error(w, "Gauge not found", http.StatusNotFound)
		return
	}
	writeJSON(w, Gauge{AWG: awg, DiameterMM: d})
}

// Nearest answers /gauges/nearest?diameter_mm=0.4.
func (h *Handler) Nearest(w http.ResponseWriter, r *http.Request) {
	mm, err := strconv.ParseFloat(r.URL.Query().Get("diameter_mm"), 64)
	if err != nil || mm <= 0 {
		http.Error(w, "Invalid diameter_mm", http.StatusBadRequest)
		return
	}
	writeJSON(w, GaugeForDiameter(mm))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
