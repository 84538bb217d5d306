package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"Coilcalc/internal/calc/coil"
	"Coilcalc/internal/metrics"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := coil.Evaluate(input.Build)
	metrics.ObserveCalculation("report", err)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, input, res, time.Now()); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"coil-build.pdf\"")
	w.Write(buf.Bytes())
}
