package importer

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"Coilcalc/internal/calc/coil"
	"Coilcalc/internal/metrics"
)

const maxUploadSize = 5 << 20 // 5MB

type Handler struct {
	Logger *slog.Logger
}

type ImportedBuild struct {
	Input  coil.Input   `json:"input"`
	Result *coil.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type CoilImportResult struct {
	Count   int             `json:"count"`
	Builds  []ImportedBuild `json:"builds"`
	Skipped []RowError      `json:"skipped,omitempty"`
}

func (h *Handler) Coils(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	inputs, skipped, err := ParseBuilds(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	out := CoilImportResult{Builds: make([]ImportedBuild, 0, len(inputs)), Skipped: skipped}
	for _, in := range inputs {
		res, err := coil.Evaluate(in)
		metrics.ObserveCalculation("import", err)
		if err != nil {
			out.Builds = append(out.Builds, ImportedBuild{Input: in, Error: err.Error()})
			continue
		}
		out.Builds = append(out.Builds, ImportedBuild{Input: in, Result: &res})
		out.Count++
	}
	metrics.ImportedRowsTotal.WithLabelValues("parsed").Add(float64(len(inputs)))
	metrics.ImportedRowsTotal.WithLabelValues("skipped").Add(float64(len(skipped)))
	if len(skipped) > 0 && h.Logger != nil {
		h.Logger.Warn("import rows skipped", "skipped", len(skipped), "parsed", len(inputs))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
