package api

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chuymedina96/chicago-3d-printworks/core/quote"
	"github.com/chuymedina96/chicago-3d-printworks/internal/logging"
	"github.com/chuymedina96/chicago-3d-printworks/internal/store"
)

// SaveQuoteRequest saves an accepted quote into the workspace.
type SaveQuoteRequest struct {
	Filename      string        `json:"filename"`
	MaterialID    string        `json:"material_id"`
	InfillPct     int           `json:"infill_pct"`
	LayerHeightMM float64       `json:"layer_height_mm"`
	Result        QuoteResponse `json:"result"`
}

// WorkspaceList is the workspace listing with roll-up totals.
type WorkspaceList struct {
	Items    []store.SavedQuote `json:"items"`
	Count    int                `json:"count"`
	TotalUSD float64            `json:"total_usd"`
}

// handleWorkspaceList handles GET /workspace
func (s *Server) handleWorkspaceList(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "NO_WORKSPACE", "workspace database not connected", http.StatusServiceUnavailable)
		return
	}

	items, err := s.store.List(r.Context())
	if err != nil {
		s.writeStorageError(w, err)
		return
	}

	list := WorkspaceList{Items: items, Count: len(items)}
	if list.Items == nil {
		list.Items = []store.SavedQuote{}
	}
	sum := 0.0
	for _, item := range items {
		sum += item.PriceUSD
	}
	list.TotalUSD = quote.Round2(sum)

	s.writeJSON(w, list, http.StatusOK)
}

// handleWorkspaceSave handles POST /workspace
func (s *Server) handleWorkspaceSave(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "NO_WORKSPACE", "workspace database not connected", http.StatusServiceUnavailable)
		return
	}

	var req SaveQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Filename == "" {
		s.writeError(w, "VALIDATION_ERROR", "filename is required", http.StatusBadRequest)
		return
	}

	resultJSON, err := json.Marshal(req.Result)
	if err != nil {
		s.writeError(w, "INVALID_RESULT", err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := s.store.Save(r.Context(), store.SavedQuote{
		Filename:      req.Filename,
		MaterialID:    req.MaterialID,
		InfillPct:     req.InfillPct,
		LayerHeightMM: req.LayerHeightMM,
		PriceUSD:      req.Result.PriceUSD,
		ResultJSON:    string(resultJSON),
	})
	if err != nil {
		s.writeStorageError(w, err)
		return
	}

	s.writeJSON(w, saved, http.StatusCreated)
}

// handleWorkspaceDelete handles DELETE /workspace/{id}
func (s *Server) handleWorkspaceDelete(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "NO_WORKSPACE", "workspace database not connected", http.StatusServiceUnavailable)
		return
	}

	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWorkspaceClear handles DELETE /workspace
func (s *Server) handleWorkspaceClear(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "NO_WORKSPACE", "workspace database not connected", http.StatusServiceUnavailable)
		return
	}

	if err := s.store.Clear(r.Context()); err != nil {
		s.writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWorkspaceExport handles GET /workspace/export?format=csv|json
func (s *Server) handleWorkspaceExport(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "NO_WORKSPACE", "workspace database not connected", http.StatusServiceUnavailable)
		return
	}

	items, err := s.store.List(r.Context())
	if err != nil {
		s.writeStorageError(w, err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		s.exportCSV(w, items)
	case "json":
		w.Header().Set("Content-Disposition", `attachment; filename="all-quotes.json"`)
		s.writeJSON(w, items, http.StatusOK)
	default:
		s.writeError(w, "INVALID_FORMAT", fmt.Sprintf("unsupported export format: %s", format), http.StatusBadRequest)
	}
}

func (s *Server) exportCSV(w http.ResponseWriter, items []store.SavedQuote) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="all-quotes.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{
		"filename", "material", "infill_pct", "layer_height_mm", "price_usd",
		"est_material_g", "est_print_time_hr", "volume_cm3", "surface_cm2", "triangles",
	})

	for _, item := range items {
		var result QuoteResponse
		if err := json.Unmarshal([]byte(item.ResultJSON), &result); err != nil {
			logging.Warn("saved quote has unreadable result snapshot, exporting stored columns only",
				zap.String("id", item.ID),
				zap.String("filename", item.Filename),
				zap.Error(err),
			)
		}

		timeStr := ""
		if result.EstimatedTimeHr != nil {
			timeStr = strconv.FormatFloat(*result.EstimatedTimeHr, 'f', 2, 64)
		}

		_ = cw.Write([]string{
			item.Filename,
			item.MaterialID,
			strconv.Itoa(item.InfillPct),
			strconv.FormatFloat(item.LayerHeightMM, 'f', -1, 64),
			strconv.FormatFloat(item.PriceUSD, 'f', 2, 64),
			strconv.FormatFloat(result.EstimatedMaterialG, 'f', 1, 64),
			timeStr,
			strconv.FormatFloat(result.VolumeCm3, 'f', -1, 64),
			strconv.FormatFloat(result.SurfaceCm2, 'f', -1, 64),
			strconv.Itoa(result.TriangleCount),
		})
	}
	cw.Flush()
}
