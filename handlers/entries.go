package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"crewtime/config"
	"crewtime/models"
	"crewtime/store"
	"crewtime/timesheet"

	"github.com/go-chi/chi/v5"
)

type EntryHandler struct {
	config *config.Config
	store  *store.Store
}

func NewEntryHandler(cfg *config.Config, s *store.Store) *EntryHandler {
	return &EntryHandler{
		config: cfg,
		store:  s,
	}
}

// entryRequest is the wire shape the client submits for create and update.
// employeeTimes and hoursData are keyed by the worker's user id in decimal
// string form.
type entryRequest struct {
	Date          string                             `json:"date" validate:"required,datetime=2006-01-02"`
	TimeIn        string                             `json:"timeIn" validate:"omitempty,datetime=15:04"`
	TimeOut       string                             `json:"timeOut" validate:"omitempty,datetime=15:04"`
	TotalHours    string                             `json:"totalHours" validate:"omitempty,numeric"`
	Comment       string                             `json:"comment" validate:"max=500"`
	ForemanID     uint                               `json:"foremanId"`
	PropertyName  string                             `json:"propertyName" validate:"max=200"`
	EmployeeTimes map[string]timesheet.TimePair      `json:"employeeTimes" validate:"dive"`
	HoursData     map[string]timesheet.CategoryHours `json:"hoursData" validate:"dive"`
}

// entryDetail is the denormalized entry shape the edit page consumes.
type entryDetail struct {
	models.Entry
	EmployeeTimes map[string]timesheet.TimePair      `json:"employeeTimes"`
	HoursData     map[string]timesheet.CategoryHours `json:"hoursData"`
}

// CreateEntry handles POST /api/entries.
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ts, ok := h.decodeEntry(w, r)
	if !ok {
		return
	}

	entry, times, hours := timesheet.Normalize(ts)
	id, err := h.store.CreateEntry(r.Context(), entry, times, hours)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"entryId": id,
	})
}

// GetEntry handles GET /api/entries/{id}.
func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	entry, times, hours, err := h.store.GetEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	ts := timesheet.Denormalize(entry, times, hours)
	writeJSON(w, http.StatusOK, entryDetail{
		Entry:         entry,
		EmployeeTimes: ts.EmployeeTimes(),
		HoursData:     ts.HoursData(),
	})
}

// UpdateEntry handles PUT /api/entries/{id}: full header overwrite plus a
// wholesale child-row replace.
func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}
	ts, ok := h.decodeEntry(w, r)
	if !ok {
		return
	}

	entry, times, hours := timesheet.Normalize(ts)
	if err := h.store.UpdateEntry(r.Context(), id, entry, times, hours); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// DeleteEntry handles DELETE /api/entries/{id}.
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteEntry(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// LatestEntries handles GET /api/entries/latest: the newest entries with no
// filtering.
func (h *EntryHandler) LatestEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListLatest(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// ListEntries handles GET /api/entries with optional foremanId /
// propertyName / weekStart filters. Unparseable filter values are ignored
// rather than rejected.
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListFiltered(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// ListForemen handles GET /api/foremen.
func (h *EntryHandler) ListForemen(w http.ResponseWriter, r *http.Request) {
	foremen, err := h.store.ListForemen(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if foremen == nil {
		foremen = []models.Foreman{}
	}
	writeJSON(w, http.StatusOK, foremen)
}

// ListProperties handles GET /api/properties.
func (h *EntryHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.ListDistinctProperties(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

// ExportCSV handles GET /api/entries/export: the filtered entry list as a
// CSV download, foreman ids resolved to usernames.
func (h *EntryHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListFiltered(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	foremen, err := h.store.ListForemen(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	names := make(map[uint]string, len(foremen))
	for _, f := range foremen {
		names[f.ID] = f.Username
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=timesheets.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"Date", "Time In", "Time Out", "Total Hours", "Foreman", "Property", "Comment"})
	for _, entry := range entries {
		writer.Write([]string{
			entry.Date,
			entry.TimeIn,
			entry.TimeOut,
			entry.TotalHours,
			names[entry.ForemanID],
			entry.PropertyName,
			entry.Comment,
		})
	}
}

// decodeEntry parses and validates an entry payload and rebuilds the worker
// roster from the wire maps. Writes the error response itself on failure.
func (h *EntryHandler) decodeEntry(w http.ResponseWriter, r *http.Request) (timesheet.Timesheet, bool) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return timesheet.Timesheet{}, false
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entry data")
		return timesheet.Timesheet{}, false
	}
	for _, ch := range req.HoursData {
		for _, v := range []float64{ch.Miscellaneous, ch.SmallPower, ch.Machine, ch.Lunch} {
			if !validCategoryHours(v) {
				writeError(w, http.StatusBadRequest, "Category hours must be between 0 and 4 in quarter-hour steps")
				return timesheet.Timesheet{}, false
			}
		}
	}

	workers, err := timesheet.WorkersFromWire(req.ForemanID, req.EmployeeTimes, req.HoursData)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid entry data: %v", err))
		return timesheet.Timesheet{}, false
	}

	return timesheet.Timesheet{
		Date:         req.Date,
		TimeIn:       req.TimeIn,
		TimeOut:      req.TimeOut,
		TotalHours:   req.TotalHours,
		Comment:      req.Comment,
		ForemanID:    req.ForemanID,
		PropertyName: req.PropertyName,
		Workers:      workers,
	}, true
}

// validCategoryHours allows [0, 4] at 0.25 granularity.
func validCategoryHours(v float64) bool {
	if v < 0 || v > 4 {
		return false
	}
	steps := v * 4
	return steps == math.Trunc(steps)
}

func entryID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entry ID")
		return 0, false
	}
	return uint(id), true
}

// filterFromQuery mirrors the client's filter controls. Values that fail to
// parse are simply not applied.
func filterFromQuery(r *http.Request) models.EntryFilter {
	var filter models.EntryFilter
	if fid, err := strconv.ParseUint(r.URL.Query().Get("foremanId"), 10, 32); err == nil && fid > 0 {
		filter.ForemanID = uint(fid)
	}
	filter.PropertyName = r.URL.Query().Get("propertyName")
	if ws := r.URL.Query().Get("weekStart"); ws != "" {
		if err := validate.Var(ws, "datetime=2006-01-02"); err == nil {
			filter.WeekStart = ws
		}
	}
	return filter
}
