package broker

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/hazyhaar/kantina/menu"
	"github.com/hazyhaar/kantina/menustore"
)

// Routes registers the menu endpoints. Upload and per-week lookup exist only
// for the document source; the feed source serves the live snapshot.
func (s *Service) Routes(r chi.Router) {
	r.Get("/menu", s.handleGetMenu)
	if s.cfg.Source == SourceDocument {
		r.Get("/menu/{week}", s.handleGetWeek)
		r.Post("/menu", s.handleUpload)
	}
}

// handleGetMenu serves the current week, or ?weekNumber= when given.
func (s *Service) handleGetMenu(w http.ResponseWriter, r *http.Request) {
	week := r.URL.Query().Get("weekNumber")
	if week == "" {
		week = s.CurrentWeek()
	}
	s.serveMenu(w, r, week)
}

// handleGetWeek serves a specific stored week.
func (s *Service) handleGetWeek(w http.ResponseWriter, r *http.Request) {
	s.serveMenu(w, r, chi.URLParam(r, "week"))
}

func (s *Service) serveMenu(w http.ResponseWriter, r *http.Request, week string) {
	m, err := s.Menu(r.Context(), week)
	if err != nil {
		s.logEvent("menu_get", week, err.Error())
		if errors.Is(err, menustore.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, menu.ErrorMenu(week, fmt.Sprintf("Menu not found for week %s", week)))
			return
		}
		s.logger.Error("menu lookup", "week", week, "error", err)
		writeJSON(w, http.StatusInternalServerError, menu.ErrorMenu(week, err.Error()))
		return
	}
	s.logEvent("menu_get", week, "")
	writeJSON(w, http.StatusOK, m)
}

// handleUpload accepts one or more decks in a multipart form and responds
// with the parsed menus, nil entries filtered. Form fields are a map, so
// fields are processed in sorted name order to keep the response
// deterministic; files within one field keep their submitted order.
func (s *Service) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(s.cfg.MaxUploadMB) * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, menu.ErrorMenu("", fmt.Sprintf("parse upload: %s", err)))
		return
	}
	defer r.MultipartForm.RemoveAll()

	fields := make([]string, 0, len(r.MultipartForm.File))
	for name := range r.MultipartForm.File {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	menus := []*menu.Menu{}
	for _, name := range fields {
		headers := r.MultipartForm.File[name]
		for _, hdr := range headers {
			f, err := hdr.Open()
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, menu.ErrorMenu("", err.Error()))
				return
			}
			m, err := s.Ingest(r.Context(), hdr.Filename, f)
			f.Close()
			if err != nil {
				s.logEvent("menu_upload", weekFromFilename(hdr.Filename), err.Error())
				s.logger.Error("ingest upload", "file", hdr.Filename, "error", err)
				writeJSON(w, http.StatusInternalServerError, menu.ErrorMenu(weekFromFilename(hdr.Filename), err.Error()))
				return
			}
			if m == nil {
				// Empty filename: resolved as nothing, filtered out.
				continue
			}
			s.logEvent("menu_upload", m.WeekNumber, "")
			menus = append(menus, m)
		}
	}
	writeJSON(w, http.StatusOK, menus)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
