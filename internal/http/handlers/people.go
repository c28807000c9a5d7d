package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"offsetpager/internal/pagination"
	"offsetpager/internal/services/data"
)

// ListPeople handles people listing requests using the data service.
// baseURL overrides the link base; when empty it is derived from the request's
// Host and X-Forwarded-Proto, which only suits trusted proxies or development.
func ListPeople(dataService *data.Service, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := data.ListRequest{
			BaseURL: requestBaseURL(r, baseURL),
			Params:  pagination.ParseQuery(r.URL.RawQuery),
		}

		response, err := dataService.ListPeople(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func requestBaseURL(r *http.Request, configured string) string {
	if configured != "" {
		return configured
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + r.Host + r.URL.Path
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
	default:
		var serviceErr *data.ServiceError
		if errors.As(err, &serviceErr) {
			log.Error().Err(err).Str("path", r.URL.Path).Msg("listing failed")
			http.Error(w, "failed to list: "+serviceErr.Op, http.StatusInternalServerError)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}
