package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"briefgen/internal/brief"
	"briefgen/internal/client"
	"briefgen/internal/provider"
)

// BriefGenerator is the slice of the orchestrator the handlers need.
type BriefGenerator interface {
	CreateBrief(ctx context.Context, req brief.Request) (*brief.GeneratedBrief, error)
}

// ProviderInfo exposes registry state to the API.
type ProviderInfo interface {
	Available() []provider.ID
	Default() (provider.ID, error)
}

// BriefHandler handles brief generation and client profile requests.
type BriefHandler struct {
	briefs    BriefGenerator
	clients   *client.Store
	providers ProviderInfo
}

// NewBriefHandler creates a new BriefHandler.
func NewBriefHandler(briefs BriefGenerator, clients *client.Store, providers ProviderInfo) *BriefHandler {
	return &BriefHandler{briefs: briefs, clients: clients, providers: providers}
}

// RegisterRoutes registers all brief and client routes.
func (h *BriefHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/briefs", h.GenerateBrief)
		r.Get("/providers", h.ListProviders)
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.ListClients)
			r.Post("/", h.CreateClient)
			r.Get("/{name}", h.GetClient)
			r.Put("/{name}", h.UpdateClient)
			r.Delete("/{name}", h.DeleteClient)
		})
	})
}

// GenerateBriefRequest is the JSON payload for POST /api/v1/briefs.
type GenerateBriefRequest struct {
	Client            string   `json:"client"`
	Topic             string   `json:"topic"`
	PrimaryKeyword    string   `json:"primary_keyword"`
	SecondaryKeywords []string `json:"secondary_keywords"`
	Provider          string   `json:"provider,omitempty"`
}

// GenerateBrief runs one end-to-end brief generation.
func (h *BriefHandler) GenerateBrief(w http.ResponseWriter, r *http.Request) {
	var req GenerateBriefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, "invalid request body")
		return
	}

	profile, err := h.clients.Get(req.Client)
	if err != nil {
		writeClientError(w, err)
		return
	}

	generated, err := h.briefs.CreateBrief(r.Context(), brief.Request{
		Topic:             req.Topic,
		PrimaryKeyword:    req.PrimaryKeyword,
		SecondaryKeywords: req.SecondaryKeywords,
		Provider:          provider.ID(req.Provider),
		Profile:           profile,
	})
	if err != nil {
		writeBriefError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generated)
}

// writeBriefError maps the generation error taxonomy onto HTTP statuses
// with enough detail for the caller to render a message.
func writeBriefError(w http.ResponseWriter, err error) {
	var (
		provErr  *provider.Error
		parseErr *brief.ParseError
	)
	switch {
	case errors.Is(err, brief.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
	case errors.Is(err, provider.ErrUnknownProvider):
		writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
	case errors.Is(err, provider.ErrNoProviderAvailable):
		writeError(w, http.StatusServiceUnavailable, ErrCodeNoProvider, err.Error())
	case errors.As(err, &parseErr):
		writeJSON(w, http.StatusBadGateway, ParseErrorResponse{
			Error:   ErrorInfo{Code: ErrCodeParse, Message: parseErr.Error()},
			Missing: parseErr.Missing,
		})
	case errors.As(err, &provErr):
		writeJSON(w, http.StatusBadGateway, ProviderErrorResponse{
			Error:    ErrorInfo{Code: ErrCodeProvider, Message: provErr.Error()},
			Provider: provErr.Provider,
			Kind:     provErr.Kind,
		})
	default:
		log.Error().Err(err).Msg("Brief generation failed")
		writeError(w, http.StatusInternalServerError, ErrCodeInternal, "brief generation failed")
	}
}

// ListProviders returns the configured providers and the default.
func (h *BriefHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Providers []provider.ID `json:"providers"`
		Default   provider.ID   `json:"default,omitempty"`
	}{Providers: h.providers.Available()}
	if def, err := h.providers.Default(); err == nil {
		resp.Default = def
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListClients returns all stored client names.
func (h *BriefHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	names, err := h.clients.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Clients []string `json:"clients"`
	}{Clients: names})
}

// CreateClient stores a new client profile.
func (h *BriefHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var p client.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, "invalid request body")
		return
	}
	if err := h.clients.Create(&p); err != nil {
		if errors.Is(err, client.ErrProfileExists) {
			writeError(w, http.StatusConflict, ErrCodeConflict, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// GetClient returns one client profile.
func (h *BriefHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	p, err := h.clients.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeClientError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// writeClientError maps client store failures onto HTTP statuses.
func writeClientError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, client.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, client.ErrInvalidProfileName):
		writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

// UpdateClient overwrites an existing client profile.
func (h *BriefHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var p client.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, "invalid request body")
		return
	}
	name := chi.URLParam(r, "name")
	if err := h.clients.Update(name, &p); err != nil {
		writeClientError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteClient removes a client profile.
func (h *BriefHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.clients.Delete(chi.URLParam(r, "name")); err != nil {
		writeClientError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorInfo{Code: code, Message: message}})
}
