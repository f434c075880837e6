package catalogd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/attidev/storefront/internal/catalog"
	"github.com/attidev/storefront/pkg/web"
	"github.com/go-chi/chi/v5"
)

// Handler serves the demo catalog's REST surface.
type Handler struct {
	store  *Store
	auth   *Authenticator
	logger *slog.Logger
}

// NewHandler creates a handler over the given store and authenticator.
func NewHandler(store *Store, auth *Authenticator, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		auth:   auth,
		logger: logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the demo catalog.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/auth/login", h.Login)
	r.Get("/auth/me", h.Me)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Post("/add", h.Create)
		r.Delete("/{id}", h.Delete)
	})

	r.Get("/healthz", h.HealthCheck)
}

// Login exchanges credentials for a session payload.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var body struct {
		Username      string `json:"username"`
		Password      string `json:"password"`
		ExpiresInMins int    `json:"expiresInMins"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, ok := h.auth.Login(body.Username, body.Password)
	if !ok {
		mLogger.WarnContext(r.Context(), "Login rejected", "username", body.Username)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid credentials")
		return
	}
	mLogger.InfoContext(r.Context(), "Login successful", "username", body.Username)
	web.RespondJSON(w, mLogger, http.StatusOK, user)
}

// Me resolves the bearer token to its session payload.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		web.RespondError(w, mLogger, http.StatusUnauthorized, "Authentication required")
		return
	}
	user, ok := h.auth.Resolve(token)
	if !ok {
		web.RespondError(w, mLogger, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, user)
}

// List returns one page of the catalog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	limit, ok := web.QueryInt(r, w, mLogger, "limit", 30)
	if !ok {
		return
	}
	skip, ok := web.QueryInt(r, w, mLogger, "skip", 0)
	if !ok {
		return
	}
	page := h.store.List(limit, skip)
	mLogger.DebugContext(r.Context(), "Listed products", "limit", limit, "skip", skip, "total", page.Total)
	web.RespondJSON(w, mLogger, http.StatusOK, page)
}

// Search returns one page of products matching the free-text query.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	limit, ok := web.QueryInt(r, w, mLogger, "limit", 30)
	if !ok {
		return
	}
	skip, ok := web.QueryInt(r, w, mLogger, "skip", 0)
	if !ok {
		return
	}
	q := r.URL.Query().Get("q")
	page := h.store.Search(q, limit, skip)
	mLogger.DebugContext(r.Context(), "Searched products", "q", q, "total", page.Total)
	web.RespondJSON(w, mLogger, http.StatusOK, page)
}

// Create validates the submitted draft and stores a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var draft catalog.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := draft.Validate(); err != nil {
		var validationErr *catalog.DraftValidationError
		if errors.As(err, &validationErr) {
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", validationErr.Fields)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"message": err.Error(), "validation_errors": validationErr.Fields})
			return
		}
		web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
		return
	}

	product := h.store.Create(draft)
	mLogger.InfoContext(r.Context(), "Product created", "ID", product.ID, "Title", product.Title)
	web.RespondJSON(w, mLogger, http.StatusCreated, product)
}

// Delete acknowledges a deletion. Like the public service, the product is
// not actually removed; clients enforce deletion by hiding.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	if !h.store.Delete(id) {
		web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with id '%d' not found", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product delete acknowledged", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{"isDeleted": true, "id": id})
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// loggerWithReqID returns a logger with the request ID attached.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	if reqID, ok := web.GetRequestID(r.Context()); ok {
		return h.logger.With("request_id", reqID)
	}
	return h.logger
}
