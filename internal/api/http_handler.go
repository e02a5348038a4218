package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"

	"store-catalog-service/internal/catalog"
	"store-catalog-service/internal/metrics"
	"store-catalog-service/internal/store"
)

const (
	defaultProductsLimit = 24
	defaultFeaturedLimit = 8

	diagnosticTimeout = 2 * time.Second
)

// DiagnosticInfo carries the environment facts reported by the /test
// endpoint, so handlers themselves never read the environment.
type DiagnosticInfo struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// HTTPHandler holds dependencies for HTTP handlers. docStore is nil when no
// store is configured; catalog reads then degrade to empty listings.
type HTTPHandler struct {
	docStore store.DocumentStorer
	metrics  *metrics.Metrics
	validate *validator.Validate
	logger   *log.Logger
	diag     DiagnosticInfo
}

// NewHTTPHandler creates a new HTTPHandler with dependencies.
func NewHTTPHandler(ds store.DocumentStorer, m *metrics.Metrics, logger *log.Logger, diag DiagnosticInfo) *HTTPHandler {
	return &HTTPHandler{
		docStore: ds,
		metrics:  m,
		validate: validator.New(),
		logger:   logger,
		diag:     diag,
	}
}

// --- Helpers ---

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("ERROR: Failed to encode JSON response: %v", err)
			http.Error(w, `{"error": "Internal server error during JSON encoding"}`, http.StatusInternalServerError)
		}
	}
}

// --- Listing Handlers ---

// listProductsQuery holds the validated query parameters for /api/products.
// Featured is a pointer to distinguish between not set and false.
type listProductsQuery struct {
	Category string
	Featured *bool
	Limit    int64 `validate:"gte=1,lte=100"`
}

// listFeaturedQuery holds the validated query parameters for /api/featured.
type listFeaturedQuery struct {
	Limit int64 `validate:"gte=1,lte=24"`
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	qParams := r.URL.Query()

	q := listProductsQuery{Limit: defaultProductsLimit}
	q.Category = qParams.Get("category")
	if featuredStr := qParams.Get("featured"); featuredStr != "" {
		b, err := strconv.ParseBool(featuredStr)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid featured value: must be true or false")
			return
		}
		q.Featured = &b
	}
	if limitStr := qParams.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid limit value: must be an integer")
			return
		}
		q.Limit = limit
	}
	if err := h.validate.Struct(q); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: limit must be between 1 and 100")
		return
	}

	filter := catalog.BuildFilter(catalog.ListParams{Category: q.Category, Featured: q.Featured})
	respondWithJSON(w, http.StatusOK, h.listDocuments(r.Context(), filter, q.Limit))
}

func (h *HTTPHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	q := listFeaturedQuery{Limit: defaultFeaturedLimit}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid limit value: must be an integer")
			return
		}
		q.Limit = limit
	}
	if err := h.validate.Struct(q); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: limit must be between 1 and 24")
		return
	}

	featured := true
	filter := catalog.BuildFilter(catalog.ListParams{Featured: &featured})
	respondWithJSON(w, http.StatusOK, h.listDocuments(r.Context(), filter, q.Limit))
}

// listDocuments runs one filtered read against the product collection and
// serializes the result in store order. Store unavailability degrades to an
// empty listing rather than a 5xx; catalog reads never fail the request.
func (h *HTTPHandler) listDocuments(ctx context.Context, filter bson.M, limit int64) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, limit)
	if h.docStore == nil {
		return out
	}

	docs, err := h.docStore.Find(ctx, store.ProductCollection, filter, limit)
	if err != nil {
		h.logger.Printf("WARN: Store read failed, returning empty listing: %v", err)
		h.metrics.IncStoreReadFailures()
		return out
	}

	for _, d := range docs {
		out = append(out, catalog.SerializeDocument(d))
	}
	h.metrics.IncListingsServed()
	h.metrics.AddProductsReturned(len(out))
	return out
}

// --- Diagnostic Handlers ---

// DatabaseStatus is the payload returned by the /test diagnostic endpoint.
type DatabaseStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (h *HTTPHandler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	status := DatabaseStatus{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNotSet(h.diag.DatabaseURLSet),
		DatabaseName:     setOrNotSet(h.diag.DatabaseNameSet),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.docStore != nil {
		ctx, cancel := context.WithTimeout(r.Context(), diagnosticTimeout)
		defer cancel()

		if err := h.docStore.Ping(ctx); err != nil {
			status.Database = "error: " + truncate(err.Error(), 50)
		} else {
			status.Database = "available"
			status.ConnectionStatus = "connected"
			if names, err := h.docStore.CollectionNames(ctx); err != nil {
				status.Database = "connected but error: " + truncate(err.Error(), 50)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				status.Collections = names
				status.Database = "connected and working"
			}
		}
	}

	respondWithJSON(w, http.StatusOK, status)
}

func (h *HTTPHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Store catalog API running"})
}

func setOrNotSet(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// --- Route Registration ---

// RegisterRoutes sets up the HTTP routes for the service.
func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/test", h.TestDatabase)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/featured", h.ListFeatured)
	})
}
