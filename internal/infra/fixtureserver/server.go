package fixtureserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
)

// Handler serves a static directory snapshot over the directory service's API.
type Handler struct {
	snap  domain.DirectorySnapshot
	paths domain.EndpointPaths
	log   *zap.Logger
}

func New(snap domain.DirectorySnapshot, paths domain.EndpointPaths, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{snap: snap, paths: paths, log: log}
}

// Register mounts the directory endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get(h.paths.ListProviders, h.handleListProviders)
	r.Get(h.paths.ListCaseDomains, h.handleListCaseDomains)
	r.Post(h.paths.QueryByCaseDomain, h.handleQueryByCaseDomain)
}

// Router returns a ready chi router serving the snapshot.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)
	h.Register(r)
	return r
}

type wireProvider struct {
	ID             string   `json:"_id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Location       string   `json:"location"`
	CaseDomain     string   `json:"caseDomain"`
	YearOfJoining  int      `json:"yearOfJoining"`
	Achievements   []string `json:"achievements"`
	Qualifications []string `json:"qualifications"`
	Bio            string   `json:"bio"`
	Image          string   `json:"image"`
	PhoneNo        string   `json:"phoneNo"`
	EmailAddress   string   `json:"emailAddress"`
}

type listResponse struct {
	Message string         `json:"message"`
	Lawyers []wireProvider `json:"lawyers"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) handleListProviders(w http.ResponseWriter, r *http.Request) {
	if len(h.snap.Providers) == 0 {
		writeJSON(w, http.StatusOK, listResponse{Message: "No lawyers found", Lawyers: []wireProvider{}})
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Message: domain.FoundMessage, Lawyers: toWire(h.snap.Providers)})
}

func (h *Handler) handleListCaseDomains(w http.ResponseWriter, r *http.Request) {
	domains := h.snap.CaseDomains
	if domains == nil {
		domains = domain.CaseDomainCatalog{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"caseDomains": domains})
}

func (h *Handler) handleQueryByCaseDomain(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CaseDomain string `json:"caseDomain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	caseDomain := strings.TrimSpace(req.CaseDomain)
	if caseDomain == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Case domain is required"})
		return
	}

	found := h.snap.ProvidersIn(caseDomain)
	if len(found) == 0 {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "No lawyers found for case domain " + caseDomain})
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Message: domain.FoundMessage, Lawyers: toWire(found)})
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.Info("fixtures.request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func toWire(in []domain.Provider) []wireProvider {
	out := make([]wireProvider, 0, len(in))
	for _, p := range in {
		out = append(out, wireProvider{
			ID:             p.ID,
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			Location:       p.Location,
			CaseDomain:     p.CaseDomain,
			YearOfJoining:  p.YearOfJoining,
			Achievements:   p.Achievements,
			Qualifications: p.Qualifications,
			Bio:            p.Bio,
			Image:          p.Image,
			PhoneNo:        p.PhoneNo,
			EmailAddress:   p.EmailAddress,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Serve listens on addr until ctx is done.
func Serve(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("fixtures.listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
