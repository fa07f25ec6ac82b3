package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/ports"
)

// Recorder counts directory fetches.
type Recorder struct {
	Fetches *prometheus.CounterVec
	Stale   *prometheus.CounterVec
}

// New creates and registers the directory metrics on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		Fetches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onlawthink_directory_fetches_total",
			Help: "Directory fetch results applied to a view, by fetch kind and outcome",
		}, []string{"kind", "outcome"}),
		Stale: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onlawthink_directory_stale_results_total",
			Help: "Directory fetch results discarded because a newer request superseded them or the view closed",
		}, []string{"kind"}),
	}
}

var _ ports.FetchRecorder = (*Recorder)(nil)

func (r *Recorder) RecordFetch(kind domain.FetchKind, outcome domain.Outcome) {
	r.Fetches.WithLabelValues(string(kind), string(outcome)).Inc()
}

func (r *Recorder) RecordStale(kind domain.FetchKind) {
	r.Stale.WithLabelValues(string(kind)).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Serve runs a metrics endpoint on addr until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("metrics.listening", zap.String("addr", addr))
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
