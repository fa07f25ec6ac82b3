package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/ports"
)

// DirectoryView is the controller behind one mounted directory screen.
//
// It gates access, issues fetches tagged with request tokens, applies only the
// results whose token is still current, and owns the disclosure panel. It does no
// I/O itself and is driven from a single goroutine.
type DirectoryView struct {
	id   string
	mode domain.ViewMode

	gate       domain.AccessGate
	tokens     *domain.TokenSequencer
	state      domain.DirectoryState
	catalog    domain.CaseDomainCatalog
	disclosure domain.Disclosure
	mounted    bool

	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	log      *zap.Logger
	recorder ports.FetchRecorder
}

type ViewOption func(*DirectoryView)

func WithViewLogger(l *zap.Logger) ViewOption {
	return func(v *DirectoryView) {
		if l != nil {
			v.log = l
		}
	}
}

func WithRecorder(r ports.FetchRecorder) ViewOption {
	return func(v *DirectoryView) {
		if r != nil {
			v.recorder = r
		}
	}
}

// WithParent derives the view's fetch context from ctx.
func WithParent(ctx context.Context) ViewOption {
	return func(v *DirectoryView) { v.parent = ctx }
}

// WithViewID is useful for tests.
func WithViewID(id string) ViewOption {
	return func(v *DirectoryView) { v.id = id }
}

func NewDirectoryView(mode domain.ViewMode, opts ...ViewOption) *DirectoryView {
	v := &DirectoryView{
		id:       uuid.NewString(),
		mode:     mode,
		gate:     domain.NewAccessGate(),
		tokens:   domain.NewTokenSequencer(),
		state:    domain.NewDirectoryState(),
		catalog:  domain.CaseDomainCatalog{},
		parent:   context.Background(),
		log:      zap.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(v)
	}
	v.ctx, v.cancel = context.WithCancel(v.parent)
	v.log = v.log.With(zap.String("view_id", v.id), zap.String("mode", string(mode)))
	return v
}

func (v *DirectoryView) ID() string { return v.id }

func (v *DirectoryView) Mode() domain.ViewMode { return v.mode }

// Context is canceled when the view is torn down.
func (v *DirectoryView) Context() context.Context { return v.ctx }

func (v *DirectoryView) State() domain.DirectoryState { return v.state }

func (v *DirectoryView) Catalog() domain.CaseDomainCatalog { return v.catalog }

func (v *DirectoryView) Disclosure() domain.Disclosure { return v.disclosure }

func (v *DirectoryView) Mounted() bool { return v.mounted }

// Open runs the access gate for one render pass. The first allowed pass mounts the
// view and returns its initial fetch; later passes return none. A denied pass
// returns the redirect and never any fetch.
func (v *DirectoryView) Open(authenticated bool) (domain.AccessDecision, []Fetch) {
	dec := v.gate.Evaluate(authenticated)
	if !dec.Allowed {
		v.log.Debug("directory.access.denied", zap.String("redirect", dec.Redirect))
		return dec, nil
	}
	if v.mounted || v.tokens.Closed() {
		return dec, nil
	}

	v.mounted = true
	kind := domain.FetchAll
	if v.mode == domain.ModeByCaseDomain {
		kind = domain.FetchCatalog
	}
	tok := v.tokens.Issue(kind)
	v.log.Debug("directory.view.mounted", zap.String("fetch", tok.String()))
	return dec, []Fetch{{Token: tok}}
}

// SetFilter records the selected case domain without querying.
func (v *DirectoryView) SetFilter(caseDomain string) {
	v.state = v.state.WithFilter(caseDomain)
}

// Submit issues a filtered query for the current filter, which may be empty.
// It reports false when the view cannot query: wrong mode, not mounted, or closed.
func (v *DirectoryView) Submit() (Fetch, bool) {
	if v.mode != domain.ModeByCaseDomain || !v.mounted || v.tokens.Closed() {
		return Fetch{}, false
	}
	tok := v.tokens.Issue(domain.FetchFiltered)
	v.log.Debug("directory.query.submitted", zap.String("fetch", tok.String()), zap.String("case_domain", v.state.Filter))
	return Fetch{Token: tok, CaseDomain: v.state.Filter}, true
}

// Apply folds a fetch result into the view. Results whose token was superseded or
// retired are discarded and Apply reports false.
func (v *DirectoryView) Apply(r FetchResult) bool {
	fields := []zap.Field{
		zap.String("kind", string(r.Token.Kind)),
		zap.Uint64("token", r.Token.Seq),
	}

	if !v.tokens.IsCurrent(r.Token) {
		v.log.Debug("directory.result.stale", fields...)
		v.recorder.RecordStale(r.Token.Kind)
		return false
	}

	outcome := domain.ClassifyError(r.Err)
	switch r.Token.Kind {
	case domain.FetchAll:
		v.state = domain.ReduceListAll(v.state, r.Page, r.Err)
		outcome = v.state.Outcome
	case domain.FetchFiltered:
		v.state = domain.ReduceFiltered(v.state, r.Page, r.Err)
		if r.Err == nil {
			outcome = v.state.Outcome
		}
	case domain.FetchCatalog:
		if r.Err != nil {
			// The selector stays empty; nothing is shown to the viewer.
			v.log.Warn("directory.catalog.unavailable", append(fields, zap.Error(r.Err))...)
			v.recorder.RecordFetch(r.Token.Kind, outcome)
			return true
		}
		v.catalog = r.Catalog
		if v.catalog == nil {
			v.catalog = domain.CaseDomainCatalog{}
		}
		outcome = domain.OutcomeFound
		if v.catalog.Empty() {
			outcome = domain.OutcomeEmpty
		}
	}

	switch outcome {
	case domain.OutcomeTransportFailure:
		v.log.Error("directory.fetch.failed", append(fields, zap.Error(r.Err))...)
	case domain.OutcomeServiceError:
		v.log.Info("directory.fetch.service_error", append(fields, zap.Error(r.Err))...)
	default:
		v.log.Debug("directory.fetch.applied", append(fields,
			zap.String("outcome", string(outcome)),
			zap.Int("records", len(v.state.Records)),
		)...)
	}
	v.recorder.RecordFetch(r.Token.Kind, outcome)
	return true
}

func (v *DirectoryView) ShowProfile(p domain.Provider) {
	v.disclosure = v.disclosure.ShowProfile(p)
}

func (v *DirectoryView) ShowContact(p domain.Provider) {
	v.disclosure = v.disclosure.ShowContact(p)
}

func (v *DirectoryView) CloseDisclosure() {
	v.disclosure = v.disclosure.Close()
}

// Teardown unmounts the view: outstanding tokens are retired and in-flight
// fetches are canceled, so no late result can change it.
func (v *DirectoryView) Teardown() {
	if v.tokens.Closed() {
		return
	}
	v.tokens.Invalidate()
	v.cancel()
	v.disclosure = v.disclosure.Close()
	v.log.Debug("directory.view.closed")
}

type nopRecorder struct{}

func (nopRecorder) RecordFetch(domain.FetchKind, domain.Outcome) {}
func (nopRecorder) RecordStale(domain.FetchKind)                 {}
