package lawyerapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/httpclient"
	"github.com/ShubhamAnand123/onlawthink/internal/ports"
)

// Client talks to the lawyer directory service. Every call is attempted exactly
// once; failures are returned to the caller and never retried here.
type Client struct {
	http    *resty.Client
	paths   domain.EndpointPaths
	env     envelope
	ingest  *Ingestor
	breaker *gobreaker.CircuitBreaker
	token   func() string
	log     *zap.Logger
}

type Option func(*options)

type options struct {
	httpClient *http.Client
	token      func() string
	log        *zap.Logger
}

// WithHTTPClient replaces the tuned default client (tests use httptest clients).
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithAuthToken sends the token returned by fn as a bearer token on every call.
// fn is read per request so a login or logout takes effect immediately.
func WithAuthToken(fn func() string) Option {
	return func(o *options) { o.token = fn }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

func New(cfg domain.ServiceConfig, opts ...Option) (*Client, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	env, err := newEnvelope(cfg.Envelope)
	if err != nil {
		return nil, &domain.OpError{Op: "lawyerapi.new", Kind: domain.KindInvalidConfig, Err: err}
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, &domain.OpError{Op: "lawyerapi.new", Kind: domain.KindInvalidConfig, Err: errors.New("base url is empty")}
	}

	hcfg := httpclient.ForService(cfg)
	hc := o.httpClient
	if hc == nil {
		hc = httpclient.New(hcfg)
	}

	rc := resty.NewWithClient(hc).
		SetBaseURL(cfg.BaseURL).
		SetRetryCount(0).
		SetLogger(o.log.Sugar()).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", hcfg.UserAgent)

	c := &Client{
		http:   rc,
		paths:  cfg.Paths,
		env:    env,
		ingest: NewIngestor(),
		token:  o.token,
		log:    o.log,
	}
	if cfg.Breaker.Enabled {
		c.breaker = newBreaker("lawyer-directory", cfg.Breaker, o.log)
	}
	return c, nil
}

var _ ports.DirectoryService = (*Client)(nil)

func (c *Client) ListProviders(ctx context.Context) (domain.ProviderPage, error) {
	const op = "lawyerapi.list_providers"
	resp, err := c.send(ctx, op, func(r *resty.Request) (*resty.Response, error) {
		return r.Get(c.paths.ListProviders)
	})
	if err != nil {
		return domain.ProviderPage{}, err
	}
	return c.decodePage(op, resp)
}

func (c *Client) QueryByCaseDomain(ctx context.Context, caseDomain string) (domain.ProviderPage, error) {
	const op = "lawyerapi.query_by_case_domain"
	resp, err := c.send(ctx, op, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(map[string]string{"caseDomain": caseDomain}).Post(c.paths.QueryByCaseDomain)
	})
	if err != nil {
		return domain.ProviderPage{}, err
	}
	return c.decodePage(op, resp)
}

func (c *Client) ListCaseDomains(ctx context.Context) (domain.CaseDomainCatalog, error) {
	const op = "lawyerapi.list_case_domains"
	resp, err := c.send(ctx, op, func(r *resty.Request) (*resty.Response, error) {
		return r.Get(c.paths.ListCaseDomains)
	})
	if err != nil {
		return nil, err
	}

	doc, err := parseJSON(resp.Body())
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindDecode, Path: c.paths.ListCaseDomains, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &domain.ServiceError{Op: op, Status: resp.StatusCode(), Message: c.env.Message(doc)}
	}

	items, err := c.env.List(c.env.caseDomains, doc)
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindDecode, Path: c.paths.ListCaseDomains, Err: err}
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			names = append(names, s)
		}
	}
	return domain.NewCaseDomainCatalog(names), nil
}

// send performs one request through the breaker. Transport errors and an open
// breaker come back as KindTransport; any HTTP answer comes back as a response.
func (c *Client) send(ctx context.Context, op string, do func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	start := time.Now()

	var resp *resty.Response
	call := func() (interface{}, error) {
		r, err := do(c.request(ctx))
		if err != nil {
			return nil, err
		}
		resp = r
		if r.StatusCode() >= http.StatusInternalServerError {
			return nil, errServerFault
		}
		return nil, nil
	}

	var err error
	if c.breaker != nil {
		_, err = c.breaker.Execute(call)
	} else {
		_, err = call()
	}
	if errors.Is(err, errServerFault) {
		err = nil
	}
	if err != nil {
		c.log.Debug("lawyerapi.request.failed",
			zap.String("op", op),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, &domain.OpError{Op: op, Kind: domain.KindTransport, Err: err}
	}

	c.log.Debug("lawyerapi.request",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp, nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if c.token == nil {
		return req
	}
	if t := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(c.token()), "Bearer ")); t != "" {
		req.SetAuthToken(t)
	}
	return req
}

func (c *Client) decodePage(op string, resp *resty.Response) (domain.ProviderPage, error) {
	doc, err := parseJSON(resp.Body())
	if err != nil {
		return domain.ProviderPage{}, &domain.OpError{Op: op, Kind: domain.KindDecode, Err: err}
	}

	msg := c.env.Message(doc)
	if !resp.IsSuccess() {
		return domain.ProviderPage{}, &domain.ServiceError{Op: op, Status: resp.StatusCode(), Message: msg}
	}

	items, err := c.env.List(c.env.providers, doc)
	if err != nil {
		return domain.ProviderPage{}, &domain.OpError{Op: op, Kind: domain.KindDecode, Err: err}
	}

	providers, rejected := c.ingest.Providers(items)
	for _, r := range rejected {
		c.log.Warn("lawyerapi.record.rejected",
			zap.String("op", op),
			zap.Int("index", r.Index),
			zap.String("id", r.ID),
			zap.String("reason", r.Reason),
		)
	}

	return domain.ProviderPage{Message: msg, Providers: providers}, nil
}
