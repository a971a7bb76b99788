package sogou

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultEndpoint is the public Sogou translate endpoint.
const DefaultEndpoint = "https://fanyi.sogou.com/reventondc/api/sogouTranslate"

// Observer receives one observation per Translate call.
type Observer interface {
	ObserveTranslate(from, to Language, outcome string, elapsed time.Duration)
}

// Client calls the Sogou translate API. It is safe for concurrent use.
type Client struct {
	signer     *Signer
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
	http       *resty.Client
	logger     zerolog.Logger
	observer   Observer
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout bounds each request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying net/http client. New works on a copy
// of hc, so hc itself is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithObserver registers an Observer, typically a metrics collector.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// New returns a Client for the given credentials.
func New(pid, secretKey string, opts ...Option) (*Client, error) {
	signer, err := NewSigner(pid, secretKey)
	if err != nil {
		return nil, err
	}

	c := &Client{
		signer:   signer,
		endpoint: DefaultEndpoint,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.endpoint == "" {
		return nil, &ConfigurationError{Field: "endpoint"}
	}

	if c.httpClient != nil {
		hc := *c.httpClient
		c.http = resty.NewWithClient(&hc)
	} else {
		c.http = resty.New()
	}
	if c.timeout > 0 {
		c.http.SetTimeout(c.timeout)
	}
	c.http.SetLogger(restyLogger{c.logger})

	return c, nil
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Translate translates text from one language to another. Every failure is
// returned as one of the package's error types; nothing is retried.
func (c *Client) Translate(ctx context.Context, text string, from, to Language) (string, error) {
	start := time.Now()
	log := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("from", from.String()).
		Str("to", to.String()).
		Int("text_len", len(text)).
		Logger()

	translation, err := c.translate(ctx, text, from, to)

	elapsed := time.Since(start)
	outcome := Outcome(err)
	if c.observer != nil {
		c.observer.ObserveTranslate(from, to, outcome, elapsed)
	}

	if err != nil {
		event := log.Warn().Err(err).Str("outcome", outcome).Dur("elapsed", elapsed)
		if code, ok := RemoteCode(err); ok {
			event = event.Str("error_code", code)
		}
		event.Msg("translation failed")
		return "", err
	}

	log.Debug().Str("outcome", outcome).Dur("elapsed", elapsed).Msg("translation succeeded")
	return translation, nil
}

func (c *Client) translate(ctx context.Context, text string, from, to Language) (string, error) {
	req, err := c.signer.BuildRequest(text, from, to)
	if err != nil {
		return "", err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(req.Form()).
		Post(c.endpoint)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	return InterpretResponse(resp.StatusCode(), resp.Body())
}

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct {
	l zerolog.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error().Str("component", "resty").Msgf(format, v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn().Str("component", "resty").Msgf(format, v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug().Str("component", "resty").Msgf(format, v...)
}
