package fetcher

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

const (
	// DefaultUserAgent is browser user agent sent by default, shelter sites reject client signatures.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	// DefaultAcceptLanguage is Accept-Language header value sent by default.
	DefaultAcceptLanguage = "es-ES,es;q=0.8,en-US;q=0.5,en;q=0.3"
)

// Config is Fetcher configuration.
type Config struct {
	// Headers are sent with every request.
	Headers map[string]string
	// MaxAttempts is number of attempts per url, including the first one.
	MaxAttempts int
	// RetryWait is wait time before first retry, it grows with every attempt up to RetryMaxWait.
	RetryWait    time.Duration
	RetryMaxWait time.Duration
	// PolitenessDelay is waited after every successful fetch.
	PolitenessDelay time.Duration
}

// DefaultConfig returns Config with browser headers, 3 attempts and 2s delays.
func DefaultConfig() Config {
	return Config{
		Headers:         DefaultHeaders(DefaultUserAgent, DefaultAcceptLanguage),
		MaxAttempts:     3,
		RetryWait:       2 * time.Second,
		RetryMaxWait:    10 * time.Second,
		PolitenessDelay: 2 * time.Second,
	}
}

// DefaultHeaders returns browser-like header set.
func DefaultHeaders(userAgent, acceptLanguage string) map[string]string {
	return map[string]string{
		"User-Agent":                userAgent,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           acceptLanguage,
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
		"Cache-Control":             "max-age=0",
	}
}

// Fetcher fetches html pages with retries and decodes them into UTF-8.
type Fetcher struct {
	client *resty.Client
	delay  time.Duration
	logger *zerolog.Logger
}

// NewFetcher returns new Fetcher using provided http client.
func NewFetcher(client *http.Client, cfg Config, logger *zerolog.Logger) *Fetcher {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	rc := resty.NewWithClient(client).
		SetHeaders(cfg.Headers).
		SetRetryCount(cfg.MaxAttempts - 1).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryMaxWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp == nil || !resp.IsSuccess()
		}).
		AddRetryHook(func(resp *resty.Response, err error) {
			event := logger.Warn()
			if err != nil {
				event = event.Err(err)
			}
			if resp != nil {
				event = event.Int("status", resp.StatusCode()).
					Str("url", resp.Request.URL).
					Int("attempt", resp.Request.Attempt)
			}
			event.Msg("fetch attempt failed, retrying")
		})

	return &Fetcher{
		client: rc,
		delay:  cfg.PolitenessDelay,
		logger: logger,
	}
}

// WithCloudflareBypass wraps client transport with Cloudflare-friendly round tripper.
func WithCloudflareBypass(client *http.Client) *http.Client {
	transport := client.Transport
	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	client.Transport = cloudflarebp.AddCloudFlareByPass(transport)
	return client
}

// Fetch returns page body decoded into UTF-8.
// It returns false when page can't be fetched within configured attempts.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, bool) {
	f.logger.Debug().Str("url", url).Msg("fetching page")

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		f.logger.Error().Err(err).Str("url", url).Msg("can't fetch page")
		return "", false
	}

	if !resp.IsSuccess() {
		f.logger.Error().
			Err(ErrStatusNotOK).
			Int("status", resp.StatusCode()).
			Str("url", url).
			Msg("can't fetch page")
		return "", false
	}

	body, err := decode(resp.Body(), resp.Header().Get("Content-Type"))
	if err != nil {
		f.logger.Error().Err(err).Str("url", url).Msg("can't decode page")
		return "", false
	}

	if !f.wait(ctx) {
		return "", false
	}

	return body, true
}

// wait sleeps politeness delay. Returns false if context was cancelled.
func (f *Fetcher) wait(ctx context.Context) bool {
	if f.delay <= 0 {
		return true
	}

	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// decode converts body from charset declared in content type into UTF-8.
func decode(body []byte, contentType string) (string, error) {
	enc := Encoding(contentType)

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUndecodableBody, err)
	}

	return string(decoded), nil
}

// Encoding returns encoding declared in content type header or UTF-8.
func Encoding(contentType string) encoding.Encoding {
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		if enc, _ := charset.Lookup(params["charset"]); enc != nil {
			return enc
		}
	}
	return unicode.UTF8
}
