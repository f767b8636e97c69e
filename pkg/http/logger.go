package http

import (
	"net/url"
	"strings"

	"weather-reviewer/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called after a 2xx response has been read and decoded
	LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called on transport failures, non-2xx statuses and undecodable bodies.
	// httpStatus is 0 when no response was received.
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

type nopLogger struct{}

func (nopLogger) LogRequest(string, string, map[string]string, string)       {}
func (nopLogger) LogResponseSuccess(string, string, int, string, int64)      {}
func (nopLogger) LogResponseError(string, string, int, string, int64, error) {}

const masked = "****"

// paramMasker hides the values of named query parameters and headers.
type paramMasker map[string]struct{}

func newParamMasker(keys ...string) paramMasker {
	m := make(paramMasker, len(keys))
	for _, k := range keys {
		m[strings.ToLower(k)] = struct{}{}
	}
	return m
}

func (m paramMasker) has(key string) bool {
	_, ok := m[strings.ToLower(key)]
	return ok
}

func (m paramMasker) maskURL(rawURL string) string {
	if len(m) == 0 {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.RawQuery == "" {
		return rawURL
	}

	pairs := strings.Split(parsed.RawQuery, "&")
	for i, pair := range pairs {
		key, _, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		name, err := url.QueryUnescape(key)
		if err != nil {
			name = key
		}
		if m.has(name) {
			pairs[i] = key + "=" + masked
		}
	}
	parsed.RawQuery = strings.Join(pairs, "&")
	return parsed.String()
}

// ZapHTTPLogger writes request and response events through pkg/log.
// Values of the query parameters and headers named at construction are masked.
type ZapHTTPLogger struct {
	masker paramMasker
}

// NewZapHTTPLogger creates a logger that masks the given query parameter and header names.
func NewZapHTTPLogger(maskedKeys ...string) *ZapHTTPLogger {
	return &ZapHTTPLogger{masker: newParamMasker(maskedKeys...)}
}

func (l *ZapHTTPLogger) LogRequest(method, rawURL string, headers map[string]string, body string) {
	log.Debug("http request",
		zap.String("method", method),
		zap.String("url", l.MaskURL(rawURL)),
		zap.Any("headers", l.maskHeaders(headers)),
		zap.String("body", body))
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, rawURL string, httpStatus int, responseBody string, latency int64) {
	log.Info("http response",
		zap.String("method", method),
		zap.String("url", l.MaskURL(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	log.Debug("http response body", zap.String("body", responseBody))
}

// LogResponseError logs at debug level; the caller reports the failure itself.
func (l *ZapHTTPLogger) LogResponseError(method, rawURL string, httpStatus int, responseBody string, latency int64, err error) {
	log.Debug("http request failed",
		zap.String("method", method),
		zap.String("url", l.MaskURL(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("body", responseBody),
		zap.Error(err))
}

// MaskURL replaces the values of masked query parameters.
func (l *ZapHTTPLogger) MaskURL(rawURL string) string {
	return l.masker.maskURL(rawURL)
}

func (l *ZapHTTPLogger) maskHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if l.masker.has(k) {
			v = masked
		}
		out[k] = v
	}
	return out
}
