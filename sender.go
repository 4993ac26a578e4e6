package sender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// Response bodies attached to RemoteError are capped at this size.
const maxErrorBodySize = 4 * 1024

// Config carries the settings shared by Writer and LineWriter. Endpoint is
// the only required field.
type Config struct {
	// Endpoint is the host:port of the VictoriaMetrics instance.
	Endpoint string
	// HTTPClient overrides the client used for requests. Timeouts, TLS, and
	// connection pooling are configured there, not by this package.
	HTTPClient *http.Client
	// Compress gzips request bodies and sets Content-Encoding accordingly.
	Compress bool
	// Logger receives debug and warning events. Defaults to a no-op logger.
	Logger *zap.Logger
}

func (c *Config) applyDefaults() error {
	if c.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

// Writer accumulates series in memory and ships them to the JSON line import
// endpoint with one POST per Send. The buffer is cleared only after the
// remote acknowledges a request, so a failed Send may simply be retried.
// A Writer is safe for use from multiple goroutines.
type Writer struct {
	config Config
	url    string

	// sendMu serializes Send; only one flush may be in flight at a time.
	sendMu sync.Mutex

	mu  sync.Mutex
	buf []Series
}

// NewWriter returns a Writer targeting http://<endpoint>/api/v1/import.
// No connection is made until Send.
func NewWriter(config Config) (*Writer, error) {
	if err := config.applyDefaults(); err != nil {
		return nil, err
	}
	return &Writer{
		config: config,
		url:    fmt.Sprintf("http://%s/api/v1/import", config.Endpoint),
	}, nil
}

// Add validates and buffers one series for the next Send. Values and
// timestamps are parallel arrays with timestamps in epoch milliseconds. A
// series with no samples is accepted but not buffered. When Add returns a
// ValidationError the buffer is unchanged.
func (w *Writer) Add(name string, labels map[string]string, values []int64, timestamps []int64) error {
	s := Series{Name: name, Labels: labels, Values: values, Timestamps: timestamps}
	if err := s.validate(); err != nil {
		return err
	}
	if len(s.Values) == 0 {
		return nil
	}
	w.mu.Lock()
	w.buf = append(w.buf, s)
	w.mu.Unlock()
	return nil
}

// Len reports the number of buffered series.
func (w *Writer) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.buf)
}

// Send posts the buffered series, in the order they were added, as a single
// request. An empty buffer is a no-op reported as success. On success the
// sent series are dropped from the buffer; series added while the request was
// in flight are kept for the next Send. On any failure the buffer is
// unchanged. Concurrent Send calls are serialized, so a series is never
// transmitted by more than one of them.
func (w *Writer) Send(ctx context.Context) error {
	w.sendMu.Lock()
	defer w.sendMu.Unlock()

	w.mu.Lock()
	pending := len(w.buf)
	body := encodeImport(w.buf)
	w.mu.Unlock()

	if pending == 0 {
		return nil
	}

	if err := postBody(ctx, &w.config, w.url, body); err != nil {
		w.config.Logger.Warn("send failed, retaining buffered series",
			zap.Int("series", pending), zap.Error(err))
		return err
	}

	w.mu.Lock()
	w.buf = append([]Series(nil), w.buf[pending:]...)
	w.mu.Unlock()

	w.config.Logger.Debug("sent series", zap.Int("series", pending))
	return nil
}

// postBody issues one POST of body to url, honoring Config.Compress. A
// non-2xx response is returned as a *RemoteError carrying the status code and
// response body.
func postBody(ctx context.Context, config *Config, url string, body []byte) error {
	if config.Compress {
		var compressed bytes.Buffer
		gz := gzip.NewWriter(&compressed)
		if _, err := gz.Write(body); err != nil {
			return fmt.Errorf("failed to compress body: %w", err)
		}
		if err := gz.Close(); err != nil {
			return fmt.Errorf("failed to compress body: %w", err)
		}
		body = compressed.Bytes()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if config.Compress {
		req.Header.Set("Content-Encoding", "gzip")
	}

	resp, err := config.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return &RemoteError{
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(respBody)),
		}
	}
	return nil
}
