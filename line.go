package sender

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	protocol "github.com/influxdata/line-protocol"
	"go.uber.org/zap"
)

// LineWriter buffers Influx line protocol metrics and flushes them to the
// /write endpoint, which VictoriaMetrics ingests alongside the JSON line
// format. Buffer semantics match Writer: one POST per Send, cleared only on
// success. SimpleMetric is a ready-to-use protocol.Metric implementation.
type LineWriter struct {
	config Config
	url    string

	// sendMu serializes Send; only one flush may be in flight at a time.
	sendMu sync.Mutex

	mu  sync.Mutex
	buf []protocol.Metric
}

// NewLineWriter returns a LineWriter targeting http://<endpoint>/write.
func NewLineWriter(config Config) (*LineWriter, error) {
	if err := config.applyDefaults(); err != nil {
		return nil, err
	}
	return &LineWriter{
		config: config,
		url:    fmt.Sprintf("http://%s/write", config.Endpoint),
	}, nil
}

// Add buffers one metric for the next Send.
func (lw *LineWriter) Add(m protocol.Metric) {
	lw.mu.Lock()
	lw.buf = append(lw.buf, m)
	lw.mu.Unlock()
}

// Len reports the number of buffered metrics.
func (lw *LineWriter) Len() int {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return len(lw.buf)
}

// Send posts the buffered metrics as one line protocol request. An empty
// buffer is a no-op. On failure the buffer is retained for a later retry.
// Concurrent Send calls are serialized.
func (lw *LineWriter) Send(ctx context.Context) error {
	lw.sendMu.Lock()
	defer lw.sendMu.Unlock()

	lw.mu.Lock()
	pending := len(lw.buf)
	var body bytes.Buffer
	encoder := protocol.NewEncoder(&body)
	for _, m := range lw.buf {
		if _, err := encoder.Encode(m); err != nil {
			lw.mu.Unlock()
			return fmt.Errorf("failed to encode: %w", err)
		}
	}
	lw.mu.Unlock()

	if pending == 0 {
		return nil
	}

	if err := postBody(ctx, &lw.config, lw.url, body.Bytes()); err != nil {
		lw.config.Logger.Warn("send failed, retaining buffered metrics",
			zap.Int("metrics", pending), zap.Error(err))
		return err
	}

	lw.mu.Lock()
	lw.buf = append([]protocol.Metric(nil), lw.buf[pending:]...)
	lw.mu.Unlock()

	lw.config.Logger.Debug("sent metrics", zap.Int("metrics", pending))
	return nil
}
