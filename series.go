package sender

import (
	"fmt"
	"time"
)

// nameLabel is the reserved label under which the remote stores the series name.
const nameLabel = "__name__"

// Series is a single time series submission: a name, a label set, and
// parallel value/timestamp arrays with timestamps in milliseconds since the
// Unix epoch.
type Series struct {
	Name       string
	Labels     map[string]string
	Values     []int64
	Timestamps []int64
}

func (s *Series) validate() error {
	if s.Name == "" {
		return &ValidationError{Reason: "series name must not be empty"}
	}
	if len(s.Values) != len(s.Timestamps) {
		return &ValidationError{Reason: fmt.Sprintf(
			"got %d values but %d timestamps", len(s.Values), len(s.Timestamps))}
	}
	if _, ok := s.Labels[nameLabel]; ok {
		return &ValidationError{Reason: fmt.Sprintf("label key %q is reserved", nameLabel)}
	}
	return nil
}

// Timestamps converts observation times into the epoch millisecond form
// expected by Writer.Add.
func Timestamps(times ...time.Time) []int64 {
	out := make([]int64, len(times))
	for i, t := range times {
		out[i] = t.UnixMilli()
	}
	return out
}
