package sender

import (
	"time"

	protocol "github.com/influxdata/line-protocol"
)

// SimpleMetric implements protocol.Metric for use with LineWriter, so no
// Influx specific implementation is needed by callers.
type SimpleMetric struct {
	name      string
	tags      []*protocol.Tag
	fields    []*protocol.Field
	timestamp time.Time
}

// NewSimpleMetric returns a metric with the given measurement name and no
// tags, fields, or observation time.
func NewSimpleMetric(name string) *SimpleMetric {
	return &SimpleMetric{name: name}
}

// SetTime pins the observation time.
func (m *SimpleMetric) SetTime(t time.Time) {
	m.timestamp = t
}

// Time returns the observation time, defaulting to now when unset.
func (m *SimpleMetric) Time() time.Time {
	if m.timestamp.IsZero() {
		return time.Now()
	}
	return m.timestamp
}

func (m *SimpleMetric) Name() string {
	return m.name
}

func (m *SimpleMetric) TagList() []*protocol.Tag {
	return m.tags
}

func (m *SimpleMetric) FieldList() []*protocol.Field {
	return m.fields
}

// AddTag appends a tag; tags are encoded in the order they were added.
func (m *SimpleMetric) AddTag(key, value string) {
	m.tags = append(m.tags, &protocol.Tag{
		Key:   key,
		Value: value,
	})
}

// AddField appends a field value, which may be any type the line protocol
// encoder understands (integers, floats, strings, booleans).
func (m *SimpleMetric) AddField(key string, value interface{}) {
	m.fields = append(m.fields, &protocol.Field{
		Key:   key,
		Value: value,
	})
}
