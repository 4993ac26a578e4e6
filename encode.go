package sender

import (
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// encodeImport renders series into the JSON line format accepted by the
// /api/v1/import endpoint: one object per series, each followed by a newline.
// The name is written first, then label keys in ascending order, so identical
// input always produces identical bytes.
func encodeImport(series []Series) []byte {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	for i := range series {
		writeSeries(stream, &series[i])
		stream.WriteRaw("\n")
	}

	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out
}

func writeSeries(stream *jsoniter.Stream, s *Series) {
	stream.WriteObjectStart()

	stream.WriteObjectField("metric")
	stream.WriteObjectStart()
	stream.WriteObjectField(nameLabel)
	stream.WriteString(s.Name)
	for _, k := range sortedLabelKeys(s.Labels) {
		stream.WriteMore()
		stream.WriteObjectField(k)
		stream.WriteString(s.Labels[k])
	}
	stream.WriteObjectEnd()

	stream.WriteMore()
	stream.WriteObjectField("values")
	writeInt64Array(stream, s.Values)

	stream.WriteMore()
	stream.WriteObjectField("timestamps")
	writeInt64Array(stream, s.Timestamps)

	stream.WriteObjectEnd()
}

func writeInt64Array(stream *jsoniter.Stream, values []int64) {
	stream.WriteArrayStart()
	for i, v := range values {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteInt64(v)
	}
	stream.WriteArrayEnd()
}

func sortedLabelKeys(labels map[string]string) []string {
	if len(labels) == 0 {
		return nil
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
