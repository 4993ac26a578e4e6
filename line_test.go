package sender

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineWriter_SendsBatch(t *testing.T) {
	endpoint := newMockEndpoint()
	defer endpoint.Close()

	lw, err := NewLineWriter(Config{Endpoint: endpoint.Addr()})
	require.NoError(t, err)

	metric := NewSimpleMetric("metric_name")
	metric.SetTime(time.Unix(1, 0))
	metric.AddTag("tag1", "t1")
	metric.AddField("value1", 1)
	lw.Add(metric)

	metric2 := NewSimpleMetric("metric_name")
	metric2.SetTime(time.Unix(2, 0))
	metric2.AddTag("tag1", "t2")
	metric2.AddField("value1", 2)
	lw.Add(metric2)

	require.NoError(t, lw.Send(context.Background()))

	requests := endpoint.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/write", requests[0].path)
	assert.Equal(t,
		"metric_name,tag1=t1 value1=1i 1000000000\nmetric_name,tag1=t2 value1=2i 2000000000\n",
		requests[0].body)
	assert.Equal(t, 0, lw.Len())
}

func TestLineWriter_EmptyBufferIsNoOp(t *testing.T) {
	endpoint := newMockEndpoint()
	defer endpoint.Close()

	lw, err := NewLineWriter(Config{Endpoint: endpoint.Addr()})
	require.NoError(t, err)

	require.NoError(t, lw.Send(context.Background()))
	assert.Empty(t, endpoint.Requests())
}

func TestLineWriter_RetainsBufferOnRemoteError(t *testing.T) {
	endpoint := newMockEndpoint()
	defer endpoint.Close()
	endpoint.SetStatus(http.StatusInternalServerError)

	lw, err := NewLineWriter(Config{Endpoint: endpoint.Addr()})
	require.NoError(t, err)

	metric := NewSimpleMetric("metric_name")
	metric.SetTime(time.Unix(1, 0))
	metric.AddField("value1", 1)
	lw.Add(metric)

	err = lw.Send(context.Background())
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
	assert.Equal(t, 1, lw.Len())
}

func TestLineWriter_ConcurrentSendsTransmitOnce(t *testing.T) {
	endpoint := newMockEndpoint()
	defer endpoint.Close()
	arrived, release := endpoint.Gate()

	lw, err := NewLineWriter(Config{Endpoint: endpoint.Addr()})
	require.NoError(t, err)

	metric := NewSimpleMetric("metric_name")
	metric.SetTime(time.Unix(1, 0))
	metric.AddField("value1", 1)
	lw.Add(metric)

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			errs <- lw.Send(context.Background())
		}()
	}

	<-arrived
	release <- struct{}{}
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	assert.Len(t, endpoint.Requests(), 1)
	assert.Equal(t, 0, lw.Len())
}

func TestSimpleMetric_TimeDefaultsToNow(t *testing.T) {
	metric := NewSimpleMetric("metric_name")
	assert.WithinDuration(t, time.Now(), metric.Time(), time.Second)
}
