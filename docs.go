/*

Package sender provides a client that sends buffered time series to a
VictoriaMetrics instance over HTTP.

Series added via Writer.Add are accumulated in memory and flushed by
Writer.Send as a single request in the JSON line format accepted by the
/api/v1/import endpoint. The buffer is cleared only after the remote
acknowledges the request with a success status, so a failed Send may simply
be retried.

Example

The following sends three samples of an "up" series to a local instance:

	writer, err := sender.NewWriter(sender.Config{Endpoint: "localhost:8428"})
	if err != nil {
		log.Fatal(err)
	}

	err = writer.Add("up",
		map[string]string{"job": "node_exporter", "instance": "localhost:9100"},
		[]int64{0, 0, 0},
		[]int64{1549891472010, 1549891487724, 1549891503438})
	if err != nil {
		log.Fatal(err)
	}

	if err := writer.Send(context.Background()); err != nil {
		log.Fatal(err)
	}

A LineWriter is also provided for shipping Influx line protocol metrics to
the /write endpoint, with the same buffering semantics.

*/
package sender
