package sender_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"

	sender "github.com/itzg/victoria-metrics-sender"
)

func Example_sending() {
	// stands in for a VictoriaMetrics instance
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer endpoint.Close()

	writer, err := sender.NewWriter(sender.Config{
		Endpoint: strings.TrimPrefix(endpoint.URL, "http://"),
	})
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

	// Output:
	// {"metric":{"__name__":"up","instance":"localhost:9100","job":"node_exporter"},"values":[0,0,0],"timestamps":[1549891472010,1549891487724,1549891503438]}
}
