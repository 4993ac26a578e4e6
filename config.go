package sender

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type envConfig struct {
	Endpoint string `envconfig:"ENDPOINT" required:"true"`
	Compress bool   `envconfig:"COMPRESS" default:"false"`
}

// ConfigFromEnv builds a Config from VM_SENDER_ENDPOINT (required) and
// VM_SENDER_COMPRESS. HTTPClient and Logger keep their defaults and may be
// set on the returned value.
func ConfigFromEnv() (Config, error) {
	var ec envConfig
	if err := envconfig.Process("VM_SENDER", &ec); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return Config{Endpoint: ec.Endpoint, Compress: ec.Compress}, nil
}
