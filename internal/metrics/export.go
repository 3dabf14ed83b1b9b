package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextFile gathers every metric from g and writes it to path in the
// Prometheus text exposition format. The file is replaced atomically.
func WriteTextFile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
