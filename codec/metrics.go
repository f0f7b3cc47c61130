package codec

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// failuresTotal counts encode and decode failures per codec.
//
// Labels:
//   - codec: "json", "yaml" or "toml".
//   - operation: "encode" or "decode".
//
// Encode failures are otherwise invisible to callers, since Encode degrades
// to an empty string, so this is the place to look for them:
//   - rate(things_codec_failures_total{operation="encode"}[5m])
var failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "things_codec_failures_total",
	Help: "The total number of failed codec encode and decode calls",
}, []string{"codec", "operation"})

func init() {
	for _, c := range []Codec{JSON, YAML, TOML} {
		failuresTotal.WithLabelValues(c.Name(), opEncode).Add(0)
		failuresTotal.WithLabelValues(c.Name(), opDecode).Add(0)
	}
}
