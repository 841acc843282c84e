package tracing

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"max.ks1230/khqr-bot/internal/logger"
)

type config interface {
	AgentHostPort() string
	SamplerRate() float64
}

// Init installs a Jaeger tracer as the global opentracing tracer. The
// returned closer flushes buffered spans.
func Init(serviceName string, config config) (io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler:     samplerConfig(config.SamplerRate()),
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: config.AgentHostPort(),
		},
	}

	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaegerLogger{}))
	if err != nil {
		return nil, errors.Wrap(err, "cannot init tracing")
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}

func samplerConfig(rate float64) *jaegercfg.SamplerConfig {
	if rate >= 1 {
		return &jaegercfg.SamplerConfig{Type: jaeger.SamplerTypeConst, Param: 1}
	}
	return &jaegercfg.SamplerConfig{Type: jaeger.SamplerTypeProbabilistic, Param: rate}
}

type jaegerLogger struct{}

func (jaegerLogger) Error(msg string) {
	logger.Error(msg)
}

func (jaegerLogger) Infof(msg string, args ...interface{}) {
	logger.Info(fmt.Sprintf(msg, args...))
}
