package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber/jaeger-client-go"
)

func Test_OnFullRate_ShouldSampleEverything(t *testing.T) {
	cfg := samplerConfig(1)
	assert.Equal(t, jaeger.SamplerTypeConst, cfg.Type)
	assert.Equal(t, 1.0, cfg.Param)
}

func Test_OnPartialRate_ShouldSampleProbabilistically(t *testing.T) {
	cfg := samplerConfig(0.25)
	assert.Equal(t, jaeger.SamplerTypeProbabilistic, cfg.Type)
	assert.Equal(t, 0.25, cfg.Param)
}
