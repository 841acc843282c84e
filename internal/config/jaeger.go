package config

type JaegerConfig struct {
	Agent   string  `yaml:"agent"`
	Sampler float64 `yaml:"sampler"`
}

func (s *JaegerConfig) AgentHostPort() string {
	return s.Agent
}

func (s *JaegerConfig) SamplerRate() float64 {
	return s.Sampler
}
