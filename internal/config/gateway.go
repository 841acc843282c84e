package config

type GatewayConfig struct {
	HTTPAddr string `yaml:"http-addr"`
	GRPCPort int    `yaml:"grpc-port"`
}

func (s *GatewayConfig) HTTPListenAddr() string {
	return s.HTTPAddr
}

func (s *GatewayConfig) GRPCListenPort() int {
	return s.GRPCPort
}
