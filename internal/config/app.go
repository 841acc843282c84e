package config

import "path/filepath"

const (
	defaultAssetsDir   = "."
	defaultMetricsPort = 9100
)

type AppConfig struct {
	Assets      string `yaml:"assets-dir"`
	MetricsPort int    `yaml:"metrics-port"`
}

// AssetPath resolves an image reference of a currency mode against the assets directory.
func (s *AppConfig) AssetPath(src string) string {
	dir := s.Assets
	if dir == "" {
		dir = defaultAssetsDir
	}
	return filepath.Join(dir, filepath.FromSlash(src))
}

func (s *AppConfig) MetricsListenPort() int {
	if s.MetricsPort == 0 {
		return defaultMetricsPort
	}
	return s.MetricsPort
}
