package config

import "time"

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts"`
	TTL       int32    `yaml:"ttl-seconds"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

// Expiration of cached entries, zero keeps them until evicted.
func (s *MemcachedConfig) Expiration() time.Duration {
	return time.Duration(s.TTL) * time.Second
}
