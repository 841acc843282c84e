package config

const defaultUpdateTimeout = 60

type TelegramConfig struct {
	ApiToken      string `yaml:"token"`
	UpdateTimeout int    `yaml:"update-timeout-seconds"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) UpdateTimeoutSeconds() int {
	if t.UpdateTimeout <= 0 {
		return defaultUpdateTimeout
	}
	return t.UpdateTimeout
}
