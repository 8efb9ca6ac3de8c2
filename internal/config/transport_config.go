package config

import "time"

type TransportConfig interface {
	GetRequestTimeout() time.Duration
	GetConnectTimeout() time.Duration
	GetTLSHandshakeTimeout() time.Duration
	GetRefreshPath() string
	GetLoginPath() string
}

type Transport struct{}

var _ TransportConfig = Transport{}

func (Transport) GetRequestTimeout() time.Duration {
	return durationEnv("TASKFLOW_REQUEST_TIMEOUT", 30*time.Second)
}

func (Transport) GetConnectTimeout() time.Duration {
	return 5 * time.Second
}

func (Transport) GetTLSHandshakeTimeout() time.Duration {
	return 5 * time.Second
}

func (Transport) GetRefreshPath() string {
	return "/auth/refresh"
}

// GetLoginPath is where the client is sent after the session dies.
func (Transport) GetLoginPath() string {
	return "/login"
}

func durationEnv(envVar string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(GetEnv(envVar, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
