package config

type Config interface {
	EnvConfig
	TransportConfig
	StoreConfig
}

type EnvConfig interface {
	GetAPIBaseURL() string
	GetStreamURL() string
	GetAppName() string
	GetDataFolder() string
	GetRedisURL() string
	GetStorageKey() string
	GetLogLevel() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Transport
	Store
}

func New() Config {
	return mainConfig{}
}
