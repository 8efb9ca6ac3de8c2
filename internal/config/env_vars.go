package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	apiURLEnvVar     = "TASKFLOW_API_URL"
	streamURLEnvVar  = "TASKFLOW_STREAM_URL"
	appNameVar       = "APP_NAME"
	folderEnvVar     = "TASKFLOW_HOME"
	redisURLEnvVar   = "REDIS_URL"
	storageKeyEnvVar = "TASKFLOW_STORAGE_KEY"
	logLevelEnvVar   = "LOG_LEVEL"
	envEnvVar        = "ENV"

	defaultAPIBaseURL = "http://localhost:8000/api/v1"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

// GetAPIBaseURL returns the REST API base URL without a trailing slash.
func (EnvVars) GetAPIBaseURL() string {
	return strings.TrimRight(GetEnv(apiURLEnvVar, defaultAPIBaseURL), "/")
}

// GetStreamURL returns the websocket URL for live notifications. Empty disables the listener.
func (EnvVars) GetStreamURL() string {
	return GetEnv(streamURLEnvVar, "")
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Taskflow")
}

func (EnvVars) GetDataFolder() string {
	if folder := os.Getenv(folderEnvVar); folder != "" {
		return folder
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskflow"
	}
	return filepath.Join(home, ".taskflow")
}

// GetRedisURL selects the redis backed durable store when set.
func (EnvVars) GetRedisURL() string {
	return GetEnv(redisURLEnvVar, "")
}

// GetStorageKey is the passphrase used to encrypt the durable credential file.
func (EnvVars) GetStorageKey() string {
	return GetEnv(storageKeyEnvVar, "")
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelEnvVar, "info")
}

func (EnvVars) GetEnv() string {
	return GetEnv(envEnvVar, "DEV")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
