package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	dotEnvFile     = ".env"
	configFileName = "config.yaml"
)

// FileConfig is the on-disk config.yaml shape. Each field maps onto an environment variable.
type FileConfig struct {
	APIURL         string `yaml:"api_url"`
	StreamURL      string `yaml:"stream_url"`
	RedisURL       string `yaml:"redis_url"`
	StorageKey     string `yaml:"storage_key"`
	LogLevel       string `yaml:"log_level"`
	Env            string `yaml:"env"`
	RequestTimeout string `yaml:"request_timeout"`
	PerPage        int    `yaml:"per_page"`
}

func (f FileConfig) envVars() map[string]string {
	vars := map[string]string{
		apiURLEnvVar:               f.APIURL,
		streamURLEnvVar:            f.StreamURL,
		redisURLEnvVar:             f.RedisURL,
		storageKeyEnvVar:           f.StorageKey,
		logLevelEnvVar:             f.LogLevel,
		envEnvVar:                  f.Env,
		"TASKFLOW_REQUEST_TIMEOUT": f.RequestTimeout,
	}
	if f.PerPage > 0 {
		vars["TASKFLOW_PER_PAGE"] = fmt.Sprint(f.PerPage)
	}
	return vars
}

// Load reads an optional .env from the working directory and an optional config.yaml from dir.
// Values already present in the environment always win.
func Load(dir string) (Config, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("[config Load] reading %s: %w", dotEnvFile, err)
	}

	if dir == "" {
		dir = EnvVars{}.GetDataFolder()
	}
	fc, err := ReadFile(filepath.Join(dir, configFileName))
	if err != nil {
		return nil, err
	}
	for key, value := range fc.envVars() {
		if value == "" || os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return nil, fmt.Errorf("[config Load] setting %s: %w", key, err)
		}
	}
	return New(), nil
}

// ReadFile parses a config.yaml. A missing file yields an empty FileConfig.
func ReadFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("[config ReadFile] %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("[config ReadFile] parsing %s: %w", path, err)
	}
	return fc, nil
}
