package setup

import "os"

type Config struct {
	InputDir string
	LogLevel string
}

func LoadConfig() *Config {
	return &Config{
		InputDir: getEnv("AOC_INPUT_DIR", "inputs"),
		LogLevel: getEnv("AOC_LOG_LEVEL", "info"),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
