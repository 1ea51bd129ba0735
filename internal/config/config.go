package config

import (
	"os"
	"strings"
)

type Config struct {
	ListenAddr    string
	DataPath      string
	BaseURL       string
	AdminPIN      string
	AssistBackend string
	ClaudeAPIKey  string
	ClaudeModel   string
	LogLevel      string
	LogFormat     string
	LogFile       string
}

func Load() *Config {
	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		DataPath:      getEnv("DATA_PATH", "/data/boxes.json"),
		BaseURL:       strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		AdminPIN:      getEnv("ADMIN_PIN", ""),
		AssistBackend: getEnv("ASSIST_BACKEND", "none"),
		ClaudeAPIKey:  getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:   getEnv("CLAUDE_MODEL", "claude-3-5-haiku-latest"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		LogFile:       getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
