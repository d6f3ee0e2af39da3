package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Discord DiscordConfig
	Bot     BotConfig
	Data    DataConfig
	Logging LoggingConfig
}

type DiscordConfig struct {
	Token      string
	APIBaseURL string
	GatewayURL string
}

type BotConfig struct {
	Prefix string
}

type DataConfig struct {
	Dir string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Discord: DiscordConfig{
			Token:      getEnv("DISCORD_TOKEN", ""),
			APIBaseURL: getEnv("DISCORD_API_BASE_URL", "https://discord.com/api/v10"),
			GatewayURL: getEnv("DISCORD_GATEWAY_URL", "wss://gateway.discord.gg/?v=10&encoding=json"),
		},
		Bot: BotConfig{
			Prefix: getEnv("BOT_PREFIX", "~"),
		},
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "static"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.APIBaseURL == "" {
		return fmt.Errorf("DISCORD_API_BASE_URL is required")
	}
	if c.Discord.GatewayURL == "" {
		return fmt.Errorf("DISCORD_GATEWAY_URL is required")
	}
	if len(c.Bot.Prefix) != 1 {
		return fmt.Errorf("BOT_PREFIX must be a single character, got %q", c.Bot.Prefix)
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
