package config

import "time"

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	Database DatabaseConfig `env-prefix:"DB_"`
	Auth     AuthConfig     `env-prefix:"AUTH_"`
}

type HTTPConfig struct {
	Addr string `env:"ADDR" env-default:":8081"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type DatabaseConfig struct {
	Driver        string `env:"DRIVER" env-default:"postgres"`
	Port          string `env:"PORT" env-default:"5432"`
	Host          string `env:"HOST" env-default:"localhost"`
	Name          string `env:"NAME" env-default:"postgres"`
	User          string `env:"USER" env-default:"user"`
	Password      string `env:"PASSWORD"`
	RetryAttempts uint   `env:"RETRY_ATTEMPTS" env-default:"3"`
	SQLitePath    string `env:"SQLITE_PATH" env-default:"website/database.db"`
}

type AuthConfig struct {
	// Tokens maps a bearer token to the id of the user it authenticates.
	Tokens map[string]string `env:"TOKENS" env-separator:","`
}

// ClientConfig configures the notes command line client.
type ClientConfig struct {
	App    AppConfig    `env-prefix:"APP_"`
	Server ServerConfig `env-prefix:"NOTES_"`
}

type ServerConfig struct {
	URL     string        `env:"SERVER_URL" env-default:"http://127.0.0.1:8081"`
	Token   string        `env:"TOKEN"`
	Timeout time.Duration `env:"TIMEOUT" env-default:"0s"`
}
