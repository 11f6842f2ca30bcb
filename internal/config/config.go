package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingJWTKey indica que a chave de assinatura dos tokens não foi configurada
var ErrMissingJWTKey = errors.New("JWT_SECRET_KEY is not configured")

// Config reúne a configuração da aplicação
type Config struct {
	Server  ServerConfig   `mapstructure:"server"`
	DB      DatabaseConfig `mapstructure:"db"`
	Storage StorageConfig  `mapstructure:"storage"`
	SMTP    SMTPConfig     `mapstructure:"smtp"`
	JWT     JWTConfig      `mapstructure:"jwt"`
	MQTT    MQTTConfig     `mapstructure:"mqtt"`
	Log     LogConfig      `mapstructure:"log"`
	Session SessionConfig  `mapstructure:"session"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BasePath       string   `mapstructure:"base_path"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Address retorna host:porta para o servidor HTTP
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig contém as configurações para conexão com o PostgreSQL.
// URL, quando informada, tem precedência sobre os campos individuais.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConnections  int32         `mapstructure:"max_connections"`
	MinConnections  int32         `mapstructure:"min_connections"`
	MaxConnLifetime time.Duration `mapstructure:"max_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_idle_time"`
}

// ConnectionString retorna a string de conexão no formato de URL, aceita
// tanto pelo pgx quanto pelo golang-migrate
func (c DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type StorageConfig struct {
	UploadsPath string `mapstructure:"uploads_path"`
}

type SMTPConfig struct {
	Host      string        `mapstructure:"host"`
	Port      int           `mapstructure:"port"`
	Username  string        `mapstructure:"username"`
	Password  string        `mapstructure:"password"`
	FromEmail string        `mapstructure:"from_email"`
	FromName  string        `mapstructure:"from_name"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type JWTConfig struct {
	SecretKey       string `mapstructure:"secret_key"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
	Issuer          string `mapstructure:"issuer"`
}

// Expiration retorna a validade dos tokens
func (j JWTConfig) Expiration() time.Duration {
	return time.Duration(j.ExpirationHours) * time.Hour
}

type MQTTConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Broker      string        `mapstructure:"broker"`
	ClientID    string        `mapstructure:"client_id"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	TopicPrefix string        `mapstructure:"topic_prefix"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SessionConfig struct {
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	PruneInterval time.Duration `mapstructure:"prune_interval"`
}

var defaults = map[string]interface{}{
	"server.host":            "0.0.0.0",
	"server.port":            8080,
	"server.mode":            "release",
	"server.base_path":       "/api/v1",
	"server.allowed_origins": []string{"*"},

	"db.url":             "",
	"db.host":            "localhost",
	"db.port":            5432,
	"db.user":            "postgres",
	"db.password":        "postgres",
	"db.name":            "virtual_assistant",
	"db.ssl_mode":        "disable",
	"db.max_connections": 10,
	"db.min_connections": 1,
	"db.max_lifetime":    time.Hour,
	"db.max_idle_time":   30 * time.Minute,

	"storage.uploads_path": "uploads",

	"smtp.host":       "smtp.gmail.com",
	"smtp.port":       587,
	"smtp.username":   "",
	"smtp.password":   "",
	"smtp.from_email": "",
	"smtp.from_name":  "Virtual Assistant",
	"smtp.timeout":    30 * time.Second,

	"jwt.secret_key":       "",
	"jwt.expiration_hours": 24,
	"jwt.issuer":           "virtual-assistant-api",

	"mqtt.enabled":      false,
	"mqtt.broker":       "tcp://localhost:1883",
	"mqtt.client_id":    "virtual-assistant",
	"mqtt.username":     "",
	"mqtt.password":     "",
	"mqtt.topic_prefix": "assistant",
	"mqtt.idle_timeout": 10 * time.Minute,

	"log.level":  "info",
	"log.format": "text",

	"session.idle_timeout":   2 * time.Hour,
	"session.prune_interval": 10 * time.Minute,
}

// Load lê a configuração de um arquivo yaml opcional, do .env e das
// variáveis de ambiente. As variáveis usam o nome da chave em maiúsculas
// com "_" no lugar de "." (db.host → DB_HOST) e têm precedência sobre o
// arquivo. DATABASE_URL também é aceita para db.url.
func Load(configFile string) (*Config, error) {
	// .env é opcional; variáveis já definidas não são sobrescritas
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("db.url", "DB_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("error binding DATABASE_URL: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate verifica os campos obrigatórios
func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return ErrMissingJWTKey
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Storage.UploadsPath == "" {
		return errors.New("storage.uploads_path must not be empty")
	}
	return nil
}
