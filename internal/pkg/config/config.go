package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (tokens, DB connection, etc.)
// - default: Values common across all environments (cooldown, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Game      GameConfig
	Store     StoreConfig
	DB        DBConfig
	S3        S3Config
	Inventory InventoryConfig
	Telegram  TelegramConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" default:"8080"`
	Enabled bool   `envconfig:"HTTP_ENABLED" default:"true"`

	// APIToken guards the mutating routes; empty leaves them open.
	APIToken string `envconfig:"API_TOKEN"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type GameConfig struct {
	Cooldown  time.Duration `envconfig:"COOLDOWN_DURATION" default:"30m"`
	PointsMin int           `envconfig:"POINTS_MIN" default:"1"`
	PointsMax int           `envconfig:"POINTS_MAX" default:"100"`
	TopLimit  int           `envconfig:"TOP_LIMIT" default:"10"`
}

// StoreConfig selects where the state snapshot document lives.
type StoreConfig struct {
	Backend       string        `envconfig:"SNAPSHOT_BACKEND" default:"file"`
	Path          string        `envconfig:"SNAPSHOT_PATH" default:"users_data.json"`
	Name          string        `envconfig:"SNAPSHOT_NAME" default:"default"`
	FlushTimeout  time.Duration `envconfig:"STORE_FLUSH_TIMEOUT" default:"5s"`
	// RetryInterval re-attempts a failed flush without waiting for the next mutation.
	RetryInterval time.Duration `envconfig:"STORE_RETRY_INTERVAL" default:"1m"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"card_drop"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

// S3Config works for AWS and S3-compatible stores such as Cloudflare R2.
type S3Config struct {
	Bucket          string `envconfig:"S3_BUCKET"`
	SnapshotKey     string `envconfig:"S3_SNAPSHOT_KEY" default:"snapshots/users_data.json"`
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"auto"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	AccessKeySecret string `envconfig:"S3_ACCESS_KEY_SECRET"`
}

type InventoryConfig struct {
	Source         string        `envconfig:"INVENTORY_SOURCE" default:"dir"`
	Dir            string        `envconfig:"INVENTORY_DIR" default:"cards"`
	Extensions     []string      `envconfig:"INVENTORY_EXTENSIONS" default:".png,.jpg,.jpeg,.gif,.webp,.bmp"`
	S3Prefix       string        `envconfig:"INVENTORY_S3_PREFIX" default:"cards/"`
	RescanInterval time.Duration `envconfig:"INVENTORY_RESCAN_INTERVAL" default:"5m"`
}

type TelegramConfig struct {
	Enabled     bool          `envconfig:"TELEGRAM_ENABLED" default:"true"`
	Token       string        `envconfig:"TELEGRAM_BOT_TOKEN"`
	APIURL      string        `envconfig:"TELEGRAM_API_URL" default:"https://api.telegram.org"`
	PollTimeout time.Duration `envconfig:"TELEGRAM_POLL_TIMEOUT" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	if c.Game.Cooldown <= 0 {
		return errors.New("COOLDOWN_DURATION must be positive")
	}
	if c.Game.PointsMin < 1 || c.Game.PointsMax < c.Game.PointsMin {
		return fmt.Errorf("invalid point range [%d,%d]", c.Game.PointsMin, c.Game.PointsMax)
	}
	if c.Telegram.Enabled && c.Telegram.Token == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required when TELEGRAM_ENABLED is true")
	}
	if c.Store.FlushTimeout <= 0 {
		return errors.New("STORE_FLUSH_TIMEOUT must be positive")
	}
	return nil
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8889", // Test port
			Enabled: true,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Game: GameConfig{
			Cooldown:  60 * time.Second,
			PointsMin: 1,
			PointsMax: 100,
			TopLimit:  10,
		},
		Store: StoreConfig{
			Backend:       "file",
			Path:          "users_data.json",
			Name:          "test",
			FlushTimeout:  time.Second,
			RetryInterval: time.Minute,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Inventory: InventoryConfig{
			Source:         "dir",
			Dir:            "cards",
			Extensions:     []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"},
			RescanInterval: time.Minute,
		},
		Telegram: TelegramConfig{
			Enabled:     false,
			APIURL:      "https://api.telegram.org",
			PollTimeout: time.Second,
		},
	}
}
