package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the configuration of the serve and migrate commands.
type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Redis    Redis
	Kafka    Kafka
	Embedder Embedder
	Liveness Liveness
	Auth     Auth
	Telegram TelegramBot
}

// Notifier is the configuration of the notifier command.
type Notifier struct {
	Logger   Logger
	Kafka    KafkaConsumer
	Telegram TelegramDelivery
	Mailer   Mailer
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Redis struct {
	// Empty URL disables the frame throttle.
	URL string `env:"REDIS_URL" envDefault:""`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS" envDefault:"kafka:9092"`
	NotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"cafeteria-notifications"`
}

type KafkaConsumer struct {
	Brokers            []string `env:"KAFKA_BROKERS" envDefault:"kafka:9092"`
	ConsumerID         string   `env:"KAFKA_CONSUMER_ID" envDefault:"cafeteria-notifier"`
	NotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"cafeteria-notifications"`
}

type Embedder struct {
	URL          string        `env:"EMBEDDER_URL"`
	Timeout      time.Duration `env:"EMBEDDER_TIMEOUT" envDefault:"10s"`
	RetryMax     int           `env:"EMBEDDER_RETRY_MAX" envDefault:"2"`
	MaxImageSide int           `env:"EMBEDDER_MAX_IMAGE_SIDE" envDefault:"1024"`
}

type Liveness struct {
	Tolerance       float64       `env:"LIVENESS_TOLERANCE" envDefault:"0.6"`
	SessionTTL      time.Duration `env:"LIVENESS_SESSION_TTL" envDefault:"3m"`
	SweepInterval   time.Duration `env:"LIVENESS_SWEEP_INTERVAL" envDefault:"1m"`
	MaxFrames       int           `env:"LIVENESS_MAX_FRAMES" envDefault:"50"`
	FramesPerSecond int           `env:"LIVENESS_FRAMES_PER_SECOND" envDefault:"10"`
}

type Auth struct {
	JWTEnabled   bool   `env:"AUTH_JWT_ENABLED" envDefault:"false"`
	JWTPublicKey string `env:"AUTH_JWT_PUBLIC_KEY" envDefault:""` // PEM, raw or base64
}

type TelegramBot struct {
	BalanceBotEnabled bool   `env:"TELEGRAM_BALANCE_BOT_ENABLED" envDefault:"false"`
	Token             string `env:"TELEGRAM_BOT_TOKEN" envDefault:""`
}

type TelegramDelivery struct {
	Token       string `env:"TELEGRAM_BOT_TOKEN"`
	AdminChatID int64  `env:"TELEGRAM_ADMIN_CHAT_ID" envDefault:"0"`
}

type Mailer struct {
	Enabled  bool   `env:"MAILER_ENABLED" envDefault:"false"`
	From     string `env:"MAILER_FROM" envDefault:""`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Столовая"`
	Host     string `env:"MAILER_HOST" envDefault:""`
	Port     int    `env:"MAILER_PORT" envDefault:"465"`
	Login    string `env:"MAILER_LOGIN" envDefault:""`
	Password string `env:"MAILER_PASSWORD" envDefault:""`
}

func New(envPath string) (Config, error) {
	return load[Config](envPath)
}

func NewNotifier(envPath string) (Notifier, error) {
	return load[Notifier](envPath)
}

func load[T any](envPath string) (T, error) {
	var zero T

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return zero, err
	}

	c, err := env.ParseAsWithOptions[T](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return zero, err
	}

	return c, nil
}
