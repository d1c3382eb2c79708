package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the process needs at startup. Values come from the
// environment (optionally seeded from a .env file); nothing here is read from
// os.Getenv elsewhere in the codebase.
type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	MongoURI      string        `env:"MONGODB_URI" envDefault:"mongodb://127.0.0.1:27017"`
	MongoDatabase string        `env:"MONGODB_DATABASE" envDefault:"bandhan"`
	JWTSecret     string        `env:"JWT_SECRET,required"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	UploadDir     string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	AllowOrigins  []string      `env:"ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5500,http://127.0.0.1:5500"`
	ReleaseMode   bool          `env:"RELEASE_MODE" envDefault:"false"`
	RatePerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
	RateBurst     int           `env:"RATE_LIMIT_BURST" envDefault:"30"`
}

// Load reads a .env file if one exists, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
