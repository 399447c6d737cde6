package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/codevault/clientid"
)

// Defaults
const (
	DefaultPort              = 3001
	DefaultMaxMessageLength  = 1000
	DefaultMaxCarrierLength  = 100000
	DefaultMaxResults        = 20
	DefaultAnalysisCacheSize = 256
	DefaultRateLimit         = 10
	DefaultRateBurst         = 20
	DefaultEnvFile           = ".env"
)

type Config struct {
	Port              int
	MaxMessageLength  int
	MaxCarrierLength  int
	MaxResults        int
	AnalysisCacheSize int
	RateLimit         float64 // requests per second per client, 0 disables
	RateBurst         int
	FillerFile        string
	IPHashSalt        string
	EnvFile           string
}

// ParseFlags reads flags, then the .env file, then environment variables.
// A flag always wins over the environment.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("codevault", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.IntVar(&cfg.MaxMessageLength, "max-message", 0, "Maximum message length in characters")
	fs.IntVar(&cfg.MaxCarrierLength, "max-carrier", 0, "Maximum carrier length in characters")
	fs.IntVar(&cfg.MaxResults, "max-results", 0, "Maximum candidates returned by blind decode")
	fs.IntVar(&cfg.AnalysisCacheSize, "cache-size", 0, "Number of blind analyses kept in memory")
	fs.Float64Var(&cfg.RateLimit, "rate-limit", 0, "Requests per second per client (0 disables)")
	fs.IntVar(&cfg.RateBurst, "rate-burst", 0, "Burst size per client")
	fs.StringVar(&cfg.FillerFile, "fillers", "", "TOML file with filler lines and words")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "Salt for client IP hashing (prefer env)")
	fs.StringVar(&cfg.EnvFile, "env-file", "", "Path of the .env file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if cfg.EnvFile == "" {
		cfg.EnvFile = envOr("ENV_FILE", DefaultEnvFile)
	}
	// godotenv never overrides variables that are already set
	if err := godotenv.Load(cfg.EnvFile); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
	}

	ints := []struct {
		dst  *int
		flag string
		env  string
		def  int
	}{
		{&cfg.Port, "p", "PORT", DefaultPort},
		{&cfg.MaxMessageLength, "max-message", "MAX_MESSAGE_LENGTH", DefaultMaxMessageLength},
		{&cfg.MaxCarrierLength, "max-carrier", "MAX_CARRIER_LENGTH", DefaultMaxCarrierLength},
		{&cfg.MaxResults, "max-results", "MAX_RESULTS", DefaultMaxResults},
		{&cfg.AnalysisCacheSize, "cache-size", "ANALYSIS_CACHE_SIZE", DefaultAnalysisCacheSize},
		{&cfg.RateBurst, "rate-burst", "RATE_BURST", DefaultRateBurst},
	}
	for _, s := range ints {
		if set[s.flag] {
			continue
		}
		*s.dst = s.def
		if v := os.Getenv(s.env); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s env variable", s.env)
			}
			*s.dst = n
		}
	}

	if !set["rate-limit"] {
		cfg.RateLimit = DefaultRateLimit
		if v := os.Getenv("RATE_LIMIT"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Config{}, errors.New("invalid RATE_LIMIT env variable")
			}
			cfg.RateLimit = f
		}
	}

	if cfg.FillerFile == "" {
		cfg.FillerFile = os.Getenv("FILLER_FILE")
	}
	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		salt, err := clientid.GenerateSalt(16)
		if err != nil {
			return Config{}, err
		}
		cfg.IPHashSalt = salt
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("invalid port %d", c.Port)
	case c.MaxMessageLength <= 0:
		return errors.New("max message length must be positive")
	case c.MaxCarrierLength <= 0:
		return errors.New("max carrier length must be positive")
	case c.MaxResults <= 0:
		return errors.New("max results must be positive")
	case c.AnalysisCacheSize < 0:
		return errors.New("analysis cache size must not be negative")
	case c.RateLimit < 0:
		return errors.New("rate limit must not be negative")
	case c.RateLimit > 0 && c.RateBurst <= 0:
		return errors.New("rate burst must be positive when rate limiting")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
