package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-nps/csvexport"
	"github.com/danielhkuo/quickly-nps/store"
)

// Store type constants
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Defaults
const (
	DefaultPort        = 3318
	DefaultRecentLimit = 20
	DefaultFileDir     = "data"
	DefaultSQLitePath  = "data/nps.db"
	DefaultEnvFile     = ".env"
)

type Config struct {
	Port           int
	StoreType      string
	DatabaseURL    string // directory for file, path for sqlite, DSN for postgres
	StorageKey     string
	Locale         string
	AdminKeySalt   string // empty disables admin key checks
	RecentLimit    int
	SurveyFile     string
	ExportFilename string
	CSVHeader      []string
}

// SurveyFile is the optional YAML survey configuration
type SurveyFile struct {
	ExportFilename string   `yaml:"export_filename"`
	CSVHeader      []string `yaml:"csv_header"`
	RecentLimit    int      `yaml:"recent_limit"`
	Locale         string   `yaml:"locale"`
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("quickly-nps", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (file, sqlite, postgres, memory)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Store location: directory, sqlite path, or postgres URL")
	fs.StringVar(&cfg.StorageKey, "k", "", "Storage key holding the responses")
	fs.StringVar(&cfg.Locale, "locale", "", "Survey locale (en or pt-BR)")
	fs.IntVar(&cfg.RecentLimit, "recent", 0, "Number of recent responses listed")
	fs.StringVar(&cfg.SurveyFile, "survey-file", "", "Optional YAML survey file")
	fs.StringVar(&envFile, "env-file", DefaultEnvFile, "Dotenv file to load if present")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over the dotenv file
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreFile
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	switch cfg.StoreType {
	case StoreFile:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultFileDir
		}
	case StoreSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultSQLitePath
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	case StoreMemory:
	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	if cfg.StorageKey == "" {
		cfg.StorageKey = os.Getenv("STORAGE_KEY")
		if cfg.StorageKey == "" {
			cfg.StorageKey = store.DefaultKey
		}
	}

	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}

	if cfg.Locale == "" {
		cfg.Locale = os.Getenv("SURVEY_LOCALE")
	}
	if cfg.RecentLimit == 0 {
		if s := os.Getenv("RECENT_LIMIT"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid RECENT_LIMIT env variable")
			}
			cfg.RecentLimit = n
		}
	}

	if cfg.SurveyFile == "" {
		cfg.SurveyFile = os.Getenv("SURVEY_FILE")
	}
	if cfg.SurveyFile != "" {
		sf, err := LoadSurveyFile(cfg.SurveyFile)
		if err != nil {
			return Config{}, err
		}
		cfg.applySurveyFile(sf)
	}

	if cfg.Locale == "" {
		cfg.Locale = csvexport.LocaleEN
	}
	if !csvexport.SupportedLocale(cfg.Locale) {
		return Config{}, fmt.Errorf("unsupported locale %q", cfg.Locale)
	}

	if cfg.RecentLimit == 0 {
		cfg.RecentLimit = DefaultRecentLimit
	}
	if cfg.RecentLimit < 0 {
		return Config{}, errors.New("recent limit must not be negative")
	}

	if cfg.ExportFilename == "" {
		cfg.ExportFilename = csvexport.DefaultFilename
	}

	return cfg, nil
}

// applySurveyFile fills settings not already given by flags or env
func (cfg *Config) applySurveyFile(sf *SurveyFile) {
	if cfg.Locale == "" {
		cfg.Locale = sf.Locale
	}
	if cfg.RecentLimit == 0 {
		cfg.RecentLimit = sf.RecentLimit
	}
	cfg.ExportFilename = sf.ExportFilename
	cfg.CSVHeader = sf.CSVHeader
}

// LoadSurveyFile reads and validates the YAML survey file
func LoadSurveyFile(path string) (*SurveyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read survey file: %w", err)
	}

	var sf SurveyFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse survey file: %w", err)
	}

	if len(sf.CSVHeader) != 0 && len(sf.CSVHeader) != csvexport.ColumnCount {
		return nil, fmt.Errorf("csv_header must have %d labels, got %d", csvexport.ColumnCount, len(sf.CSVHeader))
	}
	return &sf, nil
}
