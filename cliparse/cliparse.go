package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	TokenSecret  string

	// Eligibility rules, injected rather than hardcoded so deployments
	// (and tests) can vary them.
	AdminEmails      []string
	StudentDomain    string
	StudentPrefix    string
	StudentSerialMin int
	StudentSerialMax int
}

// ParseFlags validates flags and builds the runtime configuration
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Load .env if present; real env vars win over file values
	_ = godotenv.Load()

	fs := flag.NewFlagSet("cr-voting", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TokenSecret, "token-secret", "", "Session token signing secret (prefer env)")

	// Eligibility rules
	var adminEmails, idRange string
	fs.StringVar(&adminEmails, "admin-emails", "", "Comma-separated admin signup allow-list")
	fs.StringVar(&cfg.StudentDomain, "student-domain", "", "Required student email domain suffix")
	fs.StringVar(&cfg.StudentPrefix, "student-prefix", "", "Fixed student ID prefix")
	fs.StringVar(&idRange, "id-range", "", "Student ID serial range min-max (empty disables)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
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
			cfg.Port = 4000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	// Secrets - MUST be provided
	if cfg.TokenSecret == "" {
		cfg.TokenSecret = os.Getenv("TOKEN_SECRET")
	}
	if cfg.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET required")
	}

	// Eligibility rules, with deployment defaults
	if adminEmails == "" {
		adminEmails = os.Getenv("ADMIN_EMAILS")
	}
	cfg.AdminEmails = splitList(adminEmails)

	if cfg.StudentDomain == "" {
		cfg.StudentDomain = os.Getenv("STUDENT_EMAIL_DOMAIN")
		if cfg.StudentDomain == "" {
			cfg.StudentDomain = "@cse.bubt.edu.bd"
		}
	}
	if !strings.HasPrefix(cfg.StudentDomain, "@") {
		cfg.StudentDomain = "@" + cfg.StudentDomain
	}

	if cfg.StudentPrefix == "" {
		cfg.StudentPrefix = os.Getenv("STUDENT_ID_PREFIX")
		if cfg.StudentPrefix == "" {
			cfg.StudentPrefix = "20255203"
		}
	}

	if idRange == "" {
		if v, ok := os.LookupEnv("STUDENT_ID_RANGE"); ok {
			idRange = v
		} else {
			idRange = "1-41"
		}
	}
	if idRange != "" {
		min, max, err := parseRange(idRange)
		if err != nil {
			return Config{}, err
		}
		cfg.StudentSerialMin = min
		cfg.StudentSerialMax = max
	}

	return cfg, nil
}

// splitList splits a comma-separated value, trimming whitespace and
// dropping empty entries
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseRange parses "min-max" into bounds, e.g. "1-41"
func parseRange(s string) (int, int, error) {
	minStr, maxStr, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid id range %q (want min-max)", s)
	}
	min, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid id range %q: %w", s, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(maxStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid id range %q: %w", s, err)
	}
	if min < 1 || max < min {
		return 0, 0, fmt.Errorf("invalid id range %q (want 1 <= min <= max)", s)
	}
	return min, max, nil
}
