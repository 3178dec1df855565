package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultDotenvFile is read for PASSGUARD_* variables when present.
const DefaultDotenvFile = ".env"

// Env holds the environment overrides.
type Env struct {
	Corpus      string        `env:"PASSGUARD_CORPUS"`
	Language    string        `env:"PASSGUARD_LANG"`
	Proxy       string        `env:"PASSGUARD_PROXY"`
	Concurrency int           `env:"PASSGUARD_CONCURRENCY"`
	Timeout     time.Duration `env:"PASSGUARD_TIMEOUT"`
}

// LoadEnv reads the process environment, completed by the dotenv file at
// dotenvPath. Variables already set in the process win over the file, and a
// missing file is not an error.
func LoadEnv(dotenvPath string) (Env, error) {
	vars := environ()
	if dotenvPath != "" {
		fileVars, err := godotenv.Read(dotenvPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("%w: %s: %w", ErrParsingEnv, dotenvPath, err)
		}
		for k, v := range fileVars {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}
	return parseEnv(vars)
}

// parseEnv decodes vars without touching the process environment.
func parseEnv(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("%w: %w", ErrParsingEnv, err)
	}
	return e, nil
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}

// ApplyEnv overrides c with every variable set in e.
func (c *Config) ApplyEnv(e Env) {
	if e.Corpus != "" {
		c.CorpusSource = e.Corpus
	}
	if e.Language != "" {
		c.Language = e.Language
	}
	if e.Proxy != "" {
		c.ProxyAddress = e.Proxy
	}
	if e.Concurrency != 0 {
		c.Concurrency = e.Concurrency
	}
	if e.Timeout != 0 {
		c.Timeout = e.Timeout
	}
}
