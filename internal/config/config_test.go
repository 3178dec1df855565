package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nao1215/passguard/internal/generator"
	"golang.org/x/text/language"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.CorpusSource != "embedded" {
		t.Errorf("expected embedded corpus, got %q", cfg.CorpusSource)
	}
	if cfg.Language != "en" {
		t.Errorf("expected language en, got %q", cfg.Language)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", cfg.Timeout)
	}
	if cfg.Concurrency != 4 {
		t.Errorf("expected concurrency 4, got %d", cfg.Concurrency)
	}
	if cfg.Count != 1 {
		t.Errorf("expected count 1, got %d", cfg.Count)
	}
	if cfg.Generate != generator.DefaultOptions() {
		t.Errorf("expected default generate options, got %+v", cfg.Generate)
	}
	if cfg.ProxyAddress != "" || cfg.JSONReport || cfg.MarkdownReport || cfg.FailOnError {
		t.Errorf("expected zero optional settings, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to be valid, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }, wantErr: ErrInvalidTimeout},
		{name: "negative concurrency", modify: func(c *Config) { c.Concurrency = -1 }, wantErr: ErrInvalidConcurrency},
		{name: "json and markdown", modify: func(c *Config) { c.JSONReport, c.MarkdownReport = true, true }, wantErr: ErrConflictingReportFormats},
		{name: "bad language", modify: func(c *Config) { c.Language = "not a tag!" }, wantErr: ErrInvalidLanguage},
		{name: "zero count", modify: func(c *Config) { c.Count = 0 }, wantErr: ErrInvalidCount},
		{name: "count too large", modify: func(c *Config) { c.Count = MaxCount + 1 }, wantErr: ErrInvalidCount},
		{name: "length too large", modify: func(c *Config) { c.Generate.Length = MaxLength + 1 }, wantErr: ErrInvalidLength},
		{name: "huge length", modify: func(c *Config) { c.Generate.Length = 2000000000 }, wantErr: ErrInvalidLength},
		{name: "maximum length", modify: func(c *Config) { c.Generate.Length = MaxLength }},
		{name: "chinese", modify: func(c *Config) { c.Language = "zh-CN" }},
		{name: "unsupported language falls back", modify: func(c *Config) { c.Language = "fr" }},
		{name: "markdown only", modify: func(c *Config) { c.MarkdownReport = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigLanguageTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"zh", language.Chinese},
		{"zh-Hans-CN", language.Chinese},
		{"fr", language.English},
		{"%%%", language.English},
	}

	for _, tt := range tests {
		cfg := NewConfig()
		cfg.Language = tt.lang
		if got := cfg.LanguageTag(); got != tt.want {
			t.Errorf("LanguageTag(%q) = %v, want %v", tt.lang, got, tt.want)
		}
	}
}

func TestConfigCorpusSourceOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		proxy   string
		want    string
		wantErr bool
	}{
		{name: "embedded", source: "embedded", want: "embedded"},
		{name: "file path", source: "/tmp/weak.bin", want: "/tmp/weak.bin"},
		{name: "https", source: "https://example.com/weak.bin", want: "https://example.com/weak.bin"},
		{name: "https through proxy", source: "https://example.com/weak.bin", proxy: "127.0.0.1:1080", want: "https://example.com/weak.bin"},
		{name: "bad proxy", source: "https://example.com/weak.bin", proxy: "no-port", wantErr: true},
		{name: "unsupported scheme", source: "ftp://example.com/weak.bin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			cfg.CorpusSource = tt.source
			cfg.ProxyAddress = tt.proxy
			src, err := cfg.CorpusSourceOf()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if src.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, src.String())
			}
		})
	}
}

func TestXDGConfigFile(t *testing.T) {
	t.Parallel()

	path := XDGConfigFile()
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("expected config.yaml, got %s", path)
	}
	if filepath.Base(filepath.Dir(path)) != AppName {
		t.Errorf("expected %s directory, got %s", AppName, path)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, ".passguard", `
check:
  corpus: https://example.com/weak.bin
  language: zh
  proxy: 127.0.0.1:9050
  timeout: 45s
  concurrency: 8
  format: markdown
  failOnError: true
generate:
  length: 24
  special: false
  ignore: "0O1lI"
  count: 5
`)
		file, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		if err := cfg.ApplyFile(file); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.CorpusSource != "https://example.com/weak.bin" || cfg.Language != "zh" || cfg.ProxyAddress != "127.0.0.1:9050" {
			t.Errorf("check section not applied: %+v", cfg)
		}
		if cfg.Timeout != 45*time.Second || cfg.Concurrency != 8 {
			t.Errorf("expected timeout 45s and concurrency 8, got %v and %d", cfg.Timeout, cfg.Concurrency)
		}
		if !cfg.MarkdownReport || cfg.JSONReport || !cfg.FailOnError {
			t.Errorf("expected markdown format and fail-on-error, got %+v", cfg)
		}
		want := generator.Options{Length: 24, Lowercase: true, Uppercase: true, Numbers: true, Special: false, Ignore: "0O1lI"}
		if cfg.Generate != want {
			t.Errorf("expected %+v, got %+v", want, cfg.Generate)
		}
		if cfg.Count != 5 {
			t.Errorf("expected count 5, got %d", cfg.Count)
		}
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		t.Parallel()

		file, err := LoadConfigFile(writeFile(t, ".passguard", ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg := NewConfig()
		if err := cfg.ApplyFile(file); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *cfg != *NewConfig() {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(writeFile(t, ".passguard", "check: [unclosed"))
		if !errors.Is(err, ErrParsingConfig) {
			t.Errorf("expected ErrParsingConfig, got %v", err)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		file, err := LoadConfigFile(writeFile(t, ".passguard", "check:\n  format: xml\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := NewConfig().ApplyFile(file); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path exists", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "custom.yaml", "check: {}\n")
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %s, got %s", path, got)
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty path, got %s", got)
		}
	})

	t.Run("explicit path is a directory", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(t.TempDir()); got != "" {
			t.Errorf("expected empty path, got %s", got)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("explicit file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "passguard.yaml", "check:\n  concurrency: 2\n")
		cfg, err := Load(path, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ConfigFilePath != path {
			t.Errorf("expected config path %s, got %s", path, cfg.ConfigFilePath)
		}
		if os.Getenv("PASSGUARD_CONCURRENCY") == "" && cfg.Concurrency != 2 {
			t.Errorf("expected concurrency 2, got %d", cfg.Concurrency)
		}
	})

	t.Run("explicit file missing", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid format in file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeFile(t, "passguard.yaml", "check:\n  format: pdf\n"), "")
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})
}

func TestParseEnv(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		e, err := parseEnv(map[string]string{
			"PASSGUARD_CORPUS":      "/srv/weak.bin",
			"PASSGUARD_LANG":        "zh",
			"PASSGUARD_PROXY":       "127.0.0.1:1080",
			"PASSGUARD_CONCURRENCY": "16",
			"PASSGUARD_TIMEOUT":     "1m",
			"UNRELATED":             "x",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Env{Corpus: "/srv/weak.bin", Language: "zh", Proxy: "127.0.0.1:1080", Concurrency: 16, Timeout: time.Minute}
		if e != want {
			t.Errorf("expected %+v, got %+v", want, e)
		}
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()

		_, err := parseEnv(map[string]string{"PASSGUARD_CONCURRENCY": "many"})
		if !errors.Is(err, ErrParsingEnv) {
			t.Errorf("expected ErrParsingEnv, got %v", err)
		}
	})

	t.Run("empty environment", func(t *testing.T) {
		t.Parallel()

		e, err := parseEnv(map[string]string{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e != (Env{}) {
			t.Errorf("expected zero Env, got %+v", e)
		}
	})
}

func TestLoadEnvDotenv(t *testing.T) {
	t.Parallel()

	t.Run("missing dotenv is ignored", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("dotenv values are read", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, ".env", "PASSGUARD_TEST_ONLY=1\nPASSGUARD_LANG=zh\n")
		e, err := LoadEnv(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if os.Getenv("PASSGUARD_LANG") == "" && e.Language != "zh" {
			t.Errorf("expected language from .env, got %q", e.Language)
		}
	})

	t.Run("malformed dotenv", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, ".env", "PASSGUARD_LANG='unterminated\n")
		if _, err := LoadEnv(path); !errors.Is(err, ErrParsingEnv) {
			t.Errorf("expected ErrParsingEnv, got %v", err)
		}
	})
}

func TestApplyEnvPrecedence(t *testing.T) {
	t.Parallel()

	file, err := LoadConfigFile(writeFile(t, ".passguard", "check:\n  language: en\n  concurrency: 2\n  corpus: /from/file\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := NewConfig()
	if err := cfg.ApplyFile(file); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.ApplyEnv(Env{Language: "zh", Concurrency: 6})

	if cfg.Language != "zh" || cfg.Concurrency != 6 {
		t.Errorf("expected environment to win over file, got %+v", cfg)
	}
	if cfg.CorpusSource != "/from/file" {
		t.Errorf("expected unset env to keep file value, got %q", cfg.CorpusSource)
	}
}
