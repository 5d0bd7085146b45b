package commands

import (
	"errors"
	"io/fs"
	"os"
	"resultsdb/internal/regno"
	"resultsdb/internal/scrapers/doeresults"
	"resultsdb/lib/configutil"
	configlibsql "resultsdb/lib/configutil/libsql"

	"github.com/joho/godotenv"
)

type Config struct {
	Database configlibsql.Struct `json:"database"`
	BaseUrl  string              `json:"base_url"`
	// seconds
	Timeout                 int          `json:"timeout"`
	DisableCloudflareBypass bool         `json:"disable_cloudflare_bypass"`
	Ranges                  regno.Ranges `json:"ranges"`
}

func defaultConfig() Config {
	return Config{
		Database: configlibsql.Struct{File: "<dev_state>/results.db"},
		BaseUrl:  doeresults.DefaultBaseUrl,
		Timeout:  30,
		Ranges:   regno.DefaultRanges(),
	}
}

var envOverrides = []struct {
	name  string
	apply func(c *Config, value string)
}{
	{"RESULTSDB_FILE", func(c *Config, v string) { c.Database.File = v }},
	{"RESULTSDB_URL", func(c *Config, v string) { c.Database.Url = v }},
	{"RESULTSDB_AUTH_TOKEN", func(c *Config, v string) { c.Database.AuthToken = v }},
	{"RESULTSDB_BASE_URL", func(c *Config, v string) { c.BaseUrl = v }},
}

// loadConfig layers <path> (and its .local variant) over the defaults, then
// applies RESULTSDB_* variables from the environment or a .env file.
func loadConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfigOr(path, defaultConfig())
	if err != nil {
		return cfg, err
	}

	err = godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	for _, o := range envOverrides {
		value, ok := os.LookupEnv(o.name)
		if ok && value != "" {
			o.apply(&cfg, value)
		}
	}

	return cfg, cfg.Ranges.Validate()
}
