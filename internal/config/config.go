package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lawnchairsociety/questgen/internal/database"
	"github.com/lawnchairsociety/questgen/internal/lists"
	"github.com/lawnchairsociety/questgen/internal/quest"
	"gopkg.in/yaml.v3"
)

// GeneratorConfig holds every setting of a generator run.
// The logging section of the same file is read by the logger package.
type GeneratorConfig struct {
	Lists          ListsConfig    `yaml:"lists"`
	Output         OutputConfig   `yaml:"output"`
	Seed           int64          `yaml:"seed"`
	ValidateSchema bool           `yaml:"validate_schema"`
	Report         ReportConfig   `yaml:"report"`
	Database       DatabaseConfig `yaml:"database"`
}

// ListsConfig locates the six subject lists.
type ListsConfig struct {
	// Dir is the directory relative file names are resolved against.
	Dir string `yaml:"dir"`

	// Files maps each list name to its file. Entries not set keep their default.
	Files map[quest.ListName]string `yaml:"files"`
}

// OutputConfig holds where quest documents are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// ReportConfig controls the optional spreadsheet report.
type ReportConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DatabaseConfig controls the optional catalog index.
type DatabaseConfig struct {
	Enabled         bool `yaml:"enabled"`
	database.Config `yaml:",inline"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *GeneratorConfig {
	return &GeneratorConfig{
		Lists: ListsConfig{
			Dir:   "lists",
			Files: lists.DefaultFiles(),
		},
		Output: OutputConfig{
			Dir: "Quests",
		},
		Seed:           0, // Time based
		ValidateSchema: true,
		Report: ReportConfig{
			Path: "reports/catalog.xlsx",
		},
		Database: DatabaseConfig{
			Config: database.DefaultConfig("data/questgen.db"),
		},
	}
}

// LoadConfig loads configuration from a YAML file, then an optional .env file,
// then QUESTGEN_* environment variables. A missing YAML or .env file is not an
// error; one that exists but cannot be parsed is.
func LoadConfig(path, envFile string) (*GeneratorConfig, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			// Variables already set in the environment win over the file
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *GeneratorConfig) applyEnv() error {
	if dir := os.Getenv("QUESTGEN_LISTS_DIR"); dir != "" {
		c.Lists.Dir = dir
	}
	if dir := os.Getenv("QUESTGEN_OUTPUT_DIR"); dir != "" {
		c.Output.Dir = dir
	}
	if seed := os.Getenv("QUESTGEN_SEED"); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid QUESTGEN_SEED %q: %w", seed, err)
		}
		c.Seed = n
	}
	if err := envBool("QUESTGEN_VALIDATE_SCHEMA", &c.ValidateSchema); err != nil {
		return err
	}
	if err := envBool("QUESTGEN_REPORT_ENABLED", &c.Report.Enabled); err != nil {
		return err
	}
	if path := os.Getenv("QUESTGEN_REPORT_PATH"); path != "" {
		c.Report.Path = path
	}
	if err := envBool("QUESTGEN_DB_ENABLED", &c.Database.Enabled); err != nil {
		return err
	}
	if driver := os.Getenv("QUESTGEN_DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if path := os.Getenv("QUESTGEN_DB_SQLITE_PATH"); path != "" {
		c.Database.SQLitePath = path
	}
	if dsn := os.Getenv("QUESTGEN_DB_POSTGRES_DSN"); dsn != "" {
		c.Database.Postgres.DSN = dsn
	}
	return nil
}

func envBool(name string, target *bool) error {
	value := os.Getenv(name)
	if value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	*target = b
	return nil
}

// Validate reports every setting that would stop a run.
func (c *GeneratorConfig) Validate() error {
	var errs []error

	if c.Lists.Dir == "" {
		errs = append(errs, errors.New("lists.dir must not be empty"))
	}
	for _, name := range quest.AllListNames() {
		if c.Lists.Files[name] == "" {
			errs = append(errs, fmt.Errorf("lists.files.%s must not be empty", name))
		}
	}
	if c.Output.Dir == "" {
		errs = append(errs, errors.New("output.dir must not be empty"))
	}
	if c.Report.Enabled && c.Report.Path == "" {
		errs = append(errs, errors.New("report.path must be set when the report is enabled"))
	}
	if c.Database.Enabled {
		if err := c.Database.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}

	return errors.Join(errs...)
}
