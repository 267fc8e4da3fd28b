package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/career-buddy/internal/career"
	"github.com/spigell/career-buddy/internal/form"
	"github.com/spigell/career-buddy/internal/profile"
	"github.com/spigell/career-buddy/internal/report"
)

const (
	app       = "career-buddy"
	envPrefix = "CAREER_BUDDY"

	defaultConcurrency = 4
)

type Config struct {
	Output string       `mapstructure:"output"`
	Strict bool         `mapstructure:"strict"`
	Batch  *BatchConfig `mapstructure:"batch"`
	// Defaults prefill the form and use the same keys as a profile file.
	Defaults map[string]any `mapstructure:"defaults"`
}

type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "career-buddy suggests career paths from your education, skills, personality and goals",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is career-buddy.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("output", "o", report.FormatText, "output format for suggestions: text or json")
	rootCmd.PersistentFlags().Bool("strict", false, "refuse profiles with values outside the offered choices")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))

	viper.SetDefault("batch.concurrency", defaultConcurrency)
}

func initConfig() {
	// A missing .env is fine, the variables may already be exported.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional unless it was named explicitly.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	if config.Batch == nil {
		config.Batch = &BatchConfig{}
	}

	if config.Batch.Concurrency <= 0 {
		config.Batch.Concurrency = defaultConcurrency
	}

	return config, nil
}

// FormDefaults returns the answers the form starts with: configured defaults over built-in ones.
func (c *Config) FormDefaults() (career.Profile, error) {
	configured, err := profile.Decode(c.Defaults)
	if err != nil {
		return career.Profile{}, fmt.Errorf("config defaults: %w", err)
	}

	return profile.Merge(configured, form.Defaults()), nil
}
