package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spigell/cv-matcher/internal/logger"
	"github.com/spigell/cv-matcher/internal/matching"
	"github.com/spigell/cv-matcher/internal/taxonomy"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app       = "cv-matcher"
	envPrefix = "CV_MATCHER"
)

type Config struct {
	Threshold int            `mapstructure:"threshold" validate:"gte=0,lte=100"`
	Batch     BatchConfig    `mapstructure:"batch"`
	Taxonomy  TaxonomyConfig `mapstructure:"taxonomy"`
	Server    ServerConfig   `mapstructure:"server"`
}

type BatchConfig struct {
	Concurrency int    `mapstructure:"concurrency" validate:"gte=0"`
	MinScore    int    `mapstructure:"min-score" validate:"gte=0,lte=100"`
	Quality     string `mapstructure:"quality"`
	Top         int    `mapstructure:"top" validate:"gte=0"`
}

type TaxonomyConfig struct {
	File string `mapstructure:"file"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen" validate:"required,hostname_port"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-matcher scores how well candidate profiles fit job specifications",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().Int("threshold", 0, "skill similarity threshold, 0-100 (default 85)")
	rootCmd.PersistentFlags().String("taxonomy", "", "a file with taxonomy overrides merged into the defaults")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("threshold", rootCmd.PersistentFlags().Lookup("threshold"))
	viper.BindPFlag("taxonomy.file", rootCmd.PersistentFlags().Lookup("taxonomy"))

	viper.SetDefault("server.listen", "127.0.0.1:8080")
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The config file is optional unless it was asked for explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if config.Batch.Quality != "" {
		if _, ok := matching.ParseQuality(config.Batch.Quality); !ok {
			return nil, fmt.Errorf("validating config: unknown batch.quality %q", config.Batch.Quality)
		}
	}

	return config, nil
}

// setup builds the logger, config and engine every command needs.
func setup() (*zap.Logger, *Config, *matching.Engine) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"), logger.AppFields(app, version)...)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if viper.ConfigFileUsed() != "" {
		logger.Debug("using config file", zap.String("file", viper.ConfigFileUsed()))
	}

	tables, err := taxonomy.Load(config.Taxonomy.File)
	if err != nil {
		logger.Fatal("loading taxonomy", zap.Error(err))
	}

	engine := matching.New(tables,
		matching.WithLogger(logger),
		matching.WithThreshold(config.Threshold),
		matching.WithConcurrency(config.Batch.Concurrency),
	)

	return logger, config, engine
}
