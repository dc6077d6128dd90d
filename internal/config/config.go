package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Bid     BidConfig     `yaml:"bid" mapstructure:"bid"`
	Detect  DetectConfig  `yaml:"detect" mapstructure:"detect"`
	XRef    XRefConfig    `yaml:"xref" mapstructure:"xref"`
	Quality QualityConfig `yaml:"quality" mapstructure:"quality"`
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// BidConfig holds the pricing constants applied per bid run.
type BidConfig struct {
	MarkupPercentage   float64  `yaml:"markup_percentage" mapstructure:"markup_percentage"`
	DeliveryPercentage float64  `yaml:"delivery_percentage" mapstructure:"delivery_percentage"`
	DeliveryMinimum    float64  `yaml:"delivery_minimum" mapstructure:"delivery_minimum"`
	DeliveryOverride   *float64 `yaml:"delivery_override,omitempty" mapstructure:"delivery_override"`
	TaxRate            float64  `yaml:"tax_rate" mapstructure:"tax_rate"`
	MaterialsShare     float64  `yaml:"materials_share" mapstructure:"materials_share"`
}

// DetectConfig holds term detection tuning.
type DetectConfig struct {
	ContextChars        int `yaml:"context_chars" mapstructure:"context_chars"`
	QuantityWindowChars int `yaml:"quantity_window_chars" mapstructure:"quantity_window_chars"`
}

// XRefConfig holds cross-referencing tuning.
type XRefConfig struct {
	VarianceThreshold float64 `yaml:"variance_threshold" mapstructure:"variance_threshold"`
}

// QualityConfig names the validator's point-deduction constants so they can
// be tuned independently of the scoring control flow.
type QualityConfig struct {
	ErrorDeduction   float64 `yaml:"error_deduction" mapstructure:"error_deduction"`
	WarningDeduction float64 `yaml:"warning_deduction" mapstructure:"warning_deduction"`
	InfoDeduction    float64 `yaml:"info_deduction" mapstructure:"info_deduction"`
	PricingScale     float64 `yaml:"pricing_scale" mapstructure:"pricing_scale"`
	MinTermCount     int     `yaml:"min_term_count" mapstructure:"min_term_count"`
	MinQuantityCount int     `yaml:"min_quantity_count" mapstructure:"min_quantity_count"`
}

// CatalogConfig configures the product catalog source.
type CatalogConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"` // "file" or "postgres"
	Path        string `yaml:"path" mapstructure:"path"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// StoreConfig configures the local bid-run store.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the HTTP bid service.
type ServerConfig struct {
	Port          int     `yaml:"port" mapstructure:"port"`
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst     int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("bid.markup_percentage", 0.20)
	v.SetDefault("bid.delivery_percentage", 0.03)
	v.SetDefault("bid.delivery_minimum", 150.00)
	v.SetDefault("bid.tax_rate", 0.0)
	v.SetDefault("bid.materials_share", 0.70)
	v.SetDefault("detect.context_chars", 100)
	v.SetDefault("detect.quantity_window_chars", 150)
	v.SetDefault("xref.variance_threshold", 0.15)
	v.SetDefault("quality.error_deduction", 15.0)
	v.SetDefault("quality.warning_deduction", 8.0)
	v.SetDefault("quality.info_deduction", 2.0)
	v.SetDefault("quality.pricing_scale", 0.5)
	v.SetDefault("quality.min_term_count", 3)
	v.SetDefault("quality.min_quantity_count", 5)
	v.SetDefault("catalog.driver", "file")
	v.SetDefault("catalog.path", "catalog.yaml")
	v.SetDefault("store.path", "pace.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_per_second", 2.0)
	v.SetDefault("server.rate_burst", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
