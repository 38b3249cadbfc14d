package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type Config struct {
	Seed      int64     `mapstructure:"seed"`
	StartDate time.Time `mapstructure:"start_date"`
	EndDate   time.Time `mapstructure:"end_date"`

	RestaurantCount int `mapstructure:"restaurant_count"`
	CustomerCount   int `mapstructure:"customer_count"`
	DriverCount     int `mapstructure:"driver_count"`
	OrderCount      int `mapstructure:"order_count"`
	PromotionCount  int `mapstructure:"promotion_count"`

	// Geographic bounding box all generated coordinates fall within.
	MinLat float64 `mapstructure:"min_latitude"`
	MaxLat float64 `mapstructure:"max_latitude"`
	MinLng float64 `mapstructure:"min_longitude"`
	MaxLng float64 `mapstructure:"max_longitude"`

	MinOrderAmount float64 `mapstructure:"min_order_amount"`
	MaxOrderAmount float64 `mapstructure:"max_order_amount"`
	MinDeliveryFee float64 `mapstructure:"min_delivery_fee"`
	MaxDeliveryFee float64 `mapstructure:"max_delivery_fee"`
	PromotionRate  float64 `mapstructure:"promotion_rate"` // share of orders that get a promotion

	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputFormat      string             `mapstructure:"output_format"`      // "sql" or "parquet"
	OutputDestination string             `mapstructure:"output_destination"` // "local" or "s3"
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`
	Database          DatabaseConfig     `mapstructure:"database"`

	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	KafkaTopicPrefix string `mapstructure:"kafka_topic_prefix"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// Validate rejects configurations that would produce empty or nonsensical
// datasets. It runs before any generation so a bad run fails without touching
// the staging directory.
func (cfg *Config) Validate() error {
	counts := map[string]int{
		"restaurant_count": cfg.RestaurantCount,
		"customer_count":   cfg.CustomerCount,
		"driver_count":     cfg.DriverCount,
		"order_count":      cfg.OrderCount,
		"promotion_count":  cfg.PromotionCount,
	}
	for name, n := range counts {
		if n <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, n)
		}
	}

	if !cfg.EndDate.After(cfg.StartDate) {
		return fmt.Errorf("end_date %s must be after start_date %s",
			cfg.EndDate.Format(time.RFC3339), cfg.StartDate.Format(time.RFC3339))
	}

	if cfg.MinLat >= cfg.MaxLat {
		return fmt.Errorf("inverted latitude range [%f, %f]", cfg.MinLat, cfg.MaxLat)
	}
	if cfg.MinLng >= cfg.MaxLng {
		return fmt.Errorf("inverted longitude range [%f, %f]", cfg.MinLng, cfg.MaxLng)
	}

	if cfg.PromotionRate <= 0 || cfg.PromotionRate > 1 {
		return fmt.Errorf("promotion_rate must be in (0, 1], got %f", cfg.PromotionRate)
	}

	if cfg.MinOrderAmount <= 0 || cfg.MaxOrderAmount < cfg.MinOrderAmount {
		return fmt.Errorf("invalid order amount range [%f, %f]", cfg.MinOrderAmount, cfg.MaxOrderAmount)
	}
	if cfg.MinDeliveryFee < 0 || cfg.MaxDeliveryFee < cfg.MinDeliveryFee {
		return fmt.Errorf("invalid delivery fee range [%f, %f]", cfg.MinDeliveryFee, cfg.MaxDeliveryFee)
	}

	if cfg.OutputPath == "" {
		return fmt.Errorf("output_path must be set")
	}
	switch cfg.OutputFormat {
	case "sql", "parquet":
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
	switch cfg.OutputDestination {
	case "local":
	case "s3":
		if cfg.CloudStorage.BucketName == "" {
			return fmt.Errorf("cloud_storage.bucket_name must be set for s3 output")
		}
	default:
		return fmt.Errorf("unsupported output destination: %s", cfg.OutputDestination)
	}

	return nil
}
