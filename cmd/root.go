package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/chrisdamba/foodataseed/internal/generator"
	"github.com/chrisdamba/foodataseed/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "foodataseed",
	Short: "Generates a synthetic SQL dataset for food delivery platforms",
	Long:  `foodataseed is a CLI tool that generates an internally consistent, referentially valid relational dataset for a fictional food delivery business (restaurants, customers, drivers, orders, promotions) and emits it as batch SQL insert files ready for import.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		gen := generator.NewGenerator(cfg)
		if err := gen.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int64("seed", 0, "Random seed (0 uses the current time)")
	rootCmd.Flags().String("start-date", time.Now().AddDate(-1, 0, 0).Format(time.RFC3339), "Start of the global date range")
	rootCmd.Flags().String("end-date", time.Now().Format(time.RFC3339), "End of the global date range")
	rootCmd.Flags().Int("restaurant-count", 50, "Number of restaurants")
	rootCmd.Flags().Int("customer-count", 500, "Number of customers")
	rootCmd.Flags().Int("driver-count", 100, "Number of drivers")
	rootCmd.Flags().Int("order-count", 1000, "Number of orders")
	rootCmd.Flags().Int("promotion-count", 10, "Number of promotions")
	rootCmd.Flags().Float64("promotion-rate", 0.2, "Share of orders that get a promotion attached")
	rootCmd.Flags().String("output-path", "data", "Base output directory")
	rootCmd.Flags().String("output-folder", "staging", "Staging folder under the output path")
	rootCmd.Flags().String("output-format", "sql", "Output format: sql or parquet")
	rootCmd.Flags().String("output-destination", "local", "Output destination: local or s3")
	rootCmd.Flags().Bool("kafka-enabled", false, "Also publish generated records to Kafka")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("kafka-topic-prefix", "foodataseed", "Prefix for Kafka topic names")

	// flags use dashes, config keys use underscores
	flagKeys := map[string]string{
		"seed":               "seed",
		"start-date":         "start_date",
		"end-date":           "end_date",
		"restaurant-count":   "restaurant_count",
		"customer-count":     "customer_count",
		"driver-count":       "driver_count",
		"order-count":        "order_count",
		"promotion-count":    "promotion_count",
		"promotion-rate":     "promotion_rate",
		"output-path":        "output_path",
		"output-folder":      "output_folder",
		"output-format":      "output_format",
		"output-destination": "output_destination",
		"kafka-enabled":      "kafka_enabled",
		"kafka-broker-list":  "kafka_broker_list",
		"kafka-topic-prefix": "kafka_topic_prefix",
	}
	for flag, key := range flagKeys {
		viper.BindPFlag(key, rootCmd.Flags().Lookup(flag))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
