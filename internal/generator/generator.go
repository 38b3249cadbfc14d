package generator

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/chrisdamba/foodataseed/internal/factories"
	"github.com/chrisdamba/foodataseed/internal/models"
	"github.com/chrisdamba/foodataseed/internal/output"
)

// Generator runs the single-pass pipeline: base entities, then orders, then
// promotions and their order associations, then serialization through the
// configured sinks.
type Generator struct {
	Config  *models.Config
	Rng     *rand.Rand
	Dataset *models.Dataset
}

func NewGenerator(config *models.Config) *Generator {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		Config:  config,
		Rng:     rand.New(rand.NewSource(seed)),
		Dataset: &models.Dataset{},
	}
}

func (g *Generator) Run() error {
	if err := g.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	g.initializeEntities()
	g.generateOrders()
	g.generatePromotions()
	g.applyPromotions()

	log.Printf("generated %d restaurants, %d customers, %d drivers, %d orders, %d promotions, %d order promotions",
		len(g.Dataset.Restaurants), len(g.Dataset.Customers), len(g.Dataset.Drivers),
		len(g.Dataset.Orders), len(g.Dataset.Promotions), len(g.Dataset.OrderPromotions))

	sinks, err := g.determineSinks()
	if err != nil {
		return err
	}
	for _, sink := range sinks {
		if err := sink.WriteDataset(g.Dataset); err != nil {
			sink.Close()
			return fmt.Errorf("writing dataset: %w", err)
		}
		if err := sink.Close(); err != nil {
			return fmt.Errorf("closing output: %w", err)
		}
	}
	return nil
}

// initializeEntities builds the three independent base collections. IDs are
// dense and zero-based, in generation order; later stages reference entities
// by index into these slices.
func (g *Generator) initializeEntities() {
	restaurantFactory := &factories.RestaurantFactory{}
	customerFactory := &factories.CustomerFactory{}
	driverFactory := &factories.DriverFactory{}

	g.Dataset.Restaurants = make([]*models.Restaurant, g.Config.RestaurantCount)
	for i := range g.Dataset.Restaurants {
		g.Dataset.Restaurants[i] = restaurantFactory.CreateRestaurant(g.Config, i, g.Rng)
	}

	g.Dataset.Customers = make([]*models.Customer, g.Config.CustomerCount)
	for i := range g.Dataset.Customers {
		g.Dataset.Customers[i] = customerFactory.CreateCustomer(g.Config, i, g.Rng)
	}

	g.Dataset.Drivers = make([]*models.Driver, g.Config.DriverCount)
	for i := range g.Dataset.Drivers {
		g.Dataset.Drivers[i] = driverFactory.CreateDriver(g.Config, i, g.Rng)
	}
}

func (g *Generator) determineSinks() ([]output.Sink, error) {
	var sinks []output.Sink

	switch g.Config.OutputFormat {
	case "parquet":
		parquetSink, err := output.NewParquetSink(g.Config)
		if err != nil {
			return nil, fmt.Errorf("creating parquet output: %w", err)
		}
		sinks = append(sinks, parquetSink)
	default:
		fileSink, err := output.NewSQLFileSink(g.Config)
		if err != nil {
			return nil, fmt.Errorf("creating sql output: %w", err)
		}
		sinks = append(sinks, fileSink)
	}

	if g.Config.Database.Enabled {
		pgSink, err := output.NewPostgresSink(&g.Config.Database)
		if err != nil {
			return nil, fmt.Errorf("creating postgres output: %w", err)
		}
		sinks = append(sinks, pgSink)
	}

	if g.Config.KafkaEnabled {
		kafkaSink, err := output.NewKafkaSink(g.Config.KafkaBrokerList, g.Config.KafkaTopicPrefix)
		if err != nil {
			return nil, fmt.Errorf("creating kafka output: %w", err)
		}
		sinks = append(sinks, kafkaSink)
	}

	return sinks, nil
}
