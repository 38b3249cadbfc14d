package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chrisdamba/foodataseed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Seed:              42,
		StartDate:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		RestaurantCount:   3,
		CustomerCount:     5,
		DriverCount:       4,
		OrderCount:        10,
		PromotionCount:    2,
		MinLat:            51.35,
		MaxLat:            51.65,
		MinLng:            -0.35,
		MaxLng:            0.12,
		MinOrderAmount:    8,
		MaxOrderAmount:    85,
		MinDeliveryFee:    1.5,
		MaxDeliveryFee:    7.5,
		PromotionRate:     0.2,
		OutputFolder:      "staging",
		OutputFormat:      "sql",
		OutputDestination: "local",
	}
}

func generated(t *testing.T, cfg *models.Config) *models.Dataset {
	t.Helper()
	g := NewGenerator(cfg)
	g.initializeEntities()
	g.generateOrders()
	g.generatePromotions()
	g.applyPromotions()
	return g.Dataset
}

func TestGeneratedCounts(t *testing.T) {
	cfg := testConfig()
	ds := generated(t, cfg)

	assert.Len(t, ds.Restaurants, cfg.RestaurantCount)
	assert.Len(t, ds.Customers, cfg.CustomerCount)
	assert.Len(t, ds.Drivers, cfg.DriverCount)
	assert.Len(t, ds.Orders, cfg.OrderCount)
	assert.Len(t, ds.Promotions, cfg.PromotionCount)
}

func TestSequentialIdentifiers(t *testing.T) {
	ds := generated(t, testConfig())

	for i, r := range ds.Restaurants {
		assert.Equal(t, i, r.ID)
	}
	for i, c := range ds.Customers {
		assert.Equal(t, i, c.ID)
	}
	for i, d := range ds.Drivers {
		assert.Equal(t, i, d.ID)
	}
	for i, o := range ds.Orders {
		assert.Equal(t, i, o.ID)
	}
	for i, p := range ds.Promotions {
		assert.Equal(t, i, p.ID)
	}
}

func TestOrderForeignKeysInRange(t *testing.T) {
	cfg := testConfig()
	ds := generated(t, cfg)

	for _, o := range ds.Orders {
		assert.GreaterOrEqual(t, o.CustomerID, 0)
		assert.Less(t, o.CustomerID, cfg.CustomerCount)
		assert.GreaterOrEqual(t, o.RestaurantID, 0)
		assert.Less(t, o.RestaurantID, cfg.RestaurantCount)
		assert.GreaterOrEqual(t, o.DriverID, 0)
		assert.Less(t, o.DriverID, cfg.DriverCount)
	}
}

func TestDeliveredOrderInvariants(t *testing.T) {
	cfg := testConfig()
	cfg.OrderCount = 500 // enough to hit every status
	ds := generated(t, cfg)

	deliveredSeen := false
	for _, o := range ds.Orders {
		assert.Contains(t, models.OrderStatuses, o.Status)

		if o.Delivered() {
			deliveredSeen = true
			require.NotNil(t, o.DeliveryTime)
			assert.True(t, o.DeliveryTime.After(o.OrderDate),
				"delivery %s not after order %s", o.DeliveryTime, o.OrderDate)
			assert.LessOrEqual(t, o.DeliveryTime.Sub(o.OrderDate), 24*time.Hour)

			for _, rating := range []*int{o.FoodRating, o.DeliveryRating, o.OverallRating} {
				require.NotNil(t, rating)
				assert.GreaterOrEqual(t, *rating, 1)
				assert.LessOrEqual(t, *rating, 5)
			}
		} else {
			assert.Nil(t, o.DeliveryTime)
			assert.Nil(t, o.FoodRating)
			assert.Nil(t, o.DeliveryRating)
			assert.Nil(t, o.OverallRating)
		}
	}
	assert.True(t, deliveredSeen)
}

func TestEarningsDerivations(t *testing.T) {
	cfg := testConfig()
	cfg.OrderCount = 200
	ds := generated(t, cfg)

	for _, o := range ds.Orders {
		assert.Equal(t, round2(o.TotalAmount*0.15), o.PlatformFee)
		assert.Equal(t, round2(o.TotalAmount*0.70), o.RestaurantEarnings)
		assert.Equal(t, round2(o.DeliveryFee*0.80), o.DriverEarnings)

		assert.GreaterOrEqual(t, o.TotalAmount, cfg.MinOrderAmount)
		assert.LessOrEqual(t, o.TotalAmount, cfg.MaxOrderAmount)
		assert.GreaterOrEqual(t, o.DeliveryFee, cfg.MinDeliveryFee)
		assert.LessOrEqual(t, o.DeliveryFee, cfg.MaxDeliveryFee)
	}
}

func TestPromotionCodesUnique(t *testing.T) {
	cfg := testConfig()
	cfg.PromotionCount = 50
	ds := generated(t, cfg)

	seen := make(map[string]bool)
	for _, p := range ds.Promotions {
		require.False(t, seen[p.Code], "duplicate promotion code %s", p.Code)
		seen[p.Code] = true

		assert.Contains(t, models.DiscountTypes, p.DiscountType)
		assert.True(t, p.EndDate.After(p.StartDate))
		assert.LessOrEqual(t, p.EndDate.Sub(p.StartDate), 30*24*time.Hour)
	}
}

func TestAppliedDiscountsNeverExceedTotal(t *testing.T) {
	cfg := testConfig()
	cfg.OrderCount = 500
	cfg.PromotionRate = 1.0
	ds := generated(t, cfg)

	require.Len(t, ds.OrderPromotions, cfg.OrderCount)
	for _, link := range ds.OrderPromotions {
		order := ds.Orders[link.OrderID]
		assert.LessOrEqual(t, link.DiscountAmount, order.TotalAmount)
		assert.GreaterOrEqual(t, link.PromotionID, 0)
		assert.Less(t, link.PromotionID, cfg.PromotionCount)
	}

	// usage counters reflect the association pass
	total := 0
	for _, p := range ds.Promotions {
		total += p.TimesUsed
	}
	assert.Equal(t, len(ds.OrderPromotions), total)
}

func TestFixedDiscountCappedAtOrderTotal(t *testing.T) {
	g := NewGenerator(testConfig())
	g.Config.PromotionRate = 1.0
	g.Dataset.Orders = []*models.Order{{ID: 0, TotalAmount: 30}}
	g.Dataset.Promotions = []*models.Promotion{{
		ID:            0,
		Code:          "SAVE-TEST",
		DiscountType:  models.DiscountTypeFixedAmount,
		DiscountValue: 50,
	}}

	g.applyPromotions()

	require.Len(t, g.Dataset.OrderPromotions, 1)
	assert.Equal(t, 30.0, g.Dataset.OrderPromotions[0].DiscountAmount)
}

func TestPercentageDiscountComputation(t *testing.T) {
	g := NewGenerator(testConfig())
	g.Config.PromotionRate = 1.0
	g.Dataset.Orders = []*models.Order{{ID: 0, TotalAmount: 50}}
	g.Dataset.Promotions = []*models.Promotion{{
		ID:            0,
		Code:          "SAVE-PCT",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 20,
	}}

	g.applyPromotions()

	require.Len(t, g.Dataset.OrderPromotions, 1)
	assert.Equal(t, 10.0, g.Dataset.OrderPromotions[0].DiscountAmount)
}

func TestRunWritesFilesInScenario(t *testing.T) {
	cfg := testConfig()
	cfg.OutputPath = t.TempDir()

	g := NewGenerator(cfg)
	require.NoError(t, g.Run())

	dir := filepath.Join(cfg.OutputPath, cfg.OutputFolder)
	for _, name := range []string{"restaurants", "customers", "drivers", "orders", "promotions", "order_promotions"} {
		_, err := os.Stat(filepath.Join(dir, name+".sql"))
		assert.NoError(t, err, "missing %s.sql", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "orders.sql"))
	require.NoError(t, err)
	// one tuple per order, each on its own line
	assert.Equal(t, 10, strings.Count(string(data), "\n  ("))
	assert.True(t, strings.HasPrefix(string(data), "INSERT INTO orders ("))
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.OutputPath = t.TempDir()
	cfg.OrderCount = 0

	err := NewGenerator(cfg).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
