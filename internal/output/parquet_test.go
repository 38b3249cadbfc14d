package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chrisdamba/foodataseed/internal/cloudwriter"
	"github.com/chrisdamba/foodataseed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCloudWriter struct {
	buf     bytes.Buffer
	key     string
	objects map[string][]byte
}

func (w *memoryCloudWriter) Write(data []byte) (int, error) {
	return w.buf.Write(data)
}

func (w *memoryCloudWriter) Close() error {
	w.objects[w.key] = w.buf.Bytes()
	return nil
}

type memoryCloudFactory struct {
	objects map[string][]byte
}

func (f *memoryCloudFactory) NewWriter(bucket, objectPath string) (cloudwriter.CloudWriter, error) {
	return &memoryCloudWriter{key: bucket + "/" + objectPath, objects: f.objects}, nil
}

func parquetDataset() *models.Dataset {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &models.Dataset{
		Restaurants: []*models.Restaurant{{
			ID: 0, Name: "Testaurant", CuisineType: "thai",
			Address: "1 Street", Latitude: 51.5, Longitude: -0.1,
			Rating: 4.2, CreatedDate: now, CommissionRate: 22.5, IsActive: true,
		}},
		Customers: []*models.Customer{{
			ID: 0, Name: "Test", Email: "t.0@example.com", Phone: "1",
			Address: "2 Street", Latitude: 51.5, Longitude: -0.1,
			RegistrationDate: now, LastOrderDate: now,
			TotalOrders: 3, Segment: models.SegmentNew,
		}},
		Drivers: []*models.Driver{{
			ID: 0, Name: "Dee", Email: "d.0@example.com", Phone: "2",
			VehicleType: "bicycle", RegistrationDate: now, Rating: 4.8,
			IsActive: true, CurrentLatitude: 51.5, CurrentLongitude: -0.1,
			LastLocationUpdate: now,
		}},
		Orders: []*models.Order{{
			ID: 0, OrderDate: now, Status: models.OrderStatusPlaced,
			TotalAmount: 20.5, DeliveryFee: 3, PlatformFee: 3.08,
			RestaurantEarnings: 14.35, DriverEarnings: 2.4, PaymentMethod: "card",
		}},
		Promotions: []*models.Promotion{{
			ID: 0, Code: "SAVE-TEST", DiscountType: models.DiscountTypeFixedAmount,
			DiscountValue: 5, StartDate: now, EndDate: now.AddDate(0, 0, 7),
			UsageLimit: 100, TimesUsed: 1, MinOrderValue: 10,
		}},
		OrderPromotions: []*models.OrderPromotion{{
			OrderID: 0, PromotionID: 0, DiscountAmount: 5,
		}},
	}
}

var parquetFileNames = []string{
	"restaurants.parquet", "customers.parquet", "drivers.parquet",
	"orders.parquet", "promotions.parquet", "order_promotions.parquet",
}

func TestParquetSinkWritesLocalFiles(t *testing.T) {
	sink := &ParquetSink{basePath: t.TempDir(), folder: "staging"}

	require.NoError(t, sink.WriteDataset(parquetDataset()))
	require.NoError(t, sink.Close())

	for _, name := range parquetFileNames {
		assert.FileExists(t, filepath.Join(sink.basePath, "staging", name))
	}
}

func TestParquetSinkUploadsToCloudDestination(t *testing.T) {
	factory := &memoryCloudFactory{objects: make(map[string][]byte)}
	base := filepath.Join(t.TempDir(), "never-created")
	sink := &ParquetSink{basePath: base, folder: "staging", cloud: factory, bucket: "seed-bucket"}

	require.NoError(t, sink.WriteDataset(parquetDataset()))
	require.NoError(t, sink.Close())

	for _, name := range parquetFileNames {
		data, ok := factory.objects["seed-bucket/"+filepath.Join("staging", name)]
		require.True(t, ok, "missing uploaded object for %s", name)
		assert.NotEmpty(t, data)
	}

	// with an s3 destination nothing lands on the local filesystem
	_, err := os.Stat(base)
	assert.True(t, os.IsNotExist(err))
}
