package output

import (
	"strings"
	"testing"
	"time"

	"github.com/chrisdamba/foodataseed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLLiteral(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil is NULL not empty string", nil, "NULL"},
		{"plain string", "card", "'card'"},
		{"embedded quote doubled", "O'Neill's Diner", "'O''Neill''s Diner'"},
		{"bool true", true, "TRUE"},
		{"bool false", false, "FALSE"},
		{"int", 42, "42"},
		{"float keeps precision", 51.512345, "51.512345"},
		{"money", 30.55, "30.55"},
		{"date", Date(ts), "'2025-03-14'"},
		{"timestamp", Timestamp(ts), "'2025-03-14 15:09:26'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqlLiteral(tt.in))
		})
	}
}

func TestSQLLiteralOperatingHours(t *testing.T) {
	var hours models.WeeklyHours
	for i := range hours {
		hours[i] = models.DayHours{Open: "09:00", Close: "22:00"}
	}

	lit := sqlLiteral(hours)
	assert.True(t, strings.HasPrefix(lit, `'{"monday"`))
	assert.True(t, strings.HasSuffix(lit, `}'`))
}

func TestBuildInsert(t *testing.T) {
	table := Table{
		Name:    "customers",
		Columns: []string{"id", "name", "email"},
		Rows: [][]any{
			{0, "Anna O'Hara", "anna.0@example.com"},
			{1, "Ben", nil},
		},
	}

	stmt := BuildInsert(table)
	want := "INSERT INTO customers (id, name, email) VALUES\n" +
		"  (0, 'Anna O''Hara', 'anna.0@example.com'),\n" +
		"  (1, 'Ben', NULL);\n"
	assert.Equal(t, want, stmt)
}

func TestBuildInsertEmptyTable(t *testing.T) {
	stmt := BuildInsert(Table{Name: "order_promotions", Columns: []string{"order_id"}})
	assert.Equal(t, "-- no rows generated for order_promotions\n", stmt)
}

func TestTablesInImportOrder(t *testing.T) {
	ds := &models.Dataset{}
	tables := TablesInImportOrder(ds)

	names := make([]string, len(tables))
	for i, table := range tables {
		names[i] = table.Name
	}
	assert.Equal(t, []string{"restaurants", "customers", "drivers", "orders", "promotions", "order_promotions"}, names)
}

func TestOrdersTableOptionalColumns(t *testing.T) {
	delivered := time.Date(2025, 2, 1, 19, 30, 0, 0, time.UTC)
	rating := 4

	orders := []*models.Order{
		{
			ID:                 0,
			OrderDate:          delivered.Add(-45 * time.Minute),
			Status:             models.OrderStatusCancelled,
			TotalAmount:        20.5,
			DeliveryFee:        3,
			PlatformFee:        3.08,
			RestaurantEarnings: 14.35,
			DriverEarnings:     2.4,
			PaymentMethod:      "cash",
		},
		{
			ID:                 1,
			OrderDate:          delivered.Add(-30 * time.Minute),
			DeliveryTime:       &delivered,
			Status:             models.OrderStatusDelivered,
			TotalAmount:        41,
			DeliveryFee:        4,
			PlatformFee:        6.15,
			RestaurantEarnings: 28.7,
			DriverEarnings:     3.2,
			PaymentMethod:      "card",
			FoodRating:         &rating,
			DeliveryRating:     &rating,
			OverallRating:      &rating,
		},
	}

	table := ordersTable(orders)
	require.Len(t, table.Rows, 2)

	stmt := BuildInsert(table)
	lines := strings.Split(strings.TrimSuffix(stmt, "\n"), "\n")
	require.Len(t, lines, 3)

	// cancelled order renders NULLs for delivery time and all three ratings
	assert.Equal(t, 4, strings.Count(lines[1], "NULL"))
	// delivered order has none
	assert.NotContains(t, lines[2], "NULL")
	assert.Contains(t, lines[2], "'2025-02-01 19:30:00'")
}

func TestSQLFileSinkWritesAllFiles(t *testing.T) {
	cfg := &models.Config{
		OutputPath:        t.TempDir(),
		OutputFolder:      "staging",
		OutputDestination: "local",
	}

	sink, err := NewSQLFileSink(cfg)
	require.NoError(t, err)

	ds := &models.Dataset{
		Customers: []*models.Customer{{
			ID: 0, Name: "Test", Email: "t.0@example.com", Phone: "1",
			Address: "1 Street", Latitude: 51.5, Longitude: -0.1,
			RegistrationDate: time.Now(), LastOrderDate: time.Now(),
			TotalOrders: 3, Segment: models.SegmentNew,
		}},
	}
	require.NoError(t, sink.WriteDataset(ds))
	require.NoError(t, sink.Close())

	for _, name := range []string{"restaurants", "customers", "drivers", "orders", "promotions", "order_promotions"} {
		assert.FileExists(t, cfg.OutputPath+"/staging/"+name+".sql")
	}
}
