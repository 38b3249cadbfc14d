package output

import (
	"time"

	"github.com/chrisdamba/foodataseed/internal/models"
)

// Table is one entity collection flattened to column names and row values,
// ready for rendering. Row values are restricted to nil, string, bool, int,
// float64, Date, Timestamp and models.WeeklyHours.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Date renders as a DATE literal, Timestamp as a full TIMESTAMP literal.
type (
	Date      time.Time
	Timestamp time.Time
)

// TablesInImportOrder flattens the dataset into the fixed dependency order
// the external import step applies: independent entities first, then orders,
// then promotions, then the association table referencing both.
func TablesInImportOrder(ds *models.Dataset) []Table {
	return []Table{
		restaurantsTable(ds.Restaurants),
		customersTable(ds.Customers),
		driversTable(ds.Drivers),
		ordersTable(ds.Orders),
		promotionsTable(ds.Promotions),
		orderPromotionsTable(ds.OrderPromotions),
	}
}

func restaurantsTable(restaurants []*models.Restaurant) Table {
	t := Table{
		Name: "restaurants",
		Columns: []string{
			"id", "name", "cuisine_type", "address", "latitude", "longitude",
			"rating", "created_date", "operating_hours", "commission_rate", "is_active",
		},
	}
	for _, r := range restaurants {
		t.Rows = append(t.Rows, []any{
			r.ID, r.Name, r.CuisineType, r.Address, r.Latitude, r.Longitude,
			r.Rating, Date(r.CreatedDate), r.OperatingHours, r.CommissionRate, r.IsActive,
		})
	}
	return t
}

func customersTable(customers []*models.Customer) Table {
	t := Table{
		Name: "customers",
		Columns: []string{
			"id", "name", "email", "phone", "address", "latitude", "longitude",
			"registration_date", "last_order_date", "total_orders", "customer_segment",
		},
	}
	for _, c := range customers {
		t.Rows = append(t.Rows, []any{
			c.ID, c.Name, c.Email, c.Phone, c.Address, c.Latitude, c.Longitude,
			Date(c.RegistrationDate), Date(c.LastOrderDate), c.TotalOrders, c.Segment,
		})
	}
	return t
}

func driversTable(drivers []*models.Driver) Table {
	t := Table{
		Name: "drivers",
		Columns: []string{
			"id", "name", "email", "phone", "vehicle_type", "registration_date",
			"rating", "is_active", "current_latitude", "current_longitude", "last_location_update",
		},
	}
	for _, d := range drivers {
		t.Rows = append(t.Rows, []any{
			d.ID, d.Name, d.Email, d.Phone, d.VehicleType, Date(d.RegistrationDate),
			d.Rating, d.IsActive, d.CurrentLatitude, d.CurrentLongitude, Timestamp(d.LastLocationUpdate),
		})
	}
	return t
}

func ordersTable(orders []*models.Order) Table {
	t := Table{
		Name: "orders",
		Columns: []string{
			"id", "customer_id", "restaurant_id", "driver_id", "order_date",
			"delivery_time", "status", "total_amount", "delivery_fee", "platform_fee",
			"restaurant_earnings", "driver_earnings", "payment_method",
			"food_rating", "delivery_rating", "overall_rating",
		},
	}
	for _, o := range orders {
		t.Rows = append(t.Rows, []any{
			o.ID, o.CustomerID, o.RestaurantID, o.DriverID, Timestamp(o.OrderDate),
			optionalTimestamp(o.DeliveryTime), o.Status, o.TotalAmount, o.DeliveryFee, o.PlatformFee,
			o.RestaurantEarnings, o.DriverEarnings, o.PaymentMethod,
			optionalInt(o.FoodRating), optionalInt(o.DeliveryRating), optionalInt(o.OverallRating),
		})
	}
	return t
}

func promotionsTable(promotions []*models.Promotion) Table {
	t := Table{
		Name: "promotions",
		Columns: []string{
			"id", "code", "discount_type", "discount_value", "start_date", "end_date",
			"usage_limit", "times_used", "min_order_value",
		},
	}
	for _, p := range promotions {
		t.Rows = append(t.Rows, []any{
			p.ID, p.Code, p.DiscountType, p.DiscountValue, Date(p.StartDate), Date(p.EndDate),
			p.UsageLimit, p.TimesUsed, p.MinOrderValue,
		})
	}
	return t
}

func orderPromotionsTable(links []*models.OrderPromotion) Table {
	t := Table{
		Name:    "order_promotions",
		Columns: []string{"order_id", "promotion_id", "discount_amount"},
	}
	for _, l := range links {
		t.Rows = append(t.Rows, []any{l.OrderID, l.PromotionID, l.DiscountAmount})
	}
	return t
}

func optionalTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return Timestamp(*t)
}

func optionalInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
