package models

import "time"

// Order is a single transactional record. DeliveryTime and the three rating
// fields are set only when Status is "delivered"; everywhere else they stay
// nil and serialize to SQL NULL.
type Order struct {
	ID                 int        `json:"id"`
	CustomerID         int        `json:"customer_id"`
	RestaurantID       int        `json:"restaurant_id"`
	DriverID           int        `json:"driver_id"`
	OrderDate          time.Time  `json:"order_date"`
	DeliveryTime       *time.Time `json:"delivery_time,omitempty"`
	Status             string     `json:"status"`
	TotalAmount        float64    `json:"total_amount"`
	DeliveryFee        float64    `json:"delivery_fee"`
	PlatformFee        float64    `json:"platform_fee"`
	RestaurantEarnings float64    `json:"restaurant_earnings"`
	DriverEarnings     float64    `json:"driver_earnings"`
	PaymentMethod      string     `json:"payment_method"`
	FoodRating         *int       `json:"food_rating,omitempty"`
	DeliveryRating     *int       `json:"delivery_rating,omitempty"`
	OverallRating      *int       `json:"overall_rating,omitempty"`
}

// Delivered reports whether the order reached the terminal success status.
func (o *Order) Delivered() bool {
	return o.Status == OrderStatusDelivered
}
