package models

import "time"

type Customer struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	RegistrationDate time.Time `json:"registration_date"`
	LastOrderDate    time.Time `json:"last_order_date"` // never before RegistrationDate
	TotalOrders      int       `json:"total_orders"`
	Segment          string    `json:"customer_segment"`
}
