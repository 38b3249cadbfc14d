package models

import "time"

type Restaurant struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	CuisineType    string      `json:"cuisine_type"`
	Address        string      `json:"address"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	Rating         float64     `json:"rating"`
	CreatedDate    time.Time   `json:"created_date"`
	OperatingHours WeeklyHours `json:"operating_hours"`
	CommissionRate float64     `json:"commission_rate"` // percentage taken by the platform
	IsActive       bool        `json:"is_active"`
}
