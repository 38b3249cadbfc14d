package models

import "time"

type Driver struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	VehicleType        string    `json:"vehicle_type"`
	RegistrationDate   time.Time `json:"registration_date"`
	Rating             float64   `json:"rating"`
	IsActive           bool      `json:"is_active"`
	CurrentLatitude    float64   `json:"current_latitude"`
	CurrentLongitude   float64   `json:"current_longitude"`
	LastLocationUpdate time.Time `json:"last_location_update"`
}
