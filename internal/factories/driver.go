package factories

import (
	"math/rand"
	"time"

	"github.com/chrisdamba/foodataseed/internal/models"
)

type DriverFactory struct{}

func (df *DriverFactory) CreateDriver(config *models.Config, id int, rng *rand.Rand) *models.Driver {
	name := fake.Person().Name()

	return &models.Driver{
		ID:               id,
		Name:             name,
		Email:            uniqueEmail(name, id),
		Phone:            fake.Phone().Number(),
		VehicleType:      models.VehicleTypes[rng.Intn(len(models.VehicleTypes))],
		RegistrationDate: dateBetween(rng, config.StartDate, config.EndDate),
		Rating:           float64(rng.Intn(41)+10) / 10,
		IsActive:         rng.Float64() < 0.9,
		CurrentLatitude:  coordinate(rng, config.MinLat, config.MaxLat),
		CurrentLongitude: coordinate(rng, config.MinLng, config.MaxLng),
		// drivers report their position frequently, so the last update is
		// always within the past day
		LastLocationUpdate: time.Now().Add(-time.Duration(rng.Int63n(int64(24 * time.Hour)))),
	}
}
