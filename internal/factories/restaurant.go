package factories

import (
	"fmt"
	"math/rand"

	"github.com/chrisdamba/foodataseed/internal/models"
)

type RestaurantFactory struct{}

func (rf *RestaurantFactory) CreateRestaurant(config *models.Config, id int, rng *rand.Rand) *models.Restaurant {
	return &models.Restaurant{
		ID:             id,
		Name:           fake.Company().Name(),
		CuisineType:    models.CuisineTypes[rng.Intn(len(models.CuisineTypes))],
		Address:        fmt.Sprintf("%s %s, %s", fake.Address().BuildingNumber(), fake.Address().StreetName(), fake.Address().City()),
		Latitude:       coordinate(rng, config.MinLat, config.MaxLat),
		Longitude:      coordinate(rng, config.MinLng, config.MaxLng),
		Rating:         float64(rng.Intn(41)+10) / 10, // 1.0 to 5.0 in steps of 0.1
		CreatedDate:    dateBetween(rng, config.StartDate, config.EndDate),
		OperatingHours: rf.createOperatingHours(rng),
		CommissionRate: float64(rng.Intn(16)+10) / 100, // 10% to 25%
		IsActive:       rng.Float64() < 0.9,
	}
}

// createOperatingHours builds the per-day schedule: each day has a 10% chance
// of being fully closed, otherwise opens in the morning window (07:00-11:00)
// and closes in the late evening window (21:00-23:00).
func (rf *RestaurantFactory) createOperatingHours(rng *rand.Rand) models.WeeklyHours {
	var hours models.WeeklyHours
	for day := range hours {
		if rng.Float64() < 0.1 {
			hours[day] = models.DayHours{Closed: true}
			continue
		}
		hours[day] = models.DayHours{
			Open:  fmt.Sprintf("%02d:00", rng.Intn(5)+7),
			Close: fmt.Sprintf("%02d:00", rng.Intn(3)+21),
		}
	}
	return hours
}
