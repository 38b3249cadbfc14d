package factories

import (
	"fmt"
	"math/rand"

	"github.com/chrisdamba/foodataseed/internal/models"
)

type CustomerFactory struct{}

func (cf *CustomerFactory) CreateCustomer(config *models.Config, id int, rng *rand.Rand) *models.Customer {
	name := fake.Person().Name()
	registered := dateBetween(rng, config.StartDate, config.EndDate)
	totalOrders := rng.Intn(61)

	return &models.Customer{
		ID:               id,
		Name:             name,
		Email:            uniqueEmail(name, id),
		Phone:            fake.Phone().Number(),
		Address:          fmt.Sprintf("%s %s, %s", fake.Address().BuildingNumber(), fake.Address().StreetName(), fake.Address().City()),
		Latitude:         coordinate(rng, config.MinLat, config.MaxLat),
		Longitude:        coordinate(rng, config.MinLng, config.MaxLng),
		RegistrationDate: registered,
		// last order never predates registration
		LastOrderDate: dateBetween(rng, registered, config.EndDate),
		TotalOrders:   totalOrders,
		Segment:       models.SegmentForOrderCount(totalOrders),
	}
}
