package generator

import (
	"time"

	"github.com/chrisdamba/foodataseed/internal/models"
	"github.com/schollz/progressbar/v3"
)

// Earnings proportions. They intentionally do not reconcile to 100% of the
// order total; the financial model is simplified.
const (
	platformFeeShare        = 0.15
	restaurantEarningsShare = 0.70
	driverEarningsShare     = 0.80
)

// generateOrders samples the configured number of orders. Customer,
// restaurant and driver are chosen independently and uniformly; no geographic
// or temporal plausibility is enforced between them.
func (g *Generator) generateOrders() {
	bar := progressbar.Default(int64(g.Config.OrderCount), "generating orders")

	g.Dataset.Orders = make([]*models.Order, g.Config.OrderCount)
	for i := range g.Dataset.Orders {
		g.Dataset.Orders[i] = g.createOrder(i)
		bar.Add(1)
	}
}

func (g *Generator) createOrder(id int) *models.Order {
	total := amount(g.Rng, g.Config.MinOrderAmount, g.Config.MaxOrderAmount)
	fee := amount(g.Rng, g.Config.MinDeliveryFee, g.Config.MaxDeliveryFee)

	order := &models.Order{
		ID:                 id,
		CustomerID:         g.Rng.Intn(len(g.Dataset.Customers)),
		RestaurantID:       g.Rng.Intn(len(g.Dataset.Restaurants)),
		DriverID:           g.Rng.Intn(len(g.Dataset.Drivers)),
		OrderDate:          timeBetween(g.Rng, g.Config.StartDate, g.Config.EndDate),
		Status:             pick(g.Rng, models.OrderStatuses),
		TotalAmount:        total,
		DeliveryFee:        fee,
		PlatformFee:        round2(total * platformFeeShare),
		RestaurantEarnings: round2(total * restaurantEarningsShare),
		DriverEarnings:     round2(fee * driverEarningsShare),
		PaymentMethod:      pick(g.Rng, models.PaymentMethods),
	}

	if order.Delivered() {
		// strictly after the order, within the same-day-to-next-day horizon
		delivered := order.OrderDate.Add(time.Duration(30+g.Rng.Intn(91)) * time.Minute)
		order.DeliveryTime = &delivered

		food := ratingBetween(g.Rng, 1, 5)
		delivery := ratingBetween(g.Rng, 1, 5)
		overall := ratingBetween(g.Rng, 1, 5)
		order.FoodRating = &food
		order.DeliveryRating = &delivery
		order.OverallRating = &overall
	}

	return order
}
