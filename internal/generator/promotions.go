package generator

import (
	"fmt"
	"strings"

	"github.com/chrisdamba/foodataseed/internal/models"
	"github.com/lucsky/cuid"
)

func (g *Generator) generatePromotions() {
	g.Dataset.Promotions = make([]*models.Promotion, g.Config.PromotionCount)
	for i := range g.Dataset.Promotions {
		g.Dataset.Promotions[i] = g.createPromotion(i)
	}
}

func (g *Generator) createPromotion(id int) *models.Promotion {
	discountType := pick(g.Rng, models.DiscountTypes)

	// percentage discounts are small, fixed-amount discounts are in
	// currency units
	var value float64
	if discountType == models.DiscountTypePercentage {
		value = float64(g.Rng.Intn(41) + 10) // 10% to 50%
	} else {
		value = amount(g.Rng, 2, 25)
	}

	start := timeBetween(g.Rng, g.Config.StartDate, g.Config.EndDate)
	end := start.AddDate(0, 0, g.Rng.Intn(30)+1)

	return &models.Promotion{
		ID:            id,
		Code:          promoCode(),
		DiscountType:  discountType,
		DiscountValue: value,
		StartDate:     start,
		EndDate:       end,
		UsageLimit:    (g.Rng.Intn(10) + 1) * 100,
		MinOrderValue: amount(g.Rng, 10, 40),
	}
}

// promoCode builds a display-friendly unique code. The cuid slug guarantees
// no collisions within a run, which the schema's unique constraint needs.
func promoCode() string {
	return fmt.Sprintf("SAVE-%s", strings.ToUpper(cuid.Slug()))
}

// applyPromotions attaches one uniformly chosen promotion to a random ~20%
// subset of orders (the rate is configurable). Selection is independent per
// order, not a global shuffle. The discount is the promotion's percentage of
// the order total, or the fixed value capped at the total so it can never
// exceed what was paid.
func (g *Generator) applyPromotions() {
	for _, order := range g.Dataset.Orders {
		if !weightedBool(g.Rng, g.Config.PromotionRate) {
			continue
		}
		promo := pick(g.Rng, g.Dataset.Promotions)

		var discount float64
		if promo.DiscountType == models.DiscountTypePercentage {
			discount = round2(order.TotalAmount * promo.DiscountValue / 100)
		} else {
			discount = promo.DiscountValue
			if discount > order.TotalAmount {
				discount = order.TotalAmount
			}
		}

		g.Dataset.OrderPromotions = append(g.Dataset.OrderPromotions, &models.OrderPromotion{
			OrderID:        order.ID,
			PromotionID:    promo.ID,
			DiscountAmount: discount,
		})
		promo.TimesUsed++
	}
}
