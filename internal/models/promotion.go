package models

import "time"

type Promotion struct {
	ID            int       `json:"id"`
	Code          string    `json:"code"` // unique within a run
	DiscountType  string    `json:"discount_type"`
	DiscountValue float64   `json:"discount_value"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"` // at most 30 days after StartDate
	UsageLimit    int       `json:"usage_limit"`
	TimesUsed     int       `json:"times_used"`
	MinOrderValue float64   `json:"min_order_value"`
}

// OrderPromotion links an order to the promotion applied to it. The composite
// (OrderID, PromotionID) is unique because at most one promotion is attached
// per order.
type OrderPromotion struct {
	OrderID        int     `json:"order_id"`
	PromotionID    int     `json:"promotion_id"`
	DiscountAmount float64 `json:"discount_amount"` // capped at the order's total
}
