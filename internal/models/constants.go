package models

const (
	OrderStatusPlaced    = "placed"
	OrderStatusAccepted  = "accepted"
	OrderStatusPreparing = "preparing"
	OrderStatusPickedUp  = "picked_up"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	DiscountTypePercentage  = "percentage"
	DiscountTypeFixedAmount = "fixed_amount"

	SegmentPremium = "premium"
	SegmentRegular = "regular"
	SegmentNew     = "new"
)

// Lifetime order counts at which a customer moves up a segment.
const (
	PremiumOrderThreshold = 40
	RegularOrderThreshold = 20
)

var (
	OrderStatuses = []string{
		OrderStatusPlaced,
		OrderStatusAccepted,
		OrderStatusPreparing,
		OrderStatusPickedUp,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}

	CuisineTypes = []string{"Italian", "Indian", "Chinese", "Thai", "Japanese", "Mexican", "American", "Turkish", "Greek", "Vietnamese", "Fast Food", "Street Food"}

	VehicleTypes = []string{"bicycle", "motorbike", "scooter", "car"}

	PaymentMethods = []string{"card", "cash", "wallet"}

	DiscountTypes = []string{DiscountTypePercentage, DiscountTypeFixedAmount}
)

// SegmentForOrderCount maps a lifetime order count to a customer segment.
func SegmentForOrderCount(orders int) string {
	switch {
	case orders >= PremiumOrderThreshold:
		return SegmentPremium
	case orders >= RegularOrderThreshold:
		return SegmentRegular
	default:
		return SegmentNew
	}
}
