package models

// Dataset is the full output of one generation pass, collections in the
// order the import step must apply them.
type Dataset struct {
	Restaurants     []*Restaurant
	Customers       []*Customer
	Drivers         []*Driver
	Orders          []*Order
	Promotions      []*Promotion
	OrderPromotions []*OrderPromotion
}
