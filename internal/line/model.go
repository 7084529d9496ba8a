package line

import (
	"strconv"
	"time"
)

// VariantKey identifies one distinct purchasable line item: the same
// product in two different pack sizes is two lines.
type VariantKey string

// Key derives the composite identity key from the three variant
// components. Pure; uniqueness across a cart is the engine's job.
func Key(productCode string, weightValue float64, weightUnit string) VariantKey {
	v := strconv.FormatFloat(weightValue, 'f', -1, 64)
	return VariantKey(productCode + "_" + v + "_" + weightUnit)
}

// Item is the canonical purchasable line item shared by cart,
// checkout, wishlist and order origins. Every origin boundary maps its
// own field shape into this one; nothing downstream renames fields.
type Item struct {
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`

	WeightValue float64 `json:"variantWeightValue"`
	WeightUnit  string  `json:"variantWeightUnit"`

	Quantity int `json:"quantity"`

	// UnitPrice is the pre-discount price of one unit.
	UnitPrice       float64 `json:"variantPrice"`
	DiscountPercent float64 `json:"variantDiscount"`

	// Totals for the current quantity.
	TotalPrice    float64 `json:"totalPrice"`
	DiscountPrice float64 `json:"discountPrice"`
	AfterDiscount float64 `json:"afterDiscountAmount"`
	GST           float64 `json:"gst"`
	Shipping      float64 `json:"shippingCharge"`

	ImageURL string    `json:"imageUrl,omitempty"`
	AddedAt  time.Time `json:"addedDate,omitempty"`
}

func (it Item) Key() VariantKey {
	return Key(it.ProductCode, it.WeightValue, it.WeightUnit)
}

// Rescale returns the item at a new quantity with per-unit discount
// and GST rates preserved: totals are divided by the old quantity and
// re-multiplied, so no re-fetch is needed on a +/- click.
func Rescale(it Item, newQty int) Item {
	if newQty < 1 || it.Quantity < 1 {
		return it
	}

	unitDiscount := it.DiscountPrice / float64(it.Quantity)
	unitGST := it.GST / float64(it.Quantity)

	it.Quantity = newQty
	it.TotalPrice = it.UnitPrice * float64(newQty)
	it.DiscountPrice = unitDiscount * float64(newQty)
	it.AfterDiscount = it.TotalPrice - it.DiscountPrice
	it.GST = unitGST * float64(newQty)
	return it
}

// Reprice recomputes totals from the unit price and discount percent,
// used by checkout quantity changes where the percent is the source of
// truth.
func Reprice(it Item, newQty int) Item {
	if newQty < 1 {
		return it
	}

	it.Quantity = newQty
	it.TotalPrice = it.UnitPrice * float64(newQty)
	it.DiscountPrice = it.TotalPrice * it.DiscountPercent / 100
	it.AfterDiscount = it.TotalPrice - it.DiscountPrice
	return it
}
