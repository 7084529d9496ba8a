package line

import "time"

// CartRow is the cart endpoint's line shape.
type CartRow struct {
	ProductCode   string  `json:"productCode"`
	ProductName   string  `json:"productName"`
	WeightValue   float64 `json:"variantWeightValue"`
	WeightUnit    string  `json:"variantWeightUnit"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"variantPrice"`
	Discount      float64 `json:"variantDiscount"`
	TotalPrice    float64 `json:"totalPrice"`
	DiscountPrice float64 `json:"discountPrice"`
	AfterDiscount float64 `json:"afterDiscountAmount"`
	GST           float64 `json:"gst"`
	Shipping      float64 `json:"shippingCharge"`
	ImageURL      string  `json:"imageUrl"`
}

func FromCartRow(r CartRow) Item {
	return Item{
		ProductCode:     r.ProductCode,
		ProductName:     r.ProductName,
		WeightValue:     r.WeightValue,
		WeightUnit:      r.WeightUnit,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		DiscountPercent: r.Discount,
		TotalPrice:      r.TotalPrice,
		DiscountPrice:   r.DiscountPrice,
		AfterDiscount:   r.AfterDiscount,
		GST:             r.GST,
		Shipping:        r.Shipping,
		ImageURL:        r.ImageURL,
	}
}

// BuyNow is the product-page origin: a chosen variant plus quantity,
// no server-side totals yet.
type BuyNow struct {
	ProductCode     string
	ProductName     string
	WeightValue     float64
	WeightUnit      string
	UnitPrice       float64
	DiscountPercent float64
	Quantity        int
	ImageURL        string
}

func FromBuyNow(b BuyNow, now time.Time) Item {
	qty := b.Quantity
	if qty < 1 {
		qty = 1
	}

	it := Item{
		ProductCode:     b.ProductCode,
		ProductName:     b.ProductName,
		WeightValue:     b.WeightValue,
		WeightUnit:      b.WeightUnit,
		UnitPrice:       b.UnitPrice,
		DiscountPercent: b.DiscountPercent,
		Quantity:        qty,
		ImageURL:        b.ImageURL,
		AddedAt:         now,
	}
	return Reprice(it, qty)
}

// WishlistEntry is the wishlist origin; weight fields arrive without
// the "variant" prefix there.
type WishlistEntry struct {
	ProductCode     string  `json:"productCode"`
	ProductName     string  `json:"productName"`
	WeightValue     float64 `json:"weightValue"`
	WeightUnit      string  `json:"weightUnit"`
	UnitPrice       float64 `json:"price"`
	DiscountPercent float64 `json:"discount"`
	ImageURL        string  `json:"imageUrl"`
}

func FromWishlist(w WishlistEntry, qty int, now time.Time) Item {
	return FromBuyNow(BuyNow{
		ProductCode:     w.ProductCode,
		ProductName:     w.ProductName,
		WeightValue:     w.WeightValue,
		WeightUnit:      w.WeightUnit,
		UnitPrice:       w.UnitPrice,
		DiscountPercent: w.DiscountPercent,
		Quantity:        qty,
		ImageURL:        w.ImageURL,
	}, now)
}

// OrderItem is the placed-order line shape used by the reorder flow.
// It carries totals only, so the unit price is derived.
type OrderItem struct {
	ProductCode     string  `json:"productCode"`
	ProductName     string  `json:"productName"`
	WeightValue     float64 `json:"variantWeightValue"`
	WeightUnit      string  `json:"variantWeightUnit"`
	Quantity        int     `json:"quantity"`
	TotalAmount     float64 `json:"totalAmount"`
	DiscountPercent float64 `json:"discountPercentage"`
	DiscountPrice   float64 `json:"discountPrice"`
	AfterDiscount   float64 `json:"afterDiscountAmount"`
	ImageURL        string  `json:"imageUrl"`
}

func FromOrderItem(o OrderItem, now time.Time) Item {
	qty := o.Quantity
	if qty < 1 {
		qty = 1
	}

	unitPrice := 0.0
	if o.TotalAmount > 0 {
		unitPrice = o.TotalAmount / float64(qty)
	}

	it := Item{
		ProductCode:     o.ProductCode,
		ProductName:     o.ProductName,
		WeightValue:     o.WeightValue,
		WeightUnit:      o.WeightUnit,
		Quantity:        qty,
		UnitPrice:       unitPrice,
		DiscountPercent: o.DiscountPercent,
		TotalPrice:      unitPrice * float64(qty),
		DiscountPrice:   o.DiscountPrice,
		AfterDiscount:   o.AfterDiscount,
		ImageURL:        o.ImageURL,
		AddedAt:         now,
	}

	// Older orders may predate the discount fields; fall back to the
	// percent when the stored totals are absent.
	if it.DiscountPrice == 0 && it.DiscountPercent > 0 {
		it.DiscountPrice = it.TotalPrice * it.DiscountPercent / 100
	}
	if it.AfterDiscount == 0 {
		it.AfterDiscount = it.TotalPrice - it.DiscountPrice
	}

	return it
}
