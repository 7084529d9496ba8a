package order

import (
	"time"

	"greenbasket-client/internal/address"
	"greenbasket-client/internal/line"
)

// Status is the server-reported order state. The raw strings are the
// backend's vocabulary, including the underscore spelling.
type Status string

const (
	StatusConfirmed      Status = "Confirmed"
	StatusPackaging      Status = "Packaging"
	StatusPickedUp       Status = "Picked Up"
	StatusOutForDelivery Status = "Out_for_Delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

// TotalSteps is the length of the delivery progress track.
const TotalSteps = 5

// Step maps a status onto the 1..5 progress track. Unknown statuses
// render as step 1 rather than an empty track; Cancelled sits outside
// the track entirely and completes no steps.
func (s Status) Step() int {
	switch s {
	case StatusConfirmed:
		return 1
	case StatusPackaging:
		return 2
	case StatusPickedUp:
		return 3
	case StatusOutForDelivery:
		return 4
	case StatusDelivered:
		return 5
	case StatusCancelled:
		return 0
	default:
		return 1
	}
}

// Terminal reports whether the status can never change again.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// VariantRef names one cart line in a placement request by its variant
// identity, without prices; the server recomputes totals.
type VariantRef struct {
	ProductCode string  `json:"productCode"`
	WeightValue float64 `json:"weightValue"`
	WeightUnit  string  `json:"weightUnit"`
}

// PlaceRequest is the order-placement payload.
type PlaceRequest struct {
	Address          address.Address `json:"address"`
	SelectedVariants []VariantRef    `json:"selectedVariants"`
}

// Order is a placed order as returned by the backend.
type Order struct {
	OrderID       string           `json:"orderId"`
	Status        Status           `json:"orderStatus"`
	PaymentStatus string           `json:"paymentStatus"`
	OrderDate     time.Time        `json:"orderDate"`
	Items         []line.OrderItem `json:"items"`
	Address       address.Address  `json:"address"`

	TotalAmount   float64 `json:"totalAmount"`
	DiscountPrice float64 `json:"discountPrice"`
	AfterDiscount float64 `json:"afterDiscountAmount"`
	GST           float64 `json:"gst"`
	Shipping      float64 `json:"shippingCharge"`
}

// BuyAgainLines returns the order's lines in the shape the reorder
// checkout flow consumes.
func (o Order) BuyAgainLines() []line.OrderItem {
	return o.Items
}

// Attachment is one uploaded file in a return or review submission.
type Attachment struct {
	Name    string
	Content []byte
}

// ReturnRequest asks for a refund or replacement on a delivered order.
type ReturnRequest struct {
	OrderID string
	Reason  string
	Message string
	Images  []Attachment
	Video   *Attachment
}

// ReviewRequest rates a delivered order.
type ReviewRequest struct {
	OrderID string
	Rating  int
	Comment string
	Images  []Attachment
}
