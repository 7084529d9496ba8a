package address

// Address is a shipping destination. The backend assigns AddressID
// and enforces that at most one address per user is the default.
type Address struct {
	AddressID    string `json:"addressId"`
	UserName     string `json:"userName"`
	UserNumber   string `json:"userNumber"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Default      bool   `json:"default"`
}

// Complete reports whether the address has the fields needed to show
// it. Incomplete addresses are filtered from display, not deleted.
func (a Address) Complete() bool {
	return a.State != "" && a.City != "" && a.PostalCode != ""
}

// ConfirmKind is the destructive-action gate state: delete and
// set-default both require an explicit confirmation step.
type ConfirmKind int

const (
	ConfirmNone ConfirmKind = iota
	ConfirmDelete
	ConfirmDefault
)

// Confirmation is the pending destructive action, if any.
type Confirmation struct {
	Kind      ConfirmKind
	AddressID string
}
