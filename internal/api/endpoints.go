package api

// Backend routes consumed by the storefront.
const (
	EndpointGetCart        = "/cart"
	EndpointAddToCart      = "/cart/add"
	EndpointRemoveOneUnit  = "/cart/remove-single"
	EndpointRemoveCartLine = "/cart/remove"

	EndpointPlaceOrder   = "/orders/place"
	EndpointOrderByID    = "/orders/:id"
	EndpointMyOrders     = "/orders/my"
	EndpointCancelOrder  = "/orders/cancel"
	EndpointSubmitReturn = "/orders/return"
	EndpointSubmitReview = "/orders/review"

	EndpointListAddresses  = "/addresses"
	EndpointCreateAddress  = "/addresses"
	EndpointUpdateAddress  = "/addresses/:id"
	EndpointDeleteAddress  = "/addresses/:id"
	EndpointDefaultAddress = "/addresses/:id/default"

	EndpointSearchProducts = "/products/search"
)
