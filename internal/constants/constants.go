package constants

const (
	APP_MAIN_STOREFRONT = "storefront"
	APP_CART_SERVICE    = "cart-service"
)
