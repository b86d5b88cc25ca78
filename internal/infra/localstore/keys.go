package localstore

import "strings"

// Store keys. Each holds one JSON-serialized value.
const (
	KeyOrganization       = "storefront_organization"
	KeyProducts           = "storefront_products"
	KeyCatalogs           = "storefront_catalogs"
	KeyCustomers          = "storefront_customers"
	KeyCustomerCategories = "storefront_customer_categories"
	KeyCartHistory        = "storefront_cart_history"
	KeyOrders             = "storefront_orders"
	KeyCatalogAccess      = "storefront_customer_catalog_access"

	otpKeyPrefix      = "storefront_otp"
	verifiedKeyPrefix = "storefront_share_verified"
)

// OTPKey builds the composite challenge key for a (slug, email) pair.
func OTPKey(slug, email string) string {
	return strings.Join([]string{otpKeyPrefix, slug, email}, "_")
}

// VerifiedKey builds the composite verification-marker key for a (slug, email) pair.
func VerifiedKey(slug, email string) string {
	return strings.Join([]string{verifiedKeyPrefix, slug, email}, "_")
}
