package middleware

import "github.com/labstack/echo/v4"

// Context keys used to store authentication metadata.
const (
	ContextKeyVendorID   = "vendor_id"
	ContextKeyCustomerID = "customer_id"
	ContextKeyEmail      = "auth_email"
	ContextKeyRequestID  = "request_id"
)

// VendorIDFromContext extracts the vendor identity set by the vendor gate.
func VendorIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextKeyVendorID).(int64)
	return id, ok
}

// CustomerIDFromContext extracts the customer identity set by the customer gate.
func CustomerIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextKeyCustomerID).(int64)
	return id, ok
}
