package catalog

import "errors"

var (
	ErrVendorNotFound  = errors.New("vendor not found")
	ErrServiceNotFound = errors.New("service not found")
)
