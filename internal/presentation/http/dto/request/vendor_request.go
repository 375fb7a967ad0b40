package request

// CreateVendorRequest represents a create vendor request. The performance
// metric fields are derived server-side and deliberately absent here.
type CreateVendorRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	ContactDetails string `json:"contact_details" binding:"required"`
	Address        string `json:"address" binding:"required"`
	VendorCode     string `json:"vendor_code" binding:"required,max=100"`
}

// UpdateVendorRequest represents an update vendor request
type UpdateVendorRequest struct {
	Name           *string `json:"name"`
	ContactDetails *string `json:"contact_details"`
	Address        *string `json:"address"`
	VendorCode     *string `json:"vendor_code"`
}
