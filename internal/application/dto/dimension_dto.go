package dto

// SalespersonDTO elemento de GET /api/salespeople.
type SalespersonDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerDTO elemento de GET /api/customers.
type CustomerDTO struct {
	CustomerNo BigInt `json:"customer_no"`
	Name       string `json:"name"`
}

// VendorDTO elemento de GET /api/vendors.
type VendorDTO struct {
	VndNo BigInt `json:"vnd_no"`
	Name  string `json:"name"`
}
