package data

// Customer represents a customer record returned by the Asaas customers endpoint
type Customer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CpfCnpj    string `json:"cpfCnpj"`
	Complement string `json:"complement"`
	Email      string `json:"email,omitempty"`
	Deleted    bool   `json:"deleted,omitempty"`
}

// CustomerPage represents a single page of the Asaas customers collection
type CustomerPage struct {
	Object     string     `json:"object"`
	HasMore    bool       `json:"hasMore"`
	TotalCount int        `json:"totalCount"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
	Data       []Customer `json:"data"`
}

// CustomerRequest is the body sent when creating or updating a customer
type CustomerRequest struct {
	Name       string `json:"name"`
	CpfCnpj    string `json:"cpfCnpj"`
	Complement string `json:"complement"`
}

// UnitLabel returns the field carrying the customer's polo affiliation
func (c Customer) UnitLabel() string {
	return c.Complement
}
