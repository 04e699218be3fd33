package models

// Form-capture submissions. Each becomes one document in the content
// store with status "new" and a submittedAt timestamp; the site only
// ever writes these, it never reads them back.

type LeadRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message" validate:"required"`
}

type PropertyInquiryRequest struct {
	FullName      string  `json:"fullName" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone"`
	Message       string  `json:"message" validate:"required"`
	PropertyID    string  `json:"propertyId" validate:"required"`
	PropertyTitle string  `json:"propertyTitle"`
	PropertyPrice float64 `json:"propertyPrice"`
}

type HomeValuationRequest struct {
	PropertyAddress string `json:"propertyAddress" validate:"required"`
	City            string `json:"city" validate:"required"`
	ZipCode         string `json:"zipCode" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
}
