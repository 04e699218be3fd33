package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"RealtySiteAPI/models"
	"RealtySiteAPI/store"
)

// FormsController captures the site's lead-generation forms as content
// store documents. Submissions are write-only: the site never reads
// them back.
type FormsController struct {
	store store.ContentStore
}

func NewFormsController(contentStore store.ContentStore) *FormsController {
	return &FormsController{store: contentStore}
}

func (fc *FormsController) SubmitLead(c echo.Context) error {
	var req models.LeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return fc.create(c, store.TypeLead, store.Fields{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"email":     req.Email,
		"phone":     req.Phone,
		"subject":   req.Subject,
		"message":   req.Message,
	})
}

func (fc *FormsController) SubmitPropertyInquiry(c echo.Context) error {
	var req models.PropertyInquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return fc.create(c, store.TypePropertyInquiry, store.Fields{
		"fullName":      req.FullName,
		"email":         req.Email,
		"phone":         req.Phone,
		"message":       req.Message,
		"propertyId":    req.PropertyID,
		"propertyTitle": req.PropertyTitle,
		"propertyPrice": req.PropertyPrice,
	})
}

func (fc *FormsController) SubmitHomeValuation(c echo.Context) error {
	var req models.HomeValuationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return fc.create(c, store.TypeHomeValuation, store.Fields{
		"propertyAddress": req.PropertyAddress,
		"city":            req.City,
		"zipCode":         req.ZipCode,
		"email":           req.Email,
	})
}

func (fc *FormsController) create(c echo.Context, docType string, fields store.Fields) error {
	fields["status"] = "new"
	fields["submittedAt"] = time.Now().UTC().Format(time.RFC3339)

	doc, err := fc.store.Create(c.Request().Context(), docType, fields)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Failed to submit form"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": doc.ID})
}
