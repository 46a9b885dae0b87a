package handlers

import (
	"strings"

	"github.com/warehouse-kit/inventory-api/internal/status"
)

type ItemValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateItem(req ItemRequest) []ItemValidationError {
	errs := []ItemValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ItemValidationError{Field: "Name", Description: "Name is required"})
	}
	if req.Quantity < 0 {
		errs = append(errs, ItemValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if req.UnitPrice < 0 {
		errs = append(errs, ItemValidationError{Field: "UnitPrice", Description: "Unit price cannot be negative"})
	}
	if req.LowStockThreshold < 0 {
		errs = append(errs, ItemValidationError{Field: "LowStockThreshold", Description: "Low stock threshold cannot be negative"})
	}
	if req.Status != "" {
		if _, ok := status.Parse(req.Status); !ok {
			errs = append(errs, ItemValidationError{Field: "Status", Description: "Status must be normal, need_restock or restocking"})
		}
	}
	return errs
}

func validationMessage(errs []ItemValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Description
	}
	return strings.Join(parts, "; ")
}
