package status

import "github.com/warehouse-kit/inventory-api/internal/models"

// Compute derives an item's status from its quantity and threshold.
//
// When manual is true the caller explicitly set the status and it is returned
// unchanged; a manual status stays authoritative until the next stock
// operation. On the automatic path the status is re-derived from quantity
// alone, which also clears a manual "restocking" marker once any stock
// operation fires.
func Compute(quantity, threshold int, current models.Status, manual bool) models.Status {
	if manual {
		return current
	}
	if quantity <= threshold {
		return models.StatusNeedRestock
	}
	return models.StatusNormal
}

// Parse returns the Status for s, or false if s is not one of the three
// recognized values.
func Parse(s string) (models.Status, bool) {
	switch models.Status(s) {
	case models.StatusNormal, models.StatusNeedRestock, models.StatusRestocking:
		return models.Status(s), true
	}
	return "", false
}
