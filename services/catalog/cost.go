package catalog

import (
	"fmt"

	"carexyz/models"
)

// ComputeTotal returns duration multiplied by charge. Day durations use the
// hourly rate unchanged.
func ComputeTotal(duration int, charge float64) (float64, error) {
	if duration <= 0 {
		return 0, &models.Error{
			Kind:    models.ErrInvalidArgument,
			Message: fmt.Sprintf("duration must be positive, got %d", duration),
		}
	}
	return float64(duration) * charge, nil
}
