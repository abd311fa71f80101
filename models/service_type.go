// models/service_type.go
package models

// Service is one entry of the care catalog. Charge is per hour in BDT.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Charge      float64 `json:"charge"`
}
