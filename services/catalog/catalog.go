// Package catalog holds the fixed list of care services and their hourly charges.
package catalog

import "carexyz/models"

// DefaultCharge is charged for service ids the catalog does not know.
const DefaultCharge = 500

var services = []models.Service{
	{ID: "baby-care", Name: "Baby Care", Charge: 500, Description: "Professional and caring babysitting services for your little ones"},
	{ID: "elderly-care", Name: "Elderly Care", Charge: 600, Description: "Compassionate care and companionship for elderly family members"},
	{ID: "sick-care", Name: "Sick People Care", Charge: 700, Description: "Specialized care for sick family members at home"},
	{ID: "pet-care", Name: "Pet Care", Charge: 400, Description: "Loving care for your pets while you are away"},
	{ID: "house-cleaning", Name: "House Cleaning", Charge: 450, Description: "Thorough cleaning services to keep your home spotless"},
	{ID: "cooking-service", Name: "Cooking Service", Charge: 550, Description: "Healthy home-cooked meals prepared by experienced cooks"},
	{ID: "laundry-service", Name: "Laundry Service", Charge: 350, Description: "Washing, drying and ironing handled at your doorstep"},
	{ID: "gardening-service", Name: "Gardening Service", Charge: 500, Description: "Garden upkeep, planting and lawn maintenance"},
	{ID: "tutoring-service", Name: "Tutoring Service", Charge: 600, Description: "Qualified tutors for school and college subjects"},
	{ID: "physiotherapy", Name: "Physiotherapy", Charge: 800, Description: "Certified physiotherapists for rehabilitation at home"},
	{ID: "nursing-care", Name: "Nursing Care", Charge: 900, Description: "Registered nurses providing medical care at home"},
	{ID: "post-surgery-care", Name: "Post-Surgery Care", Charge: 1000, Description: "Recovery support and wound care after surgery"},
	{ID: "mental-health-support", Name: "Mental Health Support", Charge: 850, Description: "Emotional support and counselling from trained professionals"},
	{ID: "child-development-care", Name: "Child Development Care", Charge: 650, Description: "Activities and guidance for healthy child development"},
	{ID: "special-needs-care", Name: "Special Needs Care", Charge: 750, Description: "Trained caregivers for people with special needs"},
	{ID: "home-maintenance", Name: "Home Maintenance", Charge: 600, Description: "Minor repairs and upkeep around the house"},
	{ID: "grocery-shopping", Name: "Grocery Shopping", Charge: 300, Description: "Grocery runs and essentials delivered to your home"},
	{ID: "medication-management", Name: "Medication Management", Charge: 500, Description: "Medication reminders and dosage tracking"},
	{ID: "transportation-service", Name: "Transportation Service", Charge: 400, Description: "Escorted rides to appointments and errands"},
	{ID: "companionship-service", Name: "Companionship Service", Charge: 450, Description: "Friendly companions for conversation and daily activities"},
	{ID: "respite-care", Name: "Respite Care", Charge: 700, Description: "Short-term relief for primary family caregivers"},
	{ID: "palliative-care", Name: "Palliative Care", Charge: 1100, Description: "Comfort-focused care for serious illness"},
	{ID: "emergency-care", Name: "Emergency Care", Charge: 1200, Description: "Rapid-response caregivers for urgent situations"},
}

var byID = func() map[string]models.Service {
	m := make(map[string]models.Service, len(services))
	for _, s := range services {
		m[s.ID] = s
	}
	return m
}()

// Lookup returns the service registered under id.
func Lookup(id string) (models.Service, bool) {
	s, ok := byID[id]
	return s, ok
}

// Charge returns the hourly charge for id, or DefaultCharge when id is unknown.
func Charge(id string) float64 {
	if s, ok := byID[id]; ok {
		return s.Charge
	}
	return DefaultCharge
}

// Name returns the display name for id, or id itself when unknown.
func Name(id string) string {
	if s, ok := byID[id]; ok {
		return s.Name
	}
	return id
}

// All returns a copy of the catalog in display order.
func All() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}
