package handlers

import "carexyz/utils"

// HandlerBundle groups the endpoint handlers mounted by the router.
type HandlerBundle struct {
	// Tokens verifies bearer tokens on protected groups.
	Tokens *utils.TokenIssuer

	Booking *BookingHandler
	Admin   *AdminHandler
	Catalog *CatalogHandler
	Auth    *AuthHandler
}
