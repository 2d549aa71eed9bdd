package routes

import (
	"monbillet/ratelim"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddAuthRoutes(router, rateLimiter)
	AddCatalogRoutes(router, rateLimiter)
	AddBookingRoutes(router, rateLimiter)
	AddTicketRoutes(router, rateLimiter)
	AddRentalRoutes(router, rateLimiter)
	AddCompanyRoutes(router, rateLimiter)
	AddAdminRoutes(router, rateLimiter)
	AddAssistantRoutes(router, rateLimiter)
	AddProfileRoutes(router, rateLimiter)
}
