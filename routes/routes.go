package routes

import (
	"net/http"

	"monbillet/admin"
	"monbillet/assistant"
	"monbillet/auth"
	"monbillet/bookingflow"
	"monbillet/catalog"
	"monbillet/company"
	"monbillet/middleware"
	"monbillet/models"
	"monbillet/profile"
	"monbillet/ratelim"
	"monbillet/rental"
	"monbillet/seatmap"
	"monbillet/tickets"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/vehicles/*filepath", http.Dir("static/vehicles"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
}

func AddCatalogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/catalog/cities", rl.Limit(catalog.GetCities))
	router.GET("/api/catalog/communes", rl.Limit(catalog.GetCommunes))
	router.GET("/api/catalog/companies", rl.Limit(catalog.GetCompanies))
	router.GET("/api/catalog/trips/:tripid", rl.Limit(catalog.GetTrip))
	router.POST("/api/catalog/trips/search", rl.Limit(catalog.SearchTrips))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/booking/trips/:tripid/seats", rl.Limit(seatmap.GetTripSeats))

	router.GET("/api/booking/session", middleware.Authenticate(bookingflow.GetSession))
	router.POST("/api/booking/session/trip", middleware.Authenticate(bookingflow.SelectTrip))
	router.POST("/api/booking/session/seats/toggle", middleware.Authenticate(bookingflow.ToggleSeat))
	router.POST("/api/booking/session/seats/gender", middleware.Authenticate(bookingflow.SetSeatGender))
	router.POST("/api/booking/session/seats/confirm", middleware.Authenticate(bookingflow.ConfirmSeats))
	router.POST("/api/booking/session/passengers", middleware.Authenticate(bookingflow.SetPassengers))
	router.POST("/api/booking/session/payment/method", middleware.Authenticate(bookingflow.ChoosePayment))
	router.POST("/api/booking/session/payment/confirm", rl.Limit(middleware.Authenticate(bookingflow.ConfirmPayment)))
	router.POST("/api/booking/session/back", middleware.Authenticate(bookingflow.Back))
}

func AddTicketRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/tickets", middleware.Authenticate(tickets.GetMyTickets))
	router.GET("/api/tickets/:ticketid", middleware.Authenticate(tickets.GetTicket))
	router.POST("/api/tickets/:ticketid/cancel", rl.Limit(middleware.Authenticate(tickets.CancelTicket)))
	router.GET("/api/tickets/:ticketid/qr", middleware.Authenticate(tickets.GetTicketQR))
	router.GET("/api/tickets/:ticketid/print", rl.Limit(middleware.Authenticate(tickets.PrintTicket)))

	scan := middleware.Chain(middleware.Authenticate,
		middleware.RequireRoles(models.RoleCompanyAdmin, models.RoleGlobalAdmin))
	router.POST("/api/ticket/scan", rl.Limit(scan(tickets.ScanTicket)))
}

func AddRentalRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/rental/vehicles", rl.Limit(rental.ListVehicles))
	router.POST("/api/rental/vehicles/:vehicleid/book", rl.Limit(middleware.Authenticate(rental.BookVehicle)))
	router.GET("/api/rental/my", middleware.Authenticate(rental.GetMyRentals))

	partner := middleware.Chain(middleware.Authenticate,
		middleware.RequireRoles(models.RoleServicePartner, models.RoleGlobalAdmin))
	router.GET("/api/partner/vehicles", partner(rental.PartnerVehicles))
	router.POST("/api/partner/vehicles", rl.Limit(partner(rental.CreateVehicle)))
	router.PUT("/api/partner/vehicles/:vehicleid", partner(rental.UpdateVehicle))
	router.DELETE("/api/partner/vehicles/:vehicleid", partner(rental.DeleteVehicle))
	router.POST("/api/partner/vehicles/:vehicleid/image", rl.Limit(partner(rental.UploadVehicleImage)))
}

func AddCompanyRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	manage := middleware.Chain(middleware.Authenticate,
		middleware.RequireRoles(models.RoleCompanyAdmin, models.RoleGlobalAdmin))
	router.GET("/api/company/trips", manage(company.CompanyTrips))
	router.POST("/api/company/trips", rl.Limit(manage(company.CreateTrip)))
	router.PUT("/api/company/trips/:tripid", manage(company.UpdateTrip))
	router.DELETE("/api/company/trips/:tripid", manage(company.DeleteTrip))
	router.GET("/api/company/stats", manage(company.CompanyStats))
}

func AddAdminRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	global := middleware.Chain(middleware.Authenticate,
		middleware.RequireRoles(models.RoleGlobalAdmin))
	router.GET("/api/admin/stats", global(admin.GetStats))
	router.GET("/api/admin/users", global(admin.ListUsers))
	router.PUT("/api/admin/users/:userid/role", rl.Limit(global(admin.UpdateUserRole)))
}

func AddAssistantRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/assistant/chat", rl.Limit(middleware.OptionalAuth(assistant.Chat)))
	router.GET("/api/assistant/voice", middleware.OptionalAuth(assistant.Voice))
}

func AddProfileRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetMyProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.UpdateProfile))
	router.PUT("/api/profile/password", rl.Limit(middleware.Authenticate(profile.ChangePassword)))
}
