package routes

import (
	"net/http"

	"grabgood/admin"
	"grabgood/auth"
	"grabgood/availability"
	"grabgood/bookings"
	"grabgood/business"
	"grabgood/middleware"
	"grabgood/models"
	"grabgood/notifications"
	"grabgood/profile"
	"grabgood/ratelim"
	"grabgood/ws"

	"github.com/julienschmidt/httprouter"
)

var adminOnly = middleware.RequireRoles(models.RoleAdmin)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/businesspic/*filepath", http.Dir("static/businesspic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))

	router.GET("/api/auth/me", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/auth/me", middleware.Authenticate(profile.UpdateProfile))
	router.PUT("/api/auth/password", ratelim.RateLimit(middleware.Authenticate(profile.ChangePassword)))
}

// "settings" and "mine" share the :id segment; httprouter cannot mix a
// static child with a wildcard, so the reserved names are dispatched here.
// The reserved branches run through Authenticate so the usual reload and
// active-status checks apply to them too.
func getBusinessByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	switch ps.ByName("id") {
	case "settings":
		middleware.Authenticate(business.GetSettings)(w, r, ps)
	case "mine":
		middleware.Authenticate(business.GetMyBusiness)(w, r, ps)
	default:
		business.GetBusiness(w, r, ps)
	}
}

func putBusinessByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") == "settings" {
		business.UpdateSettings(w, r, ps)
		return
	}
	business.UpdateBusiness(w, r, ps)
}

func AddBusinessRoutes(router *httprouter.Router) {
	router.GET("/api/business", middleware.OptionalAuth(business.ListBusinesses))
	router.POST("/api/business", middleware.Authenticate(business.CreateBusiness))

	router.GET("/api/business/:id", middleware.OptionalAuth(getBusinessByID))
	router.PUT("/api/business/:id", middleware.Authenticate(putBusinessByID))
	router.DELETE("/api/business/:id", middleware.Authenticate(business.DeleteBusiness))
	router.PATCH("/api/business/:id/status", middleware.Authenticate(adminOnly(business.UpdateStatus)))
	router.POST("/api/business/:id/photos", middleware.Authenticate(business.UploadPhoto))

	router.GET("/api/business/:id/availability", availability.GetAvailability)
	router.PUT("/api/business/:id/availability", middleware.Authenticate(availability.UpdateAvailability))
}

// "verify" shares the :id segment on the bookings GET tree. Everything but
// the public verify branch goes through Authenticate.
func getBookingByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") == "verify" {
		bookings.VerifyReceipt(w, r, ps)
		return
	}
	middleware.Authenticate(bookings.GetBooking)(w, r, ps)
}

func AddBookingRoutes(router *httprouter.Router) {
	router.GET("/api/bookings", middleware.Authenticate(bookings.ListBookings))
	router.POST("/api/bookings", ratelim.RateLimit(middleware.Authenticate(bookings.CreateBooking)))
	router.GET("/api/bookings/:id", middleware.OptionalAuth(getBookingByID))
	router.PATCH("/api/bookings/:id/status", middleware.Authenticate(bookings.UpdateBookingStatus))
	router.DELETE("/api/bookings/:id", middleware.Authenticate(bookings.DeleteBooking))
	router.GET("/api/bookings/:id/receipt", middleware.Authenticate(bookings.PrintReceipt))
}

func AddNotificationRoutes(router *httprouter.Router) {
	router.GET("/api/notifications", middleware.Authenticate(notifications.ListNotifications))
	router.POST("/api/notifications/read-all", middleware.Authenticate(notifications.MarkAllRead))
	router.PATCH("/api/notifications/:id/read", middleware.Authenticate(notifications.MarkRead))

	router.GET("/api/notifications/preferences", middleware.Authenticate(notifications.GetPreferences))
	router.PUT("/api/notifications/preferences", middleware.Authenticate(notifications.UpdatePreferences))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/users", middleware.Authenticate(adminOnly(admin.ListUsers)))
	router.PATCH("/api/admin/users/:id/status", middleware.Authenticate(adminOnly(admin.UpdateUserStatus)))
}

func AddWSRoutes(router *httprouter.Router) {
	router.GET("/ws/business/:businessId", ws.Subscribe)
}
