package routes

import (
	"mechfinder/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMechanics     = "/mechanics"
	PathVehicles      = "/vehicles"
	PathQuotes        = "/quotes"
	PathBookings      = "/bookings"
	PathReviews       = "/reviews"
	PathNotifications = "/notifications"
)

func addMechanicRoutes(rg *gin.RouterGroup, mechanicHandler *handlers.MechanicHandler, reviewHandler *handlers.ReviewHandler, requireAuth gin.HandlerFunc) {
	mechanics := rg.Group(PathMechanics)
	{
		// The directory and its reviews are public.
		mechanics.GET("", mechanicHandler.List)
		mechanics.GET("/:id", mechanicHandler.GetByID)
		mechanics.GET("/:id/reviews", reviewHandler.ListByMechanic)

		mechanics.POST("", requireAuth, mechanicHandler.Register)
		mechanics.PATCH("/:id", requireAuth, mechanicHandler.Update)
	}
}

func addVehicleRoutes(rg *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, requireAuth gin.HandlerFunc) {
	vehicles := rg.Group(PathVehicles, requireAuth)
	{
		vehicles.POST("", vehicleHandler.Add)
		vehicles.GET("", vehicleHandler.List)
		vehicles.GET("/:id", vehicleHandler.GetByID)
		vehicles.PUT("/:id", vehicleHandler.Update)
		vehicles.DELETE("/:id", vehicleHandler.Delete)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, requireAuth gin.HandlerFunc) {
	quotes := rg.Group(PathQuotes, requireAuth)
	{
		quotes.POST("", quoteHandler.Request)
		quotes.POST("/batch", quoteHandler.RequestBatch)
		quotes.POST("/compare", quoteHandler.Compare)
		quotes.GET("", quoteHandler.ListMine)
		quotes.GET("/received", quoteHandler.ListForMechanic)
		quotes.PATCH("/:id/respond", quoteHandler.Respond)
		quotes.POST("/:id/accept", quoteHandler.Accept)
		quotes.POST("/:id/reject", quoteHandler.Reject)
	}
}

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, paymentHandler *handlers.PaymentHandler, requireAuth gin.HandlerFunc) {
	bookings := rg.Group(PathBookings, requireAuth)
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("", bookingHandler.ListMine)
		bookings.GET("/assigned", bookingHandler.ListForMechanic)
		bookings.GET("/:id", bookingHandler.GetByID)
		bookings.PATCH("/:id", bookingHandler.Update)
		bookings.PATCH("/:id/status", bookingHandler.UpdateStatus)
		bookings.DELETE("/:id", bookingHandler.Delete)

		bookings.POST("/:id/pay", paymentHandler.Pay)
		bookings.POST("/:id/refund", paymentHandler.Refund)
		bookings.GET("/:id/payments", paymentHandler.ListByBooking)
	}
}

func addReviewRoutes(rg *gin.RouterGroup, reviewHandler *handlers.ReviewHandler, requireAuth gin.HandlerFunc) {
	reviews := rg.Group(PathReviews, requireAuth)
	{
		reviews.POST("", reviewHandler.Create)
		reviews.GET("", reviewHandler.ListMine)
		reviews.PATCH("/:id/respond", reviewHandler.Respond)
		reviews.POST("/:id/helpful", reviewHandler.VoteHelpful)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler, requireAuth gin.HandlerFunc) {
	notifications := rg.Group(PathNotifications, requireAuth)
	{
		notifications.GET("", notificationHandler.List)
		notifications.PATCH("/read-all", notificationHandler.MarkAllRead)
		notifications.PATCH("/:id/read", notificationHandler.MarkRead)
		notifications.DELETE("/:id", notificationHandler.Delete)
	}
}
