package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dhonveli-backend/controllers"
	"dhonveli-backend/middleware"
)

// defaultOrigins is the fixed allow-list of front-office callers.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
}

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return defaultOrigins
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return defaultOrigins
	}
	return origins
}

// SetupRouter wires the controller instances onto the route tree.
func SetupRouter(
	uc *controllers.UserController,
	hc *controllers.HotelController,
	rtc *controllers.RoomTypeController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	ac *controllers.ActivityController,
	tc *controllers.TicketController,
	rvc *controllers.ReviewController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     parseCorsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/users")
	{
		users.POST("/", uc.CreateUser)
		users.GET("/", uc.GetUsers)
		users.GET("/:username", uc.GetUserByUsername)
		users.PATCH("/:username", uc.UpdateUser)
	}

	hotels := r.Group("/hotels")
	{
		hotels.POST("/", hc.CreateHotel)
		hotels.GET("/", hc.GetHotels)
	}

	roomTypes := r.Group("/room_types")
	{
		roomTypes.POST("/", rtc.CreateRoomTypes)
		roomTypes.GET("/", rtc.GetRoomTypes)
		roomTypes.PATCH("/:id", rtc.UpdateRoomType)
		roomTypes.DELETE("/:id", rtc.DeleteRoomType)
	}

	rooms := r.Group("/rooms")
	{
		rooms.POST("/", rc.CreateRoom)
		rooms.GET("/", rc.GetRooms)
		rooms.PATCH("/:id", rc.UpdateRoom)
		rooms.DELETE("/:id", rc.DeleteRoom)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("/", bc.CreateBooking)
		bookings.GET("/", bc.GetBookings)
	}

	activities := r.Group("/activities")
	{
		activities.POST("/", ac.CreateActivity)
		activities.GET("/", ac.GetActivities)
		activities.PATCH("/:id", ac.UpdateActivity)
		activities.DELETE("/:id", ac.DeleteActivity)
	}

	tickets := r.Group("/activity_ticket")
	{
		tickets.POST("/", tc.CreateTickets)
		tickets.GET("/", tc.GetTickets)
		tickets.DELETE("/:id", tc.DeleteTicket)
	}

	reviews := r.Group("/reviews")
	{
		reviews.POST("/", rvc.CreateReview)
		reviews.GET("/", rvc.GetReviews)
		reviews.DELETE("/:id", rvc.DeleteReview)
	}

	return r
}
