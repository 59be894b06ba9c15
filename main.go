package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dhonveli-backend/config"
	"dhonveli-backend/controllers"
	"dhonveli-backend/routes"
	"dhonveli-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	log.Println("database connection established and schema migrated")

	// Initialize services
	userService := services.NewUserService(db)
	hotelService := services.NewHotelService(db)
	roomTypeService := services.NewRoomTypeService(db)
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	activityService := services.NewActivityService(db)
	ticketService := services.NewTicketService(db)
	reviewService := services.NewReviewService(db)

	// Initialize controllers
	userController := controllers.NewUserController(userService)
	hotelController := controllers.NewHotelController(hotelService)
	roomTypeController := controllers.NewRoomTypeController(roomTypeService)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	activityController := controllers.NewActivityController(activityService)
	ticketController := controllers.NewTicketController(ticketService)
	reviewController := controllers.NewReviewController(reviewService)

	router := routes.SetupRouter(
		userController,
		hotelController,
		roomTypeController,
		roomController,
		bookingController,
		activityController,
		ticketController,
		reviewController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
