package main

import (
	"log"

	"github.com/hotelhub/reservation-service/config"
	"github.com/hotelhub/reservation-service/internal/consumer"
	"github.com/hotelhub/reservation-service/internal/handler"
	"github.com/hotelhub/reservation-service/internal/middleware"
	"github.com/hotelhub/reservation-service/internal/repository"
	"github.com/hotelhub/reservation-service/internal/service"
	"github.com/hotelhub/reservation-service/pkg/database"
	"github.com/hotelhub/reservation-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: booking.created events for the notification sink.
	// The engine stays up without it; events are best-effort.
	var notifier service.Notifier
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, booking events disabled: %v", err)
	} else {
		defer publisher.Close()
		notifier = publisher
	}

	// Notification sink: consumes booking.* events and logs them
	if mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL); err != nil {
		log.Printf("rabbitmq consumer unavailable, notifications disabled: %v", err)
	} else {
		defer mqConsumer.Close()
		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.Fatalf("failed to start consuming: %v", err)
		}
		consumer.NewNotificationConsumer().Start(msgs)
	}

	// Repositories
	roomRepo := repository.NewRoomRepository(db)
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, userRepo, notifier)
	roomSvc := service.NewRoomService(roomRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, bookingRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "reservation-service"})
	})

	handler.NewRoomHandler(roomSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewPaymentHandler(paymentSvc).RegisterRoutes(e)

	log.Printf("Reservation Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
