package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/sheikhBasit/carRental-sub002/cron"
	"github.com/sheikhBasit/carRental-sub002/db"
	"github.com/sheikhBasit/carRental-sub002/payments"
	"github.com/sheikhBasit/carRental-sub002/redis"
	"github.com/sheikhBasit/carRental-sub002/routes"
	"github.com/sheikhBasit/carRental-sub002/store"
)

func likeVerb(liked bool) string {
	if liked {
		return "liked"
	}
	return "unliked"
}

func main() {
	app := fiber.New()

	db.Init()
	db.Migrate()
	redis.InitRedis()
	store.Init(redis.Client)
	store.Likes.Subscribe(func(ev store.LikeEvent) {
		log.Printf("user %d %s vehicle %d", ev.UserID, likeVerb(ev.Liked), ev.VehicleID)
	})
	payments.Init()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Car rental API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupVehicleRoutes(app)
	routes.SetupRenterRoutes(app)
	routes.SetupCompanyRoutes(app)

	app.Listen(":8000")
}
