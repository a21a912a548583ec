package routes

import (
	"net/http"

	"github.com/shashiranjanraj/plantnet/app/controllers"
	"github.com/shashiranjanraj/plantnet/app/graph"
	"github.com/shashiranjanraj/plantnet/app/repositories"
	"github.com/shashiranjanraj/plantnet/app/services"
	"github.com/shashiranjanraj/plantnet/pkg/logger"
	"github.com/shashiranjanraj/plantnet/pkg/middleware"
	"github.com/shashiranjanraj/plantnet/pkg/router"
	"github.com/shashiranjanraj/plantnet/pkg/ws"
)

// RegisterAPI wires the marketplace endpoints. Registration, token issuance,
// logout and the catalog reads are public; everything that mutates state or
// reads user-scoped data sits behind the session gate.
func RegisterAPI(r *router.Router) {
	userRepo := repositories.NewUserRepository()
	plantRepo := repositories.NewPlantRepository()
	orderRepo := repositories.NewOrderRepository()

	orderService := services.NewOrderService(orderRepo, plantRepo)

	userController := controllers.NewUserController(userRepo)
	authController := controllers.NewAuthController()
	plantController := controllers.NewPlantController(plantRepo)
	orderController := controllers.NewOrderController(orderService)

	r.Get("/", "home", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Hello from plantNet Server.."))
	})

	// Public surface.
	r.Post("/users/{email}", "users.upsert", userController.Upsert)
	r.Post("/jwt", "auth.token", authController.IssueToken)
	r.Get("/logout", "auth.logout", authController.Logout)
	r.Get("/plants", "plants.index", plantController.Index)
	r.Get("/plant/{id}", "plants.show", plantController.Show)

	schema, err := graph.NewSchema(plantRepo)
	if err != nil {
		logger.Error("graphql schema build failed", "error", err)
	} else {
		r.Post("/graphql", "graphql", graph.Handler(schema))
	}

	// Session-gated surface.
	protected := r.Group("", middleware.Session)
	protected.Post("/plants", "plants.store", plantController.Store)
	protected.Patch("/plant/quantity/{id}", "plants.quantity", plantController.AdjustQuantity)
	protected.Post("/order", "orders.store", orderController.Store)
	protected.Delete("/order/{id}", "orders.destroy", orderController.Destroy)
	protected.Get("/customer-orders/{email}", "orders.history", orderController.History)
	protected.Get("/ws/orders", "orders.feed", func(w http.ResponseWriter, r *http.Request) {
		ws.Serve(ws.OrdersHub, w, r)
	})
}
