// Package kernel assembles the HTTP handler: global middleware, the metrics
// endpoint, the event listeners, and the application routes.
package kernel

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shashiranjanraj/plantnet/app/models"
	"github.com/shashiranjanraj/plantnet/app/routes"
	"github.com/shashiranjanraj/plantnet/config"
	"github.com/shashiranjanraj/plantnet/pkg/event"
	"github.com/shashiranjanraj/plantnet/pkg/logger"
	"github.com/shashiranjanraj/plantnet/pkg/metrics"
	"github.com/shashiranjanraj/plantnet/pkg/middleware"
	"github.com/shashiranjanraj/plantnet/pkg/reqid"
	"github.com/shashiranjanraj/plantnet/pkg/router"
	"github.com/shashiranjanraj/plantnet/pkg/ws"
)

// Handler builds the complete HTTP handler.
func Handler() http.Handler {
	registerOrderListeners()
	ws.SetCheckOrigin(feedOriginCheck(config.CORSOrigins()))

	r := router.New()

	// Global middleware stack, outermost first:
	//  1. Prometheus metrics, outermost for accurate total latency
	//  2. Recovery, catches panics before they kill the goroutine
	//  3. Rate limit per client IP
	//  4. Request ID, injected before anything logs
	//  5. Logger, tags every line with the request_id from context
	//  6. CORS, credentials-aware headers for the frontend
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.RateLimit(300, time.Minute))
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.CORSFromConfig()))

	// Prometheus scrape endpoint, no auth.
	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r)

	return r.Handler()
}

// feedOriginCheck restricts the websocket feed to the same browser origins
// CORS allows. Requests without an Origin header (curl, native clients) pass.
func feedOriginCheck(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if origin == a {
				return true
			}
		}
		return false
	}
}

// registerOrderListeners fans order events out to the log and the live
// websocket feed.
func registerOrderListeners() {
	broadcast := func(name string) event.Handler {
		return func(payload interface{}) {
			order, ok := payload.(models.Order)
			if !ok {
				return
			}
			logger.Info(name,
				"plant_id", order.PlantID,
				"quantity", order.Quantity,
				"customer", order.Customer.Email,
			)
			msg, err := json.Marshal(map[string]interface{}{
				"event": name,
				"order": order,
			})
			if err != nil {
				return
			}
			select {
			case ws.OrdersHub.Broadcast <- msg:
			default:
				// feed full, drop rather than stall the request
			}
		}
	}

	event.Listen(event.OrderCreated, broadcast(event.OrderCreated))
	event.Listen(event.OrderCancelled, broadcast(event.OrderCancelled))
}
