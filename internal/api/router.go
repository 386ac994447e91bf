package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/fittrack/fittrack/docs"
	"github.com/fittrack/fittrack/internal/api/handler"
	"github.com/fittrack/fittrack/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	recordHandler *handler.RecordHandler
	reportHandler *handler.ReportHandler
	chartHandler  *handler.ChartHandler
	adviceHandler *handler.AdviceHandler
}

func NewRouter(
	recordHandler *handler.RecordHandler,
	reportHandler *handler.ReportHandler,
	chartHandler *handler.ChartHandler,
	adviceHandler *handler.AdviceHandler,
) *Router {
	return &Router{
		recordHandler: recordHandler,
		reportHandler: reportHandler,
		chartHandler:  chartHandler,
		adviceHandler: adviceHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/motivation", rt.adviceHandler.Motivation)

		r.Route("/users/{userId}", func(r chi.Router) {
			r.Post("/sleep", rt.recordHandler.RecordSleep)
			r.Post("/calories", rt.recordHandler.RecordCalories)
			r.Post("/workouts", rt.recordHandler.RecordWorkout)
			r.Get("/records/{metric}", rt.recordHandler.History)

			r.Get("/report", rt.reportHandler.Report)
			r.Get("/digest", rt.reportHandler.Digest)
			r.Get("/chart", rt.chartHandler.Chart)
			r.Get("/advice", rt.adviceHandler.Advise)
		})
	})

	return r
}
