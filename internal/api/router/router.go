package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/jonier/api-store/docs"
	"github.com/jonier/api-store/internal/api"
	m "github.com/jonier/api-store/internal/api/middleware"
	"github.com/jonier/api-store/internal/api/server"
	"github.com/jonier/api-store/internal/apperr"
	"github.com/jonier/api-store/internal/token"
)

func SetupRouter(srv *server.Server, tokenMaker token.Maker, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(m.RequestIDMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", srv.UserHandler.List)
			r.Get("/{userId}", srv.UserHandler.Get)
			r.Post("/", srv.UserHandler.Create)
			r.Post("/login", srv.AuthHandler.Login)
			r.With(m.AuthMiddleware).Patch("/", srv.UserHandler.Update)
			r.With(m.AuthMiddleware).Delete("/{userId}", srv.UserHandler.Delete)
		})

		r.Route("/product", func(r chi.Router) {
			r.Get("/", srv.ProductHandler.List)
			r.Get("/{productId}", srv.ProductHandler.Get)
			r.Post("/", srv.ProductHandler.Create)
			r.With(m.AuthMiddleware).Patch("/", srv.ProductHandler.Update)
			r.With(m.AuthMiddleware).Delete("/{productId}", srv.ProductHandler.Delete)
		})

		r.Route("/kindofproduct", func(r chi.Router) {
			r.Get("/", srv.KindOfProductHandler.List)
			r.Get("/{kindOfProductId}", srv.KindOfProductHandler.Get)
			r.Post("/", srv.KindOfProductHandler.Create)
			r.With(m.AuthMiddleware).Patch("/", srv.KindOfProductHandler.Update)
			r.With(m.AuthMiddleware).Delete("/{kindOfProductId}", srv.KindOfProductHandler.Delete)
		})

		r.Route("/orderstatus", func(r chi.Router) {
			r.Get("/", srv.OrderStatusHandler.List)
			r.Get("/{orderStatusId}", srv.OrderStatusHandler.Get)
			r.Post("/", srv.OrderStatusHandler.Create)
			r.With(m.AuthMiddleware).Patch("/", srv.OrderStatusHandler.Update)
			r.With(m.AuthMiddleware).Delete("/{orderStatusId}", srv.OrderStatusHandler.Delete)
		})

		r.Route("/order", func(r chi.Router) {
			r.Get("/", srv.OrderHandler.List)
			r.Get("/{orderId}", srv.OrderHandler.Get)
			r.Post("/", srv.OrderHandler.Create)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.ErrorJSONMessages(w, int(apperr.NotFoundCode), []string{"Could not find this route."})
	})

	return r
}
