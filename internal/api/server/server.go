package server

import "github.com/jonier/api-store/internal/api/handler"

// Server aggregates the entity handlers the router mounts. It lives apart
// from the response-envelope package so handlers can import that package
// without a cycle.
type Server struct {
	UserHandler          *handler.UserHandler
	AuthHandler          *handler.AuthHandler
	ProductHandler       *handler.ProductHandler
	KindOfProductHandler *handler.KindOfProductHandler
	OrderStatusHandler   *handler.OrderStatusHandler
	OrderHandler         *handler.OrderHandler
}

func NewServer(
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	kindOfProductHandler *handler.KindOfProductHandler,
	orderStatusHandler *handler.OrderStatusHandler,
	orderHandler *handler.OrderHandler,
) *Server {
	return &Server{
		UserHandler:          userHandler,
		AuthHandler:          authHandler,
		ProductHandler:       productHandler,
		KindOfProductHandler: kindOfProductHandler,
		OrderStatusHandler:   orderStatusHandler,
		OrderHandler:         orderHandler,
	}
}
