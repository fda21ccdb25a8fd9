package api

import "github.com/RoyceAzure/lab/ordercenter/internal/api/handler"

type Server struct {
	AppDataHandler   *handler.AppDataHandler
	OrderHandler     *handler.OrderHandler
	InventoryHandler *handler.InventoryHandler
	AuthHandler      *handler.AuthHandler
}

func NewServer(
	appDataHandler *handler.AppDataHandler,
	orderHandler *handler.OrderHandler,
	inventoryHandler *handler.InventoryHandler,
	authHandler *handler.AuthHandler,
) *Server {
	return &Server{
		AppDataHandler:   appDataHandler,
		OrderHandler:     orderHandler,
		InventoryHandler: inventoryHandler,
		AuthHandler:      authHandler,
	}
}
