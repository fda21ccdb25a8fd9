package router

import (
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api"
	m "github.com/RoyceAzure/lab/ordercenter/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	r.Route("/api", func(r chi.Router) {
		//讀取端點, client開頁時抓的app data
		r.Route("/app-data", func(r chi.Router) {
			r.Get("/branches", server.AppDataHandler.Branches)
			r.Get("/inventory", server.AppDataHandler.Inventory)
			r.Get("/item-types", server.AppDataHandler.ItemTypes)
			r.Get("/item-categories", server.AppDataHandler.ItemCategories)
			r.Get("/orders", server.AppDataHandler.Orders)
			r.Get("/users", server.AppDataHandler.Users)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", server.OrderHandler.CreateOrder)
			r.Put("/{id}/status", server.OrderHandler.UpdateStatus)
			r.Put("/{id}/items", server.OrderHandler.ReplaceItems)
			r.Post("/{id}/invoices", server.OrderHandler.AddInvoice)
			r.Delete("/{id}/invoices/{invoiceID}", server.OrderHandler.RemoveInvoice)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Put("/", server.InventoryHandler.SetInventory)
			r.Post("/import", server.InventoryHandler.ImportCSV)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", server.AuthHandler.Login)
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
