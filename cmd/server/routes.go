package main

import (
	"net/http"

	"github.com/printhaus/printshop/pkg/middleware"
	"github.com/printhaus/printshop/pkg/routes"
)

func (app *Application) routes() http.Handler {
	rs := routes.New(app.logger)

	rs.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		},
	})

	rs.RegisterGroup(routes.Group{
		Prefix:      "/api",
		Description: "Print shop API",
		Children: []routes.Group{
			app.auth.Handler().Routes(),
			app.services.Handler().Routes(),
			app.mockups.Handler().Routes(),
			app.users.Handler().Routes(),
			app.orders.Handler().Routes(),
			app.carts.Handler().Routes(),
			app.albums.Handler().Routes(),
		},
	})

	handler := app.requireAuth(rs.Build())
	handler = middleware.Logger(app.logger)(handler)
	handler = app.enableCORS(handler)

	return handler
}
