package internal

import (
	"net/http"

	"tod/internal/controllers"
	"tod/internal/providers"
	"tod/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/logs", http.HandlerFunc(apiController.ReceiveLog))
	routers.Get("/logs", http.HandlerFunc(apiController.GetLogs))
	routers.Delete("/logs", http.HandlerFunc(apiController.DeleteLogs))
	routers.Get("/today", http.HandlerFunc(apiController.GetToday))
	routers.Get("/totals", http.HandlerFunc(apiController.GetTotals))
	routers.Get("/score", http.HandlerFunc(apiController.GetScore))
	routers.Get("/trends/week", http.HandlerFunc(apiController.GetWeekTrends))
	routers.Get("/trends/alltime", http.HandlerFunc(apiController.GetAllTimeTrends))
	routers.Post("/targets", http.HandlerFunc(apiController.ReceiveTargets))
	routers.Get("/targets", http.HandlerFunc(apiController.GetTargets))
	routers.Get("/targets/at", http.HandlerFunc(apiController.GetTargetsAt))
	routers.Post("/holidays", http.HandlerFunc(apiController.ReceiveHoliday))
	routers.Get("/holidays", http.HandlerFunc(apiController.GetHolidays))
	routers.Delete("/holidays", http.HandlerFunc(apiController.DeleteHoliday))
	routers.Post("/activities", http.HandlerFunc(apiController.ReceiveActivity))
	routers.Get("/activities", http.HandlerFunc(apiController.GetActivities))
	routers.Get("/export", http.HandlerFunc(apiController.ExportLogs))
	routers.Post("/import", http.HandlerFunc(apiController.ImportLogs))
	return routers
}
