package services

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the API surface onto the router.
func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	{
		api.GET("", s.Welcome)
		api.POST("/reservas", s.CreateReservation)
		api.GET("/reservas", s.ListReservations)
		api.GET("/reservas/tabela", s.ReservationsTable)
		api.GET("/reservas/:id", s.GetReservation)
		api.DELETE("/reservas/:id", s.DeleteReservation)
		api.GET("/reservas/:id/pdf", s.DownloadVoucherPDF)
		api.GET("/export/svg", s.ExportSVG)
		api.GET("/export/excel", s.ExportExcel)
		api.GET("/cep/:cep", s.LookupCEP)
	}
}
