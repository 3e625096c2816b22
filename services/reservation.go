package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/solriso/reservation-service/client"
	"github.com/solriso/reservation-service/models"
	"github.com/solriso/reservation-service/render"
	"github.com/solriso/reservation-service/utils"
)

// Store is the reservation store contract the handlers depend on. The
// Postgres implementation lives in the db package; tests use an in-memory
// fake.
type Store interface {
	CreateReservation(ctx context.Context, r *models.Reservation) error
	ListReservations(ctx context.Context, f models.Filter) ([]models.Reservation, error)
	GetReservation(ctx context.Context, id string) (*models.Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

// CEPLookup resolves postal codes; implemented by client.CEPClient.
type CEPLookup interface {
	Lookup(ctx context.Context, cep string) (*client.Address, error)
}

type Server struct {
	store    Store
	cep      CEPLookup
	logger   log.Logger
	logoPath string
}

func NewServer(store Store, cep CEPLookup, logger log.Logger, logoPath string) *Server {
	return &Server{
		store:    store,
		cep:      cep,
		logger:   log.With(logger, "component", "reservation"),
		logoPath: logoPath,
	}
}

func (s *Server) Welcome(c *gin.Context) {
	c.String(http.StatusOK, "Bem-vindo à API de Vouchers da Pousada!")
}

// POST /api/reservas
func (s *Server) CreateReservation(c *gin.Context) {
	var r models.Reservation
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Identity is store-assigned; a client-supplied id is ignored.
	r.ID = ""
	r.Normalize()
	if err := utils.Validate.Struct(r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.CreateReservation(c.Request.Context(), &r); err != nil {
		level.Error(s.logger).Log("msg", "create failed", "err", err)
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// GET /api/reservas?nome=&mes=
func (s *Server) ListReservations(c *gin.Context) {
	list, ok := s.filteredList(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/reservas/tabela
//
// Server-rendered table body for the thin browser client; same filters as
// the JSON list.
func (s *Server) ReservationsTable(c *gin.Context) {
	list, ok := s.filteredList(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.TableRows(&buf, list); err != nil {
		level.Error(s.logger).Log("msg", "table render failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) filteredList(c *gin.Context) ([]models.Reservation, bool) {
	filter, err := models.TranslateFilter(c.Query("nome"), c.Query("mes"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	list, err := s.store.ListReservations(c.Request.Context(), filter)
	if err != nil {
		level.Error(s.logger).Log("msg", "list failed", "err", err)
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return list, true
}

// GET /api/reservas/:id
func (s *Server) GetReservation(c *gin.Context) {
	r, err := s.store.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

// DELETE /api/reservas/:id — terminal, no undo.
func (s *Server) DeleteReservation(c *gin.Context) {
	if err := s.store.DeleteReservation(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/reservas/:id/pdf
func (s *Server) DownloadVoucherPDF(c *gin.Context) {
	r, err := s.store.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	var buf bytes.Buffer
	if err := render.VoucherPDF(&buf, r, s.logoPath); err != nil {
		level.Error(s.logger).Log("msg", "voucher render failed", "id", r.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=voucher-%s.pdf", r.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// GET /api/export/svg — all records, filters ignored.
func (s *Server) ExportSVG(c *gin.Context) {
	list, err := s.store.ListReservations(c.Request.Context(), models.Filter{})
	if err != nil {
		level.Error(s.logger).Log("msg", "svg export failed", "err", err)
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	var buf bytes.Buffer
	render.SummarySVG(&buf, list)
	c.Header("Content-Disposition", "attachment; filename=reservas.svg")
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

// GET /api/export/excel — all records, filters ignored.
func (s *Server) ExportExcel(c *gin.Context) {
	list, err := s.store.ListReservations(c.Request.Context(), models.Filter{})
	if err != nil {
		level.Error(s.logger).Log("msg", "excel export failed", "err", err)
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	var buf bytes.Buffer
	if err := render.Workbook(&buf, list); err != nil {
		level.Error(s.logger).Log("msg", "workbook render failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=reservas.xlsx")
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// GET /api/cep/:cep — ViaCEP proxy for the booking form.
func (s *Server) LookupCEP(c *gin.Context) {
	addr, err := s.cep.Lookup(c.Request.Context(), c.Param("cep"))
	switch {
	case errors.Is(err, client.ErrInvalidCEP):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, client.ErrCEPNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, addr)
	}
}
