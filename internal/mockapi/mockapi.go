// Package mockapi is an in-memory stand-in for the marketplace backend. It
// serves the same endpoints under /api so the client can be developed and
// integration-tested without the real server.
package mockapi

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

var (
	errPublicationClosed  = errors.New("publication closed")
	errPublicationMissing = errors.New("publication missing")
)

type errorResponse struct {
	Message string `json:"message"`
}

type Server struct {
	echo  *echo.Echo
	store *store
}

func New() *Server {
	e := echo.New()
	e.HideBanner = true
	validate := validator.New(validator.WithRequiredStructEnabled())

	s := &Server{echo: e, store: newStore()}

	api := e.Group("/api")
	newAuthRoutesHandler(api, s.store, validate)
	newPublicationRoutesHandler(api, s.store, validate)
	newCategoryRoutesHandler(api, s.store)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}
