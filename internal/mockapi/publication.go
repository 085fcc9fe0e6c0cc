package mockapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
)

const maxAttachments = 5

type publicationRoutesHandler struct {
	store    *store
	validate *validator.Validate
}

func newPublicationRoutesHandler(outer *echo.Group, store *store, v *validator.Validate) *publicationRoutesHandler {
	h := &publicationRoutesHandler{store: store, validate: v}

	outer.GET("/publications", h.GetPublications)
	outer.POST("/publications", h.PostPublication)
	outer.POST("/publications/:publicationId/propositions", h.PostProposition)

	return h
}

// /publications
func (h *publicationRoutesHandler) GetPublications(c echo.Context) error {
	statut := c.QueryParam("statut")
	if statut != "" {
		if _, ok := common.ValidPublicationStatuses[statut]; !ok {
			return c.JSON(http.StatusBadRequest, errorResponse{"Statut inconnu"})
		}
	}

	return c.JSON(http.StatusOK, h.store.listPublications(c.QueryParam("categorie"), statut))
}

type postPublicationInput struct {
	Titre       string `validate:"required,max=200"`
	Description string `validate:"required"`
	Delai       string `validate:"required"`
	Categorie   string `validate:"required"`
}

// /publications
func (h *publicationRoutesHandler) PostPublication(c echo.Context) error {
	input := postPublicationInput{
		Titre:       c.FormValue("titre"),
		Description: c.FormValue("description"),
		Delai:       c.FormValue("delai"),
		Categorie:   c.FormValue("categorie"),
	}
	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Champs manquants ou invalides"})
	}

	budget, err := strconv.ParseFloat(c.FormValue("budget"), 64)
	if err != nil || budget < 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{"Budget invalide"})
	}

	var competences []string
	if raw := c.FormValue("competencesRequises"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &competences); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{"Liste de compétences invalide"})
		}
	}

	var pieces []entity.PieceJointe
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["fichiers"]
		if len(files) > maxAttachments {
			return c.JSON(http.StatusBadRequest, errorResponse{"Au plus 5 fichiers sont acceptés"})
		}
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				return c.JSON(http.StatusBadRequest, errorResponse{"Fichier illisible"})
			}
			// the mock discards file bodies, it only records the metadata
			_, _ = io.Copy(io.Discard, src)
			_ = src.Close()
			pieces = append(pieces, entity.PieceJointe{
				Nom: file.Filename,
				Url: "uploads/" + file.Filename,
			})
		}
	}

	created := h.store.addPublication(entity.Publication{
		Titre:               input.Titre,
		Description:         input.Description,
		Budget:              budget,
		Delai:               input.Delai,
		Categorie:           entity.Ref{Id: input.Categorie},
		CompetencesRequises: competences,
		PiecesJointes:       pieces,
	})

	return c.JSON(http.StatusCreated, created)
}

type postPropositionInput struct {
	Message string  `json:"message" validate:"required"`
	Budget  float64 `json:"budget" validate:"gte=0"`
	Delai   string  `json:"delai" validate:"required"`
}

// /publications/:publicationId/propositions
func (h *publicationRoutesHandler) PostProposition(c echo.Context) error {
	user, ok := h.bearerUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentification requise"})
	}
	if !common.IsFreelanceRole(user.Role) {
		return c.JSON(http.StatusForbidden, errorResponse{"Seuls les freelances peuvent envoyer une proposition"})
	}

	var input postPropositionInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Requête mal formée"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Champs manquants ou invalides"})
	}

	proposition := entity.Proposition{
		Freelance: entity.Ref{Id: user.Id, Name: user.Nom},
		Message:   input.Message,
		Budget:    input.Budget,
		Delai:     input.Delai,
	}

	updated, err := h.store.addProposition(c.Param("publicationId"), proposition)
	if err == nil {
		return c.JSON(http.StatusOK, updated)
	}

	switch {
	case errors.Is(err, errPublicationMissing):
		return c.JSON(http.StatusNotFound, errorResponse{"Publication introuvable"})
	case errors.Is(err, errPublicationClosed):
		return c.JSON(http.StatusBadRequest, errorResponse{"La publication n'est plus ouverte aux propositions"})
	default:
		return c.JSON(http.StatusBadRequest, errorResponse{err.Error()})
	}
}

func (h *publicationRoutesHandler) bearerUser(c echo.Context) (entity.User, bool) {
	header := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return entity.User{}, false
	}

	return h.store.userByToken(token)
}
