package mockapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"

	"freelance-marketplace-client/internal/entity"
)

type authRoutesHandler struct {
	store    *store
	validate *validator.Validate
}

func newAuthRoutesHandler(outer *echo.Group, store *store, v *validator.Validate) *authRoutesHandler {
	h := &authRoutesHandler{store: store, validate: v}

	outer.POST("/login", h.PostLogin)
	outer.POST("/register", h.PostRegister)
	outer.GET("/utilisateurs", h.GetUsers)

	return h
}

type loginInput struct {
	Email string `json:"email" validate:"required"`
	Mdp   string `json:"mdp" validate:"required"`
}

type loginUserOutput struct {
	Id     string `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type loginOutput struct {
	User  loginUserOutput `json:"user"`
	Token string          `json:"token"`
}

// /login
func (h *authRoutesHandler) PostLogin(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Requête mal formée"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Email et mot de passe requis"})
	}

	user, token, ok := h.store.authenticate(input.Email, input.Mdp)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Email ou mot de passe incorrect"})
	}

	return c.JSON(http.StatusOK, loginOutput{
		User: loginUserOutput{
			Id:     user.Id,
			Nom:    user.Nom,
			Prenom: user.Prenom,
			Email:  user.Email,
			Role:   user.Role,
		},
		Token: token,
	})
}

type registerInput struct {
	Nom       string `json:"nom" validate:"required"`
	Prenom    string `json:"prenom" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Mdp       string `json:"mdp" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=candidat freelance client"`
	Telephone string `json:"telephone" validate:"omitempty,number,min=8"`
}

// /register
func (h *authRoutesHandler) PostRegister(c echo.Context) error {
	var input registerInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Requête mal formée"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Champs manquants ou invalides"})
	}

	user := entity.User{
		Nom:       input.Nom,
		Prenom:    input.Prenom,
		Email:     input.Email,
		Role:      input.Role,
		Telephone: input.Telephone,
	}
	if _, ok := h.store.addUser(user, input.Mdp); !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{"Cet email est déjà utilisé"})
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "Compte créé avec succès"})
}

// /utilisateurs
func (h *authRoutesHandler) GetUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.listUsers())
}
