package controller

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/service"
	"freelance-marketplace-client/pkg/restclient"
)

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// LoginController runs the sign-in flow: field validation, the login call,
// then navigation to the role-dependent landing route after a fixed display
// delay that lets the success banner show.
type LoginController struct {
	sessionService service.Session
	validate       *validator.Validate
	navigator      Navigator
	redirectDelay  time.Duration

	mu          sync.Mutex
	form        LoginForm
	fieldErrors map[string]string
	loading     bool
	alert       *Alert
}

func NewLoginController(svc service.Session, navigator Navigator, redirectDelay time.Duration) *LoginController {
	return &LoginController{
		sessionService: svc,
		validate:       newValidator(),
		navigator:      navigator,
		redirectDelay:  redirectDelay,
	}
}

func (c *LoginController) SetForm(form LoginForm) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = form
}

func (c *LoginController) FieldErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fieldErrors
}

func (c *LoginController) Alert() *Alert {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.alert
}

func (c *LoginController) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	if err := c.validate.Struct(c.form); err != nil {
		c.fieldErrors = fieldErrorMessages(err)
		c.mu.Unlock()
		return ErrValidation
	}
	c.fieldErrors = nil
	c.loading = true
	form := c.form
	c.mu.Unlock()

	_, route, err := c.sessionService.Login(ctx, form.Email, form.Password)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.alert = errorAlert(restclient.Message(err, "Email ou mot de passe incorrect"))
		c.mu.Unlock()
		return err
	}
	c.alert = successAlert("Connexion réussie !")
	c.mu.Unlock()

	if c.redirectDelay > 0 {
		time.Sleep(c.redirectDelay)
	}
	c.navigator.Navigate(route)

	return nil
}

// Logout clears the persisted identity and returns to the public landing
// page.
func (c *LoginController) Logout() error {
	if err := c.sessionService.Logout(); err != nil {
		return err
	}
	c.navigator.Navigate(common.RouteHome)

	return nil
}

type RegisterForm struct {
	Nom             string `validate:"required"`
	Prenom          string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Role            string `validate:"required,oneof=candidat client"`
	Telephone       string `validate:"omitempty,number,min=8"`
}

// RegisterController runs account creation and, on success, sends the user to
// the sign-in page after the display delay.
type RegisterController struct {
	sessionService service.Session
	validate       *validator.Validate
	navigator      Navigator
	redirectDelay  time.Duration

	mu          sync.Mutex
	form        RegisterForm
	fieldErrors map[string]string
	loading     bool
	alert       *Alert
}

func NewRegisterController(svc service.Session, navigator Navigator, redirectDelay time.Duration) *RegisterController {
	return &RegisterController{
		sessionService: svc,
		validate:       newValidator(),
		navigator:      navigator,
		redirectDelay:  redirectDelay,
	}
}

func (c *RegisterController) SetForm(form RegisterForm) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = form
}

func (c *RegisterController) FieldErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fieldErrors
}

func (c *RegisterController) Alert() *Alert {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.alert
}

func (c *RegisterController) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	if err := c.validate.Struct(c.form); err != nil {
		c.fieldErrors = fieldErrorMessages(err)
		c.mu.Unlock()
		return ErrValidation
	}
	c.fieldErrors = nil
	c.loading = true
	form := c.form
	c.mu.Unlock()

	input := &entity.RegisterInput{
		Nom:       form.Nom,
		Prenom:    form.Prenom,
		Email:     form.Email,
		Mdp:       form.Password,
		Role:      form.Role,
		Telephone: form.Telephone,
	}
	err := c.sessionService.Register(ctx, input)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.alert = errorAlert(restclient.Message(err, "Erreur lors de l'inscription. Email peut-être déjà utilisé."))
		c.mu.Unlock()
		return err
	}
	c.alert = successAlert("Inscription réussie ! Redirection...")
	c.mu.Unlock()

	if c.redirectDelay > 0 {
		time.Sleep(c.redirectDelay)
	}
	c.navigator.Navigate(common.RouteConnexion)

	return nil
}
