package controller

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/service"
	"freelance-marketplace-client/pkg/restclient"
)

// PropositionForm is the collapsible bid form on the publication detail
// screen. Budget stays textual here, exactly as typed; it is parsed and
// range-checked on submit.
type PropositionForm struct {
	Message string `validate:"required"`
	Budget  string `validate:"required"`
	Delai   string `validate:"required"`
}

// DetailController wraps one publication, passed in by the caller and never
// re-fetched, plus the proposal form state machine: hidden → editing →
// (success) hidden with fields reset, or (failure) editing with the error
// shown. Cancel returns to hidden without persisting anything.
type DetailController struct {
	propositionService service.Proposition
	validate           *validator.Validate
	isFreelance        bool

	mu          sync.Mutex
	publication entity.Publication
	editing     bool
	form        PropositionForm
	inFlight    uuid.UUID
	alert       *Alert
}

func NewDetailController(svc service.Proposition, publication entity.Publication, isFreelance bool) *DetailController {
	return &DetailController{
		propositionService: svc,
		validate:           newValidator(),
		isFreelance:        isFreelance,
		publication:        publication,
	}
}

func (c *DetailController) Publication() entity.Publication {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.publication
}

func (c *DetailController) Summary() *entity.PublicationOutputModel {
	publication := c.Publication()

	return service.MapPublication(&publication)
}

// Propositions lists the bids already received, for the client-side view.
func (c *DetailController) Propositions() []entity.PropositionOutputModel {
	c.mu.Lock()
	defer c.mu.Unlock()

	return service.MapPropositions(c.publication.Propositions)
}

// CanPropose reports whether the proposal form may be opened: only freelance
// viewers, and only while the publication is open.
func (c *DetailController) CanPropose() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.isFreelance && c.publication.Statut == common.StatusOuvert
}

func (c *DetailController) Editing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.editing
}

func (c *DetailController) Alert() *Alert {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.alert
}

func (c *DetailController) OpenForm() error {
	if !c.CanPropose() {
		return ErrFormHidden
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing = true

	return nil
}

func (c *DetailController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.editing = false
}

func (c *DetailController) SetForm(form PropositionForm) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = form
}

func (c *DetailController) Form() PropositionForm {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.form
}

// Submit validates the form locally and sends the proposition. Local failures
// never issue a network call. On success the form collapses and resets; on
// failure it stays open with every field intact and the server message shown.
func (c *DetailController) Submit(ctx context.Context) error {
	c.mu.Lock()
	if !c.editing {
		c.mu.Unlock()
		return ErrFormHidden
	}
	if c.inFlight != uuid.Nil {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}

	input, err := c.buildInputLocked()
	if err != nil {
		c.mu.Unlock()
		return err
	}

	c.inFlight = uuid.New()
	c.alert = nil
	publication := c.publication
	c.mu.Unlock()

	updated, err := c.propositionService.SubmitProposition(ctx, &publication, input)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = uuid.Nil

	if err != nil {
		c.alert = errorAlert(restclient.Message(err, "Erreur lors de l'envoi de la proposition"))
		return err
	}

	if updated != nil {
		c.publication = *updated
	}
	c.editing = false
	c.form = PropositionForm{}
	c.alert = successAlert("Proposition envoyée avec succès !")

	return nil
}

func (c *DetailController) buildInputLocked() (*entity.CreatePropositionInput, error) {
	if err := c.validate.Struct(c.form); err != nil {
		c.alert = errorAlert(getAllErrorMessages(err))
		return nil, ErrValidation
	}

	budget, err := strconv.ParseFloat(strings.TrimSpace(c.form.Budget), 64)
	if err != nil || budget < 0 {
		c.alert = errorAlert("'Budget': valeur incorrecte")
		return nil, ErrValidation
	}

	return &entity.CreatePropositionInput{
		Message: c.form.Message,
		Budget:  budget,
		Delai:   c.form.Delai,
	}, nil
}
