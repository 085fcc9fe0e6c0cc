package controller

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/service"
	"freelance-marketplace-client/pkg/restclient"
)

// CreateForm holds the scalar draft fields of a new publication.
type CreateForm struct {
	Titre       string `validate:"required"`
	Description string `validate:"required"`
	Budget      string `validate:"required"`
	Delai       string `validate:"required"`
	Categorie   string `validate:"required"`
}

// CreateController manages a new-publication draft: the scalar fields, the
// dynamic skill-tag list and up to five attachments. Submission is guarded by
// an in-flight token taken synchronously before any I/O, so a rapid double
// submit cannot produce two requests.
type CreateController struct {
	publicationService service.Publication
	validate           *validator.Validate
	onSuccess          func(entity.Publication)

	mu          sync.Mutex
	form        CreateForm
	competences []string
	fichiers    []entity.Attachment
	inFlight    uuid.UUID
	alert       *Alert
}

func NewCreateController(svc service.Publication, onSuccess func(entity.Publication)) *CreateController {
	return &CreateController{
		publicationService: svc,
		validate:           newValidator(),
		onSuccess:          onSuccess,
	}
}

func (c *CreateController) SetForm(form CreateForm) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = form
}

func (c *CreateController) Form() CreateForm {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.form
}

// AddSkill appends a tag to the draft. Empty input and exact duplicates are
// silently ignored.
func (c *CreateController) AddSkill(skill string) {
	trimmed := strings.TrimSpace(skill)
	if trimmed == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.competences {
		if existing == trimmed {
			return
		}
	}
	c.competences = append(c.competences, trimmed)
}

func (c *CreateController) RemoveSkill(skill string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.competences[:0]
	for _, existing := range c.competences {
		if existing != skill {
			kept = append(kept, existing)
		}
	}
	c.competences = kept
}

func (c *CreateController) Skills() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]string, len(c.competences))
	copy(copied, c.competences)

	return copied
}

func (c *CreateController) SetFiles(files []entity.Attachment) error {
	if len(files) > service.MaxAttachments {
		return service.ErrTooManyAttachments
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.fichiers = files

	return nil
}

func (c *CreateController) Files() []entity.Attachment {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]entity.Attachment, len(c.fichiers))
	copy(copied, c.fichiers)

	return copied
}

func (c *CreateController) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.inFlight != uuid.Nil
}

func (c *CreateController) Alert() *Alert {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.alert
}

// Submit sends the draft as a multipart payload. On success every field
// returns to its initial empty state and the success callback receives the
// created record; on failure everything the user typed is preserved.
func (c *CreateController) Submit(ctx context.Context) (*entity.Publication, error) {
	c.mu.Lock()
	if c.inFlight != uuid.Nil {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	input, err := c.buildInputLocked()
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	c.inFlight = uuid.New()
	c.alert = nil
	c.mu.Unlock()

	created, err := c.publicationService.CreatePublication(ctx, input)

	c.mu.Lock()
	c.inFlight = uuid.Nil
	if err != nil {
		c.alert = errorAlert(restclient.Message(err, "Erreur lors de la création de la publication"))
		c.mu.Unlock()
		return nil, err
	}

	c.form = CreateForm{}
	c.competences = nil
	c.fichiers = nil
	c.alert = successAlert("Publication créée avec succès !")
	c.mu.Unlock()

	if c.onSuccess != nil {
		c.onSuccess(*created)
	}

	return created, nil
}

func (c *CreateController) buildInputLocked() (*entity.CreatePublicationInput, error) {
	if err := c.validate.Struct(c.form); err != nil {
		c.alert = errorAlert(getAllErrorMessages(err))
		return nil, ErrValidation
	}

	budget, err := strconv.ParseFloat(strings.TrimSpace(c.form.Budget), 64)
	if err != nil || budget < 0 {
		c.alert = errorAlert("'Budget': valeur incorrecte")
		return nil, ErrValidation
	}

	skills := make([]string, len(c.competences))
	copy(skills, c.competences)
	files := make([]entity.Attachment, len(c.fichiers))
	copy(files, c.fichiers)

	return &entity.CreatePublicationInput{
		Titre:               c.form.Titre,
		Description:         c.form.Description,
		Budget:              budget,
		Delai:               c.form.Delai,
		Categorie:           c.form.Categorie,
		CompetencesRequises: skills,
		Fichiers:            files,
	}, nil
}
