package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/service"
)

type fakeCreateService struct {
	calls     int
	lastInput *entity.CreatePublicationInput
	created   *entity.Publication
	err       error
	started   chan struct{}
	block     chan struct{}
}

func (f *fakeCreateService) CreatePublication(ctx context.Context, input *entity.CreatePublicationInput) (*entity.Publication, error) {
	f.calls++
	f.lastInput = input
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.created != nil {
		return f.created, nil
	}
	return &entity.Publication{Id: "p1", Titre: input.Titre, Statut: common.StatusOuvert}, nil
}

func (f *fakeCreateService) GetPublications(ctx context.Context, filter entity.PublicationFilter) ([]entity.Publication, error) {
	return nil, errors.New("not used")
}

func (f *fakeCreateService) GetSiteStats(ctx context.Context) (*entity.SiteStats, error) {
	return nil, errors.New("not used")
}

func validCreateForm() CreateForm {
	return CreateForm{
		Titre:       "Site vitrine",
		Description: "Un site vitrine responsive",
		Budget:      "500",
		Delai:       "2 semaines",
		Categorie:   "developpement-web",
	}
}

func TestAddSkillIgnoresEmptyAndDuplicates(t *testing.T) {
	c := NewCreateController(&fakeCreateService{}, nil)

	c.AddSkill("React")
	c.AddSkill("  Node.js  ")
	c.AddSkill("React")
	c.AddSkill("")
	c.AddSkill("   ")

	want := []string{"React", "Node.js"}
	if got := c.Skills(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRemoveSkill(t *testing.T) {
	c := NewCreateController(&fakeCreateService{}, nil)
	c.AddSkill("React")
	c.AddSkill("Node.js")
	c.AddSkill("Figma")

	c.RemoveSkill("Node.js")

	want := []string{"React", "Figma"}
	if got := c.Skills(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSetFilesEnforcesLimit(t *testing.T) {
	c := NewCreateController(&fakeCreateService{}, nil)

	tooMany := make([]entity.Attachment, service.MaxAttachments+1)
	if err := c.SetFiles(tooMany); !errors.Is(err, service.ErrTooManyAttachments) {
		t.Fatalf("expected ErrTooManyAttachments, got %v", err)
	}
	if got := c.Files(); len(got) != 0 {
		t.Fatalf("a rejected selection must not stick, got %d files", len(got))
	}

	ok := make([]entity.Attachment, service.MaxAttachments)
	if err := c.SetFiles(ok); err != nil {
		t.Fatalf("set files: %v", err)
	}
	if got := c.Files(); len(got) != service.MaxAttachments {
		t.Fatalf("expected %d files, got %d", service.MaxAttachments, len(got))
	}
}

func TestCreateSubmitRejectsIncompleteDraftLocally(t *testing.T) {
	svc := &fakeCreateService{}
	c := NewCreateController(svc, nil)

	form := validCreateForm()
	form.Titre = ""
	c.SetForm(form)

	if _, err := c.Submit(context.Background()); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if svc.calls != 0 {
		t.Fatalf("local failure must not reach the network, got %d calls", svc.calls)
	}
	if alert := c.Alert(); alert == nil || alert.Type != AlertError {
		t.Fatalf("expected an error alert, got %+v", alert)
	}
}

func TestCreateSubmitSuccessResetsEverything(t *testing.T) {
	svc := &fakeCreateService{}

	var announced *entity.Publication
	c := NewCreateController(svc, func(p entity.Publication) { announced = &p })

	c.SetForm(validCreateForm())
	c.AddSkill("React")
	c.AddSkill("Node.js")
	if err := c.SetFiles([]entity.Attachment{{Name: "cahier.pdf", Content: []byte("pdf")}}); err != nil {
		t.Fatalf("set files: %v", err)
	}

	created, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created == nil || created.Id != "p1" {
		t.Fatalf("unexpected created publication %+v", created)
	}

	if svc.lastInput.Budget != 500 {
		t.Fatalf("unexpected budget %v", svc.lastInput.Budget)
	}
	if !reflect.DeepEqual(svc.lastInput.CompetencesRequises, []string{"React", "Node.js"}) {
		t.Fatalf("unexpected skills %v", svc.lastInput.CompetencesRequises)
	}
	if len(svc.lastInput.Fichiers) != 1 || svc.lastInput.Fichiers[0].Name != "cahier.pdf" {
		t.Fatalf("unexpected files %+v", svc.lastInput.Fichiers)
	}

	if got := c.Form(); got != (CreateForm{}) {
		t.Fatalf("expected a reset form, got %+v", got)
	}
	if got := c.Skills(); len(got) != 0 {
		t.Fatalf("expected no skills left, got %v", got)
	}
	if got := c.Files(); len(got) != 0 {
		t.Fatalf("expected no files left, got %d", len(got))
	}
	alert := c.Alert()
	if alert == nil || alert.Type != AlertSuccess || alert.Message != "Publication créée avec succès !" {
		t.Fatalf("unexpected alert %+v", alert)
	}
	if announced == nil || announced.Id != "p1" {
		t.Fatalf("expected the success callback, got %+v", announced)
	}
}

func TestCreateSubmitFailurePreservesDraft(t *testing.T) {
	svc := &fakeCreateService{err: errors.New("backend down")}
	c := NewCreateController(svc, nil)

	form := validCreateForm()
	c.SetForm(form)
	c.AddSkill("React")

	if _, err := c.Submit(context.Background()); err == nil {
		t.Fatal("expected an error")
	}

	if got := c.Form(); got != form {
		t.Fatalf("expected the draft intact, got %+v", got)
	}
	if got := c.Skills(); !reflect.DeepEqual(got, []string{"React"}) {
		t.Fatalf("expected the skills intact, got %v", got)
	}
	alert := c.Alert()
	if alert == nil || alert.Type != AlertError || alert.Message != "Erreur lors de la création de la publication" {
		t.Fatalf("unexpected alert %+v", alert)
	}
}

func TestCreateSubmitGuardsAgainstDoubleSend(t *testing.T) {
	svc := &fakeCreateService{started: make(chan struct{}), block: make(chan struct{})}
	c := NewCreateController(svc, nil)
	c.SetForm(validCreateForm())

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()
	<-svc.started

	if !c.Submitting() {
		t.Fatal("expected the in-flight guard to be visible")
	}
	if _, err := c.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}

	close(svc.block)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if svc.calls != 1 {
		t.Fatalf("expected exactly one call, got %d", svc.calls)
	}
}
