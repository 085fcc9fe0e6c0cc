package service

import (
	"context"
	"errors"
	"testing"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/repo"
	"freelance-marketplace-client/internal/session"
)

type fakePublicationRepo struct {
	calls      int
	lastId     string
	lastInput  *entity.CreatePropositionInput
	addErr     error
	list       []entity.Publication
	listErr    error
	created    *entity.Publication
	lastCreate *entity.CreatePublicationInput
}

func (f *fakePublicationRepo) GetPublications(ctx context.Context, filter entity.PublicationFilter) ([]entity.Publication, error) {
	return f.list, f.listErr
}

func (f *fakePublicationRepo) CreatePublication(ctx context.Context, input *entity.CreatePublicationInput) (*entity.Publication, error) {
	f.lastCreate = input
	if f.created != nil {
		return f.created, nil
	}
	return &entity.Publication{Id: "p1", Titre: input.Titre, Statut: common.StatusOuvert}, nil
}

func (f *fakePublicationRepo) AddProposition(ctx context.Context, publicationId string, input *entity.CreatePropositionInput) (*entity.Publication, error) {
	f.calls++
	f.lastId = publicationId
	f.lastInput = input
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &entity.Publication{Id: publicationId, Statut: common.StatusOuvert}, nil
}

func loggedInStore(t *testing.T, role string) session.Store {
	t.Helper()
	store := session.NewMemoryStore()
	err := store.Set(&entity.Session{
		Token: "jwt",
		User:  entity.User{Id: "u1", Email: "f@example.tn", Role: role},
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return store
}

func newPropositionService(repoFake *fakePublicationRepo, store session.Store) *PropositionService {
	return NewPropositionService(&repo.Repositories{Publication: repoFake}, store)
}

func TestSubmitPropositionRejectedBeforeNetwork(t *testing.T) {
	open := &entity.Publication{Id: "p1", Statut: common.StatusOuvert}
	valid := entity.CreatePropositionInput{Message: "Test", Budget: 100, Delai: "5 jours"}

	cases := []struct {
		name        string
		store       session.Store
		publication *entity.Publication
		input       entity.CreatePropositionInput
		want        error
	}{
		{
			name:        "no session",
			store:       session.NewMemoryStore(),
			publication: open,
			input:       valid,
			want:        ErrNotAuthenticated,
		},
		{
			name:        "client role",
			store:       loggedInStore(t, common.RoleClient),
			publication: open,
			input:       valid,
			want:        ErrNotFreelance,
		},
		{
			name:        "publication closed",
			store:       loggedInStore(t, common.RoleFreelance),
			publication: &entity.Publication{Id: "p1", Statut: common.StatusTermine},
			input:       valid,
			want:        ErrPublicationNotOpen,
		},
		{
			name:        "blank message",
			store:       loggedInStore(t, common.RoleFreelance),
			publication: open,
			input:       entity.CreatePropositionInput{Message: "   ", Budget: 100, Delai: "5 jours"},
			want:        ErrMissingMessage,
		},
		{
			name:        "blank delay",
			store:       loggedInStore(t, common.RoleFreelance),
			publication: open,
			input:       entity.CreatePropositionInput{Message: "Test", Budget: 100},
			want:        ErrMissingDelay,
		},
		{
			name:        "negative budget",
			store:       loggedInStore(t, common.RoleFreelance),
			publication: open,
			input:       entity.CreatePropositionInput{Message: "Test", Budget: -1, Delai: "5 jours"},
			want:        ErrNegativeBudget,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repoFake := &fakePublicationRepo{}
			svc := newPropositionService(repoFake, tc.store)

			_, err := svc.SubmitProposition(context.Background(), tc.publication, &tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if repoFake.calls != 0 {
				t.Fatalf("expected no network call, got %d", repoFake.calls)
			}
		})
	}
}

func TestSubmitPropositionReachesRepo(t *testing.T) {
	repoFake := &fakePublicationRepo{}
	svc := newPropositionService(repoFake, loggedInStore(t, common.RoleCandidat))

	open := &entity.Publication{Id: "p42", Statut: common.StatusOuvert}
	input := &entity.CreatePropositionInput{Message: "Test", Budget: 100, Delai: "5 jours"}

	updated, err := svc.SubmitProposition(context.Background(), open, input)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if updated == nil || updated.Id != "p42" {
		t.Fatalf("expected the updated publication back, got %+v", updated)
	}
	if repoFake.calls != 1 {
		t.Fatalf("expected exactly one repo call, got %d", repoFake.calls)
	}
	if repoFake.lastId != "p42" {
		t.Fatalf("unexpected publication id %q", repoFake.lastId)
	}
	if repoFake.lastInput.Message != "Test" || repoFake.lastInput.Budget != 100 || repoFake.lastInput.Delai != "5 jours" {
		t.Fatalf("unexpected input forwarded: %+v", repoFake.lastInput)
	}
}

func TestSubmitPropositionPropagatesServerRefusal(t *testing.T) {
	refused := errors.New("la publication n'est plus ouverte")
	repoFake := &fakePublicationRepo{addErr: refused}
	svc := newPropositionService(repoFake, loggedInStore(t, common.RoleFreelance))

	open := &entity.Publication{Id: "p1", Statut: common.StatusOuvert}
	_, err := svc.SubmitProposition(context.Background(), open, &entity.CreatePropositionInput{Message: "Test", Budget: 100, Delai: "5 jours"})
	if !errors.Is(err, refused) {
		t.Fatalf("expected the repo error, got %v", err)
	}
}
