package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/repo"
)

type fakeUserRepo struct {
	users []entity.User
	err   error
}

func (f *fakeUserRepo) GetUsers(ctx context.Context) ([]entity.User, error) {
	return f.users, f.err
}

func newPublicationService(pub *fakePublicationRepo, usr *fakeUserRepo) *PublicationService {
	if usr == nil {
		usr = &fakeUserRepo{}
	}
	return NewPublicationService(&repo.Repositories{Publication: pub, User: usr})
}

func validDraft() *entity.CreatePublicationInput {
	return &entity.CreatePublicationInput{
		Titre:       "Site vitrine",
		Description: "Un site vitrine responsive",
		Budget:      500,
		Delai:       "2 semaines",
		Categorie:   "developpement-web",
	}
}

func TestCreatePublicationRejectsBrokenDrafts(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.CreatePublicationInput)
		want   error
	}{
		{"blank title", func(in *entity.CreatePublicationInput) { in.Titre = "  " }, ErrMissingTitle},
		{"blank description", func(in *entity.CreatePublicationInput) { in.Description = "" }, ErrMissingDescription},
		{"blank category", func(in *entity.CreatePublicationInput) { in.Categorie = "" }, ErrMissingCategory},
		{"blank delay", func(in *entity.CreatePublicationInput) { in.Delai = " " }, ErrMissingDelay},
		{"negative budget", func(in *entity.CreatePublicationInput) { in.Budget = -10 }, ErrNegativeBudget},
		{"too many attachments", func(in *entity.CreatePublicationInput) {
			in.Fichiers = make([]entity.Attachment, MaxAttachments+1)
		}, ErrTooManyAttachments},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repoFake := &fakePublicationRepo{}
			svc := newPublicationService(repoFake, nil)

			draft := validDraft()
			tc.mutate(draft)

			_, err := svc.CreatePublication(context.Background(), draft)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if repoFake.lastCreate != nil {
				t.Fatal("broken draft must not reach the repo")
			}
		})
	}
}

func TestCreatePublicationNormalizesSkills(t *testing.T) {
	repoFake := &fakePublicationRepo{}
	svc := newPublicationService(repoFake, nil)

	draft := validDraft()
	draft.CompetencesRequises = []string{" React ", "Node.js", "React", "", "  "}

	if _, err := svc.CreatePublication(context.Background(), draft); err != nil {
		t.Fatalf("create: %v", err)
	}

	want := []string{"React", "Node.js"}
	if !reflect.DeepEqual(repoFake.lastCreate.CompetencesRequises, want) {
		t.Fatalf("expected %v, got %v", want, repoFake.lastCreate.CompetencesRequises)
	}
}

func TestGetPublicationsRejectsUnknownStatus(t *testing.T) {
	svc := newPublicationService(&fakePublicationRepo{}, nil)

	_, err := svc.GetPublications(context.Background(), entity.PublicationFilter{Statut: "archive"})
	if !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestGetSiteStatsCountsRolesAndCompletion(t *testing.T) {
	pub := &fakePublicationRepo{list: []entity.Publication{
		{Id: "p1", Statut: common.StatusOuvert},
		{Id: "p2", Statut: common.StatusTermine},
		{Id: "p3", Statut: common.StatusTermine},
	}}
	usr := &fakeUserRepo{users: []entity.User{
		{Id: "u1", Role: common.RoleFreelance},
		{Id: "u2", Role: common.RoleCandidat},
		{Id: "u3", Role: common.RoleClient},
		{Id: "u4", Role: common.RoleAdmin},
	}}
	svc := newPublicationService(pub, usr)

	stats, err := svc.GetSiteStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Projects != 3 || stats.Completed != 2 {
		t.Fatalf("unexpected project counts: %+v", stats)
	}
	if stats.Freelancers != 2 || stats.Clients != 1 {
		t.Fatalf("unexpected account counts: %+v", stats)
	}
}
