package service

import (
	"context"
	"strings"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/repo"
	"freelance-marketplace-client/internal/session"
)

type PropositionService struct {
	publicationRepo repo.Publication
	store           session.Store
}

func NewPropositionService(repos *repo.Repositories, store session.Store) *PropositionService {
	return &PropositionService{
		publicationRepo: repos.Publication,
		store:           store,
	}
}

// SubmitProposition bids against a publication. Preconditions are checked
// locally and failures never reach the network; the server revalidates and can
// still refuse, e.g. when the publication closed since it was fetched.
func (s *PropositionService) SubmitProposition(ctx context.Context, publication *entity.Publication, input *entity.CreatePropositionInput) (*entity.Publication, error) {
	sess, ok := s.store.Current()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	if !common.IsFreelanceRole(sess.User.Role) {
		return nil, ErrNotFreelance
	}
	if publication.Statut != common.StatusOuvert {
		return nil, ErrPublicationNotOpen
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, ErrMissingMessage
	}
	if strings.TrimSpace(input.Delai) == "" {
		return nil, ErrMissingDelay
	}
	if input.Budget < 0 {
		return nil, ErrNegativeBudget
	}

	return s.publicationRepo.AddProposition(ctx, publication.Id, input)
}
