package service

import (
	"context"
	"strings"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/repo"
)

const MaxAttachments = 5

type PublicationService struct {
	publicationRepo repo.Publication
	userRepo        repo.User
}

func NewPublicationService(repos *repo.Repositories) *PublicationService {
	return &PublicationService{
		publicationRepo: repos.Publication,
		userRepo:        repos.User,
	}
}

func (s *PublicationService) GetPublications(ctx context.Context, filter entity.PublicationFilter) ([]entity.Publication, error) {
	if filter.Statut != "" {
		if _, ok := common.ValidPublicationStatuses[filter.Statut]; !ok {
			return nil, ErrUnknownStatus
		}
	}

	return s.publicationRepo.GetPublications(ctx, filter)
}

// CreatePublication checks the draft invariants and submits it. The checks
// mirror the server-side ones; a stale draft can still be rejected upstream.
func (s *PublicationService) CreatePublication(ctx context.Context, input *entity.CreatePublicationInput) (*entity.Publication, error) {
	if strings.TrimSpace(input.Titre) == "" {
		return nil, ErrMissingTitle
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrMissingDescription
	}
	if strings.TrimSpace(input.Categorie) == "" {
		return nil, ErrMissingCategory
	}
	if strings.TrimSpace(input.Delai) == "" {
		return nil, ErrMissingDelay
	}
	if input.Budget < 0 {
		return nil, ErrNegativeBudget
	}
	if len(input.Fichiers) > MaxAttachments {
		return nil, ErrTooManyAttachments
	}

	input.CompetencesRequises = NormalizeSkills(input.CompetencesRequises)

	return s.publicationRepo.CreatePublication(ctx, input)
}

func (s *PublicationService) GetSiteStats(ctx context.Context) (*entity.SiteStats, error) {
	publications, err := s.publicationRepo.GetPublications(ctx, entity.PublicationFilter{})
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &entity.SiteStats{Projects: len(publications)}
	for _, publication := range publications {
		if publication.Statut == common.StatusTermine {
			stats.Completed++
		}
	}
	for _, user := range users {
		switch {
		case common.IsFreelanceRole(user.Role):
			stats.Freelancers++
		case user.Role == common.RoleClient:
			stats.Clients++
		}
	}

	return stats, nil
}

// NormalizeSkills trims every tag and drops empties and exact duplicates,
// preserving the order tags were authored in.
func NormalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}

	return normalized
}
