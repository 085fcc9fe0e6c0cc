package service

import (
	"strconv"
	"strings"
	"time"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
)

func MapPublication(p *entity.Publication) *entity.PublicationOutputModel {
	return &entity.PublicationOutputModel{
		Id:           p.Id,
		Titre:        p.Titre,
		Description:  p.Description,
		Budget:       formatBudget(p.Budget),
		Delai:        p.Delai,
		Categorie:    categoryLabel(p.Categorie),
		Statut:       common.StatusLabel(p.Statut),
		Competences:  p.CompetencesRequises,
		Propositions: len(p.Propositions),
		CreatedAt:    formatDate(p.CreatedAt),
	}
}

func MapPublications(publications []entity.Publication) []entity.PublicationOutputModel {
	s := make([]entity.PublicationOutputModel, 0)
	for _, publication := range publications {
		s = append(s, *MapPublication(&publication))
	}

	return s
}

func MapProposition(p *entity.Proposition) *entity.PropositionOutputModel {
	author := p.Freelance.Name
	if author == "" {
		author = "Freelance"
	}

	return &entity.PropositionOutputModel{
		Freelance: author,
		Message:   p.Message,
		Budget:    formatBudget(p.Budget),
		Delai:     p.Delai,
		Statut:    p.Statut,
		Date:      formatDate(p.Date),
	}
}

func MapPropositions(propositions []entity.Proposition) []entity.PropositionOutputModel {
	s := make([]entity.PropositionOutputModel, 0)
	for _, proposition := range propositions {
		s = append(s, *MapProposition(&proposition))
	}

	return s
}

func formatBudget(budget float64) string {
	return strconv.FormatFloat(budget, 'f', -1, 64) + " TND"
}

// categoryLabel renders a category reference for display: the populated name
// when present, otherwise the slug with hyphens spaced out.
func categoryLabel(ref entity.Ref) string {
	if ref.Name != "" {
		return ref.Name
	}

	return strings.ReplaceAll(ref.Id, "-", " ")
}

func formatDate(raw string) string {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}

	return parsed.Format("02/01/2006")
}
