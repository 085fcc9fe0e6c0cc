package mockapi

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
)

// store is the mock backend's in-memory state. The real backend owns this
// data; nothing here survives a restart and nothing needs to.
type store struct {
	mu           sync.Mutex
	users        []storedUser
	sessions     map[string]string // token -> user id
	publications []entity.Publication
	categories   []entity.Category
}

type storedUser struct {
	entity.User
	Mdp string
}

func newStore() *store {
	return &store{
		sessions:   make(map[string]string),
		categories: seedCategories(),
	}
}

func seedCategories() []entity.Category {
	labels := map[string]struct {
		name    string
		icone   string
		couleur string
	}{
		"developpement-web": {"Développement Web", "💻", "#6366f1"},
		"design":            {"Design", "🎨", "#ec4899"},
		"redaction":         {"Rédaction", "✍️", "#f59e0b"},
		"marketing":         {"Marketing", "📈", "#10b981"},
		"traduction":        {"Traduction", "🌍", "#3b82f6"},
		"autre":             {"Autre", "📦", "#6b7280"},
	}

	categories := make([]entity.Category, 0, len(common.CategorySlugs))
	for _, slug := range common.CategorySlugs {
		meta := labels[slug]
		categories = append(categories, entity.Category{
			Id:           slug,
			NomCategorie: meta.name,
			Icone:        meta.icone,
			Couleur:      meta.couleur,
		})
	}

	return categories
}

func (s *store) addUser(user entity.User, mdp string) (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return entity.User{}, false
		}
	}

	user.Id = uuid.NewString()
	s.users = append(s.users, storedUser{User: user, Mdp: mdp})

	return user, true
}

func (s *store) authenticate(email, mdp string) (entity.User, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, email) && existing.Mdp == mdp {
			token := uuid.NewString()
			s.sessions[token] = existing.Id
			return existing.User, token, true
		}
	}

	return entity.User{}, "", false
}

func (s *store) userByToken(token string) (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.sessions[token]
	if !ok {
		return entity.User{}, false
	}
	for _, existing := range s.users {
		if existing.Id == id {
			return existing.User, true
		}
	}

	return entity.User{}, false
}

func (s *store) listUsers() []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]entity.User, 0, len(s.users))
	for _, existing := range s.users {
		users = append(users, existing.User)
	}

	return users
}

func (s *store) listCategories() []entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]entity.Category, len(s.categories))
	copy(categories, s.categories)
	for i := range categories {
		count := 0
		for _, publication := range s.publications {
			if publication.Categorie.Id == categories[i].Id {
				count++
			}
		}
		categories[i].NombrePublications = count
	}

	return categories
}

func (s *store) listPublications(categorie, statut string) []entity.Publication {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]entity.Publication, 0, len(s.publications))
	for _, publication := range s.publications {
		if categorie != "" && publication.Categorie.Id != categorie {
			continue
		}
		if statut != "" && publication.Statut != statut {
			continue
		}
		matched = append(matched, publication)
	}

	return matched
}

func (s *store) addPublication(publication entity.Publication) entity.Publication {
	publication.Id = uuid.NewString()
	publication.Statut = common.StatusOuvert
	publication.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if publication.Propositions == nil {
		publication.Propositions = []entity.Proposition{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.publications = append(s.publications, publication)

	return publication
}

func (s *store) addProposition(publicationId string, proposition entity.Proposition) (entity.Publication, error) {
	proposition.Id = uuid.NewString()
	proposition.Statut = common.PropositionEnAttente
	proposition.Date = time.Now().UTC().Format(time.RFC3339)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.publications {
		if s.publications[i].Id != publicationId {
			continue
		}
		if s.publications[i].Statut != common.StatusOuvert {
			return entity.Publication{}, errPublicationClosed
		}
		s.publications[i].Propositions = append(s.publications[i].Propositions, proposition)
		return s.publications[i], nil
	}

	return entity.Publication{}, errPublicationMissing
}
