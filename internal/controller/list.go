package controller

import (
	"context"
	"sync"

	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/service"
)

// ListController drives the "projets disponibles" screen: it owns the filter
// selection and the fetched collection. Every fetch carries a sequence tag;
// a response that is no longer the latest issued is discarded, so the rendered
// collection always reflects the most recent request rather than the most
// recently arrived response.
type ListController struct {
	publicationService service.Publication
	onSelect           func(entity.Publication)

	mu           sync.Mutex
	filter       entity.PublicationFilter
	publications []entity.Publication
	loaded       bool
	loading      bool
	alert        *Alert
	seq          uint64
}

func NewListController(svc service.Publication, onSelect func(entity.Publication)) *ListController {
	return &ListController{
		publicationService: svc,
		onSelect:           onSelect,
	}
}

// SetFilter replaces the filter selection and reloads the collection.
func (c *ListController) SetFilter(ctx context.Context, filter entity.PublicationFilter) error {
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()

	return c.Refresh(ctx)
}

func (c *ListController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	tag := c.seq
	filter := c.filter
	c.loading = true
	c.alert = nil
	c.mu.Unlock()

	publications, err := c.publicationService.GetPublications(ctx, filter)

	c.mu.Lock()
	defer c.mu.Unlock()

	if tag != c.seq {
		// a newer request was issued while this one was in flight
		return nil
	}
	c.loading = false

	if err != nil {
		c.alert = errorAlert("Erreur lors du chargement des publications")
		if !c.loaded {
			c.publications = nil
		}
		return err
	}

	c.publications = publications
	c.loaded = true

	return nil
}

func (c *ListController) Filter() entity.PublicationFilter {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.filter
}

func (c *ListController) Publications() []entity.Publication {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]entity.Publication, len(c.publications))
	copy(copied, c.publications)

	return copied
}

func (c *ListController) Summaries() []entity.PublicationOutputModel {
	return service.MapPublications(c.Publications())
}

func (c *ListController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loading
}

// Empty reports whether a successful fetch came back with no publications.
func (c *ListController) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loaded && len(c.publications) == 0
}

func (c *ListController) Alert() *Alert {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.alert
}

// Select hands the chosen publication to the selection callback. It reports
// whether the id matched anything in the current collection.
func (c *ListController) Select(id string) bool {
	c.mu.Lock()
	var chosen *entity.Publication
	for i := range c.publications {
		if c.publications[i].Id == id {
			chosen = &c.publications[i]
			break
		}
	}
	if chosen == nil {
		c.mu.Unlock()
		return false
	}
	publication := *chosen
	c.mu.Unlock()

	if c.onSelect != nil {
		c.onSelect(publication)
	}

	return true
}
