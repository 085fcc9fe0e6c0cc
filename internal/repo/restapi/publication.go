package restapi

import (
	"context"
	"strconv"

	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/pkg/restclient"
)

type PublicationRepo struct {
	client *restclient.Client
}

func NewPublicationRepo(c *restclient.Client) *PublicationRepo {
	return &PublicationRepo{client: c}
}

func (r *PublicationRepo) GetPublications(ctx context.Context, filter entity.PublicationFilter) ([]entity.Publication, error) {
	var publications []entity.Publication
	if err := r.client.GetJSON(ctx, "/publications", filter.Params(), &publications); err != nil {
		return nil, mapStatus(err)
	}

	return publications, nil
}

func (r *PublicationRepo) CreatePublication(ctx context.Context, input *entity.CreatePublicationInput) (*entity.Publication, error) {
	payload := restclient.NewPayload()
	payload.AddField("titre", input.Titre)
	payload.AddField("description", input.Description)
	payload.AddField("budget", strconv.FormatFloat(input.Budget, 'f', -1, 64))
	payload.AddField("delai", input.Delai)
	payload.AddField("categorie", input.Categorie)
	if err := payload.AddJSONField("competencesRequises", input.CompetencesRequises); err != nil {
		return nil, err
	}
	for _, fichier := range input.Fichiers {
		payload.AddFile("fichiers", fichier.Name, fichier.Content)
	}

	var created entity.Publication
	if err := r.client.PostMultipart(ctx, "/publications", payload, &created); err != nil {
		return nil, mapStatus(err)
	}

	return &created, nil
}

type addPropositionRequest struct {
	Message string  `json:"message"`
	Budget  float64 `json:"budget"`
	Delai   string  `json:"delai"`
}

func (r *PublicationRepo) AddProposition(ctx context.Context, publicationId string, input *entity.CreatePropositionInput) (*entity.Publication, error) {
	body := addPropositionRequest{
		Message: input.Message,
		Budget:  input.Budget,
		Delai:   input.Delai,
	}

	var updated entity.Publication
	if err := r.client.PostJSON(ctx, "/publications/"+publicationId+"/propositions", body, &updated); err != nil {
		return nil, mapStatus(err)
	}

	return &updated, nil
}
