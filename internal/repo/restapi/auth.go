package restapi

import (
	"context"

	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/pkg/restclient"
)

type AuthRepo struct {
	client *restclient.Client
}

func NewAuthRepo(c *restclient.Client) *AuthRepo {
	return &AuthRepo{client: c}
}

type loginRequest struct {
	Email string `json:"email"`
	Mdp   string `json:"mdp"`
}

// The login payload names the user id "id" while every collection endpoint
// uses "_id", hence the dedicated response struct.
type loginResponse struct {
	User struct {
		Id     string `json:"id"`
		Nom    string `json:"nom"`
		Prenom string `json:"prenom"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	} `json:"user"`
	Token string `json:"token"`
}

func (r *AuthRepo) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	var parsed loginResponse
	if err := r.client.PostJSON(ctx, "/login", loginRequest{Email: email, Mdp: password}, &parsed); err != nil {
		return nil, mapStatus(err)
	}

	return &entity.Session{
		Token: parsed.Token,
		User: entity.User{
			Id:     parsed.User.Id,
			Nom:    parsed.User.Nom,
			Prenom: parsed.User.Prenom,
			Email:  parsed.User.Email,
			Role:   parsed.User.Role,
		},
	}, nil
}

type registerRequest struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	Mdp       string `json:"mdp"`
	Role      string `json:"role"`
	Telephone string `json:"telephone"`
}

func (r *AuthRepo) Register(ctx context.Context, input *entity.RegisterInput) error {
	body := registerRequest{
		Nom:       input.Nom,
		Prenom:    input.Prenom,
		Email:     input.Email,
		Mdp:       input.Mdp,
		Role:      input.Role,
		Telephone: input.Telephone,
	}

	return mapStatus(r.client.PostJSON(ctx, "/register", body, nil))
}
