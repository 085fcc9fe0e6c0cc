package entity

// wire model
type Publication struct {
	Id                  string        `json:"_id"`
	Titre               string        `json:"titre"`
	Description         string        `json:"description"`
	Budget              float64       `json:"budget"`
	Delai               string        `json:"delai"`
	Categorie           Ref           `json:"categorie"`
	CompetencesRequises []string      `json:"competencesRequises"`
	Statut              string        `json:"statut"`
	PiecesJointes       []PieceJointe `json:"piecesJointes"`
	Propositions        []Proposition `json:"propositions"`
	CreatedAt           string        `json:"createdAt"`
}

type PieceJointe struct {
	Nom string `json:"nom"`
	Url string `json:"url"`
}

// Attachment is a file selected for upload with a new publication.
type Attachment struct {
	Name    string
	Content []byte
}

// service + repo input model
type CreatePublicationInput struct {
	Titre               string
	Description         string
	Budget              float64
	Delai               string
	Categorie           string
	CompetencesRequises []string
	Fichiers            []Attachment
}

// display model
type PublicationOutputModel struct {
	Id           string
	Titre        string
	Description  string
	Budget       string
	Delai        string
	Categorie    string
	Statut       string
	Competences  []string
	Propositions int
	CreatedAt    string
}
