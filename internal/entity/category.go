package entity

type Category struct {
	Id                 string `json:"_id"`
	NomCategorie       string `json:"nom_categorie"`
	Description        string `json:"description"`
	Icone              string `json:"icone"`
	Couleur            string `json:"couleur"`
	NombrePublications int    `json:"nombrePublications"`
}
