package entity

import (
	"encoding/json"
)

// Ref is a reference to another document. Depending on whether the backend
// populated the relation, it arrives either as a bare id string or as a full
// object; both decode into the same value.
type Ref struct {
	Id   string
	Name string
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ref{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.Id)
	}

	var populated struct {
		Id           string `json:"_id"`
		Nom          string `json:"nom"`
		NomCategorie string `json:"nom_categorie"`
	}
	if err := json.Unmarshal(data, &populated); err != nil {
		return err
	}

	r.Id = populated.Id
	r.Name = populated.NomCategorie
	if r.Name == "" {
		r.Name = populated.Nom
	}

	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Id)
}
