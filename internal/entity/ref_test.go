package entity

import (
	"encoding/json"
	"testing"
)

func TestRefDecodesBareId(t *testing.T) {
	var publication Publication
	raw := `{"_id":"p1","categorie":"developpement-web"}`
	if err := json.Unmarshal([]byte(raw), &publication); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if publication.Categorie.Id != "developpement-web" {
		t.Fatalf("expected slug id, got %q", publication.Categorie.Id)
	}
}

func TestRefDecodesPopulatedObject(t *testing.T) {
	var publication Publication
	raw := `{"_id":"p1","categorie":{"_id":"c1","nom_categorie":"Design"}}`
	if err := json.Unmarshal([]byte(raw), &publication); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if publication.Categorie.Id != "c1" || publication.Categorie.Name != "Design" {
		t.Fatalf("unexpected ref: %+v", publication.Categorie)
	}
}

func TestRefDecodesPopulatedFreelance(t *testing.T) {
	var proposition Proposition
	raw := `{"freelance":{"_id":"u1","nom":"Ben Salah"},"message":"Bonjour"}`
	if err := json.Unmarshal([]byte(raw), &proposition); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if proposition.Freelance.Id != "u1" || proposition.Freelance.Name != "Ben Salah" {
		t.Fatalf("unexpected ref: %+v", proposition.Freelance)
	}
}

func TestRefDecodesNull(t *testing.T) {
	var publication Publication
	raw := `{"_id":"p1","categorie":null}`
	if err := json.Unmarshal([]byte(raw), &publication); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if publication.Categorie.Id != "" {
		t.Fatalf("expected empty ref, got %+v", publication.Categorie)
	}
}

func TestRefMarshalsAsId(t *testing.T) {
	raw, err := json.Marshal(Ref{Id: "design", Name: "Design"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"design"` {
		t.Fatalf("expected bare id, got %s", raw)
	}
}

func TestFilterParamsOnlyIncludeNonEmptyFields(t *testing.T) {
	cases := []struct {
		name   string
		filter PublicationFilter
		want   string
	}{
		{"none", PublicationFilter{}, ""},
		{"category only", PublicationFilter{Categorie: "design"}, "categorie=design"},
		{"status only", PublicationFilter{Statut: "ouvert"}, "statut=ouvert"},
		{"both", PublicationFilter{Categorie: "design", Statut: "ouvert"}, "categorie=design&statut=ouvert"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Params().Encode(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
