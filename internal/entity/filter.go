package entity

import "net/url"

// PublicationFilter narrows the publication listing server-side. Empty fields
// are left out of the request entirely.
type PublicationFilter struct {
	Categorie string
	Statut    string
}

func (f PublicationFilter) Params() url.Values {
	params := url.Values{}
	if f.Categorie != "" {
		params.Set("categorie", f.Categorie)
	}
	if f.Statut != "" {
		params.Set("statut", f.Statut)
	}

	return params
}
