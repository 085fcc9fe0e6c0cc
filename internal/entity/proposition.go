package entity

// wire model
type Proposition struct {
	Id        string  `json:"_id"`
	Freelance Ref     `json:"freelance"`
	Message   string  `json:"message"`
	Budget    float64 `json:"budget"`
	Delai     string  `json:"delai"`
	Statut    string  `json:"statut"`
	Date      string  `json:"date"`
}

// service + repo input model
type CreatePropositionInput struct {
	Message string
	Budget  float64
	Delai   string
}

// display model
type PropositionOutputModel struct {
	Freelance string
	Message   string
	Budget    string
	Delai     string
	Statut    string
	Date      string
}
