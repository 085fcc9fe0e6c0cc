package entity

type User struct {
	Id        string `json:"_id"`
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Telephone string `json:"telephone"`
}

// service + repo input model
type RegisterInput struct {
	Nom       string
	Prenom    string
	Email     string
	Mdp       string
	Role      string
	Telephone string
}

// Session is the authenticated identity held by the client between login and
// logout.
type Session struct {
	Token string
	User  User
}

// SiteStats feed the public landing page counters.
type SiteStats struct {
	Projects    int
	Freelancers int
	Clients     int
	Completed   int
}
