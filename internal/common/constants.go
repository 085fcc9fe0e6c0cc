package common

// Publication statuses as the backend serializes them. One view of the
// marketplace historically displayed a capitalized "Terminé"; that is a label,
// the wire value is always the lowercase form below.
const (
	StatusOuvert  = "ouvert"
	StatusEnCours = "en-cours"
	StatusTermine = "termine"
	StatusAnnule  = "annule"
)

var ValidPublicationStatuses = map[string]struct{}{
	StatusOuvert:  {},
	StatusEnCours: {},
	StatusTermine: {},
	StatusAnnule:  {},
}

var publicationStatusLabels = map[string]string{
	StatusOuvert:  "Ouvert",
	StatusEnCours: "En cours",
	StatusTermine: "Terminé",
	StatusAnnule:  "Annulé",
}

func StatusLabel(status string) string {
	if label, ok := publicationStatusLabels[status]; ok {
		return label
	}

	return status
}

// Proposition statuses.
const (
	PropositionEnAttente = "en-attente"
	PropositionAccepte   = "accepte"
	PropositionRefuse    = "refuse"
)

// Account roles. "candidat" and "freelance" both designate a service-providing
// account.
const (
	RoleCandidat  = "candidat"
	RoleFreelance = "freelance"
	RoleClient    = "client"
	RoleAdmin     = "admin"
)

func IsFreelanceRole(role string) bool {
	return role == RoleCandidat || role == RoleFreelance
}

// Category slugs on publication creation forms. The /categories endpoint may
// carry more entries; these are the values accepted on new drafts.
var CategorySlugs = []string{
	"developpement-web",
	"design",
	"redaction",
	"marketing",
	"traduction",
	"autre",
}

// Client-side routes.
const (
	RouteHome               = "/"
	RouteConnexion          = "/connexion"
	RouteDashboardFreelance = "/dashboard-freelance"
	RouteDashboardClient    = "/dashboard-client"
	RouteAdminWorkspace     = "/admin-workspace"
)

// LandingRoute is the destination shown right after a successful login.
func LandingRoute(role string) string {
	switch role {
	case RoleFreelance, RoleCandidat:
		return RouteDashboardFreelance
	case RoleClient:
		return RouteDashboardClient
	case RoleAdmin:
		return RouteAdminWorkspace
	}

	return RouteHome
}
