// Package app wires the client together and exposes the command-line entry
// point.
package app

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/controller"
	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/mockapi"
	"freelance-marketplace-client/internal/repo"
	"freelance-marketplace-client/internal/service"
	"freelance-marketplace-client/internal/session"
	"freelance-marketplace-client/pkg/http_server"
	"freelance-marketplace-client/pkg/restclient"
)

// Display delays before the post-auth redirects, matching the banners the
// web client shows for one and two seconds.
const (
	loginRedirectDelay    = time.Second
	registerRedirectDelay = 2 * time.Second
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: marketplace <command> [flags]

commands:
  login        authenticate and persist the session
  logout       clear the persisted session
  register     create an account
  list         list publications, optionally filtered
  show         show one publication with its propositions
  create       publish a new project
  propose      send a proposition against an open publication
  categories   list categories
  stats        show marketplace counters
  mockapi      run the in-memory mock backend`)
}

func Run(args []string) int {
	_ = godotenv.Load()

	if len(args) == 0 {
		usage()
		return 2
	}

	store := session.NewFileStore(sessionPath())
	client := restclient.New(os.Getenv("API_BASE_URL"), nil, func() string {
		if sess, ok := store.Current(); ok {
			return sess.Token
		}
		return ""
	})
	services := service.NewServices(repo.NewRepositories(client), store)

	ctx := context.Background()
	navigator := controller.NavigatorFunc(func(route string) {
		fmt.Println("→", route)
	})

	switch command, rest := args[0], args[1:]; command {
	case "login":
		return runLogin(ctx, services, navigator, rest)
	case "logout":
		return runLogout(services, navigator)
	case "register":
		return runRegister(ctx, services, navigator, rest)
	case "list":
		return runList(ctx, services, rest)
	case "show":
		return runShow(ctx, services, rest)
	case "create":
		return runCreate(ctx, services, rest)
	case "propose":
		return runPropose(ctx, services, rest)
	case "categories":
		return runCategories(ctx, services)
	case "stats":
		return runStats(ctx, services)
	case "mockapi":
		return runMockAPI(rest)
	default:
		usage()
		return 2
	}
}

func sessionPath() string {
	if path := os.Getenv("SESSION_FILE"); path != "" {
		return path
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}

	return filepath.Join(base, "marketplace", "session.json")
}

func printAlert(alert *controller.Alert) {
	if alert == nil {
		return
	}
	if alert.Type == controller.AlertError {
		fmt.Fprintln(os.Stderr, alert.Message)
		return
	}
	fmt.Println(alert.Message)
}

func printFieldErrors(messages map[string]string) {
	for field, message := range messages {
		fmt.Fprintf(os.Stderr, "%s: %s\n", field, message)
	}
}

func runLogin(ctx context.Context, services *service.Services, navigator controller.Navigator, args []string) int {
	flags := flag.NewFlagSet("login", flag.ContinueOnError)
	email := flags.String("email", "", "account email")
	password := flags.String("mdp", "", "account password")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	c := controller.NewLoginController(services.Session, navigator, loginRedirectDelay)
	c.SetForm(controller.LoginForm{Email: *email, Password: *password})
	if err := c.Submit(ctx); err != nil {
		printFieldErrors(c.FieldErrors())
		printAlert(c.Alert())
		return 1
	}
	printAlert(c.Alert())

	return 0
}

func runLogout(services *service.Services, navigator controller.Navigator) int {
	c := controller.NewLoginController(services.Session, navigator, 0)
	if err := c.Logout(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func runRegister(ctx context.Context, services *service.Services, navigator controller.Navigator, args []string) int {
	flags := flag.NewFlagSet("register", flag.ContinueOnError)
	nom := flags.String("nom", "", "last name")
	prenom := flags.String("prenom", "", "first name")
	email := flags.String("email", "", "account email")
	password := flags.String("mdp", "", "password")
	confirm := flags.String("confirmation", "", "password confirmation")
	role := flags.String("role", "candidat", "candidat or client")
	telephone := flags.String("telephone", "", "phone number")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	c := controller.NewRegisterController(services.Session, navigator, registerRedirectDelay)
	c.SetForm(controller.RegisterForm{
		Nom:             *nom,
		Prenom:          *prenom,
		Email:           *email,
		Password:        *password,
		ConfirmPassword: *confirm,
		Role:            *role,
		Telephone:       *telephone,
	})
	if err := c.Submit(ctx); err != nil {
		printFieldErrors(c.FieldErrors())
		printAlert(c.Alert())
		return 1
	}
	printAlert(c.Alert())

	return 0
}

func parseFilterFlags(name string, args []string) (entity.PublicationFilter, []string, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	categorie := flags.String("categorie", "", "filter by category")
	statut := flags.String("statut", "", "filter by status")
	if err := flags.Parse(args); err != nil {
		return entity.PublicationFilter{}, nil, err
	}

	return entity.PublicationFilter{Categorie: *categorie, Statut: *statut}, flags.Args(), nil
}

func runList(ctx context.Context, services *service.Services, args []string) int {
	filter, _, err := parseFilterFlags("list", args)
	if err != nil {
		return 2
	}

	c := controller.NewListController(services.Publication, nil)
	if err := c.SetFilter(ctx, filter); err != nil {
		printAlert(c.Alert())
		return 1
	}
	if c.Empty() {
		fmt.Println("Aucune publication trouvée")
		return 0
	}
	for _, summary := range c.Summaries() {
		fmt.Printf("%s  %-30s %10s  %-10s %s\n",
			summary.Id, summary.Titre, summary.Budget, summary.Statut, summary.CreatedAt)
	}

	return 0
}

func findPublication(ctx context.Context, services *service.Services, id string) (*entity.Publication, error) {
	publications, err := services.Publication.GetPublications(ctx, entity.PublicationFilter{})
	if err != nil {
		return nil, err
	}
	for i := range publications {
		if publications[i].Id == id {
			return &publications[i], nil
		}
	}

	return nil, fmt.Errorf("publication %s introuvable", id)
}

func isFreelanceViewer(services *service.Services) bool {
	sess, ok := services.Session.Current()

	return ok && common.IsFreelanceRole(sess.User.Role)
}

func runShow(ctx context.Context, services *service.Services, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: marketplace show <publication-id>")
		return 2
	}

	publication, err := findPublication(ctx, services, args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	c := controller.NewDetailController(services.Proposition, *publication, isFreelanceViewer(services))
	summary := c.Summary()
	fmt.Printf("%s\n%s\n", summary.Titre, summary.Description)
	fmt.Printf("Budget: %s  Délai: %s  Catégorie: %s  Statut: %s\n",
		summary.Budget, summary.Delai, summary.Categorie, summary.Statut)
	if len(summary.Competences) > 0 {
		fmt.Println("Compétences:", strings.Join(summary.Competences, ", "))
	}
	for _, proposition := range c.Propositions() {
		fmt.Printf("- %s (%s, %s) %s: %s\n",
			proposition.Freelance, proposition.Budget, proposition.Delai, proposition.Statut, proposition.Message)
	}

	return 0
}

func runCreate(ctx context.Context, services *service.Services, args []string) int {
	flags := flag.NewFlagSet("create", flag.ContinueOnError)
	titre := flags.String("titre", "", "project title")
	description := flags.String("description", "", "project description")
	budget := flags.String("budget", "", "budget in TND")
	delai := flags.String("delai", "", "expected delay")
	categorie := flags.String("categorie", "", "category slug")
	competences := flags.String("competences", "", "comma separated skill tags")
	fichiers := flags.String("fichiers", "", "comma separated attachment paths")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	c := controller.NewCreateController(services.Publication, nil)
	c.SetForm(controller.CreateForm{
		Titre:       *titre,
		Description: *description,
		Budget:      *budget,
		Delai:       *delai,
		Categorie:   *categorie,
	})
	for _, skill := range strings.Split(*competences, ",") {
		c.AddSkill(skill)
	}
	if *fichiers != "" {
		var attachments []entity.Attachment
		for _, path := range strings.Split(*fichiers, ",") {
			content, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			attachments = append(attachments, entity.Attachment{
				Name:    filepath.Base(path),
				Content: content,
			})
		}
		if err := c.SetFiles(attachments); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	created, err := c.Submit(ctx)
	printAlert(c.Alert())
	if err != nil {
		return 1
	}
	fmt.Println(created.Id)

	return 0
}

func runPropose(ctx context.Context, services *service.Services, args []string) int {
	flags := flag.NewFlagSet("propose", flag.ContinueOnError)
	id := flags.String("publication", "", "publication id")
	message := flags.String("message", "", "proposition message")
	budget := flags.String("budget", "", "proposed budget in TND")
	delai := flags.String("delai", "", "proposed delay")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	publication, err := findPublication(ctx, services, *id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	c := controller.NewDetailController(services.Proposition, *publication, isFreelanceViewer(services))
	if err := c.OpenForm(); err != nil {
		fmt.Fprintln(os.Stderr, "cette publication n'accepte pas de proposition")
		return 1
	}
	c.SetForm(controller.PropositionForm{Message: *message, Budget: *budget, Delai: *delai})
	err = c.Submit(ctx)
	printAlert(c.Alert())
	if err != nil {
		return 1
	}

	return 0
}

func runCategories(ctx context.Context, services *service.Services) int {
	categories, err := services.Category.GetCategories(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, restclient.Message(err, "Erreur lors du chargement des catégories"))
		return 1
	}
	for _, category := range categories {
		fmt.Printf("%s %-20s %3d projets\n", category.Icone, category.NomCategorie, category.NombrePublications)
	}

	return 0
}

func runStats(ctx context.Context, services *service.Services) int {
	stats, err := services.Publication.GetSiteStats(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, restclient.Message(err, "Erreur lors du chargement des statistiques"))
		return 1
	}
	fmt.Printf("Projets: %d\nFreelances: %d\nClients: %d\nProjets terminés: %d\n",
		stats.Projects, stats.Freelancers, stats.Clients, stats.Completed)

	return 0
}

func runMockAPI(args []string) int {
	flags := flag.NewFlagSet("mockapi", flag.ContinueOnError)
	address := flags.String("address", os.Getenv("MOCKAPI_ADDRESS"), "listen address")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	server := http_server.New(mockapi.New().Handler(), *address)
	log.Println("mock backend listening")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("got signal: " + s.String())
	case err := <-server.Notify():
		log.Println("server error:", err)
	}

	if err := server.Shutdown(); err != nil {
		log.Println("shutdown error:", err)
		return 1
	}

	return 0
}
