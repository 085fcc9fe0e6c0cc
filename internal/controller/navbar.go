package controller

import (
	"sync"

	"freelance-marketplace-client/internal/common"
	"freelance-marketplace-client/internal/entity"
	"freelance-marketplace-client/internal/service"
)

// NavbarController mirrors the navigation chrome's view of the session. It
// subscribes to identity changes and re-reads the store on every notification,
// so it observes logins and logouts performed anywhere in the process without
// being coupled to those flows.
type NavbarController struct {
	sessionService service.Session
	navigator      Navigator

	mu          sync.Mutex
	user        *entity.User
	unsubscribe func()
}

func NewNavbarController(svc service.Session, navigator Navigator) *NavbarController {
	c := &NavbarController{
		sessionService: svc,
		navigator:      navigator,
	}
	c.reload()
	c.unsubscribe = svc.Subscribe(c.reload)

	return c
}

func (c *NavbarController) reload() {
	sess, ok := c.sessionService.Current()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !ok {
		c.user = nil
		return
	}
	user := sess.User
	c.user = &user
}

func (c *NavbarController) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.user != nil
}

func (c *NavbarController) CurrentUser() (entity.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return entity.User{}, false
	}

	return *c.user, true
}

// DashboardRoute points at the workspace matching the viewer's role.
func (c *NavbarController) DashboardRoute() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return common.RouteHome
	}

	return common.LandingRoute(c.user.Role)
}

func (c *NavbarController) Logout() error {
	if err := c.sessionService.Logout(); err != nil {
		return err
	}
	c.navigator.Navigate(common.RouteHome)

	return nil
}

// Close drops the store subscription.
func (c *NavbarController) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}
