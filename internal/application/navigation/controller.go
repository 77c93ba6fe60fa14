package navigation

import (
	"github.com/boutique/storefront/internal/domain/identity"
	"github.com/boutique/storefront/internal/domain/navigation"
	"go.uber.org/zap"
)

// Controller holds the current page and enforces the admin gate. It observes
// the admin session so that logging in from the password prompt lands on the
// dashboard and logging out anywhere in the back office returns home.
type Controller struct {
	current navigation.Page
	admin   *identity.AdminSession
	logger  *zap.Logger
}

// NewController creates a controller starting on the home page
func NewController(admin *identity.AdminSession, logger *zap.Logger) *Controller {
	c := &Controller{
		current: navigation.Home{},
		admin:   admin,
		logger:  logger,
	}
	admin.Subscribe(c.onAdminState)
	return c
}

// Current returns the current page
func (c *Controller) Current() navigation.Page {
	return c.current
}

// Navigate replaces the current page. A gated admin target while logged out
// lands on the admin login prompt instead; the prompt itself redirects to the
// dashboard when already logged in.
func (c *Controller) Navigate(target navigation.Page) {
	resolved := c.resolve(target)
	c.current = resolved
	c.logger.Debug("navigated",
		zap.String("target", target.Name()),
		zap.String("page", resolved.Name()),
	)
}

func (c *Controller) resolve(target navigation.Page) navigation.Page {
	if target.IsAdmin() && !c.admin.LoggedIn() {
		return navigation.AdminLogin{}
	}
	if _, ok := target.(navigation.AdminLogin); ok && c.admin.LoggedIn() {
		return navigation.AdminDashboard{}
	}
	return target
}

func (c *Controller) onAdminState(state identity.AdminState) {
	switch state {
	case identity.AdminLoggedIn:
		if _, ok := c.current.(navigation.AdminLogin); ok {
			c.current = navigation.AdminDashboard{}
		}
	case identity.AdminLoggedOut:
		if c.current.IsAdmin() {
			c.current = navigation.Home{}
		}
	}
}
