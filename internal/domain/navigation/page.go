package navigation

import "github.com/google/uuid"

// Page is the navigation state: exactly one variant per page kind, each
// carrying only the context it needs. The current page is always replaced
// wholesale, never merged.
type Page interface {
	// Name returns the stable page name
	Name() string

	// IsAdmin reports whether the page belongs to the gated admin namespace.
	// The admin login view itself is not gated; it is what gating substitutes.
	IsAdmin() bool

	sealedPage()
}

type publicPage struct{}

func (publicPage) IsAdmin() bool { return false }
func (publicPage) sealedPage()   {}

type adminPage struct{}

func (adminPage) IsAdmin() bool { return true }
func (adminPage) sealedPage()   {}

// Home is the storefront landing page
type Home struct{ publicPage }

func (Home) Name() string { return "home" }

// Shop is the full catalog browsing page
type Shop struct{ publicPage }

func (Shop) Name() string { return "shop" }

// ProductDetail shows a single product
type ProductDetail struct {
	publicPage
	ProductID uuid.UUID
}

func (ProductDetail) Name() string { return "product" }

// CustomPage shows an admin-authored page addressed by slug
type CustomPage struct {
	publicPage
	Slug string
}

func (CustomPage) Name() string { return "custom-page" }

// Cart is the shopping cart page
type Cart struct{ publicPage }

func (Cart) Name() string { return "cart" }

// Checkout is the order form page
type Checkout struct{ publicPage }

func (Checkout) Name() string { return "checkout" }

// Confirmation is the post-checkout thank-you page
type Confirmation struct{ publicPage }

func (Confirmation) Name() string { return "confirmation" }

// Login is the customer login page
type Login struct{ publicPage }

func (Login) Name() string { return "login" }

// Signup is the customer registration page
type Signup struct{ publicPage }

func (Signup) Name() string { return "signup" }

// AdminLogin is the back-office password prompt
type AdminLogin struct{ publicPage }

func (AdminLogin) Name() string { return "admin-login" }

// AdminDashboard is the back-office landing page
type AdminDashboard struct{ adminPage }

func (AdminDashboard) Name() string { return "admin-dashboard" }

// AdminProducts is the catalog management page
type AdminProducts struct{ adminPage }

func (AdminProducts) Name() string { return "admin-products" }

// AdminOrders is the order ledger page
type AdminOrders struct{ adminPage }

func (AdminOrders) Name() string { return "admin-orders" }

// AdminClients is the customer account listing page
type AdminClients struct{ adminPage }

func (AdminClients) Name() string { return "admin-clients" }

// AdminContent is the content staging editor page
type AdminContent struct{ adminPage }

func (AdminContent) Name() string { return "admin-content" }
