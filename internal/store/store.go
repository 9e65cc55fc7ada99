package store

import (
	"context"
	"errors"

	"github.com/abdul977/diamondbakes-sub000/internal/models"
)

// Sentinel errors returned by store implementations.
var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// AdminStore manages back-office users.
type AdminStore interface {
	// GetByID loads an admin without the password field.
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	// GetByIDWithPassword loads an admin including the password hash.
	GetByIDWithPassword(ctx context.Context, id string) (*models.Admin, error)
	// GetByEmail loads an admin including the password hash.
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Insert(ctx context.Context, admin *models.Admin) error
	Update(ctx context.Context, admin *models.Admin) error
}

// CategoryStore manages menu categories, keyed by display ID.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Insert(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

// ProductStore manages menu products, keyed by display ID.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// BlogStore manages blog posts, keyed by display ID. List returns posts
// newest first.
type BlogStore interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	Get(ctx context.Context, id string) (*models.BlogPost, error)
	Insert(ctx context.Context, post *models.BlogPost) error
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error
}

// GalleryStore manages gallery items, keyed by display ID. List returns
// items newest first.
type GalleryStore interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	Get(ctx context.Context, id string) (*models.GalleryItem, error)
	Insert(ctx context.Context, item *models.GalleryItem) error
	Update(ctx context.Context, item *models.GalleryItem) error
	Delete(ctx context.Context, id string) error
}

// TestimonialStore manages testimonials, keyed by document ID. List
// returns testimonials newest first.
type TestimonialStore interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	Get(ctx context.Context, id string) (*models.Testimonial, error)
	Insert(ctx context.Context, testimonial *models.Testimonial) error
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id string) error
}

// FAQStore manages FAQ categories (with embedded questions), keyed by
// display ID. List returns categories sorted by their order field.
type FAQStore interface {
	List(ctx context.Context) ([]models.FAQCategory, error)
	Get(ctx context.Context, id string) (*models.FAQCategory, error)
	Insert(ctx context.Context, category *models.FAQCategory) error
	Update(ctx context.Context, category *models.FAQCategory) error
	Delete(ctx context.Context, id string) error
}

// SettingsStore manages the settings singleton.
type SettingsStore interface {
	Get(ctx context.Context) (*models.Settings, error)
	Upsert(ctx context.Context, settings *models.Settings) error
}

// AboutStore manages the about-page singleton.
type AboutStore interface {
	Get(ctx context.Context) (*models.About, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, about *models.About) error
	Update(ctx context.Context, about *models.About) error
	DeleteAll(ctx context.Context) error
}

// StatsStore reports document counts for the admin dashboard.
type StatsStore interface {
	Counts(ctx context.Context) (map[string]int64, error)
}

// Store bundles every entity store. It is constructed once at startup and
// injected into handlers so tests can substitute in-memory fakes.
type Store struct {
	Admins       AdminStore
	Categories   CategoryStore
	Products     ProductStore
	Posts        BlogStore
	Gallery      GalleryStore
	Testimonials TestimonialStore
	FAQs         FAQStore
	Settings     SettingsStore
	About        AboutStore
	Stats        StatsStore
}
