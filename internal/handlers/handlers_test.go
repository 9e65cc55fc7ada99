package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abdul977/diamondbakes-sub000/internal/config"
	"github.com/abdul977/diamondbakes-sub000/internal/handlers"
	"github.com/abdul977/diamondbakes-sub000/internal/models"
	"github.com/abdul977/diamondbakes-sub000/internal/routes"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
	"github.com/abdul977/diamondbakes-sub000/internal/utils"
)

// In-memory store fakes. They mirror the contracts the Mongo
// implementations provide (unique display IDs, sort orders, singleton
// semantics) so handler tests run without a database.

type memAdmins struct {
	docs []models.Admin
}

func (s *memAdmins) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	for _, a := range s.docs {
		if a.OID.Hex() == id {
			copied := a
			copied.Password = ""
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memAdmins) GetByIDWithPassword(ctx context.Context, id string) (*models.Admin, error) {
	for _, a := range s.docs {
		if a.OID.Hex() == id {
			copied := a
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memAdmins) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	for _, a := range s.docs {
		if a.Email == email {
			copied := a
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memAdmins) Insert(ctx context.Context, admin *models.Admin) error {
	for _, a := range s.docs {
		if a.Email == admin.Email {
			return store.ErrDuplicate
		}
	}
	admin.OID = primitive.NewObjectID()
	admin.Touch()
	s.docs = append(s.docs, *admin)
	return nil
}

func (s *memAdmins) Update(ctx context.Context, admin *models.Admin) error {
	for i, a := range s.docs {
		if a.OID == admin.OID {
			admin.Touch()
			s.docs[i] = *admin
			return nil
		}
	}
	return store.ErrNotFound
}

type memCategories struct {
	docs []models.Category
}

func (s *memCategories) List(ctx context.Context) ([]models.Category, error) {
	return append([]models.Category{}, s.docs...), nil
}

func (s *memCategories) Get(ctx context.Context, id string) (*models.Category, error) {
	for _, c := range s.docs {
		if c.ID == id {
			copied := c
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memCategories) Insert(ctx context.Context, category *models.Category) error {
	for _, c := range s.docs {
		if c.ID == category.ID {
			return store.ErrDuplicate
		}
	}
	category.OID = primitive.NewObjectID()
	category.Touch()
	s.docs = append(s.docs, *category)
	return nil
}

func (s *memCategories) Update(ctx context.Context, category *models.Category) error {
	for i, c := range s.docs {
		if c.ID == category.ID {
			category.Touch()
			s.docs[i] = *category
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memCategories) Delete(ctx context.Context, id string) error {
	for i, c := range s.docs {
		if c.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type memProducts struct {
	docs []models.Product
}

func (s *memProducts) List(ctx context.Context) ([]models.Product, error) {
	return append([]models.Product{}, s.docs...), nil
}

func (s *memProducts) Get(ctx context.Context, id string) (*models.Product, error) {
	for _, p := range s.docs {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memProducts) Insert(ctx context.Context, product *models.Product) error {
	for _, p := range s.docs {
		if p.ID == product.ID {
			return store.ErrDuplicate
		}
	}
	product.OID = primitive.NewObjectID()
	product.Touch()
	s.docs = append(s.docs, *product)
	return nil
}

func (s *memProducts) Update(ctx context.Context, product *models.Product) error {
	for i, p := range s.docs {
		if p.ID == product.ID {
			product.Touch()
			s.docs[i] = *product
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memProducts) Delete(ctx context.Context, id string) error {
	for i, p := range s.docs {
		if p.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type memPosts struct {
	docs []models.BlogPost
}

func (s *memPosts) List(ctx context.Context) ([]models.BlogPost, error) {
	out := append([]models.BlogPost{}, s.docs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *memPosts) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	for _, p := range s.docs {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memPosts) Insert(ctx context.Context, post *models.BlogPost) error {
	for _, p := range s.docs {
		if p.ID == post.ID {
			return store.ErrDuplicate
		}
	}
	post.OID = primitive.NewObjectID()
	post.Touch()
	s.docs = append(s.docs, *post)
	return nil
}

func (s *memPosts) Update(ctx context.Context, post *models.BlogPost) error {
	for i, p := range s.docs {
		if p.ID == post.ID {
			post.Touch()
			s.docs[i] = *post
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memPosts) Delete(ctx context.Context, id string) error {
	for i, p := range s.docs {
		if p.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type memGallery struct {
	docs []models.GalleryItem
}

func (s *memGallery) List(ctx context.Context) ([]models.GalleryItem, error) {
	out := append([]models.GalleryItem{}, s.docs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memGallery) Get(ctx context.Context, id string) (*models.GalleryItem, error) {
	for _, g := range s.docs {
		if g.ID == id {
			copied := g
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memGallery) Insert(ctx context.Context, item *models.GalleryItem) error {
	for _, g := range s.docs {
		if g.ID == item.ID {
			return store.ErrDuplicate
		}
	}
	item.OID = primitive.NewObjectID()
	item.Touch()
	s.docs = append(s.docs, *item)
	return nil
}

func (s *memGallery) Update(ctx context.Context, item *models.GalleryItem) error {
	for i, g := range s.docs {
		if g.ID == item.ID {
			item.Touch()
			s.docs[i] = *item
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memGallery) Delete(ctx context.Context, id string) error {
	for i, g := range s.docs {
		if g.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type memTestimonials struct {
	docs []models.Testimonial
}

func (s *memTestimonials) List(ctx context.Context) ([]models.Testimonial, error) {
	out := append([]models.Testimonial{}, s.docs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memTestimonials) Get(ctx context.Context, id string) (*models.Testimonial, error) {
	for _, d := range s.docs {
		if d.OID.Hex() == id {
			copied := d
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memTestimonials) Insert(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.OID = primitive.NewObjectID()
	testimonial.Touch()
	s.docs = append(s.docs, *testimonial)
	return nil
}

func (s *memTestimonials) Update(ctx context.Context, testimonial *models.Testimonial) error {
	for i, d := range s.docs {
		if d.OID == testimonial.OID {
			testimonial.Touch()
			s.docs[i] = *testimonial
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memTestimonials) Delete(ctx context.Context, id string) error {
	for i, d := range s.docs {
		if d.OID.Hex() == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type memFAQs struct {
	docs []models.FAQCategory
}

func (s *memFAQs) List(ctx context.Context) ([]models.FAQCategory, error) {
	out := append([]models.FAQCategory{}, s.docs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *memFAQs) Get(ctx context.Context, id string) (*models.FAQCategory, error) {
	for _, f := range s.docs {
		if f.ID == id {
			copied := f
			copied.Questions = append([]models.FAQQuestion{}, f.Questions...)
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memFAQs) Insert(ctx context.Context, category *models.FAQCategory) error {
	for _, f := range s.docs {
		if f.ID == category.ID {
			return store.ErrDuplicate
		}
	}
	category.OID = primitive.NewObjectID()
	category.Touch()
	s.docs = append(s.docs, *category)
	return nil
}

func (s *memFAQs) Update(ctx context.Context, category *models.FAQCategory) error {
	for i, f := range s.docs {
		if f.ID == category.ID {
			category.Touch()
			s.docs[i] = *category
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memFAQs) Delete(ctx context.Context, id string) error {
	for i, f := range s.docs {
		if f.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type memSettings struct {
	doc *models.Settings
}

func (s *memSettings) Get(ctx context.Context) (*models.Settings, error) {
	if s.doc == nil {
		return nil, store.ErrNotFound
	}
	copied := *s.doc
	return &copied, nil
}

func (s *memSettings) Upsert(ctx context.Context, settings *models.Settings) error {
	settings.Key = models.SingletonKey
	settings.Touch()
	copied := *settings
	s.doc = &copied
	return nil
}

type memAbout struct {
	doc *models.About
}

func (s *memAbout) Get(ctx context.Context) (*models.About, error) {
	if s.doc == nil {
		return nil, store.ErrNotFound
	}
	copied := *s.doc
	return &copied, nil
}

func (s *memAbout) Count(ctx context.Context) (int64, error) {
	if s.doc == nil {
		return 0, nil
	}
	return 1, nil
}

func (s *memAbout) Insert(ctx context.Context, about *models.About) error {
	if s.doc != nil {
		return store.ErrDuplicate
	}
	about.OID = primitive.NewObjectID()
	about.Key = models.SingletonKey
	about.Touch()
	copied := *about
	s.doc = &copied
	return nil
}

func (s *memAbout) Update(ctx context.Context, about *models.About) error {
	if s.doc == nil {
		return store.ErrNotFound
	}
	about.Touch()
	copied := *about
	s.doc = &copied
	return nil
}

func (s *memAbout) DeleteAll(ctx context.Context) error {
	s.doc = nil
	return nil
}

type memStats struct {
	counts map[string]int64
}

func (s *memStats) Counts(ctx context.Context) (map[string]int64, error) {
	return s.counts, nil
}

// fakeUploader records uploads and serves deterministic URLs.
type fakeUploader struct {
	keys        []string
	contentType string
	err         error
}

func (u *fakeUploader) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	if u.err != nil {
		return u.err
	}
	u.keys = append(u.keys, key)
	u.contentType = contentType
	return nil
}

func (u *fakeUploader) FileURL(key string) string {
	return "https://media.test/" + key
}

// Test environment

type testEnv struct {
	app      *fiber.App
	store    *store.Store
	cfg      *config.Config
	uploader *fakeUploader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	uploader := &fakeUploader{}
	env := buildTestEnv(t, uploader)
	env.uploader = uploader
	return env
}

// newTestEnvWithoutUploader mirrors a deployment with object storage
// left unconfigured.
func newTestEnvWithoutUploader(t *testing.T) *testEnv {
	t.Helper()
	return buildTestEnv(t, nil)
}

func buildTestEnv(t *testing.T, uploader *fakeUploader) *testEnv {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		TokenExpires: time.Hour,
		CookieExpire: 24 * time.Hour,
	}

	st := &store.Store{
		Admins:       &memAdmins{},
		Categories:   &memCategories{},
		Products:     &memProducts{},
		Posts:        &memPosts{},
		Gallery:      &memGallery{},
		Testimonials: &memTestimonials{},
		FAQs:         &memFAQs{},
		Settings:     &memSettings{},
		About:        &memAbout{},
		Stats:        &memStats{counts: map[string]int64{"categories": 2}},
	}

	app := fiber.New(fiber.Config{ErrorHandler: handlers.NewErrorHandler(false)})
	if uploader != nil {
		routes.Register(app, st, uploader, cfg)
	} else {
		routes.Register(app, st, nil, cfg)
	}

	return &testEnv{app: app, store: st, cfg: cfg}
}

// seedAdmin inserts an admin with the given role and returns a valid
// bearer token for it. The password is always "password123".
func (e *testEnv) seedAdmin(t *testing.T, email, role string) (*models.Admin, string) {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	admin := &models.Admin{
		Username: "tester",
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := e.store.Admins.Insert(context.Background(), admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	token, err := utils.GenerateToken(e.cfg.JWTSecret, admin.OID.Hex(), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return admin, token
}

// doJSON performs a JSON request against the test app and decodes the
// response body.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	decoded := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode response %q: %v", raw, err)
		}
	}
	return resp.StatusCode, decoded
}

// jsonRequest builds a request with a JSON body for callers that need
// the raw *http.Response (cookies, headers).
func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	return decoded
}

func dataField(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", body)
	}
	return data
}

func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("response has no data array: %v", body)
	}
	return data
}
