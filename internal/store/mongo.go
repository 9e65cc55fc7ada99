package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abdul977/diamondbakes-sub000/internal/models"
)

// NewMongo builds a Store backed by the given MongoDB database.
func NewMongo(db *mongo.Database) *Store {
	return &Store{
		Admins:       &mongoAdmins{coll: db.Collection("admins")},
		Categories:   &mongoCategories{coll: db.Collection("categories")},
		Products:     &mongoProducts{coll: db.Collection("products")},
		Posts:        &mongoPosts{coll: db.Collection("blogposts")},
		Gallery:      &mongoGallery{coll: db.Collection("galleryitems")},
		Testimonials: &mongoTestimonials{coll: db.Collection("testimonials")},
		FAQs:         &mongoFAQs{coll: db.Collection("faqcategories")},
		Settings:     &mongoSettings{coll: db.Collection("settings")},
		About:        &mongoAbout{coll: db.Collection("abouts")},
		Stats:        &mongoStats{db: db},
	}
}

// Shared query helpers.

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOneOptions) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter, opts...).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrDuplicate
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func replaceByDisplayID(ctx context.Context, coll *mongo.Collection, id string, doc interface{}) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"id": id}, doc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByDisplayID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Admins

type mongoAdmins struct {
	coll *mongo.Collection
}

func (s *mongoAdmins) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	return findOne[models.Admin](ctx, s.coll, bson.M{"_id": oid}, opts)
}

func (s *mongoAdmins) GetByIDWithPassword(ctx context.Context, id string) (*models.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return findOne[models.Admin](ctx, s.coll, bson.M{"_id": oid})
}

func (s *mongoAdmins) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return findOne[models.Admin](ctx, s.coll, bson.M{"email": email})
}

func (s *mongoAdmins) Insert(ctx context.Context, admin *models.Admin) error {
	admin.Touch()
	oid, err := insertOne(ctx, s.coll, admin)
	if err != nil {
		return err
	}
	admin.OID = oid
	return nil
}

func (s *mongoAdmins) Update(ctx context.Context, admin *models.Admin) error {
	admin.Touch()
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": admin.OID}, admin)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Categories

type mongoCategories struct {
	coll *mongo.Collection
}

func (s *mongoCategories) List(ctx context.Context) ([]models.Category, error) {
	return findAll[models.Category](ctx, s.coll, bson.M{})
}

func (s *mongoCategories) Get(ctx context.Context, id string) (*models.Category, error) {
	return findOne[models.Category](ctx, s.coll, bson.M{"id": id})
}

func (s *mongoCategories) Insert(ctx context.Context, category *models.Category) error {
	category.Touch()
	oid, err := insertOne(ctx, s.coll, category)
	if err != nil {
		return err
	}
	category.OID = oid
	return nil
}

func (s *mongoCategories) Update(ctx context.Context, category *models.Category) error {
	category.Touch()
	return replaceByDisplayID(ctx, s.coll, category.ID, category)
}

func (s *mongoCategories) Delete(ctx context.Context, id string) error {
	return deleteByDisplayID(ctx, s.coll, id)
}

// Products

type mongoProducts struct {
	coll *mongo.Collection
}

func (s *mongoProducts) List(ctx context.Context) ([]models.Product, error) {
	return findAll[models.Product](ctx, s.coll, bson.M{})
}

func (s *mongoProducts) Get(ctx context.Context, id string) (*models.Product, error) {
	return findOne[models.Product](ctx, s.coll, bson.M{"id": id})
}

func (s *mongoProducts) Insert(ctx context.Context, product *models.Product) error {
	product.Touch()
	oid, err := insertOne(ctx, s.coll, product)
	if err != nil {
		return err
	}
	product.OID = oid
	return nil
}

func (s *mongoProducts) Update(ctx context.Context, product *models.Product) error {
	product.Touch()
	return replaceByDisplayID(ctx, s.coll, product.ID, product)
}

func (s *mongoProducts) Delete(ctx context.Context, id string) error {
	return deleteByDisplayID(ctx, s.coll, id)
}

// Blog posts

type mongoPosts struct {
	coll *mongo.Collection
}

func (s *mongoPosts) List(ctx context.Context) ([]models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return findAll[models.BlogPost](ctx, s.coll, bson.M{}, opts)
}

func (s *mongoPosts) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	return findOne[models.BlogPost](ctx, s.coll, bson.M{"id": id})
}

func (s *mongoPosts) Insert(ctx context.Context, post *models.BlogPost) error {
	post.Touch()
	oid, err := insertOne(ctx, s.coll, post)
	if err != nil {
		return err
	}
	post.OID = oid
	return nil
}

func (s *mongoPosts) Update(ctx context.Context, post *models.BlogPost) error {
	post.Touch()
	return replaceByDisplayID(ctx, s.coll, post.ID, post)
}

func (s *mongoPosts) Delete(ctx context.Context, id string) error {
	return deleteByDisplayID(ctx, s.coll, id)
}

// Gallery items

type mongoGallery struct {
	coll *mongo.Collection
}

func (s *mongoGallery) List(ctx context.Context) ([]models.GalleryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findAll[models.GalleryItem](ctx, s.coll, bson.M{}, opts)
}

func (s *mongoGallery) Get(ctx context.Context, id string) (*models.GalleryItem, error) {
	return findOne[models.GalleryItem](ctx, s.coll, bson.M{"id": id})
}

func (s *mongoGallery) Insert(ctx context.Context, item *models.GalleryItem) error {
	item.Touch()
	oid, err := insertOne(ctx, s.coll, item)
	if err != nil {
		return err
	}
	item.OID = oid
	return nil
}

func (s *mongoGallery) Update(ctx context.Context, item *models.GalleryItem) error {
	item.Touch()
	return replaceByDisplayID(ctx, s.coll, item.ID, item)
}

func (s *mongoGallery) Delete(ctx context.Context, id string) error {
	return deleteByDisplayID(ctx, s.coll, id)
}

// Testimonials

type mongoTestimonials struct {
	coll *mongo.Collection
}

func (s *mongoTestimonials) List(ctx context.Context) ([]models.Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findAll[models.Testimonial](ctx, s.coll, bson.M{}, opts)
}

func (s *mongoTestimonials) Get(ctx context.Context, id string) (*models.Testimonial, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return findOne[models.Testimonial](ctx, s.coll, bson.M{"_id": oid})
}

func (s *mongoTestimonials) Insert(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.Touch()
	oid, err := insertOne(ctx, s.coll, testimonial)
	if err != nil {
		return err
	}
	testimonial.OID = oid
	return nil
}

func (s *mongoTestimonials) Update(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.Touch()
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": testimonial.OID}, testimonial)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoTestimonials) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FAQ categories

type mongoFAQs struct {
	coll *mongo.Collection
}

func (s *mongoFAQs) List(ctx context.Context) ([]models.FAQCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	return findAll[models.FAQCategory](ctx, s.coll, bson.M{}, opts)
}

func (s *mongoFAQs) Get(ctx context.Context, id string) (*models.FAQCategory, error) {
	return findOne[models.FAQCategory](ctx, s.coll, bson.M{"id": id})
}

func (s *mongoFAQs) Insert(ctx context.Context, category *models.FAQCategory) error {
	category.Touch()
	oid, err := insertOne(ctx, s.coll, category)
	if err != nil {
		return err
	}
	category.OID = oid
	return nil
}

func (s *mongoFAQs) Update(ctx context.Context, category *models.FAQCategory) error {
	category.Touch()
	return replaceByDisplayID(ctx, s.coll, category.ID, category)
}

func (s *mongoFAQs) Delete(ctx context.Context, id string) error {
	return deleteByDisplayID(ctx, s.coll, id)
}

// Settings singleton

type mongoSettings struct {
	coll *mongo.Collection
}

func (s *mongoSettings) Get(ctx context.Context) (*models.Settings, error) {
	return findOne[models.Settings](ctx, s.coll, bson.M{"key": models.SingletonKey})
}

func (s *mongoSettings) Upsert(ctx context.Context, settings *models.Settings) error {
	settings.Key = models.SingletonKey
	settings.Touch()
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"key": models.SingletonKey}, settings, opts)
	return err
}

// About singleton

type mongoAbout struct {
	coll *mongo.Collection
}

func (s *mongoAbout) Get(ctx context.Context) (*models.About, error) {
	return findOne[models.About](ctx, s.coll, bson.M{"key": models.SingletonKey})
}

func (s *mongoAbout) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

func (s *mongoAbout) Insert(ctx context.Context, about *models.About) error {
	about.Key = models.SingletonKey
	about.Touch()
	oid, err := insertOne(ctx, s.coll, about)
	if err != nil {
		return err
	}
	about.OID = oid
	return nil
}

func (s *mongoAbout) Update(ctx context.Context, about *models.About) error {
	about.Key = models.SingletonKey
	about.Touch()
	res, err := s.coll.ReplaceOne(ctx, bson.M{"key": models.SingletonKey}, about)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoAbout) DeleteAll(ctx context.Context) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{})
	return err
}

// Stats

type mongoStats struct {
	db *mongo.Database
}

func (s *mongoStats) Counts(ctx context.Context) (map[string]int64, error) {
	collections := []string{
		"categories", "products", "blogposts", "galleryitems",
		"testimonials", "faqcategories", "admins",
	}

	counts := make(map[string]int64, len(collections))
	for _, name := range collections {
		n, err := s.db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, nil
}
