package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/config"
	"github.com/abdul977/diamondbakes-sub000/internal/handlers"
	"github.com/abdul977/diamondbakes-sub000/internal/middleware"
	"github.com/abdul977/diamondbakes-sub000/internal/models"
	"github.com/abdul977/diamondbakes-sub000/internal/storage"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
)

// Register wires up all HTTP routes. Reads are public; writes require an
// authenticated admin role.
func Register(app *fiber.App, st *store.Store, uploader storage.Uploader, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(st.Admins, cfg)
	menuHandler := handlers.NewMenuHandler(st.Categories, st.Products)
	blogHandler := handlers.NewBlogHandler(st.Posts)
	galleryHandler := handlers.NewGalleryHandler(st.Gallery)
	testimonialHandler := handlers.NewTestimonialHandler(st.Testimonials)
	faqHandler := handlers.NewFAQHandler(st.FAQs)
	settingsHandler := handlers.NewSettingsHandler(st.Settings)
	aboutHandler := handlers.NewAboutHandler(st.About)
	adminHandler := handlers.NewAdminHandler(st.Stats)
	uploadHandler := handlers.NewUploadHandler(uploader)

	protect := middleware.Protect(cfg, st.Admins)
	adminOnly := middleware.Authorize(models.RoleAdmin, models.RoleSuperAdmin)
	superOnly := middleware.Authorize(models.RoleSuperAdmin)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", protect, superOnly, authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", protect, authHandler.Me)
	auth.Put("/updatedetails", protect, authHandler.UpdateDetails)
	auth.Put("/updatepassword", protect, authHandler.UpdatePassword)

	// Menu routes
	categories := api.Group("/menu/categories")
	categories.Get("/", menuHandler.ListCategories)
	categories.Post("/", protect, adminOnly, menuHandler.CreateCategory)
	categories.Get("/:id", menuHandler.GetCategory)
	categories.Put("/:id", protect, adminOnly, menuHandler.UpdateCategory)
	categories.Delete("/:id", protect, adminOnly, menuHandler.DeleteCategory)

	products := api.Group("/menu/products")
	products.Get("/", menuHandler.ListProducts)
	products.Post("/", protect, adminOnly, menuHandler.CreateProduct)
	products.Get("/:id", menuHandler.GetProduct)
	products.Put("/:id", protect, adminOnly, menuHandler.UpdateProduct)
	products.Delete("/:id", protect, adminOnly, menuHandler.DeleteProduct)

	// Blog routes
	posts := api.Group("/blog/posts")
	posts.Get("/", blogHandler.ListPosts)
	posts.Post("/", protect, adminOnly, blogHandler.CreatePost)
	posts.Get("/:id", blogHandler.GetPost)
	posts.Put("/:id", protect, adminOnly, blogHandler.UpdatePost)
	posts.Delete("/:id", protect, adminOnly, blogHandler.DeletePost)

	// Gallery routes
	gallery := api.Group("/gallery")
	gallery.Get("/", galleryHandler.ListItems)
	gallery.Post("/", protect, adminOnly, galleryHandler.CreateItem)
	gallery.Get("/:id", galleryHandler.GetItem)
	gallery.Put("/:id", protect, adminOnly, galleryHandler.UpdateItem)
	gallery.Delete("/:id", protect, adminOnly, galleryHandler.DeleteItem)

	// Testimonial routes
	testimonials := api.Group("/testimonials")
	testimonials.Get("/", testimonialHandler.ListTestimonials)
	testimonials.Post("/", protect, adminOnly, testimonialHandler.CreateTestimonial)
	testimonials.Get("/:id", testimonialHandler.GetTestimonial)
	testimonials.Put("/:id", protect, adminOnly, testimonialHandler.UpdateTestimonial)
	testimonials.Delete("/:id", protect, adminOnly, testimonialHandler.DeleteTestimonial)

	// FAQ routes (with nested questions)
	faq := api.Group("/faq")
	faq.Get("/", faqHandler.ListCategories)
	faq.Post("/", protect, adminOnly, faqHandler.CreateCategory)
	faq.Get("/:id", faqHandler.GetCategory)
	faq.Put("/:id", protect, adminOnly, faqHandler.UpdateCategory)
	faq.Delete("/:id", protect, adminOnly, faqHandler.DeleteCategory)
	faq.Post("/:id/questions", protect, adminOnly, faqHandler.AddQuestion)
	faq.Put("/:id/questions/:questionId", protect, adminOnly, faqHandler.UpdateQuestion)
	faq.Delete("/:id/questions/:questionId", protect, adminOnly, faqHandler.DeleteQuestion)

	// Singletons
	api.Get("/settings", settingsHandler.GetSettings)
	api.Put("/settings", protect, adminOnly, settingsHandler.UpdateSettings)

	api.Get("/about", aboutHandler.GetAbout)
	api.Post("/about", protect, adminOnly, aboutHandler.CreateAbout)
	api.Put("/about", protect, adminOnly, aboutHandler.UpdateAbout)
	api.Delete("/about", protect, adminOnly, aboutHandler.DeleteAbout)

	// Admin dashboard
	api.Get("/admin/stats", protect, adminOnly, adminHandler.DashboardStats)

	// Upload
	api.Post("/upload", protect, adminOnly, uploadHandler.Upload)
}
