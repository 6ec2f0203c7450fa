package routes

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/yaarastore/backend/app/configs"
	"github.com/yaarastore/backend/app/handlers"
	"github.com/yaarastore/backend/app/handlers/admin"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/middlewares"
	"github.com/yaarastore/backend/app/repositories"
	"github.com/yaarastore/backend/app/services"
	"github.com/yaarastore/backend/app/utils/renderer"
	"gorm.io/gorm"
)

const mockDataPath = "app/db/mockdata/mock-data.json"

// NewRouter wires repositories, services and handlers and returns the
// CORS-wrapped root handler. Everything is constructed once here and
// shared across requests.
func NewRouter(db *gorm.DB, env configs.ENV) http.Handler {
	rnd := renderer.New()
	validate := validator.New()

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)

	mailer := services.NewMailer(services.MailerConfig{
		Host:        env.EmailHost,
		Port:        env.EmailPort,
		Username:    env.EmailUsername,
		Password:    env.EmailPassword,
		FromName:    env.EmailFromName,
		FromAddress: env.EmailFromAddress,
		Locale:      env.Locale,
	})
	whatsapp := services.NewWhatsAppService(services.WhatsAppConfig{
		Number:       env.WhatsAppNumber,
		APIKey:       env.CallMeBotAPIKey,
		StoreBaseURL: env.StoreBaseURL,
		Locale:       env.Locale,
	})

	categorySvc := services.NewCategoryService(categoryRepo)
	productSvc := services.NewProductService(productRepo)
	catalogSvc := services.NewCatalogService(productRepo, categoryRepo)
	checkoutSvc := services.NewCheckoutService(orderRepo, mailer, whatsapp, env.SendEmailWhatsApp)
	authSvc := services.NewAuthService(userRepo, env.JWTSecret, env.AllowRegister)
	resetSvc := services.NewMockResetService(db, mockDataPath, env.AllowResetMock)

	catalogHandler := handlers.NewCatalogHandler(rnd, catalogSvc)
	checkoutHandler := handlers.NewCheckoutHandler(rnd, checkoutSvc, validate)
	authHandler := handlers.NewAuthHandler(rnd, authSvc, validate)
	healthHandler := handlers.NewHealthHandler(rnd)
	resetHandler := handlers.NewMockResetHandler(rnd, resetSvc)

	orderAdmin := admin.NewOrderAdminHandler(rnd, orderRepo)
	productAdmin := admin.NewProductAdminHandler(rnd, productSvc, validate)
	categoryAdmin := admin.NewCategoryAdminHandler(rnd, categorySvc, validate)
	entityAdmin := admin.NewEntityAdminHandler(rnd, productSvc, categorySvc)

	router := mux.NewRouter()

	router.HandleFunc("/data", catalogHandler.GetData).Methods("GET")
	router.HandleFunc("/checkout", checkoutHandler.Checkout).Methods("POST")
	router.HandleFunc("/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/check", healthHandler.Check).Methods("GET")
	router.HandleFunc("/reset_mock_db", resetHandler.Reset).Methods("GET")

	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.Use(middlewares.JWTAuthMiddleware(authSvc, env.APP_ENV))

	if uploader, err := services.NewUploaderService(services.StorageConfig{
		Endpoint:  env.StorageEndpoint,
		Region:    env.StorageRegion,
		Bucket:    env.StorageBucket,
		AccessKey: env.StorageAccessKey,
		SecretKey: env.StorageSecretKey,
		PublicURL: env.StoragePublicURL,
	}); err != nil {
		log.Printf("❌ Blob storage not configured: %v", err)
		authRouter.HandleFunc("/image", func(w http.ResponseWriter, r *http.Request) {
			handlers.WriteError(rnd, w, helpers.NewHTTPError(http.StatusInternalServerError, "Upload failed"))
		}).Methods("POST")
	} else {
		imageAdmin := admin.NewImageAdminHandler(rnd, uploader)
		authRouter.HandleFunc("/image", imageAdmin.Upload).Methods("POST")
	}

	authRouter.HandleFunc("/order/{id}", orderAdmin.GetOrder).Methods("GET")
	authRouter.HandleFunc("/order/status", orderAdmin.UpdateStatus).Methods("POST")
	authRouter.HandleFunc("/orders", orderAdmin.ListOrders).Methods("GET")
	authRouter.HandleFunc("/product/{add_or_id}", productAdmin.Save).Methods("POST")
	authRouter.HandleFunc("/category/{add_or_id}", categoryAdmin.Save).Methods("POST")
	authRouter.HandleFunc("/{model}/{id}/delete", entityAdmin.Delete).Methods("DELETE")

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(env.AllowedOrigins),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		gorillahandlers.AllowCredentials(),
	)

	return cors(router)
}
