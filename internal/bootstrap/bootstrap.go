package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/hosuracademy/academy-api/internal/app/controllers"
	appMigrations "github.com/hosuracademy/academy-api/internal/app/migrations"
	appRepos "github.com/hosuracademy/academy-api/internal/app/repositories"
	appRoutes "github.com/hosuracademy/academy-api/internal/app/routes"
	appServices "github.com/hosuracademy/academy-api/internal/app/services"
	"github.com/hosuracademy/academy-api/internal/config"
	"github.com/hosuracademy/academy-api/internal/db"
	"github.com/hosuracademy/academy-api/internal/docstore"
	appMiddleware "github.com/hosuracademy/academy-api/internal/middleware"
	pkgAuth "github.com/hosuracademy/academy-api/internal/pkg/auth"
	"github.com/hosuracademy/academy-api/internal/pkg/email"
	"github.com/hosuracademy/academy-api/internal/pkg/helpers"
	"github.com/hosuracademy/academy-api/internal/pkg/logger"
	"github.com/hosuracademy/academy-api/internal/seed"
)

const defaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store          docstore.Store
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthService    *appServices.AuthService
	StudentService appServices.StudentService
	CourseService  appServices.CourseService
	ResultService  appServices.ResultService
	InquiryService appServices.InquiryService
	CatalogService appServices.CatalogService
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Metrics        *appMiddleware.Metrics
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default config file location.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Clean(config.GetEnv("CONFIG_PATH", defaultConfigPath))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore connects the document store selected by store.driver. The
// Postgres backend also applies the embedded migrations.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (docstore.Store, error) {
	driver := strings.ToLower(cfg.Store.Driver)
	lgr.Info().Str("driver", driver).Msg("Establishing document store connection...")

	switch driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using the in-memory document store; data is lost on restart")
		return docstore.NewMemoryStore(), nil

	case config.DriverPostgres:
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}

		lgr.Info().Msg("Running database migrations...")
		migrator := appMigrations.NewMigrator(database.Pool)
		if err := migrator.MigrateFS(ctx, appMigrations.Embedded()); err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			database.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")
		return docstore.NewPostgresStore(database.Pool), nil

	case config.DriverMongo:
		client, err := db.NewMongoClient(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
			return nil, err
		}
		return docstore.NewMongoStore(client, cfg.Mongo.Database), nil

	case config.DriverFirestore:
		client, err := db.NewFirestoreClient(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to Firestore")
			return nil, err
		}
		return docstore.NewFirestoreStore(client), nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// AdminCredentials returns the admin account with its password hashed. A
// configured hash is used as is.
func AdminCredentials(cfg *config.Config) (appServices.AdminCredentials, error) {
	hash := cfg.Auth.AdminPasswordHash
	if hash == "" {
		var err error
		hash, err = pkgAuth.HashPassword(cfg.Auth.AdminPassword)
		if err != nil {
			return appServices.AdminCredentials{}, fmt.Errorf("failed to hash admin password: %w", err)
		}
	}
	return appServices.AdminCredentials{Email: cfg.Auth.AdminEmail, PasswordHash: hash}, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store docstore.Store, admin appServices.AdminCredentials, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Store: store, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store, cfg.Store.MaxListSize)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	mailer := email.NewEmailService(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		NotifyTo: cfg.SMTP.NotifyTo,
	}, lgr)
	if !mailer.Configured() {
		lgr.Warn().Msg("SMTP is not configured; inquiry emails will only be logged")
	}

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.UserRepository,
		deps.JWTService,
		admin,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.ResultService = appServices.NewResultService(deps.Repos.ResultRepository)
	deps.InquiryService = appServices.NewInquiryService(deps.Repos.InquiryRepository, mailer, lgr)
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.GalleryRepository, deps.Repos.TopperRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService)
	deps.Metrics = appMiddleware.NewMetrics()

	deps.Controllers = appRoutes.Controllers{
		Auth:    appControllers.NewAuthController(deps.AuthService, lgr),
		Student: appControllers.NewStudentController(deps.StudentService),
		Course:  appControllers.NewCourseController(deps.CourseService),
		Result:  appControllers.NewResultController(deps.ResultService),
		Inquiry: appControllers.NewInquiryController(deps.InquiryService),
		Catalog: appControllers.NewCatalogController(deps.CatalogService),
		System:  appControllers.NewSystemController(store, cfg.Store.Driver),
	}

	return deps
}

// SeedDefaults loads the built-in catalogue when seeding is enabled. Seed
// failures are logged and never stop startup.
func SeedDefaults(ctx context.Context, cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) {
	if !cfg.Seed.Enabled {
		return
	}
	if err := seed.CreateDefaultData(ctx, deps.Repos, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterJSONFieldNames()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.SecurityHeaders(),
		appMiddleware.CORS(cfg.CORS.AllowedOrigins),
		deps.Metrics.Middleware(),
		appMiddleware.NewTokenBucket(cfg.RateLimit.Burst, cfg.RateLimit.PerMinute).Middleware(),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupMetrics(router, deps.Metrics.Handler())
	appRoutes.SetupRouter(router, cfg.Server.BasePath, deps.Controllers, deps.AuthMiddleware)

	return router
}
