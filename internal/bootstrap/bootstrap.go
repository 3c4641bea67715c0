package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/linguacrm/internal/app/controllers"
	appMigrations "github.com/yigit/linguacrm/internal/app/migrations"
	appRepos "github.com/yigit/linguacrm/internal/app/repositories"
	appRoutes "github.com/yigit/linguacrm/internal/app/routes"
	appServices "github.com/yigit/linguacrm/internal/app/services"
	"github.com/yigit/linguacrm/internal/config"
	"github.com/yigit/linguacrm/internal/db"
	appMiddleware "github.com/yigit/linguacrm/internal/middleware"
	pkgAuth "github.com/yigit/linguacrm/internal/pkg/auth"
	"github.com/yigit/linguacrm/internal/pkg/helpers"
	"github.com/yigit/linguacrm/internal/pkg/logger"
	"github.com/yigit/linguacrm/internal/pkg/validation"
	"github.com/yigit/linguacrm/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService          appServices.CourseService
	ScheduleService        appServices.ScheduleService
	LessonDetailService    appServices.LessonDetailService
	TeacherService         appServices.TeacherService
	RoomService            appServices.RoomService
	StudentService         appServices.StudentService
	EnrollmentService      appServices.EnrollmentService
	CourseController       *appControllers.CourseController
	ScheduleController     *appControllers.ScheduleController
	LessonDetailController *appControllers.LessonDetailController
	TeacherController      *appControllers.TeacherController
	RoomController         *appControllers.RoomController
	StudentController      *appControllers.StudentController
	EnrollmentController   *appControllers.EnrollmentController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().
		Str("logLevel", string(logLevel)).
		Str("logFormat", cfg.Logging.Format).
		Str("timezone", cfg.Location().String()).
		Bool("atomicExpansion", cfg.Schedule.AtomicExpansion).
		Str("transactionTimeout", cfg.Schedule.TransactionTimeout).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds default rooms.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, appRepos.NewRoomRepository(database.Pool), lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := validation.RegisterCustomRules(v); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	repos := deps.Repos

	deps.JWTService = NewJWTService(cfg)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.CourseService = appServices.NewCourseService(repos.CourseRepository, repos.TeacherRepository, lgr)
	deps.TeacherService = appServices.NewTeacherService(repos.TeacherRepository, lgr)
	deps.RoomService = appServices.NewRoomService(repos.RoomRepository, lgr)
	deps.StudentService = appServices.NewStudentService(repos.StudentRepository, lgr)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		repos.CourseRepository,
		repos.StudentRepository,
		repos.EnrollmentRepository,
		lgr,
	)
	deps.LessonDetailService = appServices.NewLessonDetailService(
		repos.CourseRepository,
		repos.LessonDetailRepository,
		repos.TeacherRepository,
		lgr,
	)
	deps.ScheduleService = appServices.NewScheduleService(
		repos.CourseRepository,
		repos.LessonDetailRepository,
		repos.RoomRepository,
		database,
		func(tx pgx.Tx) appServices.LessonDetailCreator {
			return repos.LessonDetailRepository.WithTx(tx)
		},
		appServices.ScheduleOptions{
			Location:        cfg.Location(),
			AtomicExpansion: cfg.Schedule.AtomicExpansion,
		},
		lgr,
	)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)
	deps.LessonDetailController = appControllers.NewLessonDetailController(deps.LessonDetailService, cfg.Location())
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService, deps.CourseService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)

	return deps, nil
}

// NewJWTService builds the token service from the jwt config section. The API uses it to
// verify tokens and cmd/token uses it to sign them, so both agree on secret and issuer.
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.ScheduleController,
		deps.LessonDetailController,
		deps.TeacherController,
		deps.RoomController,
		deps.StudentController,
		deps.EnrollmentController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
