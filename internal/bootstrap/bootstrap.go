package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/studentlife/copilot/internal/ai"
	appControllers "github.com/studentlife/copilot/internal/app/controllers"
	appRoutes "github.com/studentlife/copilot/internal/app/routes"
	appServices "github.com/studentlife/copilot/internal/app/services"
	"github.com/studentlife/copilot/internal/config"
	appMiddleware "github.com/studentlife/copilot/internal/middleware"
	"github.com/studentlife/copilot/internal/pkg/logger"
	"github.com/studentlife/copilot/internal/seed"
	"github.com/studentlife/copilot/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store              *store.Store
	AiClient           ai.Client
	AggregationService *appServices.AggregationService
	Classifier         appServices.Classifier
	Moderator          appServices.Moderator
	WellnessService    *appServices.WellnessService
	CommunityService   *appServices.CommunityService
	ChatService        *appServices.ChatService
	CareerService      *appServices.CareerService
	ProgressService    *appServices.ProgressService
	FacultyService     *appServices.FacultyService

	StudentController   *appControllers.StudentController
	WellnessController  *appControllers.WellnessController
	CommunityController *appControllers.CommunityController
	ChatController      *appControllers.ChatController
	CareerController    *appControllers.CareerController
	ProgressController  *appControllers.ProgressController
	FacultyController   *appControllers.FacultyController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies wires the store, AI client, services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	// Every boot starts from the same seeded demo state.
	st := store.New(seed.Data())
	lgr.Info().Msg("In-memory store seeded")

	var aiClient ai.Client
	if cfg.AI.Enabled {
		client, err := ai.NewGeminiClient(ai.Config{
			BaseURL: cfg.AI.BaseURL,
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
			Timeout: cfg.AITimeout(),
		})
		if err != nil {
			return nil, err
		}
		aiClient = client
		lgr.Info().Str("model", cfg.AI.Model).Msg("AI gateway enabled")
	} else {
		aiClient = ai.Disabled()
		lgr.Info().Msg("AI gateway disabled, using local heuristics")
	}

	aggregation := appServices.NewAggregationService(st)
	classifier := appServices.NewFallbackClassifier(
		appServices.NewRemoteClassifier(aiClient),
		appServices.NewLocalHeuristicClassifier(),
		cfg.AITimeout(),
		lgr,
	)
	moderator := appServices.NewModerationService(aiClient, lgr)

	wellness := appServices.NewWellnessService(st, aggregation, classifier, aiClient, lgr)
	community := appServices.NewCommunityService(st, moderator, lgr)
	chat := appServices.NewChatService(st, moderator, lgr)
	career := appServices.NewCareerService(st, aiClient, lgr)
	progress := appServices.NewProgressService(st, aiClient, lgr)
	faculty := appServices.NewFacultyService(st, aggregation, classifier, lgr)

	deps := &Dependencies{
		Store:              st,
		AiClient:           aiClient,
		AggregationService: aggregation,
		Classifier:         classifier,
		Moderator:          moderator,
		WellnessService:    wellness,
		CommunityService:   community,
		ChatService:        chat,
		CareerService:      career,
		ProgressService:    progress,
		FacultyService:     faculty,

		StudentController:   appControllers.NewStudentController(st, aggregation),
		WellnessController:  appControllers.NewWellnessController(wellness),
		CommunityController: appControllers.NewCommunityController(community),
		ChatController:      appControllers.NewChatController(chat),
		CareerController:    appControllers.NewCareerController(career),
		ProgressController:  appControllers.NewProgressController(progress),
		FacultyController:   appControllers.NewFacultyController(faculty),

		Logger: lgr,
	}
	return deps, nil
}

// SetupRouter creates the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(
		router,
		deps.StudentController,
		deps.WellnessController,
		deps.CommunityController,
		deps.ChatController,
		deps.CareerController,
		deps.ProgressController,
		deps.FacultyController,
	)

	lgr.Info().Msg("Router configured")
	return router
}
