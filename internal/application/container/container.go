// Package container wires the application dependencies together.
package container

import (
	"context"
	"fmt"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/application/services"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/ai"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/manager"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/contentapi"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/email"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/jenjang"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/media"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/persistence/snapshot"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/pkg/config"
)

// Container holds every shared dependency for the portal.
type Container struct {
	Logger       *logging.ChanneledLogger
	CacheManager *manager.Manager
	ContentAPI   *contentapi.Client
	LevelStore   *jenjang.Store
	Snapshots    *snapshot.Store

	LevelService   *services.LevelService
	ContentService *services.ContentService
	HomeService    *services.HomeService
	DetailService  *services.DetailService
	AdminService   *services.AdminService
	AuthService    *services.AuthService
	ContactService *services.ContactService
	AIService      *services.AIService
}

// New builds the dependency graph from configuration. Optional integrations
// (email, AI, snapshots) degrade to disabled rather than failing startup;
// misconfigured marketing content is a hard error.
func New(logger *logging.ChanneledLogger) (*Container, error) {
	client := contentapi.NewClient(config.ContentAPIURL, config.ContentAPITimeout, logger)
	cacheManager := manager.NewManager()
	levelStore := jenjang.NewStore(client, logger)

	marketing, err := content.DecodeMarketing(config.ProfileJSON, config.SlidesJSON, config.TestimonialsJSON)
	if err != nil {
		return nil, fmt.Errorf("marketing configuration: %w", err)
	}

	snapshots, err := snapshot.Open(config.SnapshotDBPath)
	if err != nil {
		logger.System().Warn("Snapshot store unavailable, admin lists will not survive restarts",
			"path", config.SnapshotDBPath, "error", err.Error())
		snapshots = nil
	}

	var mailer email.Service
	if config.ResendAPIKey != "" {
		mailer, err = email.NewService(config.ResendAPIKey, config.ContactEmailFrom, config.ContactEmailTo)
		if err != nil {
			logger.Email().Warn("Email service unavailable, contact form disabled", "error", err.Error())
			mailer = nil
		}
	} else {
		logger.Email().Warn("RESEND_API_KEY not set, contact form disabled")
	}

	var generator ai.Generator
	if config.GeminiAPIKey != "" {
		gemini, genErr := ai.NewGeminiGenerator(context.Background(), config.GeminiAPIKey, config.GeminiModel)
		if genErr != nil {
			logger.AI().Warn("AI generator unavailable", "error", genErr.Error())
		} else {
			generator = gemini
		}
	}

	images := media.NewImageProcessor(config.UploadMaxWidth, config.UploadWebPQuality)

	c := &Container{
		Logger:       logger,
		CacheManager: cacheManager,
		ContentAPI:   client,
		LevelStore:   levelStore,
		Snapshots:    snapshots,
	}

	c.LevelService = services.NewLevelService(levelStore, logger)
	c.HomeService = services.NewHomeService(cacheManager, client, levelStore, marketing, logger)
	c.ContentService = services.NewContentService(cacheManager, client, c.HomeService, logger)
	c.DetailService = services.NewDetailService(cacheManager, client, logger)
	c.AdminService = services.NewAdminService(cacheManager, client, client, snapshots, images, config.AdminListTTL, logger)
	c.AuthService = services.NewAuthService(config.AdminPasswordHash, config.JWTSecret, config.TokenLifetime, logger)
	c.ContactService = services.NewContactService(mailer, logger)
	c.AIService = services.NewAIService(generator, logger)

	return c, nil
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.Snapshots != nil {
		if err := c.Snapshots.Close(); err != nil {
			return err
		}
	}
	return c.Logger.Close()
}
