package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/argomobile/studio-api/internal/api"
	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
	"github.com/argomobile/studio-api/internal/core/service"
	"github.com/argomobile/studio-api/internal/infrastructure/config"
	"github.com/argomobile/studio-api/internal/infrastructure/db/memstore"
	mongostore "github.com/argomobile/studio-api/internal/infrastructure/db/mongo"
	redisstore "github.com/argomobile/studio-api/internal/infrastructure/db/redis"
	"github.com/argomobile/studio-api/internal/infrastructure/queue"
	"github.com/argomobile/studio-api/pkg/logger"
)

// repositories bundles one port implementation per entity kind, whatever
// the backing engine.
type repositories struct {
	users         ports.UserRepository
	projects      ports.ProjectRepository
	members       ports.MemberRepository
	tasks         ports.TaskRepository
	comments      ports.CommentRepository
	notifications ports.NotificationRepository
	documents     ports.DocumentRepository
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	repos, mongoDB, err := buildRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("store initialisation failed")
	}

	var revoker ports.TokenRevoker
	rdb, err := connectRedis(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	if rdb != nil {
		revoker = redisstore.NewTokenDenylist(rdb)
	}

	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, repos.notifications, log)
	dispatcher.Start(ctx)

	var mu sync.RWMutex
	authService := service.NewAuthService(repos.users, revoker, cfg.JWTSecret, 24*time.Hour, log)
	userService := service.NewUserService(&mu, repos.users, log)
	projectService := service.NewProjectService(&mu, repos.projects, repos.members, repos.users,
		repos.tasks, repos.comments, repos.documents, dispatcher, log)
	taskService := service.NewTaskService(&mu, repos.tasks, repos.projects, repos.members, dispatcher, log)
	commentService := service.NewCommentService(&mu, repos.comments, repos.tasks, repos.projects,
		repos.members, repos.users, dispatcher, log)
	notificationService := service.NewNotificationService(&mu, repos.notifications, log)
	documentService := service.NewDocumentService(&mu, repos.documents, repos.projects, repos.members, log)

	if err := seedAdmin(ctx, cfg, repos.users, log); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	e := api.NewRouter(api.RouterConfig{
		JWTSecret:     cfg.JWTSecret,
		Auth:          authService,
		Users:         userService,
		Projects:      projectService,
		Tasks:         taskService,
		Comments:      commentService,
		Notifications: notificationService,
		Documents:     documentService,
		Revoker:       revoker,
		Mongo:         mongoDB,
		Redis:         rdb,
		Logger:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("server starting")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
}

func buildRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repositories, *mongodriver.Database, error) {
	switch cfg.Store {
	case "mongo":
		return buildMongoRepositories(ctx, cfg, log)
	default:
		store := memstore.New()
		return repositories{
			users:         store.Users,
			projects:      store.Projects,
			members:       store.Members,
			tasks:         store.Tasks,
			comments:      store.Comments,
			notifications: store.Notifications,
			documents:     store.Documents,
		}, nil, nil
	}
}

func buildMongoRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repositories, *mongodriver.Database, error) {
	_, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return repositories{}, nil, err
	}

	users := mongostore.NewUserRepository(db)
	projects := mongostore.NewProjectRepository(db)
	members := mongostore.NewMemberRepository(db)
	tasks := mongostore.NewTaskRepository(db)
	comments := mongostore.NewCommentRepository(db)
	notifications := mongostore.NewNotificationRepository(db)
	documents := mongostore.NewDocumentRepository(db)

	for name, idx := range map[string]interface{ EnsureIndexes(context.Context) error }{
		"users":         users,
		"projects":      projects,
		"members":       members,
		"tasks":         tasks,
		"comments":      comments,
		"notifications": notifications,
		"documents":     documents,
	} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	return repositories{
		users:         users,
		projects:      projects,
		members:       members,
		tasks:         tasks,
		comments:      comments,
		notifications: notifications,
		documents:     documents,
	}, db, nil
}

func connectRedis(ctx context.Context, cfg *config.Config) (*goredis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	return redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
}

// seedAdmin provisions the bootstrap admin account when it does not exist
// yet, so a fresh deployment is immediately usable.
func seedAdmin(ctx context.Context, cfg *config.Config, users ports.UserRepository, log zerolog.Logger) error {
	if _, err := users.FindByUsername(ctx, cfg.Admin.Username); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin, err := users.Insert(ctx, &domain.User{
		Username:     cfg.Admin.Username,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Email:        cfg.Admin.Email,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return err
	}

	log.Info().Int64("user_id", admin.ID).Str("username", admin.Username).Msg("bootstrap admin created")
	return nil
}
