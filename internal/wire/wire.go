package wire

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/parteecat/folio/internal/api"
	"github.com/parteecat/folio/internal/api/config"
	"github.com/parteecat/folio/internal/api/handler"
	"github.com/parteecat/folio/internal/job"
	"github.com/parteecat/folio/internal/pkg/cron"
	"github.com/parteecat/folio/internal/pkg/storage"
	"github.com/parteecat/folio/internal/repository"
	"github.com/parteecat/folio/internal/service"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)

	store, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(userRepo)
	postService := service.NewPostService(postRepo, cfg.Cache.HotPostsLimit, cfg.Cache.HotPostsTTL)
	adminService := service.NewAdminService(postRepo, tagRepo)
	tagService := service.NewTagService(tagRepo)
	mediaService := service.NewMediaService(store, cfg.Upload.MaxImageSize, cfg.Upload.MaxVideoSize)

	handlers := &api.HandlersGroup{
		AuthHandler:  handler.NewAuthHandler(authService),
		PostHandler:  handler.NewPostHandler(postService),
		AdminHandler: handler.NewAdminHandler(adminService),
		TagHandler:   handler.NewTagHandler(tagService),
		MediaHandler: handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers, cfg)

	cronMgr := cron.NewCronManager(job.NewHotPostsJob(postService))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
