package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parteecat/folio/internal/api/config"
	"github.com/parteecat/folio/internal/api/middleware"
	"github.com/parteecat/folio/internal/model"
	"github.com/parteecat/folio/internal/pkg/logger"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.ClientURL))
	logger.SetupGin(r)

	// 上传文件静态托管
	r.Static("/uploads", cfg.Upload.Dir)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		postGroup := apiGroup.Group("/posts")
		postGroup.Use(middleware.AuthOptionalMiddleware())
		{
			postGroup.GET("", group.PostHandler.Feed)
			// 静态路由先于 :slugOrId 注册
			postGroup.GET("/hot", group.PostHandler.HotPosts)
			postGroup.GET("/:slugOrId", group.PostHandler.GetDetail)
			postGroup.POST("/:slugOrId/like", group.PostHandler.Like)
		}

		apiGroup.GET("/search", group.PostHandler.Search)
		apiGroup.GET("/tags", group.TagHandler.List)

		adminGroup := apiGroup.Group("/admin")
		{
			// 无需登录即可访问的接口
			adminGroup.POST("/login", group.AuthHandler.Login)
			adminGroup.POST("/refresh", group.AuthHandler.Refresh)

			// 需要登录 & 拥有 admin 角色
			authGroup := adminGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(model.RoleAdmin))
			{
				authGroup.GET("/posts", group.AdminHandler.ListPosts)
				authGroup.POST("/posts", group.AdminHandler.CreatePost)
				authGroup.PUT("/posts/:id", group.AdminHandler.UpdatePost)
				authGroup.PUT("/posts/:id/hide", group.AdminHandler.HidePost)
				authGroup.DELETE("/posts/:id", group.AdminHandler.DeletePost)
				authGroup.POST("/tags", group.TagHandler.Create)
				authGroup.DELETE("/tags/:id", group.TagHandler.Delete)
				authGroup.GET("/stats", group.AdminHandler.Stats)
			}
		}

		// 上传只要求登录态，不限定角色
		uploadGroup := apiGroup.Group("/upload")
		uploadGroup.Use(middleware.AuthMiddleware())
		{
			uploadGroup.POST("", group.MediaHandler.Upload)
			uploadGroup.POST("/multiple", group.MediaHandler.UploadBatch)
		}
	}

	return r
}
