package main

import (
	"context"
	"flag"
	"fmt"
	log "log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"

	"github.com/parteecat/folio/internal/api/config"
	"github.com/parteecat/folio/internal/model"
	"github.com/parteecat/folio/internal/pkg/database"
	"github.com/parteecat/folio/internal/pkg/logger"
	"github.com/parteecat/folio/internal/pkg/markdown"
	"github.com/parteecat/folio/internal/pkg/security"
	"github.com/parteecat/folio/internal/pkg/util"
	"github.com/parteecat/folio/internal/repository"
)

// 初始化管理员账号；-demo 额外生成演示数据
func main() {
	demo := flag.Bool("demo", false, "generate demo tags and posts")
	flag.Parse()

	if err := config.LoadConfig(); err != nil {
		log.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger.InitLogger()

	dbCfg := config.Cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("failed to create database connection", "err", err)
		os.Exit(1)
	}
	if err = database.AutoMigrate(db); err != nil {
		log.Error("failed to migrate database schema", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)

	admin, err := userRepo.FirstByRole(ctx, model.RoleAdmin)
	if err != nil {
		log.Error("failed to query admin user", "err", err)
		os.Exit(1)
	}
	if admin == nil {
		email := os.Getenv("ADMIN_EMAIL")
		if email == "" {
			email = "admin@folio.com"
		}
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}

		hashed, err := security.HashPassword(password)
		if err != nil {
			log.Error("failed to hash admin password", "err", err)
			os.Exit(1)
		}

		name := "管理员"
		admin = &model.User{
			Email:    email,
			Password: hashed,
			Name:     &name,
			Role:     model.RoleAdmin,
		}
		if err = userRepo.Create(ctx, admin); err != nil {
			log.Error("failed to create admin user", "err", err)
			os.Exit(1)
		}
		log.Info("admin user created", "email", email)
	} else {
		log.Info("admin user already exists", "email", admin.Email)
	}

	if *demo {
		if err = seedDemo(ctx, db, admin.ID); err != nil {
			log.Error("failed to seed demo data", "err", err)
			os.Exit(1)
		}
		log.Info("demo data seeded")
	}
}

func seedDemo(ctx context.Context, db *gorm.DB, authorID uint64) error {
	tags := make([]model.Tag, 0, 5)
	for i := 0; i < 5; i++ {
		name := gofakeit.Hobby()
		tags = append(tags, model.Tag{
			Name: name,
			Slug: util.MakeSlug(fmt.Sprintf("%s-%d", name, i)),
		})
	}
	if err := db.WithContext(ctx).Create(&tags).Error; err != nil {
		return err
	}

	for i := 0; i < 10; i++ {
		title := gofakeit.Sentence(5)
		contentMD := fmt.Sprintf("# %s\n\n%s", title, gofakeit.Paragraph(3, 4, 12, "\n\n"))
		contentHTML, err := markdown.Render(contentMD)
		if err != nil {
			return err
		}

		publishedAt := time.Now().Add(-time.Duration(i*7) * time.Hour)
		post := model.Post{
			Type:        model.PostTypeArticle,
			Slug:        util.MakeSlug(fmt.Sprintf("%s-%d", title, i)),
			Title:       &title,
			ContentMD:   contentMD,
			ContentHTML: contentHTML,
			Excerpt:     gofakeit.Sentence(12),
			PublishedAt: &publishedAt,
			ViewCount:   gofakeit.Number(0, 500),
			LikeCount:   gofakeit.Number(0, 50),
			AuthorID:    authorID,
			Tags:        []model.Tag{tags[i%len(tags)]},
		}
		if err = db.WithContext(ctx).Omit("Tags.*").Create(&post).Error; err != nil {
			return err
		}
	}

	for i := 0; i < 10; i++ {
		contentMD := gofakeit.Sentence(gofakeit.Number(8, 25))
		contentHTML, err := markdown.Render(contentMD)
		if err != nil {
			return err
		}

		publishedAt := time.Now().Add(-time.Duration(i*3) * time.Hour)
		post := model.Post{
			Type:        model.PostTypeShort,
			Slug:        fmt.Sprintf("shuo-%d-%d", time.Now().UnixMilli(), i),
			ContentMD:   contentMD,
			ContentHTML: contentHTML,
			PublishedAt: &publishedAt,
			ViewCount:   gofakeit.Number(0, 200),
			LikeCount:   gofakeit.Number(0, 30),
			AuthorID:    authorID,
		}
		if err = db.WithContext(ctx).Create(&post).Error; err != nil {
			return err
		}
	}

	return nil
}
