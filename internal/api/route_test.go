package api

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parteecat/folio/internal/api/config"
	"github.com/parteecat/folio/internal/api/handler"
	"github.com/parteecat/folio/internal/model"
	"github.com/parteecat/folio/internal/pkg/database"
	"github.com/parteecat/folio/internal/pkg/security"
	"github.com/parteecat/folio/internal/pkg/storage"
	"github.com/parteecat/folio/internal/repository"
	"github.com/parteecat/folio/internal/service"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{
		Upload: config.UploadConfig{
			Dir:          t.TempDir(),
			MaxImageSize: 10 << 20,
			MaxVideoSize: 100 << 20,
		},
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)

	store, err := storage.NewLocalStore(cfg.Upload.Dir)
	require.NoError(t, err)

	group := &HandlersGroup{
		AuthHandler:  handler.NewAuthHandler(service.NewAuthService(userRepo)),
		PostHandler:  handler.NewPostHandler(service.NewPostService(postRepo, 10, 30*time.Minute)),
		AdminHandler: handler.NewAdminHandler(service.NewAdminService(postRepo, tagRepo)),
		TagHandler:   handler.NewTagHandler(service.NewTagService(tagRepo)),
		MediaHandler: handler.NewMediaHandler(service.NewMediaService(store, cfg.Upload.MaxImageSize, cfg.Upload.MaxVideoSize)),
	}

	return SetupRouter(group, cfg), db
}

func seedAdmin(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	hashed, err := security.HashPassword("admin123")
	require.NoError(t, err)
	admin := &model.User{
		Email:    "admin@folio.com",
		Password: hashed,
		Role:     model.RoleAdmin,
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, "GET", "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetPost_NotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, "GET", "/api/posts/does-not-exist", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Post not found"}`, w.Body.String())
}

func TestFeedAndDetail(t *testing.T) {
	router, db := setupTestRouter(t)
	admin := seedAdmin(t, db)

	now := time.Now()
	title := "Visible"
	require.NoError(t, db.Create(&model.Post{
		Type:        model.PostTypeArticle,
		Slug:        "visible-post",
		Title:       &title,
		ContentMD:   "body",
		ContentHTML: "<p>body</p>",
		PublishedAt: &now,
		AuthorID:    admin.ID,
	}).Error)

	feed := doJSON(router, "GET", "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, feed.Code)

	var page struct {
		Data    []map[string]any `json:"data"`
		HasMore bool             `json:"hasMore"`
	}
	require.NoError(t, json.Unmarshal(feed.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "visible-post", page.Data[0]["slug"])
	assert.False(t, page.HasMore)

	detail := doJSON(router, "GET", "/api/posts/visible-post", "", nil)
	assert.Equal(t, http.StatusOK, detail.Code)
	assert.Contains(t, detail.Body.String(), `"contentMD":"body"`)
}

func TestLogin_BadCredentials(t *testing.T) {
	router, db := setupTestRouter(t)
	seedAdmin(t, db)

	w := doJSON(router, "POST", "/api/admin/login", "", gin.H{
		"email":    "admin@folio.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestAdminFlow(t *testing.T) {
	router, db := setupTestRouter(t)
	seedAdmin(t, db)

	// 登录取令牌
	login := doJSON(router, "POST", "/api/admin/login", "", gin.H{
		"email":    "admin@folio.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, login.Code)

	var loginBody struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginBody))
	require.NotEmpty(t, loginBody.AccessToken)

	// 未带令牌被拒
	denied := doJSON(router, "GET", "/api/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, denied.Code)

	// 带令牌建帖
	created := doJSON(router, "POST", "/api/admin/posts", loginBody.AccessToken, gin.H{
		"type":      model.PostTypeArticle,
		"slug":      "from-the-console",
		"title":     "From the console",
		"contentMD": "# hi",
		"published": true,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	stats := doJSON(router, "GET", "/api/admin/stats", loginBody.AccessToken, nil)
	require.Equal(t, http.StatusOK, stats.Code)
	assert.Contains(t, stats.Body.String(), `"totalPosts":1`)
}

func TestCreatePost_DuplicateSlugConflict(t *testing.T) {
	router, db := setupTestRouter(t)
	seedAdmin(t, db)

	login := doJSON(router, "POST", "/api/admin/login", "", gin.H{
		"email":    "admin@folio.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, login.Code)
	var loginBody struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginBody))

	body := gin.H{
		"type":      model.PostTypeShort,
		"slug":      "twice",
		"contentMD": "once",
	}
	first := doJSON(router, "POST", "/api/admin/posts", loginBody.AccessToken, body)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(router, "POST", "/api/admin/posts", loginBody.AccessToken, body)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.JSONEq(t, `{"error":"Slug already exists"}`, second.Body.String())
}

func TestRefresh_FromHeader(t *testing.T) {
	router, db := setupTestRouter(t)
	seedAdmin(t, db)

	login := doJSON(router, "POST", "/api/admin/login", "", gin.H{
		"email":    "admin@folio.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, login.Code)
	var loginBody struct {
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginBody))

	refreshed := doJSON(router, "POST", "/api/admin/refresh", loginBody.RefreshToken, nil)
	assert.Equal(t, http.StatusOK, refreshed.Code)
	assert.Contains(t, refreshed.Body.String(), "accessToken")

	missing := doJSON(router, "POST", "/api/admin/refresh", "", nil)
	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.JSONEq(t, `{"error":"Invalid refresh token"}`, missing.Body.String())
}

func doUpload(router *gin.Engine, token, filename string, content []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", filename)
	_, _ = part.Write(content)
	_ = mw.Close()

	req, _ := http.NewRequest("POST", "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// 上传只校验登录态，普通用户同样可用
func TestUpload_RequiresOnlyLogin(t *testing.T) {
	router, db := setupTestRouter(t)

	hashed, err := security.HashPassword("user123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{
		Email:    "user@folio.com",
		Password: hashed,
		Role:     model.RoleUser,
	}).Error)

	login := doJSON(router, "POST", "/api/admin/login", "", gin.H{
		"email":    "user@folio.com",
		"password": "user123",
	})
	require.Equal(t, http.StatusOK, login.Code)
	var loginBody struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginBody))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	denied := doUpload(router, "", "photo.png", buf.Bytes())
	assert.Equal(t, http.StatusUnauthorized, denied.Code)

	uploaded := doUpload(router, loginBody.AccessToken, "photo.png", buf.Bytes())
	require.Equal(t, http.StatusCreated, uploaded.Code)
	assert.Contains(t, uploaded.Body.String(), `"url":"/uploads/`)
}
