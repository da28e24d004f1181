package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/repository"
	"github.com/tamsou/portfolio-backend/internal/service"
	"github.com/tamsou/portfolio-backend/pkg/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Album{},
		&models.Photo{},
		&models.PurchaseHistory{},
		&models.DownloadCode{},
	))

	return db
}

type noopMailer struct{}

func (noopMailer) SendVerificationEmail(to, name, token string) error { return nil }
func (noopMailer) SendWelcomeEmail(to, name string) error             { return nil }

func newAdminTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	db := setupHandlerDB(t)
	authService := service.NewAuthService(repository.NewUserRepository(db), noopMailer{})
	albumService := service.NewAlbumService(repository.NewAlbumRepository(db))
	validator := utils.NewValidator()

	h := NewAdminHandler(authService, albumService, nil, validator)

	app := fiber.New()
	app.Post("/api/admin/login", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, models.Response) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed models.Response
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &parsed))

	return resp.StatusCode, parsed
}

func TestAdminLoginSuccess(t *testing.T) {
	app := newAdminTestApp(t)

	status, resp := postJSON(t, app, "/api/admin/login", models.AdminLoginRequest{
		Username: "admin",
		Password: "hunter2",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
}

func TestAdminLoginRejectsAnyOtherPair(t *testing.T) {
	app := newAdminTestApp(t)

	for _, bad := range []models.AdminLoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "guess", Password: "hunter2"},
		{Username: "", Password: ""},
	} {
		status, resp := postJSON(t, app, "/api/admin/login", bad)

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.False(t, resp.Success)
		assert.Equal(t, "Identifiants incorrects", resp.Error)
		assert.Nil(t, resp.Data)
	}
}
