package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/repository"
	"github.com/tamsou/portfolio-backend/pkg/utils"
	"gorm.io/gorm"
)

func newTestDownloadService(t *testing.T) (*DownloadService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewDownloadService(
		repository.NewDownloadCodeRepository(db),
		repository.NewPurchaseRepository(db),
	)
	return svc, db
}

func seedPhotoPurchase(t *testing.T, db *gorm.DB, userID uint, status string) *models.PurchaseHistory {
	t.Helper()

	photo := &models.Photo{AlbumID: 1, Title: "sprint.jpg", ImageURL: "https://cdn.example.com/sprint.jpg"}
	require.NoError(t, db.Create(photo).Error)

	purchase := &models.PurchaseHistory{
		UserID:          userID,
		PhotoID:         &photo.ID,
		Amount:          29.99,
		StripeSessionID: "cs_test_" + t.Name(),
		Status:          status,
	}
	require.NoError(t, db.Create(purchase).Error)
	return purchase
}

func TestGenerateCode(t *testing.T) {
	svc, db := newTestDownloadService(t)
	purchase := seedPhotoPurchase(t, db, 7, models.PurchaseStatusCompleted)

	before := time.Now()
	code, err := svc.GenerateCode(7, purchase.ID)
	require.NoError(t, err)

	assert.Len(t, code.Code, utils.DownloadCodeLength)
	assert.Equal(t, uint(7), code.UserID)
	require.NotNil(t, code.PhotoID)
	assert.Nil(t, code.AlbumID)
	assert.False(t, code.IsUsed)

	// Expiry is 7 days out.
	assert.WithinDuration(t, before.Add(models.DownloadCodeValidity), code.ExpiresAt, 5*time.Second)
}

func TestGenerateCodeRequiresCompletedOwnPurchase(t *testing.T) {
	svc, db := newTestDownloadService(t)

	pending := seedPhotoPurchase(t, db, 7, models.PurchaseStatusPending)
	_, err := svc.GenerateCode(7, pending.ID)
	assert.EqualError(t, err, "purchase is not completed")

	_, err = svc.GenerateCode(8, pending.ID)
	assert.EqualError(t, err, "unauthorized")

	_, err = svc.GenerateCode(7, 9999)
	assert.EqualError(t, err, "purchase not found")
}

func TestRedeemBurnsCode(t *testing.T) {
	svc, db := newTestDownloadService(t)
	purchase := seedPhotoPurchase(t, db, 7, models.PurchaseStatusCompleted)

	code, err := svc.GenerateCode(7, purchase.ID)
	require.NoError(t, err)

	resp, err := svc.Redeem(7, code.Code)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/sprint.jpg", resp.URL)

	// A second redemption of the same code must fail.
	_, err = svc.Redeem(7, code.Code)
	require.Error(t, err)
	assert.Equal(t, "Code invalide ou expiré", err.Error())

	var stored models.DownloadCode
	require.NoError(t, db.Where("code = ?", code.Code).First(&stored).Error)
	assert.True(t, stored.IsUsed)
}

func TestRedeemRejectsExpiredCode(t *testing.T) {
	svc, db := newTestDownloadService(t)

	photoID := uint(1)
	require.NoError(t, db.Create(&models.Photo{AlbumID: 1, Title: "old.jpg", ImageURL: "https://cdn.example.com/old.jpg"}).Error)
	require.NoError(t, db.Create(&models.DownloadCode{
		Code:      "expiredcode12345",
		UserID:    7,
		PhotoID:   &photoID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)

	_, err := svc.Redeem(7, "expiredcode12345")
	require.Error(t, err)
	assert.Equal(t, "Code invalide ou expiré", err.Error())

	// The failed attempt must not burn the code.
	var stored models.DownloadCode
	require.NoError(t, db.Where("code = ?", "expiredcode12345").First(&stored).Error)
	assert.False(t, stored.IsUsed)
}

func TestRedeemRejectsOtherUsersCode(t *testing.T) {
	svc, db := newTestDownloadService(t)
	purchase := seedPhotoPurchase(t, db, 7, models.PurchaseStatusCompleted)

	code, err := svc.GenerateCode(7, purchase.ID)
	require.NoError(t, err)

	_, err = svc.Redeem(8, code.Code)
	require.Error(t, err)
	assert.Equal(t, "Code invalide ou expiré", err.Error())
}

func TestGetActiveCodesFiltersUsedAndExpired(t *testing.T) {
	svc, db := newTestDownloadService(t)

	photoID := uint(1)
	require.NoError(t, db.Create(&models.Photo{AlbumID: 1, Title: "a.jpg", ImageURL: "https://cdn.example.com/a.jpg"}).Error)

	require.NoError(t, db.Create(&models.DownloadCode{
		Code: "activecode123456", UserID: 7, PhotoID: &photoID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}).Error)
	require.NoError(t, db.Create(&models.DownloadCode{
		Code: "usedcode12345678", UserID: 7, PhotoID: &photoID,
		ExpiresAt: time.Now().Add(24 * time.Hour), IsUsed: true,
	}).Error)
	require.NoError(t, db.Create(&models.DownloadCode{
		Code: "expiredcode12345", UserID: 7, PhotoID: &photoID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}).Error)

	codes, err := svc.GetActiveCodes(7)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "activecode123456", codes[0].Code)
}
