package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newSitterService(db *gorm.DB) *SitterService {
	return NewSitterService(db, NewCertificationService(db))
}

func seedSitterProfile(t *testing.T, db *gorm.DB, userID uuid.UUID, rating float64, petTypes string) {
	t.Helper()
	updates := map[string]interface{}{"average_rating": rating}
	if petTypes != "" {
		updates["pet_types"] = datatypes.JSON(petTypes)
	}
	require.NoError(t, db.Model(&models.SitterProfile{}).
		Where("user_id = ?", userID).
		Updates(updates).Error)
}

func TestSearchSitters(t *testing.T) {
	db := newTestDB(t)
	svc := newSitterService(db)

	amsterdam := createUser(t, db, models.RoleSitter)
	rotterdam := createUser(t, db, models.RoleSitter)
	require.NoError(t, db.Model(rotterdam).Update("region", "Rotterdam").Error)
	owner := createUser(t, db, models.RoleOwner)

	results, total, err := svc.Search(SitterSearchFilters{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, results, 2)
	for _, r := range results {
		assert.NotEqual(t, owner.ID.String(), r.ID, "owners never appear in the directory")
	}

	results, total, err = svc.Search(SitterSearchFilters{Region: "Rotterdam"}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, rotterdam.ID.String(), results[0].ID)

	_ = amsterdam
}

func TestSearchSittersByRating(t *testing.T) {
	db := newTestDB(t)
	svc := newSitterService(db)

	high := createUser(t, db, models.RoleSitter)
	low := createUser(t, db, models.RoleSitter)
	seedSitterProfile(t, db, high.ID, 4.7, "")
	seedSitterProfile(t, db, low.ID, 3.1, "")

	results, total, err := svc.Search(SitterSearchFilters{MinRating: 4.0}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, high.ID.String(), results[0].ID)
}

func TestSearchSittersByPetType(t *testing.T) {
	db := newTestDB(t)
	svc := newSitterService(db)

	dogSitter := createUser(t, db, models.RoleSitter)
	catSitter := createUser(t, db, models.RoleSitter)
	seedSitterProfile(t, db, dogSitter.ID, 0, `["dog","rabbit"]`)
	seedSitterProfile(t, db, catSitter.ID, 0, `["cat"]`)

	results, total, err := svc.Search(SitterSearchFilters{PetType: "dog"}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, dogSitter.ID.String(), results[0].ID)
	assert.Contains(t, results[0].PetTypes, "rabbit")
}

func TestSearchSittersByCertified(t *testing.T) {
	db := newTestDB(t)
	certs := NewCertificationService(db)
	svc := NewSitterService(db, certs)

	admin := createUser(t, db, models.RoleAdmin)
	certifiedSitter := createUser(t, db, models.RoleSitter)
	plainSitter := createUser(t, db, models.RoleSitter)

	request, err := certs.Submit(certifiedSitter.ID)
	require.NoError(t, err)
	_, err = certs.Approve(request.ID, admin.ID)
	require.NoError(t, err)

	certified := true
	results, total, err := svc.Search(SitterSearchFilters{Certified: &certified}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, certifiedSitter.ID.String(), results[0].ID)
	assert.True(t, results[0].Certified)

	uncertified := false
	results, _, err = svc.Search(SitterSearchFilters{Certified: &uncertified}, 1, 20)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, plainSitter.ID.String(), results[0].ID)
}

func TestSearchSittersPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newSitterService(db)

	for i := 0; i < 5; i++ {
		createUser(t, db, models.RoleSitter)
	}

	page1, total, err := svc.Search(SitterSearchFilters{}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page1, 2)

	page3, total, err := svc.Search(SitterSearchFilters{}, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page3, 1)

	beyond, total, err := svc.Search(SitterSearchFilters{}, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, beyond)
}

func TestSearchSittersRatingWithPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newSitterService(db)

	for i := 0; i < 3; i++ {
		sitter := createUser(t, db, models.RoleSitter)
		seedSitterProfile(t, db, sitter.ID, 4.5, "")
	}
	for i := 0; i < 2; i++ {
		sitter := createUser(t, db, models.RoleSitter)
		seedSitterProfile(t, db, sitter.ID, 2.0, "")
	}

	page1, total, err := svc.Search(SitterSearchFilters{MinRating: 4.0}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page1, 2)

	page2, total, err := svc.Search(SitterSearchFilters{MinRating: 4.0}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page2, 1)
	assert.GreaterOrEqual(t, page2[0].AverageRating, 4.0)

	for _, s := range append(page1, page2...) {
		assert.GreaterOrEqual(t, s.AverageRating, 4.0)
	}
}

func TestGetSitter(t *testing.T) {
	db := newTestDB(t)
	svc := newSitterService(db)

	sitter := createUser(t, db, models.RoleSitter)
	seedSitterProfile(t, db, sitter.ID, 4.2, `["dog"]`)
	require.NoError(t, db.Create(&models.ProfileImage{
		ID: uuid.New(), UserID: sitter.ID, URL: "/uploads/profiles/a.jpg", Position: 0,
	}).Error)

	summary, err := svc.Get(sitter.ID)
	require.NoError(t, err)
	assert.Equal(t, sitter.Name, summary.Name)
	assert.InDelta(t, 4.2, summary.AverageRating, 0.001)
	assert.Equal(t, []string{"dog"}, summary.PetTypes)
	assert.Equal(t, []string{"/uploads/profiles/a.jpg"}, summary.Images)

	_, err = svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrSitterNotFound)

	owner := createUser(t, db, models.RoleOwner)
	_, err = svc.Get(owner.ID)
	assert.ErrorIs(t, err, ErrSitterNotFound)
}

func TestSummariesPreserveInputOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newSitterService(db)

	a := createUser(t, db, models.RoleSitter)
	b := createUser(t, db, models.RoleSitter)
	c := createUser(t, db, models.RoleSitter)

	summaries, err := svc.Summaries([]uuid.UUID{c.ID, a.ID, b.ID})
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, c.ID.String(), summaries[0].ID)
	assert.Equal(t, a.ID.String(), summaries[1].ID)
	assert.Equal(t, b.ID.String(), summaries[2].ID)

	// Unknown IDs are skipped, not errors.
	summaries, err = svc.Summaries([]uuid.UUID{a.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}
