package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/dto"
	"github.com/pawpal-app/pawpal-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProfileService(db *gorm.DB) *ProfileService {
	return NewProfileService(db, NewCertificationService(db))
}

func TestGetProfileOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)

	owner := createUser(t, db, models.RoleOwner)

	profile, err := svc.Get(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.Email, profile.User.Email)
	assert.Equal(t, models.RoleOwner, profile.User.Role)
	require.NotNil(t, profile.Owner)
	assert.Nil(t, profile.Sitter)
	assert.Empty(t, profile.Images)
}

func TestGetProfileSitter(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)

	sitter := createUser(t, db, models.RoleSitter)

	profile, err := svc.Get(sitter.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.Sitter)
	assert.Nil(t, profile.Owner)
	assert.False(t, profile.Sitter.Certified)

	_, err = svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)

	sitter := createUser(t, db, models.RoleSitter)

	bio := "Experienced with large dogs"
	rate := 17.50
	petTypes := []string{"dog", "cat"}
	name := "Updated Name"

	profile, err := svc.Update(sitter.ID, &dto.UpdateProfileRequest{
		Name:       &name,
		Bio:        &bio,
		HourlyRate: &rate,
		PetTypes:   &petTypes,
	})
	require.NoError(t, err)
	assert.Equal(t, name, profile.User.Name)
	require.NotNil(t, profile.Sitter)
	assert.Equal(t, bio, profile.Sitter.Bio)
	assert.InDelta(t, rate, profile.Sitter.HourlyRate, 0.001)
	assert.Equal(t, petTypes, profile.Sitter.PetTypes)

	// A nil field leaves the stored value untouched.
	region := "Eindhoven"
	profile, err = svc.Update(sitter.ID, &dto.UpdateProfileRequest{Region: &region})
	require.NoError(t, err)
	assert.Equal(t, region, profile.User.Region)
	assert.Equal(t, name, profile.User.Name)
	assert.Equal(t, bio, profile.Sitter.Bio)

	// Role and email never change through this path.
	assert.Equal(t, models.RoleSitter, profile.User.Role)
	assert.Equal(t, sitter.Email, profile.User.Email)
}

func TestUpdateProfileOwnerFields(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)

	owner := createUser(t, db, models.RoleOwner)

	petName := "Rex"
	petBio := "Golden retriever, loves water"
	profile, err := svc.Update(owner.ID, &dto.UpdateProfileRequest{
		PetName: &petName,
		PetBio:  &petBio,
	})
	require.NoError(t, err)
	require.NotNil(t, profile.Owner)
	assert.Equal(t, petName, profile.Owner.PetName)
	assert.Equal(t, petBio, profile.Owner.PetBio)
}

func TestProfileImages(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(db)

	sitter := createUser(t, db, models.RoleSitter)
	other := createUser(t, db, models.RoleSitter)

	first, err := svc.AddImage(sitter.ID, "/uploads/profiles/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)

	second, err := svc.AddImage(sitter.ID, "/uploads/profiles/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	profile, err := svc.Get(sitter.ID)
	require.NoError(t, err)
	require.Len(t, profile.Images, 2)
	assert.Equal(t, "/uploads/profiles/a.jpg", profile.Images[0].URL)

	// Deleting someone else's image is a not-found, not a delete.
	err = svc.DeleteImage(other.ID, first.ID)
	assert.ErrorIs(t, err, ErrImageNotFound)

	require.NoError(t, svc.DeleteImage(sitter.ID, first.ID))
	err = svc.DeleteImage(sitter.ID, first.ID)
	assert.ErrorIs(t, err, ErrImageNotFound)

	profile, err = svc.Get(sitter.ID)
	require.NoError(t, err)
	require.Len(t, profile.Images, 1)
	assert.Equal(t, "/uploads/profiles/b.jpg", profile.Images[0].URL)
}
