package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/dto"
	"github.com/pawpal-app/pawpal-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteService struct {
	db      *gorm.DB
	sitters *SitterService
}

func NewFavoriteService(db *gorm.DB, sitters *SitterService) *FavoriteService {
	return &FavoriteService{db: db, sitters: sitters}
}

// Add bookmarks a sitter. Idempotent by contract: a duplicate add is a
// no-op upsert, not a swallowed constraint violation.
func (s *FavoriteService) Add(ownerID, sitterID uuid.UUID) error {
	var sitter models.User
	if err := s.db.Where("id = ? AND role = ?", sitterID, models.RoleSitter).First(&sitter).Error; err != nil {
		return ErrSitterNotFound
	}

	favorite := models.Favorite{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		SitterID: sitterID,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "sitter_id"}},
		DoNothing: true,
	}).Create(&favorite).Error
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes the bookmark if it exists. Removing an absent pair is a
// no-op.
func (s *FavoriteService) Remove(ownerID, sitterID uuid.UUID) error {
	err := s.db.Where("owner_id = ? AND sitter_id = ?", ownerID, sitterID).
		Delete(&models.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// List returns the owner's bookmarked sitters as display summaries,
// newest bookmark first.
func (s *FavoriteService) List(ownerID uuid.UUID) ([]dto.SitterSummary, error) {
	var favorites []models.Favorite
	err := s.db.Scopes(models.ForOwner(ownerID)).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	sitterIDs := make([]uuid.UUID, len(favorites))
	for i, f := range favorites {
		sitterIDs[i] = f.SitterID
	}

	return s.sitters.Summaries(sitterIDs)
}
