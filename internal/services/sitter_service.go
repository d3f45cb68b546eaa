package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/dto"
	"github.com/pawpal-app/pawpal-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SitterSearchFilters narrows the sitter directory. Zero values mean
// "no filter".
type SitterSearchFilters struct {
	Region    string
	PetType   string
	Certified *bool
	MinRating float64
}

type SitterService struct {
	db    *gorm.DB
	certs *CertificationService
}

func NewSitterService(db *gorm.DB, certs *CertificationService) *SitterService {
	return &SitterService{db: db, certs: certs}
}

// Search returns paginated sitter summaries. Region and rating filters run
// in the store; pet type (a JSON field) and the derived certified flag are
// applied on the loaded set, since neither is a plain column.
func (s *SitterService) Search(filters SitterSearchFilters, page, limit int) ([]dto.SitterSummary, int64, error) {
	query := s.db.Model(&models.User{}).
		Joins("JOIN sitter_profiles ON sitter_profiles.user_id = users.id").
		Where("users.role = ?", models.RoleSitter)
	if filters.Region != "" {
		query = query.Where("users.region = ?", filters.Region)
	}
	if filters.MinRating > 0 {
		query = query.Where("sitter_profiles.average_rating >= ?", filters.MinRating)
	}

	// With no derived filters left, the store paginates.
	if filters.PetType == "" && filters.Certified == nil {
		var total int64
		if err := query.Count(&total).Error; err != nil {
			return nil, 0, fmt.Errorf("failed to count sitters: %w", err)
		}

		var sitters []models.User
		err := query.Select("users.*").
			Order("users.created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&sitters).Error
		if err != nil {
			return nil, 0, fmt.Errorf("failed to search sitters: %w", err)
		}

		summaries, err := s.Summaries(sitterIDs(sitters))
		if err != nil {
			return nil, 0, err
		}
		return summaries, total, nil
	}

	var sitters []models.User
	err := query.Select("users.*").Order("users.created_at DESC").Find(&sitters).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search sitters: %w", err)
	}

	summaries, err := s.Summaries(sitterIDs(sitters))
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]dto.SitterSummary, 0, len(summaries))
	for _, sum := range summaries {
		if filters.Certified != nil && sum.Certified != *filters.Certified {
			continue
		}
		if filters.PetType != "" && !containsString(sum.PetTypes, filters.PetType) {
			continue
		}
		filtered = append(filtered, sum)
	}

	total := int64(len(filtered))
	offset := (page - 1) * limit
	if offset >= len(filtered) {
		return []dto.SitterSummary{}, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func sitterIDs(users []models.User) []uuid.UUID {
	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

// Get returns the full detail for one sitter.
func (s *SitterService) Get(sitterID uuid.UUID) (*dto.SitterSummary, error) {
	var sitter models.User
	err := s.db.Where("id = ? AND role = ?", sitterID, models.RoleSitter).First(&sitter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSitterNotFound
		}
		return nil, fmt.Errorf("failed to load sitter: %w", err)
	}

	summaries, err := s.Summaries([]uuid.UUID{sitterID})
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, ErrSitterNotFound
	}
	return &summaries[0], nil
}

// Summaries builds denormalized display rows (name, region, images, rating,
// pet types, certified flag) for the given sitters, in input order.
func (s *SitterService) Summaries(sitterIDs []uuid.UUID) ([]dto.SitterSummary, error) {
	if len(sitterIDs) == 0 {
		return []dto.SitterSummary{}, nil
	}

	var users []models.User
	if err := s.db.Where("id IN ? AND role = ?", sitterIDs, models.RoleSitter).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load sitters: %w", err)
	}
	usersByID := make(map[uuid.UUID]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	var profiles []models.SitterProfile
	if err := s.db.Where("user_id IN ?", sitterIDs).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to load sitter profiles: %w", err)
	}
	profilesByUser := make(map[uuid.UUID]models.SitterProfile, len(profiles))
	for _, p := range profiles {
		profilesByUser[p.UserID] = p
	}

	var images []models.ProfileImage
	if err := s.db.Where("user_id IN ?", sitterIDs).Order("position ASC").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to load sitter images: %w", err)
	}
	imagesByUser := make(map[uuid.UUID][]string)
	for _, img := range images {
		imagesByUser[img.UserID] = append(imagesByUser[img.UserID], img.URL)
	}

	certified, err := s.certs.CertifiedSet(sitterIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.SitterSummary, 0, len(sitterIDs))
	for _, id := range sitterIDs {
		user, ok := usersByID[id]
		if !ok {
			continue
		}
		profile := profilesByUser[id]

		summaries = append(summaries, dto.SitterSummary{
			ID:            user.ID.String(),
			Name:          user.Name,
			Region:        user.Region,
			Bio:           profile.Bio,
			HourlyRate:    profile.HourlyRate,
			PetTypes:      decodePetTypes(profile.PetTypes),
			AverageRating: profile.AverageRating,
			Certified:     certified[id],
			Images:        imagesByUser[id],
		})
	}

	return summaries, nil
}

func decodePetTypes(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var types []string
	if err := json.Unmarshal(raw, &types); err != nil {
		return []string{}
	}
	return types
}

func containsString(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
