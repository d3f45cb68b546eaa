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

var ErrImageNotFound = errors.New("profile image not found")

type ProfileService struct {
	db    *gorm.DB
	certs *CertificationService
}

func NewProfileService(db *gorm.DB, certs *CertificationService) *ProfileService {
	return &ProfileService{db: db, certs: certs}
}

// Get assembles the caller's profile view: user record, role profile and
// uploaded images.
func (s *ProfileService) Get(userID uuid.UUID) (*dto.ProfileResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	resp := dto.ProfileResponse{
		User: dto.UserResponse{
			ID:     user.ID,
			Email:  user.Email,
			Name:   user.Name,
			Role:   user.Role,
			Region: user.Region,
		},
		Images: []dto.ProfileImageResponse{},
	}

	var images []models.ProfileImage
	if err := s.db.Where("user_id = ?", userID).Order("position ASC").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to load profile images: %w", err)
	}
	for _, img := range images {
		resp.Images = append(resp.Images, dto.ProfileImageResponse{
			ID:       img.ID.String(),
			URL:      img.URL,
			Position: img.Position,
		})
	}

	switch user.Role {
	case models.RoleOwner:
		var profile models.OwnerProfile
		if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			resp.Owner = &dto.OwnerProfileData{
				PetName: profile.PetName,
				PetBio:  profile.PetBio,
			}
		}
	case models.RoleSitter:
		var profile models.SitterProfile
		if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			certified, err := s.certs.CertifiedSet([]uuid.UUID{userID})
			if err != nil {
				return nil, err
			}
			resp.Sitter = &dto.SitterProfileData{
				Bio:           profile.Bio,
				HourlyRate:    profile.HourlyRate,
				PetTypes:      decodePetTypes(profile.PetTypes),
				AverageRating: profile.AverageRating,
				Certified:     certified[userID],
			}
		}
	}

	return &resp, nil
}

// Update applies the editable profile fields. Role and email are not
// editable through this path.
func (s *ProfileService) Update(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	userUpdates := map[string]interface{}{}
	if req.Name != nil {
		userUpdates["name"] = *req.Name
	}
	if req.Region != nil {
		userUpdates["region"] = *req.Region
	}
	if len(userUpdates) > 0 {
		if err := s.db.Model(&user).Updates(userUpdates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	switch user.Role {
	case models.RoleOwner:
		ownerUpdates := map[string]interface{}{}
		if req.PetName != nil {
			ownerUpdates["pet_name"] = *req.PetName
		}
		if req.PetBio != nil {
			ownerUpdates["pet_bio"] = *req.PetBio
		}
		if len(ownerUpdates) > 0 {
			err := s.db.Model(&models.OwnerProfile{}).
				Where("user_id = ?", userID).
				Updates(ownerUpdates).Error
			if err != nil {
				return nil, fmt.Errorf("failed to update owner profile: %w", err)
			}
		}
	case models.RoleSitter:
		sitterUpdates := map[string]interface{}{}
		if req.Bio != nil {
			sitterUpdates["bio"] = *req.Bio
		}
		if req.HourlyRate != nil {
			sitterUpdates["hourly_rate"] = *req.HourlyRate
		}
		if req.PetTypes != nil {
			encoded, err := json.Marshal(*req.PetTypes)
			if err != nil {
				return nil, fmt.Errorf("failed to encode pet types: %w", err)
			}
			sitterUpdates["pet_types"] = datatypes.JSON(encoded)
		}
		if len(sitterUpdates) > 0 {
			err := s.db.Model(&models.SitterProfile{}).
				Where("user_id = ?", userID).
				Updates(sitterUpdates).Error
			if err != nil {
				return nil, fmt.Errorf("failed to update sitter profile: %w", err)
			}
		}
	}

	return s.Get(userID)
}

// AddImage records an uploaded image URL at the end of the user's gallery.
func (s *ProfileService) AddImage(userID uuid.UUID, url string) (*models.ProfileImage, error) {
	var count int64
	s.db.Model(&models.ProfileImage{}).Where("user_id = ?", userID).Count(&count)

	image := models.ProfileImage{
		ID:       uuid.New(),
		UserID:   userID,
		URL:      url,
		Position: int(count),
	}

	if err := s.db.Create(&image).Error; err != nil {
		return nil, fmt.Errorf("failed to save profile image: %w", err)
	}
	return &image, nil
}

// DeleteImage removes an image only if it belongs to the caller.
func (s *ProfileService) DeleteImage(userID, imageID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", imageID, userID).
		Delete(&models.ProfileImage{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete profile image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrImageNotFound
	}
	return nil
}
