package dto

type ProfileImageResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

type OwnerProfileData struct {
	PetName string `json:"pet_name"`
	PetBio  string `json:"pet_bio"`
}

type SitterProfileData struct {
	Bio           string   `json:"bio"`
	HourlyRate    float64  `json:"hourly_rate"`
	PetTypes      []string `json:"pet_types"`
	AverageRating float64  `json:"average_rating"`
	Certified     bool     `json:"certified"`
}

type ProfileResponse struct {
	User   UserResponse           `json:"user"`
	Owner  *OwnerProfileData      `json:"owner_profile,omitempty"`
	Sitter *SitterProfileData     `json:"sitter_profile,omitempty"`
	Images []ProfileImageResponse `json:"images"`
}

type UpdateProfileRequest struct {
	Name       *string   `json:"name"`
	Region     *string   `json:"region"`
	PetName    *string   `json:"pet_name"`
	PetBio     *string   `json:"pet_bio"`
	Bio        *string   `json:"bio"`
	HourlyRate *float64  `json:"hourly_rate"`
	PetTypes   *[]string `json:"pet_types"`
}
