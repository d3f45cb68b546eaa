package dto

type SitterSummary struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Region        string   `json:"region"`
	Bio           string   `json:"bio,omitempty"`
	HourlyRate    float64  `json:"hourly_rate"`
	PetTypes      []string `json:"pet_types"`
	AverageRating float64  `json:"average_rating"`
	Certified     bool     `json:"certified"`
	Images        []string `json:"images"`
}

type SitterSearchResponse struct {
	Sitters []SitterSummary `json:"sitters"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
}

type AddFavoriteRequest struct {
	SitterID string `json:"sitter_id"`
}

type FavoritesResponse struct {
	Sitters []SitterSummary `json:"sitters"`
	Total   int             `json:"total"`
}
