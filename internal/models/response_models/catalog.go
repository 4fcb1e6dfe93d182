package response_models

type CityResponse struct {
	Name             string   `json:"name"`
	DefaultFocus     string   `json:"default_focus"`
	AverageDailyCost float64  `json:"average_daily_cost"`
	PlaceCount       int      `json:"place_count"`
	LocalTips        []string `json:"local_tips,omitempty"`
}

type CityPlacesResponse struct {
	City   CityResponse    `json:"city"`
	Places []PlaceResponse `json:"places"`
}

type TagResponse struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Places int    `json:"places"`
}

type CatalogReloadResponse struct {
	Source  string `json:"source"`
	Version string `json:"version"`
	Cities  int    `json:"cities"`
	Places  int    `json:"places"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
