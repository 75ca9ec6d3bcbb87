package responses

import (
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/eqscore"
	"time"
)

type Diagnosis struct {
	Response      string `json:"response"`
	Source        string `json:"source"`
	QuotaExceeded bool   `json:"quotaExceeded"`
	Cached        bool   `json:"cached"`
}

type AITest struct {
	Message  string `json:"message"`
	Provider string `json:"provider"`
}

type EQQuestions struct {
	Questions  []eqscore.Question            `json:"questions"`
	Scale      []eqscore.ScaleOption         `json:"scale"`
	Categories []eqscore.CategoryDescription `json:"categories"`
	Scoring    EQScoring                     `json:"scoring"`
}

// EQScoring tells clients which score scale applies when a submission
// omits one.
type EQScoring struct {
	Default string            `json:"default"`
	Options []EQScoringOption `json:"options"`
}

type EQScoringOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MinScore    int    `json:"minScore"`
	MaxScore    int    `json:"maxScore"`
}

type EQResult struct {
	Overall        int            `json:"overall"`
	Categories     map[string]int `json:"categories"`
	Interpretation string         `json:"interpretation"`
	Scale          string         `json:"scale"`
}

type BMI struct {
	BMI          string  `json:"bmi"`
	Value        float64 `json:"value"`
	Category     string  `json:"category"`
	HeightMeters float64 `json:"heightMeters"`
	HeightUnit   string  `json:"heightUnit"`
}

type MedicineAnalysis struct {
	models.MedicineInfo
	Placeholder bool `json:"placeholder"`
}

type GeocodeResult struct {
	FormattedAddress string  `json:"formattedAddress"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	PlaceID          string  `json:"placeId"`
}

type Geocode struct {
	Status  string          `json:"status"`
	Results []GeocodeResult `json:"results"`
}

type Place struct {
	PlaceID  string   `json:"placeId"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Rating   float32  `json:"rating"`
	Category string   `json:"category"`
	Types    []string `json:"types"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	OpenNow  *bool    `json:"openNow,omitempty"`
}

type NearbyPlaces struct {
	Places []Place `json:"places"`
	Radius uint    `json:"radius"`
}

type MapsConfig struct {
	GeolocationTimeoutMs int      `json:"geolocationTimeoutMs"`
	MaximumAgeMs         int      `json:"maximumAgeMs"`
	DefaultRadiusMeters  int      `json:"defaultRadiusMeters"`
	MinRating            float64  `json:"minRating"`
	ResultLimit          int      `json:"resultLimit"`
	PlaceTypes           []string `json:"placeTypes"`
	Enabled              bool     `json:"enabled"`
}

type ServiceHealth struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

type APIInfo struct {
	Message  string   `json:"message"`
	Tagline  string   `json:"tagline"`
	Version  string   `json:"version"`
	Status   string   `json:"status"`
	Features []string `json:"features"`
	Docs     string   `json:"docs"`
	Support  string   `json:"support"`
}
