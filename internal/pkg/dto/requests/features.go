package requests

type Diagnosis struct {
	Symptoms string `json:"symptoms" validate:"max=2000"`
	Language string `json:"language"`
	// ClientKey identifies the caller for quota accounting, set by the controller.
	ClientKey string `json:"-"`
}

type EQAnswer struct {
	QuestionID int    `json:"questionId" validate:"required,gte=1"`
	Value      int    `json:"value" validate:"gte=1,lte=5"`
	Category   string `json:"category"`
}

type ScoreEQ struct {
	Answers []EQAnswer `json:"answers" validate:"required,min=1,dive"`
	Scale   string     `json:"scale" validate:"omitempty,oneof=percent normalized"`
}

type CalculateBMI struct {
	Height     string `json:"height" validate:"required,max=20"`
	Weight     string `json:"weight" validate:"required,max=20"`
	HeightUnit string `json:"heightUnit" validate:"omitempty,height_unit"`
}

type Geocode struct {
	Query  string `json:"query" validate:"required,max=300"`
	Region string `json:"region" validate:"omitempty,len=2"`
}

type NearbyPlaces struct {
	Lat    *float64 `json:"lat" validate:"required,latitude"`
	Lng    *float64 `json:"lng" validate:"required,longitude"`
	Radius uint     `json:"radius"`
	Types  []string `json:"types" validate:"omitempty,dive,oneof=hospital doctor pharmacy physiotherapist dentist"`
}

type AnalyzeMedicine struct {
	FileName    string
	ContentType string
	Size        int64
}

type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	IsHTML  bool   `json:"is_html"`
}
