package models

type Doctor struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Specialty    string  `json:"specialty"`
	Rating       float64 `json:"rating"`
	Experience   string  `json:"experience"`
	Availability string  `json:"availability"`
	Fee          string  `json:"consultationFee"`
	Image        string  `json:"image"`
}

type MedicineDosage struct {
	Adults   string `json:"adults"`
	Children string `json:"children"`
	MaxDaily string `json:"maxDaily"`
}

type MedicineInfo struct {
	Name         string         `json:"name"`
	GenericName  string         `json:"genericName"`
	Manufacturer string         `json:"manufacturer"`
	Uses         []string       `json:"uses"`
	Dosage       MedicineDosage `json:"dosage"`
	SideEffects  []string       `json:"sideEffects"`
	Warnings     []string       `json:"warnings"`
}
