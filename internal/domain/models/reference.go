package models

type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

type HotelCategory struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organization"`
	Name           string `json:"name"`
}

type Airline struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

type Organization struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RiyalRate adalah kurs konversi organisasi (1 SAR dalam mata uang lokal).
type RiyalRate struct {
	ID             int64   `json:"id"`
	OrganizationID int64   `json:"organization"`
	Rate           float64 `json:"rate"`
	Currency       string  `json:"currency,omitempty"`
}

// VisaType adalah katalog visa type milik organisasi (endpoint set-visa-type).
type VisaType struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organization"`
	Name           string `json:"name"`
}
