package models

// Hotel adalah record inventory hotel milik satu organisasi.
type Hotel struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organization"`
	Name           string `json:"name"`
	City           string `json:"city"`
	CategoryID     int64  `json:"category,omitempty"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Distance       string `json:"distance,omitempty"`
}

type HotelRoom struct {
	ID       int64  `json:"id"`
	HotelID  int64  `json:"hotel"`
	RoomType string `json:"room_type"`
	Capacity int    `json:"capacity"`
	Count    int    `json:"count"`
}

// HotelPrice adalah baris harga hotel per room type dan rentang tanggal.
type HotelPrice struct {
	ID        int64   `json:"id"`
	HotelID   int64   `json:"hotel"`
	RoomType  string  `json:"room_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Price     float64 `json:"price"`
}

type HotelContact struct {
	ID      int64  `json:"id"`
	HotelID int64  `json:"hotel"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Role    string `json:"role,omitempty"`
}

type HotelPhoto struct {
	ID      int64  `json:"id"`
	HotelID int64  `json:"hotel"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// HotelCreateInput membawa hotel plus detail nested sekali simpan.
// Pada request multipart, prices/contact_details/photos dikirim sebagai
// field JSON string.
type HotelCreateInput struct {
	Hotel    Hotel          `json:"hotel"`
	Prices   []HotelPrice   `json:"prices"`
	Contacts []HotelContact `json:"contact_details"`
	Photos   []HotelPhoto   `json:"photos"`
}
