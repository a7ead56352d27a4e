package models

// CustomPackage adalah agregat paket yang disubmit dari kalkulator:
// dibuat saat "Add to Calculations", di-update via PUT saat query number
// sudah ada, dan bisa di-load ulang untuk mengisi form edit.
type CustomPackage struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organization"`
	QueryNumber    string `json:"query_number,omitempty"`
	CustomerName   string `json:"customer_name,omitempty"`
	CustomerPhone  string `json:"customer_phone,omitempty"`

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`

	VisaTypeName    string  `json:"visa_type"`
	BookingOptions  string  `json:"booking_options"` // id option dipisah koma, urutan dipertahankan
	VisaAdultPrice  float64 `json:"visa_adult_price"`
	VisaChildPrice  float64 `json:"visa_child_price"`
	VisaInfantPrice float64 `json:"visa_infant_price"`

	VisaTotal      float64 `json:"visa_total"`
	HotelTotal     float64 `json:"hotel_total"`
	TransportTotal float64 `json:"transport_total"`
	TicketTotal    float64 `json:"ticket_total"`
	FoodTotal      float64 `json:"food_total"`
	ZiaratTotal    float64 `json:"ziarat_total"`
	GrandTotal     float64 `json:"grand_total"`

	HotelDetails     []PackageHotelDetail     `json:"hotel_details"`
	TransportDetails []PackageTransportDetail `json:"transport_details"`
	TicketDetails    []PackageTicketDetail    `json:"ticket_details"`
	FoodDetails      []PackageFoodDetail      `json:"food_details"`
	ZiaratDetails    []PackageZiaratDetail    `json:"ziarat_details"`
}

type PackageHotelDetail struct {
	ID        int64   `json:"id,omitempty"`
	HotelID   int64   `json:"hotel,omitempty"` // 0 untuk self-hotel
	HotelName string  `json:"hotel_name"`
	RoomType  string  `json:"room_type"`
	CheckIn   string  `json:"check_in"`
	Nights    int     `json:"nights"`
	Self      bool    `json:"is_self"`
	Cost      float64 `json:"cost"`
}

type PackageTransportDetail struct {
	ID          int64   `json:"id,omitempty"`
	SectorID    int64   `json:"sector,omitempty"`
	SectorName  string  `json:"sector_name"`
	VehicleType string  `json:"vehicle_type,omitempty"`
	Self        bool    `json:"is_self"`
	Cost        float64 `json:"cost"`
}

type PackageTicketDetail struct {
	ID          int64   `json:"id,omitempty"`
	AirlineID   int64   `json:"airline,omitempty"`
	FlightNo    string  `json:"flight_no,omitempty"`
	TripType    string  `json:"trip_type"` // departure | return
	DepartureAt string  `json:"departure_at"`
	ArrivalAt   string  `json:"arrival_at"`
	FromCity    string  `json:"from_city"`
	ToCity      string  `json:"to_city"`
	ToCode      string  `json:"to_code,omitempty"`
	Seats       int     `json:"seats,omitempty"`
	Price       float64 `json:"price"`
}

type PackageFoodDetail struct {
	ID     int64   `json:"id,omitempty"`
	FoodID int64   `json:"food,omitempty"`
	Name   string  `json:"name"`
	Self   bool    `json:"is_self"`
	Cost   float64 `json:"cost"`
}

type PackageZiaratDetail struct {
	ID       int64   `json:"id,omitempty"`
	ZiaratID int64   `json:"ziarat,omitempty"`
	Name     string  `json:"name"`
	Self     bool    `json:"is_self"`
	Cost     float64 `json:"cost"`
}
