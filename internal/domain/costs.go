package domain

import (
	"strings"
	"time"
)

// TransportSector adalah satu rute transport dengan harga per kategori umur.
// Reference menautkan sector ke nama visa type untuk filtering paket.
type TransportSector struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	VehicleType  string       `json:"vehicle_type"`
	AdultPrice   float64      `json:"adult_price"`
	ChildPrice   float64      `json:"child_price"`
	InfantPrice  float64      `json:"infant_price"`
	Reference    string       `json:"reference"`
	SmallSector  *SmallSector `json:"small_sector,omitempty"`
	VehicleTypes []string     `json:"vehicle_types,omitempty"`
}

type SmallSector struct {
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
}

// HotelPriceEntry adalah harga aktif sebuah hotel untuk rentang tanggal.
type HotelPriceEntry struct {
	ID        int64
	HotelID   int64
	RoomType  string
	StartDate time.Time
	EndDate   time.Time
	Price     float64
}

// HotelStay adalah satu sub-form hotel pada kalkulator.
type HotelStay struct {
	HotelID   int64
	HotelName string
	RoomType  string
	CheckIn   time.Time
	Nights    int
	Self      bool
}

// ActiveHotelPrice mencari entri harga yang rentang [start_date, end_date]-nya
// memuat tanggal check-in (inklusif dua sisi).
func ActiveHotelPrice(entries []HotelPriceEntry, hotelID int64, roomType string, date time.Time) *HotelPriceEntry {
	for i := range entries {
		e := entries[i]
		if e.HotelID != hotelID {
			continue
		}
		if roomType != "" && !strings.EqualFold(e.RoomType, roomType) {
			continue
		}
		if date.Before(e.StartDate) || date.After(e.EndDate) {
			continue
		}
		return &entries[i]
	}
	return nil
}

// HotelStayCost menghitung biaya satu stay: price x (adults+children) x nights.
// Semua room type memakai rumus orang x malam yang sama; room type hanya
// menentukan baris harga mana yang dipakai. Self-hotel selalu 0.
// ok=false berarti stay berharga tapi tidak punya baris harga aktif.
func HotelStayCost(stay HotelStay, entries []HotelPriceEntry, p PassengerCounts) (cost float64, ok bool) {
	if stay.Self || stay.HotelID == 0 {
		return 0, true
	}
	e := ActiveHotelPrice(entries, stay.HotelID, stay.RoomType, stay.CheckIn)
	if e == nil {
		return 0, false
	}
	return e.Price * float64(p.TotalPaying()) * float64(stay.Nights), true
}

// TransportLeg adalah satu sub-form transport pada kalkulator.
type TransportLeg struct {
	Sector *TransportSector
	Self   bool
}

// TransportCost menjumlahkan biaya seluruh leg non-self. Saat bracket visa
// yang ter-resolve menyatakan includesTransport, total transport dipaksa 0
// apa pun harga sector-nya.
func TransportCost(legs []TransportLeg, p PassengerCounts, includesTransport bool) float64 {
	if includesTransport {
		return 0
	}
	total := 0.0
	for _, leg := range legs {
		if leg.Self || leg.Sector == nil {
			continue
		}
		total += float64(p.Adults)*leg.Sector.AdultPrice +
			float64(p.Children)*leg.Sector.ChildPrice +
			float64(p.Infants)*leg.Sector.InfantPrice
	}
	return total
}

// FilterSectorsByReference menyaring sector untuk booking vtth/vth: hanya
// sector yang reference-nya sama dengan nama visa type (case-insensitive).
func FilterSectorsByReference(sectors []TransportSector, visaTypeName string) []TransportSector {
	name := strings.TrimSpace(visaTypeName)
	out := []TransportSector{}
	for _, s := range sectors {
		if strings.EqualFold(strings.TrimSpace(s.Reference), name) {
			out = append(out, s)
		}
	}
	return out
}

// SectorsForOnlyVisa: saat only-visa/long-term plus transport, pilihan sector
// dibatasi ke sector yang tertanam di bracket only-visa yang cocok, melewati
// tabel transport umum sepenuhnya.
func SectorsForOnlyVisa(b *OnlyVisaBracket) []TransportSector {
	if b == nil {
		return []TransportSector{}
	}
	return b.Sectors
}

// FoodItem adalah satu item harga katering.
type FoodItem struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	PerPex float64 `json:"per_pex"`
	MinPex int     `json:"min_pex"`
}

// FoodCost: per_pex x (adults+children) per sub-form non-self, hanya saat
// (adults+children) <= min_pex. Gate mengikuti perilaku sumber apa adanya.
func FoodCost(items []FoodItem, p PassengerCounts, selfFood bool) float64 {
	if selfFood {
		return 0
	}
	persons := p.TotalPaying()
	total := 0.0
	for _, item := range items {
		if persons <= item.MinPex {
			total += item.PerPex * float64(persons)
		}
	}
	return total
}

// ZiaratItem adalah satu item harga ziarat.
type ZiaratItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ZiaratCost: price x (adults+children) per sub-form non-self, tanpa gate.
func ZiaratCost(items []ZiaratItem, p PassengerCounts, selfZiarat bool) float64 {
	if selfZiarat {
		return 0
	}
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(p.TotalPaying())
	}
	return total
}

// familyCapacities adalah kapasitas greedy untuk pembagian keluarga.
var familyCapacities = []int{5, 4, 3, 2, 1}

// SplitFamilies membagi total pax jadi grup "Family N" secara greedy:
// ambil kapasitas terbesar yang <= sisa, kalau tidak ada ambil 1.
// Murni untuk label penempatan, tidak pernah mengubah rumus biaya.
func SplitFamilies(total int) []int {
	groups := []int{}
	remaining := total
	for remaining > 0 {
		size := 1
		for _, c := range familyCapacities {
			if c <= remaining {
				size = c
				break
			}
		}
		groups = append(groups, size)
		remaining -= size
	}
	return groups
}
