package domain

// ServiceCategory adalah kategori layanan yang dibawa sebuah booking option.
type ServiceCategory string

const (
	ServiceVisa      ServiceCategory = "visa"
	ServiceTransport ServiceCategory = "transport"
	ServiceHotel     ServiceCategory = "hotel"
	ServiceTickets   ServiceCategory = "tickets"
)

// ID booking option yang dikenal katalog.
const (
	OptionFullPackage  = "vtth"
	OptionVisaTranspHt = "vth"
	OptionVisaTransp   = "vt"
	OptionHotels       = "h"
	OptionTickets      = "t"
	OptionOnlyVisa     = "onlyvisa"
	OptionLongTermVisa = "longtermvisa"
)

// BookingOption memetakan satu kartu pilihan ke set kategori layanannya.
type BookingOption struct {
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	Services []ServiceCategory `json:"services"`
}

// OptionCatalog adalah katalog tetap booking option.
func OptionCatalog() []BookingOption {
	return []BookingOption{
		{ID: OptionFullPackage, Label: "Visa+Transport+Tickets+Hotel", Services: []ServiceCategory{ServiceVisa, ServiceTransport, ServiceTickets, ServiceHotel}},
		{ID: OptionVisaTranspHt, Label: "Visa+Transport+Hotel", Services: []ServiceCategory{ServiceVisa, ServiceTransport, ServiceHotel}},
		{ID: OptionVisaTransp, Label: "Visa+Transport", Services: []ServiceCategory{ServiceVisa, ServiceTransport}},
		{ID: OptionHotels, Label: "Hotels", Services: []ServiceCategory{ServiceHotel}},
		{ID: OptionTickets, Label: "Tickets", Services: []ServiceCategory{ServiceTickets}},
		{ID: OptionOnlyVisa, Label: "Only Visa", Services: []ServiceCategory{ServiceVisa}},
		{ID: OptionLongTermVisa, Label: "Long Term Visa", Services: []ServiceCategory{ServiceVisa}},
	}
}

func optionByID(id string) *BookingOption {
	catalog := OptionCatalog()
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// ToggleOption menambah/menghapus id dari selection. ID yang tidak ada di
// katalog diabaikan. Menyalakan option yang sedang disabled juga ditolak;
// option yang sudah terpilih selalu boleh dimatikan.
func ToggleOption(selected []string, id string) []string {
	if optionByID(id) == nil {
		return selected
	}
	for i, s := range selected {
		if s == id {
			out := make([]string, 0, len(selected)-1)
			out = append(out, selected[:i]...)
			return append(out, selected[i+1:]...)
		}
	}
	if OptionDisabled(selected, id) {
		return selected
	}
	out := make([]string, len(selected), len(selected)+1)
	copy(out, selected)
	return append(out, id)
}

// ActiveCategories mengembalikan union kategori dari seluruh option terpilih.
func ActiveCategories(selected []string) map[ServiceCategory]bool {
	out := map[ServiceCategory]bool{}
	for _, id := range selected {
		opt := optionByID(id)
		if opt == nil {
			continue
		}
		for _, svc := range opt.Services {
			out[svc] = true
		}
	}
	return out
}

// OptionDisabled: sebuah option tidak bisa dipilih baru kalau salah satu
// kategorinya sudah disuplai option lain yang sedang terpilih. Option yang
// sudah terpilih tidak pernah disabled (tetap bisa di-toggle off).
func OptionDisabled(selected []string, id string) bool {
	opt := optionByID(id)
	if opt == nil {
		return true
	}
	for _, s := range selected {
		if s == id {
			return false
		}
	}
	covered := ActiveCategories(selected)
	for _, svc := range opt.Services {
		if covered[svc] {
			return true
		}
	}
	return false
}

// BookingFlags adalah flag turunan dari selection, selalu sinkron dengan set.
type BookingFlags struct {
	OnlyVisa     bool
	LongTermVisa bool
	FullPackage  bool
	AddVisaPrice bool
}

// DeriveFlags menghitung flag booking dari selection. AddVisaPrice menyala
// saat kategori visa aktif lewat jalur reguler (bukan only/long-term/vtth).
func DeriveFlags(selected []string) BookingFlags {
	f := BookingFlags{}
	for _, id := range selected {
		switch id {
		case OptionOnlyVisa:
			f.OnlyVisa = true
		case OptionLongTermVisa:
			f.LongTermVisa = true
		case OptionFullPackage:
			f.FullPackage = true
		}
	}
	if !f.OnlyVisa && !f.LongTermVisa && !f.FullPackage && ActiveCategories(selected)[ServiceVisa] {
		f.AddVisaPrice = true
	}
	return f
}

// SelfHotelLocked: memilih vt tanpa h mengunci semua sub-form hotel ke mode
// self-hotel (isi nama manual, tanpa pilih inventory).
func SelfHotelLocked(selected []string) bool {
	hasVT, hasH := false, false
	for _, id := range selected {
		if id == OptionVisaTransp {
			hasVT = true
		}
		if id == OptionHotels {
			hasH = true
		}
	}
	return hasVT && !hasH
}

// ClearedCategories mengembalikan kategori yang hilang setelah selection
// berubah; sub-form kategori tersebut direset ke satu entri kosong.
func ClearedCategories(before, after []string) []ServiceCategory {
	prev := ActiveCategories(before)
	next := ActiveCategories(after)
	var out []ServiceCategory
	for _, svc := range []ServiceCategory{ServiceVisa, ServiceTransport, ServiceHotel, ServiceTickets} {
		if prev[svc] && !next[svc] {
			out = append(out, svc)
		}
	}
	return out
}
