package domain

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Kategori harga visa type-1 (mengikuti penamaan tabel umrah_visa_prices).
const (
	VisaCategoryShortStay          = "short stay"
	VisaCategoryLongStay           = "long stay"
	VisaCategoryShortStayWithHotel = "short stay with hotel"
	VisaCategoryLongStayWithHotel  = "long stay with hotel"
)

// UnboundedNights menandai bracket type-1 tanpa batas malam.
const UnboundedNights = 2147483647

// Masa inap di atas ini otomatis dianggap long stay.
const longStayNightsThreshold = 28

// VisaBracketTypeOne adalah tarif visa per (visa_type, category) dengan batas malam.
type VisaBracketTypeOne struct {
	ID            int64
	VisaType      string
	Category      string
	MaximumNights int
	AdultPrice    float64
	ChildPrice    float64
	InfantPrice   float64
}

// VisaBracketTypeTwo adalah tarif visa per rentang jumlah orang (infant tidak dihitung).
type VisaBracketTypeTwo struct {
	ID                 int64
	PersonFrom         int
	PersonTo           int
	AdultPrice         float64
	ChildPrice         float64
	InfantPrice        float64
	AdultSellingPrice  float64
	ChildSellingPrice  float64
	InfantSellingPrice float64
	IsTransport        bool
}

// OnlyVisaBracket adalah tarif only-visa per bandara kedatangan dan durasi trip (hari).
type OnlyVisaBracket struct {
	ID          int64
	AirportName string
	MinDays     int
	MaxDays     int
	Type        string
	VisaOption  string // "only" | "long_term"
	AdultPrice  float64
	ChildPrice  float64
	InfantPrice float64
	Sectors     []TransportSector
}

// FlightLeg merepresentasikan satu leg penerbangan dari tiket yang dipilih.
type FlightLeg struct {
	TripType      string // "departure" | "return"
	DepartureAt   time.Time
	ArrivalAt     time.Time
	DepartureCity string
	ArrivalCity   string
	ArrivalCode   string
}

// VisaQuoteInput adalah seluruh masukan resolver harga visa.
type VisaQuoteInput struct {
	VisaTypeName string
	AddVisaPrice bool
	OnlyVisa     bool
	LongTermVisa bool
	Adults       int
	Children     int
	Infants      int
	Nights       int
	Flight       []FlightLeg
	FullPackage  bool
}

// VisaQuote adalah hasil resolver: harga satuan per kategori umur plus label diagnostik.
type VisaQuote struct {
	AdultPrice        float64
	ChildPrice        float64
	InfantPrice       float64
	IncludesTransport bool
	VisaType          string
}

// Label diagnostik yang dikembalikan resolver saat tidak ada harga.
const (
	LabelVisaNotSelected    = "Visa not selected"
	LabelFlightMissing      = "Flight details missing"
	LabelNoMatchingVisa     = "No matching visa prices found"
	LabelOnlyVisaNoPrices   = "Only Visa (No Prices)"
	LabelNoVisaAvailable    = "No Visa Available"
	LabelNoVisaSelected     = "No Visa Selected"
)

// IsTypeTwoVisa mendeteksi visa type-2 dari nama (case-insensitive).
func IsTypeTwoVisa(name string) bool {
	return strings.Contains(strings.ToLower(name), "type2")
}

func zeroQuote(label string) VisaQuote {
	return VisaQuote{VisaType: label}
}

// ResolveVisaQuote menjalankan tabel keputusan harga visa. Urutan cabang mengikat:
// cabang pertama yang cocok menang, cabang berikutnya tidak pernah dievaluasi.
func ResolveVisaQuote(
	in VisaQuoteInput,
	typeOne []VisaBracketTypeOne,
	typeTwo []VisaBracketTypeTwo,
	onlyVisa []OnlyVisaBracket,
	fullPackageMatch *VisaBracketTypeTwo,
) VisaQuote {
	// 1. Visa tidak dipilih sama sekali.
	if !in.AddVisaPrice && !in.OnlyVisa && !in.FullPackage {
		return zeroQuote(LabelVisaNotSelected)
	}

	// 2. Mode only-visa / long-term visa.
	if in.OnlyVisa {
		if IsTypeTwoVisa(in.VisaTypeName) && len(onlyVisa) > 0 {
			return resolveOnlyVisaTypeTwo(in, onlyVisa)
		}
		return resolveOnlyVisaTypeOne(in, typeOne)
	}

	// 3. Visa + hotel pada visa type-1.
	if in.AddVisaPrice && !IsTypeTwoVisa(in.VisaTypeName) && len(typeOne) > 0 {
		return resolveTypeOneWithHotel(in, typeOne)
	}

	// 4. Full package (vtth) memakai match type-2 yang diturunkan terpisah.
	if in.FullPackage {
		if fullPackageMatch == nil {
			return zeroQuote(LabelNoVisaAvailable)
		}
		return VisaQuote{
			AdultPrice:        sellingOrBase(fullPackageMatch.AdultSellingPrice, fullPackageMatch.AdultPrice),
			ChildPrice:        sellingOrBase(fullPackageMatch.ChildSellingPrice, fullPackageMatch.ChildPrice),
			InfantPrice:       sellingOrBase(fullPackageMatch.InfantSellingPrice, fullPackageMatch.InfantPrice),
			IncludesTransport: fullPackageMatch.IsTransport,
			VisaType:          in.VisaTypeName,
		}
	}

	// 5. Visa type-2 biasa: match rentang jumlah orang (infant tidak dihitung).
	if IsTypeTwoVisa(in.VisaTypeName) && len(typeTwo) > 0 {
		if b := MatchTypeTwoBracket(typeTwo, in.Adults+in.Children); b != nil {
			return VisaQuote{
				AdultPrice:        b.AdultPrice,
				ChildPrice:        b.ChildPrice,
				InfantPrice:       b.InfantPrice,
				IncludesTransport: b.IsTransport,
				VisaType:          in.VisaTypeName,
			}
		}
	}

	// 6. Default: tidak ada harga.
	if strings.TrimSpace(in.VisaTypeName) != "" {
		return zeroQuote(in.VisaTypeName)
	}
	return zeroQuote(LabelNoVisaSelected)
}

func sellingOrBase(selling, base float64) float64 {
	if selling > 0 {
		return selling
	}
	return base
}

// MatchTypeTwoBracket mencari bracket pertama yang memuat total orang,
// setelah diurutkan naik berdasarkan person_from. Hasil deterministik
// terlepas dari urutan slice masukan.
func MatchTypeTwoBracket(brackets []VisaBracketTypeTwo, persons int) *VisaBracketTypeTwo {
	if persons <= 0 || len(brackets) == 0 {
		return nil
	}
	sorted := make([]VisaBracketTypeTwo, len(brackets))
	copy(sorted, brackets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PersonFrom < sorted[j].PersonFrom
	})
	for i := range sorted {
		if persons >= sorted[i].PersonFrom && persons <= sorted[i].PersonTo {
			b := sorted[i]
			return &b
		}
	}
	return nil
}

// MatchFullPackageVisa adalah nilai turunan untuk booking option vtth:
// dihitung ulang setiap kali pax/tabel berubah, murni dari masukannya.
func MatchFullPackageVisa(brackets []VisaBracketTypeTwo, adults, children int) *VisaBracketTypeTwo {
	return MatchTypeTwoBracket(brackets, adults+children)
}

func resolveOnlyVisaTypeTwo(in VisaQuoteInput, brackets []OnlyVisaBracket) VisaQuote {
	dep, ret := splitFlightLegs(in.Flight)
	if dep == nil || ret == nil {
		return zeroQuote(LabelFlightMissing)
	}

	days := TripDurationDays(dep.DepartureAt, ret.ArrivalAt)
	arrival := firstNonEmpty(dep.ArrivalCode, dep.ArrivalCity)

	if b := matchOnlyVisaBracket(brackets, arrival, days); b != nil {
		return onlyVisaQuote(*b)
	}

	// Fallback: abaikan bandara, cukup visa type yang sama; durasi yang cocok diutamakan.
	var sameType []OnlyVisaBracket
	for _, b := range brackets {
		if strings.EqualFold(strings.TrimSpace(b.Type), strings.TrimSpace(in.VisaTypeName)) {
			sameType = append(sameType, b)
		}
	}
	for _, b := range sameType {
		if days >= b.MinDays && days <= b.MaxDays {
			return onlyVisaQuote(b)
		}
	}
	if len(sameType) > 0 {
		return onlyVisaQuote(sameType[0])
	}
	return zeroQuote(LabelNoMatchingVisa)
}

func onlyVisaQuote(b OnlyVisaBracket) VisaQuote {
	return VisaQuote{
		AdultPrice:  b.AdultPrice,
		ChildPrice:  b.ChildPrice,
		InfantPrice: b.InfantPrice,
		VisaType:    firstNonEmpty(b.Type, b.AirportName),
	}
}

// matchOnlyVisaBracket mencocokkan bandara kedatangan + durasi. Saat lebih dari
// satu bracket memuat durasi, rentang tersempit (max_days - min_days) menang.
func matchOnlyVisaBracket(brackets []OnlyVisaBracket, arrival string, days int) *OnlyVisaBracket {
	arrival = strings.TrimSpace(arrival)
	var best *OnlyVisaBracket
	bestSpan := math.MaxInt
	for i := range brackets {
		b := brackets[i]
		if !strings.EqualFold(strings.TrimSpace(b.AirportName), arrival) {
			continue
		}
		if days < b.MinDays || days > b.MaxDays {
			continue
		}
		span := b.MaxDays - b.MinDays
		if span < bestSpan {
			bestSpan = span
			best = &brackets[i]
		}
	}
	return best
}

func resolveOnlyVisaTypeOne(in VisaQuoteInput, typeOne []VisaBracketTypeOne) VisaQuote {
	category := VisaCategoryShortStay
	if in.LongTermVisa {
		category = VisaCategoryLongStay
	}
	if b := findTypeOne(typeOne, in.VisaTypeName, category); b != nil {
		return typeOneQuote(*b)
	}
	if b := anyTypeOne(typeOne, in.VisaTypeName); b != nil {
		return typeOneQuote(*b)
	}
	return zeroQuote(LabelOnlyVisaNoPrices)
}

func resolveTypeOneWithHotel(in VisaQuoteInput, typeOne []VisaBracketTypeOne) VisaQuote {
	category := VisaCategoryShortStayWithHotel
	if in.Nights > longStayNightsThreshold || in.LongTermVisa {
		category = VisaCategoryLongStayWithHotel
	}
	for i := range typeOne {
		b := typeOne[i]
		if !strings.EqualFold(b.VisaType, in.VisaTypeName) || !strings.EqualFold(b.Category, category) {
			continue
		}
		if b.MaximumNights >= in.Nights || b.MaximumNights == UnboundedNights {
			return typeOneQuote(b)
		}
	}
	if b := anyTypeOne(typeOne, in.VisaTypeName); b != nil {
		return typeOneQuote(*b)
	}
	return zeroQuote(in.VisaTypeName)
}

func findTypeOne(brackets []VisaBracketTypeOne, visaType, category string) *VisaBracketTypeOne {
	for i := range brackets {
		if strings.EqualFold(brackets[i].VisaType, visaType) && strings.EqualFold(brackets[i].Category, category) {
			return &brackets[i]
		}
	}
	return nil
}

func anyTypeOne(brackets []VisaBracketTypeOne, visaType string) *VisaBracketTypeOne {
	for i := range brackets {
		if strings.EqualFold(brackets[i].VisaType, visaType) {
			return &brackets[i]
		}
	}
	return nil
}

func typeOneQuote(b VisaBracketTypeOne) VisaQuote {
	return VisaQuote{
		AdultPrice:  b.AdultPrice,
		ChildPrice:  b.ChildPrice,
		InfantPrice: b.InfantPrice,
		VisaType:    b.Category,
	}
}

func splitFlightLegs(legs []FlightLeg) (dep, ret *FlightLeg) {
	for i := range legs {
		switch strings.ToLower(strings.TrimSpace(legs[i].TripType)) {
		case "departure":
			if dep == nil {
				dep = &legs[i]
			}
		case "return":
			if ret == nil {
				ret = &legs[i]
			}
		}
	}
	return dep, ret
}

// TripDurationDays menghitung durasi trip dalam hari penuh (dibulatkan ke atas)
// dari keberangkatan leg departure sampai kedatangan leg return.
func TripDurationDays(depart, arrive time.Time) int {
	if !arrive.After(depart) {
		return 0
	}
	return int(math.Ceil(arrive.Sub(depart).Hours() / 24))
}

// VisaTotal menjumlahkan biaya visa dari harga satuan dan jumlah penumpang.
func VisaTotal(q VisaQuote, p PassengerCounts) float64 {
	return float64(p.Adults)*q.AdultPrice + float64(p.Children)*q.ChildPrice + float64(p.Infants)*q.InfantPrice
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
