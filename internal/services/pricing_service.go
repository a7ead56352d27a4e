package services

import (
	"fmt"
	"strings"

	"umrah-backend/internal/domain"
	"umrah-backend/internal/domain/models"
	"umrah-backend/internal/repositories"
	"umrah-backend/internal/utils"
)

// ReferenceData adalah seluruh tabel referensi yang dibutuhkan satu quote,
// dimuat sekali per konteks organisasi.
type ReferenceData struct {
	TypeOne     []domain.VisaBracketTypeOne
	TypeTwo     []domain.VisaBracketTypeTwo
	OnlyVisa    []domain.OnlyVisaBracket
	Sectors     []domain.TransportSector
	HotelPrices []domain.HotelPriceEntry
	Food        []domain.FoodItem
	Ziarat      []domain.ZiaratItem
	RiyalRate   float64
}

// HotelStayInput adalah satu sub-form hotel dari kalkulator.
type HotelStayInput struct {
	HotelID   int64  `json:"hotel"`
	HotelName string `json:"hotel_name"`
	RoomType  string `json:"room_type"`
	CheckIn   string `json:"check_in"`
	Nights    int    `json:"nights"`
	Self      bool   `json:"is_self"`
}

// TransportLegInput adalah satu sub-form transport dari kalkulator.
type TransportLegInput struct {
	SectorID int64 `json:"sector"`
	Self     bool  `json:"is_self"`
}

type CateringInput struct {
	ItemID int64 `json:"item"`
	Self   bool  `json:"is_self"`
}

// QuoteRequest adalah state kalkulator yang dikirim client untuk dihitung.
type QuoteRequest struct {
	OrganizationID  int64                        `json:"organization"`
	SelectedOptions []string                     `json:"booking_options"`
	Passengers      domain.PassengerCounts       `json:"passengers"`
	VisaTypeName    string                       `json:"visa_type"`
	Nights          int                          `json:"nights"`
	HotelStays      []HotelStayInput             `json:"hotel_details"`
	TransportLegs   []TransportLegInput          `json:"transport_details"`
	Tickets         []models.PackageTicketDetail `json:"ticket_details"`
	Food            []CateringInput              `json:"food_details"`
	Ziarat          []CateringInput              `json:"ziarat_details"`
}

// QuoteResult adalah rincian biaya per kategori plus total.
type QuoteResult struct {
	Visa           domain.VisaQuote `json:"visa"`
	VisaTotal      float64          `json:"visa_total"`
	HotelTotal     float64          `json:"hotel_total"`
	TransportTotal float64          `json:"transport_total"`
	TicketTotal    float64          `json:"ticket_total"`
	FoodTotal      float64          `json:"food_total"`
	ZiaratTotal    float64          `json:"ziarat_total"`
	GrandTotal     float64          `json:"grand_total"`
	LocalTotal     float64          `json:"local_total"`
	FamilyGroups   []string         `json:"family_groups,omitempty"`
	Warnings       []string         `json:"warnings,omitempty"`
}

// PricingService merangkai resolver visa dan perhitungan biaya per kategori
// menjadi satu quote. LoadReference bisa di-inject untuk test tanpa DB.
type PricingService struct {
	VisaRepo      repositories.VisaRepository
	TransportRepo repositories.TransportRepository
	HotelRepo     repositories.HotelRepository
	ReferenceRepo repositories.ReferenceRepository
	RequestID     string
	LoadReference func(orgID int64) (ReferenceData, error)
}

func (s PricingService) loadReference(orgID int64) (ReferenceData, error) {
	if s.LoadReference != nil {
		return s.LoadReference(orgID)
	}

	var (
		ref ReferenceData
		err error
	)
	if ref.TypeOne, err = s.VisaRepo.ListTypeOneBrackets(orgID); err != nil {
		return ref, err
	}
	if ref.TypeTwo, err = s.VisaRepo.ListTypeTwoBrackets(orgID); err != nil {
		return ref, err
	}
	if ref.OnlyVisa, err = s.VisaRepo.ListOnlyVisaBrackets(orgID); err != nil {
		return ref, err
	}
	if ref.Sectors, err = s.TransportRepo.ListSectors(orgID); err != nil {
		return ref, err
	}
	if ref.HotelPrices, err = s.HotelRepo.PriceEntries(orgID); err != nil {
		return ref, err
	}
	if ref.Food, err = s.ReferenceRepo.ListFoodPrices(orgID); err != nil {
		return ref, err
	}
	if ref.Ziarat, err = s.ReferenceRepo.ListZiaratPrices(orgID); err != nil {
		return ref, err
	}
	rate, err := s.ReferenceRepo.GetRiyalRate(orgID)
	if err != nil {
		return ref, err
	}
	ref.RiyalRate = rate.Rate
	return ref, nil
}

// Quote menghitung ulang seluruh kategori biaya dari state kalkulator.
// Perhitungan sinkron: setiap perubahan input client cukup memanggil ulang
// endpoint ini, tidak ada state antar panggilan.
func (s PricingService) Quote(req QuoteRequest) (QuoteResult, error) {
	utils.LogEvent(s.RequestID, "pricing", "quote",
		fmt.Sprintf("org=%d pax=%d options=%s", req.OrganizationID, req.Passengers.Total(), strings.Join(req.SelectedOptions, ",")))

	if !req.Passengers.Valid() {
		return QuoteResult{}, domain.ValidationError{Field: "passengers", Msg: "jumlah infant tidak boleh melebihi jumlah dewasa"}
	}

	ref, err := s.loadReference(req.OrganizationID)
	if err != nil {
		return QuoteResult{}, domain.InternalError{Msg: "gagal memuat data referensi", Err: err}
	}
	return s.quoteWithReference(req, ref)
}

func (s PricingService) quoteWithReference(req QuoteRequest, ref ReferenceData) (QuoteResult, error) {
	flags := domain.DeriveFlags(req.SelectedOptions)
	p := req.Passengers

	var fullMatch *domain.VisaBracketTypeTwo
	if flags.FullPackage {
		fullMatch = domain.MatchFullPackageVisa(ref.TypeTwo, p.Adults, p.Children)
	}

	nights := req.Nights
	if nights == 0 {
		for _, stay := range req.HotelStays {
			nights += stay.Nights
		}
	}

	visaIn := domain.VisaQuoteInput{
		VisaTypeName: req.VisaTypeName,
		AddVisaPrice: flags.AddVisaPrice,
		OnlyVisa:     flags.OnlyVisa || flags.LongTermVisa,
		LongTermVisa: flags.LongTermVisa,
		Adults:       p.Adults,
		Children:     p.Children,
		Infants:      p.Infants,
		Nights:       nights,
		Flight:       flightLegsFromTickets(req.Tickets),
		FullPackage:  flags.FullPackage,
	}
	visa := domain.ResolveVisaQuote(visaIn, ref.TypeOne, ref.TypeTwo, ref.OnlyVisa, fullMatch)

	result := QuoteResult{Visa: visa}
	result.VisaTotal = domain.VisaTotal(visa, p)

	selfLocked := domain.SelfHotelLocked(req.SelectedOptions)
	for _, in := range req.HotelStays {
		stay := hotelStayFromInput(in, selfLocked)
		cost, ok := domain.HotelStayCost(stay, ref.HotelPrices, p)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("harga hotel belum tersedia untuk %s (%s)", utils.FirstNonEmpty(in.HotelName, "hotel"), in.CheckIn))
			continue
		}
		result.HotelTotal += cost
	}

	legs := make([]domain.TransportLeg, 0, len(req.TransportLegs))
	for _, in := range req.TransportLegs {
		leg := domain.TransportLeg{Self: in.Self}
		if !in.Self {
			leg.Sector = findSector(ref.Sectors, in.SectorID)
		}
		legs = append(legs, leg)
	}
	result.TransportTotal = domain.TransportCost(legs, p, visa.IncludesTransport)

	for _, t := range req.Tickets {
		result.TicketTotal += t.Price
	}

	foodItems, selfFood := selectedFood(ref.Food, req.Food)
	result.FoodTotal = domain.FoodCost(foodItems, p, selfFood)

	ziaratItems, selfZiarat := selectedZiarat(ref.Ziarat, req.Ziarat)
	result.ZiaratTotal = domain.ZiaratCost(ziaratItems, p, selfZiarat)

	result.GrandTotal = result.VisaTotal + result.HotelTotal + result.TransportTotal +
		result.TicketTotal + result.FoodTotal + result.ZiaratTotal
	result.LocalTotal = utils.ConvertFromRiyal(result.GrandTotal, ref.RiyalRate)

	for i, size := range domain.SplitFamilies(p.Total()) {
		result.FamilyGroups = append(result.FamilyGroups, fmt.Sprintf("Family %d (%d pax)", i+1, size))
	}

	return result, nil
}

// AvailableSectors mengembalikan pilihan sector sesuai aturan filtering:
// vtth/vth menyaring berdasarkan reference visa type; only-visa/long-term
// plus transport dibatasi ke sector bawaan bracket only-visa yang cocok.
func (s PricingService) AvailableSectors(req QuoteRequest) ([]domain.TransportSector, error) {
	ref, err := s.loadReference(req.OrganizationID)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal memuat data referensi", Err: err}
	}

	flags := domain.DeriveFlags(req.SelectedOptions)
	categories := domain.ActiveCategories(req.SelectedOptions)

	if (flags.OnlyVisa || flags.LongTermVisa) && categories[domain.ServiceTransport] {
		legs := flightLegsFromTickets(req.Tickets)
		if b := matchOnlyVisaForSectors(ref.OnlyVisa, req.VisaTypeName, legs); b != nil {
			return domain.SectorsForOnlyVisa(b), nil
		}
		return []domain.TransportSector{}, nil
	}

	for _, id := range req.SelectedOptions {
		if id == domain.OptionFullPackage || id == domain.OptionVisaTranspHt {
			return domain.FilterSectorsByReference(ref.Sectors, req.VisaTypeName), nil
		}
	}
	return ref.Sectors, nil
}

func matchOnlyVisaForSectors(brackets []domain.OnlyVisaBracket, visaTypeName string, legs []domain.FlightLeg) *domain.OnlyVisaBracket {
	var dep, ret *domain.FlightLeg
	for i := range legs {
		switch strings.ToLower(legs[i].TripType) {
		case "departure":
			dep = &legs[i]
		case "return":
			ret = &legs[i]
		}
	}
	for i := range brackets {
		b := brackets[i]
		if !strings.EqualFold(strings.TrimSpace(b.Type), strings.TrimSpace(visaTypeName)) {
			continue
		}
		if dep != nil && ret != nil {
			days := domain.TripDurationDays(dep.DepartureAt, ret.ArrivalAt)
			if days >= b.MinDays && days <= b.MaxDays {
				return &brackets[i]
			}
			continue
		}
		return &brackets[i]
	}
	return nil
}

func hotelStayFromInput(in HotelStayInput, selfLocked bool) domain.HotelStay {
	stay := domain.HotelStay{
		HotelID:   in.HotelID,
		HotelName: in.HotelName,
		RoomType:  in.RoomType,
		Nights:    in.Nights,
		Self:      in.Self || selfLocked,
	}
	if t, err := utils.ParseDate(in.CheckIn); err == nil {
		stay.CheckIn = t
	}
	return stay
}

func flightLegsFromTickets(tickets []models.PackageTicketDetail) []domain.FlightLeg {
	legs := make([]domain.FlightLeg, 0, len(tickets))
	for _, t := range tickets {
		leg := domain.FlightLeg{
			TripType:      t.TripType,
			DepartureCity: t.FromCity,
			ArrivalCity:   t.ToCity,
			ArrivalCode:   t.ToCode,
		}
		if ts, err := utils.ParseDateTime(t.DepartureAt); err == nil {
			leg.DepartureAt = ts
		}
		if ts, err := utils.ParseDateTime(t.ArrivalAt); err == nil {
			leg.ArrivalAt = ts
		}
		legs = append(legs, leg)
	}
	return legs
}

func findSector(sectors []domain.TransportSector, id int64) *domain.TransportSector {
	for i := range sectors {
		if sectors[i].ID == id {
			return &sectors[i]
		}
	}
	return nil
}

func selectedFood(catalog []domain.FoodItem, inputs []CateringInput) ([]domain.FoodItem, bool) {
	selfAll := len(inputs) > 0
	items := []domain.FoodItem{}
	for _, in := range inputs {
		if !in.Self {
			selfAll = false
		}
		for _, item := range catalog {
			if item.ID == in.ItemID && !in.Self {
				items = append(items, item)
			}
		}
	}
	return items, selfAll
}

func selectedZiarat(catalog []domain.ZiaratItem, inputs []CateringInput) ([]domain.ZiaratItem, bool) {
	selfAll := len(inputs) > 0
	items := []domain.ZiaratItem{}
	for _, in := range inputs {
		if !in.Self {
			selfAll = false
		}
		for _, item := range catalog {
			if item.ID == in.ItemID && !in.Self {
				items = append(items, item)
			}
		}
	}
	return items, selfAll
}

// ValidateForSubmit memblokir submit sebelum ada panggilan tulis apa pun.
func (s PricingService) ValidateForSubmit(req QuoteRequest, ref ReferenceData) error {
	p := req.Passengers
	if !p.Valid() {
		return domain.ValidationError{Field: "infants", Msg: "jumlah infant tidak boleh melebihi jumlah dewasa"}
	}

	flags := domain.DeriveFlags(req.SelectedOptions)
	if (flags.OnlyVisa || flags.LongTermVisa) && domain.IsTypeTwoVisa(req.VisaTypeName) && len(ref.OnlyVisa) > 0 {
		dep, ret := false, false
		for _, t := range req.Tickets {
			switch strings.ToLower(strings.TrimSpace(t.TripType)) {
			case "departure":
				dep = true
			case "return":
				ret = true
			}
		}
		if !dep || !ret {
			return domain.ValidationError{Field: "ticket_details", Msg: "visa membutuhkan detail penerbangan pergi dan pulang"}
		}
	}

	for _, t := range req.Tickets {
		if t.Seats > 0 && p.Total() > t.Seats {
			return domain.ValidationError{Field: "ticket_details", Msg: "jumlah penumpang melebihi kapasitas seat penerbangan"}
		}
	}

	selfLocked := domain.SelfHotelLocked(req.SelectedOptions)
	for _, in := range req.HotelStays {
		stay := hotelStayFromInput(in, selfLocked)
		if _, ok := domain.HotelStayCost(stay, ref.HotelPrices, p); !ok {
			return domain.ValidationError{
				Field: "hotel_details",
				Msg:   fmt.Sprintf("harga hotel belum tersedia untuk %s", utils.FirstNonEmpty(in.HotelName, "hotel terpilih")),
			}
		}
	}
	return nil
}
