package services

import (
	"testing"
	"time"

	"umrah-backend/internal/domain"
	"umrah-backend/internal/domain/models"
)

func referenceFixture() ReferenceData {
	return ReferenceData{
		TypeTwo: []domain.VisaBracketTypeTwo{
			{ID: 1, PersonFrom: 1, PersonTo: 3, AdultPrice: 500, ChildPrice: 300},
			{ID: 2, PersonFrom: 4, PersonTo: 10, AdultPrice: 400, ChildPrice: 200},
		},
		TypeOne: []domain.VisaBracketTypeOne{
			{ID: 1, VisaType: "Umrah Basic", Category: domain.VisaCategoryShortStayWithHotel,
				MaximumNights: domain.UnboundedNights, AdultPrice: 600, ChildPrice: 400},
		},
		Sectors: []domain.TransportSector{
			{ID: 11, Name: "JED-MAK", AdultPrice: 50, ChildPrice: 25, Reference: "Umrah Type2"},
			{ID: 12, Name: "MAK-MED", AdultPrice: 80, ChildPrice: 40, Reference: "Lain"},
		},
		HotelPrices: []domain.HotelPriceEntry{
			{ID: 21, HotelID: 7, RoomType: "Quad",
				StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
				EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local),
				Price:     100},
		},
		Food:      []domain.FoodItem{{ID: 31, Name: "Fullboard", PerPex: 30, MinPex: 4}},
		Ziarat:    []domain.ZiaratItem{{ID: 41, Name: "Makkah Ziarat", Price: 40}},
		RiyalRate: 4000,
	}
}

func fixedPricing(t *testing.T) PricingService {
	t.Helper()
	return PricingService{
		LoadReference: func(orgID int64) (ReferenceData, error) {
			return referenceFixture(), nil
		},
	}
}

func TestQuoteFullScenario(t *testing.T) {
	svc := fixedPricing(t)

	req := QuoteRequest{
		OrganizationID:  1,
		SelectedOptions: []string{domain.OptionVisaTranspHt},
		Passengers:      domain.PassengerCounts{Adults: 2, Children: 1},
		VisaTypeName:    "Umrah Type2",
		HotelStays: []HotelStayInput{
			{HotelID: 7, HotelName: "Al Safwah", RoomType: "Quad", CheckIn: "2025-03-10", Nights: 3},
		},
		TransportLegs: []TransportLegInput{{SectorID: 11}},
		Food:          []CateringInput{{ItemID: 31}},
		Ziarat:        []CateringInput{{ItemID: 41}},
	}

	result, err := svc.Quote(req)
	if err != nil {
		t.Fatalf("Quote error: %v", err)
	}

	// visa type-2: 2x500 + 1x300 = 1300
	if result.VisaTotal != 1300 {
		t.Fatalf("visa total = %v, harus 1300", result.VisaTotal)
	}
	// hotel: 100 x 3 orang bayar x 3 malam = 900
	if result.HotelTotal != 900 {
		t.Fatalf("hotel total = %v, harus 900", result.HotelTotal)
	}
	// transport: 2x50 + 1x25 = 125
	if result.TransportTotal != 125 {
		t.Fatalf("transport total = %v, harus 125", result.TransportTotal)
	}
	// food: 3 orang <= min_pex 4 -> 30x3 = 90
	if result.FoodTotal != 90 {
		t.Fatalf("food total = %v, harus 90", result.FoodTotal)
	}
	// ziarat: 40x3 = 120
	if result.ZiaratTotal != 120 {
		t.Fatalf("ziarat total = %v, harus 120", result.ZiaratTotal)
	}

	want := result.VisaTotal + result.HotelTotal + result.TransportTotal +
		result.TicketTotal + result.FoodTotal + result.ZiaratTotal
	if result.GrandTotal != want {
		t.Fatalf("grand total = %v, harus %v", result.GrandTotal, want)
	}
	if result.LocalTotal != result.GrandTotal*4000 {
		t.Fatalf("konversi kurs salah: %v", result.LocalTotal)
	}
}

func TestQuoteMissingHotelPriceWarns(t *testing.T) {
	svc := fixedPricing(t)

	req := QuoteRequest{
		SelectedOptions: []string{domain.OptionHotels},
		Passengers:      domain.PassengerCounts{Adults: 2},
		HotelStays: []HotelStayInput{
			{HotelID: 7, HotelName: "Al Safwah", CheckIn: "2025-06-01", Nights: 2},
		},
	}

	result, err := svc.Quote(req)
	if err != nil {
		t.Fatalf("Quote error: %v", err)
	}
	if result.HotelTotal != 0 {
		t.Fatalf("tanpa harga aktif hotel total harus 0, dapat %v", result.HotelTotal)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("harus ada satu warning harga hotel: %v", result.Warnings)
	}
}

func TestQuoteInvalidPassengers(t *testing.T) {
	svc := fixedPricing(t)
	_, err := svc.Quote(QuoteRequest{
		Passengers: domain.PassengerCounts{Adults: 1, Infants: 2},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("infants > adults harus validation error, dapat %v", err)
	}
}

func TestQuoteSelfHotelLockZeroesHotel(t *testing.T) {
	svc := fixedPricing(t)

	// vt tanpa h: semua hotel dipaksa self walau payload mengirim hotel ber-id
	req := QuoteRequest{
		SelectedOptions: []string{domain.OptionVisaTransp},
		Passengers:      domain.PassengerCounts{Adults: 2},
		VisaTypeName:    "Umrah Type2",
		HotelStays: []HotelStayInput{
			{HotelID: 7, RoomType: "Quad", CheckIn: "2025-03-10", Nights: 3},
		},
	}
	result, err := svc.Quote(req)
	if err != nil {
		t.Fatalf("Quote error: %v", err)
	}
	if result.HotelTotal != 0 {
		t.Fatalf("self-hotel lock harus membuat hotel 0, dapat %v", result.HotelTotal)
	}
}

func TestValidateForSubmitFlightRequired(t *testing.T) {
	ref := referenceFixture()
	ref.OnlyVisa = []domain.OnlyVisaBracket{{ID: 1, AirportName: "JED", MinDays: 1, MaxDays: 30}}
	svc := PricingService{}

	req := QuoteRequest{
		SelectedOptions: []string{domain.OptionOnlyVisa},
		Passengers:      domain.PassengerCounts{Adults: 1},
		VisaTypeName:    "Umrah Type2",
	}
	if err := svc.ValidateForSubmit(req, ref); !domain.IsValidation(err) {
		t.Fatalf("only-visa type2 tanpa penerbangan harus ditolak, dapat %v", err)
	}

	req.Tickets = []models.PackageTicketDetail{
		{TripType: "departure", DepartureAt: "2025-03-01 08:00:00", ArrivalAt: "2025-03-01 14:00:00", ToCode: "JED"},
		{TripType: "return", DepartureAt: "2025-03-10 08:00:00", ArrivalAt: "2025-03-10 14:00:00"},
	}
	if err := svc.ValidateForSubmit(req, ref); err != nil {
		t.Fatalf("dengan leg pergi+pulang harus lolos: %v", err)
	}
}

func TestValidateForSubmitSeatCapacity(t *testing.T) {
	svc := PricingService{}
	req := QuoteRequest{
		Passengers: domain.PassengerCounts{Adults: 4, Children: 2},
		Tickets: []models.PackageTicketDetail{
			{TripType: "departure", Seats: 5},
		},
	}
	if err := svc.ValidateForSubmit(req, referenceFixture()); !domain.IsValidation(err) {
		t.Fatalf("pax melebihi seat harus ditolak, dapat %v", err)
	}
}

func TestAvailableSectorsFilteredByVisaType(t *testing.T) {
	svc := fixedPricing(t)

	req := QuoteRequest{
		SelectedOptions: []string{domain.OptionVisaTranspHt},
		VisaTypeName:    "Umrah Type2",
	}
	sectors, err := svc.AvailableSectors(req)
	if err != nil {
		t.Fatalf("AvailableSectors error: %v", err)
	}
	if len(sectors) != 1 || sectors[0].ID != 11 {
		t.Fatalf("vth harus menyaring by reference, dapat %+v", sectors)
	}
}

func TestAvailableSectorsOnlyVisaUsesBracketSectors(t *testing.T) {
	ref := referenceFixture()
	ref.OnlyVisa = []domain.OnlyVisaBracket{
		{ID: 1, AirportName: "JED", Type: "Umrah Type2", MinDays: 1, MaxDays: 30,
			Sectors: []domain.TransportSector{{ID: 99, Name: "Bracket Sector"}}},
	}
	svc := PricingService{
		LoadReference: func(orgID int64) (ReferenceData, error) { return ref, nil },
	}

	req := QuoteRequest{
		SelectedOptions: []string{domain.OptionOnlyVisa, domain.OptionVisaTransp},
		VisaTypeName:    "Umrah Type2",
	}
	sectors, err := svc.AvailableSectors(req)
	if err != nil {
		t.Fatalf("AvailableSectors error: %v", err)
	}
	if len(sectors) != 1 || sectors[0].ID != 99 {
		t.Fatalf("only-visa + transport harus memakai sector bawaan bracket, dapat %+v", sectors)
	}
}
