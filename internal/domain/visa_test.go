package domain

import (
	"testing"
	"time"
)

func typeTwoFixture() []VisaBracketTypeTwo {
	return []VisaBracketTypeTwo{
		{ID: 2, PersonFrom: 4, PersonTo: 10, AdultPrice: 400, ChildPrice: 200, InfantPrice: 0},
		{ID: 1, PersonFrom: 1, PersonTo: 3, AdultPrice: 500, ChildPrice: 300, InfantPrice: 0, IsTransport: true},
	}
}

func TestResolveVisaQuoteTypeTwo(t *testing.T) {
	in := VisaQuoteInput{
		VisaTypeName: "Umrah Type2",
		AddVisaPrice: true,
		Adults:       2,
		Children:     1,
		Infants:      1,
	}
	q := ResolveVisaQuote(in, nil, typeTwoFixture(), nil, nil)

	if q.AdultPrice != 500 || q.ChildPrice != 300 {
		t.Fatalf("harga bracket salah: %+v", q)
	}
	if !q.IncludesTransport {
		t.Fatalf("is_transport bracket harus terbawa ke quote")
	}

	// 2x500 + 1x300 + 1x0 = 1300; infant tidak dihitung saat matching
	total := VisaTotal(q, PassengerCounts{Adults: 2, Children: 1, Infants: 1})
	if total != 1300 {
		t.Fatalf("total visa = %v, harus 1300", total)
	}
}

func TestMatchTypeTwoBracketOrderIndependence(t *testing.T) {
	a := typeTwoFixture()
	b := []VisaBracketTypeTwo{a[1], a[0]}

	ba := MatchTypeTwoBracket(a, 3)
	bb := MatchTypeTwoBracket(b, 3)
	if ba == nil || bb == nil || ba.ID != bb.ID {
		t.Fatalf("hasil match tergantung urutan slice: %+v vs %+v", ba, bb)
	}
	if ba.ID != 1 {
		t.Fatalf("3 orang harus jatuh ke bracket 1-3, dapat id=%d", ba.ID)
	}
}

func TestResolveVisaQuoteNotSelected(t *testing.T) {
	q := ResolveVisaQuote(VisaQuoteInput{Adults: 2}, nil, typeTwoFixture(), nil, nil)
	if q.VisaType != LabelVisaNotSelected {
		t.Fatalf("label = %q, harus %q", q.VisaType, LabelVisaNotSelected)
	}
	if q.AdultPrice != 0 || q.ChildPrice != 0 || q.InfantPrice != 0 {
		t.Fatalf("quote tanpa visa harus nol: %+v", q)
	}
}

func TestOnlyVisaTypeTwoFlightMissing(t *testing.T) {
	in := VisaQuoteInput{
		VisaTypeName: "Umrah Type2",
		OnlyVisa:     true,
		Flight: []FlightLeg{
			{TripType: "departure", DepartureAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)},
		},
	}
	brackets := []OnlyVisaBracket{{ID: 1, AirportName: "JED", MinDays: 1, MaxDays: 30}}
	q := ResolveVisaQuote(in, nil, nil, brackets, nil)
	if q.VisaType != LabelFlightMissing {
		t.Fatalf("tanpa leg return harus %q, dapat %q", LabelFlightMissing, q.VisaType)
	}
}

func TestOnlyVisaNarrowestSpanWins(t *testing.T) {
	dep := FlightLeg{TripType: "departure", ArrivalCode: "JED",
		DepartureAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)}
	ret := FlightLeg{TripType: "return",
		ArrivalAt: time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)}

	brackets := []OnlyVisaBracket{
		{ID: 1, AirportName: "JED", MinDays: 1, MaxDays: 10, AdultPrice: 900},
		{ID: 2, AirportName: "JED", MinDays: 3, MaxDays: 5, AdultPrice: 700},
	}
	in := VisaQuoteInput{VisaTypeName: "Umrah Type2", OnlyVisa: true, Flight: []FlightLeg{dep, ret}}

	q := ResolveVisaQuote(in, nil, nil, brackets, nil)
	if q.AdultPrice != 700 {
		t.Fatalf("rentang tersempit harus menang, dapat harga %v", q.AdultPrice)
	}
}

func TestOnlyVisaFallbackSameType(t *testing.T) {
	dep := FlightLeg{TripType: "departure", ArrivalCode: "MED",
		DepartureAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)}
	ret := FlightLeg{TripType: "return",
		ArrivalAt: time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC)}

	brackets := []OnlyVisaBracket{
		{ID: 1, AirportName: "JED", Type: "Umrah Type2", MinDays: 1, MaxDays: 10, AdultPrice: 900},
		{ID: 2, AirportName: "JED", Type: "Umrah Type2", MinDays: 11, MaxDays: 30, AdultPrice: 1100},
	}
	in := VisaQuoteInput{VisaTypeName: "Umrah Type2", OnlyVisa: true, Flight: []FlightLeg{dep, ret}}

	q := ResolveVisaQuote(in, nil, nil, brackets, nil)
	if q.AdultPrice != 1100 {
		t.Fatalf("fallback harus pilih durasi cocok pada type sama, dapat %v", q.AdultPrice)
	}
}

func TestOnlyVisaNoMatchingLabel(t *testing.T) {
	dep := FlightLeg{TripType: "departure", ArrivalCode: "RUH",
		DepartureAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)}
	ret := FlightLeg{TripType: "return",
		ArrivalAt: time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)}
	brackets := []OnlyVisaBracket{
		{ID: 1, AirportName: "JED", Type: "Lain", MinDays: 1, MaxDays: 10},
	}
	in := VisaQuoteInput{VisaTypeName: "Umrah Type2", OnlyVisa: true, Flight: []FlightLeg{dep, ret}}

	q := ResolveVisaQuote(in, nil, nil, brackets, nil)
	if q.VisaType != LabelNoMatchingVisa {
		t.Fatalf("label = %q, harus %q", q.VisaType, LabelNoMatchingVisa)
	}
}

func TestFullPackageWithoutMatch(t *testing.T) {
	in := VisaQuoteInput{VisaTypeName: "Umrah Type2", FullPackage: true, Adults: 2}
	q := ResolveVisaQuote(in, nil, typeTwoFixture(), nil, nil)
	if q.VisaType != LabelNoVisaAvailable {
		t.Fatalf("full package tanpa match harus %q, dapat %q", LabelNoVisaAvailable, q.VisaType)
	}
}

func TestFullPackageSellingPricePreferred(t *testing.T) {
	match := &VisaBracketTypeTwo{
		AdultPrice: 400, AdultSellingPrice: 450,
		ChildPrice: 200, ChildSellingPrice: 0,
		IsTransport: true,
	}
	in := VisaQuoteInput{VisaTypeName: "Umrah Type2", FullPackage: true, Adults: 2}
	q := ResolveVisaQuote(in, nil, nil, nil, match)

	if q.AdultPrice != 450 {
		t.Fatalf("selling price harus diutamakan, dapat %v", q.AdultPrice)
	}
	if q.ChildPrice != 200 {
		t.Fatalf("selling price 0 harus jatuh ke harga dasar, dapat %v", q.ChildPrice)
	}
	if !q.IncludesTransport {
		t.Fatalf("includes_transport harus terbawa")
	}
}

func typeOneFixture() []VisaBracketTypeOne {
	return []VisaBracketTypeOne{
		{ID: 1, VisaType: "Umrah Basic", Category: VisaCategoryShortStayWithHotel, MaximumNights: 28, AdultPrice: 600, ChildPrice: 400},
		{ID: 2, VisaType: "Umrah Basic", Category: VisaCategoryLongStayWithHotel, MaximumNights: UnboundedNights, AdultPrice: 800, ChildPrice: 500},
		{ID: 3, VisaType: "Umrah Basic", Category: VisaCategoryShortStay, MaximumNights: 28, AdultPrice: 300},
		{ID: 4, VisaType: "Umrah Basic", Category: VisaCategoryLongStay, MaximumNights: UnboundedNights, AdultPrice: 700},
	}
}

func TestTypeOneWithHotelCategorySelection(t *testing.T) {
	short := ResolveVisaQuote(VisaQuoteInput{
		VisaTypeName: "Umrah Basic", AddVisaPrice: true, Nights: 10, Adults: 1,
	}, typeOneFixture(), nil, nil, nil)
	if short.AdultPrice != 600 {
		t.Fatalf("10 malam harus short stay with hotel (600), dapat %v", short.AdultPrice)
	}

	long := ResolveVisaQuote(VisaQuoteInput{
		VisaTypeName: "Umrah Basic", AddVisaPrice: true, Nights: 29, Adults: 1,
	}, typeOneFixture(), nil, nil, nil)
	if long.AdultPrice != 800 {
		t.Fatalf("29 malam harus long stay with hotel (800), dapat %v", long.AdultPrice)
	}
}

func TestOnlyVisaTypeOneLongTerm(t *testing.T) {
	q := ResolveVisaQuote(VisaQuoteInput{
		VisaTypeName: "Umrah Basic", OnlyVisa: true, LongTermVisa: true, Adults: 1,
	}, typeOneFixture(), nil, nil, nil)
	if q.AdultPrice != 700 {
		t.Fatalf("long term harus kategori long stay (700), dapat %v", q.AdultPrice)
	}
}

func TestTripDurationDaysRoundsUp(t *testing.T) {
	depart := time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC)
	arrive := time.Date(2025, 3, 4, 2, 0, 0, 0, time.UTC) // 52 jam -> 3 hari
	if days := TripDurationDays(depart, arrive); days != 3 {
		t.Fatalf("durasi = %d, harus dibulatkan ke atas jadi 3", days)
	}
	if days := TripDurationDays(arrive, depart); days != 0 {
		t.Fatalf("kedatangan sebelum keberangkatan harus 0, dapat %d", days)
	}
}

func TestIsTypeTwoVisa(t *testing.T) {
	if !IsTypeTwoVisa("Umrah TYPE2 Premium") {
		t.Fatalf("deteksi type2 harus case-insensitive")
	}
	if IsTypeTwoVisa("Umrah Basic") {
		t.Fatalf("nama tanpa type2 tidak boleh terdeteksi")
	}
}
