package domain

import (
	"testing"
	"time"
)

func priceEntriesFixture() []HotelPriceEntry {
	return []HotelPriceEntry{
		{ID: 1, HotelID: 7, RoomType: "Quad",
			StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			Price:     100},
	}
}

func TestHotelStayCost(t *testing.T) {
	pax := PassengerCounts{Adults: 1, Children: 1, Infants: 1}
	stay := HotelStay{HotelID: 7, RoomType: "Quad",
		CheckIn: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Nights: 3}

	cost, ok := HotelStayCost(stay, priceEntriesFixture(), pax)
	if !ok {
		t.Fatalf("harga aktif ada, ok harus true")
	}
	// 100 x (1 dewasa + 1 anak) x 3 malam; infant tidak dihitung
	if cost != 600 {
		t.Fatalf("cost = %v, harus 600", cost)
	}
}

func TestHotelStayCostSelfAndMissingPrice(t *testing.T) {
	pax := PassengerCounts{Adults: 2}

	if cost, ok := HotelStayCost(HotelStay{Self: true, Nights: 5}, nil, pax); !ok || cost != 0 {
		t.Fatalf("self-hotel harus (0,true), dapat (%v,%v)", cost, ok)
	}

	stay := HotelStay{HotelID: 7, CheckIn: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Nights: 2}
	if _, ok := HotelStayCost(stay, priceEntriesFixture(), pax); ok {
		t.Fatalf("check-in di luar rentang harga harus ok=false")
	}
}

func TestActiveHotelPriceInclusiveBounds(t *testing.T) {
	entries := priceEntriesFixture()
	for _, day := range []int{1, 31} {
		date := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
		if ActiveHotelPrice(entries, 7, "quad", date) == nil {
			t.Fatalf("tanggal batas %d Maret harus termasuk rentang", day)
		}
	}
}

func TestTransportCostZeroedByVisa(t *testing.T) {
	pax := PassengerCounts{Adults: 2, Children: 1}
	sector := &TransportSector{AdultPrice: 50, ChildPrice: 25, InfantPrice: 0}
	legs := []TransportLeg{{Sector: sector}, {Self: true}}

	if cost := TransportCost(legs, pax, false); cost != 125 {
		t.Fatalf("cost = %v, harus 125", cost)
	}
	if cost := TransportCost(legs, pax, true); cost != 0 {
		t.Fatalf("includes_transport harus memaksa 0, dapat %v", cost)
	}
}

func TestFoodCostGate(t *testing.T) {
	items := []FoodItem{{PerPex: 30, MinPex: 4}}

	// 3 orang <= min_pex 4: kena biaya
	if cost := FoodCost(items, PassengerCounts{Adults: 2, Children: 1}, false); cost != 90 {
		t.Fatalf("cost = %v, harus 90", cost)
	}
	// 5 orang > min_pex 4: gate menolak
	if cost := FoodCost(items, PassengerCounts{Adults: 3, Children: 2}, false); cost != 0 {
		t.Fatalf("di atas min_pex harus 0, dapat %v", cost)
	}
	if cost := FoodCost(items, PassengerCounts{Adults: 2}, true); cost != 0 {
		t.Fatalf("self food harus 0, dapat %v", cost)
	}
}

func TestZiaratCostNoGate(t *testing.T) {
	items := []ZiaratItem{{Price: 40}, {Price: 10}}
	if cost := ZiaratCost(items, PassengerCounts{Adults: 3, Children: 2, Infants: 1}, false); cost != 250 {
		t.Fatalf("cost = %v, harus 250 (infant tidak dihitung)", cost)
	}
}

func TestSplitFamiliesGreedy(t *testing.T) {
	cases := []struct {
		total int
		want  []int
	}{
		{0, []int{}},
		{3, []int{3}},
		{7, []int{5, 2}},
		{9, []int{5, 4}},
		{11, []int{5, 5, 1}},
	}
	for _, tc := range cases {
		got := SplitFamilies(tc.total)
		if len(got) != len(tc.want) {
			t.Fatalf("total %d: %v, harus %v", tc.total, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("total %d: %v, harus %v", tc.total, got, tc.want)
			}
		}
	}
}

func TestFilterSectorsByReference(t *testing.T) {
	sectors := []TransportSector{
		{ID: 1, Reference: "Umrah Type2"},
		{ID: 2, Reference: "Lain"},
		{ID: 3, Reference: " umrah type2 "},
	}
	got := FilterSectorsByReference(sectors, "Umrah Type2")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("filter reference salah: %+v", got)
	}
}
