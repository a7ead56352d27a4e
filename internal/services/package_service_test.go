package services

import (
	"testing"

	"umrah-backend/internal/domain"
	"umrah-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func submitFixture() SubmitRequest {
	req := SubmitRequest{
		QueryNumber:   "Q-1001",
		CustomerName:  "Ahmad",
		CustomerPhone: "0812",
	}
	req.OrganizationID = 1
	req.SelectedOptions = []string{domain.OptionVisaTranspHt}
	req.Passengers = domain.PassengerCounts{Adults: 2, Children: 1}
	req.VisaTypeName = "Umrah Type2"
	req.HotelStays = []HotelStayInput{
		{HotelID: 7, HotelName: "Al Safwah", RoomType: "Quad", CheckIn: "2025-03-10", Nights: 3},
	}
	req.TransportLegs = []TransportLegInput{{SectorID: 11}}
	req.Food = []CateringInput{{ItemID: 31}}
	req.Ziarat = []CateringInput{{ItemID: 41}}
	return req
}

func TestComposePackageDetailTotalsConsistent(t *testing.T) {
	ref := referenceFixture()
	req := submitFixture()

	svc := PricingService{}
	quote, err := svc.quoteWithReference(req.QuoteRequest, ref)
	if err != nil {
		t.Fatalf("quote error: %v", err)
	}

	p := ComposePackage(req, quote, ref)

	var hotelSum float64
	for _, d := range p.HotelDetails {
		hotelSum += d.Cost
	}
	if hotelSum != p.HotelTotal {
		t.Fatalf("jumlah detail hotel %v != total %v", hotelSum, p.HotelTotal)
	}

	var transportSum float64
	for _, d := range p.TransportDetails {
		transportSum += d.Cost
	}
	if transportSum != p.TransportTotal {
		t.Fatalf("jumlah detail transport %v != total %v", transportSum, p.TransportTotal)
	}

	var foodSum float64
	for _, d := range p.FoodDetails {
		foodSum += d.Cost
	}
	if foodSum != p.FoodTotal {
		t.Fatalf("jumlah detail katering %v != total %v", foodSum, p.FoodTotal)
	}

	if p.BookingOptions != domain.OptionVisaTranspHt {
		t.Fatalf("booking options tersimpan salah: %q", p.BookingOptions)
	}
	if p.VisaAdultPrice != quote.Visa.AdultPrice {
		t.Fatalf("harga satuan visa tidak terbawa")
	}
}

// Payload yang di-load ulang lalu disubmit tanpa perubahan harus menghasilkan
// record yang ekuivalen.
func TestPackageRoundTrip(t *testing.T) {
	ref := referenceFixture()
	req := submitFixture()
	svc := PricingService{}

	quote1, err := svc.quoteWithReference(req.QuoteRequest, ref)
	if err != nil {
		t.Fatalf("quote error: %v", err)
	}
	p1 := ComposePackage(req, quote1, ref)

	rebuilt := BuildQuoteRequest(p1)
	quote2, err := svc.quoteWithReference(rebuilt.QuoteRequest, ref)
	if err != nil {
		t.Fatalf("quote ulang error: %v", err)
	}
	p2 := ComposePackage(rebuilt, quote2, ref)

	if p1.GrandTotal != p2.GrandTotal {
		t.Fatalf("grand total berubah setelah round trip: %v vs %v", p1.GrandTotal, p2.GrandTotal)
	}
	if p1.VisaTotal != p2.VisaTotal || p1.HotelTotal != p2.HotelTotal ||
		p1.TransportTotal != p2.TransportTotal || p1.FoodTotal != p2.FoodTotal ||
		p1.ZiaratTotal != p2.ZiaratTotal {
		t.Fatalf("total kategori berubah: %+v vs %+v", p1, p2)
	}
	if p1.BookingOptions != p2.BookingOptions || p1.VisaTypeName != p2.VisaTypeName {
		t.Fatalf("field paket berubah setelah round trip")
	}
	if len(p1.HotelDetails) != len(p2.HotelDetails) {
		t.Fatalf("jumlah detail hotel berubah")
	}
}

func TestSubmitCreateThenUpdateByQueryNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	req := submitFixture()
	req.HotelStays = nil
	req.TransportLegs = nil
	req.Food = nil
	req.Ziarat = nil

	svc := PackageService{
		Repo: repositories.PackageRepository{DB: db},
		Pricing: PricingService{
			LoadReference: func(orgID int64) (ReferenceData, error) {
				return referenceFixture(), nil
			},
		},
	}

	// submit pertama: query number belum ada -> create
	mock.ExpectQuery("SELECT id FROM custom_umrah_packages").
		WithArgs(int64(1), "Q-1001").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO custom_umrah_packages").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	result, err := svc.Submit(req)
	if err != nil {
		t.Fatalf("submit pertama error: %v", err)
	}
	if !result.Created || result.Package.ID != 5 {
		t.Fatalf("submit pertama harus create id=5: %+v", result)
	}

	// submit kedua: query number sama -> update record 5
	mock.ExpectQuery("SELECT id FROM custom_umrah_packages").
		WithArgs(int64(1), "Q-1001").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE custom_umrah_packages").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM custom_umrah_package_hotel_details").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM custom_umrah_package_transport_details").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM custom_umrah_package_ticket_details").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM custom_umrah_package_food_details").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM custom_umrah_package_ziarat_details").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	result, err = svc.Submit(req)
	if err != nil {
		t.Fatalf("submit kedua error: %v", err)
	}
	if result.Created || result.Package.ID != 5 {
		t.Fatalf("submit kedua harus update id=5: %+v", result)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
