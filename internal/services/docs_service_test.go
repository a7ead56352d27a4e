package services

import (
	"testing"

	"umrah-backend/internal/domain/models"
)

func TestDocsServiceGenerateQuotation(t *testing.T) {
	loader := func(id int64) (models.CustomPackage, error) {
		return models.CustomPackage{
			ID:            id,
			QueryNumber:   "Q-1001",
			CustomerName:  "Ahmad",
			CustomerPhone: "0812",
			Adults:        2,
			Children:      1,
			VisaTypeName:  "Umrah Type2",
			BookingOptions: "vth",
			VisaTotal:     1300,
			HotelTotal:    900,
			GrandTotal:    2200,
			HotelDetails: []models.PackageHotelDetail{
				{HotelName: "Al Safwah", Nights: 3, Cost: 900},
			},
			TicketDetails: []models.PackageTicketDetail{
				{TripType: "departure", FromCity: "Jakarta", ToCity: "Jeddah", Price: 0},
			},
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateQuotation(5)
	if err != nil {
		t.Fatalf("GenerateQuotation returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateQuotation returned empty data")
	}
	if filename != "QUOTATION_5_Q-1001.pdf" {
		t.Fatalf("nama file salah: %q", filename)
	}
}
