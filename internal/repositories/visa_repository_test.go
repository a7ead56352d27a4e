package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListTypeTwoBracketsWithoutSellingColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// skema lama tanpa kolom selling price
	mock.ExpectQuery("information_schema\\.columns").
		WithArgs("umrah_visa_type_two", "adult_selling_price").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

	mock.ExpectQuery("FROM umrah_visa_type_two").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "person_from", "person_to",
			"adult_price", "child_price", "infant_price",
			"s1", "s2", "s3", "is_transport",
		}).AddRow(1, 1, 3, 500, 300, 0, 0, 0, 0, 1))

	repo := VisaRepository{DB: db}
	brackets, err := repo.ListTypeTwoBrackets(1)
	if err != nil {
		t.Fatalf("ListTypeTwoBrackets error: %v", err)
	}

	if len(brackets) != 1 {
		t.Fatalf("harus 1 bracket, dapat %d", len(brackets))
	}
	b := brackets[0]
	if b.AdultPrice != 500 || b.AdultSellingPrice != 0 || !b.IsTransport {
		t.Fatalf("scan bracket salah: %+v", b)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListOnlyVisaBracketsWithSectors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM only_visa_prices").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "airport_name", "min_days", "max_days", "type", "visa_option",
			"adult_price", "child_price", "infant_price",
		}).AddRow(9, "JED", 1, 10, "Umrah Type2", "only", 900, 600, 0))

	mock.ExpectQuery("information_schema\\.tables").WithArgs("only_visa_sectors").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("only_visa_sectors"))

	mock.ExpectQuery("FROM only_visa_sectors").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "vehicle_type", "adult_price", "child_price", "infant_price", "reference",
		}).AddRow(11, "JED-MAK", "Bus", 50, 25, 0, "Umrah Type2"))

	repo := VisaRepository{DB: db}
	brackets, err := repo.ListOnlyVisaBrackets(1)
	if err != nil {
		t.Fatalf("ListOnlyVisaBrackets error: %v", err)
	}

	if len(brackets) != 1 || len(brackets[0].Sectors) != 1 {
		t.Fatalf("bracket harus membawa sector tertanam: %+v", brackets)
	}
	if brackets[0].Sectors[0].Name != "JED-MAK" {
		t.Fatalf("sector salah: %+v", brackets[0].Sectors[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
