package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestFindHotelDependents(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	// hanya hotel_rooms yang ada; tabel kandidat lain dilewati
	for _, spec := range hotelDependents {
		if spec.Table == "hotel_rooms" {
			mock.ExpectQuery("information_schema\\.tables").WithArgs(spec.Table).
				WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow(spec.Table))
			mock.ExpectQuery("information_schema\\.columns").WithArgs(spec.Table, spec.FKColumn).
				WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow(spec.FKColumn))
			mock.ExpectQuery("information_schema\\.columns").WithArgs(spec.Table, spec.LabelCol).
				WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow(spec.LabelCol))
			mock.ExpectQuery("SELECT id, .+ FROM hotel_rooms").WithArgs(int64(7)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).
					AddRow(3, "Quad").AddRow(1, "Double"))
			continue
		}
		mock.ExpectQuery("information_schema\\.tables").WithArgs(spec.Table).
			WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	}

	probe := DependencyProbe{DB: db}
	refs := probe.FindHotelDependents(7)

	if len(refs) != 2 {
		t.Fatalf("harus 2 dependen, dapat %d: %+v", len(refs), refs)
	}
	// hasil diurutkan source lalu id
	if refs[0].ID != 1 || refs[1].ID != 3 {
		t.Fatalf("urutan hasil salah: %+v", refs)
	}
	if refs[0].Source != "rooms" || refs[0].Label != "Double" {
		t.Fatalf("source/label salah: %+v", refs[0])
	}
}

func TestParseProtectedRefs(t *testing.T) {
	msg := `Cannot delete: Hotel Room object (12), Booking object (34) are referenced`
	refs := ParseProtectedRefs(msg)

	if len(refs) != 2 {
		t.Fatalf("harus 2 referensi, dapat %d: %+v", len(refs), refs)
	}
	if refs[0].Source != "Hotel Room" || refs[0].ID != 12 {
		t.Fatalf("parse pertama salah: %+v", refs[0])
	}
	if refs[1].Source != "Booking" || refs[1].ID != 34 {
		t.Fatalf("parse kedua salah: %+v", refs[1])
	}
}

func TestParseProtectedRefsNoMatch(t *testing.T) {
	if refs := ParseProtectedRefs("error biasa tanpa pola"); len(refs) != 0 {
		t.Fatalf("tanpa pola harus kosong, dapat %+v", refs)
	}
}
