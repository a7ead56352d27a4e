package repositories

import (
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"sync"

	intconfig "umrah-backend/internal/config"
	intdb "umrah-backend/internal/db"
	"umrah-backend/internal/domain"
)

// probeSpec mendeklarasikan satu tabel dependen yang dicek saat delete hotel
// terblokir: tabel, kolom FK, dan kolom label untuk ditampilkan ke user.
type probeSpec struct {
	Source   string
	Table    string
	FKColumn string
	LabelCol string
}

// hotelDependents adalah daftar deklaratif kandidat pemblokir delete hotel.
var hotelDependents = []probeSpec{
	{Source: "rooms", Table: "hotel_rooms", FKColumn: "hotel_id", LabelCol: "room_type"},
	{Source: "prices", Table: "hotel_prices", FKColumn: "hotel_id", LabelCol: "room_type"},
	{Source: "contacts", Table: "hotel_contact_details", FKColumn: "hotel_id", LabelCol: "name"},
	{Source: "photos", Table: "hotel_photos", FKColumn: "hotel_id", LabelCol: "url"},
	{Source: "bookings", Table: "bookings", FKColumn: "hotel_id", LabelCol: "guest_name"},
	{Source: "package hotel details", Table: "umrah_package_hotel_details", FKColumn: "hotel_id", LabelCol: "room_type"},
	{Source: "custom package hotel details", Table: "custom_umrah_package_hotel_details", FKColumn: "hotel_id", LabelCol: "hotel_name"},
	{Source: "umrah packages", Table: "umrah_packages", FKColumn: "hotel_id", LabelCol: "name"},
	{Source: "packages", Table: "packages", FKColumn: "hotel_id", LabelCol: "name"},
	{Source: "daily operations", Table: "daily_hotel_operations", FKColumn: "hotel_id", LabelCol: "status"},
	{Source: "pax movements", Table: "pax_movements", FKColumn: "hotel_id", LabelCol: "movement_type"},
	{Source: "outsourcing", Table: "hotel_outsourcing", FKColumn: "hotel_id", LabelCol: "vendor_name"},
}

const probeLimit = 20

// DependencyProbe mengumpulkan record yang memblokir penghapusan hotel.
// Seluruh tabel kandidat dicek paralel; tabel yang tidak ada dilewati.
type DependencyProbe struct {
	DB *sql.DB
}

func (p DependencyProbe) db() *sql.DB {
	if p.DB != nil {
		return p.DB
	}
	return intconfig.DB
}

func (p DependencyProbe) FindHotelDependents(hotelID int64) []domain.DependentRef {
	db := p.db()
	if db == nil {
		return []domain.DependentRef{}
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out []domain.DependentRef
	)

	for _, spec := range hotelDependents {
		wg.Add(1)
		go func(spec probeSpec) {
			defer wg.Done()
			refs := probeOne(db, spec, hotelID)
			if len(refs) == 0 {
				return
			}
			mu.Lock()
			out = append(out, refs...)
			mu.Unlock()
		}(spec)
	}
	wg.Wait()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func probeOne(db *sql.DB, spec probeSpec, hotelID int64) []domain.DependentRef {
	if !intdb.HasTable(db, spec.Table) || !intdb.HasColumn(db, spec.Table, spec.FKColumn) {
		return nil
	}

	labelSel := "''"
	if intdb.HasColumn(db, spec.Table, spec.LabelCol) {
		labelSel = "COALESCE(" + spec.LabelCol + ",'')"
	}

	query := fmt.Sprintf(`SELECT id, %s FROM %s WHERE %s = ? LIMIT %d`,
		labelSel, spec.Table, spec.FKColumn, probeLimit)

	rows, err := db.Query(query, hotelID)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []domain.DependentRef
	for rows.Next() {
		var ref domain.DependentRef
		if err := rows.Scan(&ref.ID, &ref.Label); err != nil {
			continue
		}
		ref.Source = spec.Source
		out = append(out, ref)
	}
	return out
}

// protectedRefPattern mem-parse pesan gaya "<Model> object (<id>)" yang
// dikirim backend lama saat delete terblokir.
var protectedRefPattern = regexp.MustCompile(`([A-Za-z][A-Za-z0-9 ]*?) object \((\d+)\)`)

// ParseProtectedRefs adalah jalan terakhir: ekstrak referensi pemblokir dari
// teks error upstream saat probe tabel tidak menemukan apa pun.
func ParseProtectedRefs(msg string) []domain.DependentRef {
	matches := protectedRefPattern.FindAllStringSubmatch(msg, -1)
	out := []domain.DependentRef{}
	for _, m := range matches {
		id, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			continue
		}
		out = append(out, domain.DependentRef{Source: m[1], ID: id})
	}
	return out
}
