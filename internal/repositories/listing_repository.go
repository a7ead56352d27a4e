package repositories

import (
	"database/sql"

	intconfig "umrah-backend/internal/config"
	intdb "umrah-backend/internal/db"
	"umrah-backend/internal/domain"
)

// ListingRepository melayani endpoint referensi baca-saja yang skemanya
// berbeda-beda antar environment (bookings, tickets, pax-movements, dst):
// kolom dideteksi dinamis supaya satu implementasi cukup untuk semuanya.
type ListingRepository struct {
	DB *sql.DB
}

func (r ListingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const listingLimit = 500

// ListTable membaca isi tabel sebagai slice map kolom->nilai. Filter
// organization hanya dipasang saat kolomnya memang ada.
func (r ListingRepository) ListTable(table string, orgID int64) ([]map[string]any, error) {
	db := r.db()
	if !intdb.HasTable(db, table) {
		return nil, domain.NotFoundError{Resource: table}
	}

	query := `SELECT * FROM ` + table
	args := []any{}
	if orgID > 0 && intdb.HasColumn(db, table, "organization_id") {
		query += ` WHERE organization_id = ?`
		args = append(args, orgID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, listingLimit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []map[string]any{}
	for rows.Next() {
		raw := make([]sql.RawBytes, len(cols))
		dest := make([]any, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		record := map[string]any{}
		for i, col := range cols {
			if raw[i] == nil {
				record[col] = nil
				continue
			}
			record[col] = string(raw[i])
		}
		out = append(out, record)
	}
	return out, rows.Err()
}
