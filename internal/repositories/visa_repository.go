package repositories

import (
	"database/sql"

	intconfig "umrah-backend/internal/config"
	intdb "umrah-backend/internal/db"
	"umrah-backend/internal/domain"
	"umrah-backend/internal/domain/models"
)

// VisaRepository membaca katalog visa type dan ketiga bentuk tabel harga visa.
type VisaRepository struct {
	DB *sql.DB
}

func (r VisaRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r VisaRepository) ListVisaTypes(orgID int64) ([]models.VisaType, error) {
	query := `SELECT id, COALESCE(organization_id,0), name FROM visa_types`
	args := []any{}
	if orgID > 0 {
		query += ` WHERE organization_id = ?`
		args = append(args, orgID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.VisaType{}
	for rows.Next() {
		var v models.VisaType
		if err := rows.Scan(&v.ID, &v.OrganizationID, &v.Name); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ListTypeOneBrackets membaca tabel umrah_visa_prices (bracket flat per
// kategori stay). maximum_nights NULL disimpan sebagai sentinel unbounded.
func (r VisaRepository) ListTypeOneBrackets(orgID int64) ([]domain.VisaBracketTypeOne, error) {
	query := `
		SELECT id, COALESCE(visa_type,''), COALESCE(category,''),
		       COALESCE(maximum_nights, ?),
		       COALESCE(adult_price,0), COALESCE(child_price,0), COALESCE(infant_price,0)
		FROM umrah_visa_prices`
	args := []any{domain.UnboundedNights}
	if orgID > 0 {
		query += ` WHERE organization_id = ?`
		args = append(args, orgID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.VisaBracketTypeOne{}
	for rows.Next() {
		var b domain.VisaBracketTypeOne
		if err := rows.Scan(&b.ID, &b.VisaType, &b.Category, &b.MaximumNights,
			&b.AdultPrice, &b.ChildPrice, &b.InfantPrice); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListTypeTwoBrackets membaca tabel umrah_visa_type_two (bracket per rentang
// jumlah orang). Kolom selling price opsional di skema lama.
func (r VisaRepository) ListTypeTwoBrackets(orgID int64) ([]domain.VisaBracketTypeTwo, error) {
	db := r.db()
	sellingCols := "COALESCE(adult_selling_price,0), COALESCE(child_selling_price,0), COALESCE(infant_selling_price,0)"
	if !intdb.HasColumn(db, "umrah_visa_type_two", "adult_selling_price") {
		sellingCols = "0, 0, 0"
	}

	query := `
		SELECT id, COALESCE(person_from,0), COALESCE(person_to,0),
		       COALESCE(adult_price,0), COALESCE(child_price,0), COALESCE(infant_price,0),
		       ` + sellingCols + `,
		       COALESCE(is_transport,0)
		FROM umrah_visa_type_two`
	args := []any{}
	if orgID > 0 {
		query += ` WHERE organization_id = ?`
		args = append(args, orgID)
	}
	query += ` ORDER BY person_from ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.VisaBracketTypeTwo{}
	for rows.Next() {
		var b domain.VisaBracketTypeTwo
		if err := rows.Scan(&b.ID, &b.PersonFrom, &b.PersonTo,
			&b.AdultPrice, &b.ChildPrice, &b.InfantPrice,
			&b.AdultSellingPrice, &b.ChildSellingPrice, &b.InfantSellingPrice,
			&b.IsTransport); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListOnlyVisaBrackets membaca only_visa_prices berikut sector transport yang
// tertanam di tiap bracket (join only_visa_sectors -> transport_sectors).
func (r VisaRepository) ListOnlyVisaBrackets(orgID int64) ([]domain.OnlyVisaBracket, error) {
	db := r.db()

	query := `
		SELECT id, COALESCE(airport_name,''), COALESCE(min_days,0), COALESCE(max_days,0),
		       COALESCE(type,''), COALESCE(visa_option,'only'),
		       COALESCE(adult_price,0), COALESCE(child_price,0), COALESCE(infant_price,0)
		FROM only_visa_prices`
	args := []any{}
	if orgID > 0 {
		query += ` WHERE organization_id = ?`
		args = append(args, orgID)
	}
	query += ` ORDER BY id ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.OnlyVisaBracket{}
	for rows.Next() {
		var b domain.OnlyVisaBracket
		if err := rows.Scan(&b.ID, &b.AirportName, &b.MinDays, &b.MaxDays,
			&b.Type, &b.VisaOption,
			&b.AdultPrice, &b.ChildPrice, &b.InfantPrice); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !intdb.HasTable(db, "only_visa_sectors") {
		return out, nil
	}
	for i := range out {
		sectors, err := r.sectorsForBracket(db, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Sectors = sectors
	}
	return out, nil
}

func (r VisaRepository) sectorsForBracket(db *sql.DB, bracketID int64) ([]domain.TransportSector, error) {
	rows, err := db.Query(`
		SELECT t.id, t.name, COALESCE(t.vehicle_type,''),
		       COALESCE(t.adult_price,0), COALESCE(t.child_price,0), COALESCE(t.infant_price,0),
		       COALESCE(t.reference,'')
		FROM only_visa_sectors s
		JOIN transport_sectors t ON t.id = s.sector_id
		WHERE s.only_visa_price_id = ?
		ORDER BY t.id ASC
	`, bracketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TransportSector{}
	for rows.Next() {
		var s domain.TransportSector
		if err := rows.Scan(&s.ID, &s.Name, &s.VehicleType,
			&s.AdultPrice, &s.ChildPrice, &s.InfantPrice, &s.Reference); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
