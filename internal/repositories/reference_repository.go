package repositories

import (
	"database/sql"

	intconfig "umrah-backend/internal/config"
	intdb "umrah-backend/internal/db"
	"umrah-backend/internal/domain"
	"umrah-backend/internal/domain/models"
)

// ReferenceRepository membaca tabel referensi (kota, kategori, airline,
// organisasi, kurs, katering). Semua list mengembalikan array polos.
type ReferenceRepository struct {
	DB *sql.DB
}

func (r ReferenceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ReferenceRepository) ListCities() ([]models.City, error) {
	rows, err := r.db().Query(`SELECT id, name, COALESCE(code,'') FROM cities ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Code); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ReferenceRepository) ListHotelCategories(orgID int64) ([]models.HotelCategory, error) {
	query := `SELECT id, COALESCE(organization_id,0), name FROM hotel_categories`
	args := []any{}
	if orgID > 0 {
		query += ` WHERE organization_id = ?`
		args = append(args, orgID)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.HotelCategory{}
	for rows.Next() {
		var c models.HotelCategory
		if err := rows.Scan(&c.ID, &c.OrganizationID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ReferenceRepository) CreateHotelCategory(orgID int64, name string) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO hotel_categories (organization_id, name) VALUES (?, ?)`, orgID, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ReferenceRepository) DeleteHotelCategory(id int64) error {
	res, err := r.db().Exec(`DELETE FROM hotel_categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "hotel category"}
	}
	return nil
}

func (r ReferenceRepository) ListAirlines() ([]models.Airline, error) {
	rows, err := r.db().Query(`SELECT id, name, COALESCE(code,'') FROM airlines ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Airline{}
	for rows.Next() {
		var a models.Airline
		if err := rows.Scan(&a.ID, &a.Name, &a.Code); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r ReferenceRepository) ListOrganizations() ([]models.Organization, error) {
	rows, err := r.db().Query(`SELECT id, name FROM organizations ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Organization{}
	for rows.Next() {
		var o models.Organization
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetRiyalRate mengambil kurs terbaru organisasi; 0 kalau belum diset.
func (r ReferenceRepository) GetRiyalRate(orgID int64) (models.RiyalRate, error) {
	db := r.db()
	if !intdb.HasTable(db, "riyal_rates") {
		return models.RiyalRate{}, nil
	}

	var rate models.RiyalRate
	err := db.QueryRow(`
		SELECT id, COALESCE(organization_id,0), COALESCE(rate,0), COALESCE(currency,'')
		FROM riyal_rates
		WHERE organization_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, orgID).Scan(&rate.ID, &rate.OrganizationID, &rate.Rate, &rate.Currency)
	if err == sql.ErrNoRows {
		return models.RiyalRate{OrganizationID: orgID}, nil
	}
	if err != nil {
		return models.RiyalRate{}, err
	}
	return rate, nil
}

func (r ReferenceRepository) ListFoodPrices(orgID int64) ([]domain.FoodItem, error) {
	query := `SELECT id, name, COALESCE(per_pex,0), COALESCE(min_pex,0) FROM food_prices`
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

	out := []domain.FoodItem{}
	for rows.Next() {
		var f domain.FoodItem
		if err := rows.Scan(&f.ID, &f.Name, &f.PerPex, &f.MinPex); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r ReferenceRepository) ListZiaratPrices(orgID int64) ([]domain.ZiaratItem, error) {
	query := `SELECT id, name, COALESCE(price,0) FROM ziarat_prices`
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

	out := []domain.ZiaratItem{}
	for rows.Next() {
		var z domain.ZiaratItem
		if err := rows.Scan(&z.ID, &z.Name, &z.Price); err != nil {
			return nil, err
		}
		out = append(out, z)
	}
	return out, rows.Err()
}
