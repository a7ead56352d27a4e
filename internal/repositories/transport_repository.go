package repositories

import (
	"database/sql"
	"strings"

	intconfig "umrah-backend/internal/config"
	intdb "umrah-backend/internal/db"
	"umrah-backend/internal/domain"
)

// TransportRepository membaca transport_sectors plus relasi small_sectors.
type TransportRepository struct {
	DB *sql.DB
}

func (r TransportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TransportRepository) ListSectors(orgID int64) ([]domain.TransportSector, error) {
	db := r.db()

	query := `
		SELECT t.id, t.name, COALESCE(t.vehicle_type,''),
		       COALESCE(t.adult_price,0), COALESCE(t.child_price,0), COALESCE(t.infant_price,0),
		       COALESCE(t.reference,''), COALESCE(t.vehicle_types,''),
		       ss.departure_city, ss.arrival_city
		FROM transport_sectors t
		LEFT JOIN small_sectors ss ON ss.id = t.small_sector_id`
	args := []any{}
	if orgID > 0 {
		query += ` WHERE t.organization_id = ?`
		args = append(args, orgID)
	}
	query += ` ORDER BY t.id ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TransportSector{}
	for rows.Next() {
		var s domain.TransportSector
		var vehicleTypes string
		var depCity, arrCity sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &s.VehicleType,
			&s.AdultPrice, &s.ChildPrice, &s.InfantPrice,
			&s.Reference, &vehicleTypes, &depCity, &arrCity); err != nil {
			return nil, err
		}
		if v := strings.TrimSpace(vehicleTypes); v != "" {
			for _, part := range strings.Split(v, ",") {
				if p := strings.TrimSpace(part); p != "" {
					s.VehicleTypes = append(s.VehicleTypes, p)
				}
			}
		}
		if depCity.Valid || arrCity.Valid {
			s.SmallSector = &domain.SmallSector{
				DepartureCity: depCity.String,
				ArrivalCity:   arrCity.String,
			}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r TransportRepository) GetSector(id int64) (*domain.TransportSector, error) {
	db := r.db()
	var s domain.TransportSector
	err := db.QueryRow(`
		SELECT id, name, COALESCE(vehicle_type,''),
		       COALESCE(adult_price,0), COALESCE(child_price,0), COALESCE(infant_price,0),
		       COALESCE(reference,'')
		FROM transport_sectors
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&s.ID, &s.Name, &s.VehicleType,
		&s.AdultPrice, &s.ChildPrice, &s.InfantPrice, &s.Reference)
	if err == sql.ErrNoRows {
		return nil, domain.NotFoundError{Resource: "transport sector"}
	}
	if err != nil {
		return nil, err
	}

	if intdb.HasColumn(db, "transport_sectors", "small_sector_id") {
		var dep, arr sql.NullString
		scanErr := db.QueryRow(`
			SELECT ss.departure_city, ss.arrival_city
			FROM transport_sectors t
			JOIN small_sectors ss ON ss.id = t.small_sector_id
			WHERE t.id = ?
			LIMIT 1
		`, id).Scan(&dep, &arr)
		if scanErr == nil {
			s.SmallSector = &domain.SmallSector{DepartureCity: dep.String, ArrivalCity: arr.String}
		}
	}
	return &s, nil
}
