package repositories

import (
	"database/sql"
	"strings"

	intconfig "umrah-backend/internal/config"
	intdb "umrah-backend/internal/db"
	"umrah-backend/internal/domain"
	"umrah-backend/internal/domain/models"
)

// PackageRepository menyimpan custom package berikut kelima tabel detailnya
// dalam satu transaksi. Update memakai pola replace-details: baris detail
// lama dihapus lalu ditulis ulang dari payload.
type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PackageRepository) List(orgID int64) ([]models.CustomPackage, error) {
	query := `
		SELECT id, COALESCE(organization_id,0), COALESCE(query_number,''),
		       COALESCE(customer_name,''), COALESCE(customer_phone,''),
		       COALESCE(adults,0), COALESCE(children,0), COALESCE(infants,0),
		       COALESCE(visa_type,''), COALESCE(booking_options,''),
		       COALESCE(visa_adult_price,0), COALESCE(visa_child_price,0), COALESCE(visa_infant_price,0),
		       COALESCE(visa_total,0), COALESCE(hotel_total,0), COALESCE(transport_total,0),
		       COALESCE(ticket_total,0), COALESCE(food_total,0), COALESCE(ziarat_total,0),
		       COALESCE(grand_total,0)
		FROM custom_umrah_packages`
	args := []any{}
	if orgID > 0 {
		query += ` WHERE organization_id = ?`
		args = append(args, orgID)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CustomPackage{}
	for rows.Next() {
		var p models.CustomPackage
		if err := scanPackage(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackage(row rowScanner, p *models.CustomPackage) error {
	return row.Scan(&p.ID, &p.OrganizationID, &p.QueryNumber,
		&p.CustomerName, &p.CustomerPhone,
		&p.Adults, &p.Children, &p.Infants,
		&p.VisaTypeName, &p.BookingOptions,
		&p.VisaAdultPrice, &p.VisaChildPrice, &p.VisaInfantPrice,
		&p.VisaTotal, &p.HotelTotal, &p.TransportTotal,
		&p.TicketTotal, &p.FoodTotal, &p.ZiaratTotal,
		&p.GrandTotal)
}

// GetByID merakit kembali payload lengkap untuk mengisi ulang form edit.
func (r PackageRepository) GetByID(id int64) (models.CustomPackage, error) {
	db := r.db()

	var p models.CustomPackage
	row := db.QueryRow(`
		SELECT id, COALESCE(organization_id,0), COALESCE(query_number,''),
		       COALESCE(customer_name,''), COALESCE(customer_phone,''),
		       COALESCE(adults,0), COALESCE(children,0), COALESCE(infants,0),
		       COALESCE(visa_type,''), COALESCE(booking_options,''),
		       COALESCE(visa_adult_price,0), COALESCE(visa_child_price,0), COALESCE(visa_infant_price,0),
		       COALESCE(visa_total,0), COALESCE(hotel_total,0), COALESCE(transport_total,0),
		       COALESCE(ticket_total,0), COALESCE(food_total,0), COALESCE(ziarat_total,0),
		       COALESCE(grand_total,0)
		FROM custom_umrah_packages
		WHERE id = ?
		LIMIT 1
	`, id)
	if err := scanPackage(row, &p); err != nil {
		if err == sql.ErrNoRows {
			return models.CustomPackage{}, domain.NotFoundError{Resource: "custom package"}
		}
		return models.CustomPackage{}, err
	}

	if err := r.loadDetails(db, &p); err != nil {
		return models.CustomPackage{}, err
	}
	return p, nil
}

func (r PackageRepository) loadDetails(db *sql.DB, p *models.CustomPackage) error {
	rows, err := db.Query(`
		SELECT id, COALESCE(hotel_id,0), COALESCE(hotel_name,''), COALESCE(room_type,''),
		       COALESCE(DATE_FORMAT(check_in,'%Y-%m-%d'),''), COALESCE(nights,0),
		       COALESCE(is_self,0), COALESCE(cost,0)
		FROM custom_umrah_package_hotel_details
		WHERE package_id = ?
		ORDER BY id ASC
	`, p.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var d models.PackageHotelDetail
		if err := rows.Scan(&d.ID, &d.HotelID, &d.HotelName, &d.RoomType,
			&d.CheckIn, &d.Nights, &d.Self, &d.Cost); err != nil {
			rows.Close()
			return err
		}
		p.HotelDetails = append(p.HotelDetails, d)
	}
	rows.Close()

	rows, err = db.Query(`
		SELECT id, COALESCE(sector_id,0), COALESCE(sector_name,''),
		       COALESCE(vehicle_type,''), COALESCE(is_self,0), COALESCE(cost,0)
		FROM custom_umrah_package_transport_details
		WHERE package_id = ?
		ORDER BY id ASC
	`, p.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var d models.PackageTransportDetail
		if err := rows.Scan(&d.ID, &d.SectorID, &d.SectorName, &d.VehicleType, &d.Self, &d.Cost); err != nil {
			rows.Close()
			return err
		}
		p.TransportDetails = append(p.TransportDetails, d)
	}
	rows.Close()

	rows, err = db.Query(`
		SELECT id, COALESCE(airline_id,0), COALESCE(flight_no,''), COALESCE(trip_type,''),
		       COALESCE(departure_at,''), COALESCE(arrival_at,''),
		       COALESCE(from_city,''), COALESCE(to_city,''), COALESCE(to_code,''),
		       COALESCE(seats,0), COALESCE(price,0)
		FROM custom_umrah_package_ticket_details
		WHERE package_id = ?
		ORDER BY id ASC
	`, p.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var d models.PackageTicketDetail
		if err := rows.Scan(&d.ID, &d.AirlineID, &d.FlightNo, &d.TripType,
			&d.DepartureAt, &d.ArrivalAt, &d.FromCity, &d.ToCity, &d.ToCode,
			&d.Seats, &d.Price); err != nil {
			rows.Close()
			return err
		}
		p.TicketDetails = append(p.TicketDetails, d)
	}
	rows.Close()

	rows, err = db.Query(`
		SELECT id, COALESCE(food_id,0), COALESCE(name,''), COALESCE(is_self,0), COALESCE(cost,0)
		FROM custom_umrah_package_food_details
		WHERE package_id = ?
		ORDER BY id ASC
	`, p.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var d models.PackageFoodDetail
		if err := rows.Scan(&d.ID, &d.FoodID, &d.Name, &d.Self, &d.Cost); err != nil {
			rows.Close()
			return err
		}
		p.FoodDetails = append(p.FoodDetails, d)
	}
	rows.Close()

	rows, err = db.Query(`
		SELECT id, COALESCE(ziarat_id,0), COALESCE(name,''), COALESCE(is_self,0), COALESCE(cost,0)
		FROM custom_umrah_package_ziarat_details
		WHERE package_id = ?
		ORDER BY id ASC
	`, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var d models.PackageZiaratDetail
		if err := rows.Scan(&d.ID, &d.ZiaratID, &d.Name, &d.Self, &d.Cost); err != nil {
			return err
		}
		p.ZiaratDetails = append(p.ZiaratDetails, d)
	}
	return rows.Err()
}

// FindIDByQueryNumber dipakai alur submit: kalau query number sudah punya
// paket, submit berikutnya jadi update, bukan create baru.
func (r PackageRepository) FindIDByQueryNumber(orgID int64, queryNumber string) (int64, error) {
	queryNumber = strings.TrimSpace(queryNumber)
	if queryNumber == "" {
		return 0, nil
	}
	var id int64
	err := r.db().QueryRow(`
		SELECT id FROM custom_umrah_packages
		WHERE organization_id = ? AND query_number = ?
		ORDER BY id DESC
		LIMIT 1
	`, orgID, queryNumber).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r PackageRepository) Create(p models.CustomPackage) (int64, error) {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO custom_umrah_packages
			(organization_id, query_number, customer_name, customer_phone,
			 adults, children, infants, visa_type, booking_options,
			 visa_adult_price, visa_child_price, visa_infant_price,
			 visa_total, hotel_total, transport_total, ticket_total, food_total, ziarat_total,
			 grand_total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`, p.OrganizationID, intdb.NullIfEmpty(strings.TrimSpace(p.QueryNumber)),
		intdb.NullIfEmpty(p.CustomerName), intdb.NullIfEmpty(p.CustomerPhone),
		p.Adults, p.Children, p.Infants, p.VisaTypeName, p.BookingOptions,
		p.VisaAdultPrice, p.VisaChildPrice, p.VisaInfantPrice,
		p.VisaTotal, p.HotelTotal, p.TransportTotal, p.TicketTotal, p.FoodTotal, p.ZiaratTotal,
		p.GrandTotal)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := insertDetails(tx, id, p); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r PackageRepository) Update(p models.CustomPackage) error {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		UPDATE custom_umrah_packages
		SET query_number = ?, customer_name = ?, customer_phone = ?,
		    adults = ?, children = ?, infants = ?, visa_type = ?, booking_options = ?,
		    visa_adult_price = ?, visa_child_price = ?, visa_infant_price = ?,
		    visa_total = ?, hotel_total = ?, transport_total = ?, ticket_total = ?,
		    food_total = ?, ziarat_total = ?, grand_total = ?, updated_at = NOW()
		WHERE id = ?
	`, intdb.NullIfEmpty(strings.TrimSpace(p.QueryNumber)),
		intdb.NullIfEmpty(p.CustomerName), intdb.NullIfEmpty(p.CustomerPhone),
		p.Adults, p.Children, p.Infants, p.VisaTypeName, p.BookingOptions,
		p.VisaAdultPrice, p.VisaChildPrice, p.VisaInfantPrice,
		p.VisaTotal, p.HotelTotal, p.TransportTotal, p.TicketTotal,
		p.FoodTotal, p.ZiaratTotal, p.GrandTotal, p.ID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		// baris tetap bisa "affected 0" saat payload identik; cek keberadaan
		var exists int
		if scanErr := tx.QueryRow(`SELECT COUNT(*) FROM custom_umrah_packages WHERE id = ?`, p.ID).Scan(&exists); scanErr != nil || exists == 0 {
			return domain.NotFoundError{Resource: "custom package"}
		}
	}

	for _, table := range detailTables {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE package_id = ?`, p.ID); err != nil {
			return err
		}
	}
	if err := insertDetails(tx, p.ID, p); err != nil {
		return err
	}
	return tx.Commit()
}

func (r PackageRepository) Delete(id int64) error {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range detailTables {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE package_id = ?`, id); err != nil {
			return err
		}
	}
	res, err := tx.Exec(`DELETE FROM custom_umrah_packages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "custom package"}
	}
	return tx.Commit()
}

var detailTables = []string{
	"custom_umrah_package_hotel_details",
	"custom_umrah_package_transport_details",
	"custom_umrah_package_ticket_details",
	"custom_umrah_package_food_details",
	"custom_umrah_package_ziarat_details",
}

func insertDetails(tx *sql.Tx, packageID int64, p models.CustomPackage) error {
	for _, d := range p.HotelDetails {
		if _, err := tx.Exec(`
			INSERT INTO custom_umrah_package_hotel_details
				(package_id, hotel_id, hotel_name, room_type, check_in, nights, is_self, cost)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, packageID, nullIfZero(d.HotelID), d.HotelName, d.RoomType,
			intdb.NullIfEmpty(d.CheckIn), d.Nights, d.Self, d.Cost); err != nil {
			return err
		}
	}
	for _, d := range p.TransportDetails {
		if _, err := tx.Exec(`
			INSERT INTO custom_umrah_package_transport_details
				(package_id, sector_id, sector_name, vehicle_type, is_self, cost)
			VALUES (?, ?, ?, ?, ?, ?)
		`, packageID, nullIfZero(d.SectorID), d.SectorName, d.VehicleType, d.Self, d.Cost); err != nil {
			return err
		}
	}
	for _, d := range p.TicketDetails {
		if _, err := tx.Exec(`
			INSERT INTO custom_umrah_package_ticket_details
				(package_id, airline_id, flight_no, trip_type, departure_at, arrival_at,
				 from_city, to_city, to_code, seats, price)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, packageID, nullIfZero(d.AirlineID), d.FlightNo, d.TripType,
			d.DepartureAt, d.ArrivalAt, d.FromCity, d.ToCity, d.ToCode,
			d.Seats, d.Price); err != nil {
			return err
		}
	}
	for _, d := range p.FoodDetails {
		if _, err := tx.Exec(`
			INSERT INTO custom_umrah_package_food_details
				(package_id, food_id, name, is_self, cost)
			VALUES (?, ?, ?, ?, ?)
		`, packageID, nullIfZero(d.FoodID), d.Name, d.Self, d.Cost); err != nil {
			return err
		}
	}
	for _, d := range p.ZiaratDetails {
		if _, err := tx.Exec(`
			INSERT INTO custom_umrah_package_ziarat_details
				(package_id, ziarat_id, name, is_self, cost)
			VALUES (?, ?, ?, ?, ?)
		`, packageID, nullIfZero(d.ZiaratID), d.Name, d.Self, d.Cost); err != nil {
			return err
		}
	}
	return nil
}
