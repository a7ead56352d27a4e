package repositories

import (
	"database/sql"
	"strings"

	intconfig "umrah-backend/internal/config"
	intdb "umrah-backend/internal/db"
	"umrah-backend/internal/domain"
	"umrah-backend/internal/domain/models"
	"umrah-backend/internal/utils"
)

// HotelRepository mengelola inventory hotel berikut kamar, harga, kontak,
// dan foto.
type HotelRepository struct {
	DB *sql.DB
}

func (r HotelRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r HotelRepository) List(orgID int64, q string) ([]models.Hotel, error) {
	query := `
		SELECT id, COALESCE(organization_id,0), name, COALESCE(city,''),
		       COALESCE(category_id,0), COALESCE(address,''), COALESCE(phone,''),
		       COALESCE(email,''), COALESCE(distance,'')
		FROM hotels`
	where := []string{}
	args := []any{}
	if orgID > 0 {
		where = append(where, "organization_id = ?")
		args = append(args, orgID)
	}
	if q = strings.TrimSpace(q); q != "" {
		where = append(where, "(name LIKE ? OR city LIKE ?)")
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Hotel{}
	for rows.Next() {
		var h models.Hotel
		if err := rows.Scan(&h.ID, &h.OrganizationID, &h.Name, &h.City,
			&h.CategoryID, &h.Address, &h.Phone, &h.Email, &h.Distance); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r HotelRepository) GetByID(id int64) (models.Hotel, error) {
	var h models.Hotel
	err := r.db().QueryRow(`
		SELECT id, COALESCE(organization_id,0), name, COALESCE(city,''),
		       COALESCE(category_id,0), COALESCE(address,''), COALESCE(phone,''),
		       COALESCE(email,''), COALESCE(distance,'')
		FROM hotels
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&h.ID, &h.OrganizationID, &h.Name, &h.City,
		&h.CategoryID, &h.Address, &h.Phone, &h.Email, &h.Distance)
	if err == sql.ErrNoRows {
		return models.Hotel{}, domain.NotFoundError{Resource: "hotel"}
	}
	return h, err
}

// Create menyimpan hotel plus detail nested (prices/contacts/photos) dalam
// satu transaksi.
func (r HotelRepository) Create(in models.HotelCreateInput) (int64, error) {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO hotels (organization_id, name, city, category_id, address, phone, email, distance, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`, in.Hotel.OrganizationID, strings.TrimSpace(in.Hotel.Name), strings.TrimSpace(in.Hotel.City),
		nullIfZero(in.Hotel.CategoryID), intdb.NullIfEmpty(in.Hotel.Address),
		intdb.NullIfEmpty(in.Hotel.Phone), intdb.NullIfEmpty(in.Hotel.Email),
		intdb.NullIfEmpty(in.Hotel.Distance))
	if err != nil {
		return 0, err
	}
	hotelID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, p := range in.Prices {
		if _, err := tx.Exec(`
			INSERT INTO hotel_prices (hotel_id, room_type, start_date, end_date, price)
			VALUES (?, ?, ?, ?, ?)
		`, hotelID, strings.TrimSpace(p.RoomType), p.StartDate, p.EndDate, p.Price); err != nil {
			return 0, err
		}
	}
	for _, ct := range in.Contacts {
		if _, err := tx.Exec(`
			INSERT INTO hotel_contact_details (hotel_id, name, phone, email, role)
			VALUES (?, ?, ?, ?, ?)
		`, hotelID, strings.TrimSpace(ct.Name), strings.TrimSpace(ct.Phone),
			intdb.NullIfEmpty(ct.Email), intdb.NullIfEmpty(ct.Role)); err != nil {
			return 0, err
		}
	}
	for _, ph := range in.Photos {
		if _, err := tx.Exec(`
			INSERT INTO hotel_photos (hotel_id, url, caption)
			VALUES (?, ?, ?)
		`, hotelID, strings.TrimSpace(ph.URL), intdb.NullIfEmpty(ph.Caption)); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return hotelID, nil
}

func (r HotelRepository) Update(h models.Hotel) error {
	res, err := r.db().Exec(`
		UPDATE hotels
		SET name = ?, city = ?, category_id = ?, address = ?, phone = ?, email = ?, distance = ?, updated_at = NOW()
		WHERE id = ?
	`, strings.TrimSpace(h.Name), strings.TrimSpace(h.City), nullIfZero(h.CategoryID),
		intdb.NullIfEmpty(h.Address), intdb.NullIfEmpty(h.Phone), intdb.NullIfEmpty(h.Email),
		intdb.NullIfEmpty(h.Distance), h.ID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "hotel"}
	}
	return nil
}

func (r HotelRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM hotels WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "hotel"}
	}
	return nil
}

func (r HotelRepository) ListRooms(hotelID int64) ([]models.HotelRoom, error) {
	query := `SELECT id, hotel_id, room_type, COALESCE(capacity,0), COALESCE(count,0) FROM hotel_rooms`
	args := []any{}
	if hotelID > 0 {
		query += ` WHERE hotel_id = ?`
		args = append(args, hotelID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.HotelRoom{}
	for rows.Next() {
		var room models.HotelRoom
		if err := rows.Scan(&room.ID, &room.HotelID, &room.RoomType, &room.Capacity, &room.Count); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

func (r HotelRepository) CreateRoom(room models.HotelRoom) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO hotel_rooms (hotel_id, room_type, capacity, count)
		VALUES (?, ?, ?, ?)
	`, room.HotelID, strings.TrimSpace(room.RoomType), room.Capacity, room.Count)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r HotelRepository) UpdateRoom(room models.HotelRoom) error {
	res, err := r.db().Exec(`
		UPDATE hotel_rooms SET room_type = ?, capacity = ?, count = ? WHERE id = ?
	`, strings.TrimSpace(room.RoomType), room.Capacity, room.Count, room.ID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "hotel room"}
	}
	return nil
}

func (r HotelRepository) DeleteRoom(id int64) error {
	res, err := r.db().Exec(`DELETE FROM hotel_rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "hotel room"}
	}
	return nil
}

func (r HotelRepository) ListPrices(hotelID int64) ([]models.HotelPrice, error) {
	query := `
		SELECT id, hotel_id, room_type,
		       DATE_FORMAT(start_date, '%Y-%m-%d'), DATE_FORMAT(end_date, '%Y-%m-%d'),
		       COALESCE(price,0)
		FROM hotel_prices`
	args := []any{}
	if hotelID > 0 {
		query += ` WHERE hotel_id = ?`
		args = append(args, hotelID)
	}
	query += ` ORDER BY start_date ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.HotelPrice{}
	for rows.Next() {
		var p models.HotelPrice
		if err := rows.Scan(&p.ID, &p.HotelID, &p.RoomType, &p.StartDate, &p.EndDate, &p.Price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PriceEntries memuat baris harga sebagai entri domain untuk kalkulasi biaya.
func (r HotelRepository) PriceEntries(orgID int64) ([]domain.HotelPriceEntry, error) {
	query := `
		SELECT p.id, p.hotel_id, p.room_type, p.start_date, p.end_date, COALESCE(p.price,0)
		FROM hotel_prices p`
	args := []any{}
	if orgID > 0 {
		query += ` JOIN hotels h ON h.id = p.hotel_id WHERE h.organization_id = ?`
		args = append(args, orgID)
	}
	query += ` ORDER BY p.start_date ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.HotelPriceEntry{}
	for rows.Next() {
		var e domain.HotelPriceEntry
		var start, end string
		if err := rows.Scan(&e.ID, &e.HotelID, &e.RoomType, &start, &end, &e.Price); err != nil {
			return nil, err
		}
		if t, err := utils.ParseDate(start); err == nil {
			e.StartDate = t
		}
		if t, err := utils.ParseDate(end); err == nil {
			e.EndDate = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r HotelRepository) CreatePrice(p models.HotelPrice) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO hotel_prices (hotel_id, room_type, start_date, end_date, price)
		VALUES (?, ?, ?, ?, ?)
	`, p.HotelID, strings.TrimSpace(p.RoomType), p.StartDate, p.EndDate, p.Price)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r HotelRepository) UpdatePrice(p models.HotelPrice) error {
	res, err := r.db().Exec(`
		UPDATE hotel_prices SET room_type = ?, start_date = ?, end_date = ?, price = ? WHERE id = ?
	`, strings.TrimSpace(p.RoomType), p.StartDate, p.EndDate, p.Price, p.ID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "hotel price"}
	}
	return nil
}

func (r HotelRepository) DeletePrice(id int64) error {
	res, err := r.db().Exec(`DELETE FROM hotel_prices WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "hotel price"}
	}
	return nil
}

func (r HotelRepository) ListContacts(hotelID int64) ([]models.HotelContact, error) {
	query := `SELECT id, hotel_id, name, COALESCE(phone,''), COALESCE(email,''), COALESCE(role,'') FROM hotel_contact_details`
	args := []any{}
	if hotelID > 0 {
		query += ` WHERE hotel_id = ?`
		args = append(args, hotelID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.HotelContact{}
	for rows.Next() {
		var ct models.HotelContact
		if err := rows.Scan(&ct.ID, &ct.HotelID, &ct.Name, &ct.Phone, &ct.Email, &ct.Role); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}

func (r HotelRepository) ListPhotos(hotelID int64) ([]models.HotelPhoto, error) {
	query := `SELECT id, hotel_id, url, COALESCE(caption,'') FROM hotel_photos`
	args := []any{}
	if hotelID > 0 {
		query += ` WHERE hotel_id = ?`
		args = append(args, hotelID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.HotelPhoto{}
	for rows.Next() {
		var ph models.HotelPhoto
		if err := rows.Scan(&ph.ID, &ph.HotelID, &ph.URL, &ph.Caption); err != nil {
			return nil, err
		}
		out = append(out, ph)
	}
	return out, rows.Err()
}

func nullIfZero(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}
