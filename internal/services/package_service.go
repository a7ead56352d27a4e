package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"umrah-backend/internal/domain"
	"umrah-backend/internal/domain/models"
	"umrah-backend/internal/queue"
	"umrah-backend/internal/repositories"
	"umrah-backend/internal/utils"
)

// SubmitRequest adalah payload "Add to Calculations": state kalkulator plus
// identitas customer. Query number yang sudah punya paket membuat submit
// berikutnya jadi update.
type SubmitRequest struct {
	QuoteRequest
	QueryNumber   string `json:"query_number"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

// SubmitResult membawa paket tersimpan plus penanda create vs update.
type SubmitResult struct {
	Package models.CustomPackage `json:"package"`
	Created bool                 `json:"created"`
}

// PackageService memvalidasi, menghitung ulang, dan menyimpan custom package.
// Harga tidak pernah dipercaya dari client: semua total dihitung ulang server
// dari tabel referensi sebelum disimpan.
type PackageService struct {
	Repo      repositories.PackageRepository
	Pricing   PricingService
	Publisher *queue.Publisher
	RequestID string

	// FetchPackage bisa diganti di test untuk memutus dependensi DB.
	FetchPackage func(id int64) (models.CustomPackage, error)
}

func (s PackageService) fetchPackage(id int64) (models.CustomPackage, error) {
	if s.FetchPackage != nil {
		return s.FetchPackage(id)
	}
	return s.Repo.GetByID(id)
}

// Submit menjalankan alur lengkap: validasi, quote ulang, compose, lalu
// create atau update berdasarkan query number.
func (s PackageService) Submit(req SubmitRequest) (SubmitResult, error) {
	utils.LogEvent(s.RequestID, "package", "submit",
		fmt.Sprintf("org=%d query_number=%s", req.OrganizationID, req.QueryNumber))

	ref, err := s.Pricing.loadReference(req.OrganizationID)
	if err != nil {
		return SubmitResult{}, domain.InternalError{Msg: "gagal memuat data referensi", Err: err}
	}
	if err := s.Pricing.ValidateForSubmit(req.QuoteRequest, ref); err != nil {
		return SubmitResult{}, err
	}
	quote, err := s.Pricing.quoteWithReference(req.QuoteRequest, ref)
	if err != nil {
		return SubmitResult{}, err
	}

	p := ComposePackage(req, quote, ref)

	existingID, err := s.Repo.FindIDByQueryNumber(req.OrganizationID, req.QueryNumber)
	if err != nil {
		return SubmitResult{}, domain.InternalError{Msg: "gagal mengecek query number", Err: err}
	}

	created := existingID == 0
	if created {
		id, err := s.Repo.Create(p)
		if err != nil {
			return SubmitResult{}, domain.InternalError{Msg: "gagal menyimpan paket", Err: err}
		}
		p.ID = id
	} else {
		p.ID = existingID
		if err := s.Repo.Update(p); err != nil {
			if domain.IsNotFound(err) {
				return SubmitResult{}, err
			}
			return SubmitResult{}, domain.InternalError{Msg: "gagal memperbarui paket", Err: err}
		}
	}

	event := queue.EventPackageUpdated
	if created {
		event = queue.EventPackageCreated
	}
	s.publish(event, p)

	return SubmitResult{Package: p, Created: created}, nil
}

// Update menghitung ulang dan menimpa paket yang id-nya sudah diketahui
// (alur edit langsung via PUT, bukan lewat query number).
func (s PackageService) Update(id int64, req SubmitRequest) (models.CustomPackage, error) {
	ref, err := s.Pricing.loadReference(req.OrganizationID)
	if err != nil {
		return models.CustomPackage{}, domain.InternalError{Msg: "gagal memuat data referensi", Err: err}
	}
	if err := s.Pricing.ValidateForSubmit(req.QuoteRequest, ref); err != nil {
		return models.CustomPackage{}, err
	}
	quote, err := s.Pricing.quoteWithReference(req.QuoteRequest, ref)
	if err != nil {
		return models.CustomPackage{}, err
	}

	p := ComposePackage(req, quote, ref)
	p.ID = id
	if err := s.Repo.Update(p); err != nil {
		if domain.IsNotFound(err) {
			return models.CustomPackage{}, err
		}
		return models.CustomPackage{}, domain.InternalError{Msg: "gagal memperbarui paket", Err: err}
	}

	s.publish(queue.EventPackageUpdated, p)
	return p, nil
}

func (s PackageService) List(orgID int64) ([]models.CustomPackage, error) {
	return s.Repo.List(orgID)
}

func (s PackageService) Get(id int64) (models.CustomPackage, error) {
	return s.fetchPackage(id)
}

func (s PackageService) Delete(id int64) error {
	p, err := s.fetchPackage(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.publish(queue.EventPackageDeleted, p)
	return nil
}

func (s PackageService) publish(event string, p models.CustomPackage) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.Publisher.Publish(ctx, queue.PackageEvent{
		Event:          event,
		PackageID:      p.ID,
		OrganizationID: p.OrganizationID,
		QueryNumber:    p.QueryNumber,
		GrandTotal:     p.GrandTotal,
	})
	if err != nil {
		utils.LogEvent(s.RequestID, "package", "publish_failed", err.Error())
	}
}

// ComposePackage merakit agregat tersimpan dari request + hasil quote.
// Biaya per baris detail dihitung dengan rumus yang sama dengan quote
// sehingga penjumlahan detail konsisten dengan total per kategori.
func ComposePackage(req SubmitRequest, quote QuoteResult, ref ReferenceData) models.CustomPackage {
	p := models.CustomPackage{
		OrganizationID: req.OrganizationID,
		QueryNumber:    utils.TrimOrEmpty(req.QueryNumber),
		CustomerName:   utils.TrimOrEmpty(req.CustomerName),
		CustomerPhone:  utils.TrimOrEmpty(req.CustomerPhone),
		Adults:         req.Passengers.Adults,
		Children:       req.Passengers.Children,
		Infants:        req.Passengers.Infants,
		VisaTypeName:   req.VisaTypeName,
		BookingOptions: strings.Join(req.SelectedOptions, ","),

		VisaAdultPrice:  quote.Visa.AdultPrice,
		VisaChildPrice:  quote.Visa.ChildPrice,
		VisaInfantPrice: quote.Visa.InfantPrice,
		VisaTotal:       quote.VisaTotal,
		HotelTotal:      quote.HotelTotal,
		TransportTotal:  quote.TransportTotal,
		TicketTotal:     quote.TicketTotal,
		FoodTotal:       quote.FoodTotal,
		ZiaratTotal:     quote.ZiaratTotal,
		GrandTotal:      quote.GrandTotal,
	}

	pax := req.Passengers
	selfLocked := domain.SelfHotelLocked(req.SelectedOptions)

	for _, in := range req.HotelStays {
		stay := hotelStayFromInput(in, selfLocked)
		cost, _ := domain.HotelStayCost(stay, ref.HotelPrices, pax)
		p.HotelDetails = append(p.HotelDetails, models.PackageHotelDetail{
			HotelID:   in.HotelID,
			HotelName: in.HotelName,
			RoomType:  in.RoomType,
			CheckIn:   in.CheckIn,
			Nights:    in.Nights,
			Self:      stay.Self,
			Cost:      cost,
		})
	}

	for _, in := range req.TransportLegs {
		d := models.PackageTransportDetail{SectorID: in.SectorID, Self: in.Self}
		if sector := findSector(ref.Sectors, in.SectorID); sector != nil {
			d.SectorName = sector.Name
			d.VehicleType = sector.VehicleType
			if !in.Self {
				d.Cost = domain.TransportCost(
					[]domain.TransportLeg{{Sector: sector}}, pax, quote.Visa.IncludesTransport)
			}
		}
		p.TransportDetails = append(p.TransportDetails, d)
	}

	p.TicketDetails = append(p.TicketDetails, req.Tickets...)

	for _, in := range req.Food {
		d := models.PackageFoodDetail{FoodID: in.ItemID, Self: in.Self}
		for _, item := range ref.Food {
			if item.ID != in.ItemID {
				continue
			}
			d.Name = item.Name
			if !in.Self {
				d.Cost = domain.FoodCost([]domain.FoodItem{item}, pax, false)
			}
		}
		p.FoodDetails = append(p.FoodDetails, d)
	}

	for _, in := range req.Ziarat {
		d := models.PackageZiaratDetail{ZiaratID: in.ItemID, Self: in.Self}
		for _, item := range ref.Ziarat {
			if item.ID != in.ItemID {
				continue
			}
			d.Name = item.Name
			if !in.Self {
				d.Cost = domain.ZiaratCost([]domain.ZiaratItem{item}, pax, false)
			}
		}
		p.ZiaratDetails = append(p.ZiaratDetails, d)
	}

	return p
}

// BuildQuoteRequest membalik agregat tersimpan menjadi state kalkulator,
// dipakai alur edit: paket di-load lalu form diisi ulang dari sini.
func BuildQuoteRequest(p models.CustomPackage) SubmitRequest {
	req := SubmitRequest{
		QueryNumber:   p.QueryNumber,
		CustomerName:  p.CustomerName,
		CustomerPhone: p.CustomerPhone,
	}
	req.OrganizationID = p.OrganizationID
	req.SelectedOptions = utils.SplitList(p.BookingOptions)
	req.Passengers = domain.PassengerCounts{Adults: p.Adults, Children: p.Children, Infants: p.Infants}
	req.VisaTypeName = p.VisaTypeName

	for _, d := range p.HotelDetails {
		req.HotelStays = append(req.HotelStays, HotelStayInput{
			HotelID:   d.HotelID,
			HotelName: d.HotelName,
			RoomType:  d.RoomType,
			CheckIn:   d.CheckIn,
			Nights:    d.Nights,
			Self:      d.Self,
		})
	}
	for _, d := range p.TransportDetails {
		req.TransportLegs = append(req.TransportLegs, TransportLegInput{SectorID: d.SectorID, Self: d.Self})
	}
	req.Tickets = append(req.Tickets, p.TicketDetails...)
	for _, d := range p.FoodDetails {
		req.Food = append(req.Food, CateringInput{ItemID: d.FoodID, Self: d.Self})
	}
	for _, d := range p.ZiaratDetails {
		req.Ziarat = append(req.Ziarat, CateringInput{ItemID: d.ZiaratID, Self: d.Self})
	}
	return req
}
