package handlers

import (
	"net/http"
	"sync"

	"umrah-backend/internal/http/middleware"
	"umrah-backend/internal/queue"
	"umrah-backend/internal/repositories"
	"umrah-backend/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	publisherMu      sync.RWMutex
	packagePublisher *queue.Publisher
)

// SetPublisher memasang publisher event paket dari bootstrap. Nil berarti
// event dimatikan.
func SetPublisher(p *queue.Publisher) {
	publisherMu.Lock()
	defer publisherMu.Unlock()
	packagePublisher = p
}

func getPublisher() *queue.Publisher {
	publisherMu.RLock()
	defer publisherMu.RUnlock()
	return packagePublisher
}

func pricingService(c *gin.Context) services.PricingService {
	return services.PricingService{RequestID: middleware.GetRequestID(c)}
}

func packageService(c *gin.Context) services.PackageService {
	return services.PackageService{
		Repo:      repositories.PackageRepository{},
		Pricing:   pricingService(c),
		Publisher: getPublisher(),
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /calculator/quote — hitung seluruh kategori biaya tanpa menyimpan.
func QuotePackage(c *gin.Context) {
	var req services.QuoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.OrganizationID == 0 {
		req.OrganizationID = middleware.GetOrganizationID(c)
	}

	result, err := pricingService(c).Quote(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /calculator/transport-options — pilihan sector sesuai booking option
// dan visa type yang sedang aktif di kalkulator.
func GetTransportOptions(c *gin.Context) {
	var req services.QuoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.OrganizationID == 0 {
		req.OrganizationID = middleware.GetOrganizationID(c)
	}

	sectors, err := pricingService(c).AvailableSectors(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sectors)
}

// GET /custom-umrah-packages/
func GetCustomPackages(c *gin.Context) {
	packages, err := packageService(c).List(middleware.GetOrganizationID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data paket", err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /custom-umrah-packages/:id — payload lengkap untuk mengisi ulang form;
// submit ulang tanpa perubahan menghasilkan record yang ekuivalen.
func GetCustomPackage(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	p, err := packageService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /custom-umrah-packages/ — "Add to Calculations". Query number yang
// sudah punya paket membuat submit jadi update (200), selain itu create (201).
func CreateCustomPackage(c *gin.Context) {
	var req services.SubmitRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.OrganizationID == 0 {
		req.OrganizationID = middleware.GetOrganizationID(c)
	}

	result, err := packageService(c).Submit(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

// PUT /custom-umrah-packages/:id
func UpdateCustomPackage(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req services.SubmitRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.OrganizationID == 0 {
		req.OrganizationID = middleware.GetOrganizationID(c)
	}

	p, err := packageService(c).Update(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /custom-umrah-packages/:id
func DeleteCustomPackage(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := packageService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "paket dihapus"})
}

// GET /custom-umrah-packages/:id/quotation — PDF quotation paket.
func GetPackageQuotationPDF(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	svc := services.DocsService{
		PackageRepo: repositories.PackageRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateQuotation(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
