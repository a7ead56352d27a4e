package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const organizationKey = "organization_id"

// legacyOrgParams adalah urutan nama parameter warisan frontend lama;
// yang pertama berisi angka valid menang.
var legacyOrgParams = []string{"organization", "org", "selected_org", "agency_id"}

// OrganizationContext mengekstrak konteks organisasi dari request: header
// X-Organization-ID diutamakan, lalu jatuh ke parameter query warisan.
// Request tanpa organisasi tetap lolos (org 0 = tanpa filter).
func OrganizationContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID := parseOrgID(c.GetHeader("X-Organization-ID"))
		if orgID == 0 {
			for _, name := range legacyOrgParams {
				if orgID = parseOrgID(c.Query(name)); orgID > 0 {
					break
				}
			}
		}
		c.Set(organizationKey, orgID)
		c.Next()
	}
}

func parseOrgID(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// GetOrganizationID membaca konteks organisasi yang sudah diekstrak.
func GetOrganizationID(c *gin.Context) int64 {
	if c == nil {
		return 0
	}
	if v, ok := c.Get(organizationKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
