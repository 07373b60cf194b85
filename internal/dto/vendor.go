package dto

import (
	"math"
	"strconv"
	"strings"

	"github.com/nibashhq/marketplace-api/internal/entity"
)

// UpdateProfileRequest carries the PATCH /api/vendors/me payload. Required
// fields are plain strings; optional ones are pointers so absent and null can
// be told apart from zero values.
type UpdateProfileRequest struct {
	CompanyName      string                  `json:"company_name"`
	Phone            string                  `json:"phone"`
	Location         string                  `json:"location"`
	Email            string                  `json:"email"`
	LogoURL          *string                 `json:"logo_url"`
	JobType          *string                 `json:"job_type"`
	Description      *string                 `json:"vendor_description"`
	Latitude         *float64                `json:"latitude"`
	Longitude        *float64                `json:"longitude"`
	WhatsappLink     *string                 `json:"whatsapp_link"`
	ServiceRadiusKm  *int                    `json:"service_radius_km"`
	VisitingCardURL  *string                 `json:"visiting_card_url"`
	ShopAddress      *string                 `json:"shop_address"`
	ServiceLocations entity.ServiceLocations `json:"service_locations"`
}

// UpdateTypeRequest carries the PATCH /api/vendors/me/type payload.
type UpdateTypeRequest struct {
	VendorType string `json:"vendor_type"`
}

// VerifyRequest carries the POST /api/vendors/me/verify payload. At least one
// field must be present.
type VerifyRequest struct {
	NIDNo               *string `json:"nid_no"`
	LivePhotoURL        *string `json:"live_photo_url"`
	TradeLicenseID      *string `json:"trade_license_id"`
	TrainingCertificate *string `json:"training_certificate"`
}

// UpdateLocationRequest carries the PATCH /api/vendors/me/location payload.
// Coordinates may arrive as JSON numbers or numeric strings; parsing is
// deferred so presence and validity can be reported separately.
type UpdateLocationRequest struct {
	Latitude     RawNumber `json:"latitude"`
	Longitude    RawNumber `json:"longitude"`
	LocationName *string   `json:"location_name"`
}

// RawNumber records whether a JSON key was present and keeps its raw text
// until the caller asks for a float.
type RawNumber struct {
	raw     string
	present bool
}

// UnmarshalJSON accepts numbers and quoted numbers alike.
func (n *RawNumber) UnmarshalJSON(data []byte) error {
	n.present = true
	n.raw = strings.Trim(string(data), `"`)
	return nil
}

// Present reports whether the key appeared in the payload at all.
func (n RawNumber) Present() bool { return n.present }

// Float parses the raw value, rejecting non-numeric and non-finite input.
func (n RawNumber) Float() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(n.raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
