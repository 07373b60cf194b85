package entity

import (
	"encoding/json"
	"time"
)

// Vendor verification lifecycle states.
const (
	VerificationNone     = "none"
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// Vendor types accepted by the API.
const (
	VendorTypeSeller  = "seller"
	VendorTypeService = "service"
	VendorTypeBoth    = "both"
)

// Vendor represents a seller or service provider account.
type Vendor struct {
	VendorID                int64             `json:"vendor_id"`
	CompanyName             string            `json:"company_name"`
	Email                   string            `json:"email"`
	PasswordHash            string            `json:"-"`
	Phone                   *string           `json:"phone"`
	Location                *string           `json:"location"`
	Latitude                *float64          `json:"latitude"`
	Longitude               *float64          `json:"longitude"`
	LogoURL                 *string           `json:"logo_url"`
	VendorType              string            `json:"vendor_type"`
	Rating                  *float64          `json:"rating"`
	JobType                 *string           `json:"job_type"`
	Description             *string           `json:"vendor_description"`
	WhatsappLink            *string           `json:"whatsapp_link"`
	ServiceRadiusKm         int               `json:"service_radius_km"`
	VisitingCardURL         *string           `json:"visiting_card_url"`
	ShopAddress             *string           `json:"shop_address"`
	ServiceLocations        ServiceLocations  `json:"service_locations"`
	VerificationStatus      string            `json:"verification_status"`
	VerificationRequestedAt *time.Time        `json:"verification_requested_at"`
	VerificationDocuments   *VerificationDocs `json:"verification_documents"`
}

// ServiceLocation describes one area a vendor covers.
type ServiceLocation struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// ServiceLocations is stored as JSON text in the vendors table.
type ServiceLocations []ServiceLocation

// DecodeServiceLocations parses the stored JSON text. Malformed input degrades
// to an empty list; callers must never see a decode error.
func DecodeServiceLocations(raw *string) ServiceLocations {
	if raw == nil || *raw == "" {
		return ServiceLocations{}
	}
	var locs ServiceLocations
	if err := json.Unmarshal([]byte(*raw), &locs); err != nil {
		return ServiceLocations{}
	}
	if locs == nil {
		return ServiceLocations{}
	}
	return locs
}

// Encode serialises the list for storage, or nil when there is nothing to store.
func (l ServiceLocations) Encode() *string {
	if len(l) == 0 {
		return nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}

// VerificationDocs is the document set submitted with a verification request.
// All four fields are optional; absent ones are stored as null.
type VerificationDocs struct {
	NIDNo               *string `json:"nid_no"`
	LivePhotoURL        *string `json:"live_photo_url"`
	TradeLicenseID      *string `json:"trade_license_id"`
	TrainingCertificate *string `json:"training_certificate"`
}

// Empty reports whether no document field is present.
func (d VerificationDocs) Empty() bool {
	return d.NIDNo == nil && d.LivePhotoURL == nil && d.TradeLicenseID == nil && d.TrainingCertificate == nil
}

// DecodeVerificationDocs parses the stored JSON text, degrading to nil on failure.
func DecodeVerificationDocs(raw *string) *VerificationDocs {
	if raw == nil || *raw == "" {
		return nil
	}
	var docs VerificationDocs
	if err := json.Unmarshal([]byte(*raw), &docs); err != nil {
		return nil
	}
	return &docs
}

// Encode serialises the document set for storage.
func (d VerificationDocs) Encode() string {
	data, err := json.Marshal(d)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// ValidVendorType reports whether the value is one of the three accepted literals.
func ValidVendorType(value string) bool {
	switch value {
	case VendorTypeSeller, VendorTypeService, VendorTypeBoth:
		return true
	}
	return false
}
