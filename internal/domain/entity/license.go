package entity

import "time"

// LicenseStatus enumerates the lifecycle states of a license key.
type LicenseStatus string

const (
	LicenseStatusUnused  LicenseStatus = "Unused"
	LicenseStatusActive  LicenseStatus = "Active"
	LicenseStatusUsed    LicenseStatus = "Used"
	LicenseStatusExpired LicenseStatus = "Expired"
)

// LicensePlan enumerates the purchasable plan types.
type LicensePlan string

const (
	LicensePlanAnnual   LicensePlan = "annual"
	LicensePlanLifetime LicensePlan = "lifetime"
	LicensePlanTrial    LicensePlan = "trial"
)

// UnassignedShop is the shop placeholder for a license not yet handed out.
const UnassignedShop = "-"

// License is a time-bounded activation credential for the POS software,
// identified by a unique key of the form AGRO-####-####-####.
type License struct {
	ID       int64         `json:"id"`
	Key      string        `json:"key"`
	Status   LicenseStatus `json:"status"`
	Shop     string        `json:"shop"`
	Expiry   string        `json:"expiry"`  // calendar date, UTC, 2006-01-02
	Created  string        `json:"created"` // calendar date, UTC, 2006-01-02
	Phone    string        `json:"phone,omitempty"`
	ClientID *int64        `json:"clientId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// DateLayout is the calendar-date format used for license expiry and creation.
const DateLayout = "2006-01-02"

// IsExpired reports whether the license expiry date lies before the given
// moment. Malformed expiry dates are treated as not expired.
func (l *License) IsExpired(now time.Time) bool {
	expiry, err := time.ParseInLocation(DateLayout, l.Expiry, time.UTC)
	if err != nil {
		return false
	}

	return expiry.Before(now.UTC().Truncate(24 * time.Hour))
}
