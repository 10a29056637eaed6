package staff

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Document is an opaque key-value blob (permission sets, device payloads).
// Its schema is owned by the out-of-scope write path and is passed through
// unchanged.
type Document map[string]interface{}

// StaffRecord is one (client, user) assignment. client_id is immutable and
// defines tenancy for every query and aggregate.
type StaffRecord struct {
	ID             int64
	ClientID       int64
	UserID         int64
	RoleID         *int64
	JoiningDate    *time.Time
	IsActive       bool
	StaffCode      *string
	VendorID       *int64
	AppPermissions Document
	WebPermissions Document
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PersonProfile struct {
	UserID      int64
	UserName    string
	Email       *string
	Phone       *string
	DateOfBirth *time.Time
	Address     *string
	Skills      *string
	Education   *string
}

// RoleDefinition is zero-or-one per staff record; absence means "no role
// assigned", not an error.
type RoleDefinition struct {
	ID             int64
	ClientID       int64
	RoleName       string
	UseOvertime    bool
	OTHourlyRate   *decimal.Decimal
	AllowLeave     bool
	AllowInsurance bool
}

// SalaryRecord carries an overtime opt-in independent of the role's.
type SalaryRecord struct {
	UserID      int64
	BasicSalary *decimal.Decimal
	TakeHome    *decimal.Decimal
	CTC         *decimal.Decimal
	Currency    *string
	UseOvertime bool
}

type PhotoRecord struct {
	ID            int64
	UserID        int64
	PhotoType     string
	SavedToVector bool
	CreatedAt     time.Time
}

// PhotoTypeFace marks the photos whose presence signals face registration.
const PhotoTypeFace = "face"

type DeviceToken struct {
	ID           int64
	UserID       int64
	DeviceType   string
	RegisteredAt time.Time
}

const (
	DeviceCategoryAndroid = "android"
	DeviceCategoryIOS     = "ios"
	DeviceCategoryOther   = "other"
)

// DeviceCategory folds a raw device type string into android/ios/other.
func DeviceCategory(deviceType string) string {
	switch strings.ToLower(strings.TrimSpace(deviceType)) {
	case DeviceCategoryAndroid:
		return DeviceCategoryAndroid
	case DeviceCategoryIOS:
		return DeviceCategoryIOS
	default:
		return DeviceCategoryOther
	}
}

type AccommodationRecord struct {
	ID      int64
	Name    string
	Address *string
}

// CommunicationRecord optionally references an accommodation; the reference
// is resolved in the same lookup, never by a second round trip.
type CommunicationRecord struct {
	ID            int64
	UserID        int64
	ContactType   string
	Value         *string
	Accommodation *AccommodationRecord
}

// StaffRow is a base page row: the staff record plus its zero-or-one role,
// before enrichment.
type StaffRow struct {
	StaffRecord
	Role *RoleDefinition
}

// Lookups holds the per-user enrichment maps for one page.
type Lookups struct {
	Profiles       map[int64]PersonProfile
	Salaries       map[int64]SalaryRecord
	Photos         map[int64][]PhotoRecord
	Devices        map[int64][]DeviceToken
	Communications map[int64][]CommunicationRecord
}
