package staff

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/statistics"
	"github.com/staffhub-io/staffdir-backend-go/internal/pkg/pagination"
)

// StaffResponse is the flattened, UI-ready record. Nullable joined entities
// contribute explicit null fields rather than omitting them, so the shape is
// stable for consumers.
type StaffResponse struct {
	StaffID             int64    `json:"staff_id"`
	ClientID            int64    `json:"client_id"`
	UserID              int64    `json:"user_id"`
	RoleID              *int64   `json:"role_id"`
	StaffCode           *string  `json:"staff_code"`
	VendorID            *int64   `json:"vendor_id"`
	Status              string   `json:"status"`
	JoiningDate         *string  `json:"joining_date"`
	DaysSinceOnboarding *int     `json:"days_since_onboarding"`
	AppPermissions      Document `json:"app_permissions"`
	WebPermissions      Document `json:"web_permissions"`
	CreatedAt           string   `json:"created_at"`

	UserName    *string `json:"user_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Age         *int    `json:"age"`
	Address     *string `json:"address"`
	Skills      *string `json:"skills"`
	Education   *string `json:"education"`

	RoleName        *string          `json:"role_name"`
	RoleUseOvertime *bool            `json:"role_use_overtime"`
	OTHourlyRate    *decimal.Decimal `json:"ot_hourly_rate"`
	AllowLeave      *bool            `json:"allow_leave"`
	AllowInsurance  *bool            `json:"allow_insurance"`

	BasicSalary       *decimal.Decimal `json:"basic_salary"`
	TakeHome          *decimal.Decimal `json:"take_home"`
	CTC               *decimal.Decimal `json:"ctc"`
	Currency          *string          `json:"currency"`
	SalaryUseOvertime *bool            `json:"salary_use_overtime"`

	OTApplicable bool `json:"ot_applicable"`

	IsFaceRegistered  bool `json:"is_face_registered"`
	FacePhotosCount   int  `json:"face_photos_count"`
	VectorSavedPhotos int  `json:"vector_saved_photos"`

	RegisteredDevices      int      `json:"registered_devices"`
	DeviceTypes            []string `json:"device_types"`
	LastDeviceRegistration *string  `json:"last_device_registration"`

	Communications []CommunicationResponse `json:"communications"`
}

type CommunicationResponse struct {
	ContactType   string                 `json:"contact_type"`
	Value         *string                `json:"value"`
	Accommodation *AccommodationResponse `json:"accommodation"`
}

type AccommodationResponse struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

type ListResponse struct {
	Staffs     []StaffResponse     `json:"staffs"`
	Pagination pagination.Meta     `json:"pagination"`
	Summary    *statistics.Summary `json:"summary"`
}
