package statistics

// Counts are the raw values produced by the single-pass cross-tab aggregate.
// Percentages are never stored; they are recomputed from these counts on
// every request.
type Counts struct {
	TotalStaff    int64
	ActiveStaff   int64
	InactiveStaff int64

	FaceRegistered    int64
	FaceNotRegistered int64

	OTWithFace       int64
	OTWithoutFace    int64
	NonOTWithFace    int64
	NonOTWithoutFace int64
	AllOT            int64
	AllNonOT         int64

	StaffWithDevice    int64
	StaffWithoutDevice int64
	AndroidDevices     int64
	IOSDevices         int64
	OtherDevices       int64

	TotalProjects             int64
	JoinedLast30Days          int64
	ProjectsStartedLast30Days int64
	ProjectsEndedLast30Days   int64
}

// Summary is the full statistics payload: flat counts, derived percentages,
// and the nested breakdown view. Flat and nested numbers are built from the
// same Counts so they are always mutually consistent.
type Summary struct {
	TotalStaff    int64 `json:"total_staff"`
	ActiveStaff   int64 `json:"active_staff"`
	InactiveStaff int64 `json:"inactive_staff"`

	FaceRegistered    int64 `json:"face_registered"`
	FaceNotRegistered int64 `json:"face_not_registered"`

	OTWithFaceRegistered       int64 `json:"ot_with_face_registered"`
	OTWithoutFaceRegistered    int64 `json:"ot_without_face_registered"`
	NonOTWithFaceRegistered    int64 `json:"non_ot_with_face_registered"`
	NonOTWithoutFaceRegistered int64 `json:"non_ot_without_face_registered"`
	AllOTUsers                 int64 `json:"all_ot_users"`
	AllNonOTUsers              int64 `json:"all_non_ot_users"`

	StaffWithDevice    int64 `json:"staff_with_device"`
	StaffWithoutDevice int64 `json:"staff_without_device"`
	AndroidDevices     int64 `json:"android_devices"`
	IOSDevices         int64 `json:"ios_devices"`
	OtherDevices       int64 `json:"other_devices"`
	TotalMobileDevices int64 `json:"total_mobile_devices"`

	TotalProjects             int64 `json:"total_projects"`
	StaffJoinedLast30Days     int64 `json:"staff_joined_last_30_days"`
	ProjectsStartedLast30Days int64 `json:"projects_started_last_30_days"`
	ProjectsEndedLast30Days   int64 `json:"projects_ended_last_30_days"`

	ActiveStaffPercentage           int `json:"active_staff_percentage"`
	StaffFaceRegistrationPercentage int `json:"staff_face_registration_percentage"`
	OTStaffPercentage               int `json:"ot_staff_percentage"`
	NonOTStaffPercentage            int `json:"non_ot_staff_percentage"`
	StaffWithDevicePercentage       int `json:"staff_with_device_percentage"`

	BreakdownSummary BreakdownSummary `json:"breakdown_summary"`
}

// BreakdownSummary groups the cross-tab and device numbers for presentation.
type BreakdownSummary struct {
	OTFace  OTFaceBreakdown `json:"ot_face"`
	Devices DeviceBreakdown `json:"devices"`
}

type OTFaceBreakdown struct {
	OTWithFace       int64 `json:"ot_with_face"`
	OTWithoutFace    int64 `json:"ot_without_face"`
	NonOTWithFace    int64 `json:"non_ot_with_face"`
	NonOTWithoutFace int64 `json:"non_ot_without_face"`
	AllOT            int64 `json:"all_ot"`
	AllNonOT         int64 `json:"all_non_ot"`
}

type DeviceBreakdown struct {
	Android           int64 `json:"android"`
	IOS               int64 `json:"ios"`
	Other             int64 `json:"other"`
	Total             int64 `json:"total"`
	AndroidPercentage int   `json:"android_percentage"`
	IOSPercentage     int   `json:"ios_percentage"`
	OtherPercentage   int   `json:"other_percentage"`
}
