package staff

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func emptyLookups() staff.Lookups {
	return staff.Lookups{
		Profiles:       map[int64]staff.PersonProfile{},
		Salaries:       map[int64]staff.SalaryRecord{},
		Photos:         map[int64][]staff.PhotoRecord{},
		Devices:        map[int64][]staff.DeviceToken{},
		Communications: map[int64][]staff.CommunicationRecord{},
	}
}

func TestAssembleStaff_BareRecord(t *testing.T) {
	now := date(2025, time.June, 15)
	row := staff.StaffRow{
		StaffRecord: staff.StaffRecord{
			ID:        10,
			ClientID:  1,
			UserID:    100,
			IsActive:  true,
			CreatedAt: date(2024, time.January, 2),
		},
	}

	resp := AssembleStaff(row, emptyLookups(), now)

	assert.Equal(t, int64(10), resp.StaffID)
	assert.Equal(t, "active", resp.Status)
	assert.Nil(t, resp.JoiningDate)
	assert.Nil(t, resp.DaysSinceOnboarding)
	assert.Nil(t, resp.UserName)
	assert.Nil(t, resp.Age)
	assert.Nil(t, resp.RoleName)
	assert.Nil(t, resp.BasicSalary)
	assert.Nil(t, resp.SalaryUseOvertime)
	assert.False(t, resp.OTApplicable)
	assert.False(t, resp.IsFaceRegistered)
	assert.Zero(t, resp.FacePhotosCount)
	assert.Zero(t, resp.RegisteredDevices)
	assert.Nil(t, resp.LastDeviceRegistration)
	assert.NotNil(t, resp.DeviceTypes)
	assert.Empty(t, resp.DeviceTypes)
	assert.NotNil(t, resp.Communications)
	assert.Empty(t, resp.Communications)
	assert.Equal(t, "2024-01-02 00:00:00", resp.CreatedAt)
}

func TestAssembleStaff_DaysSinceOnboarding(t *testing.T) {
	now := date(2025, time.June, 15)
	joining := date(2025, time.June, 1)
	row := staff.StaffRow{
		StaffRecord: staff.StaffRecord{ID: 1, UserID: 100, JoiningDate: &joining},
	}

	resp := AssembleStaff(row, emptyLookups(), now)

	require.NotNil(t, resp.JoiningDate)
	assert.Equal(t, "2025-06-01", *resp.JoiningDate)
	require.NotNil(t, resp.DaysSinceOnboarding)
	assert.Equal(t, 14, *resp.DaysSinceOnboarding)
	assert.Equal(t, "inactive", resp.Status)
}

func TestAssembleStaff_FutureJoiningDateGoesNegative(t *testing.T) {
	now := date(2025, time.June, 15)
	joining := date(2025, time.June, 20)
	row := staff.StaffRow{
		StaffRecord: staff.StaffRecord{ID: 1, UserID: 100, JoiningDate: &joining},
	}

	resp := AssembleStaff(row, emptyLookups(), now)

	require.NotNil(t, resp.DaysSinceOnboarding)
	assert.Equal(t, -5, *resp.DaysSinceOnboarding)
}

func TestAssembleStaff_AgeUsesAverageYearLength(t *testing.T) {
	// Born 1990-06-15, observed 2025-06-14: one day short of the calendar
	// birthday, but 12783 days / 365.25 is just under 35.
	now := date(2025, time.June, 14)
	dob := date(1990, time.June, 15)
	lookups := emptyLookups()
	lookups.Profiles[100] = staff.PersonProfile{UserID: 100, UserName: "Jane", DateOfBirth: &dob}

	row := staff.StaffRow{StaffRecord: staff.StaffRecord{ID: 1, UserID: 100}}
	resp := AssembleStaff(row, lookups, now)

	require.NotNil(t, resp.Age)
	assert.Equal(t, 34, *resp.Age)
	require.NotNil(t, resp.DateOfBirth)
	assert.Equal(t, "1990-06-15", *resp.DateOfBirth)
	require.NotNil(t, resp.UserName)
	assert.Equal(t, "Jane", *resp.UserName)
}

func TestAssembleStaff_OTApplicable(t *testing.T) {
	now := date(2025, time.June, 15)
	row := staff.StaffRow{StaffRecord: staff.StaffRecord{ID: 1, UserID: 100}}

	// Role opt-in alone.
	withRole := row
	withRole.Role = &staff.RoleDefinition{ID: 5, RoleName: "Foreman", UseOvertime: true}
	resp := AssembleStaff(withRole, emptyLookups(), now)
	assert.True(t, resp.OTApplicable)

	// Salary opt-in alone.
	lookups := emptyLookups()
	lookups.Salaries[100] = staff.SalaryRecord{UserID: 100, UseOvertime: true}
	resp = AssembleStaff(row, lookups, now)
	assert.True(t, resp.OTApplicable)

	// Both present, both off.
	withRole.Role.UseOvertime = false
	lookups.Salaries[100] = staff.SalaryRecord{UserID: 100, UseOvertime: false}
	resp = AssembleStaff(withRole, lookups, now)
	assert.False(t, resp.OTApplicable)
	require.NotNil(t, resp.SalaryUseOvertime)
	assert.False(t, *resp.SalaryUseOvertime)
}

func TestAssembleStaff_PhotoCounts(t *testing.T) {
	now := date(2025, time.June, 15)
	lookups := emptyLookups()
	lookups.Photos[100] = []staff.PhotoRecord{
		{ID: 1, UserID: 100, PhotoType: staff.PhotoTypeFace, SavedToVector: true},
		{ID: 2, UserID: 100, PhotoType: staff.PhotoTypeFace, SavedToVector: false},
		{ID: 3, UserID: 100, PhotoType: "profile", SavedToVector: true},
	}

	row := staff.StaffRow{StaffRecord: staff.StaffRecord{ID: 1, UserID: 100}}
	resp := AssembleStaff(row, lookups, now)

	assert.True(t, resp.IsFaceRegistered)
	assert.Equal(t, 2, resp.FacePhotosCount)
	assert.Equal(t, 2, resp.VectorSavedPhotos)
}

func TestAssembleStaff_Devices(t *testing.T) {
	now := date(2025, time.June, 15)
	lookups := emptyLookups()
	lookups.Devices[100] = []staff.DeviceToken{
		{ID: 1, UserID: 100, DeviceType: "android", RegisteredAt: date(2025, time.January, 1)},
		{ID: 2, UserID: 100, DeviceType: "ios", RegisteredAt: date(2025, time.March, 10)},
		{ID: 3, UserID: 100, DeviceType: "android", RegisteredAt: date(2025, time.February, 5)},
	}

	row := staff.StaffRow{StaffRecord: staff.StaffRecord{ID: 1, UserID: 100}}
	resp := AssembleStaff(row, lookups, now)

	assert.Equal(t, 3, resp.RegisteredDevices)
	assert.Equal(t, []string{"android", "ios"}, resp.DeviceTypes)
	require.NotNil(t, resp.LastDeviceRegistration)
	assert.Equal(t, "2025-03-10 00:00:00", *resp.LastDeviceRegistration)
}

func TestAssembleStaff_Communications(t *testing.T) {
	now := date(2025, time.June, 15)
	phone := "+62-811"
	addr := "Dorm 4"
	lookups := emptyLookups()
	lookups.Communications[100] = []staff.CommunicationRecord{
		{ID: 1, UserID: 100, ContactType: "emergency", Value: &phone},
		{ID: 2, UserID: 100, ContactType: "lodging", Accommodation: &staff.AccommodationRecord{ID: 9, Name: "Site Camp", Address: &addr}},
	}

	row := staff.StaffRow{StaffRecord: staff.StaffRecord{ID: 1, UserID: 100}}
	resp := AssembleStaff(row, lookups, now)

	require.Len(t, resp.Communications, 2)
	assert.Equal(t, "emergency", resp.Communications[0].ContactType)
	assert.Nil(t, resp.Communications[0].Accommodation)
	require.NotNil(t, resp.Communications[1].Accommodation)
	assert.Equal(t, "Site Camp", resp.Communications[1].Accommodation.Name)
	require.NotNil(t, resp.Communications[1].Accommodation.Address)
	assert.Equal(t, "Dorm 4", *resp.Communications[1].Accommodation.Address)
}

func TestAssembleStaff_SalaryFields(t *testing.T) {
	now := date(2025, time.June, 15)
	basic := decimal.NewFromInt(1200)
	currency := "USD"
	lookups := emptyLookups()
	lookups.Salaries[100] = staff.SalaryRecord{
		UserID:      100,
		BasicSalary: &basic,
		Currency:    &currency,
	}

	row := staff.StaffRow{StaffRecord: staff.StaffRecord{ID: 1, UserID: 100}}
	resp := AssembleStaff(row, lookups, now)

	require.NotNil(t, resp.BasicSalary)
	assert.True(t, resp.BasicSalary.Equal(basic))
	require.NotNil(t, resp.Currency)
	assert.Equal(t, "USD", *resp.Currency)
	assert.Nil(t, resp.TakeHome)
	assert.Nil(t, resp.CTC)
}
