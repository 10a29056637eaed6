package staff

import (
	"math"
	"time"

	"github.com/staffhub-io/staffdir-backend-go/internal/domain/staff"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"

	// Average Gregorian year, leap days included. Matches how ages are
	// reported elsewhere in the product.
	daysPerYear = 365.25
)

// AssembleStaff flattens one base row plus its enrichment lookups into the
// response record. Every joined entity is optional: a missing profile,
// salary, or role leaves its fields null without failing the row.
func AssembleStaff(row staff.StaffRow, lookups staff.Lookups, now time.Time) staff.StaffResponse {
	resp := staff.StaffResponse{
		StaffID:        row.ID,
		ClientID:       row.ClientID,
		UserID:         row.UserID,
		RoleID:         row.RoleID,
		StaffCode:      row.StaffCode,
		VendorID:       row.VendorID,
		Status:         statusLabel(row.IsActive),
		AppPermissions: row.AppPermissions,
		WebPermissions: row.WebPermissions,
		CreatedAt:      row.CreatedAt.Format(dateTimeLayout),
		DeviceTypes:    []string{},
		Communications: []staff.CommunicationResponse{},
	}

	if row.JoiningDate != nil {
		joined := row.JoiningDate.Format(dateLayout)
		days := daysBetween(*row.JoiningDate, now)
		resp.JoiningDate = &joined
		resp.DaysSinceOnboarding = &days
	}

	if profile, ok := lookups.Profiles[row.UserID]; ok {
		resp.UserName = &profile.UserName
		resp.Email = profile.Email
		resp.Phone = profile.Phone
		resp.Address = profile.Address
		resp.Skills = profile.Skills
		resp.Education = profile.Education
		if profile.DateOfBirth != nil {
			dob := profile.DateOfBirth.Format(dateLayout)
			age := ageInYears(*profile.DateOfBirth, now)
			resp.DateOfBirth = &dob
			resp.Age = &age
		}
	}

	if row.Role != nil {
		resp.RoleName = &row.Role.RoleName
		resp.RoleUseOvertime = &row.Role.UseOvertime
		resp.OTHourlyRate = row.Role.OTHourlyRate
		resp.AllowLeave = &row.Role.AllowLeave
		resp.AllowInsurance = &row.Role.AllowInsurance
	}

	salary, hasSalary := lookups.Salaries[row.UserID]
	if hasSalary {
		resp.BasicSalary = salary.BasicSalary
		resp.TakeHome = salary.TakeHome
		resp.CTC = salary.CTC
		resp.Currency = salary.Currency
		resp.SalaryUseOvertime = &salary.UseOvertime
	}

	// Overtime applies when either the role or the salary record opts in.
	resp.OTApplicable = (row.Role != nil && row.Role.UseOvertime) || (hasSalary && salary.UseOvertime)

	photos := lookups.Photos[row.UserID]
	resp.IsFaceRegistered = len(photos) > 0
	for _, p := range photos {
		if p.PhotoType == staff.PhotoTypeFace {
			resp.FacePhotosCount++
		}
		if p.SavedToVector {
			resp.VectorSavedPhotos++
		}
	}

	devices := lookups.Devices[row.UserID]
	resp.RegisteredDevices = len(devices)
	if len(devices) > 0 {
		seen := make(map[string]bool, len(devices))
		latest := devices[0].RegisteredAt
		for _, d := range devices {
			if !seen[d.DeviceType] {
				seen[d.DeviceType] = true
				resp.DeviceTypes = append(resp.DeviceTypes, d.DeviceType)
			}
			if d.RegisteredAt.After(latest) {
				latest = d.RegisteredAt
			}
		}
		last := latest.Format(dateTimeLayout)
		resp.LastDeviceRegistration = &last
	}

	for _, c := range lookups.Communications[row.UserID] {
		comm := staff.CommunicationResponse{
			ContactType: c.ContactType,
			Value:       c.Value,
		}
		if c.Accommodation != nil {
			comm.Accommodation = &staff.AccommodationResponse{
				Name:    c.Accommodation.Name,
				Address: c.Accommodation.Address,
			}
		}
		resp.Communications = append(resp.Communications, comm)
	}

	return resp
}

func statusLabel(isActive bool) string {
	if isActive {
		return string(staff.StatusActive)
	}
	return string(staff.StatusInactive)
}

// daysBetween counts whole elapsed days; a future date yields a negative
// count rather than clamping to zero.
func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

func ageInYears(dateOfBirth, now time.Time) int {
	days := now.Sub(dateOfBirth).Hours() / 24
	return int(math.Floor(days / daysPerYear))
}
