package statistics

import (
	"context"
	"math"

	"github.com/staffhub-io/staffdir-backend-go/internal/domain/client"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/statistics"
)

type StatisticsServiceImpl struct {
	statsRepo  statistics.StatisticsRepository
	clientRepo client.ClientRepository
}

func NewStatisticsService(
	statsRepo statistics.StatisticsRepository,
	clientRepo client.ClientRepository,
) statistics.StatisticsService {
	return &StatisticsServiceImpl{
		statsRepo:  statsRepo,
		clientRepo: clientRepo,
	}
}

// GetClientStatistics implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) GetClientStatistics(ctx context.Context, clientID int64) (*statistics.Summary, error) {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	counts, err := s.statsRepo.GetOTFaceCounts(ctx, clientID)
	if err != nil {
		return nil, err
	}

	summary := BuildSummary(counts)
	return &summary, nil
}

// percentage rounds n/d to the nearest whole percent. A zero denominator
// yields 0, never an error.
func percentage(n, d int64) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d) * 100))
}

// BuildSummary derives the full statistics payload from one set of raw
// counts. The flat fields and the nested breakdown read the same inputs, so
// the two views can never disagree.
func BuildSummary(c statistics.Counts) statistics.Summary {
	totalDevices := c.AndroidDevices + c.IOSDevices + c.OtherDevices

	return statistics.Summary{
		TotalStaff:    c.TotalStaff,
		ActiveStaff:   c.ActiveStaff,
		InactiveStaff: c.InactiveStaff,

		FaceRegistered:    c.FaceRegistered,
		FaceNotRegistered: c.FaceNotRegistered,

		OTWithFaceRegistered:       c.OTWithFace,
		OTWithoutFaceRegistered:    c.OTWithoutFace,
		NonOTWithFaceRegistered:    c.NonOTWithFace,
		NonOTWithoutFaceRegistered: c.NonOTWithoutFace,
		AllOTUsers:                 c.AllOT,
		AllNonOTUsers:              c.AllNonOT,

		StaffWithDevice:    c.StaffWithDevice,
		StaffWithoutDevice: c.StaffWithoutDevice,
		AndroidDevices:     c.AndroidDevices,
		IOSDevices:         c.IOSDevices,
		OtherDevices:       c.OtherDevices,
		TotalMobileDevices: totalDevices,

		TotalProjects:             c.TotalProjects,
		StaffJoinedLast30Days:     c.JoinedLast30Days,
		ProjectsStartedLast30Days: c.ProjectsStartedLast30Days,
		ProjectsEndedLast30Days:   c.ProjectsEndedLast30Days,

		ActiveStaffPercentage:           percentage(c.ActiveStaff, c.TotalStaff),
		StaffFaceRegistrationPercentage: percentage(c.FaceRegistered, c.TotalStaff),
		OTStaffPercentage:               percentage(c.AllOT, c.TotalStaff),
		NonOTStaffPercentage:            percentage(c.AllNonOT, c.TotalStaff),
		StaffWithDevicePercentage:       percentage(c.StaffWithDevice, c.TotalStaff),

		BreakdownSummary: statistics.BreakdownSummary{
			OTFace: statistics.OTFaceBreakdown{
				OTWithFace:       c.OTWithFace,
				OTWithoutFace:    c.OTWithoutFace,
				NonOTWithFace:    c.NonOTWithFace,
				NonOTWithoutFace: c.NonOTWithoutFace,
				AllOT:            c.AllOT,
				AllNonOT:         c.AllNonOT,
			},
			Devices: statistics.DeviceBreakdown{
				Android:           c.AndroidDevices,
				IOS:               c.IOSDevices,
				Other:             c.OtherDevices,
				Total:             totalDevices,
				AndroidPercentage: percentage(c.AndroidDevices, totalDevices),
				IOSPercentage:     percentage(c.IOSDevices, totalDevices),
				OtherPercentage:   percentage(c.OtherDevices, totalDevices),
			},
		},
	}
}
