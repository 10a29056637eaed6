package staff

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/staffhub-io/staffdir-backend-go/internal/domain/client"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/staff"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStaffRepo struct {
	rows    []staff.StaffRow
	total   int64
	err     error
	calls   int32
	gotOpts staff.ListOptions
}

func (s *stubStaffRepo) List(_ context.Context, _ int64, opts staff.ListOptions) ([]staff.StaffRow, int64, error) {
	atomic.AddInt32(&s.calls, 1)
	s.gotOpts = opts
	return s.rows, s.total, s.err
}

// stubEnrichRepo counts every lookup; the empty-page short circuit must keep
// all counters at zero.
type stubEnrichRepo struct {
	lookups staff.Lookups
	calls   int32
}

func (s *stubEnrichRepo) ProfilesByUserIDs(_ context.Context, _ []int64) (map[int64]staff.PersonProfile, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.lookups.Profiles, nil
}

func (s *stubEnrichRepo) SalariesByUserIDs(_ context.Context, _ []int64) (map[int64]staff.SalaryRecord, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.lookups.Salaries, nil
}

func (s *stubEnrichRepo) PhotosByUserIDs(_ context.Context, _ []int64) (map[int64][]staff.PhotoRecord, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.lookups.Photos, nil
}

func (s *stubEnrichRepo) DeviceTokensByUserIDs(_ context.Context, _ []int64) (map[int64][]staff.DeviceToken, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.lookups.Devices, nil
}

func (s *stubEnrichRepo) CommunicationsByUserIDs(_ context.Context, _ []int64) (map[int64][]staff.CommunicationRecord, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.lookups.Communications, nil
}

type stubStatsRepo struct {
	counts statistics.Counts
	err    error
}

func (s *stubStatsRepo) GetOTFaceCounts(_ context.Context, _ int64) (statistics.Counts, error) {
	return s.counts, s.err
}

type stubClientRepo struct {
	err error
}

func (s *stubClientRepo) GetByID(_ context.Context, id int64) (client.Client, error) {
	if s.err != nil {
		return client.Client{}, s.err
	}
	return client.Client{ID: id, ClientName: "Acme"}, nil
}

func newTestService(staffRepo *stubStaffRepo, enrichRepo *stubEnrichRepo, statsRepo *stubStatsRepo, clientRepo *stubClientRepo) staff.StaffService {
	if enrichRepo.lookups.Profiles == nil {
		enrichRepo.lookups = staff.Lookups{
			Profiles:       map[int64]staff.PersonProfile{},
			Salaries:       map[int64]staff.SalaryRecord{},
			Photos:         map[int64][]staff.PhotoRecord{},
			Devices:        map[int64][]staff.DeviceToken{},
			Communications: map[int64][]staff.CommunicationRecord{},
		}
	}
	return NewStaffService(staffRepo, enrichRepo, statsRepo, clientRepo, nil)
}

func TestListStaffs_AssemblesPage(t *testing.T) {
	joining := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	staffRepo := &stubStaffRepo{
		rows: []staff.StaffRow{
			{StaffRecord: staff.StaffRecord{ID: 1, ClientID: 7, UserID: 100, IsActive: true, JoiningDate: &joining}},
			{StaffRecord: staff.StaffRecord{ID: 2, ClientID: 7, UserID: 200, IsActive: false}},
		},
		total: 12,
	}
	enrichRepo := &stubEnrichRepo{
		lookups: staff.Lookups{
			Profiles: map[int64]staff.PersonProfile{
				100: {UserID: 100, UserName: "Jane"},
			},
			Salaries:       map[int64]staff.SalaryRecord{},
			Photos:         map[int64][]staff.PhotoRecord{100: {{ID: 1, UserID: 100, PhotoType: staff.PhotoTypeFace}}},
			Devices:        map[int64][]staff.DeviceToken{},
			Communications: map[int64][]staff.CommunicationRecord{},
		},
	}
	statsRepo := &stubStatsRepo{counts: statistics.Counts{TotalStaff: 12, ActiveStaff: 9}}

	svc := newTestService(staffRepo, enrichRepo, statsRepo, &stubClientRepo{})
	resp, err := svc.ListStaffs(context.Background(), 7, staff.ListParams{Limit: "2"})

	require.NoError(t, err)
	require.Len(t, resp.Staffs, 2)

	assert.Equal(t, int64(1), resp.Staffs[0].StaffID)
	assert.Equal(t, "active", resp.Staffs[0].Status)
	require.NotNil(t, resp.Staffs[0].UserName)
	assert.Equal(t, "Jane", *resp.Staffs[0].UserName)
	assert.True(t, resp.Staffs[0].IsFaceRegistered)

	assert.Equal(t, "inactive", resp.Staffs[1].Status)
	assert.Nil(t, resp.Staffs[1].UserName)
	assert.False(t, resp.Staffs[1].IsFaceRegistered)

	assert.Equal(t, int64(12), resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 2, resp.Pagination.Limit)
	assert.Equal(t, 6, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
	assert.False(t, resp.Pagination.HasPrev)

	require.NotNil(t, resp.Summary)
	assert.Equal(t, int64(12), resp.Summary.TotalStaff)
	assert.Equal(t, 75, resp.Summary.ActiveStaffPercentage)

	assert.Equal(t, int32(5), atomic.LoadInt32(&enrichRepo.calls), "one call per lookup")
}

func TestListStaffs_NormalizesParams(t *testing.T) {
	staffRepo := &stubStaffRepo{}
	svc := newTestService(staffRepo, &stubEnrichRepo{}, &stubStatsRepo{}, &stubClientRepo{})

	_, err := svc.ListStaffs(context.Background(), 7, staff.ListParams{
		Limit:     "9999",
		OrderBy:   "shoe_size",
		MinSalary: "200",
		MaxSalary: "100",
	})

	require.NoError(t, err)
	assert.Equal(t, staff.MaxLimit, staffRepo.gotOpts.Limit)
	assert.Equal(t, "joining_date", staffRepo.gotOpts.OrderBy)
	require.NotNil(t, staffRepo.gotOpts.MinSalary)
	assert.True(t, staffRepo.gotOpts.MinSalary.LessThan(*staffRepo.gotOpts.MaxSalary))
}

func TestListStaffs_EmptyPageSkipsEnrichment(t *testing.T) {
	enrichRepo := &stubEnrichRepo{}
	svc := newTestService(&stubStaffRepo{}, enrichRepo, &stubStatsRepo{}, &stubClientRepo{})

	resp, err := svc.ListStaffs(context.Background(), 7, staff.ListParams{})

	require.NoError(t, err)
	assert.Empty(t, resp.Staffs)
	assert.Equal(t, int32(0), atomic.LoadInt32(&enrichRepo.calls), "no lookups for an empty page")
	require.NotNil(t, resp.Summary)
	assert.Zero(t, resp.Summary.TotalStaff)
	assert.Zero(t, resp.Summary.ActiveStaffPercentage)
}

func TestListStaffs_ClientNotFound(t *testing.T) {
	staffRepo := &stubStaffRepo{}
	svc := newTestService(staffRepo, &stubEnrichRepo{}, &stubStatsRepo{}, &stubClientRepo{err: client.ErrClientNotFound})

	_, err := svc.ListStaffs(context.Background(), 404, staff.ListParams{})

	require.ErrorIs(t, err, client.ErrClientNotFound)
	assert.Equal(t, int32(0), atomic.LoadInt32(&staffRepo.calls), "missing client never reaches the list query")
}

func TestListStaffs_ListErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	svc := newTestService(&stubStaffRepo{err: boom}, &stubEnrichRepo{}, &stubStatsRepo{}, &stubClientRepo{})

	_, err := svc.ListStaffs(context.Background(), 7, staff.ListParams{})

	require.ErrorIs(t, err, boom)
}

func TestListStaffs_DuplicateUserIDsCollapse(t *testing.T) {
	rows := []staff.StaffRow{
		{StaffRecord: staff.StaffRecord{ID: 1, ClientID: 7, UserID: 100}},
		{StaffRecord: staff.StaffRecord{ID: 2, ClientID: 7, UserID: 100}},
		{StaffRecord: staff.StaffRecord{ID: 3, ClientID: 7, UserID: 200}},
	}
	ids := pageUserIDs(rows)
	assert.Equal(t, []int64{100, 200}, ids)
}
