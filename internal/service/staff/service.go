package staff

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffhub-io/staffdir-backend-go/internal/domain/client"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/staff"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/statistics"
	"github.com/staffhub-io/staffdir-backend-go/internal/pkg/cache"
	"github.com/staffhub-io/staffdir-backend-go/internal/pkg/pagination"
	statisticsservice "github.com/staffhub-io/staffdir-backend-go/internal/service/statistics"
	"golang.org/x/sync/errgroup"
)

type StaffServiceImpl struct {
	staffRepo  staff.StaffRepository
	enrichRepo staff.EnrichmentRepository
	statsRepo  statistics.StatisticsRepository
	clientRepo client.ClientRepository
	cache      *cache.Client
}

// NewStaffService wires the read path. cacheClient may be nil, in which case
// every request goes straight to the database.
func NewStaffService(
	staffRepo staff.StaffRepository,
	enrichRepo staff.EnrichmentRepository,
	statsRepo statistics.StatisticsRepository,
	clientRepo client.ClientRepository,
	cacheClient *cache.Client,
) staff.StaffService {
	return &StaffServiceImpl{
		staffRepo:  staffRepo,
		enrichRepo: enrichRepo,
		statsRepo:  statsRepo,
		clientRepo: clientRepo,
		cache:      cacheClient,
	}
}

// ListStaffs implements staff.StaffService.
func (s *StaffServiceImpl) ListStaffs(ctx context.Context, clientID int64, params staff.ListParams) (*staff.ListResponse, error) {
	opts := staff.ParseListOptions(params)

	key := listCacheKey(clientID, opts)
	if s.cache != nil {
		if cached := s.readCache(ctx, key); cached != nil {
			return cached, nil
		}
	}

	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	var (
		rows   []staff.StaffRow
		total  int64
		counts statistics.Counts
	)

	// The page query and the summary aggregate are independent; run them in
	// parallel the same way the dashboard does.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, total, err = s.staffRepo.List(gCtx, clientID, opts)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.statsRepo.GetOTFaceCounts(gCtx, clientID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lookups, err := s.enrich(ctx, pageUserIDs(rows))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	staffs := make([]staff.StaffResponse, 0, len(rows))
	for _, row := range rows {
		staffs = append(staffs, AssembleStaff(row, lookups, now))
	}

	summary := statisticsservice.BuildSummary(counts)
	resp := &staff.ListResponse{
		Staffs:     staffs,
		Pagination: pagination.Calculate(opts.Page, opts.Limit, total),
		Summary:    &summary,
	}

	if s.cache != nil {
		s.writeCache(ctx, key, resp)
	}
	return resp, nil
}

// enrich fans out the five per-user lookups. An empty page short-circuits
// with empty maps and zero repository calls.
func (s *StaffServiceImpl) enrich(ctx context.Context, userIDs []int64) (staff.Lookups, error) {
	lookups := staff.Lookups{
		Profiles:       map[int64]staff.PersonProfile{},
		Salaries:       map[int64]staff.SalaryRecord{},
		Photos:         map[int64][]staff.PhotoRecord{},
		Devices:        map[int64][]staff.DeviceToken{},
		Communications: map[int64][]staff.CommunicationRecord{},
	}
	if len(userIDs) == 0 {
		return lookups, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lookups.Profiles, err = s.enrichRepo.ProfilesByUserIDs(gCtx, userIDs)
		return err
	})
	g.Go(func() error {
		var err error
		lookups.Salaries, err = s.enrichRepo.SalariesByUserIDs(gCtx, userIDs)
		return err
	})
	g.Go(func() error {
		var err error
		lookups.Photos, err = s.enrichRepo.PhotosByUserIDs(gCtx, userIDs)
		return err
	})
	g.Go(func() error {
		var err error
		lookups.Devices, err = s.enrichRepo.DeviceTokensByUserIDs(gCtx, userIDs)
		return err
	})
	g.Go(func() error {
		var err error
		lookups.Communications, err = s.enrichRepo.CommunicationsByUserIDs(gCtx, userIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return staff.Lookups{}, err
	}
	return lookups, nil
}

// pageUserIDs collects the distinct user ids of one page, preserving row
// order.
func pageUserIDs(rows []staff.StaffRow) []int64 {
	seen := make(map[int64]bool, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		if !seen[row.UserID] {
			seen[row.UserID] = true
			ids = append(ids, row.UserID)
		}
	}
	return ids
}

// listCacheKey hashes the normalized options so equivalent requests (after
// defaulting and clamping) share one cache entry.
func listCacheKey(clientID int64, opts staff.ListOptions) string {
	payload, _ := json.Marshal(opts)
	return fmt.Sprintf("staffdir:list:%d:%x", clientID, sha256.Sum256(payload))
}

// readCache returns the cached response or nil; cache failures only log.
func (s *StaffServiceImpl) readCache(ctx context.Context, key string) *staff.ListResponse {
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "staff list cache read failed", "error", err)
		return nil
	}
	if payload == nil {
		return nil
	}

	var resp staff.ListResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		slog.WarnContext(ctx, "staff list cache entry invalid", "error", err)
		return nil
	}
	return &resp
}

func (s *StaffServiceImpl) writeCache(ctx context.Context, key string, resp *staff.ListResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload); err != nil {
		slog.WarnContext(ctx, "staff list cache write failed", "error", err)
	}
}
