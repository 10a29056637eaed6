package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-io/staffdir-backend-go/internal/domain/statistics"
	"github.com/staffhub-io/staffdir-backend-go/internal/pkg/database"
)

type statisticsRepositoryImpl struct {
	db *database.DB
}

func NewStatisticsRepository(db *database.DB) statistics.StatisticsRepository {
	return &statisticsRepositoryImpl{db: db}
}

// GetOTFaceCounts implements statistics.StatisticsRepository. One statement
// per client: the staff CTE resolves the overtime/face/device booleans per
// assignment, the outer select cross-tabulates them, and the scalar
// subqueries add device-token and project figures.
func (r *statisticsRepositoryImpl) GetOTFaceCounts(ctx context.Context, clientID int64) (statistics.Counts, error) {
	since := time.Now().AddDate(0, 0, -30)

	query := `
		WITH staff AS (
			SELECT cu.id, cu.user_id, cu.is_active, cu.joining_date,
				(COALESCE(r.use_overtime, FALSE) OR COALESCE(us.use_overtime, FALSE)) AS ot,
				EXISTS (SELECT 1 FROM user_photos p WHERE p.user_id = cu.user_id) AS face,
				EXISTS (SELECT 1 FROM user_device_tokens d WHERE d.user_id = cu.user_id) AS has_device
			FROM client_users cu
			LEFT JOIN client_roles r ON r.id = cu.role_id
			LEFT JOIN user_salaries us ON us.user_id = cu.user_id
			WHERE cu.client_id = $1
		)
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0) AS active_count,
			COALESCE(SUM(CASE WHEN NOT is_active THEN 1 ELSE 0 END), 0) AS inactive_count,
			COALESCE(SUM(CASE WHEN face THEN 1 ELSE 0 END), 0) AS face_registered,
			COALESCE(SUM(CASE WHEN NOT face THEN 1 ELSE 0 END), 0) AS face_not_registered,
			COALESCE(SUM(CASE WHEN ot AND face THEN 1 ELSE 0 END), 0) AS ot_with_face,
			COALESCE(SUM(CASE WHEN ot AND NOT face THEN 1 ELSE 0 END), 0) AS ot_without_face,
			COALESCE(SUM(CASE WHEN NOT ot AND face THEN 1 ELSE 0 END), 0) AS non_ot_with_face,
			COALESCE(SUM(CASE WHEN NOT ot AND NOT face THEN 1 ELSE 0 END), 0) AS non_ot_without_face,
			COALESCE(SUM(CASE WHEN ot THEN 1 ELSE 0 END), 0) AS all_ot,
			COALESCE(SUM(CASE WHEN NOT ot THEN 1 ELSE 0 END), 0) AS all_non_ot,
			COALESCE(SUM(CASE WHEN has_device THEN 1 ELSE 0 END), 0) AS with_device,
			COALESCE(SUM(CASE WHEN NOT has_device THEN 1 ELSE 0 END), 0) AS without_device,
			COALESCE(SUM(CASE WHEN joining_date >= $2 THEN 1 ELSE 0 END), 0) AS joined_30d,
			(SELECT COUNT(*) FROM user_device_tokens dt
				JOIN client_users cu2 ON cu2.user_id = dt.user_id AND cu2.client_id = $1
				WHERE LOWER(dt.device_type) = 'android') AS android_devices,
			(SELECT COUNT(*) FROM user_device_tokens dt
				JOIN client_users cu2 ON cu2.user_id = dt.user_id AND cu2.client_id = $1
				WHERE LOWER(dt.device_type) = 'ios') AS ios_devices,
			(SELECT COUNT(*) FROM user_device_tokens dt
				JOIN client_users cu2 ON cu2.user_id = dt.user_id AND cu2.client_id = $1
				WHERE LOWER(dt.device_type) NOT IN ('android', 'ios')) AS other_devices,
			(SELECT COUNT(*) FROM projects pr WHERE pr.client_id = $1) AS total_projects,
			(SELECT COUNT(*) FROM projects pr WHERE pr.client_id = $1 AND pr.start_date >= $2) AS projects_started_30d,
			(SELECT COUNT(*) FROM projects pr WHERE pr.client_id = $1 AND pr.end_date >= $2 AND pr.end_date <= NOW()) AS projects_ended_30d
		FROM staff
	`

	var c statistics.Counts
	err := r.db.QueryRow(ctx, query, clientID, since).Scan(
		&c.TotalStaff, &c.ActiveStaff, &c.InactiveStaff,
		&c.FaceRegistered, &c.FaceNotRegistered,
		&c.OTWithFace, &c.OTWithoutFace, &c.NonOTWithFace, &c.NonOTWithoutFace,
		&c.AllOT, &c.AllNonOT,
		&c.StaffWithDevice, &c.StaffWithoutDevice,
		&c.JoinedLast30Days,
		&c.AndroidDevices, &c.IOSDevices, &c.OtherDevices,
		&c.TotalProjects, &c.ProjectsStartedLast30Days, &c.ProjectsEndedLast30Days,
	)
	if err != nil {
		return statistics.Counts{}, fmt.Errorf("failed to get staff statistics: %w", err)
	}
	return c, nil
}
