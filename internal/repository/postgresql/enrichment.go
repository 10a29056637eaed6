package postgresql

import (
	"context"
	"fmt"

	"github.com/staffhub-io/staffdir-backend-go/internal/domain/staff"
	"github.com/staffhub-io/staffdir-backend-go/internal/pkg/database"
)

type enrichmentRepositoryImpl struct {
	db *database.DB
}

func NewEnrichmentRepository(db *database.DB) staff.EnrichmentRepository {
	return &enrichmentRepositoryImpl{db: db}
}

// ProfilesByUserIDs implements staff.EnrichmentRepository.
func (r *enrichmentRepositoryImpl) ProfilesByUserIDs(ctx context.Context, userIDs []int64) (map[int64]staff.PersonProfile, error) {
	query := `
		SELECT user_id, user_name, email, phone, date_of_birth, address, skills, education
		FROM person_profiles
		WHERE user_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[int64]staff.PersonProfile, len(userIDs))
	for rows.Next() {
		var p staff.PersonProfile
		err := rows.Scan(&p.UserID, &p.UserName, &p.Email, &p.Phone, &p.DateOfBirth, &p.Address, &p.Skills, &p.Education)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles[p.UserID] = p
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// SalariesByUserIDs implements staff.EnrichmentRepository.
func (r *enrichmentRepositoryImpl) SalariesByUserIDs(ctx context.Context, userIDs []int64) (map[int64]staff.SalaryRecord, error) {
	query := `
		SELECT user_id, basic_salary, take_home, ctc, currency, use_overtime
		FROM user_salaries
		WHERE user_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch salaries: %w", err)
	}
	defer rows.Close()

	salaries := make(map[int64]staff.SalaryRecord, len(userIDs))
	for rows.Next() {
		var s staff.SalaryRecord
		err := rows.Scan(&s.UserID, &s.BasicSalary, &s.TakeHome, &s.CTC, &s.Currency, &s.UseOvertime)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries[s.UserID] = s
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return salaries, nil
}

// PhotosByUserIDs implements staff.EnrichmentRepository.
func (r *enrichmentRepositoryImpl) PhotosByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]staff.PhotoRecord, error) {
	query := `
		SELECT id, user_id, photo_type, is_saved_to_vector, created_at
		FROM user_photos
		WHERE user_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photos: %w", err)
	}
	defer rows.Close()

	photos := make(map[int64][]staff.PhotoRecord)
	for rows.Next() {
		var p staff.PhotoRecord
		err := rows.Scan(&p.ID, &p.UserID, &p.PhotoType, &p.SavedToVector, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos[p.UserID] = append(photos[p.UserID], p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return photos, nil
}

// DeviceTokensByUserIDs implements staff.EnrichmentRepository.
func (r *enrichmentRepositoryImpl) DeviceTokensByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]staff.DeviceToken, error) {
	query := `
		SELECT id, user_id, device_type, created_at
		FROM user_device_tokens
		WHERE user_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch device tokens: %w", err)
	}
	defer rows.Close()

	devices := make(map[int64][]staff.DeviceToken)
	for rows.Next() {
		var d staff.DeviceToken
		err := rows.Scan(&d.ID, &d.UserID, &d.DeviceType, &d.RegisteredAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		devices[d.UserID] = append(devices[d.UserID], d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return devices, nil
}

// CommunicationsByUserIDs implements staff.EnrichmentRepository. The
// accommodation each communication may reference is resolved in the same
// statement; there is no second round trip keyed by accommodation id.
func (r *enrichmentRepositoryImpl) CommunicationsByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]staff.CommunicationRecord, error) {
	query := `
		SELECT c.id, c.user_id, c.contact_type, c.value, a.id, a.name, a.address
		FROM user_communications c
		LEFT JOIN user_accommodations a ON a.id = c.accommodation_id
		WHERE c.user_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch communications: %w", err)
	}
	defer rows.Close()

	comms := make(map[int64][]staff.CommunicationRecord)
	for rows.Next() {
		var c staff.CommunicationRecord
		var accID *int64
		var accName *string
		var accAddress *string

		err := rows.Scan(&c.ID, &c.UserID, &c.ContactType, &c.Value, &accID, &accName, &accAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to scan communication: %w", err)
		}

		if accID != nil {
			acc := staff.AccommodationRecord{ID: *accID, Address: accAddress}
			if accName != nil {
				acc.Name = *accName
			}
			c.Accommodation = &acc
		}

		comms[c.UserID] = append(comms[c.UserID], c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return comms, nil
}
