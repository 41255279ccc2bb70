package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/misterclayt0n/smart-trainer/internal/models"
)

// SaveProfile creates the named profile or updates its factors. The ID and
// creation date of an existing profile are kept.
func (s *Storage) SaveProfile(ctx context.Context, name string, p models.AthleteProfile) (*models.NamedProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("profile name is required")
	}
	if err := p.Validate(); err != nil && !errors.Is(err, models.ErrProfileOutOfRange) {
		return nil, err
	}

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO athlete_profiles
			(id, name, fatigue_factor, power_sensitivity, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				fatigue_factor = excluded.fatigue_factor,
				power_sensitivity = excluded.power_sensitivity`,
		uuid.New().String(),
		name,
		p.FatigueFactor,
		p.PowerSensitivity,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile %q: %w", name, err)
	}

	return s.GetProfile(ctx, name)
}

func (s *Storage) GetProfile(ctx context.Context, name string) (*models.NamedProfile, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT id, name, fatigue_factor, power_sensitivity, created_at
		FROM athlete_profiles WHERE name = ?`,
		strings.TrimSpace(name),
	)

	np, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %q: %w", name, err)
	}

	return np, nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]models.NamedProfile, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, fatigue_factor, power_sensitivity, created_at
		FROM athlete_profiles ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.NamedProfile
	for rows.Next() {
		np, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *np)
	}

	return profiles, rows.Err()
}

func (s *Storage) DeleteProfile(ctx context.Context, name string) error {
	res, err := s.DB.ExecContext(ctx,
		"DELETE FROM athlete_profiles WHERE name = ?",
		strings.TrimSpace(name),
	)
	if err != nil {
		return fmt.Errorf("failed to delete profile %q: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	return nil
}

func (s *Storage) ProfileExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM athlete_profiles WHERE name = ?)",
		strings.TrimSpace(name),
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}

	return exists, nil
}

// ImportProfiles saves every [[profile]] table of a TOML document in a single
// transaction and returns how many were imported.
func (s *Storage) ImportProfiles(ctx context.Context, tomlData []byte) (int, error) {
	var imp models.ProfileImport
	if err := toml.Unmarshal(tomlData, &imp); err != nil {
		return 0, fmt.Errorf("invalid TOML format: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	seen := make(map[string]bool, len(imp.Profiles))
	for _, pt := range imp.Profiles {
		name := strings.TrimSpace(pt.Name)
		if name == "" {
			return 0, errors.New("profile without a name in import file")
		}
		if seen[name] {
			return 0, fmt.Errorf("profile %q appears more than once in import file", name)
		}
		seen[name] = true

		p := models.AthleteProfile{FatigueFactor: pt.FatigueFactor, PowerSensitivity: pt.PowerSensitivity}
		if err := p.Validate(); err != nil && !errors.Is(err, models.ErrProfileOutOfRange) {
			return 0, fmt.Errorf("profile %q: %w", name, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO athlete_profiles
				(id, name, fatigue_factor, power_sensitivity, created_at)
				VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(name) DO UPDATE SET
					fatigue_factor = excluded.fatigue_factor,
					power_sensitivity = excluded.power_sensitivity`,
			uuid.New().String(), name, p.FatigueFactor, p.PowerSensitivity, createdAt,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to import profile %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	return len(imp.Profiles), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(sc scanner) (*models.NamedProfile, error) {
	var np models.NamedProfile
	var createdAt string

	if err := sc.Scan(
		&np.ID,
		&np.Name,
		&np.Profile.FatigueFactor,
		&np.Profile.PowerSensitivity,
		&createdAt,
	); err != nil {
		return nil, err
	}

	np.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &np, nil
}
