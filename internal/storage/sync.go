package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/smart-trainer/internal/models"
)

// ExportProfiles writes every stored profile to a TOML file that
// ImportProfiles can read back.
func (s *Storage) ExportProfiles(ctx context.Context, outputPath string) (int, error) {
	profiles, err := s.ListProfiles(ctx)
	if err != nil {
		return 0, err
	}

	var exp models.ProfileImport
	for _, np := range profiles {
		exp.Profiles = append(exp.Profiles, models.ProfileTOML{
			Name:             np.Name,
			FatigueFactor:    np.Profile.FatigueFactor,
			PowerSensitivity: np.Profile.PowerSensitivity,
		})
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return 0, fmt.Errorf("creating export directory: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(exp); err != nil {
		return 0, fmt.Errorf("encoding TOML: %w", err)
	}

	return len(exp.Profiles), nil
}
