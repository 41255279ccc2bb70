package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/smart-trainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	st, err := Open(filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return st
}

func TestDriverFor(t *testing.T) {
	tests := []struct {
		url        string
		wantDriver string
		wantDSN    string
	}{
		{"libsql://db-user.turso.io?authToken=x", "libsql", "libsql://db-user.turso.io?authToken=x"},
		{"https://db-user.turso.io", "libsql", "https://db-user.turso.io"},
		{"file:./local.db", "sqlite", "./local.db"},
		{"file:./local.db?cache=shared", "sqlite", "file:./local.db?cache=shared"},
		{"/tmp/profiles.db", "sqlite", "/tmp/profiles.db"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			driver, dsn := driverFor(tt.url)
			assert.Equal(t, tt.wantDriver, driver)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestOpenRequiresURL(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestNewWithExistingDB(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	st, err := New(db)
	require.NoError(t, err)

	profiles, err := st.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfiles(t *testing.T) {
	st := setupTestStorage(t)
	ctx := context.Background()

	t.Run("SaveProfile inserts new profile", func(t *testing.T) {
		np, err := st.SaveProfile(ctx, "maria", models.AthleteProfile{FatigueFactor: 0.9, PowerSensitivity: 0.7})
		require.NoError(t, err)

		assert.NotEmpty(t, np.ID)
		assert.Equal(t, "maria", np.Name)
		assert.Equal(t, 0.9, np.Profile.FatigueFactor)
		assert.Equal(t, 0.7, np.Profile.PowerSensitivity)
		assert.False(t, np.CreatedAt.IsZero())
	})

	t.Run("SaveProfile updates existing profile", func(t *testing.T) {
		before, err := st.GetProfile(ctx, "maria")
		require.NoError(t, err)

		after, err := st.SaveProfile(ctx, " maria ", models.AthleteProfile{FatigueFactor: 1.1, PowerSensitivity: 0.2})
		require.NoError(t, err)

		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, 1.1, after.Profile.FatigueFactor)
		assert.Equal(t, 0.2, after.Profile.PowerSensitivity)
	})

	t.Run("SaveProfile accepts out of range factors", func(t *testing.T) {
		_, err := st.SaveProfile(ctx, "outlier", models.AthleteProfile{FatigueFactor: 1.5, PowerSensitivity: 0.5})
		assert.NoError(t, err)
	})

	t.Run("SaveProfile requires a name", func(t *testing.T) {
		_, err := st.SaveProfile(ctx, "  ", models.DefaultAthleteProfile())
		assert.Error(t, err)
	})

	t.Run("ListProfiles is sorted by name", func(t *testing.T) {
		_, err := st.SaveProfile(ctx, "ana", models.DefaultAthleteProfile())
		require.NoError(t, err)

		profiles, err := st.ListProfiles(ctx)
		require.NoError(t, err)

		var names []string
		for _, p := range profiles {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{"ana", "maria", "outlier"}, names)
	})

	t.Run("ProfileExists", func(t *testing.T) {
		ok, err := st.ProfileExists(ctx, "ana")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = st.ProfileExists(ctx, "nobody")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("GetProfile missing", func(t *testing.T) {
		_, err := st.GetProfile(ctx, "nobody")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("DeleteProfile", func(t *testing.T) {
		require.NoError(t, st.DeleteProfile(ctx, "outlier"))

		_, err := st.GetProfile(ctx, "outlier")
		assert.ErrorIs(t, err, ErrProfileNotFound)

		assert.ErrorIs(t, st.DeleteProfile(ctx, "outlier"), ErrProfileNotFound)
	})
}

func TestImportExportProfiles(t *testing.T) {
	st := setupTestStorage(t)
	ctx := context.Background()

	n, err := st.ImportProfiles(ctx, []byte(`
[[profile]]
name = "joao"
fatigue_factor = 1.2
power_sensitivity = 0.3

[[profile]]
name = "ana"
fatigue_factor = 0.85
power_sensitivity = 0.9
`))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	joao, err := st.GetProfile(ctx, "joao")
	require.NoError(t, err)
	assert.Equal(t, 1.2, joao.Profile.FatigueFactor)

	out := filepath.Join(t.TempDir(), "export", "profiles.toml")
	n, err = st.ExportProfiles(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	other := setupTestStorage(t)
	n, err = other.ImportProfiles(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ana, err := other.GetProfile(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, 0.85, ana.Profile.FatigueFactor)
	assert.Equal(t, 0.9, ana.Profile.PowerSensitivity)
}

func TestImportProfilesIsAtomic(t *testing.T) {
	st := setupTestStorage(t)
	ctx := context.Background()

	_, err := st.ImportProfiles(ctx, []byte(`
[[profile]]
name = "ok"
fatigue_factor = 1.0
power_sensitivity = 0.5

[[profile]]
fatigue_factor = 1.0
`))
	assert.Error(t, err)

	profiles, err := st.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	_, err = st.ImportProfiles(ctx, []byte("[[profile"))
	assert.Error(t, err)
}

func TestImportProfilesRejectsDuplicateNames(t *testing.T) {
	st := setupTestStorage(t)
	ctx := context.Background()

	n, err := st.ImportProfiles(ctx, []byte(`
[[profile]]
name = "ana"
fatigue_factor = 1.0
power_sensitivity = 0.5

[[profile]]
name = " ana "
fatigue_factor = 1.2
power_sensitivity = 0.4
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ana"`)
	assert.Zero(t, n)

	profiles, err := st.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
