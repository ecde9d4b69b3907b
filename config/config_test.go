package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, "main", cfg.GitHubBranch)
	require.Equal(t, "https://api.github.com", cfg.GitHubAPIBase)
	require.Equal(t, "github", cfg.AssetBackend)
	require.Equal(t, 10*time.Minute, cfg.CacheTTL)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	require.Empty(t, cfg.SuperadminIDs)
	require.Empty(t, cfg.CRIDsByClass)
}

func TestLoadAccessTables(t *testing.T) {
	t.Setenv("SUPERADMIN_IDS", "PES1UG25CS527, admin@pesu.pes.edu")
	t.Setenv("CR_IDS", "Sem2-C9:PES1UG25CS100|cr@pesu.pes.edu; Sem4-A:PES1UG25CS200")

	cfg := Load()

	require.Equal(t, []string{"PES1UG25CS527", "admin@pesu.pes.edu"}, cfg.SuperadminIDs)
	require.Equal(t, map[string][]string{
		"Sem2-C9": {"PES1UG25CS100", "cr@pesu.pes.edu"},
		"Sem4-A":  {"PES1UG25CS200"},
	}, cfg.CRIDsByClass)
}

func TestLoadMalformedCREntriesSkipped(t *testing.T) {
	t.Setenv("CR_IDS", "no-colon-entry;Sem2-C9:PES1UG25CS100;:orphan")

	cfg := Load()

	require.Equal(t, map[string][]string{
		"Sem2-C9": {"PES1UG25CS100"},
	}, cfg.CRIDsByClass)
}
