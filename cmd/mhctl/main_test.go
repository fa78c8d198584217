package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindhealth/internal/model"
	"mindhealth/internal/service"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func useSQLite(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "cli.db"))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	out, err := runCLI(t, "token", "--user", "u1")
	require.NoError(t, err)

	claims, err := service.NewAuthService("cli-secret").ValidateUserToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)

	_, err = runCLI(t, "token")
	assert.Error(t, err)
}

func TestSeedThenStatus(t *testing.T) {
	useSQLite(t)

	out, err := runCLI(t, "seed", "--user", "u1", "--count", "3", "--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 3 assessments for u1")

	out, err = runCLI(t, "status", "--user", "u1")
	require.NoError(t, err)

	var d model.Dashboard
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.True(t, d.HasData)
	assert.Equal(t, 3, d.AssessmentCount)
	assert.Len(t, d.Cards, 4)
	assert.NotEmpty(t, d.Recommendations)

	out, err = runCLI(t, "status", "--user", "nobody")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.False(t, d.HasData)
}

func TestImportCommand(t *testing.T) {
	useSQLite(t)

	disorders := writeFile(t, "disorders.yaml", `
depression:
  name: Depresión
  description_short: Tristeza persistente
  prevalence_data:
    global:
      total_affected_2019_millions: 280
anxiety:
  name: Ansiedad
`)
	stats := writeFile(t, "stats.json", `{"country":"México","kpis":{"population_millions":126.7}}`)

	out, err := runCLI(t, "import", "--disorders", disorders, "--statistics", stats)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 disorders")
	assert.Contains(t, out, model.DefaultStatisticsID)

	_, err = runCLI(t, "import")
	assert.Error(t, err)
}

func TestLoadDisorders_ListAndMap(t *testing.T) {
	list := writeFile(t, "list.json", `[{"id":"stress","name":"Estrés"}]`)
	got, err := loadDisorders(list)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "stress", got[0].ID)

	byID := writeFile(t, "map.yml", "anxiety:\n  name: Ansiedad\n")
	got, err = loadDisorders(byID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "anxiety", got[0].ID)
	assert.Equal(t, "Ansiedad", got[0].Name)

	_, err = loadDisorders(writeFile(t, "bad.json", `{"x": [`))
	assert.Error(t, err)
}

func TestLoadStatistics(t *testing.T) {
	p := writeFile(t, "stats.yaml", "country: México\nyear: 2023\n")
	stats, err := loadStatistics(p, "custom")
	require.NoError(t, err)
	assert.Equal(t, "custom", stats.ID)
	assert.Equal(t, "México", stats.Data["country"])
	assert.Equal(t, 2023, stats.Data["year"])
}
