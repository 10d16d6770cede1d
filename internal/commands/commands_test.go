package commands_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chconnect-dev/chconnect/internal/commands"
	"github.com/chconnect-dev/chconnect/internal/config"
	"github.com/chconnect-dev/chconnect/internal/model"
	"github.com/chconnect-dev/chconnect/internal/portfolio"
)

// run executes the CLI in-process and returns its combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// initDir initializes a data directory and points its config at the given
// registry URL (empty means leave the default).
func initDir(t *testing.T, registryURL string) string {
	t.Helper()
	dir := t.TempDir()
	_, err := run(t, "init", dir)
	require.NoError(t, err)

	if registryURL != "" {
		path := filepath.Join(dir, config.FileName)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		cfg.Registry.BaseURL = registryURL
		cfg.Registry.Cache = false
		require.NoError(t, config.Save(path, cfg))
	}
	return dir
}

// fakeRegistry serves profile JSON for known CRNs and 404s everything else.
func fakeRegistry(t *testing.T, known map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for number, name := range known {
			if r.URL.Path == "/company/"+number {
				w.Write([]byte(`{
					"company_name": "` + name + `",
					"company_status": "active",
					"accounts": {"next_due": "2030-06-30"},
					"confirmation_statement": {"next_due": "2030-04-15"}
				}`))
				return
			}
		}
		http.Error(w, "not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized portfolio data directory")

	for _, d := range []string{"logs", "exports"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir())
	}

	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "refresh_policy: drop")

	// Portfolio starts out as an empty JSON array.
	store := portfolio.NewStore(filepath.Join(dir, "companies.json"))
	assert.Empty(t, store.LoadAll())

	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(gitignore), "session.json")
}

func TestSearchThenSave(t *testing.T) {
	srv := fakeRegistry(t, map[string]string{"01234567": "ALPHA WIDGETS LIMITED"})
	dir := initDir(t, srv.URL)

	out, err := run(t, "search", "01234567", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ALPHA WIDGETS LIMITED")

	out, err = run(t, "save", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "saved to your portfolio")

	store := portfolio.NewStore(filepath.Join(dir, "companies.json"))
	records := store.LoadAll()
	require.Len(t, records, 1)
	assert.Equal(t, "01234567", records[0].CRN)
	assert.Equal(t, "2030-06-30", records[0].AccountsDue)

	// Saving the same company again is a no-op.
	out, err = run(t, "save", "01234567", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "already saved")
	assert.Len(t, store.LoadAll(), 1)
}

func TestSave_NoSessionNoArg(t *testing.T) {
	dir := initDir(t, "")
	_, err := run(t, "save", "--data", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no company searched yet")
}

func TestSearch_UnknownCRN(t *testing.T) {
	srv := fakeRegistry(t, nil)
	dir := initDir(t, srv.URL)

	_, err := run(t, "search", "99999999", "--data", dir)
	require.Error(t, err)

	// A failed search must not leave a stale slot behind.
	_, err = run(t, "save", "--data", dir)
	require.Error(t, err)
}

func TestList_Empty(t *testing.T) {
	dir := initDir(t, "")
	out, err := run(t, "list", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No companies saved yet")
}

func seedPortfolio(t *testing.T, dir string) {
	t.Helper()
	store := portfolio.NewStore(filepath.Join(dir, "companies.json"))
	require.NoError(t, store.SaveAll([]model.Company{
		{CRN: "01234567", Name: "Alpha Ltd", Status: "active", AccountsDue: "2020-01-01", CSDue: "2020-02-01", LastUpdated: "2024-03-02"},
		{CRN: "SC123456", Name: "Beta Ltd", Status: "active", AccountsDue: "2030-01-01", CSDue: "2030-02-01", LastUpdated: "2024-03-02"},
	}))
}

func TestList_PlainFiltered(t *testing.T) {
	dir := initDir(t, "")
	seedPortfolio(t, dir)

	out, err := run(t, "list", "--data", dir, "--plain", "--filter", "overdue")
	require.NoError(t, err)
	assert.Contains(t, out, "Company Name,Company Number")
	assert.Contains(t, out, "Alpha Ltd")
	assert.NotContains(t, out, "Beta Ltd")
}

func TestRefresh_DropsFailedFetches(t *testing.T) {
	// Only Beta resolves; Alpha is dropped by the default policy.
	srv := fakeRegistry(t, map[string]string{"SC123456": "Beta Ltd"})
	dir := initDir(t, srv.URL)
	seedPortfolio(t, dir)

	out, err := run(t, "refresh", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 1 companies")
	assert.Contains(t, out, "dropped")

	store := portfolio.NewStore(filepath.Join(dir, "companies.json"))
	records := store.LoadAll()
	require.Len(t, records, 1)
	assert.Equal(t, "SC123456", records[0].CRN)
}

func TestRefresh_KeepStale(t *testing.T) {
	srv := fakeRegistry(t, map[string]string{"SC123456": "Beta Ltd"})
	dir := initDir(t, srv.URL)
	seedPortfolio(t, dir)

	out, err := run(t, "refresh", "--data", dir, "--keep-stale")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 1 companies")

	store := portfolio.NewStore(filepath.Join(dir, "companies.json"))
	records := store.LoadAll()
	require.Len(t, records, 2)
	assert.Equal(t, "Alpha Ltd", records[0].Name, "failed fetch keeps the stale record")
}

func TestRemove(t *testing.T) {
	dir := initDir(t, "")
	seedPortfolio(t, dir)

	out, err := run(t, "remove", "01234567", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "01234567 removed")

	out, err = run(t, "remove", "01234567", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "not in the portfolio")
}

func TestExport(t *testing.T) {
	dir := initDir(t, "")
	seedPortfolio(t, dir)

	out, err := run(t, "export", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 companies")

	data, err := os.ReadFile(filepath.Join(dir, "exports", "portfolio.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Company Name,Company Number")
	assert.Contains(t, string(data), "Alpha Ltd")
}

func TestImport(t *testing.T) {
	srv := fakeRegistry(t, map[string]string{"01234567": "Alpha Ltd", "SC123456": "Beta Ltd"})
	dir := initDir(t, srv.URL)

	csvPath := filepath.Join(t.TempDir(), "bulk.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("crn\n01234567\nSC123456\n99999999\n"), 0o644))

	out, err := run(t, "import", csvPath, "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 companies (0 already saved, 1 failed)")

	store := portfolio.NewStore(filepath.Join(dir, "companies.json"))
	assert.Len(t, store.LoadAll(), 2)
}

func TestLog_RecordsMutations(t *testing.T) {
	dir := initDir(t, "")
	seedPortfolio(t, dir)

	_, err := run(t, "remove", "01234567", "--data", dir)
	require.NoError(t, err)

	out, err := run(t, "log", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "remove")
	assert.Contains(t, out, "01234567")
}

func TestSummary(t *testing.T) {
	dir := initDir(t, "")
	seedPortfolio(t, dir)

	out, err := run(t, "summary", "--data", dir)
	require.NoError(t, err)
	// Alpha is fully overdue (both deadlines past), Beta fully OK.
	assert.Contains(t, out, "Total Companies")
}
