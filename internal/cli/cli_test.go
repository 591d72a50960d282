package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	id    int
	name  string
	types []string
}

var fixtures = []fixture{
	{1, "bulbasaur", []string{"grass", "poison"}},
	{4, "charmander", []string{"fire"}},
	{5, "charmeleon", []string{"fire"}},
	{6, "charizard", []string{"fire", "flying"}},
	{7, "squirtle", []string{"water"}},
}

func newServer(t *testing.T, failID int) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/v2/pokemon" {
			results := make([]map[string]string, 0, len(fixtures))
			for _, f := range fixtures {
				results = append(results, map[string]string{
					"name": f.name,
					"url":  fmt.Sprintf("%s/api/v2/pokemon/%d/", srv.URL, f.id),
				})
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"count": len(fixtures), "results": results})
			return
		}
		key := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v2/pokemon/"), "/")
		for _, f := range fixtures {
			if key != fmt.Sprint(f.id) && key != f.name {
				continue
			}
			if f.id == failID {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			types := make([]map[string]any, 0, len(f.types))
			for i, ty := range f.types {
				types = append(types, map[string]any{"slot": i + 1, "type": map[string]string{"name": ty}})
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":        f.id,
				"name":      f.name,
				"types":     types,
				"abilities": []map[string]any{{"is_hidden": false, "ability": map[string]string{"name": "blaze"}}},
				"stats": []map[string]any{
					{"base_stat": 39, "stat": map[string]string{"name": "hp"}},
					{"base_stat": 65, "stat": map[string]string{"name": "speed"}},
				},
			})
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	cmd := New(context.Background())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if !slices.Contains(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList_FiltersByTypeAndSearch(t *testing.T) {
	srv := newServer(t, 0)

	out, err := execute(t, "list", "--base-url", srv.URL+"/api/v2", "--type", "fire", "--search", "CHAR")
	require.NoError(t, err)

	assert.Contains(t, out, "charmander")
	assert.Contains(t, out, "charmeleon")
	assert.Contains(t, out, "charizard")
	assert.NotContains(t, out, "bulbasaur")
	assert.Contains(t, out, "page 1 of 1")
	assert.Contains(t, out, "3 matching of 5")
}

func TestList_JSONPage(t *testing.T) {
	srv := newServer(t, 0)

	out, err := execute(t, "list", "--base-url", srv.URL+"/api/v2", "--json", "--page", "9")
	require.NoError(t, err)

	var view listView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, 1, view.Page, "page is clamped to the last page")
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 5, view.Matching)
	require.Len(t, view.Records, 5)
	assert.Equal(t, "bulbasaur", view.Records[0].Name)
	assert.Equal(t, []statView{{"hp", 39}, {"speed", 65}}, view.Records[0].Stats)
}

func TestList_NoMatches(t *testing.T) {
	srv := newServer(t, 0)

	out, err := execute(t, "list", "--base-url", srv.URL+"/api/v2", "--search", "mew")
	require.NoError(t, err)
	assert.Contains(t, out, "No matches")
}

func TestList_AnyFailedRecordFailsCommand(t *testing.T) {
	srv := newServer(t, 5)

	out, err := execute(t, "list", "--base-url", srv.URL+"/api/v2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load catalog")
	assert.Contains(t, err.Error(), "charmeleon")
	assert.NotContains(t, out, "bulbasaur", "no partial output")
}

func TestList_UnknownTypeRejectedBeforeFetching(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	_, err := execute(t, "list", "--base-url", srv.URL, "--type", "dragon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "dragon"`)
	assert.Zero(t, hits.Load())
}

func TestShow_PrintsRecord(t *testing.T) {
	srv := newServer(t, 0)

	out, err := execute(t, "show", "Charizard", "--base-url", srv.URL+"/api/v2")
	require.NoError(t, err)
	assert.Contains(t, out, "charizard  #0006")
	assert.Contains(t, out, "flying")
	assert.Contains(t, out, "blaze")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "104")
}

func TestShow_NotFound(t *testing.T) {
	srv := newServer(t, 0)

	_, err := execute(t, "show", "missingno", "--base-url", srv.URL+"/api/v2")
	require.Error(t, err)
	assert.Equal(t, `no record named "missingno"`, err.Error())
}

func TestShow_RequiresOneArg(t *testing.T) {
	_, err := execute(t, "show")
	require.Error(t, err)
}

func TestTypes_ListsPalette(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "electric")
	assert.Contains(t, out, "#f7d02c")
	assert.Contains(t, out, "(no filter)")
}

func TestRoot_RefusesWithoutTerminal(t *testing.T) {
	_, err := execute(t)
	require.ErrorIs(t, err, ErrNoTerminal)
}

func TestLogs_PrintsTailAboveLevel(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "dex.log")
	require.NoError(t, os.WriteFile(logPath, []byte(
		"time=t1 level=DEBUG msg=one\n"+
			"time=t2 level=INFO msg=two\n"+
			"time=t3 level=ERROR msg=three\n"), 0o644))
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf("log_file = %q\n", logPath)), 0o644))

	out, err := execute(t, "logs", "--config", cfgPath, "--level", "info")
	require.NoError(t, err)
	assert.Equal(t, "time=t2 level=INFO msg=two\ntime=t3 level=ERROR msg=three\n", out)

	out, err = execute(t, "logs", "--config", cfgPath, "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "time=t3 level=ERROR msg=three\n", out)
}
