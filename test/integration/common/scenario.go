package common

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/RealZimboGuy/wkfport/internal/archive"
	"github.com/RealZimboGuy/wkfport/internal/config"
	"github.com/RealZimboGuy/wkfport/internal/controllers"
	"github.com/RealZimboGuy/wkfport/internal/dataconfig"
	"github.com/RealZimboGuy/wkfport/internal/util"
	"github.com/RealZimboGuy/wkfport/pkg/wkfport"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var packageFiles = []string{
	"sales_flow_Wkf.csv",
	"sales_flow_WkfNode.csv",
	"sales_flow_WkfTransition.csv",
	"sales_flow_input-config.xml",
}

// OpenSeededStore opens the store configured in the environment and seeds it.
func OpenSeededStore(t *testing.T) (*sql.DB, config.Settings) {
	t.Helper()
	s := config.LoadSettings()
	require.NoError(t, s.Validate())

	db, err := wkfport.OpenDatabase(s)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	SeedStore(t, db)
	return db, s
}

// RunExportToZip exports the seeded store into a zip file and checks its content.
func RunExportToZip(t *testing.T, db *sql.DB, s config.Settings) {
	out := filepath.Join(t.TempDir(), "export.zip")
	f, err := os.Create(out)
	require.NoError(t, err)

	w := archive.NewZipWriter(f)
	err = wkfport.NewExporters(db, s.ModelPackage).ExportModule(context.Background(), ModuleName, dataconfig.FormatXML, w)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	AssertPackage(t, data)
}

// RunExportToDir exports the seeded store as plain files with a yaml descriptor.
func RunExportToDir(t *testing.T, db *sql.DB, s config.Settings) {
	fs := afero.NewMemMapFs()
	w := archive.NewDirWriter(fs, "/out")
	err := wkfport.NewExporters(db, s.ModelPackage).ExportModule(context.Background(), ModuleName, dataconfig.FormatYAML, w)
	require.NoError(t, err)

	descriptor, err := afero.ReadFile(fs, "/out/sales_flow_input-config.yaml")
	require.NoError(t, err)
	cfg, err := dataconfig.Decode(descriptor, dataconfig.FormatYAML)
	require.NoError(t, err)
	require.Len(t, cfg.Inputs, 3)
	assert.Equal(t, "sales_flow_Wkf.csv", cfg.Inputs[0].File)

	nodes, err := afero.ReadFile(fs, "/out/sales_flow_WkfNode.csv")
	require.NoError(t, err)
	assert.Len(t, readCSV(t, nodes), 4)
}

// RunExportOverHTTP serves the store on port then downloads the manifest and the package.
func RunExportOverHTTP(t *testing.T, db *sql.DB, s config.Settings, port int) {
	go func() {
		if err := wkfport.Serve(db, s, nil); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()

	client := &http.Client{Timeout: 10 * time.Second}
	base := fmt.Sprintf("http://localhost:%d/api/export/%s", port, ModuleName)
	waitForServer(t, client, base+"/manifest")

	resp, err := client.Get(base + "/manifest")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	manifest, err := util.DecodeJSONBodyResponse[controllers.ManifestResponse](resp)
	require.NoError(t, err)
	assert.Equal(t, ModuleName, manifest.Module)
	require.Len(t, manifest.Entries, len(packageFiles))
	for i, e := range manifest.Entries {
		assert.Equal(t, packageFiles[i], e.Name)
		assert.NotEmpty(t, e.Digest)
	}

	resp, err = client.Get(base)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	AssertPackage(t, data)
}

func waitForServer(t *testing.T, client *http.Client, url string) {
	t.Helper()
	for i := 0; i < 50; i++ {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("server at %s did not start", url)
}

// AssertPackage checks a zip package produced from Seed.
func AssertPackage(t *testing.T, data []byte) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := map[string][]byte{}
	var names []string
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		files[f.Name] = content
		names = append(names, f.Name)
	}
	require.Equal(t, packageFiles, names)

	wkfs := readCSV(t, files["sales_flow_Wkf.csv"])
	require.Len(t, wkfs, 3)
	assert.Equal(t, []string{"Lead flow", "com.axelor.apps.crm.db.Lead", "", "false", "leadStatus", "1", "<bpmn/>", "crm", "Qualifies leads"}, wkfs[1])
	assert.Equal(t, "com.axelor.apps.sales.flow.db.Ticket", wkfs[2][1])
	assert.Equal(t, "false", wkfs[2][3])

	nodes := readCSV(t, files["sales_flow_WkfNode.csv"])
	require.Len(t, nodes, 4)
	assert.Equal(t, "action-assign|action-notify", nodes[1][9])
	assert.Equal(t, "Lead flow", nodes[1][3])
	assert.Equal(t, "Ticket flow", nodes[3][3])

	transitions := readCSV(t, files["sales_flow_WkfTransition.csv"])
	require.Len(t, transitions, 2)
	assert.Equal(t, []string{"submit", "wkf_lead_submit", "true", "Submit", "Lead flow", "Start", "Review", "2", "Submit lead?", "Submitted"}, transitions[1])

	cfg, err := dataconfig.Decode(files["sales_flow_input-config.xml"], dataconfig.FormatXML)
	require.NoError(t, err)
	require.Len(t, cfg.Inputs, 3)
	assert.Equal(t, "com.axelor.studio.db.WkfTransition", cfg.Inputs[2].Type)
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}
