package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/RealZimboGuy/wkfport/internal/archive"
	"github.com/RealZimboGuy/wkfport/internal/config"
	"github.com/RealZimboGuy/wkfport/internal/dataconfig"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockModuleExporter struct {
	ExportModuleFunc func(ctx context.Context, moduleName string, format dataconfig.Format, w archive.Writer) error
}

func (m *MockModuleExporter) ExportModule(ctx context.Context, moduleName string, format dataconfig.Format, w archive.Writer) error {
	return m.ExportModuleFunc(ctx, moduleName, format, w)
}

var header = []string{"name"}

// writesThenFails writes the workflow and node files, then fails like a
// rejected transition write.
func writesThenFails(boom error) *MockModuleExporter {
	return &MockModuleExporter{ExportModuleFunc: func(ctx context.Context, moduleName string, format dataconfig.Format, w archive.Writer) error {
		if err := w.AddCSV("sales_Wkf.csv", header, [][]string{{"W"}}); err != nil {
			return err
		}
		if err := w.AddCSV("sales_WkfNode.csv", header, [][]string{{"N1"}}); err != nil {
			return err
		}
		return boom
	}}
}

func writesPackage() *MockModuleExporter {
	return &MockModuleExporter{ExportModuleFunc: func(ctx context.Context, moduleName string, format dataconfig.Format, w archive.Writer) error {
		if err := w.AddCSV("sales_Wkf.csv", header, [][]string{{"W"}}); err != nil {
			return err
		}
		return w.AddFile("sales_input-config."+string(format), []byte("<csv-inputs/>"))
	}}
}

func settingsFor(output string) config.Settings {
	return config.Settings{ModuleName: "sales", Output: output, DescriptorFormat: config.DESCRIPTOR_FORMAT_XML}
}

func TestExportTo_Dir(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, exportTo(context.Background(), fs, writesPackage(), settingsFor("/out")))

	content, err := afero.ReadFile(fs, "/out/sales_Wkf.csv")
	require.NoError(t, err)
	assert.Equal(t, "name\nW\n", string(content))
	exists, _ := afero.Exists(fs, "/out/sales_input-config.xml")
	assert.True(t, exists)
}

func TestExportTo_DirFailureRemovesWrittenFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	boom := errors.New("sales_WkfTransition.csv is a directory")

	err := exportTo(context.Background(), fs, writesThenFails(boom), settingsFor("/out"))

	assert.ErrorIs(t, err, boom)
	for _, name := range []string{"/out/sales_Wkf.csv", "/out/sales_WkfNode.csv", "/out"} {
		exists, _ := afero.Exists(fs, name)
		assert.False(t, exists, name)
	}
}

func TestExportTo_DirFailureKeepsExistingFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/README", []byte("keep"), 0o644))
	boom := errors.New("write failed")

	err := exportTo(context.Background(), fs, writesThenFails(boom), settingsFor("/out"))

	assert.ErrorIs(t, err, boom)
	exists, _ := afero.Exists(fs, "/out/sales_Wkf.csv")
	assert.False(t, exists)
	exists, _ = afero.Exists(fs, "/out/sales_WkfNode.csv")
	assert.False(t, exists)
	content, err := afero.ReadFile(fs, "/out/README")
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))
}

func TestExportTo_Zip(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, exportTo(context.Background(), fs, writesPackage(), settingsFor("/sales.zip")))

	data, err := afero.ReadFile(fs, "/sales.zip")
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "sales_Wkf.csv", zr.File[0].Name)
	assert.Equal(t, "sales_input-config.xml", zr.File[1].Name)
}

func TestExportTo_ZipFailureRemovesArchive(t *testing.T) {
	fs := afero.NewMemMapFs()
	boom := errors.New("write failed")

	err := exportTo(context.Background(), fs, writesThenFails(boom), settingsFor("/sales.zip"))

	assert.ErrorIs(t, err, boom)
	exists, _ := afero.Exists(fs, "/sales.zip")
	assert.False(t, exists)
}
