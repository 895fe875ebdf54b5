package postgres

import (
	"testing"

	"github.com/RealZimboGuy/wkfport/test/integration/common"
)

func TestPostgresExport(t *testing.T) {
	runTestWithSetup(t, func(t *testing.T, port int) {
		db, s := common.OpenSeededStore(t)

		t.Run("zip", func(t *testing.T) { common.RunExportToZip(t, db, s) })
		t.Run("dir", func(t *testing.T) { common.RunExportToDir(t, db, s) })
		t.Run("http", func(t *testing.T) { common.RunExportOverHTTP(t, db, s, port) })
	})
}
