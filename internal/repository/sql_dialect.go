package repository

import (
	"fmt"

	"github.com/RealZimboGuy/wkfport/internal/config"
)

// placeholder returns the correct bind variable for the given index based on DB type.
// Postgres uses $1, $2... while MySQL and SQLite use ?
// The type is read from WKFPORT_DATABASE_TYPE at query time, so callers that
// take it from elsewhere (the CLI flags) must export it to the environment
// before the first query.
func placeholder(i int) string {
	db := config.GetSystemSettingString(config.DATABASE_TYPE)
	if db == config.DATABASE_TYPE_POSTGRES {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}
