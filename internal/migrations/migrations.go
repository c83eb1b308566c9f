// Package migrations embeds the schema for each supported driver.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Migration is one schema file, applied in name order.
type Migration struct {
	Name string
	SQL  string
}

// For returns the migrations of driver sorted by file name.
func For(driver string) ([]Migration, error) {
	if driver != Postgres && driver != SQLite {
		return nil, fmt.Errorf("migrations: unknown driver %q", driver)
	}
	names, err := fs.Glob(files, driver+"/*.sql")
	if err != nil {
		return nil, fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		b, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		out = append(out, Migration{Name: name, SQL: string(b)})
	}
	return out, nil
}
