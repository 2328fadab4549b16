package cli

import (
	"fmt"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/liststore"
	"github.com/idilsaglam/shoplist/internal/store/jsonstore"
	"github.com/idilsaglam/shoplist/internal/store/memstore"
	"github.com/idilsaglam/shoplist/internal/store/sqlstore"
)

// OpenKV returns the backend named by c.Backend and a func releasing it.
func OpenKV(c config.Config) (liststore.KV, func() error, error) {
	nop := func() error { return nil }
	switch c.Backend {
	case config.BackendJSON:
		return jsonstore.New(c.DataDir), nop, nil
	case config.BackendSQLite:
		s, err := sqlstore.OpenSQLite(c.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.BackendMySQL:
		s, err := sqlstore.OpenMySQL(c.DSN)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.BackendMem:
		return memstore.New(), nop, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", c.Backend)
}
