package match

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/viant/colorvp/engine"
	"github.com/viant/colorvp/logger"
	"github.com/viant/colorvp/palette"
	"github.com/viant/colorvp/store"
	"modernc.org/sqlite/vtab"
)

// ModuleName is the name color_match tables are created with.
const ModuleName = "color_match"

// Module implements vtab.Module for color_match tables. A single Module
// serves the whole process.
type Module struct {
	mu     sync.Mutex
	logger *slog.Logger
	seq    int
	dbs    map[string]*sql.DB
	keys   map[*sql.DB]string
	cache  map[cacheKey]*entry
}

type cacheKey struct {
	db     string
	source string
}

// entry caches the palette built for one source table.
type entry struct {
	store   *store.SQLiteStore
	version int64
	palette *palette.Palette
}

// Option configures the module.
type Option func(*Module)

// WithLogger sets the logger reporting palette rebuilds.
func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.logger = l
		}
	}
}

var shared struct {
	once   sync.Once
	module *Module
	host   *sql.DB
	err    error
}

// install registers the module and opens the host connection, once per process.
func install() (*Module, *sql.DB, error) {
	shared.once.Do(func() {
		m := &Module{
			logger: logger.Nop(),
			dbs:    map[string]*sql.DB{},
			keys:   map[*sql.DB]string{},
			cache:  map[cacheKey]*entry{},
		}
		if err := vtab.RegisterModule(nil, ModuleName, m); err != nil {
			shared.err = fmt.Errorf("match: %w", err)
			return
		}
		host, err := engine.Open(":memory:")
		if err != nil {
			shared.err = fmt.Errorf("match: open host: %w", err)
			return
		}
		// the module is installed on the first connection opened after registration
		if err := host.Ping(); err != nil {
			host.Close()
			shared.err = fmt.Errorf("match: open host: %w", err)
			return
		}
		shared.module, shared.host = m, host
	})
	return shared.module, shared.host, shared.err
}

// Host returns the single-connection pool color_match tables live on.
func Host() (*sql.DB, error) {
	_, host, err := install()
	return host, err
}

// Register makes db available to color_match tables and returns its key.
// Registering the same *sql.DB again returns the same key.
func Register(db *sql.DB, opts ...Option) (string, error) {
	if db == nil {
		return "", fmt.Errorf("match: db is nil")
	}
	m, _, err := install()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, opt := range opts {
		opt(m)
	}
	if key, ok := m.keys[db]; ok {
		return key, nil
	}
	m.seq++
	key := strconv.Itoa(m.seq)
	m.keys[db] = key
	m.dbs[key] = db
	return key, nil
}

// release drops the key of db and its cached palettes.
func (m *Module) release(db *sql.DB) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.keys[db]
	if !ok {
		return
	}
	delete(m.keys, db)
	delete(m.dbs, key)
	for k := range m.cache {
		if k.db == key {
			delete(m.cache, k)
		}
	}
}

// Release forgets db and its cached palettes; call it before closing a
// registered database. Tables bound to db fail until they are bound again.
func Release(db *sql.DB) {
	if m, _, err := install(); err == nil {
		m.release(db)
	}
}

// Bind (re)creates the color_match table name on the host, reading the
// palette table source of db.
func Bind(ctx context.Context, db *sql.DB, name, source string, opts ...Option) error {
	if err := store.ValidateTable(name); err != nil {
		return err
	}
	if source == "" {
		source = store.DefaultTable
	}
	if err := store.ValidateTable(source); err != nil {
		return err
	}
	key, err := Register(db, opts...)
	if err != nil {
		return err
	}
	host, err := Host()
	if err != nil {
		return err
	}
	quoted := store.QuoteIdentifier(name)
	if _, err := host.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoted); err != nil {
		return fmt.Errorf("match: drop %v: %w", name, err)
	}
	ddl := fmt.Sprintf("CREATE VIRTUAL TABLE %s USING %s(%s, %s)", quoted, ModuleName, source, key)
	if _, err := host.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("match: create %v: %w", name, err)
	}
	return nil
}

// Create initializes a color_match table.
func (m *Module) Create(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args)
}

// Connect attaches to an existing color_match table.
func (m *Module) Connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args)
}

func (m *Module) connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	if len(args) < 5 {
		return nil, fmt.Errorf("match: expects color_match(source, key), got %d args", len(args))
	}
	source := unquote(args[3])
	if err := store.ValidateTable(source); err != nil {
		return nil, err
	}
	key := unquote(args[4])
	m.mu.Lock()
	db, ok := m.dbs[key]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("match: no database registered under key %q", key)
	}
	if err := ctx.EnableConstraintSupport(); err != nil {
		return nil, fmt.Errorf("match: EnableConstraintSupport failed: %w", err)
	}
	if err := ctx.Declare("CREATE TABLE x(hex TEXT, name TEXT, distance REAL)"); err != nil {
		return nil, err
	}
	// the source schema is ensured on the first query
	return &Table{module: m, db: db, key: key, source: source}, nil
}

func unquote(arg string) string {
	return strings.Trim(strings.TrimSpace(arg), `'"`)
}

// palette returns the cached palette of source in the database registered
// under key, rebuilding it when the table's version moved. A nil palette
// means the table is empty.
func (m *Module) palette(ctx context.Context, db *sql.DB, key, source string) (*palette.Palette, *store.SQLiteStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dbs[key] != db {
		return nil, nil, fmt.Errorf("match: database %q was released", key)
	}
	ck := cacheKey{db: key, source: source}
	e, ok := m.cache[ck]
	if !ok {
		st, err := store.NewSQLiteStore(db, source)
		if err != nil {
			return nil, nil, err
		}
		e = &entry{store: st, version: -1}
		m.cache[ck] = e
	}
	version, err := e.store.Version(ctx)
	if err != nil {
		return nil, nil, err
	}
	if version == e.version {
		return e.palette, e.store, nil
	}
	colors, err := e.store.Colors(ctx)
	if err != nil {
		return nil, nil, err
	}
	e.palette = nil
	if len(colors) > 0 {
		if e.palette, err = palette.New(colors, palette.WithLogger(m.logger)); err != nil {
			return nil, nil, err
		}
	}
	e.version = version
	m.logger.Debug("match: palette rebuilt", "table", source, "db", key, "version", version, "colors", len(colors))
	return e.palette, e.store, nil
}
