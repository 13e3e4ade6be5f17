package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// connection and pending authorization stores through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.crosspost/data/crosspost.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".crosspost", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "crosspost.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ConnectionStore returns a ConnectionStore interface backed by this store.
func (s *Store) ConnectionStore() driven.ConnectionStore {
	return &connectionStore{store: s}
}

// PendingAuthorizationStore returns a PendingAuthorizationStore interface
// backed by this store.
func (s *Store) PendingAuthorizationStore() driven.PendingAuthorizationStore {
	return &pendingAuthorizationStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Connection Store ====================

// connectionStore implements driven.ConnectionStore.
type connectionStore struct {
	store *Store
}

var _ driven.ConnectionStore = (*connectionStore)(nil)

// Save stores or replaces the connection for its platform.
func (s *connectionStore) Save(ctx context.Context, conn domain.Connection) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO connections (platform, access_token, username, code, app_id, client_key, connected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(platform) DO UPDATE SET
			access_token = excluded.access_token,
			username = excluded.username,
			code = excluded.code,
			app_id = excluded.app_id,
			client_key = excluded.client_key,
			connected_at = excluded.connected_at
	`, conn.Platform.String(), conn.AccessToken, conn.Username,
		nullString(conn.Code), nullString(conn.AppID), nullString(conn.ClientKey),
		conn.ConnectedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving connection: %w", err)
	}
	return nil
}

// Get retrieves the connection for a platform.
func (s *connectionStore) Get(ctx context.Context, platform domain.PlatformID) (*domain.Connection, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT platform, access_token, username, code, app_id, client_key, connected_at
		FROM connections WHERE platform = ?
	`, platform.String())

	conn, err := scanConnection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning connection: %w", err)
	}
	return conn, nil
}

// Remove deletes the connection for a platform.
func (s *connectionStore) Remove(ctx context.Context, platform domain.PlatformID) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM connections WHERE platform = ?", platform.String())
	if err != nil {
		return fmt.Errorf("removing connection: %w", err)
	}
	return nil
}

// List returns all stored connections.
func (s *connectionStore) List(ctx context.Context) ([]domain.Connection, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT platform, access_token, username, code, app_id, client_key, connected_at
		FROM connections ORDER BY platform
	`)
	if err != nil {
		return nil, fmt.Errorf("querying connections: %w", err)
	}
	defer rows.Close()

	var connections []domain.Connection
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning connection: %w", err)
		}
		connections = append(connections, *conn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating connections: %w", err)
	}
	return connections, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanConnection(row scanner) (*domain.Connection, error) {
	var conn domain.Connection
	var platform string
	var code, appID, clientKey sql.NullString
	var connectedAt sql.NullTime

	if err := row.Scan(&platform, &conn.AccessToken, &conn.Username,
		&code, &appID, &clientKey, &connectedAt); err != nil {
		return nil, err
	}

	conn.Platform = domain.PlatformID(platform)
	conn.Code = code.String
	conn.AppID = appID.String
	conn.ClientKey = clientKey.String
	if connectedAt.Valid {
		conn.ConnectedAt = connectedAt.Time
	}
	return &conn, nil
}

// ==================== Pending Authorization Store ====================

// pendingAuthorizationStore implements driven.PendingAuthorizationStore.
type pendingAuthorizationStore struct {
	store *Store
}

var _ driven.PendingAuthorizationStore = (*pendingAuthorizationStore)(nil)

// Put records a pending authorization, replacing any previous one.
func (s *pendingAuthorizationStore) Put(ctx context.Context, pending domain.PendingAuthorization) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO pending_authorization (slot, state, platform, created_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			state = excluded.state,
			platform = excluded.platform,
			created_at = excluded.created_at
	`, pending.State, pending.Platform.String(), pending.CreatedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving pending authorization: %w", err)
	}
	return nil
}

// Take returns the pending authorization and clears the slot.
func (s *pendingAuthorizationStore) Take(ctx context.Context) (*domain.PendingAuthorization, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, "SELECT state, platform, created_at FROM pending_authorization WHERE slot = 1")

	var pending domain.PendingAuthorization
	var platform string
	var createdAt sql.NullTime
	if err := row.Scan(&pending.State, &platform, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning pending authorization: %w", err)
	}
	pending.Platform = domain.PlatformID(platform)
	if createdAt.Valid {
		pending.CreatedAt = createdAt.Time
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM pending_authorization WHERE slot = 1"); err != nil {
		return nil, fmt.Errorf("clearing pending authorization: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing take: %w", err)
	}
	return &pending, nil
}

// nullString converts empty strings to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
