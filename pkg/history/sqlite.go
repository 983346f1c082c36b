package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteStore implements Store using SQLite. It uses a write-ahead log
// for concurrent read performance and checkpoints it periodically in the
// background.
type SQLiteStore struct {
	db        *sql.DB
	dbPath    string
	done      chan struct{}
	mu        sync.RWMutex
	closeOnce sync.Once

	saveStmt  *sql.Stmt
	getStmt   *sql.Stmt
	pruneStmt *sql.Stmt
}

// SQLiteStoreConfig configures the SQLite store.
type SQLiteStoreConfig struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// CheckpointInterval is how often to checkpoint the WAL.
	// Default: 5 minutes.
	CheckpointInterval time.Duration

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds.
	BusyTimeout time.Duration
}

// NewSQLiteStore creates a SQLite-backed history store with default
// settings.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	return NewSQLiteStoreWithConfig(SQLiteStoreConfig{DBPath: dbPath})
}

// NewSQLiteStoreWithConfig creates a SQLite store with custom settings.
func NewSQLiteStoreWithConfig(cfg SQLiteStoreConfig) (*SQLiteStore, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if cfg.CheckpointInterval == 0 {
		cfg.CheckpointInterval = 5 * time.Minute
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.DBPath, int(cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &SQLiteStore{
		db:     db,
		dbPath: cfg.DBPath,
		done:   make(chan struct{}),
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := store.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}

	go store.checkpointLoop(cfg.CheckpointInterval)

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS validation_records (
		id TEXT PRIMARY KEY,
		object_type TEXT NOT NULL,
		source TEXT NOT NULL,
		payload_size INTEGER NOT NULL,
		is_valid INTEGER NOT NULL,
		errors TEXT,
		duration_ns INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_created_at ON validation_records(created_at);
	CREATE INDEX IF NOT EXISTS idx_records_object_type ON validation_records(object_type);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.saveStmt, err = s.db.Prepare(`
		INSERT INTO validation_records (id, object_type, source, payload_size, is_valid, errors, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare save statement: %w", err)
	}

	s.getStmt, err = s.db.Prepare(`
		SELECT id, object_type, source, payload_size, is_valid, errors, duration_ns, created_at
		FROM validation_records
		WHERE id = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare get statement: %w", err)
	}

	s.pruneStmt, err = s.db.Prepare(`
		DELETE FROM validation_records
		WHERE created_at < ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare prune statement: %w", err)
	}

	return nil
}

// Save persists a record.
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if rec.ID == "" {
		return fmt.Errorf("record ID cannot be empty")
	}

	var errorsJSON []byte
	if len(rec.Errors) > 0 {
		var err error
		errorsJSON, err = json.Marshal(rec.Errors)
		if err != nil {
			return fmt.Errorf("failed to marshal errors: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.saveStmt.ExecContext(ctx,
		rec.ID,
		rec.ObjectType,
		rec.Source,
		rec.PayloadSize,
		boolToInt(rec.IsValid),
		string(errorsJSON),
		rec.Duration.Nanoseconds(),
		rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// Get retrieves one record by ID. Returns nil if not found.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, fmt.Errorf("id cannot be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, err := scanRecord(s.getStmt.QueryRowContext(ctx, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	return rec, nil
}

// List returns records matching the filter, newest first.
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]*Record, error) {
	query := `
		SELECT id, object_type, source, payload_size, is_valid, errors, duration_ns, created_at
		FROM validation_records
	`
	var (
		conds []string
		args  []interface{}
	)
	if filter.ObjectType != "" {
		conds = append(conds, "object_type = ?")
		args = append(args, filter.ObjectType)
	}
	if filter.OnlyInvalid {
		conds = append(conds, "is_valid = 0")
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}

// Prune removes records created before the cutoff.
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.pruneStmt.ExecContext(ctx, olderThan.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to prune records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned records: %w", err)
	}
	return int(n), nil
}

// Close stops the checkpoint loop and closes the database.
func (s *SQLiteStore) Close() error {
	var closeErr error
	s.closeOnce.Do(func() {
		close(s.done)

		s.mu.Lock()
		defer s.mu.Unlock()

		// Final checkpoint before closing.
		if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
			closeErr = fmt.Errorf("failed to checkpoint on close: %w", err)
		}
		if err := s.db.Close(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to close database: %w", err)
		}
	})
	return closeErr
}

// checkpointLoop periodically checkpoints the WAL to bound its size.
func (s *SQLiteStore) checkpointLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			s.db.Exec("PRAGMA wal_checkpoint(PASSIVE)")
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		rec        Record
		isValid    int
		errorsJSON string
		durationNS int64
		createdAt  int64
	)
	err := row.Scan(&rec.ID, &rec.ObjectType, &rec.Source, &rec.PayloadSize,
		&isValid, &errorsJSON, &durationNS, &createdAt)
	if err != nil {
		return nil, err
	}

	rec.IsValid = isValid != 0
	rec.Duration = time.Duration(durationNS)
	rec.CreatedAt = time.Unix(0, createdAt).UTC()

	if errorsJSON != "" {
		if err := json.Unmarshal([]byte(errorsJSON), &rec.Errors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal errors: %w", err)
		}
	}
	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
