package database

import (
	"database/sql"
	"fmt"
	"time"

	"cmsadmin/gen/db"
	"cmsadmin/logging"

	_ "modernc.org/sqlite"
)

// Config holds database configuration
type Config struct {
	Path              string        `env:"DB_PATH" default:"./cmsadmin.db"`
	MaxOpenConns      int           `env:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns      int           `env:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime   time.Duration `env:"DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime   time.Duration `env:"DB_CONN_MAX_IDLE_TIME" default:"15m"`
	BusyTimeoutMs     int           `env:"DB_BUSY_TIMEOUT_MS" default:"5000"`
	EnableForeignKeys bool          `env:"DB_ENABLE_FOREIGN_KEYS" default:"true"`
	EnableWAL         bool          `env:"DB_ENABLE_WAL" default:"true"`
}

// Database wraps the SQL database connections and provides managed access
type Database struct {
	readDB       *sql.DB     // Connection pool for reads
	writeDB      *sql.DB     // Serialized connection for writes
	readQueries  *db.Queries // Queries using read connection
	writeQueries *db.Queries // Queries using write connection
	config       Config
	logger       *logging.Logger
}

// New creates a new Database instance with separate read/write connections
func New(config Config, logger *logging.Logger) (*Database, error) {
	dsn := buildDSN(config)

	// Check if database needs to be initialized
	dbExists := checkDatabaseExists(config.Path)

	logger.Database("Opening database connections",
		"path", config.Path,
		"exists", dbExists,
		"read_max_open_conns", config.MaxOpenConns,
		"write_max_open_conns", 1)

	// Create read connection pool
	readDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open read database: %w", err)
	}

	// Configure read connection pool for concurrency
	readDB.SetMaxOpenConns(config.MaxOpenConns)
	readDB.SetMaxIdleConns(config.MaxIdleConns)
	readDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	readDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	// Create write connection (serialized)
	writeDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		readDB.Close()
		return nil, fmt.Errorf("failed to open write database: %w", err)
	}

	// Configure write connection for serialization
	writeDB.SetMaxOpenConns(1) // Single connection forces serialization
	writeDB.SetMaxIdleConns(1) // Keep the connection alive
	writeDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	writeDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	database := &Database{
		readDB:       readDB,
		writeDB:      writeDB,
		readQueries:  db.New(readDB),
		writeQueries: db.New(writeDB),
		config:       config,
		logger:       logger,
	}

	// Test connections and configure database
	if err := database.initialize(); err != nil {
		readDB.Close()
		writeDB.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run migrations to ensure database schema is up to date
	if err := database.runMigrations(); err != nil {
		readDB.Close()
		writeDB.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	logger.Database("Database initialized successfully",
		"path", config.Path,
		"existed", dbExists,
		"wal_mode", config.EnableWAL,
		"read_connections", config.MaxOpenConns,
		"write_connections", 1)

	return database, nil
}

// buildDSN constructs the SQLite data source name using modernc's _pragma parameters,
// which are applied to every connection the pool opens.
func buildDSN(config Config) string {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", config.Path, config.BusyTimeoutMs)

	if config.EnableWAL {
		dsn += "&_pragma=journal_mode(WAL)"
	}

	if config.EnableForeignKeys {
		dsn += "&_pragma=foreign_keys(1)"
	}

	dsn += "&_pragma=synchronous(NORMAL)"
	dsn += "&_pragma=temp_store(MEMORY)"
	dsn += "&_pragma=cache_size(-64000)" // 64MB cache
	dsn += "&_time_format=sqlite"

	return dsn
}

// initialize configures both database connections after creation
func (d *Database) initialize() error {
	// Test read connection
	if err := d.readDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping read database: %w", err)
	}

	// Test write connection
	if err := d.writeDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping write database: %w", err)
	}

	// Configure both connections with same settings
	connections := []*sql.DB{d.readDB, d.writeDB}
	connectionTypes := []string{"read", "write"}

	for i, conn := range connections {
		connType := connectionTypes[i]

		// Set busy timeout
		if _, err := conn.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", d.config.BusyTimeoutMs)); err != nil {
			return fmt.Errorf("failed to set busy_timeout on %s connection: %w", connType, err)
		}
		d.logger.Database("Busy timeout configured", "connection", connType, "timeout_ms", d.config.BusyTimeoutMs)

		// Verify WAL mode; the DSN pragma already requested it
		if d.config.EnableWAL {
			var journalMode string
			err := conn.QueryRow("PRAGMA journal_mode").Scan(&journalMode)
			if err != nil {
				return fmt.Errorf("failed to enable WAL mode on %s connection: %w", connType, err)
			}

			if journalMode != "wal" {
				d.logger.Warn("WAL mode not enabled", "connection", connType, "journal_mode", journalMode)
			} else {
				d.logger.Database("WAL mode enabled successfully", "connection", connType, "journal_mode", journalMode)
			}
		}
	}

	// Log connection pool stats for monitoring
	d.logPoolStats()

	return nil
}

// Queries returns the read queries interface (for backwards compatibility)
func (d *Database) Queries() *db.Queries {
	return d.readQueries
}

// ReadQueries returns the read-optimized queries interface
func (d *Database) ReadQueries() *db.Queries {
	return d.readQueries
}

// WriteQueries returns the write-serialized queries interface
func (d *Database) WriteQueries() *db.Queries {
	return d.writeQueries
}

// DB returns the read database connection (for backwards compatibility)
func (d *Database) DB() *sql.DB {
	return d.readDB
}

// ReadDB returns the read database connection
func (d *Database) ReadDB() *sql.DB {
	return d.readDB
}

// WriteDB returns the write database connection
func (d *Database) WriteDB() *sql.DB {
	return d.writeDB
}

// Close closes both database connections
func (d *Database) Close() error {
	d.logger.Database("Closing database connections")

	if d.config.EnableWAL {
		d.logger.Info("checkpointing WAL...")
		if _, err := d.writeDB.Exec("PRAGMA wal_checkpoint(TRUNCATE);"); err != nil {
			d.logger.Warn("failed to checkpoint WAL", "error", err)
		}
	}

	var errs []error
	if err := d.readDB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("read connection: %w", err))
	}
	if err := d.writeDB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("write connection: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to close connections: %v", errs)
	}
	return nil
}

// Health checks database connectivity and returns pool statistics for both connections
func (d *Database) Health() (map[string]interface{}, error) {
	if err := d.readDB.Ping(); err != nil {
		return nil, fmt.Errorf("read database ping failed: %w", err)
	}
	if err := d.writeDB.Ping(); err != nil {
		return nil, fmt.Errorf("write database ping failed: %w", err)
	}

	readStats := d.readDB.Stats()
	writeStats := d.writeDB.Stats()

	schemaVersion, err := d.SchemaVersion()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"schema_version": schemaVersion,
		"read_pool": map[string]interface{}{
			"open_connections":    readStats.OpenConnections,
			"in_use":              readStats.InUse,
			"idle":                readStats.Idle,
			"wait_count":          readStats.WaitCount,
			"wait_duration":       readStats.WaitDuration.String(),
			"max_idle_closed":     readStats.MaxIdleClosed,
			"max_lifetime_closed": readStats.MaxLifetimeClosed,
			"max_open_conns":      d.config.MaxOpenConns,
		},
		"write_pool": map[string]interface{}{
			"open_connections":    writeStats.OpenConnections,
			"in_use":              writeStats.InUse,
			"idle":                writeStats.Idle,
			"wait_count":          writeStats.WaitCount,
			"wait_duration":       writeStats.WaitDuration.String(),
			"max_idle_closed":     writeStats.MaxIdleClosed,
			"max_lifetime_closed": writeStats.MaxLifetimeClosed,
			"max_open_conns":      1,
		},
	}, nil
}

// logPoolStats logs current connection pool statistics for both connections
func (d *Database) logPoolStats() {
	readStats := d.readDB.Stats()
	writeStats := d.writeDB.Stats()

	d.logger.Database("Read connection pool stats",
		"open_connections", readStats.OpenConnections,
		"in_use", readStats.InUse,
		"idle", readStats.Idle,
		"wait_count", readStats.WaitCount,
		"wait_duration", readStats.WaitDuration.String())

	d.logger.Database("Write connection pool stats",
		"open_connections", writeStats.OpenConnections,
		"in_use", writeStats.InUse,
		"idle", writeStats.Idle,
		"wait_count", writeStats.WaitCount,
		"wait_duration", writeStats.WaitDuration.String())
}

// WithTx executes a function within a database transaction (uses write connection)
func (d *Database) WithTx(fn func(*db.Queries) error) error {
	tx, err := d.writeDB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	qtx := d.writeQueries.WithTx(tx)

	if err := fn(qtx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			d.logger.Error("Failed to rollback transaction", "error", rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithReadTx executes a function within a read-only transaction
func (d *Database) WithReadTx(fn func(*db.Queries) error) error {
	tx, err := d.readDB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin read transaction: %w", err)
	}

	qtx := d.readQueries.WithTx(tx)

	if err := fn(qtx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			d.logger.Error("Failed to rollback read transaction", "error", rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit read transaction: %w", err)
	}

	return nil
}
