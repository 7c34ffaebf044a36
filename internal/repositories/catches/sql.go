package catches

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Supported SQL drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// goose keeps its dialect and filesystem in package state
var gooseMu sync.Mutex

// SQLConfig selects the ledger database
type SQLConfig struct {
	Driver string
	DSN    string
}

// Validate checks the configuration
func (c *SQLConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("driver", c.Driver, vb)
	errors.ValidateRequired("dsn", c.DSN, vb)
	if c.Driver != "" {
		errors.ValidateEnum("driver", c.Driver, []string{DriverSQLite, DriverPostgres, DriverMySQL}, vb)
	}
	return vb.Build()
}

// SQLRepository implements Repository on database/sql
type SQLRepository struct {
	db     *sql.DB
	pool   *pgxpool.Pool
	driver string
}

// OpenSQL connects to the ledger database and applies pending migrations
func OpenSQL(ctx context.Context, cfg *SQLConfig) (*SQLRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	repo := &SQLRepository{driver: cfg.Driver}

	switch cfg.Driver {
	case DriverSQLite:
		db, err := sql.Open("sqlite", cfg.DSN)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open sqlite ledger")
		}
		// a single connection keeps :memory: databases coherent
		db.SetMaxOpenConns(1)
		repo.db = db

	case DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.DSN)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to connect to postgres ledger")
		}
		repo.pool = pool
		repo.db = stdlib.OpenDBFromPool(pool)

	case DriverMySQL:
		mc, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid mysql dsn")
		}
		connector, err := mysql.NewConnector(mc)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to configure mysql ledger")
		}
		repo.db = sql.OpenDB(connector)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := repo.db.PingContext(pingCtx); err != nil {
		_ = repo.Close()
		return nil, errors.Wrapf(err, "failed to ping %s ledger", cfg.Driver)
	}

	if err := repo.migrate(ctx); err != nil {
		_ = repo.Close()
		return nil, err
	}

	return repo, nil
}

func (r *SQLRepository) migrate(ctx context.Context) error {
	dialect := r.driver
	if dialect == DriverSQLite {
		dialect = "sqlite3"
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrapf(err, "failed to set migration dialect")
	}
	if err := goose.UpContext(ctx, r.db, "migrations"); err != nil {
		return errors.Wrapf(err, "failed to run ledger migrations")
	}
	return nil
}

// Close releases the database handle
func (r *SQLRepository) Close() error {
	err := r.db.Close()
	if r.pool != nil {
		r.pool.Close()
	}
	return err
}

// rebind rewrites ? placeholders for drivers that number them
func (r *SQLRepository) rebind(query string) string {
	if r.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func toInt64(field string, v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, errors.Reasonedf(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
			"%s %d does not fit the ledger", field, v)
	}
	return int64(v), nil
}

// Create records a catch
func (r *SQLRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}
	rec := input.Record

	instanceID, err := toInt64("instance id", rec.InstanceID)
	if err != nil {
		return nil, err
	}
	speciesID, err := toInt64("species id", rec.SpeciesID)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin ledger transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx,
		r.rebind(`SELECT 1 FROM catch_records WHERE owner = ? AND instance_id = ?`),
		rec.Owner, instanceID).Scan(&exists)
	if err == nil {
		return nil, catchExists(rec.Owner, rec.InstanceID)
	}
	if err != sql.ErrNoRows {
		return nil, errors.Wrapf(err, "failed to check catch record")
	}

	_, err = tx.ExecContext(ctx,
		r.rebind(`INSERT INTO catch_records (owner, instance_id, species_id, weight, caught_at) VALUES (?, ?, ?, ?, ?)`),
		rec.Owner, instanceID, speciesID, int64(rec.Weight), rec.CaughtAt)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to insert catch record")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit catch record")
	}
	return &CreateOutput{}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*entities.CatchRecord, error) {
	var (
		rec                   entities.CatchRecord
		instanceID, speciesID int64
		weight                int64
	)
	if err := row.Scan(&rec.Owner, &instanceID, &speciesID, &weight, &rec.CaughtAt); err != nil {
		return nil, err
	}
	if instanceID < 0 || speciesID < 0 || weight < 0 || weight > math.MaxUint16 {
		return nil, errors.Internalf("corrupt catch record for %s", rec.Owner)
	}
	rec.InstanceID = uint64(instanceID)
	rec.SpeciesID = uint64(speciesID)
	rec.Weight = uint16(weight)
	return &rec, nil
}

// Get returns one catch
func (r *SQLRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Owner, input.InstanceID); err != nil {
		return nil, err
	}
	instanceID, err := toInt64("instance id", input.InstanceID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx,
		r.rebind(`SELECT owner, instance_id, species_id, weight, caught_at FROM catch_records WHERE owner = ? AND instance_id = ?`),
		input.Owner, instanceID)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, catchNotFound(input.Owner, input.InstanceID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get catch record")
	}
	return &GetOutput{Record: rec}, nil
}

// ListByOwner returns the owner's catches
func (r *SQLRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	rows, err := r.db.QueryContext(ctx,
		r.rebind(`SELECT owner, instance_id, species_id, weight, caught_at FROM catch_records WHERE owner = ? ORDER BY instance_id`),
		input.Owner)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list catch records")
	}
	defer func() { _ = rows.Close() }()

	var out []*entities.CatchRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan catch record")
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list catch records")
	}

	return &ListByOwnerOutput{Records: out}, nil
}

// Delete consumes a catch
func (r *SQLRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.Owner, input.InstanceID); err != nil {
		return nil, err
	}
	instanceID, err := toInt64("instance id", input.InstanceID)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		r.rebind(`DELETE FROM catch_records WHERE owner = ? AND instance_id = ?`),
		input.Owner, instanceID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete catch record")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete catch record")
	}
	if n == 0 {
		return nil, catchNotFound(input.Owner, input.InstanceID)
	}

	return &DeleteOutput{}, nil
}

// String names the backing driver
func (r *SQLRepository) String() string {
	return fmt.Sprintf("catches.SQLRepository(%s)", r.driver)
}
