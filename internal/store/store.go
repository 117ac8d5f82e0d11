package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const schema = `
CREATE TABLE IF NOT EXISTS professors (
	professorid INTEGER PRIMARY KEY,
	name        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS classes (
	classid     INTEGER PRIMARY KEY,
	class       TEXT NOT NULL,
	code        TEXT NOT NULL,
	professorid INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS types (
	typeid      INTEGER PRIMARY KEY,
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS problems (
	classid    INTEGER,
	homeworkid INTEGER NOT NULL,
	typeid     INTEGER NOT NULL,
	lost       REAL
);

CREATE INDEX IF NOT EXISTS problems_homework ON problems (homeworkid);
`

// Config holds the parameters for opening a Store.
type Config struct {
	// Path is the SQLite database file. It is created if missing.
	Path string

	// Logger receives operational messages. Nil means no logging.
	Logger *zap.Logger
}

// Store is a handle on the grading database. It is not safe for
// concurrent use.
type Store struct {
	conn   *sqlite.Conn
	path   string
	logger *zap.Logger
}

// Open opens the database and applies the connection pragmas. It does
// not create the schema; call Init for that.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store: Path is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := sqlite.OpenConn(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", cfg.Path, err)
	}

	if err := prepareConnection(conn); err != nil {
		conn.Close()
		return nil, err
	}

	logger.Debug("database opened", zap.String("path", cfg.Path))

	return &Store{
		conn:   conn,
		path:   cfg.Path,
		logger: logger,
	}, nil
}

func prepareConnection(conn *sqlite.Conn) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=OFF",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("store: %s: %w", pragma, err)
		}
	}
	return nil
}

// Path returns the database file the store was opened on.
func (s *Store) Path() string {
	return s.path
}

// Close closes the connection.
func (s *Store) Close() error {
	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("store: closing %s: %w", s.path, err)
	}
	s.logger.Debug("database closed", zap.String("path", s.path))
	return nil
}

// Init creates any missing tables.
func (s *Store) Init(ctx context.Context) error {
	defer s.interruptOn(ctx)()
	if err := sqlitex.ExecuteScript(s.conn, schema, nil); err != nil {
		return fmt.Errorf("store: creating schema: %w", err)
	}
	return nil
}

// interruptOn makes ctx cancellation interrupt the running statement.
// The returned func restores the previous interrupt channel.
func (s *Store) interruptOn(ctx context.Context) func() {
	prev := s.conn.SetInterrupt(ctx.Done())
	return func() { s.conn.SetInterrupt(prev) }
}

// LoadCatalogs reads the class and error type catalogs.
func (s *Store) LoadCatalogs(ctx context.Context) (Catalogs, error) {
	defer s.interruptOn(ctx)()

	var cat Catalogs
	err := sqlitex.Execute(s.conn, `
		SELECT classes.classid, classes.class, classes.code, professors.name, classes.professorid
		FROM classes INNER JOIN professors ON classes.professorid = professors.professorid
		ORDER BY classes.classid`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				cat.Classes = append(cat.Classes, Class{
					ID:          stmt.ColumnInt64(0),
					Subject:     stmt.ColumnText(1),
					Code:        stmt.ColumnText(2),
					Professor:   stmt.ColumnText(3),
					ProfessorID: stmt.ColumnInt64(4),
				})
				return nil
			},
		})
	if err != nil {
		return Catalogs{}, fmt.Errorf("store: loading classes: %w", err)
	}

	err = sqlitex.Execute(s.conn, "SELECT typeid, description FROM types ORDER BY typeid",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				cat.Types = append(cat.Types, ErrorType{
					ID:          stmt.ColumnInt64(0),
					Description: stmt.ColumnText(1),
				})
				return nil
			},
		})
	if err != nil {
		return Catalogs{}, fmt.Errorf("store: loading types: %w", err)
	}

	s.logger.Debug("catalogs loaded",
		zap.Int("classes", len(cat.Classes)),
		zap.Int("types", len(cat.Types)),
	)
	return cat, nil
}

// CreateType inserts a new error type and returns it.
func (s *Store) CreateType(ctx context.Context, description string) (ErrorType, error) {
	defer s.interruptOn(ctx)()
	err := sqlitex.Execute(s.conn, "INSERT INTO types (description) VALUES (?)",
		&sqlitex.ExecOptions{Args: []any{description}})
	if err != nil {
		return ErrorType{}, fmt.Errorf("store: creating type %q: %w", description, err)
	}
	t := ErrorType{ID: s.conn.LastInsertRowID(), Description: description}
	s.logger.Info("error type created", zap.Int64("typeid", t.ID), zap.String("description", description))
	return t, nil
}

// AddProfessor inserts a professor and returns its id.
func (s *Store) AddProfessor(ctx context.Context, name string) (int64, error) {
	defer s.interruptOn(ctx)()
	err := sqlitex.Execute(s.conn, "INSERT INTO professors (name) VALUES (?)",
		&sqlitex.ExecOptions{Args: []any{name}})
	if err != nil {
		return 0, fmt.Errorf("store: adding professor %q: %w", name, err)
	}
	return s.conn.LastInsertRowID(), nil
}

// AddClass inserts a class taught by professorID and returns its id.
func (s *Store) AddClass(ctx context.Context, subject, code string, professorID int64) (int64, error) {
	defer s.interruptOn(ctx)()
	err := sqlitex.Execute(s.conn, "INSERT INTO classes (class, code, professorid) VALUES (?, ?, ?)",
		&sqlitex.ExecOptions{Args: []any{subject, code, professorID}})
	if err != nil {
		return 0, fmt.Errorf("store: adding class %q: %w", subject, err)
	}
	return s.conn.LastInsertRowID(), nil
}

// NextHomeworkID returns one past the highest recorded homework id, or
// 0 for an empty database.
func (s *Store) NextHomeworkID(ctx context.Context) (int64, error) {
	defer s.interruptOn(ctx)()
	var next int64
	err := sqlitex.Execute(s.conn, "SELECT MAX(homeworkid) FROM problems",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				if stmt.ColumnType(0) != sqlite.TypeNull {
					next = stmt.ColumnInt64(0) + 1
				}
				return nil
			},
		})
	if err != nil {
		return 0, fmt.Errorf("store: reading homework ids: %w", err)
	}
	return next, nil
}

// SaveEntry writes one row per problem plus one row per correctly
// solved problem, in a single transaction.
func (s *Store) SaveEntry(ctx context.Context, e Entry) (err error) {
	defer s.interruptOn(ctx)()

	endTransaction, err := sqlitex.ImmediateTransaction(s.conn)
	if err != nil {
		return fmt.Errorf("store: begin transaction: %w", err)
	}
	defer endTransaction(&err)

	var classID any
	if e.ClassID != nil {
		classID = *e.ClassID
	}

	const insert = "INSERT INTO problems (classid, homeworkid, typeid, lost) VALUES (?, ?, ?, ?)"
	for _, p := range e.Problems {
		if err := sqlitex.Execute(s.conn, insert, &sqlitex.ExecOptions{
			Args: []any{classID, e.HomeworkID, p.Type.ID, p.PointsLost},
		}); err != nil {
			return fmt.Errorf("store: saving problem: %w", err)
		}
	}
	for i := 0; i < e.NonErrors; i++ {
		if err := sqlitex.Execute(s.conn, insert, &sqlitex.ExecOptions{
			Args: []any{classID, e.HomeworkID, NonErrorTypeID, nil},
		}); err != nil {
			return fmt.Errorf("store: saving non-error: %w", err)
		}
	}

	s.logger.Info("homework saved",
		zap.Int64("homeworkid", e.HomeworkID),
		zap.Int("problems", len(e.Problems)),
		zap.Int("non_errors", e.NonErrors),
	)
	return nil
}

// Homework reads back the entry stored under homeworkID. A homework
// with no rows yields an empty Entry.
func (s *Store) Homework(ctx context.Context, homeworkID int64) (Entry, error) {
	defer s.interruptOn(ctx)()

	e := Entry{HomeworkID: homeworkID}
	err := sqlitex.Execute(s.conn, `
		SELECT problems.classid, problems.typeid, problems.lost, types.description
		FROM problems LEFT JOIN types ON problems.typeid = types.typeid
		WHERE problems.homeworkid = ?
		ORDER BY problems.rowid`,
		&sqlitex.ExecOptions{
			Args: []any{homeworkID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				if e.ClassID == nil && stmt.ColumnType(0) != sqlite.TypeNull {
					id := stmt.ColumnInt64(0)
					e.ClassID = &id
				}
				typeID := stmt.ColumnInt64(1)
				if typeID == NonErrorTypeID && stmt.ColumnType(2) == sqlite.TypeNull {
					e.NonErrors++
					return nil
				}
				e.Problems = append(e.Problems, Problem{
					Type:       ErrorType{ID: typeID, Description: stmt.ColumnText(3)},
					PointsLost: stmt.ColumnFloat(2),
				})
				return nil
			},
		})
	if err != nil {
		return Entry{}, fmt.Errorf("store: reading homework %d: %w", homeworkID, err)
	}
	return e, nil
}
