package duck

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	nt "tablo/entity"
)

const (
	tableName = "records"
)

type Duck struct {
	db       *sql.DB
	ctx      context.Context
	logger   nt.Logger
	filename string
	fields   []string
}

// New opens an in-memory duck; the duckdb driver must be registered by the caller.
func New(ctx context.Context, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		ctx:    ctx,
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Load a csv or newline delimited json file
func (dk *Duck) Load(path string) (err error) {

	reader, err := readerFor(path)
	if err != nil {
		return
	}

	create := fmt.Sprintf(
		"CREATE OR REPLACE TABLE %s AS SELECT * FROM %s('%s')",
		tableName, reader, strings.ReplaceAll(path, "'", "''"))

	_, err = dk.db.Exec(create)
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return
	}

	fields, err := getFields(dk.db)
	if err != nil {
		return
	}

	dk.filename = path
	dk.fields = fields

	dk.logger.Info(dk.ctx, "file loaded", "file", path, "fields", len(fields))
	return
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return dk.filename
}

// Headers returns field names in file order
func (dk *Duck) Headers() []string {
	return dk.fields
}

// Rows returns every record of the loaded file
func (dk *Duck) Rows() (rows []nt.Row, err error) {

	if dk.filename == "" {
		err = errors.New("nothing loaded")
		return
	}

	query := fmt.Sprintf("SELECT * FROM %s", tableName)

	result, err := dk.db.Query(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query records")
		return
	}
	defer result.Close()

	cols, err := result.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get cols from query rows")
		return
	}

	for result.Next() {
		var vals []any
		vals, err = scanRow(result, len(cols))
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		row := make(nt.Row, len(cols))
		for i, col := range cols {
			row[col] = nt.Value{Raw: normalize(vals[i])}
		}
		rows = append(rows, row)
	}

	err = result.Err()
	if err != nil {
		err = errors.Wrapf(err, "error iterating rows")
		return
	}

	dk.logger.Info(dk.ctx, "rows fetched", "count", len(rows), "file", dk.filename)
	return
}

// unexported

func readerFor(path string) (reader string, err error) {

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		reader = "read_csv_auto"
	case ".json", ".ndjson", ".jsonl":
		reader = "read_json_auto"
	case ".parquet":
		reader = "read_parquet"
	default:
		err = errors.Errorf("unsupported file type: %s", path)
	}
	return
}

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}

// normalize turns driver bytes into text
func normalize(val any) any {
	if b, ok := val.([]byte); ok {
		return string(b)
	}
	return val
}

func getFields(db *sql.DB) (fields []string, err error) {

	rows, err := db.Query(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		ORDER BY ordinal_position
	`, tableName)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field string
		if err = rows.Scan(&field); err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating fields")
	return
}
