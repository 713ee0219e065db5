// Package dataset loads record collections from files via DuckDB.
// CSV, JSON, and Parquet inputs all go through the same path: DuckDB
// reads the file, headers are mapped to schema keys, and every cell is
// coerced to its column's declared type. Row order is preserved because
// downstream matching reports positions to the caller.
package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"shelfscore/internal/record"
	"shelfscore/internal/schema"
)

// Load reads a record collection from a file, keyed by the registry's
// column keys. Headers are matched case-insensitively after trimming;
// unrecognized columns are ignored, missing ones become nulls, and
// fully blank rows are dropped.
func Load(ctx context.Context, path string, reg *schema.Registry) ([]record.Record, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	query, err := readerQuery(path)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	keyByPosition, recognized := mapHeaders(headers, reg)
	if recognized == 0 {
		return nil, fmt.Errorf("%s: no recognisable column headers", filepath.Base(path))
	}

	records := make([]record.Record, 0)
	for rows.Next() {
		cells := make([]any, len(headers))
		pointers := make([]any, len(headers))
		for i := range cells {
			pointers[i] = &cells[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec, blank, err := buildRecord(cells, keyByPosition, reg)
		if err != nil {
			return nil, err
		}
		if blank {
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return records, nil
}

// readerQuery picks the DuckDB table function for the file extension.
func readerQuery(path string) (string, error) {
	escaped := strings.ReplaceAll(path, "'", "''")
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return fmt.Sprintf("SELECT * FROM read_csv_auto('%s', header=true, all_varchar=true)", escaped), nil
	case ".json", ".ndjson", ".jsonl":
		return fmt.Sprintf("SELECT * FROM read_json_auto('%s')", escaped), nil
	case ".parquet":
		return fmt.Sprintf("SELECT * FROM read_parquet('%s')", escaped), nil
	}
	return "", fmt.Errorf("unsupported input format %q", filepath.Ext(path))
}

// mapHeaders resolves file headers to schema keys. Both the column key
// and the display name are accepted, so files written with pretty
// headers load the same as machine output.
func mapHeaders(headers []string, reg *schema.Registry) ([]string, int) {
	nameToKey := make(map[string]string, reg.Len()*2)
	for _, col := range reg.Columns() {
		nameToKey[strings.ToLower(col.Key)] = col.Key
		nameToKey[strings.ToLower(strings.TrimSpace(col.Name))] = col.Key
	}
	keyByPosition := make([]string, len(headers))
	recognized := 0
	seen := make(map[string]struct{}, len(headers))
	for i, header := range headers {
		key, ok := nameToKey[strings.ToLower(strings.TrimSpace(header))]
		if !ok {
			continue
		}
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}
		keyByPosition[i] = key
		recognized++
	}
	return keyByPosition, recognized
}

// buildRecord coerces one scanned row into a Record.
func buildRecord(cells []any, keyByPosition []string, reg *schema.Registry) (record.Record, bool, error) {
	rec := make(record.Record, reg.Len())
	blank := true
	for i, cell := range cells {
		key := keyByPosition[i]
		if key == "" {
			continue
		}
		column, _ := reg.Lookup(key)
		value, err := cellValue(cell, column.Type)
		if err != nil {
			return nil, false, err
		}
		rec[key] = value
		if !value.IsNull() {
			blank = false
		}
	}
	return rec, blank, nil
}

// cellValue converts a scanned database value to the column's type.
func cellValue(cell any, columnType schema.Type) (record.Value, error) {
	switch v := cell.(type) {
	case nil:
		return record.Null(), nil
	case string:
		return record.FromCell(v, columnType)
	case []byte:
		return record.FromCell(string(v), columnType)
	case bool:
		return record.Coerce(record.Text(fmt.Sprintf("%t", v)), columnType)
	case int64:
		return record.Coerce(record.Integer(v), columnType)
	case int32:
		return record.Coerce(record.Integer(int64(v)), columnType)
	case float64:
		return record.Coerce(record.Float(v), columnType)
	case float32:
		return record.Coerce(record.Float(float64(v)), columnType)
	default:
		return record.FromCell(fmt.Sprintf("%v", v), columnType)
	}
}
