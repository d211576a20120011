package afl

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"

	"github.com/bairdj/afl-crowds/internal/logger"
	_ "modernc.org/sqlite"
)

var db *sql.DB

// Persistable is implemented by objects that map to a database table
// via `column`/`dbtype` struct tags
type Persistable interface {
	GetTableName() string
	GetPrimaryKey() map[string]any
	BeforeSave() error
}

// InitDatabase opens the database at the given path, replacing any
// previously open connection. Tests pass ":memory:".
func InitDatabase(path string) error {
	if db != nil {
		db.Close()
		db = nil
	}
	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite allows one writer, and a second pool connection to an
	// in-memory database would see a different database entirely
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("Database initialized", path)
	return nil
}

// CloseDatabase closes the database connection
func CloseDatabase() error {
	if db != nil {
		err := db.Close()
		db = nil
		return err
	}
	return nil
}

// GetDB returns the database connection, opening the configured
// database on first use
func GetDB() (*sql.DB, error) {
	if db == nil {
		if err := InitDatabase(Config.DbPath); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// CreateTables creates all tables used by the dataset
func CreateTables() error {
	if err := CreateTable(&Match{}); err != nil {
		return fmt.Errorf("failed to create match table: %w", err)
	}
	if err := CreateTable(&Team{}); err != nil {
		return fmt.Errorf("failed to create team table: %w", err)
	}
	return nil
}

// CreateTable creates a table for the given persistable object using struct tags
func CreateTable(obj Persistable) error {
	d, err := GetDB()
	if err != nil {
		return err
	}

	tableName := obj.GetTableName()
	createSQL := generateCreateTableSQL(obj, tableName)
	logger.Debug("Creating table with SQL", createSQL)

	if _, err = d.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	for _, query := range generateIndexSQL(obj, tableName) {
		if _, err := d.Exec(query); err != nil {
			logger.Warn("Failed to create index", err)
		}
	}

	return nil
}

// taggedField is one struct field carrying persistence tags
type taggedField struct {
	column  string
	dbtype  string
	primary bool
	index   bool
	value   reflect.Value
}

// taggedFields walks the struct tags of a persistable object. The value
// fields are only addressable when obj is a pointer.
func taggedFields(obj any) []taggedField {
	objValue := reflect.ValueOf(obj)
	objType := reflect.TypeOf(obj)
	if objValue.Kind() == reflect.Ptr {
		objValue = objValue.Elem()
		objType = objType.Elem()
	}

	var fields []taggedField
	for i := 0; i < objType.NumField(); i++ {
		field := objType.Field(i)
		if !field.IsExported() {
			continue
		}
		dbType := field.Tag.Get("dbtype")
		if dbType == "" {
			continue
		}
		column := field.Tag.Get("column")
		if column == "" {
			column = strings.ToLower(field.Name)
		}
		fields = append(fields, taggedField{
			column:  column,
			dbtype:  dbType,
			primary: field.Tag.Get("primary") == "true",
			index:   field.Tag.Get("index") != "",
			value:   objValue.Field(i),
		})
	}
	return fields
}

// generateCreateTableSQL generates CREATE TABLE SQL from struct tags
func generateCreateTableSQL(obj any, tableName string) string {
	var columns []string
	var primaryKeys []string

	for _, f := range taggedFields(obj) {
		dbType := f.dbtype
		if f.primary {
			primaryKeys = append(primaryKeys, f.column)
			dbType = strings.TrimSpace(strings.ReplaceAll(dbType, "PRIMARY KEY", ""))
		}
		columns = append(columns, fmt.Sprintf("%s %s", f.column, dbType))
	}

	if len(primaryKeys) > 0 {
		columns = append(columns, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(primaryKeys, ", ")))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", tableName, strings.Join(columns, ", "))
}

// generateIndexSQL generates index creation SQL from struct tags
func generateIndexSQL(obj any, tableName string) []string {
	var indexSQL []string
	for _, f := range taggedFields(obj) {
		if !f.index {
			continue
		}
		indexName := fmt.Sprintf("idx_%s_%s", tableName, f.column)
		indexSQL = append(indexSQL,
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)", indexName, tableName, f.column))
	}
	return indexSQL
}

// executor is satisfied by both *sql.DB and *sql.Tx so the save path
// can run inside or outside a transaction
type executor interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Save persists the object to the database (INSERT or UPDATE)
func Save(obj Persistable) error {
	d, err := GetDB()
	if err != nil {
		return err
	}
	return saveOn(d, obj)
}

func saveOn(e executor, obj Persistable) error {
	if err := obj.BeforeSave(); err != nil {
		return fmt.Errorf("before save hook failed: %w", err)
	}

	exists, err := existsOn(e, obj)
	if err != nil {
		return fmt.Errorf("failed to check existence: %w", err)
	}

	if exists {
		return update(e, obj)
	}
	return insert(e, obj)
}

// insert adds a new record to the database
func insert(e executor, obj Persistable) error {
	tableName := obj.GetTableName()
	var columns, placeholders []string
	var values []any
	for _, f := range taggedFields(obj) {
		columns = append(columns, f.column)
		placeholders = append(placeholders, "?")
		values = append(values, f.value.Interface())
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	if _, err := e.Exec(query, values...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", tableName, err)
	}
	return nil
}

// update modifies an existing record in the database
func update(e executor, obj Persistable) error {
	tableName := obj.GetTableName()
	var setPairs []string
	var values []any
	for _, f := range taggedFields(obj) {
		if f.primary {
			continue
		}
		setPairs = append(setPairs, fmt.Sprintf("%s = ?", f.column))
		values = append(values, f.value.Interface())
	}

	whereClause, whereValues := buildWhereClause(obj.GetPrimaryKey())
	values = append(values, whereValues...)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", tableName, strings.Join(setPairs, ", "), whereClause)

	if _, err := e.Exec(query, values...); err != nil {
		return fmt.Errorf("failed to update %s: %w", tableName, err)
	}
	return nil
}

// Exists checks if the object exists in the database
func Exists(obj Persistable) (bool, error) {
	d, err := GetDB()
	if err != nil {
		return false, err
	}
	return existsOn(d, obj)
}

func existsOn(e executor, obj Persistable) (bool, error) {
	tableName := obj.GetTableName()
	whereClause, values := buildWhereClause(obj.GetPrimaryKey())
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", tableName, whereClause)

	var count int
	if err := e.QueryRow(query, values...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check existence in %s: %w", tableName, err)
	}
	return count > 0, nil
}

// BulkSave saves multiple objects in a transaction
func BulkSave(objects []Persistable) error {
	d, err := GetDB()
	if err != nil {
		return err
	}

	tx, err := d.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, obj := range objects {
		if err := saveOn(tx, obj); err != nil {
			return fmt.Errorf("failed to save object: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// FindWhere executes a custom WHERE query and scans the results into
// new instances of the given persistable type
func FindWhere(obj Persistable, whereClause string, args ...any) ([]any, error) {
	d, err := GetDB()
	if err != nil {
		return nil, err
	}

	tableName := obj.GetTableName()
	var columns []string
	for _, f := range taggedFields(obj) {
		columns = append(columns, f.column)
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s", strings.Join(columns, ", "), tableName, whereClause)
	logger.Debug("FindWhere SQL", query)

	rows, err := d.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", tableName, err)
	}
	defer rows.Close()

	objType := reflect.TypeOf(obj)
	if objType.Kind() == reflect.Ptr {
		objType = objType.Elem()
	}

	var results []any
	for rows.Next() {
		newObj := reflect.New(objType).Interface()
		var destinations []any
		for _, f := range taggedFields(newObj) {
			destinations = append(destinations, f.value.Addr().Interface())
		}
		if err := rows.Scan(destinations...); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", tableName, err)
		}
		results = append(results, newObj)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows from %s: %w", tableName, err)
	}
	return results, nil
}

// buildWhereClause builds a WHERE clause from a primary key map
func buildWhereClause(primaryKey map[string]any) (string, []any) {
	var conditions []string
	var values []any

	for column, value := range primaryKey {
		conditions = append(conditions, fmt.Sprintf("%s = ?", column))
		values = append(values, value)
	}

	return strings.Join(conditions, " AND "), values
}
