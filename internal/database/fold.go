package database

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	msqlite "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registerFunctions installs the custom SQL functions with the driver.
// The driver keeps a process-wide registry, so this runs once.
func registerFunctions() error {
	registerOnce.Do(func() {
		registerErr = msqlite.RegisterDeterministicScalarFunction(FoldLowerFunc, 1, foldLower)
	})
	return registerErr
}

func foldLower(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return FoldName(v), nil
	case []byte:
		return FoldName(string(v)), nil
	default:
		return FoldName(fmt.Sprint(v)), nil
	}
}

// FoldName lowercases s with Unicode rules. Callers fold patterns with the
// same function the store applies to stored names.
func FoldName(s string) string {
	// cases.Caser is stateful; one per call.
	return cases.Lower(language.Und).String(s)
}
