package config

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectTestDatabase opens an in-memory SQLite database and sets the
// global DB. Each caller should pass a distinct name (e.g. t.Name()) so
// tests do not share state.
func ConnectTestDatabase(name string) error {
	var err error
	db, err = gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), initConfig())
	return err
}
