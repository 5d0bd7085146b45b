package configlibsql

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	devenv "resultsdb/dev/env"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Struct selects the results database. A non-empty Url connects to a remote
// libsql server, otherwise File is opened as a local sqlite database.
type Struct struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (config Struct) Remote() bool {
	return config.Url != ""
}

func (config Struct) OpenDB() (*sql.DB, error) {
	if config.Remote() {
		return config.openRemote()
	}
	return config.openFile()
}

func (config Struct) openRemote() (*sql.DB, error) {
	link := config.Url
	if config.AuthToken != "" {
		values := url.Values{}
		values.Add("authToken", config.AuthToken)
		link += "?" + values.Encode()
	}
	db, err := sql.Open("libsql", link)
	if err != nil {
		return nil, fmt.Errorf("open libsql %s: %w", config.Url, err)
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect libsql %s: %w", config.Url, err)
	}
	return db, nil
}

func (config Struct) openFile() (*sql.DB, error) {
	if config.File == "" {
		return nil, fmt.Errorf("a path was not specified")
	}

	dbpath := config.File
	if dbpath != ":memory:" {
		var err error
		dbpath, err = devenv.ResolvePath(config.File)
		if err != nil {
			return nil, err
		}
		err = os.MkdirAll(filepath.Dir(dbpath), 0777)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbpath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbpath, err)
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
