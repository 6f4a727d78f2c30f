package database

import (
	"database/sql"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jknair0/beforeeach"
)

var (
	testDB *Database
	mock   sqlmock.Sqlmock
)

func setUp() {
	var db *sql.DB
	db, mock, _ = sqlmock.New()
	testDB = NewFromDB(db)
}

func tearDown() {
	testDB.db.Close()
}

var it = beforeeach.Create(setUp, tearDown)
