package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"report-sync-service/models"
)

func TestAuthenticateInspector(t *testing.T) {
	it(func() {
		columns := []string{"id_inspector", "code_insp", "nombre"}

		testCases := []struct {
			name        string
			idInspector string
			password    string
			queryErr    error
			found       bool

			expectedErr error
		}{
			{
				name:        "Matching credentials",
				idInspector: "INSP01",
				password:    "hunter2",
				found:       true,
			},
			{
				name:        "No match",
				idInspector: "INSP01",
				password:    "wrong",
				queryErr:    sql.ErrNoRows,
				expectedErr: ErrInvalidCredentials,
			},
			{
				name:        "Unknown inspector",
				idInspector: "NOBODY",
				password:    "hunter2",
				queryErr:    sql.ErrNoRows,
				expectedErr: ErrInvalidCredentials,
			},
			{
				name:        "Datastore error",
				idInspector: "INSP01",
				password:    "hunter2",
				queryErr:    fmt.Errorf("test query error"),
			},
		}

		for _, tc := range testCases {
			if tc.queryErr != nil {
				mock.ExpectQuery("SELECT id_inspector, code_insp, nombre FROM inspectors").
					WithArgs(tc.idInspector, tc.password).
					WillReturnError(tc.queryErr)
			} else {
				mock.ExpectQuery("SELECT id_inspector, code_insp, nombre FROM inspectors").
					WithArgs(tc.idInspector, tc.password).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(tc.idInspector, "C01", "Maria"))
			}

			insp, err := testDB.AuthenticateInspector(context.Background(), tc.idInspector, tc.password)

			if tc.found {
				if err != nil {
					t.Errorf("%s: unexpected error: %v", tc.name, err)
					continue
				}
				if insp.IDInspector != tc.idInspector || insp.CodeInsp != "C01" || insp.Nombre != "Maria" {
					t.Errorf("%s: unexpected inspector %+v", tc.name, insp)
				}
				continue
			}

			if err == nil {
				t.Errorf("%s: expected error, got inspector %+v", tc.name, insp)
				continue
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Errorf("%s: expected %v, got %v", tc.name, tc.expectedErr, err)
			}
			if tc.expectedErr == nil && errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("%s: datastore error must not map to invalid credentials", tc.name)
			}
		}
	})
}

func TestRegisterInspector(t *testing.T) {
	it(func() {
		ins := &models.NewInspector{
			IDInspector: "INSP01",
			CodeInsp:    "C01",
			Nombre:      "Maria",
			Apellido:    "Lopez",
			Paradero:    "Terminal Norte",
			FechaNac:    "04/10/2001",
			Contrasena:  "hunter2",
		}

		mock.ExpectQuery("SELECT 1 FROM inspectors").
			WithArgs("INSP01").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec("INSERT INTO inspectors").
			WithArgs("INSP01", "C01", "Maria", "Lopez", "Terminal Norte", "hunter2", "2001-10-04").
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := testDB.RegisterInspector(context.Background(), ins); err != nil {
			t.Fatalf("RegisterInspector failed: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})
}

func TestRegisterInspectorDuplicate(t *testing.T) {
	it(func() {
		ins := &models.NewInspector{IDInspector: "INSP01"}

		// A duplicate id is rejected every time it is retried; no insert is
		// ever attempted.
		for i := 0; i < 3; i++ {
			mock.ExpectQuery("SELECT 1 FROM inspectors").
				WithArgs("INSP01").
				WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

			err := testDB.RegisterInspector(context.Background(), ins)
			if !errors.Is(err, ErrDuplicateInspector) {
				t.Fatalf("Attempt %d: expected ErrDuplicateInspector, got %v", i+1, err)
			}
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})
}

func TestRegisterInspectorFailedCheck(t *testing.T) {
	it(func() {
		ins := &models.NewInspector{IDInspector: "INSP01"}

		// A failed duplicate check aborts the registration; the insert must
		// not proceed on an unverified id.
		mock.ExpectQuery("SELECT 1 FROM inspectors").
			WithArgs("INSP01").
			WillReturnError(fmt.Errorf("test query error"))

		err := testDB.RegisterInspector(context.Background(), ins)
		if err == nil {
			t.Fatal("Expected error when the duplicate check fails")
		}
		if errors.Is(err, ErrDuplicateInspector) {
			t.Errorf("Check failure must not map to duplicate, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})
}

func TestRegisterInspectorEmptyBirthDateStoresNull(t *testing.T) {
	it(func() {
		ins := &models.NewInspector{
			IDInspector: "INSP02",
			CodeInsp:    "C02",
			Nombre:      "Jose",
			Apellido:    "Diaz",
			Paradero:    "Terminal Sur",
			FechaNac:    "not a date",
			Contrasena:  "hunter2",
		}

		mock.ExpectQuery("SELECT 1 FROM inspectors").
			WithArgs("INSP02").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec("INSERT INTO inspectors").
			WithArgs("INSP02", "C02", "Jose", "Diaz", "Terminal Sur", "hunter2", nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := testDB.RegisterInspector(context.Background(), ins); err != nil {
			t.Fatalf("RegisterInspector failed: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})
}
