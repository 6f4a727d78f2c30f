package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"report-sync-service/models"
	"report-sync-service/utils"

	"github.com/apex/log"
)

var (
	// ErrInvalidCredentials covers both an unknown inspector id and a wrong
	// password. The caller must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid inspector id or password")

	// ErrDuplicateInspector is returned when the target id is already taken
	ErrDuplicateInspector = errors.New("inspector id already registered")
)

// AuthenticateInspector returns the public subset of the inspector record
// matching both id and password.
func (d *Database) AuthenticateInspector(ctx context.Context, idInspector, password string) (*models.InspectorPublic, error) {
	var insp models.InspectorPublic
	err := d.db.QueryRowContext(ctx,
		`SELECT id_inspector, code_insp, nombre FROM inspectors WHERE id_inspector = ? AND contrasena = ?`,
		idInspector, password).Scan(&insp.IDInspector, &insp.CodeInsp, &insp.Nombre)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Infof("Failed login attempt for inspector %s", idInspector)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to query inspector: %w", err)
	}

	log.Infof("Inspector %s authenticated", insp.IDInspector)
	return &insp, nil
}

// RegisterInspector inserts a new inspector after checking that the id is
// free. A failed duplicate check aborts the registration outright; the
// insert is never attempted on an unverified id.
func (d *Database) RegisterInspector(ctx context.Context, ins *models.NewInspector) error {
	var exists int
	err := d.db.QueryRowContext(ctx,
		`SELECT 1 FROM inspectors WHERE id_inspector = ?`, ins.IDInspector).Scan(&exists)
	if err == nil {
		return ErrDuplicateInspector
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check inspector existence: %w", err)
	}

	_, err = d.db.ExecContext(ctx,
		`INSERT INTO inspectors (id_inspector, code_insp, nombre, apellido, paradero, fecha_registro, contrasena, fecha_nac)
		 VALUES (?, ?, ?, ?, ?, NOW(), ?, ?)`,
		ins.IDInspector, ins.CodeInsp, ins.Nombre, ins.Apellido, ins.Paradero,
		ins.Contrasena, nullable(utils.NormalizeDate(ins.FechaNac)))
	if err != nil {
		return fmt.Errorf("failed to insert inspector: %w", err)
	}

	log.Infof("Inspector %s registered", ins.IDInspector)
	return nil
}
