package database

import (
	"context"
	"database/sql"
	"fmt"

	"report-sync-service/models"
	"report-sync-service/utils"

	"github.com/apex/log"
)

// recentReportsLimit caps the dashboard listing
const recentReportsLimit = 500

// faltaSentinel is stored when the payload carries no fault field at all
const faltaSentinel = "N/A"

// SyncReport persists one report and all of its child rows in a single
// transaction and returns the generated report id. The id comes from the
// insert itself, so two reports arriving at the same instant can never see
// each other's id. Any failure rolls back everything, the parent included;
// a report is either fully stored or not stored at all.
func (d *Database) SyncReport(ctx context.Context, r *models.Report) (int64, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Rollback is a no-op once Commit succeeds

	falta := faltaSentinel
	if r.Falta != nil {
		falta = *r.Falta
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO reports (
			local_id, fecha, hora, padron, lugar, operador, sentido,
			tipo_incidencia, falta, cantidad, lugar_bajada_final, hora_bajada_final,
			inspector_cod, inspector_name, full_text, created_at, synced_at, sync_status
		) VALUES (NULL, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW(), 'synced')`,
		nullable(utils.NormalizeDate(r.Fecha)),
		nullable(r.Hora),
		nullable(r.Padron),
		nullable(r.Lugar),
		nullable(r.Operador),
		nullable(r.Sentido),
		nullable(r.TipoIncidencia),
		falta,
		int(r.Cantidad),
		nullable(r.LugarBajadaFinal),
		nullable(r.HoraBajadaFinal),
		nullable(r.InspectorCod),
		nullable(r.InspectorName),
		nullable(r.FullText),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert report: %w", err)
	}

	reportID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get report id: %w", err)
	}
	if reportID == 0 {
		return 0, fmt.Errorf("insert returned no report id")
	}

	children := 0

	for _, u := range r.UsuariosAdicionales {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO report_users (report_id, dinero, lugar_subida, lugar_bajada) VALUES (?, ?, ?, ?)`,
			reportID, float64(u.Dinero), nullable(u.LugarSubida), nullable(u.LugarBajada))
		if err != nil {
			return 0, fmt.Errorf("failed to insert additional user: %w", err)
		}
		children++
	}

	for i, obs := range r.Observaciones {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO report_observations (report_id, obs_index, texto) VALUES (?, ?, ?)`,
			reportID, i, obs)
		if err != nil {
			return 0, fmt.Errorf("failed to insert observation %d: %w", i, err)
		}
		children++
	}

	// Reintegro indices are one-based; the raw token is kept alongside the
	// parsed amount.
	for i, raw := range r.ReintegradoMontos {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO report_reintegros (report_id, reintegro_index, monto, raw_text) VALUES (?, ?, ?, ?)`,
			reportID, i+1, raw.Amount(), string(raw))
		if err != nil {
			return 0, fmt.Errorf("failed to insert reintegro %d: %w", i+1, err)
		}
		children++
	}

	// One row per marked ticket number
	for tarifa, numeros := range r.BoletosMarcados {
		for _, n := range numeros {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO report_ticket_marked (report_id, tarifa, numero) VALUES (?, ?, ?)`,
				reportID, tarifa, int(n))
			if err != nil {
				return 0, fmt.Errorf("failed to insert marked ticket for tarifa %s: %w", tarifa, err)
			}
			children++
		}
	}

	// One row per fare tier
	for tarifa, rango := range r.RangoBoletos {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO report_ticket_ranges (report_id, tarifa, min_numero, max_numero) VALUES (?, ?, ?, ?)`,
			reportID, tarifa, int(rango.Min), int(rango.Max))
		if err != nil {
			return 0, fmt.Errorf("failed to insert ticket range for tarifa %s: %w", tarifa, err)
		}
		children++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit report transaction: %w", err)
	}

	log.Infof("Report %d synced with %d child rows", reportID, children)
	return reportID, nil
}

// GetRecentReports returns the newest reports' summary columns for the
// dashboard, newest first.
func (d *Database) GetRecentReports(ctx context.Context) ([]models.ReportSummary, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, fecha, hora, padron, operador, tipo_incidencia, falta, cantidad, inspector_name, local_id
		 FROM reports
		 ORDER BY created_at DESC
		 LIMIT ?`, recentReportsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := []models.ReportSummary{}
	for rows.Next() {
		var (
			r             models.ReportSummary
			fecha         sql.NullTime
			hora          sql.NullString
			padron        sql.NullString
			operador      sql.NullString
			tipo          sql.NullString
			falta         sql.NullString
			inspectorName sql.NullString
			localID       sql.NullString
		)
		if err := rows.Scan(&r.ID, &fecha, &hora, &padron, &operador, &tipo, &falta,
			&r.Cantidad, &inspectorName, &localID); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		if fecha.Valid {
			s := fecha.Time.Format("2006-01-02")
			r.Fecha = &s
		}
		r.Hora = strPtr(hora)
		r.Padron = strPtr(padron)
		r.Operador = strPtr(operador)
		r.TipoIncidencia = strPtr(tipo)
		r.Falta = strPtr(falta)
		r.InspectorName = strPtr(inspectorName)
		r.LocalID = strPtr(localID)
		reports = append(reports, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return reports, nil
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
