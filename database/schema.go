package database

import (
	"context"
	"fmt"

	"github.com/apex/log"
)

// Schema contains the tables for inspectors and synced reports. Children
// reference their parent report and disappear with it.
const Schema = `
CREATE TABLE IF NOT EXISTS inspectors (
    id_inspector VARCHAR(64) PRIMARY KEY,
    code_insp VARCHAR(32) NOT NULL,
    nombre VARCHAR(128) NOT NULL,
    apellido VARCHAR(128) NOT NULL,
    paradero VARCHAR(128) NOT NULL,
    fecha_nac DATE,
    fecha_registro TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    contrasena VARCHAR(128) NOT NULL
);

CREATE TABLE IF NOT EXISTS reports (
    id INT AUTO_INCREMENT PRIMARY KEY,
    local_id VARCHAR(64),
    fecha DATE,
    hora VARCHAR(16),
    padron VARCHAR(32),
    lugar VARCHAR(255),
    operador VARCHAR(128),
    sentido VARCHAR(64),
    tipo_incidencia VARCHAR(64),
    falta VARCHAR(255),
    cantidad INT NOT NULL DEFAULT 0,
    lugar_bajada_final VARCHAR(255),
    hora_bajada_final VARCHAR(16),
    inspector_cod VARCHAR(32),
    inspector_name VARCHAR(128),
    full_text TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    synced_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    sync_status VARCHAR(16) NOT NULL DEFAULT 'synced',
    INDEX idx_created_at (created_at)
);

CREATE TABLE IF NOT EXISTS report_users (
    id INT AUTO_INCREMENT PRIMARY KEY,
    report_id INT NOT NULL,
    dinero DECIMAL(10,2) NOT NULL DEFAULT 0,
    lugar_subida VARCHAR(255),
    lugar_bajada VARCHAR(255),
    INDEX idx_report_id (report_id),
    FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS report_observations (
    id INT AUTO_INCREMENT PRIMARY KEY,
    report_id INT NOT NULL,
    obs_index INT NOT NULL,
    texto TEXT,
    INDEX idx_report_id (report_id),
    FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS report_reintegros (
    id INT AUTO_INCREMENT PRIMARY KEY,
    report_id INT NOT NULL,
    reintegro_index INT NOT NULL,
    monto DECIMAL(10,2) NOT NULL DEFAULT 0,
    raw_text VARCHAR(255),
    INDEX idx_report_id (report_id),
    FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS report_ticket_marked (
    id INT AUTO_INCREMENT PRIMARY KEY,
    report_id INT NOT NULL,
    tarifa VARCHAR(64) NOT NULL,
    numero INT NOT NULL DEFAULT 0,
    INDEX idx_report_id (report_id),
    FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS report_ticket_ranges (
    id INT AUTO_INCREMENT PRIMARY KEY,
    report_id INT NOT NULL,
    tarifa VARCHAR(64) NOT NULL,
    min_numero INT NOT NULL DEFAULT 0,
    max_numero INT NOT NULL DEFAULT 0,
    INDEX idx_report_id (report_id),
    FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
);
`

// InitializeSchema creates all tables if they don't exist
func (d *Database) InitializeSchema(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	log.Info("Database schema ensured")
	return nil
}
