package models

import "time"

// Inspector represents an inspector record in the datastore
type Inspector struct {
	IDInspector   string    `json:"idInspector"`
	CodeInsp      string    `json:"codeInsp"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Paradero      string    `json:"paradero"`
	FechaNac      string    `json:"fechaNac"`
	FechaRegistro time.Time `json:"fechaRegistro"`
}

// InspectorPublic is the subset of an inspector record returned on login
type InspectorPublic struct {
	IDInspector string `json:"idInspector"`
	CodeInsp    string `json:"codeInsp"`
	Nombre      string `json:"nombre"`
}

// LoginRequest represents the authentication request from the mobile app
type LoginRequest struct {
	IDInspector string `json:"idInspector"`
	Password    string `json:"password"`
}

// LoginResponse represents a successful authentication response
type LoginResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Inspector *InspectorPublic `json:"inspector,omitempty"`
}

// RegisterRequest represents the inspector registration request. The field
// names mirror the mobile app's wire format.
type RegisterRequest struct {
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	Codigo      string `json:"codigo"`
	FechaNac    string `json:"fechaNac"`
	Paradero    string `json:"paradero"`
	Contrasena  string `json:"contraseña"`
	IDInspector string `json:"idInspector"`
}

// NewInspector holds a validated registration ready for insertion
type NewInspector struct {
	IDInspector string
	CodeInsp    string
	Nombre      string
	Apellido    string
	Paradero    string
	FechaNac    string
	Contrasena  string
}

// StatusResponse represents a success response with no payload
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse represents a failure response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SyncReportRequest wraps the report payload submitted from the field
type SyncReportRequest struct {
	Report *Report `json:"report"`
}

// SyncReportResponse returns the generated report id to the client
type SyncReportResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	RemoteID int64  `json:"remoteId"`
}

// ReportSummary is one row of the dashboard listing. Column names are kept
// as the dashboard expects them.
type ReportSummary struct {
	ID             int64   `json:"id"`
	Fecha          *string `json:"fecha"`
	Hora           *string `json:"hora"`
	Padron         *string `json:"padron"`
	Operador       *string `json:"operador"`
	TipoIncidencia *string `json:"tipo_incidencia"`
	Falta          *string `json:"falta"`
	Cantidad       int     `json:"cantidad"`
	InspectorName  *string `json:"inspector_name"`
	LocalID        *string `json:"local_id"`
}

// ReportsResponse represents the dashboard listing response
type ReportsResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Reports []ReportSummary `json:"reports"`
}
