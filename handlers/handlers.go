package handlers

import (
	"errors"
	"net/http"
	"strings"

	"report-sync-service/database"
	"report-sync-service/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// Handlers handles HTTP requests for the report sync service
type Handlers struct {
	service *database.Database
}

// NewHandlers creates a new handlers instance
func NewHandlers(service *database.Database) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Login authenticates an inspector from the mobile app
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Cuerpo de la petición inválido.",
			Error:   err.Error(),
		})
		return
	}

	if req.IDInspector == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Por favor, proporcione ID de Inspector y contraseña.",
		})
		return
	}

	inspector, err := h.service.AuthenticateInspector(c.Request.Context(), req.IDInspector, req.Password)
	if err != nil {
		if errors.Is(err, database.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "ID de Inspector o contraseña incorrectos.",
			})
			return
		}
		log.WithError(err).Error("Login query failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error de conexión o autenticación.",
		})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Success:   true,
		Message:   "Login exitoso.",
		Inspector: inspector,
	})
}

// Register creates a new inspector record. The inspector id falls back to
// the short code when the client supplies none.
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Cuerpo de la petición inválido.",
			Error:   err.Error(),
		})
		return
	}

	inspectorID := strings.TrimSpace(req.IDInspector)
	if inspectorID == "" {
		inspectorID = strings.TrimSpace(req.Codigo)
	}

	if req.Nombre == "" || req.Apellido == "" || req.Codigo == "" || req.FechaNac == "" ||
		req.Paradero == "" || req.Contrasena == "" || inspectorID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Faltan datos obligatorios para el registro.",
		})
		return
	}

	ins := &models.NewInspector{
		IDInspector: inspectorID,
		CodeInsp:    req.Codigo,
		Nombre:      req.Nombre,
		Apellido:    req.Apellido,
		Paradero:    req.Paradero,
		FechaNac:    req.FechaNac,
		Contrasena:  req.Contrasena,
	}

	if err := h.service.RegisterInspector(c.Request.Context(), ins); err != nil {
		if errors.Is(err, database.ErrDuplicateInspector) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Message: "Este ID de inspector ya está registrado.",
			})
			return
		}
		log.WithError(err).Error("Inspector registration failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error en el registro en base de datos.",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.StatusResponse{
		Success: true,
		Message: "Inspector registrado exitosamente.",
	})
}

// SyncReport persists one report with all of its child collections
func (h *Handlers) SyncReport(c *gin.Context) {
	var req models.SyncReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Cuerpo de la petición inválido.",
			Error:   err.Error(),
		})
		return
	}

	if req.Report == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Falta el objeto \"report\" en el cuerpo de la petición.",
		})
		return
	}

	remoteID, err := h.service.SyncReport(c.Request.Context(), req.Report)
	if err != nil {
		log.WithError(err).Error("Report sync failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error interno al sincronizar el informe.",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SyncReportResponse{
		Success:  true,
		Message:  "Informe sincronizado correctamente.",
		RemoteID: remoteID,
	})
}

// GetReports returns the most recent reports for the web dashboard
func (h *Handlers) GetReports(c *gin.Context) {
	reports, err := h.service.GetRecentReports(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Report listing failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error al leer la base de datos.",
			Error:   err.Error(),
		})
		return
	}

	log.Infof("Sending %d reports to the dashboard", len(reports))
	c.JSON(http.StatusOK, models.ReportsResponse{
		Success: true,
		Count:   len(reports),
		Reports: reports,
	})
}

// HealthCheck returns the service health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "report-sync-service",
	})
}

// Root is the plain liveness route the mobile app pings
func (h *Handlers) Root(c *gin.Context) {
	c.String(http.StatusOK, "Report sync backend funcionando.")
}
