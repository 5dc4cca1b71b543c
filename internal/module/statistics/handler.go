package statistics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// StatisticsHandler handles REST API requests for usage statistics and
// patient reports.
type StatisticsHandler struct {
	svc domain.StatisticsService
}

// NewHandler creates a StatisticsHandler with the given service.
func NewHandler(svc domain.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{svc: svc}
}

// UpdateAppDownloads handles PUT /api/v1/statistics/app-downloads.
func (h *StatisticsHandler) UpdateAppDownloads(c *gin.Context) {
	var req UpdateAppDownloadsRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	downloads, err := h.svc.UpdateAppDownloads(c.Request.Context(), domain.AppDownloadDomainModel{
		AppName:          req.AppName,
		TotalDownloads:   req.TotalDownloads,
		IOSDownloads:     req.IOSDownloads,
		AndroidDownloads: req.AndroidDownloads,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "App downloads updated successfully!",
		gin.H{"AppDownloads": downloads})
}

// GetAppDownloads handles GET /api/v1/statistics/app-downloads.
func (h *StatisticsHandler) GetAppDownloads(c *gin.Context) {
	downloads, err := h.svc.GetAppDownloads(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(len(downloads), "app download records"),
		gin.H{"AppDownloads": downloads})
}

// GetUserCounts handles GET /api/v1/statistics/users.
func (h *StatisticsHandler) GetUserCounts(c *gin.Context) {
	stats, err := h.svc.GetUserCounts(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "User counts retrieved successfully!",
		gin.H{"UserCounts": stats})
}

// GetBiometricsReport handles GET /api/v1/statistics/patients/:userId/biometrics.
// The optional months query parameter selects the report window.
func (h *StatisticsHandler) GetBiometricsReport(c *gin.Context) {
	userID, err := pkg.ParamUUID(c, "userId")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	months := 0
	if parsed := pkg.QueryInt(c, "months"); parsed != nil {
		months = *parsed
	}

	report, err := h.svc.GetBiometricsReport(c.Request.Context(), userID, months)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Biometrics report retrieved successfully!",
		gin.H{"BiometricsReport": report})
}
