package statistics

// UpdateAppDownloadsRequest records download totals for a companion app.
// Absent counters are left unchanged.
type UpdateAppDownloadsRequest struct {
	AppName          string `json:"AppName" binding:"required,max=128"`
	TotalDownloads   *int64 `json:"TotalDownloads" binding:"omitempty,gte=0"`
	IOSDownloads     *int64 `json:"IOSDownloads" binding:"omitempty,gte=0"`
	AndroidDownloads *int64 `json:"AndroidDownloads" binding:"omitempty,gte=0"`
}
