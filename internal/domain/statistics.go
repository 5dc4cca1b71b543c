package domain

import (
	"context"
	"time"
)

// AppDownload aggregates download counts for a companion application.
type AppDownload struct {
	BaseModel
	AppName          string `gorm:"size:128;uniqueIndex;not null" json:"AppName"`
	TotalDownloads   int64  `json:"TotalDownloads"`
	IOSDownloads     int64  `json:"IOSDownloads"`
	AndroidDownloads int64  `json:"AndroidDownloads"`
}

// AppDownloadDomainModel is the write-side shape for download totals.
type AppDownloadDomainModel struct {
	AppName          string
	TotalDownloads   *int64
	IOSDownloads     *int64
	AndroidDownloads *int64
}

// UserCountStats reports registered user totals broken down by role.
type UserCountStats struct {
	TotalUsers   int64 `json:"TotalUsers"`
	PatientCount int64 `json:"PatientCount"`
	DoctorCount  int64 `json:"DoctorCount"`
	AdminCount   int64 `json:"AdminCount"`
}

// SeriesPoint is one sample in a monthly time series.
type SeriesPoint struct {
	Label string    `json:"Label"`
	At    time.Time `json:"At"`
	Value float64   `json:"Value"`
}

// VitalTrend summarizes one vital sign over the report window and carries the
// rendered chart for it.
type VitalTrend struct {
	Name             string        `json:"Name"`
	Unit             string        `json:"Unit"`
	Average          float64       `json:"Average"`
	Current          float64       `json:"Current"`
	LastMeasuredDate *time.Time    `json:"LastMeasuredDate"`
	Series           []SeriesPoint `json:"Series"`
	ChartSVG         string        `json:"ChartSvg"`
}

// BiometricsReport is the per-patient statistics report over the past months.
type BiometricsReport struct {
	PatientUserID string       `json:"PatientUserId"`
	Months        int          `json:"Months"`
	GeneratedAt   time.Time    `json:"GeneratedAt"`
	Trends        []VitalTrend `json:"Trends"`
}

// StatisticsService defines the reporting interface.
type StatisticsService interface {
	UpdateAppDownloads(ctx context.Context, model AppDownloadDomainModel) (*AppDownload, error)
	GetAppDownloads(ctx context.Context) ([]AppDownload, error)
	GetUserCounts(ctx context.Context) (*UserCountStats, error)
	GetBiometricsReport(ctx context.Context, patientUserID string, months int) (*BiometricsReport, error)
}
