package afl

import (
	"fmt"
	"os"
	"sync"

	"github.com/bairdj/afl-crowds/internal/logger"
	"github.com/bairdj/afl-crowds/pkg/transport"
)

// AttendanceDatasource fetches the historical crowd figures table. The
// source publishes one large fixed-width text file covering every match
// on record, so a single fetch serves all seasons.
type AttendanceDatasource struct {
	URL     string
	Records []*AttendanceRecord
	Errors  []RowError
}

var (
	attendanceInstance *AttendanceDatasource
	attendanceOnce     sync.Once
)

// GetAttendanceInstance returns the singleton instance of AttendanceDatasource
func GetAttendanceInstance() *AttendanceDatasource {
	attendanceOnce.Do(func() {
		attendanceInstance = &AttendanceDatasource{
			URL: Config.AttendanceURL,
		}
	})
	return attendanceInstance
}

// GetAttendanceRecords returns every crowd record from the source,
// fetching and parsing on first call. Malformed rows are kept in
// a.Errors rather than aborting the run, but a failed fetch is fatal.
func (a *AttendanceDatasource) GetAttendanceRecords() ([]*AttendanceRecord, error) {
	if a.Records != nil {
		return a.Records, nil
	}

	cacheFilename := Config.CachePath + "attendance.txt"

	var raw []byte
	if cacheData, err := os.ReadFile(cacheFilename); err == nil {
		logger.Debug("Loaded attendance data from cache:", cacheFilename)
		raw = cacheData
	} else {
		logger.Info("Fetching attendance data from", a.URL)
		raw, err = transport.Get(a.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch attendance data: %w", err)
		}
		if err := os.WriteFile(cacheFilename, raw, 0644); err != nil {
			logger.Warn("Failed to write cache file", cacheFilename, err)
		}
	}

	records, rowErrors := ParseAttendanceTable(string(raw), Config.AttendanceHeaderRows)
	for _, re := range rowErrors {
		logger.Warn("Skipping malformed attendance row:", re.Error())
	}
	logger.Info("Parsed", len(records), "attendance records with", len(rowErrors), "malformed rows")

	a.Records = records
	a.Errors = rowErrors
	return a.Records, nil
}
