package models

import "time"

// DayBucket holds one day of the weekly trend: the average latency of every
// registered function inside Window. Day is the boundary that closes the bucket
// and labels the x-axis of the trend chart.
//
// Example JSON:
//
//	{
//	  "day": "2025-12-28T18:03:00Z",
//	  "window": {"start": 1766858580000, "end": 1766944980000},
//	  "avgLatencyByFunc": {"f1": 42.5, "f2": 0}
//	}
type DayBucket struct {
	Day              time.Time          `json:"day"`
	Window           TimeWindow         `json:"window"`
	AvgLatencyByFunc map[string]float64 `json:"avgLatencyByFunc"`
}

// RollupSeries is the weekly trend, newest bucket first.
type RollupSeries []DayBucket
