package models

// WindowReport is the aggregate for one function over one time window.
// Every ratio field is 0 when its denominator is 0; none is ever NaN or Inf.
//
// Example JSON:
//
//	{
//	  "id": "f1",
//	  "name": "resize-image",
//	  "appName": "images",
//	  "warmerOn": "Yes",
//	  "funcFreq": "5M",
//	  "totalRuns": 2,
//	  "coldStarts": 1,
//	  "percentCold": 0.5,
//	  "aveLatency": 30,
//	  "coldLatency": 50,
//	  "warmLatency": 10,
//	  "coldToWarm": 5
//	}
type WindowReport struct {
	FuncID   string `json:"id"`
	FuncName string `json:"name"`
	AppName  string `json:"appName"`
	WarmerOn string `json:"warmerOn"`
	FuncFreq string `json:"funcFreq"`

	TotalRuns       int64   `json:"totalRuns"`
	ColdStarts      int64   `json:"coldStarts"`
	PercentCold     float64 `json:"percentCold"`
	AvgLatency      float64 `json:"aveLatency"`
	AvgColdLatency  float64 `json:"coldLatency"`
	AvgWarmLatency  float64 `json:"warmLatency"`
	ColdToWarmRatio float64 `json:"coldToWarm"`
}

// NewEmptyWindowReport returns the report of a window with no matching runs.
func NewEmptyWindowReport(fn FunctionDescriptor) WindowReport {
	return WindowReport{
		FuncID:   fn.FuncID,
		FuncName: fn.FuncName,
		AppName:  fn.AppName,
		WarmerOn: fn.WarmerOn,
		FuncFreq: fn.FuncFreq,
	}
}

// WarmRuns is the number of runs that reused an execution environment.
func (r *WindowReport) WarmRuns() int64 {
	return r.TotalRuns - r.ColdStarts
}
