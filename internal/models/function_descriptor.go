package models

// FunctionDescriptor is a registry entry for a tracked function. WarmerOn and
// FuncFreq belong to the warmer configuration; aggregation copies them into
// report rows untouched.
type FunctionDescriptor struct {
	FuncID   string `json:"funcID" csv:"funcID"`
	FuncName string `json:"funcName" csv:"funcName"`
	AppName  string `json:"appName" csv:"appName"`
	WarmerOn string `json:"warmerOn" csv:"warmerOn"`
	FuncFreq string `json:"funcFreq" csv:"funcFreq"`
}
