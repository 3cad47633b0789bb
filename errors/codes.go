package errors

// ErrorCode classifies application failures.
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND

	ErrorCode_CONFIG_INVALID
	ErrorCode_CONFIG_MISSING_CREDENTIAL
	ErrorCode_CONFIG_UNKNOWN_BACKEND

	ErrorCode_SUMMARY_BACKEND_FAILED
	ErrorCode_SUMMARY_EMPTY_RESPONSE
	ErrorCode_SUMMARY_PARSE_FAILED

	ErrorCode_TRANSCRIPTION_FAILED
	ErrorCode_TRANSCRIPTION_EMPTY

	ErrorCode_CRM_LOGIN_FAILED
	ErrorCode_CRM_QUERY_FAILED
	ErrorCode_CRM_UPDATE_FAILED

	ErrorCode_DB_QUERY_FAILED
	ErrorCode_STORAGE_FAILED
	ErrorCode_CACHE_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:                  "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:          "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                 "NOT_FOUND",
	ErrorCode_CONFIG_INVALID:            "CONFIG_INVALID",
	ErrorCode_CONFIG_MISSING_CREDENTIAL: "CONFIG_MISSING_CREDENTIAL",
	ErrorCode_CONFIG_UNKNOWN_BACKEND:    "CONFIG_UNKNOWN_BACKEND",
	ErrorCode_SUMMARY_BACKEND_FAILED:    "SUMMARY_BACKEND_FAILED",
	ErrorCode_SUMMARY_EMPTY_RESPONSE:    "SUMMARY_EMPTY_RESPONSE",
	ErrorCode_SUMMARY_PARSE_FAILED:      "SUMMARY_PARSE_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED:      "TRANSCRIPTION_FAILED",
	ErrorCode_TRANSCRIPTION_EMPTY:       "TRANSCRIPTION_EMPTY",
	ErrorCode_CRM_LOGIN_FAILED:          "CRM_LOGIN_FAILED",
	ErrorCode_CRM_QUERY_FAILED:          "CRM_QUERY_FAILED",
	ErrorCode_CRM_UPDATE_FAILED:         "CRM_UPDATE_FAILED",
	ErrorCode_DB_QUERY_FAILED:           "DB_QUERY_FAILED",
	ErrorCode_STORAGE_FAILED:            "STORAGE_FAILED",
	ErrorCode_CACHE_FAILED:              "CACHE_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
