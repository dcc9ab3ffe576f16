package errors

// ErrorResponse normalize edilmiş hatanın JSON gövdesi. Wire shape sabittir:
// statusCode, timestamp, path ve message her zaman var; errorCode sadece
// classified error açıkça verdiyse var (key yoksa null değil, hiç yok).
// Stack trace asla client'a gitmez, sadece log'a yazılır.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Message    string `json:"message"`
	ErrorCode  string `json:"errorCode,omitempty"`
}
