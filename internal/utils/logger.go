package utils

import (
	"log"
	"strings"
)

// LogEvent writes one audit line per mutating operation. Keep the message to
// identifiers; request payloads do not belong in the log.
func LogEvent(requestID, module, action, message string) {
	if requestID == "" {
		requestID = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, requestID, message)
}
