package constants

// DetectionStatus is the canonical lifecycle status for rows in detections.
type DetectionStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    DetectionStatus = "pending"    // record created, pipeline not started
	StatusProcessing DetectionStatus = "processing" // pipeline running
	StatusCompleted  DetectionStatus = "completed"  // terminal success (incl. heuristic fallback)
	StatusFailed     DetectionStatus = "failed"     // terminal failure
	StatusCancelled  DetectionStatus = "cancelled"  // terminal, reserved
)

// DetectionStatuses holds the allowed values for the status field on detections.
var DetectionStatuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusFailed),
	string(StatusCancelled),
}

// IsTerminal reports whether a status ends the detection lifecycle.
func (s DetectionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// ParseDetectionStatus maps a stored string back to a known status.
func ParseDetectionStatus(s string) (DetectionStatus, bool) {
	switch DetectionStatus(s) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return DetectionStatus(s), true
	}
	return "", false
}
