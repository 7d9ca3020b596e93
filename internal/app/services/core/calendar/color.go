package calendar

const (
	colorAmber   = "#ff9800"
	colorGreen   = "#4caf50"
	colorBlue    = "#2196f3"
	colorRed     = "#f44336"
	colorNeutral = "#3f51b5"
)

// StatusColor maps a status to its display color. Total over all inputs;
// unknown or future statuses fall back to the neutral color.
func StatusColor(status Status) string {
	switch status {
	case StatusPending:
		return colorAmber
	case StatusConfirmed:
		return colorGreen
	case StatusCompleted:
		return colorBlue
	case StatusCancelled:
		return colorRed
	default:
		return colorNeutral
	}
}
