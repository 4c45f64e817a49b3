package constant

const (
	// DateLayout formats the dashboard's notion of "today".
	DateLayout = "2006-01-02"

	// LastModifiedLayout formats file modification times, always in server local time.
	LastModifiedLayout = "2006-01-02 15:04:05"
)
