package service

// MetricsRecorder receives domain level counters
type MetricsRecorder interface {
	// RecordIdentityDeletion counts one identity account deletion outcome
	RecordIdentityDeletion(outcome string)
}
