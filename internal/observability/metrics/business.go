package metrics

import "time"

// RecordSummarization records the result of one summarization run.
func RecordSummarization(method string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	SummarizationsTotal.WithLabelValues(method, status).Inc()
	SummarizationDuration.Observe(duration.Seconds())
}

// RecordCompression records the size ratio between a summary and its source.
// Documents with no words are skipped.
func RecordCompression(summaryWords, originalWords int) {
	if originalWords <= 0 {
		return
	}
	SummaryCompressionRatio.Observe(float64(summaryWords) / float64(originalWords))
}

// RecordContentFetchSuccess records a successful article fetch.
func RecordContentFetchSuccess(duration time.Duration, size int) {
	ContentFetchAttemptsTotal.WithLabelValues("success").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
	ContentFetchSize.Observe(float64(size))
}

// RecordContentFetchFailed records a failed article fetch.
func RecordContentFetchFailed(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("failure").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordAPIUsage records one usage event, mirroring the persisted analytics.
func RecordAPIUsage(endpoint string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	APIUsageTotal.WithLabelValues(endpoint, status).Inc()
}

// UpdateSummariesTotal updates the stored-summaries gauge.
// Refreshed after writes and deletes rather than on a timer.
func UpdateSummariesTotal(count int64) {
	SummariesTotal.Set(float64(count))
}
