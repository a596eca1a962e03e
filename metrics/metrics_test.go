package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "word_insert_text",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "word_insert_text",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordAutomationCall(t *testing.T) {
	RecordAutomationCall("table", "insert_row", 0.2, true)
	RecordAutomationCall("table", "insert_row", 0.3, false)

	for _, status := range []string{"success", "error"} {
		counter, err := AutomationCallsTotal.GetMetricWithLabelValues("table", "insert_row", status)
		if err != nil {
			t.Fatalf("failed to get metric for status %s: %v", status, err)
		}

		var m dto.Metric
		if err := counter.Write(&m); err != nil {
			t.Fatalf("failed to write metric: %v", err)
		}
		if m.Counter.GetValue() < 1 {
			t.Errorf("expected %s counter to be incremented", status)
		}
	}
}

func TestRequestInFlight(t *testing.T) {
	gauge, err := RequestInFlight.GetMetricWithLabelValues("word_save_document")
	if err != nil {
		t.Fatalf("failed to get gauge: %v", err)
	}

	gauge.Inc()
	gauge.Inc()
	gauge.Dec()

	var m dto.Metric
	if err := gauge.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Gauge.GetValue() != 1 {
		t.Errorf("in-flight gauge = %v, want 1", m.Gauge.GetValue())
	}
}
