package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("solcverd", "POST", "/v1/infer", 200, 12*time.Millisecond)

	before := testutil.ToFloat64(inferences.WithLabelValues("absent"))
	failuresBefore := testutil.ToFloat64(decodeFailures.WithLabelValues("section_too_large"))

	RecordInference("absent", "section_too_large", 29)
	RecordInference("exact", "", 512)
	RecordDecodeFailure("section_too_large")

	assert.Equal(t, before+1, testutil.ToFloat64(inferences.WithLabelValues("absent")))
	assert.Equal(t, failuresBefore+2, testutil.ToFloat64(decodeFailures.WithLabelValues("section_too_large")))
}
