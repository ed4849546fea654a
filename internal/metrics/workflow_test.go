package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	w, err := NewWorkflow(reg)
	require.NoError(t, err)

	w.PickerOutcome("file", "canceled")
	w.PickerOutcome("file", "canceled")
	w.Submission("success")

	assert.Equal(t, float64(2), testutil.ToFloat64(w.pickerOutcomes.WithLabelValues("file", "canceled")))
	assert.Equal(t, float64(1), testutil.ToFloat64(w.submissions.WithLabelValues("success")))
}

func TestWorkflow_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewWorkflow(reg)
	require.NoError(t, err)

	_, err = NewWorkflow(reg)
	assert.Error(t, err)
}

func TestWorkflow_NilIsNoop(t *testing.T) {
	var w *Workflow
	assert.NotPanics(t, func() {
		w.PickerOutcome("images", "confirmed")
		w.Submission("failed")
	})
}
