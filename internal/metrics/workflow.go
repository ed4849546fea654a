package metrics

import "github.com/prometheus/client_golang/prometheus"

// Workflow counts picker outcomes and draft submissions.
// A nil *Workflow is valid and records nothing.
type Workflow struct {
	pickerOutcomes *prometheus.CounterVec
	submissions    *prometheus.CounterVec
}

// NewWorkflow creates the workflow collectors and registers them on reg.
func NewWorkflow(reg prometheus.Registerer) (*Workflow, error) {
	w := &Workflow{
		pickerOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docdraft_picker_outcomes_total",
				Help: "Picker flows completed, by category and outcome.",
			},
			[]string{"category", "outcome"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docdraft_submissions_total",
				Help: "Draft submissions attempted, by result.",
			},
			[]string{"result"},
		),
	}

	for _, c := range []prometheus.Collector{w.pickerOutcomes, w.submissions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// PickerOutcome records one finished picker flow.
func (w *Workflow) PickerOutcome(category, outcome string) {
	if w == nil {
		return
	}
	w.pickerOutcomes.WithLabelValues(category, outcome).Inc()
}

// Submission records one submission attempt. result is "success", "rejected" or "failed".
func (w *Workflow) Submission(result string) {
	if w == nil {
		return
	}
	w.submissions.WithLabelValues(result).Inc()
}
