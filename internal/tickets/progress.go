package tickets

import "sync"

type Step struct {
	Label   string `json:"label"`
	Done    bool   `json:"done"`
	Current bool   `json:"current"`
}

type Progress struct {
	StepIndex int    `json:"step_index"`
	Steps     []Step `json:"steps"`
}

var progressCache sync.Map // status -> Progress

// ProgressOf places a status on the timeline. Closed and unknown statuses
// get index -1 with every step pending.
func ProgressOf(status string) Progress {
	if v, ok := progressCache.Load(status); ok {
		return clone(v.(Progress))
	}
	p := compute(status)
	progressCache.Store(status, p)
	return clone(p)
}

func compute(status string) Progress {
	idx := -1
	for i, s := range TimelineStatuses {
		if s == status {
			idx = i
			break
		}
	}
	steps := make([]Step, len(TimelineStatuses))
	for i, s := range TimelineStatuses {
		steps[i] = Step{Label: s, Done: idx >= 0 && i <= idx, Current: i == idx}
	}
	return Progress{StepIndex: idx, Steps: steps}
}

func clone(p Progress) Progress {
	steps := make([]Step, len(p.Steps))
	copy(steps, p.Steps)
	p.Steps = steps
	return p
}
