package service

import "staybook/pkg/model"

var transitions = map[string][]string{
	model.StatusPending:  {model.StatusApproved, model.StatusRejected, model.StatusCompleted, model.StatusCancelled},
	model.StatusApproved: {model.StatusCompleted, model.StatusCancelled},
}

// CanTransition reports whether an admin may move a booking from one status
// to another when strict transitions are enabled. Setting the current status
// again is allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
