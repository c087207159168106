package caregiver

import (
	"errors"

	"pawhaven/utils"
)

// parseWindow converts an "HH:MM" working window into minutes from midnight.
// An empty window defaults to 08:00-18:00.
func parseWindow(startStr, endStr string) (int, int, error) {
	if startStr == "" && endStr == "" {
		return 8 * 60, 18 * 60, nil
	}

	start, err := utils.ParseClock(startStr)
	if err != nil {
		return 0, 0, err
	}
	end, err := utils.ParseClock(endStr)
	if err != nil {
		return 0, 0, err
	}
	if start >= end {
		return 0, 0, errors.New("workStart must be before workEnd")
	}
	return start, end, nil
}
