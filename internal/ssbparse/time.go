package ssbparse

import (
	"fmt"
	"strconv"
	"strings"
)

// parseTime parses "[HH:]MM:SS.mmm" into milliseconds.
func parseTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	secIdx := strings.LastIndex(s, ":")
	if secIdx < 0 {
		return 0, fmt.Errorf("time %q: missing MM:SS", s)
	}
	secPart := s[secIdx+1:]
	rest := s[:secIdx]

	var hh, mm int
	minIdx := strings.LastIndex(rest, ":")
	if minIdx < 0 {
		m, err := strconv.Atoi(rest)
		if err != nil {
			return 0, fmt.Errorf("time %q: bad minutes: %w", s, err)
		}
		mm = m
	} else {
		h, err := strconv.Atoi(rest[:minIdx])
		if err != nil {
			return 0, fmt.Errorf("time %q: bad hours: %w", s, err)
		}
		m, err := strconv.Atoi(rest[minIdx+1:])
		if err != nil {
			return 0, fmt.Errorf("time %q: bad minutes: %w", s, err)
		}
		hh, mm = h, m
	}

	sec, err := strconv.ParseFloat(secPart, 64)
	if err != nil {
		return 0, fmt.Errorf("time %q: bad seconds: %w", s, err)
	}

	total := (float64(hh)*3600 + float64(mm)*60 + sec) * 1000
	return total, nil
}
