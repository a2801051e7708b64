package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
)

// resolveGains parses exactly one of the -gains and -db lists.
func resolveGains(millis, db string) ([]int32, error) {
	switch {
	case millis != "" && db != "":
		return nil, errors.New("use either -gains or -db, not both")
	case millis != "":
		return parseGains(millis)
	case db != "":
		return parseDB(db)
	default:
		return nil, errors.New("no gains given; use -gains or -db")
	}
}

func parseGains(s string) ([]int32, error) {
	fields := strings.Split(s, ",")
	gains := make([]int32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid gain %q: %w", f, err)
		}
		gains = append(gains, int32(v))
	}
	return gains, nil
}

func parseDB(s string) ([]int32, error) {
	fields := strings.Split(s, ",")
	gains := make([]int32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid dB value %q: %w", f, err)
		}
		gains = append(gains, core.DBToMillis(v))
	}
	return gains, nil
}

// parseMaster checks that a -master value fits a fixed-point gain.
func parseMaster(v int64) (int32, error) {
	if v < 0 || v > math.MaxInt32 {
		return 0, fmt.Errorf("master gain %d outside [0, %d]", v, math.MaxInt32)
	}
	return int32(v), nil
}

// parseBands builds the band layout named by s: "octave", "third" or
// "uniform:N".
func parseBands(s string, sampleRate float64) (*bank.Bank, error) {
	switch name, arg, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":"); name {
	case "octave":
		return bank.Octave(1, sampleRate), nil
	case "third":
		return bank.Octave(3, sampleRate), nil
	case "uniform":
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid band count in %q", s)
		}
		return bank.Uniform(n, sampleRate), nil
	default:
		return nil, fmt.Errorf("unknown band layout %q", s)
	}
}

// formatTime renders d as mm:ss, or hh:mm:ss from one hour on. Fractions of
// a second are truncated.
func formatTime(d time.Duration) string {
	total := int64(d / time.Second)
	h, m, s := total/3600, total%3600/60, total%60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
