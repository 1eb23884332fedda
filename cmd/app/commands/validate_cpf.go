package commands

import (
	"fmt"
	"io"

	"github.com/allisson/enrollment/internal/cpf"
)

// CPFResult is the outcome of validating one argument.
type CPFResult struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
	Formatted  string `json:"formatted,omitempty"`
}

// RunValidateCPF validates each value and prints one result per value. It fails
// when any value is invalid so scripts can rely on the exit status.
func RunValidateCPF(writer io.Writer, values []string, format string) error {
	if len(values) == 0 {
		return fmt.Errorf("at least one CPF is required")
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	results := make([]CPFResult, 0, len(values))
	invalid := 0
	for _, value := range values {
		result := CPFResult{Input: value, Normalized: cpf.Normalize(value)}
		if normalized, err := cpf.Validate(value); err == nil {
			result.Valid = true
			result.Formatted = cpf.Format(normalized)
		} else {
			invalid++
		}
		results = append(results, result)
	}

	if format == "json" {
		if err := writeJSON(writer, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			status := "invalid"
			if r.Valid {
				status = "valid"
			}
			if _, err := fmt.Fprintf(writer, "%s\t%s\n", r.Input, status); err != nil {
				return err
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d CPF(s) invalid", invalid, len(values))
	}
	return nil
}
