package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/STBoyden/hatsim/result"
)

var (
	probabilityColor = color.New(color.FgGreen, color.Bold)
	exactColor       = color.New(color.FgCyan)
)

func writeReport(w io.Writer, format string, report result.Report) error {
	switch strings.ToLower(format) {
	case "json", "yaml":
		return encode(w, format, report)
	case "text":
		fmt.Fprintf(w, "Probability: %s (%d/%d trials, ±%.4f)\n",
			probabilityColor.Sprintf("%.4f", report.Probability),
			report.Successes, report.Trials, report.StandardError())

		if report.Exact != nil {
			fmt.Fprintf(w, "Exact:       %s\n", exactColor.Sprintf("%.4f", *report.Exact))
		}

		for _, label := range report.Labels() {
			fmt.Fprintf(w, "  mean %-12s %.3f\n", label, report.MeanDrawn[label])
		}

		return nil
	default:
		return fmt.Errorf("invalid output format %q, must be 'text', 'json' or 'yaml'", format)
	}
}

type exactOutput struct {
	DrawCount   int     `json:"draw_count" yaml:"draw_count"`
	Probability float64 `json:"probability" yaml:"probability"`
}

func writeExact(w io.Writer, format string, drawCount int, probability float64) error {
	switch strings.ToLower(format) {
	case "json", "yaml":
		return encode(w, format, exactOutput{DrawCount: drawCount, Probability: probability})
	case "text":
		fmt.Fprintf(w, "Exact probability: %s\n", exactColor.Sprintf("%.4f", probability))

		return nil
	default:
		return fmt.Errorf("invalid output format %q, must be 'text', 'json' or 'yaml'", format)
	}
}

func encode(w io.Writer, format string, v any) error {
	if strings.ToLower(format) == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return enc.Close()
}
