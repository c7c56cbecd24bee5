package main

import (
	"github.com/jonathan/jd-matcher/internal/types"
	"github.com/spf13/cobra"
)

var weightFlagNames = []string{"experience", "skill", "education", "language", "certificate"}

// addWeightFlags registers --weight-<name> overrides on cmd.
func addWeightFlags(cmd *cobra.Command) {
	for _, name := range weightFlagNames {
		cmd.Flags().Float64("weight-"+name, 0, "Relative weight of the "+name+" subscore (overrides config)")
	}
}

// weightOverrides returns base with every explicitly set --weight-<name> flag applied.
func weightOverrides(cmd *cobra.Command, base types.PartialWeights) (types.PartialWeights, error) {
	result := base
	targets := map[string]**float64{
		"experience":  &result.Experience,
		"skill":       &result.Skill,
		"education":   &result.Education,
		"language":    &result.Language,
		"certificate": &result.Certificate,
	}

	for _, name := range weightFlagNames {
		flag := "weight-" + name
		if !cmd.Flags().Changed(flag) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(flag)
		if err != nil {
			return result, err
		}
		*targets[name] = types.Float64(v)
	}

	return result, nil
}
