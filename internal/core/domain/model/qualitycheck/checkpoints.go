package qualitycheck

import (
	"casetrack/internal/core/domain/model/dentalcase"
)

// getCheckpointCatalog returns the required quality checkpoints per
// procedure type. Procedure types without an entry get an empty checkpoint
// list, which makes completion automatic.
func getCheckpointCatalog() map[dentalcase.ProcedureType][]string {
	crown := []string{
		"margin_adaptation",
		"occlusal_contacts",
		"shade_match",
		"surface_finish",
		"anatomical_form",
	}
	inlay := []string{
		"margin_adaptation",
		"proximal_contacts",
		"occlusal_contacts",
		"surface_finish",
	}

	return map[dentalcase.ProcedureType][]string{
		dentalcase.ProcedureCrown:        crown,
		dentalcase.ProcedureBridge:       append(append([]string{}, crown...), "connector_strength", "pontic_design"),
		dentalcase.ProcedureImplantCrown: append(append([]string{}, crown...), "abutment_fit", "emergence_profile"),
		dentalcase.ProcedurePartialDenture: {
			"framework_fit",
			"clasp_retention",
			"occlusal_scheme",
			"tooth_arrangement",
			"base_adaptation",
		},
		dentalcase.ProcedureFullDenture: {
			"border_seal",
			"occlusal_scheme",
			"tooth_arrangement",
			"base_adaptation",
			"midline_alignment",
		},
		dentalcase.ProcedureInlay:  inlay,
		dentalcase.ProcedureOnlay:  append(append([]string{}, inlay...), "cusp_coverage"),
		dentalcase.ProcedureVeneer: {
			"margin_adaptation",
			"shade_match",
			"surface_finish",
			"incisal_translucency",
			"contour",
		},
	}
}

// CheckpointsFor returns the ordered required checkpoint names for a
// procedure type. The returned slice is a copy. Unknown procedure types
// yield an empty list.
func CheckpointsFor(procedure dentalcase.ProcedureType) []string {
	checkpoints := getCheckpointCatalog()[procedure]
	out := make([]string, len(checkpoints))
	copy(out, checkpoints)
	return out
}
