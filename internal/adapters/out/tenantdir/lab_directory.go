// Package tenantdir resolves tenant lab codes for case numbering. The
// mapping is loaded once from configuration; tenant onboarding is handled
// by a separate system and ships new codes through deployment config.
package tenantdir

import (
	"context"
	"strings"

	"casetrack/internal/pkg/errs"
)

// ConfigLabDirectory is a LabDirectory backed by a static tenant-to-code
// mapping from configuration.
type ConfigLabDirectory struct {
	codes map[string]string
}

// NewConfigLabDirectory parses a mapping of the form
// "tenant-a:GLW,tenant-b:ACM" into a directory. Whitespace around entries is
// tolerated; malformed entries fail with an error naming the fragment.
func NewConfigLabDirectory(raw string) (*ConfigLabDirectory, error) {
	codes := make(map[string]string)

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		tenantID, labCode, ok := strings.Cut(entry, ":")
		tenantID = strings.TrimSpace(tenantID)
		labCode = strings.TrimSpace(labCode)
		if !ok || tenantID == "" || labCode == "" {
			return nil, errs.NewValueIsInvalidError("labCodes: " + entry)
		}

		codes[tenantID] = strings.ToUpper(labCode)
	}

	return &ConfigLabDirectory{codes: codes}, nil
}

// LabCode returns the lab code for the tenant, or an ObjectNotFoundError for
// unknown tenants.
func (d *ConfigLabDirectory) LabCode(_ context.Context, tenantID string) (string, error) {
	code, ok := d.codes[tenantID]
	if !ok {
		return "", errs.NewObjectNotFoundError("tenantID", tenantID)
	}
	return code, nil
}
