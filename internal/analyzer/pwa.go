package analyzer

import (
	"context"
	"webaudit/pkg/domain"
)

// PWA audit IDs used to derive the installability extension.
const (
	auditInstallableManifest = "installable-manifest"
	auditServiceWorker       = "service-worker"
	auditWorksOffline        = "works-offline"
)

// Literal issue strings appended when an installability prerequisite is missing.
const (
	issueNoManifest      = "Web app manifest does not meet installability requirements"
	issueNoServiceWorker = "No service worker controls the page"
	issueNoOffline       = "Page does not respond with a 200 when offline"
)

// auditPWA runs the progressive web app category and derives installability:
// the site is installable only when both the manifest and service worker
// audits score a perfect 1. Each missing prerequisite appends a literal,
// human-readable issue string.
func (a analyzer) auditPWA(ctx context.Context, URL string) (domain.PWAReport, error) {
	res, err := a.engine.Audit(ctx, URL, domain.CategoryPWA)
	if err != nil {
		return domain.PWAReport{}, wrapEngineErr(err, domain.CategoryPWA)
	}

	hasManifest := auditPassed(res, auditInstallableManifest)
	hasServiceWorker := auditPassed(res, auditServiceWorker)
	offline := auditPassed(res, auditWorksOffline)

	inst := domain.Installability{
		Installable:    hasManifest && hasServiceWorker,
		OfflineSupport: offline,
		Issues:         []string{},
	}
	if !hasManifest {
		inst.Issues = append(inst.Issues, issueNoManifest)
	}
	if !hasServiceWorker {
		inst.Issues = append(inst.Issues, issueNoServiceWorker)
	}
	if !offline {
		inst.Issues = append(inst.Issues, issueNoOffline)
	}

	return domain.PWAReport{
		CategoryReport: normalizeCategory(res),
		Installability: inst,
	}, nil
}
