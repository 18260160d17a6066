// Package appresolver looks up the apps destinations point at.
package appresolver

import (
	"context"
	"fmt"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

// Static resolves apps from a fixed set, keyed by app guid
type Static map[string]models.AppRecord

func (s Static) App(_ context.Context, appGuid string) (models.AppRecord, error) {
	app, ok := s[appGuid]
	if !ok {
		return models.AppRecord{}, fmt.Errorf("app %s: %w", appGuid, models.ErrNotFound)
	}
	if app.Guid == "" {
		app.Guid = appGuid
	}
	return app, nil
}
