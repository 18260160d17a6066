package appresolver

import (
	"context"
	"errors"
	"fmt"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/ccclient"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/jsonclient"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

//go:generate counterfeiter -o fakes/ccclient.go --fake-name CCClient . ccClient
type ccClient interface {
	GetApp(ctx context.Context, appGUID, token string) (ccclient.App, error)
	ListProcessesForApp(ctx context.Context, appGUID, token string) ([]ccclient.Process, error)
}

//go:generate counterfeiter -o fakes/uaaclient.go --fake-name UAAClient . uaaClient
type uaaClient interface {
	GetToken(ctx context.Context) (string, error)
}

// CCResolver resolves apps through the Cloud Controller v3 API
type CCResolver struct {
	CCClient  ccClient
	UAAClient uaaClient
}

func (r *CCResolver) App(ctx context.Context, appGuid string) (models.AppRecord, error) {
	token, err := r.UAAClient.GetToken(ctx)
	if err != nil {
		return models.AppRecord{}, fmt.Errorf("uaa get token: %w", err)
	}

	app, err := r.CCClient.GetApp(ctx, appGuid, token)
	if err != nil {
		return models.AppRecord{}, ccError("cc get app", appGuid, err)
	}

	processes, err := r.CCClient.ListProcessesForApp(ctx, appGuid, token)
	if err != nil {
		return models.AppRecord{}, ccError("cc list processes for app", appGuid, err)
	}

	record := models.AppRecord{
		Guid:      app.Guid,
		Lifecycle: app.Lifecycle.Type,
	}
	for _, p := range processes {
		record.Processes = append(record.Processes, models.ProcessRecord{Guid: p.Guid, Type: p.Type})
	}
	return record, nil
}

func ccError(action, appGuid string, err error) error {
	if errors.Is(err, jsonclient.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", action, appGuid, models.ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", action, appGuid, err)
}
