package webhook

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/meshadapter"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

type K8sResource interface{}

type SyncResponse struct {
	Children  []K8sResource `json:"children"`
	Finalized bool          `json:"finalized,omitempty"`
}

type SyncRequest struct {
	Parent BulkSync `json:"parent"`
	// Finalizing is set while the parent is being deleted
	Finalizing bool `json:"finalizing"`
}

//go:generate counterfeiter -o fakes/k8s_resource_builder.go --fake-name K8sResourceBuilder . K8sResourceBuilder
type K8sResourceBuilder interface {
	Build([]models.Route, Template) []K8sResource
}

//go:generate counterfeiter -o fakes/snapshot_repo.go --fake-name SnapshotRepo . snapshotRepo
type snapshotRepo interface {
	Get() (*models.RouteSnapshot, bool)
}

var UninitializedError = errors.New("uninitialized: have not yet read routes from the store")

type Lineage struct {
	RouteSnapshotRepo   snapshotRepo
	K8sResourceBuilders []K8sResourceBuilder
}

// Sync generates child resources for a metacontroller /sync request. A
// parent being deleted gets no children so metacontroller removes them.
func (m *Lineage) Sync(ctx context.Context, syncRequest SyncRequest) (*SyncResponse, error) {
	snapshot, ok := m.RouteSnapshotRepo.Get()
	if !ok {
		return nil, UninitializedError
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	children := make([]K8sResource, 0)
	if syncRequest.Finalizing {
		return &SyncResponse{Children: children, Finalized: true}, nil
	}
	for _, builder := range m.K8sResourceBuilders {
		children = append(children, builder.Build(snapshot.Routes, syncRequest.Parent.Spec.Template)...)
	}
	log.WithFields(log.Fields{"parent": syncRequest.Parent.Name, "children": len(children)}).Debug("built children")

	return &SyncResponse{Children: children}, nil
}

// RouteBuilder renders routes as Route resources. DefaultNamespace is used
// when the template names none.
type RouteBuilder struct {
	DefaultNamespace string
}

func (b *RouteBuilder) Build(routes []models.Route, template Template) []K8sResource {
	resources := make([]K8sResource, 0, len(routes))
	for _, route := range routes {
		crd := meshadapter.BuildRoute(route, template.NamespaceOr(b.DefaultNamespace))
		for k, v := range template.Labels {
			crd.Labels[k] = v
		}
		resources = append(resources, crd)
	}
	return resources
}
