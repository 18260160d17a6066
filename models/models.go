package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	// NoAppPortSpecified marks a destination that defers to the process's own default port
	NoAppPortSpecified = -1

	MinAppPort      = 1024
	MaxAppPort      = 65535
	DefaultHTTPPort = 8080

	DefaultProcessType = "web"

	LifecycleBuildpack = "buildpack"
	LifecycleDocker    = "docker"
)

var ErrNotFound = errors.New("not found")

type RouteSnapshot struct {
	Routes []Route
	// FetchedAt is when the routes were read from the store
	FetchedAt time.Time
}

type Route struct {
	Guid         string
	Host         string
	Path         string
	Url          string
	Domain       Domain
	Destinations []Destination
}

type Domain struct {
	Guid     string
	Name     string
	Internal bool
}

type Destination struct {
	Guid      string
	RouteGuid string
	App       App
	Weight    *int
	Port      int
}

type App struct {
	Guid    string
	Process Process
}

type Process struct {
	Type string
}

// DestinationKey identifies a binding on a route. Weight is not part of it.
type DestinationKey struct {
	AppGuid     string
	ProcessType string
	Port        int
}

type ProcessKey struct {
	AppGuid     string
	ProcessType string
}

func (k ProcessKey) String() string {
	return fmt.Sprintf("%s/%s", k.AppGuid, k.ProcessType)
}

// AppRecord is what an app resolver knows about an app
type AppRecord struct {
	Guid      string
	Lifecycle string
	Processes []ProcessRecord
}

type ProcessRecord struct {
	Guid  string
	Type  string
	Ports []int
}

type UserAuditInfo struct {
	UserGuid  string
	UserEmail string
	UserName  string
}

func (r Route) FQDN() string {
	if r.Host == "" {
		return r.Domain.Name
	}
	return fmt.Sprintf("%s.%s", r.Host, r.Domain.Name)
}

func (d Destination) Key() DestinationKey {
	return DestinationKey{
		AppGuid:     d.App.Guid,
		ProcessType: d.App.Process.Type,
		Port:        d.Port,
	}
}

func (d Destination) ProcessKey() ProcessKey {
	return ProcessKey{AppGuid: d.App.Guid, ProcessType: d.App.Process.Type}
}

func (d Destination) Weighted() bool {
	return d.Weight != nil
}

// DefaultPort is the port a destination gets when the request does not name one.
// Docker images choose their own port, so they defer to the process.
func (a AppRecord) DefaultPort() int {
	if a.Lifecycle == LifecycleDocker {
		return NoAppPortSpecified
	}
	return DefaultHTTPPort
}

func (a AppRecord) Process(processType string) (ProcessRecord, bool) {
	for _, p := range a.Processes {
		if p.Type == processType {
			return p, true
		}
	}
	return ProcessRecord{}, false
}

// ValidPort reports whether port may be stored on a destination
func ValidPort(port int) bool {
	return port == NoAppPortSpecified || (port >= MinAppPort && port <= MaxAppPort)
}

func IntPtr(x int) *int {
	return &x
}
