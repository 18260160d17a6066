// Package processports derives the ports a process must keep open from the
// destinations that reference it.
package processports

import (
	"sort"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

// Compute returns the sorted union of ports across every destination that
// references process. Destinations using the sentinel port do not contribute.
// A nil result means the process should fall back to its own default port.
func Compute(process models.ProcessKey, destinations []models.Destination) []int {
	seen := make(map[int]struct{})
	for _, d := range destinations {
		if d.ProcessKey() != process {
			continue
		}
		if d.Port == models.NoAppPortSpecified {
			continue
		}
		seen[d.Port] = struct{}{}
	}

	if len(seen) == 0 {
		return nil
	}

	ports := make([]int, 0, len(seen))
	for port := range seen {
		ports = append(ports, port)
	}
	sort.Ints(ports)
	return ports
}
