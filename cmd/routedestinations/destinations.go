package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/store"
)

var addCmd = &cobra.Command{
	Use:   "add DESTINATION...",
	Short: "Map destinations to a route, keeping the ones it already has",
	Long: `Each DESTINATION is app-guid[:process-type[:port[:weight]]]. Destinations
the route already has are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requests, err := parseDestinations(args)
		if err != nil {
			return err
		}

		c, err := setup(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resolver, err := buildResolver(cmd, c.config)
		if err != nil {
			return err
		}
		route, err := routeFromFlags(cmd.Context(), cmd.Flags(), c.store)
		if err != nil {
			return err
		}
		manifest, _ := cmd.Flags().GetBool("manifest")

		created, err := c.updater.Add(cmd.Context(), requests, route, resolver, actorFromFlags(cmd.Flags()), manifest)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), map[string][]models.Destination{"created": created})
	},
}

var replaceCmd = &cobra.Command{
	Use:   "replace [DESTINATION...]",
	Short: "Make the destinations of a route exactly the given ones",
	Long: `Each DESTINATION is app-guid[:process-type[:port[:weight]]]. Giving no
destinations unmaps everything from the route.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		requests, err := parseDestinations(args)
		if err != nil {
			return err
		}

		c, err := setup(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resolver, err := buildResolver(cmd, c.config)
		if err != nil {
			return err
		}
		route, err := routeFromFlags(cmd.Context(), cmd.Flags(), c.store)
		if err != nil {
			return err
		}
		manifest, _ := cmd.Flags().GetBool("manifest")

		created, removed, err := c.updater.Replace(cmd.Context(), requests, route, resolver, actorFromFlags(cmd.Flags()), manifest)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), map[string][]models.Destination{"created": created, "removed": removed})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [app-guid:process-type:port]",
	Short: "Unmap one unweighted destination from a route",
	Long: `The destination is named either by --destination-guid or by its app guid,
process type and port.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		destinationGuid, _ := cmd.Flags().GetString("destination-guid")
		destination := models.Destination{Guid: destinationGuid}
		switch {
		case destinationGuid != "" && len(args) > 0:
			return fmt.Errorf("pass either --destination-guid or a destination, not both")
		case destinationGuid == "" && len(args) == 0:
			return fmt.Errorf("pass --destination-guid or a destination")
		case len(args) == 1:
			request, err := parseDestination(args[0])
			if err != nil {
				return err
			}
			if request.Port == nil {
				return fmt.Errorf("destination %q: port is required to identify a destination", args[0])
			}
			if request.Weight != nil {
				return fmt.Errorf("destination %q: weighted destinations cannot be deleted individually", args[0])
			}
			destination.App = models.App{Guid: request.AppGuid, Process: models.Process{Type: request.ProcessType}}
			if destination.App.Process.Type == "" {
				destination.App.Process.Type = models.DefaultProcessType
			}
			destination.Port = *request.Port
		}

		c, err := setup(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		routeGuid, _ := cmd.Flags().GetString("route")
		route, found, err := findRoute(cmd.Context(), c.store, routeGuid)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("route %s: %w", routeGuid, models.ErrNotFound)
		}

		return c.updater.Delete(cmd.Context(), destination, route, actorFromFlags(cmd.Flags()))
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every route with its destinations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s := store.NewRedisStore(config.Redis.Address, config.Redis.Password, config.Redis.DB, store.WithKeyPrefix(config.Redis.KeyPrefix))
		defer s.Close()

		routes, err := s.Routes(cmd.Context())
		if err != nil {
			return err
		}

		routeGuid, _ := cmd.Flags().GetString("route")
		if routeGuid != "" {
			filtered := []models.Route{}
			for _, r := range routes {
				if r.Guid == routeGuid {
					filtered = append(filtered, r)
				}
			}
			routes = filtered
		}
		return printJSON(cmd.OutOrStdout(), routes)
	},
}

type routeLister interface {
	Routes(ctx context.Context) ([]models.Route, error)
}

func findRoute(ctx context.Context, s routeLister, guid string) (models.Route, bool, error) {
	routes, err := s.Routes(ctx)
	if err != nil {
		return models.Route{}, false, fmt.Errorf("store list routes: %w", err)
	}
	for _, r := range routes {
		if r.Guid == guid {
			r.Destinations = nil
			return r, true, nil
		}
	}
	return models.Route{}, false, nil
}

// routeFromFlags uses the stored route when there is one. Unknown routes are
// built from the flags and need at least a domain.
func routeFromFlags(ctx context.Context, flags *pflag.FlagSet, s routeLister) (models.Route, error) {
	guid, _ := flags.GetString("route")
	route, found, err := findRoute(ctx, s, guid)
	if err != nil || found {
		return route, err
	}

	domain, _ := flags.GetString("domain")
	if domain == "" {
		return models.Route{}, fmt.Errorf("route %s is unknown: pass --domain to create it", guid)
	}
	route.Guid = guid
	route.Host, _ = flags.GetString("host")
	route.Path, _ = flags.GetString("path")
	route.Domain.Name = domain
	route.Domain.Guid, _ = flags.GetString("domain-guid")
	route.Domain.Internal, _ = flags.GetBool("internal")
	return route, nil
}

func actorFromFlags(flags *pflag.FlagSet) models.UserAuditInfo {
	actor := models.UserAuditInfo{}
	actor.UserGuid, _ = flags.GetString("user-guid")
	actor.UserName, _ = flags.GetString("user-name")
	actor.UserEmail, _ = flags.GetString("user-email")
	return actor
}

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func addRouteFlags(cmd *cobra.Command, creates bool) {
	cmd.Flags().String("route", "", "route guid")
	cmd.MarkFlagRequired("route")
	cmd.Flags().String("user-guid", "", "guid of the user recorded on audit events")
	cmd.Flags().String("user-name", "", "name of the user recorded on audit events")
	cmd.Flags().String("user-email", "", "email of the user recorded on audit events")
	if !creates {
		return
	}
	cmd.Flags().String("host", "", "host of a route not stored yet")
	cmd.Flags().String("domain", "", "domain name of a route not stored yet")
	cmd.Flags().String("domain-guid", "", "domain guid of a route not stored yet")
	cmd.Flags().String("path", "", "path of a route not stored yet")
	cmd.Flags().Bool("internal", false, "whether the domain of a route not stored yet is internal")
	cmd.Flags().Bool("manifest", false, "record the change as triggered by an app manifest")
}

func init() {
	addRouteFlags(addCmd, true)
	addRouteFlags(replaceCmd, true)
	addRouteFlags(deleteCmd, false)
	deleteCmd.Flags().String("destination-guid", "", "guid of the destination to unmap")
	listCmd.Flags().String("route", "", "only print this route")

	rootCmd.AddCommand(addCmd, replaceCmd, deleteCmd, listCmd)
}
