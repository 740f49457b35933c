package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/laziz/app/routes"
	"github.com/shashiranjanraj/laziz/config"
	"github.com/shashiranjanraj/laziz/internal/cart"
	"github.com/shashiranjanraj/laziz/internal/server"
	"github.com/shashiranjanraj/laziz/pkg/router"
)

// laziz serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// laziz route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		// The driver connects lazily, so route registration works without
		// a reachable MongoDB.
		client, err := mongo.Connect(context.Background(),
			options.Client().ApplyURI(config.MongoURI()))
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background()) //nolint:errcheck

		r := router.New()
		routes.RegisterAPI(r, client.Database(config.MongoDB()), cart.NewStore())

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		// Sort by path then method.
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
