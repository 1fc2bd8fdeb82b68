package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/lumelle/catalog-fixture/internal/adapter/fixture"
	"github.com/lumelle/catalog-fixture/internal/core/domain"
)

var version = "0.1.0"

const defaultFixtureFile = "fixtures/catalog.json"

// LintCommand returns the lint command.
func LintCommand() *cli.Command {
	return &cli.Command{
		Name:  "lint",
		Usage: "Validate the fixture document and print a summary",
		Action: func(c *cli.Context) error {
			catalog, err := fixture.LoadCatalog(c.String("fixture"))
			if err != nil {
				return cli.Exit(err, 2)
			}

			n := catalog.Len()
			ps, err := catalog.ListProducts(
				c.Context, domain.ProductFilter{Limit: &n},
			)
			if err != nil {
				return cli.Exit(err, 2)
			}

			cats := make(map[string]int)
			var featured int
			for _, p := range ps {
				cats[strings.ToLower(p.Category)]++
				if p.FeaturedInWidget {
					featured++
				}
			}
			fmt.Printf("fixture OK: %d products, %d featured\n", n, featured)
			for _, cat := range slices.Sorted(maps.Keys(cats)) {
				label := cat
				if label == "" {
					label = "(none)"
				}
				fmt.Printf("  %s: %d\n", label, cats[cat])
			}
			return nil
		},
	}
}

// ListCommand returns the list command.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List products matching the given filter",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Usage: "case-insensitive category match"},
			&cli.BoolFlag{Name: "ready-to-ship", Usage: "match the ready-to-ship flag"},
			&cli.StringSliceFlag{Name: "tag", Usage: "required tag, repeatable"},
			&cli.BoolFlag{Name: "featured", Usage: "match the featured-in-widget flag"},
			&cli.Float64Flag{Name: "price-lt", Usage: "keep products strictly cheaper than this"},
			&cli.IntFlag{Name: "offset", Usage: "products to skip"},
			&cli.IntFlag{Name: "limit", Usage: "page size", Value: domain.DefaultListLimit},
		},
		Action: func(c *cli.Context) error {
			catalog, err := fixture.LoadCatalog(c.String("fixture"))
			if err != nil {
				return cli.Exit(err, 2)
			}

			f := domain.ProductFilter{
				Category: c.String("category"),
				Tags:     c.StringSlice("tag"),
				Offset:   c.Int("offset"),
			}
			if c.IsSet("ready-to-ship") {
				v := c.Bool("ready-to-ship")
				f.ReadyToShip = &v
			}
			if c.IsSet("featured") {
				v := c.Bool("featured")
				f.Featured = &v
			}
			if c.IsSet("price-lt") {
				v := c.Float64("price-lt")
				f.PriceLt = &v
			}
			limit := c.Int("limit")
			f.Limit = &limit

			ps, err := catalog.ListProducts(c.Context, f)
			if err != nil {
				return cli.Exit(err, 2)
			}
			for _, p := range ps {
				fmt.Printf("%s\t%.2f %s\t%s\n", p.ID, p.Price, p.Currency, p.Title)
			}
			return nil
		},
	}
}

// GetCommand returns the get command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print a single product by id",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("missing product id argument", 2)
			}

			catalog, err := fixture.LoadCatalog(c.String("fixture"))
			if err != nil {
				return cli.Exit(err, 2)
			}

			p, err := catalog.GetProduct(c.Context, id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return cli.Exit(fmt.Sprintf("product %q not found", id), 1)
				}
				return cli.Exit(err, 2)
			}

			fmt.Printf("id:              %s\n", p.ID)
			fmt.Printf("title:           %s\n", p.Title)
			fmt.Printf("price:           %.2f %s\n", p.Price, p.Currency)
			fmt.Printf("category:        %s\n", p.Category)
			fmt.Printf("readyToShip:     %t\n", p.ReadyToShip)
			fmt.Printf("tags:            %s\n", strings.Join(p.Tags, ", "))
			fmt.Printf("shippingPromise: %s\n", p.ShippingPromise)
			fmt.Printf("badges:          %s\n", strings.Join(p.Badges, ", "))
			fmt.Printf("featured:        %t\n", p.FeaturedInWidget)
			return nil
		},
	}
}

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "fixturectl",
		Usage:   "Inspect and validate product fixture documents",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "fixture",
				Usage:   "path to the fixture document",
				Value:   defaultFixtureFile,
				EnvVars: []string{"CATALOG_FIXTURE_FILE"},
			},
		},
		Commands: []*cli.Command{
			LintCommand(),
			ListCommand(),
			GetCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
