package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/npcgen/internal/game/clothing"
	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

type clothingFlags struct {
	zone, era, wealth, gender string
	region, occupation        string
	seed                      int64
	format                    string
}

// clothingOutput is the clothing command's document.
type clothingOutput struct {
	Coordinate string          `json:"coordinate" yaml:"coordinate"`
	Seed       int64           `json:"seed" yaml:"seed"`
	Result     clothing.Result `json:"result" yaml:"result"`
}

func newClothingCmd(opts *rootOptions) *cobra.Command {
	var f clothingFlags

	cmd := &cobra.Command{
		Use:   "clothing",
		Short: "Resolve an outfit for a coordinate",
		Long:  "Runs the clothing fallback chain alone and reports the stage that produced the outfit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(f.format); err != nil {
				return err
			}
			return opts.withApp(func(app *App) error {
				return runClothing(cmd, app, f)
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.zone, "zone", "z", "", "Cultural zone (required)")
	fl.StringVarP(&f.era, "era", "e", "", "Era (required)")
	fl.StringVarP(&f.wealth, "wealth", "w", "modest", "Wealth level")
	fl.StringVarP(&f.gender, "gender", "g", "male", "Gender")
	fl.StringVarP(&f.region, "region", "r", "", "Region for the post-resolution filter")
	fl.StringVar(&f.occupation, "occupation", "", "Occupation for the post-resolution filter")
	fl.Int64VarP(&f.seed, "seed", "s", 0, "Seed for weighted choices")
	fl.StringVarP(&f.format, "format", "f", "json", "Output format: json or yaml")
	_ = cmd.MarkFlagRequired("zone")
	_ = cmd.MarkFlagRequired("era")

	return cmd
}

func runClothing(cmd *cobra.Command, app *App, f clothingFlags) error {
	coord, err := f.coordinate()
	if err != nil {
		return err
	}
	seed, err := resolveSeed(cmd, app, f.seed)
	if err != nil {
		return err
	}

	logger := app.Logger.With(zap.Int64("seed", seed))
	res := clothing.NewResolver(app.Tables.Clothing, dice.NewSeededSource(seed), logger).Resolve(coord)
	res.Set = clothing.FilterForRegion(res.Set, f.region, f.occupation)

	out := clothingOutput{Coordinate: coord.String(), Seed: seed, Result: res}
	return writeDocuments(cmd.OutOrStdout(), f.format, []clothingOutput{out})
}

func (f clothingFlags) coordinate() (culture.Coordinate, error) {
	zone, err := culture.ParseZone(f.zone)
	if err != nil {
		return culture.Coordinate{}, err
	}
	era, err := culture.ParseEra(f.era)
	if err != nil {
		return culture.Coordinate{}, err
	}
	wealth, err := culture.ParseWealth(f.wealth)
	if err != nil {
		return culture.Coordinate{}, err
	}
	gender, err := culture.ParseGender(f.gender)
	if err != nil {
		return culture.Coordinate{}, fmt.Errorf("--gender: %w", err)
	}
	return culture.Coordinate{Zone: zone, Era: era, Tier: wealth.Tier(), Gender: gender}, nil
}
