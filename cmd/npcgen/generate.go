package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
	"github.com/cory-johannsen/npcgen/internal/game/npc"
	"github.com/cory-johannsen/npcgen/internal/narrator"
)

// MaxCount bounds --count.
const MaxCount = 1000

type generateFlags struct {
	zone, era, gender, wealth string
	region, occasion, role    string
	age                       int
	seed                      int64
	count                     int
	format                    string
	template, templatesDir    string
	save, narrate             bool
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate NPC profiles",
		Long: "Generates one or more NPC profiles. Unset coordinates are drawn from the seed; " +
			"the same seed and flags always produce the same output.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(f.format); err != nil {
				return err
			}
			return opts.withApp(func(app *App) error {
				return runGenerate(cmd, app, f)
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.zone, "zone", "z", "", "Cultural zone, e.g. EUROPEAN or east-asian")
	fl.StringVarP(&f.era, "era", "e", "", "Era, e.g. MEDIEVAL")
	fl.StringVarP(&f.gender, "gender", "g", "", "Gender: male or female")
	fl.StringVarP(&f.wealth, "wealth", "w", "", "Wealth: poor, modest, comfortable, wealthy, noble")
	fl.StringVarP(&f.region, "region", "r", "", "Region name used by the region filters")
	fl.StringVar(&f.occasion, "occasion", "", "Occasion for temporary markings, e.g. wedding")
	fl.StringVar(&f.role, "role", "", "Preferred profession role")
	fl.IntVar(&f.age, "age", 0, "Age in years (drawn when 0)")
	fl.Int64VarP(&f.seed, "seed", "s", 0, "Generation seed (config default or random when unset)")
	fl.IntVarP(&f.count, "count", "n", 1, "Number of profiles, with consecutive seeds")
	fl.StringVarP(&f.format, "format", "f", "json", "Output format: json or yaml")
	fl.StringVarP(&f.template, "template", "t", "", "Template ID to generate from")
	fl.StringVar(&f.templatesDir, "templates-dir", DefaultTemplatesDir, "Directory of template YAML files")
	fl.BoolVar(&f.save, "save", false, "Persist generated profiles to the database")
	fl.BoolVar(&f.narrate, "narrate", false, "Attach a narrated biography to each profile")

	return cmd
}

func runGenerate(cmd *cobra.Command, app *App, f generateFlags) error {
	ctx := cmd.Context()

	seed, err := resolveSeed(cmd, app, f.seed)
	if err != nil {
		return err
	}

	req, count, err := f.request(seed)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("count") {
		count = f.count
	}
	if count < 1 || count > MaxCount {
		return fmt.Errorf("count must be 1-%d, got %d", MaxCount, count)
	}

	profiles := app.Generator.GenerateBatch(req, count)
	out := make([]rendered, len(profiles))
	for i, p := range profiles {
		out[i] = rendered{Profile: p}
	}

	if f.narrate {
		for i := range out {
			text, err := app.Narrator.Narrate(ctx, out[i].Profile)
			if errors.Is(err, narrator.ErrDisabled) {
				return errors.New("narration is disabled; set narrator.enabled and narrator.api_key")
			}
			if err != nil {
				app.Logger.Warn("narration failed", zap.String("profile_id", out[i].ID), zap.Error(err))
				continue
			}
			out[i].Biography = text
		}
	}

	if f.save {
		repo, closeDB, err := app.OpenProfiles(ctx)
		if err != nil {
			return err
		}
		defer closeDB()
		for _, p := range profiles {
			if err := repo.Save(ctx, p); err != nil {
				return err
			}
		}
		app.Logger.Info("profiles saved", zap.Int("count", len(profiles)))
	}

	return writeDocuments(cmd.OutOrStdout(), f.format, out)
}

// resolveSeed prefers --seed, then the configured default, then a fresh
// random seed.
func resolveSeed(cmd *cobra.Command, app *App, flagSeed int64) (int64, error) {
	if cmd.Flags().Changed("seed") {
		return flagSeed, nil
	}
	if s := app.Config.Generator.DefaultSeed; s != 0 {
		return s, nil
	}
	seed, err := dice.NewSeed()
	if err != nil {
		return 0, err
	}
	app.Logger.Debug("drew random seed", zap.Int64("seed", seed))
	return seed, nil
}

// request builds the generation request and default count. A template sets
// the base request; explicit flags override its fields.
func (f generateFlags) request(seed int64) (npc.Request, int, error) {
	req := npc.Request{Seed: seed}
	count := 1
	if f.template != "" {
		tmpl, err := findTemplate(f.templatesDir, f.template)
		if err != nil {
			return npc.Request{}, 0, err
		}
		req = tmpl.Request(seed)
		count = tmpl.Size()
	}

	var err error
	if f.zone != "" {
		if req.Zone, err = culture.ParseZone(f.zone); err != nil {
			return npc.Request{}, 0, err
		}
	}
	if f.era != "" {
		if req.Era, err = culture.ParseEra(f.era); err != nil {
			return npc.Request{}, 0, err
		}
	}
	if f.gender != "" {
		if req.Gender, err = culture.ParseGender(f.gender); err != nil {
			return npc.Request{}, 0, err
		}
	}
	if f.wealth != "" {
		if req.Wealth, err = culture.ParseWealth(f.wealth); err != nil {
			return npc.Request{}, 0, err
		}
	}
	if f.region != "" {
		req.Region = f.region
	}
	if f.occasion != "" {
		req.Occasion = f.occasion
	}
	if f.role != "" {
		req.PreferredRole = f.role
	}
	req.Age = f.age

	if err := req.Validate(); err != nil {
		return npc.Request{}, 0, err
	}
	return req, count, nil
}
