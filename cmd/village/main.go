package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-tvn/internal/catalog"
	"github.com/napolitain/solver-tvn/internal/engine"
	"github.com/napolitain/solver-tvn/internal/loader"
	"github.com/napolitain/solver-tvn/internal/models"
	"github.com/napolitain/solver-tvn/internal/planner"
	"github.com/napolitain/solver-tvn/internal/village"
)

var (
	dataDir     string
	csvFile     string
	configFile  string
	presetName  string
	villageType string
	capital     bool
	serverSpeed float64
	steps       int
	quiet       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "village",
		Short: "Travian Village Economy Simulator",
		Long: `A deterministic village economy simulator: building costs,
production rates and a turn-based action model for exploring
build orders.`,
		RunE: runSimulation,
	}

	rootCmd.Flags().StringVarP(&dataDir, "data", "d", "data", "Path to data directory")
	rootCmd.Flags().StringVar(&csvFile, "csv", "", "Load catalog from an enhanced CSV file instead of buildings.json")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to YAML simulation config")
	rootCmd.Flags().StringVarP(&presetName, "preset", "p", "", "Standard village preset (e.g. start, cropper9)")
	rootCmd.Flags().StringVarP(&villageType, "type", "t", "", "Village type string (e.g. 4-4-4-6)")
	rootCmd.Flags().BoolVar(&capital, "capital", false, "Treat the village as a capital (field cap 20)")
	rootCmd.Flags().Float64VarP(&serverSpeed, "speed", "s", 0, "Server speed multiplier (overrides config)")
	rootCmd.Flags().IntVarP(&steps, "steps", "n", 0, "Greedily commit and complete this many constructions")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)
	successColor := color.New(color.FgGreen, color.Bold)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  Travian Village          │")
		titleColor.Println("│  Economy Simulator        │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	cfg, err := resolveConfig()
	if err != nil {
		color.Red("Error loading config: %v", err)
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		color.Red("Error loading catalog: %v", err)
		return err
	}
	if !quiet {
		infoColor.Printf("📦 Loaded %d buildings\n\n", cat.Len())
	}

	v, err := createVillage(cfg)
	if err != nil {
		color.Red("Error creating village: %v", err)
		return err
	}
	v.Stock = models.Stock{
		Wood: cfg.Resources.Wood,
		Clay: cfg.Resources.Clay,
		Iron: cfg.Resources.Iron,
		Crop: cfg.Resources.Crop,
	}

	eng, err := engine.New(cat, v, cfg.ServerSpeed)
	if err != nil {
		color.Red("Error creating engine: %v", err)
		return err
	}

	if !quiet {
		printVillage(eng.CurrentState())
		printActions(eng.ValidActions())
	}

	if steps > 0 {
		completed, err := runGreedy(eng, steps)
		if err != nil {
			color.Red("Simulation error: %v", err)
			return err
		}
		printBuildLog(completed)
		st := eng.CurrentState()
		successColor.Printf("\n✓ Completed %d constructions in %s\n", len(completed), formatTime(st.Now))
		if !quiet {
			printVillage(st)
		}
	}

	return nil
}

// resolveConfig merges the optional YAML config with CLI flag overrides
func resolveConfig() (*loader.SimConfig, error) {
	cfg := loader.DefaultSimConfig()
	if configFile != "" {
		loaded, err := loader.LoadSimConfig(configFile)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if presetName != "" {
		villageTypeFromPreset, err := village.PresetType(presetName)
		if err != nil {
			return nil, err
		}
		cfg.VillageType = villageTypeFromPreset
		cfg.Preset = presetName
	}
	if villageType != "" {
		cfg.VillageType = villageType
	}
	if capital {
		cfg.Capital = true
	}
	if serverSpeed > 0 {
		cfg.ServerSpeed = serverSpeed
	}

	return &cfg, nil
}

func loadCatalog() (*catalog.Catalog, error) {
	var (
		data []*models.BuildingData
		err  error
	)
	if csvFile != "" {
		data, err = loader.LoadBuildingsCSV(csvFile)
	} else {
		data, err = loader.LoadBuildings(dataDir)
	}
	if err != nil {
		return nil, err
	}
	return catalog.New(data, catalog.DefaultClassification())
}

func createVillage(cfg *loader.SimConfig) (*village.Village, error) {
	if cfg.Preset != "" {
		return village.NewFromPreset(cfg.Preset, cfg.Capital)
	}
	return village.New(cfg.VillageType, cfg.Capital)
}

// runGreedy repeatedly commits the cheapest affordable action and
// advances to completions until the requested number of
// constructions has finished
func runGreedy(eng *engine.Engine, limit int) ([]engine.Construction, error) {
	greedy := planner.NewGreedy(eng.Catalog())
	var completed []engine.Construction

	for len(completed) < limit {
		st := eng.CurrentState()
		action := greedy.Next(st, eng.ValidActions())

		if action != nil {
			if _, err := eng.Commit(action); err != nil {
				return completed, err
			}
			continue
		}

		if st.PendingCount() == 0 {
			// Nothing affordable and nothing in flight: wait one hour of
			// production and retry
			next, err := st.AdvanceTimeTo(st.Now + 3600)
			if err != nil {
				return completed, err
			}
			eng.Advance(next)
			continue
		}

		c, _ := st.Pending.Peek()
		next, err := st.AdvanceToNextEvent()
		if err != nil {
			return completed, err
		}
		eng.Advance(next)
		completed = append(completed, c)
	}

	return completed, nil
}

func printVillage(st *engine.GameState) {
	infoColor := color.New(color.FgYellow)
	v := st.Village

	infoColor.Printf("📊 Village %s (capital=%v) at %s:\n", v.Type, v.Capital, formatTime(st.Now))
	breakdown := v.TypeBreakdown()
	fmt.Printf("   Fields: Wood=%d Clay=%d Iron=%d Crop=%d\n",
		breakdown.Wood, breakdown.Clay, breakdown.Iron, breakdown.Crop)
	fmt.Printf("   Resources: Wood=%.0f Clay=%.0f Iron=%.0f Crop=%.0f\n",
		v.Stock.Wood, v.Stock.Clay, v.Stock.Iron, v.Stock.Crop)
	fmt.Printf("   Caps: Wood=%d Clay=%d Iron=%d Crop=%d\n",
		v.Caps.Wood, v.Caps.Clay, v.Caps.Iron, v.Caps.Crop)

	production := v.ProductionPerHour()
	fmt.Printf("   Production/h: Wood=%.0f Clay=%.0f Iron=%.0f Crop=%.0f\n",
		production.Wood, production.Clay, production.Iron, production.Crop)
	fmt.Printf("   Population: %d, Culture/h: %d, Pending: %d\n\n",
		v.Population, v.CulturePointsPerHour(), st.PendingCount())
}

func printActions(actions []models.Action) {
	infoColor := color.New(color.FgYellow)
	infoColor.Printf("🎯 Valid actions (%d):\n", len(actions))

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Position", "Target", "Action"}),
	)
	for i, a := range actions {
		_ = table.Append([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", a.Position()),
			fmt.Sprintf("%d", a.TargetLevel()),
			a.Description(),
		})
	}
	_ = table.Render()
	fmt.Println()
}

func printBuildLog(completed []engine.Construction) {
	if len(completed) == 0 {
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Kind", "What", "Level", "Done", "Costs"}),
	)
	for i, c := range completed {
		what := string(c.FieldType)
		if c.Kind == engine.BuildingConstruction {
			what = c.BuildingName
		}
		_ = table.Append([]string{
			fmt.Sprintf("%d", i+1),
			c.Kind.String(),
			what,
			fmt.Sprintf("%d", c.TargetLevel),
			formatTime(c.CompletionAt),
			formatCosts(c.Cost),
		})
	}
	_ = table.Render()
}

func formatTime(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

func formatCosts(costs models.Costs) string {
	return fmt.Sprintf("W:%5d C:%5d I:%5d Cr:%4d",
		costs.Wood, costs.Clay, costs.Iron, costs.Crop)
}
