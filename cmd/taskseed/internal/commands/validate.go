package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wolfeidau/taskseed/internal/logger"
	"github.com/wolfeidau/taskseed/internal/store"
	"github.com/wolfeidau/taskseed/internal/validate"
)

type ValidateCmd struct {
	Strict bool `help:"fail when marginal rates drift outside their target bands" default:"false"`

	// Dataset store
	StoreFlags
}

func (v *ValidateCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)

	loader, closeStore, err := openStore(ctx, &v.StoreFlags)
	if err != nil {
		return err
	}
	defer closeStore()

	ds, err := loader.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotSeeded) {
			return fmt.Errorf("no dataset to validate in the %s store: %w", v.Store, err)
		}
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	log.Info().
		Uint64("seed", ds.Seed).
		Int("total_rows", ds.TotalRows()).
		Str("store", v.Store).
		Msg("Dataset loaded")

	report := validate.Check(ctx, ds)
	printReport(report)

	if report.Failed(v.Strict) {
		return errors.New("dataset failed validation")
	}

	fmt.Println()
	fmt.Println("Validation passed.")
	return nil
}

func printReport(report *validate.Report) {
	categories := []string{
		validate.CategoryReferential,
		validate.CategoryTemporal,
		validate.CategoryBusiness,
		validate.CategoryDistribution,
	}
	counts := report.CountsByCategory()

	fmt.Printf("%-25s %s\n", "Category", "Result")
	fmt.Println(strings.Repeat("─", 45))
	for _, category := range categories {
		result := "pass"
		if n := counts[category]; n > 0 {
			result = fmt.Sprintf("%d findings", n)
		}
		fmt.Printf("%-25s %s\n", category, result)
	}

	// A corrupt dataset can produce thousands of findings, cap the listing.
	const maxFindings = 20
	shown := report.Findings
	if len(shown) > maxFindings {
		shown = shown[:maxFindings]
	}
	if len(shown) > 0 {
		fmt.Println()
	}
	for _, f := range shown {
		fmt.Printf("  [%s] %s\n", f.Category, f.Message)
	}
	if extra := len(report.Findings) - len(shown); extra > 0 {
		fmt.Printf("  ... and %d more findings\n", extra)
	}

	if len(report.Observations) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("%-20s %10s   %-14s\n", "Observation", "Value", "Target Band")
	fmt.Println(strings.Repeat("─", 50))
	for _, o := range report.Observations {
		marker := ""
		if !o.InBand() {
			marker = "   out of band"
		}
		fmt.Printf("%-20s %10.3f   [%.2f, %.2f]%s\n", o.Name, o.Value, o.Lo, o.Hi, marker)
	}
}
