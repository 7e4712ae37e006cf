package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AnnaReese/Citidle/internal/config"
	"github.com/AnnaReese/Citidle/internal/dataset"
	"github.com/AnnaReese/Citidle/internal/game"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func newValidateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check dataset integrity, guess resolution, and daily selection determinism.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindFlags(cmd, v)
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			start, err := time.Parse("2006-01-02", v.GetString("start-date"))
			if err != nil {
				return fmt.Errorf("invalid start-date: %w", err)
			}
			return runValidate(cmd, cfg, start, v.GetInt("days"))
		},
	}

	fs := cmd.Flags()
	fs.String("start-date", "2026-01-01", "first date for the determinism check (env: CITIDLE_START_DATE)")
	fs.Int("days", 30, "number of days for the determinism check (env: CITIDLE_DAYS)")

	return cmd
}

func runValidate(cmd *cobra.Command, cfg *config.Config, start time.Time, days int) error {
	out := cmd.OutOrStdout()

	records, err := loadCities(cfg)
	if err != nil {
		return err
	}

	engine, err := game.NewEngine(records)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "=== Citidle Dataset Validation ===")
	fmt.Fprintln(out)

	phases := []*phase{
		validateRecords(records, cfg.MinPopulation),
		validateResolution(engine, records),
		validateDisambiguation(engine, records),
		validateDeterminism(records, start, days),
	}

	fmt.Fprintln(out)
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-45s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Cities: %d records, %d in daily pool\n",
		len(records), engine.Selector().PoolSize())

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if !allPassed {
		return fmt.Errorf("validation failed")
	}
	fmt.Fprintln(out, "\nAll validations passed.")
	return nil
}

// validateRecords checks structural integrity of each dataset row.
func validateRecords(records []dataset.CityRecord, minPopulation int) *phase {
	p := &phase{name: "Phase 1: Record Integrity"}

	for i, rec := range records {
		if rec.Name == "" {
			p.errorf("record %d: empty name", i)
		}
		if len(rec.State) != 2 {
			p.errorf("record %d (%s): state %q is not 2 characters", i, rec.Name, rec.State)
		}
		if rec.Lat < -90 || rec.Lat > 90 {
			p.errorf("record %d (%s): latitude %g out of range", i, rec.Name, rec.Lat)
		}
		if rec.Lng < -180 || rec.Lng > 180 {
			p.errorf("record %d (%s): longitude %g out of range", i, rec.Name, rec.Lng)
		}
		if rec.Population < minPopulation {
			p.errorf("record %d (%s): population %d below minimum %d", i, rec.Name, rec.Population, minPopulation)
		}
	}
	return p
}

// validateResolution checks that every city resolves through the index by
// its own name, and that every alias resolves to some city.
func validateResolution(engine *game.Engine, records []dataset.CityRecord) *phase {
	p := &phase{name: "Phase 2: Guess Resolution"}

	for _, rec := range records {
		matches := engine.FindCities(rec.Name)
		if len(matches) == 0 {
			p.errorf("%s, %s: own name does not resolve", rec.Name, rec.State)
			continue
		}
		found := false
		for _, m := range matches {
			if m.Name == rec.Name && m.State == rec.State {
				found = true
				break
			}
		}
		if !found {
			p.errorf("%s, %s: own name resolves, but not to itself", rec.Name, rec.State)
		}
	}

	// An alias whose target city isn't in the dataset (e.g. filtered out by
	// population) is allowed to miss; one whose target is present must hit.
	known := map[string]bool{}
	for _, rec := range records {
		known[game.Normalize(rec.Name)] = true
	}
	aliases := game.Aliases()
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	for _, alias := range names {
		if !known[game.Normalize(aliases[alias])] {
			continue
		}
		if len(engine.FindCities(alias)) == 0 {
			p.errorf("alias %q (-> %q) resolves to no city", alias, aliases[alias])
		}
	}
	return p
}

// validateDisambiguation checks that state-qualified guesses pick the right
// record whenever a name is shared by several states.
func validateDisambiguation(engine *game.Engine, records []dataset.CityRecord) *phase {
	p := &phase{name: "Phase 3: State Disambiguation"}

	byName := map[string][]dataset.CityRecord{}
	for _, rec := range records {
		key := game.Normalize(rec.Name)
		byName[key] = append(byName[key], rec)
	}

	for _, recs := range byName {
		if len(recs) < 2 {
			continue
		}
		for _, rec := range recs {
			query := fmt.Sprintf("%s, %s", rec.Name, rec.State)
			matches := engine.FindCities(query)
			if len(matches) == 0 {
				p.errorf("%q resolves to no city", query)
				continue
			}
			if matches[0].State != rec.State {
				p.errorf("%q resolved to state %s", query, matches[0].State)
			}
		}
	}
	return p
}

// validateDeterminism re-runs daily selection on a fresh engine and checks
// the two agree for every date in the window, then reports pool coverage.
func validateDeterminism(records []dataset.CityRecord, start time.Time, days int) *phase {
	p := &phase{name: "Phase 4: Daily Selection Determinism"}

	first, err := game.NewEngine(records)
	if err != nil {
		p.errorf("build engine: %v", err)
		return p
	}
	second, err := game.NewEngine(records)
	if err != nil {
		p.errorf("rebuild engine: %v", err)
		return p
	}

	seen := map[string]bool{}
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		a := first.Selector().CityFor(date)
		b := second.Selector().CityFor(date)
		if a.Name != b.Name || a.State != b.State {
			p.errorf("%s: selection not reproducible: %s, %s vs %s, %s",
				date.Format("2006-01-02"), a.Name, a.State, b.Name, b.State)
		}
		seen[strings.ToLower(a.Name+", "+a.State)] = true
	}

	if days > 1 && len(seen) < 2 {
		p.errorf("%d days produced only %d distinct cities", days, len(seen))
	}
	return p
}
