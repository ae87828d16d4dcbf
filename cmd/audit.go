package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slot-engine/internal/adapter/usecase"
	"slot-engine/internal/core/domain"
)

var auditStrict bool

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Compose both headline areas and report slot conflicts",
	RunE:  runAudit,
}

func init() {
	auditCmd.Flags().BoolVar(&auditStrict, "strict", false, "exit non-zero when any warning is found")
}

func runAudit(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog(cmd.Context(), cfg, logger, false)
	if err != nil {
		return err
	}
	defer cat.close()

	headlines := usecase.NewHeadlineUseCase(cat.headlines, cat.headlines.Slots(), nil, logger, cfg.Reconcile)
	out := cmd.OutOrStdout()

	total := 0
	for _, area := range []domain.Area{domain.AreaPrimary, domain.AreaSecondary} {
		h, err := headlines.Compose(cmd.Context(), area)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "area %d (version %d): %d entries\n", area, h.Version, len(h.Entries))
		for _, e := range h.Entries {
			fmt.Fprintf(out, "  %2d  %-22s %s\n", e.Slot, e.Ref(), e.Label)
		}
		for _, w := range h.Warnings {
			fmt.Fprintf(out, "  ! %s\n", w)
		}
		total += len(h.Warnings)
	}

	if auditStrict && total > 0 {
		return fmt.Errorf("%d integrity warnings", total)
	}
	return nil
}
