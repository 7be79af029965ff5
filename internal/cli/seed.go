package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"uatf-curricular/backend/internal/repository"
	"uatf-curricular/backend/internal/service"
)

// SeedCmd loads campuses, faculties, phases and programs
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the reference catalog (safe to repeat)",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			svc := service.NewSeedService(repository.NewRepository(e.db), service.SystemClock{}, e.logger)
			result, err := svc.Seed(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			printSeedResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func printSeedResult(w io.Writer, r *service.SeedResult) {
	if r.Total() == 0 {
		fmt.Fprintf(w, "%s catalog already loaded, nothing to do\n", skipMark)
		return
	}
	fmt.Fprintf(w, "%s campuses:  %d\n", okMark, r.Campuses)
	fmt.Fprintf(w, "%s faculties: %d\n", okMark, r.Faculties)
	fmt.Fprintf(w, "%s phases:    %d\n", okMark, r.Phases)
	fmt.Fprintf(w, "%s programs:  %d\n", okMark, r.Programs)
}
