package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
	"uatf-curricular/backend/internal/service"
)

// CreateUserCmd creates an account with any role, typically the first admin
func CreateUserCmd() *cobra.Command {
	var in service.NewUser

	cmd := &cobra.Command{
		Use:   "create-user [username]",
		Short: "Create a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Username = args[0]
			if in.FullName == "" {
				in.FullName = in.Username
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			user, err := service.CreateUser(cmd.Context(), repository.NewRepository(e.db), service.SystemClock{}, in)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			printCreatedUser(cmd.OutOrStdout(), user)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Password, "password", "", "initial password (required)")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.FullName, "name", "", "full name (defaults to the username)")
	cmd.Flags().StringVar(&in.Role, "role", model.RoleAdmin, "admin, coordinador, gestor or revisor")
	cmd.Flags().StringVar(&in.FacultyID, "faculty", "", "faculty id")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func printCreatedUser(w io.Writer, user *model.User) {
	fmt.Fprintf(w, "%s created %s (%s) id=%s\n", okMark, user.Username, model.RoleLabels[user.Role], user.UserID)
}
