package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"forkful/internal/domain"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
	}
	cmd.AddCommand(
		profileShowCmd(), profileUpdateCmd(), profileImageCmd(),
		profileGoalsCmd(), profileDietTypesCmd(),
	)
	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := wire.API.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(profile)
		},
	}
}

func profileUpdateCmd() *cobra.Command {
	var in domain.ProfileInput
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change bio, goal, or diet type",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := wire.API.UpdateProfile(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Profile updated for %s\n", profile.User.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Bio, "bio", "", "profile bio")
	cmd.Flags().Int64Var(&in.GoalID, "goal", 0, "goal id (see `profile goals`)")
	cmd.Flags().Int64Var(&in.DietTypeID, "diet", 0, "diet type id (see `profile diet-types`)")
	return cmd
}

func profileImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "image <file>",
		Short: "Upload a new profile image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			profile, err := wire.API.UpdateProfileImage(cmd.Context(), filepath.Base(args[0]), image)
			if err != nil {
				return err
			}
			fmt.Println("Image uploaded:", profile.ImageURL)
			return nil
		},
	}
}

func profileGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "List the dietary goal options",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := wire.API.ListGoals(cmd.Context())
			if err != nil {
				return err
			}
			for _, g := range goals {
				fmt.Printf("%6d  %s\n", g.ID, g.Name)
			}
			return nil
		},
	}
}

func profileDietTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diet-types",
		Short: "List the diet classification options",
		RunE: func(cmd *cobra.Command, args []string) error {
			diets, err := wire.API.ListDietTypes(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range diets {
				fmt.Printf("%6d  %s\n", d.ID, d.Name)
			}
			return nil
		},
	}
}
