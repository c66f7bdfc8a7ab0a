package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ingredientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingredients",
		Short: "Look up ingredients in the food database",
	}
	cmd.AddCommand(ingredientsSearchCmd(), ingredientsNutritionCmd())
	return cmd
}

func ingredientsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search ingredients by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := wire.API.SearchIngredients(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, ing := range matches {
				fmt.Printf("%6d  %s\n", ing.ID, ing.Name)
			}
			fmt.Printf("%d match(es)\n", len(matches))
			return nil
		},
	}
}

func ingredientsNutritionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nutrition <id>",
		Short: "Show per-100g nutrition facts for an ingredient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := wire.API.IngredientNutrition(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("calories %.1f kcal, protein %.1f g, fat %.1f g, carbs %.1f g\n",
				n.Calories, n.Protein, n.Fat, n.Carbs)
			return nil
		},
	}
}
