package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"forkful/internal/domain"
)

func recipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Browse and manage recipes",
	}
	cmd.AddCommand(
		recipesListCmd(), recipesGetCmd(), recipesCreateCmd(), recipesUpdateCmd(),
		recipesDeleteCmd(), recipesSearchCmd(), recipesMineCmd(),
		recipesLikeCmd(), recipesSaveCmd(),
	)
	return cmd
}

func recipesListCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := wire.API.ListRecipes(cmd.Context(), page)
			if err != nil {
				return err
			}
			printRecipePage(recipes)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	return cmd
}

func recipesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one recipe as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			recipe, err := wire.API.GetRecipe(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(recipe)
		},
	}
}

func recipesCreateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recipe from a JSON file (use - for stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readRecipeInput(file)
			if err != nil {
				return err
			}
			recipe, err := wire.API.CreateRecipe(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Created recipe %d: %s\n", recipe.ID, recipe.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "recipe JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func recipesUpdateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a recipe from a JSON file (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			in, err := readRecipeInput(file)
			if err != nil {
				return err
			}
			recipe, err := wire.API.UpdateRecipe(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			fmt.Printf("Updated recipe %d: %s\n", recipe.ID, recipe.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "recipe JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func recipesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := wire.API.DeleteRecipe(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}
}

func recipesSearchCmd() *cobra.Command {
	var filter domain.RecipeFilter
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search recipes by text and/or tags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				filter.Query = args[0]
			}
			recipes, err := wire.API.SearchRecipes(cmd.Context(), filter)
			if err != nil {
				return err
			}
			printRecipePage(recipes)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&filter.Tags, "tag", nil, "filter by tag (repeatable)")
	cmd.Flags().IntVar(&filter.Page, "page", 0, "page number")
	return cmd
}

func recipesMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List recipes you own",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := wire.API.MyRecipes(cmd.Context())
			if err != nil {
				return err
			}
			printRecipePage(recipes)
			return nil
		},
	}
}

func recipesLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Toggle your like on a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			recipe, err := wire.API.ToggleLike(cmd.Context(), id)
			if err != nil {
				return err
			}
			state := "unliked"
			if recipe.Liked {
				state = "liked"
			}
			fmt.Printf("%s %q (%d likes)\n", state, recipe.Title, recipe.Likes)
			return nil
		},
	}
}

func recipesSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <id>",
		Short: "Toggle a recipe in your saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			recipe, err := wire.API.ToggleSave(cmd.Context(), id)
			if err != nil {
				return err
			}
			state := "removed from saved"
			if recipe.Saved {
				state = "saved"
			}
			fmt.Printf("%s %q\n", state, recipe.Title)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid recipe id %q", s)
	}
	return id, nil
}

func readRecipeInput(file string) (domain.RecipeInput, error) {
	var in domain.RecipeInput
	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return in, err
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parse recipe JSON: %w", err)
	}
	return in, nil
}

func printRecipePage(page domain.RecipePage) {
	for _, r := range page.Results {
		fmt.Printf("%6d  %-40s  by %-16s  %d likes\n", r.ID, r.Title, r.Author.Username, r.Likes)
	}
	fmt.Printf("%d recipe(s)\n", page.Count)
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
