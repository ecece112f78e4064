package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/schedview/internal/model"
)

// NewCategoriesCommand creates the categories command.
func NewCategoriesCommand(rootOpts *RootOptions) *cobra.Command {
	var counts bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Long: `List every category in schedule order.

With --counts each category carries the number of events that reference it;
an event in several categories counts once toward each.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if counts {
				return a.formatter.Success(categoryCountList(a.views.Categories.CategoriesWithEventCounts()))
			}
			return a.formatter.Success(categoryList(a.views.Categories.AllCategories()))
		},
	}

	cmd.Flags().BoolVar(&counts, "counts", false, "include per-category event counts")

	return cmd
}

// NewCategoryCommand creates the category command.
func NewCategoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "category <id>",
		Short:         "Show one category",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			id, err := parseID(a.formatter, "category", args[0])
			if err != nil {
				return err
			}
			c, ok := a.views.Categories.Category(id)
			if !ok {
				return outputNotFound(a.formatter, model.KindCategory, id)
			}
			return outputEntity(a.formatter, c, categoryList{c})
		},
	}

	return cmd
}

// outputEntity writes v as a JSON object, or text as a one-row table.
func outputEntity(formatter *OutputFormatter, v interface{}, text TextRenderer) error {
	if formatter.Format == "json" {
		return formatter.Success(v)
	}
	return formatter.Success(text)
}
