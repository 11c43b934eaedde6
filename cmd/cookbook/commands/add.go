package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/zerr"
)

var errInvalidItem = zerr.New("item must be written as Name=Quantity")

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register one ingredient or recipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := entryFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := c.app.AddEntry(cmd.Context(), raw); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %v %v\n", raw["type"], raw["name"])
			return err
		},
	}
	cmd.Flags().String("type", "", "Entry type: ingredient or recipe")
	cmd.Flags().String("name", "", "Entry name")
	cmd.Flags().Int("cook-time", 0, "Cook time of an ingredient")
	cmd.Flags().StringArray("item", nil, "Required item of a recipe as Name=Quantity (repeatable)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// entryFromFlags builds a raw entry. Absent flags stay absent so admission reports them.
func entryFromFlags(cmd *cobra.Command) (domain.RawEntry, error) {
	kind, _ := cmd.Flags().GetString("type")
	name, _ := cmd.Flags().GetString("name")
	raw := domain.RawEntry{"type": kind, "name": name}

	if cmd.Flags().Changed("cook-time") {
		cookTime, _ := cmd.Flags().GetInt("cook-time")
		raw["cookTime"] = cookTime
	}

	specs, _ := cmd.Flags().GetStringArray("item")
	if kind == domain.KindRecipe.String() || len(specs) > 0 {
		items := make([]any, 0, len(specs))
		for _, spec := range specs {
			item, err := parseItem(spec)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		raw["requiredItems"] = items
	}
	return raw, nil
}

func parseItem(spec string) (map[string]any, error) {
	name, qty, ok := strings.Cut(spec, "=")
	if !ok || name == "" {
		return nil, zerr.With(errInvalidItem, "item", spec)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, errInvalidItem.Error()), "item", spec)
	}
	return map[string]any{"name": name, "quantity": quantity}, nil
}
