package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/ui/style"
)

type summaryJSON struct {
	Name        string        `json:"name"`
	CookTime    int           `json:"cookTime"`
	Ingredients []portionJSON `json:"ingredients"`
}

type portionJSON struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func (c *CLI) newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary NAME",
		Short: "Print the ingredients and total cook time of a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seedPath, _ := cmd.Flags().GetString("seed")
			asJSON, _ := cmd.Flags().GetBool("json")

			ctx := cmd.Context()
			if err := c.seed(ctx, seedPath); err != nil {
				return err
			}

			summary, err := c.app.Summarize(ctx, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeSummaryJSON(cmd.OutOrStdout(), summary)
			}
			return writeSummaryText(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().String("seed", c.settings.Seed.Path, "Seed file loaded before summarizing")
	cmd.Flags().Bool("json", false, "Print the summary as JSON")
	return cmd
}

func writeSummaryJSON(w io.Writer, s *domain.Summary) error {
	out := summaryJSON{
		Name:        s.Name,
		CookTime:    s.CookTime,
		Ingredients: make([]portionJSON, 0, len(s.Ingredients)),
	}
	for _, p := range s.Ingredients {
		out.Ingredients = append(out.Ingredients, portionJSON(p))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeSummaryText(w io.Writer, s *domain.Summary) error {
	width := 0
	for _, p := range s.Ingredients {
		width = max(width, len(fmt.Sprint(p.Quantity)))
	}

	var b strings.Builder
	b.WriteString(style.Heading.Render(s.Name) + "\n")
	b.WriteString(style.Muted.Render(fmt.Sprintf("cook time %d", s.CookTime)) + "\n")
	if len(s.Ingredients) == 0 {
		b.WriteString(style.Muted.Render("no ingredients") + "\n")
	}
	for _, p := range s.Ingredients {
		fmt.Fprintf(&b, "%s %*d × %s\n", style.Bullet, width, p.Quantity, p.Name)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
