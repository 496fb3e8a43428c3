package commands

import (
	"os"
	"strings"
	"time"

	"listam-scraper/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(itemCmd)
}

var itemCmd = &cobra.Command{
	Use:   "item <itemId>",
	Short: "Fetches one item detail page, including the seller profile.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()
		item, err := client.ItemInfo(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to fetch item", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRows([]table.Row{
			{"name", item.Name},
			{"description", item.Description},
			{"price", item.Price.AdditionalInfo},
			{"amount", item.Price.Amount},
			{"currency", item.Price.Currency},
			{"location", item.Location.Text},
			{"top", item.Flags.Top},
			{"homepage", item.Flags.Homepage},
			{"urgent", item.Flags.Urgent},
			{"posted", item.Footer.DatePosted.Format(time.RFC3339)},
			{"renewed", item.Footer.Renewed.Format(time.RFC3339)},
			{"categories", strings.Join(item.Categories, " > ")},
			{"images", strings.Join(item.Images, "\n")},
		})
		for key, value := range item.Properties {
			t.AppendRow(table.Row{key, value})
		}
		t.AppendRows([]table.Row{
			{"author", item.Author.Name},
			{"author url", item.Author.UserUrl},
			{"author avatar", item.Author.Avatar},
			{"author phones", strings.Join(item.Author.Phones, ", ")},
			{"registered", item.Author.RegisterSince.Format(time.RFC3339)},
		})
		t.Render()
	},
}
