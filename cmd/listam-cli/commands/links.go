package commands

import (
	"listam-scraper/lib/serviceutil"

	"github.com/spf13/cobra"
)

var categoryPage *string
var businessPage *string

func init() {
	categoryPage = categoryCmd.Flags().String("page", "0", "The listing page to fetch.")
	businessPage = businessCmd.Flags().String("page", "0", "The listing page to fetch.")
	rootCmd.AddCommand(homepageCmd, categoryCmd, businessCmd)
}

var homepageCmd = &cobra.Command{
	Use:   "homepage",
	Short: "Lists the listing links shown on the homepage.",
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()
		links, err := client.HomepageLinks(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch homepage links", err)
		}
		renderLinks(links)
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category <categoryId> [--page <n>]",
	Short: "Lists the listing links of one category page.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()
		links, err := client.CategoryLinks(cmd.Context(), args[0], *categoryPage)
		if err != nil {
			serviceutil.Fatal("failed to fetch category links", err)
		}
		renderLinks(links)
	},
}

var businessCmd = &cobra.Command{
	Use:   "business [--page <n>]",
	Short: "Lists the links of one business pages listing page.",
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()
		links, err := client.BusinessLinks(cmd.Context(), *businessPage)
		if err != nil {
			serviceutil.Fatal("failed to fetch business links", err)
		}
		renderLinks(links)
	},
}
