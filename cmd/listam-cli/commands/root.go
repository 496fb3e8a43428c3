package commands

import (
	"context"
	"fmt"
	"os"

	"listam-scraper/lib/configutil"
	"listam-scraper/lib/restyutil"
	"listam-scraper/lib/scrapers/listam"
	"listam-scraper/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// Config is read from listam.json5 next to the working directory. Every
// field is optional, the zero config scrapes the public site directly.
type Config struct {
	BaseUrl string        `json:"base_url"`
	Proxy   *listam.Proxy `json:"proxy"`
}

var debugHttp *bool

var rootCmd = &cobra.Command{
	Use:   "listam-cli",
	Short: "listam-cli scrapes list.am listing links and item details into the terminal.",
}

func init() {
	debugHttp = rootCmd.PersistentFlags().Bool(
		"debug-http", false,
		"Dump every http exchange to .dev/resty/listam-cli.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func createClient() *listam.Client {
	cfg, err := configutil.ReadConfig[Config]("listam.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	client, err := listam.NewClient(listam.ClientOptions{
		BaseUrl: cfg.BaseUrl,
		Proxy:   cfg.Proxy,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize client", err)
	}
	if *debugHttp {
		client.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/listam-cli"))
	}
	return client
}

func renderLinks(links map[string]listam.Link) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"href", "name"})
	for href, link := range links {
		t.AppendRow(table.Row{href, link.Name})
	}
	t.Render()
}
