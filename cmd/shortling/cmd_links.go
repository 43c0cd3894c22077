package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shortling/shortling/cmd/shortling/ui"
	"github.com/shortling/shortling/pkg/core/domain"
)

var linksFilter string

var shortenCmd = &cobra.Command{
	Use:   "shorten URL",
	Short: "Create a short URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(consoleNotifier())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := requireAuth(a); err != nil {
			return err
		}

		link, err := a.links.Shorten(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		styles := ui.DefaultStyles()
		base := strings.TrimRight(a.cfg.APIBaseURL, "/")
		fmt.Println(styles.ShortURL.Render(base + "/" + link.ShortURL))
		fmt.Println(styles.Faint.Render("→ " + link.OriginalURL))
		return nil
	},
}

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List your short URLs",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(consoleNotifier())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := requireAuth(a); err != nil {
			return err
		}

		links, cached, err := a.links.List(cmd.Context())
		if err != nil {
			return err
		}

		styles := ui.DefaultStyles()
		if cached {
			fmt.Println(styles.Warning.Render("Backend unreachable, showing cached links."))
		}

		filtered := domain.FilterLinks(links, linksFilter)
		if len(filtered) == 0 {
			if linksFilter != "" {
				fmt.Println(styles.Faint.Render("No URLs match your search query"))
			} else {
				fmt.Println(styles.Faint.Render("You haven't created any short URLs yet"))
			}
			return nil
		}

		for _, link := range filtered {
			fmt.Printf("%s  %s  %s\n",
				styles.ShortURL.Render(link.ShortURL),
				link.OriginalURL,
				styles.Faint.Render(fmt.Sprintf("%d clicks · %s", link.ClickCount, link.CreatedDate.Format("Jan 02, 2006"))))
		}
		return nil
	},
}

func init() {
	linksCmd.Flags().StringVarP(&linksFilter, "filter", "f", "", "show only links matching this text")
}
