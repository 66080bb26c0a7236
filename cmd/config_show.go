package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tpsify/tpsify/internal/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active profile's site patterns in detail",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := config.LoadMerged(config.Options{
			IgnoreConfig: flagIgnoreConfig,
			Debug:        flagDebug,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Config: %s\n\n", used)

		for _, p := range cfg.Sites {
			fmt.Printf("host: %s\n", p.Host)
			for _, r := range p.Rules {
				switch {
				case r.Label != "":
					fmt.Printf("  [%s] number=%q label=%q\n", r.Kind, r.Number, r.Label)
				case r.Cell != "":
					fmt.Printf("  [%s] number=%q cell=%q value=%q\n", r.Kind, r.Number, r.Cell, r.ValueSelector())
				default:
					fmt.Printf("  [%s] number=%q\n", r.Kind, r.Number)
				}
			}
			if len(p.Watch) > 0 {
				fmt.Printf("  watch: %v\n", p.Watch)
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
