package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/billsplit/internal/render"
	"github.com/mmynk/billsplit/internal/splitter"
	"github.com/mmynk/billsplit/internal/storage/sqlite"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		name   string
		total  string
		people string
		fixes  []string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a bill once and print everyone's share",
		Example: `  billsplit split --total 100 --people 4
  billsplit split --total 100 --people 4 --fix 0=40 --name Dinner`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.formatter()
			if err != nil {
				return err
			}

			store, err := sqlite.New()
			if err != nil {
				return err
			}
			defer store.Close()

			sess := splitter.New("cli", store, a.cfg.Policy())
			if _, err := sess.Split(name, total, people); err != nil {
				return err
			}

			for _, fix := range fixes {
				id, value, err := parseFix(fix)
				if err != nil {
					return err
				}
				if _, err := sess.FixValue(id, value); err != nil {
					return err
				}
			}

			d := sess.Draft()
			if d.AccountName != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Bill: %s\n", d.AccountName)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", f.Amount(d.TotalValue))
			render.Participants(cmd.OutOrStdout(), f, d.Participants)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "bill name")
	cmd.Flags().StringVar(&total, "total", "", "bill total")
	cmd.Flags().StringVar(&people, "people", "", "number of people")
	cmd.Flags().StringArrayVar(&fixes, "fix", nil, "fix a share as <id>=<value>; repeatable, applied in order")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("people")
	return cmd
}

// parseFix splits "<id>=<value>". The value is parsed later by the session.
func parseFix(s string) (int, string, error) {
	idText, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, "", fmt.Errorf("invalid --fix %q: want <id>=<value>", s)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return 0, "", fmt.Errorf("invalid --fix %q: participant id must be a number", s)
	}
	return id, value, nil
}
