package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/billsplit/internal/render"
	"github.com/mmynk/billsplit/internal/splitter"
	"github.com/mmynk/billsplit/internal/storage/sqlite"
)

const shellHelp = `Commands:
  name <text>          set the bill name
  total <amount>       set the bill total
  people <n>           set the number of people
  create               split the total evenly
  fix <id> <amount>    fix one person's share and split the rest
  show                 print the current bill
  finalize             save the bill to history and start over
  history              print finalized bills
  help                 show this help
  quit                 leave the shell (history is discarded)
`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Split bills interactively; history lasts until you quit",
		Args:  cobra.NoArgs,
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

			sh := &shell{
				sess:   splitter.New("shell", store, a.cfg.Policy()),
				format: f,
				out:    cmd.OutOrStdout(),
			}
			return sh.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// shell reads one command per line and applies it to a session.
type shell struct {
	sess   *splitter.Session
	format *render.Formatter
	out    io.Writer
}

func (sh *shell) run(ctx context.Context, in io.Reader) error {
	fmt.Fprint(sh.out, "billsplit shell. Type 'help' for commands.\n> ")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			quit, err := sh.exec(ctx, line)
			if err != nil {
				fmt.Fprintf(sh.out, "error: %v\n", err)
			}
			if quit {
				return nil
			}
		}
		fmt.Fprint(sh.out, "> ")
	}
	fmt.Fprintln(sh.out)
	return scanner.Err()
}

// exec runs one command line. Errors are reported to the user and the shell continues.
func (sh *shell) exec(ctx context.Context, line string) (quit bool, err error) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "name":
		sh.sess.SetAccountName(rest)
	case "total":
		return false, sh.sess.SetTotal(rest)
	case "people":
		return false, sh.sess.SetNumPeople(rest)
	case "create":
		ps, err := sh.sess.CreateSplit()
		if err != nil {
			return false, err
		}
		render.Participants(sh.out, sh.format, ps)
	case "fix":
		idText, value, ok := strings.Cut(rest, " ")
		if !ok {
			return false, fmt.Errorf("usage: fix <id> <amount>")
		}
		id, err := strconv.Atoi(idText)
		if err != nil {
			return false, fmt.Errorf("participant id must be a number: %q", idText)
		}
		ps, err := sh.sess.FixValue(id, value)
		if err != nil {
			return false, err
		}
		render.Participants(sh.out, sh.format, ps)
	case "show":
		d := sh.sess.Draft()
		name := d.AccountName
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(sh.out, "%s: total %s, %d people\n", name, sh.format.Amount(d.TotalValue), d.NumPeople)
		render.Participants(sh.out, sh.format, d.Participants)
	case "finalize":
		bill, err := sh.sess.Finalize(ctx)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(sh.out, "Finalized %q (%s).\n", bill.Name, sh.format.Amount(bill.TotalValue))
	case "history":
		bills, err := sh.sess.History(ctx)
		if err != nil {
			return false, err
		}
		render.History(sh.out, sh.format, bills)
	case "help", "?":
		fmt.Fprint(sh.out, shellHelp)
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
	return false, nil
}
