package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewListCmd создаёт CLI-команду вывода аптечки.
//
// Команда загружает все лекарства пользователя и печатает таблицу
// со сроком годности, оставшимися днями и статусом (expired/warning/safe).
//
// Пример использования:
//
//	medkeeper list
func NewListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Показать аптечку со статусами сроков годности",
		Long: `Выводит все лекарства пользователя со статусами.

Пример:
  medkeeper list
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: medkeeper login")
			}

			c := NewAPIClient(app.ServerURL)

			meds, err := c.ListMedicines(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			if len(meds) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "medicine cabinet is empty")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tBATCH\tEXPIRY\tQTY\tDAYS LEFT\tSTATUS")
			for _, m := range meds {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
					m.ID, m.Name, m.Batch, m.Expiry, m.Quantity, m.DaysLeft, m.Status)
			}
			return w.Flush()
		},
	}

	return cmd
}
