package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCmd создаёт CLI-команду удаления лекарства.
//
// Идентификатор лекарства передаётся обязательным флагом --id.
// Если запись не найдена (или принадлежит другому пользователю),
// сервер возвращает ошибку not found.
//
// Пример использования:
//
//	medkeeper delete --id 1b5a...-uuid
func NewDeleteCmd(app *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Удалить лекарство по id",
		Long: `Удаляет лекарство из аптечки на сервере.

Пример:
  medkeeper delete --id <uuid>
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: medkeeper login")
			}

			c := NewAPIClient(app.ServerURL)

			resp, err := c.DeleteMedicine(app.Creds.AccessToken, id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "medicine id (uuid)")
	cmd.MarkFlagRequired("id")

	return cmd
}
