package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSignupCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере MedKeeper
// с использованием email и пароля. Флаг --email обязателен;
// пароль можно передать флагом --password, прочитать из STDIN
// (--password-stdin) или ввести интерактивно.
//
// Пример использования:
//
//	medkeeper signup --email anna@example.com --password pw1
//
// В случае успешной регистрации пользователю выводится сообщение
// об успешном завершении операции.
func NewSignupCmd(app *App) *cobra.Command {
	var (
		email             string
		password          string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  medkeeper signup --email anna@example.com --password pw1
  echo "pw1" | medkeeper signup --email anna@example.com --password-stdin
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := resolvePassword(cmd, password, passwordFromStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			resp, err := c.Signup(email, pw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for signup")
	cmd.Flags().StringVar(&password, "password", "", "password for signup")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("email")

	return cmd
}
