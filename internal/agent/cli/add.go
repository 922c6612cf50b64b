package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-medkeeper/internal/agent/api"
)

// NewAddCmd создаёт CLI-команду добавления лекарства в аптечку.
//
// Все поля обязательны. Валидацию значений (quantity — целое >= 0,
// expiry — YYYY-MM-DD) выполняет сервер; команда передаёт флаги как есть
// и показывает текст ошибки сервера.
//
// Обязательные флаги:
//
//	--name     — название лекарства
//	--batch    — номер партии
//	--expiry   — срок годности в формате YYYY-MM-DD
//	--barcode  — штрихкод упаковки
//	--quantity — количество (целое число >= 0)
//
// Пример использования:
//
//	medkeeper add --name Ibuprofen --batch B-17 --expiry 2026-12-01 --barcode 4601234567890 --quantity 10
func NewAddCmd(app *App) *cobra.Command {
	var (
		name     string
		batch    string
		expiry   string
		barcode  string
		quantity string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить лекарство в аптечку",
		Long: `Добавляет лекарство в аптечку на сервере.

Пример:
  medkeeper add --name Ibuprofen --batch B-17 --expiry 2026-12-01 --barcode 4601234567890 --quantity 10
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: medkeeper login")
			}

			c := NewAPIClient(app.ServerURL)

			resp, err := c.AddMedicine(app.Creds.AccessToken, api.AddMedicineRequest{
				Name:     name,
				Batch:    batch,
				Expiry:   expiry,
				Barcode:  barcode,
				Quantity: quantity,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "medicine name")
	cmd.Flags().StringVar(&batch, "batch", "", "batch number")
	cmd.Flags().StringVar(&expiry, "expiry", "", "expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&barcode, "barcode", "", "package barcode")
	cmd.Flags().StringVar(&quantity, "quantity", "", "quantity (integer >= 0)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("batch")
	cmd.MarkFlagRequired("expiry")
	cmd.MarkFlagRequired("barcode")
	cmd.MarkFlagRequired("quantity")

	return cmd
}
