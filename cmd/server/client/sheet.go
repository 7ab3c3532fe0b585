package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	createMethod string
	createValues []int
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a sheet",
	Long: `Create a sheet. Attributes come from the server's default method unless
--method is given. Examples:

  create
  create --method 4d6_drop_lowest
  create --method explicit --values 15,14,13,12,10,8`,
	Args: cobra.NoArgs,
	RunE: createSheet,
}

var showCmd = &cobra.Command{
	Use:   "show [sheet-id]",
	Short: "Show a sheet with derived modifiers, eligibility and skill totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodGetSheet, map[string]interface{}{
			v1alpha1.FieldSheetID: args[0],
		}, renderSheetBody)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [sheet-id]",
	Short: "Delete a sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodDeleteSheet, map[string]interface{}{
			v1alpha1.FieldSheetID: args[0],
		}, renderDeleted)
	},
}

func init() {
	createCmd.Flags().StringVar(&createMethod, "method", "", "default, explicit, 3d6 or 4d6_drop_lowest")
	createCmd.Flags().IntSliceVar(&createValues, "values", nil,
		"six values in display order for the explicit method")
}

func createSheet(cmd *cobra.Command, _ []string) error {
	fields := map[string]interface{}{}
	if createMethod != "" {
		fields[v1alpha1.FieldMethod] = createMethod
	}

	if len(createValues) > 0 {
		if len(createValues) != sheet.AttributeCount {
			return fmt.Errorf("--values needs %d numbers, got %d", sheet.AttributeCount, len(createValues))
		}
		attrs := map[string]interface{}{}
		for i, attr := range sheet.AllAttributes {
			attrs[attr.String()] = createValues[i]
		}
		fields[v1alpha1.FieldAttributes] = attrs
	}

	return invoke(cmd, v1alpha1.MethodCreateSheet, fields, renderSheetBody)
}
