package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var attrCmd = &cobra.Command{
	Use:   "attr",
	Short: "Change attributes",
}

var attrIncCmd = &cobra.Command{
	Use:     "inc [sheet-id] [attribute]",
	Short:   "Raise an attribute by one",
	Example: "  attr inc sheet_1234 Strength",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodIncrementAttribute, attributeFields(args), renderSheetBody)
	},
}

var attrDecCmd = &cobra.Command{
	Use:     "dec [sheet-id] [attribute]",
	Short:   "Lower an attribute by one",
	Example: "  attr dec sheet_1234 Charisma",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodDecrementAttribute, attributeFields(args), renderSheetBody)
	},
}

func init() {
	attrCmd.AddCommand(attrIncCmd)
	attrCmd.AddCommand(attrDecCmd)
}

func attributeFields(args []string) map[string]interface{} {
	return map[string]interface{}{
		v1alpha1.FieldSheetID:   args[0],
		v1alpha1.FieldAttribute: args[1],
	}
}
