package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Spend and refund skill points",
}

var skillIncCmd = &cobra.Command{
	Use:     "inc [sheet-id] [skill]",
	Short:   "Add a point to a skill",
	Example: "  skill inc sheet_1234 sleight-of-hand",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodIncrementSkill, skillFields(args), renderSheetBody)
	},
}

var skillDecCmd = &cobra.Command{
	Use:   "dec [sheet-id] [skill]",
	Short: "Remove a point from a skill",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodDecrementSkill, skillFields(args), renderSheetBody)
	},
}

func init() {
	skillCmd.AddCommand(skillIncCmd)
	skillCmd.AddCommand(skillDecCmd)
}

func skillFields(args []string) map[string]interface{} {
	return map[string]interface{}{
		v1alpha1.FieldSheetID: args[0],
		v1alpha1.FieldSkill:   args[1],
	}
}
