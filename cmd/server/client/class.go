package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var classCmd = &cobra.Command{
	Use:   "class",
	Short: "Inspect and select classes",
}

var classSelectCmd = &cobra.Command{
	Use:   "select [sheet-id] [class]",
	Short: "Select a class to view; eligibility is not required",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodSelectClass, map[string]interface{}{
			v1alpha1.FieldSheetID: args[0],
			v1alpha1.FieldClass:   args[1],
		}, renderSheetBody)
	},
}

var classClearCmd = &cobra.Command{
	Use:   "clear [sheet-id]",
	Short: "Clear the selected class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodClearSelectedClass, map[string]interface{}{
			v1alpha1.FieldSheetID: args[0],
		}, renderSheetBody)
	},
}

var classShowCmd = &cobra.Command{
	Use:   "show [class] [sheet-id]",
	Short: "Show a class's requirements, or its eligibility when a sheet is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return invoke(cmd, v1alpha1.MethodGetClassRequirements, map[string]interface{}{
				v1alpha1.FieldClass: args[0],
			}, renderRequirements)
		}
		return invoke(cmd, v1alpha1.MethodCheckEligibility, map[string]interface{}{
			v1alpha1.FieldClass:   args[0],
			v1alpha1.FieldSheetID: args[1],
		}, renderEligibility)
	},
}

func init() {
	classCmd.AddCommand(classSelectCmd)
	classCmd.AddCommand(classClearCmd)
	classCmd.AddCommand(classShowCmd)
}
