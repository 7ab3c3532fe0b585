package client

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

func printJSON(cmd *cobra.Command, body []byte) error {
	_, err := cmd.OutOrStdout().Write(pretty.Pretty(body))
	return err
}

// renderSheetBody prints the "sheet" object of a response
func renderSheetBody(cmd *cobra.Command, body []byte) error {
	return renderSheet(cmd.OutOrStdout(), gjson.GetBytes(body, "sheet"))
}

func renderSheet(w io.Writer, s gjson.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Sheet %s\n\n", s.Get("sheet_id").String())

	fmt.Fprintln(tw, "ATTRIBUTE\tVALUE\tMOD")
	s.Get("attributes").ForEach(func(_, a gjson.Result) bool {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", a.Get("name").String(), a.Get("value").Int(), signed(a.Get("modifier").Int()))
		return true
	})

	fmt.Fprintln(tw, "\nCLASS\tELIGIBLE\tREQUIRES")
	s.Get("classes").ForEach(func(_, c gjson.Result) bool {
		marker := ""
		if c.Get("name").String() == s.Get("selected_class.name").String() {
			marker = " *"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\n",
			c.Get("name").String(), marker, yesNo(c.Get("eligible").Bool()), requirements(c.Get("requirements")))
		return true
	})

	fmt.Fprintf(tw, "\nSKILL\tPOINTS\tMOD\tTOTAL\n")
	s.Get("skills").ForEach(func(_, sk gjson.Result) bool {
		if !sk.Get("allocated").Bool() {
			return true
		}
		fmt.Fprintf(tw, "%s (%s)\t%d\t%s\t%d\n",
			sk.Get("name").String(), abbreviate(sk.Get("attribute").String()),
			sk.Get("points").Int(), signed(sk.Get("modifier").Int()), sk.Get("total").Int())
		return true
	})

	fmt.Fprintf(tw, "\nSkill points: %d spent of %d\n",
		s.Get("spent_skill_points").Int(), s.Get("available_skill_points").Int())

	return tw.Flush()
}

func renderRequirements(cmd *cobra.Command, body []byte) error {
	res := gjson.ParseBytes(body)
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s requires %s\n",
		res.Get("class").String(), requirements(res.Get("requirements")))
	return err
}

func renderEligibility(cmd *cobra.Command, body []byte) error {
	res := gjson.ParseBytes(body)
	if res.Get("eligible").Bool() {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: eligible\n", res.Get("class").String())
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: not eligible, needs %s\n",
		res.Get("class").String(), requirements(res.Get("unmet")))
	return err
}

func renderDeleted(cmd *cobra.Command, _ []byte) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), "Sheet deleted")
	return err
}

func requirements(reqs gjson.Result) string {
	var parts []string
	reqs.ForEach(func(_, r gjson.Result) bool {
		parts = append(parts, fmt.Sprintf("%s %d", abbreviate(r.Get("attribute").String()), r.Get("minimum").Int()))
		return true
	})
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func abbreviate(attribute string) string {
	if len(attribute) < 3 {
		return attribute
	}
	return attribute[:3]
}

func signed(n int64) string {
	if n >= 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
