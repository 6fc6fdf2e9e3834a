package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/output"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the elements on screen",
	Long: `Read the on-screen elements of the device: their type, text, label,
identifier and rect in device points. Tap the centre of a rect to
interact with an element.`,
	Args: cobra.NoArgs,
	RunE: runElements,
}

func init() {
	rootCmd.AddCommand(elementsCmd)
	elementsCmd.Flags().String("text", "", "Only include elements whose text, label, name, value or identifier contains this (case-insensitive)")
	elementsCmd.Flags().String("type", "", "Comma-separated element types to include (e.g. \"Button,TextField\")")
	elementsCmd.Flags().String("bbox", "", "Only include elements intersecting bounding box (x,y,w,h)")
}

func runElements(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	typeFlag, _ := cmd.Flags().GetString("type")
	bboxFlag, _ := cmd.Flags().GetString("bbox")

	var bbox *model.Rect
	if bboxFlag != "" {
		var err error
		if bbox, err = model.ParseRect(bboxFlag); err != nil {
			return err
		}
	}

	robot, dev, err := resolveRobot(cmd)
	if err != nil {
		return err
	}
	elements, err := robot.GetElementsOnScreen(cmd.Context())
	if err != nil {
		return err
	}

	elements = model.FilterByText(elements, text)
	elements = model.FilterByType(elements, splitList(typeFlag))
	elements = model.FilterByBounds(elements, bbox)
	if elements == nil {
		elements = []model.ScreenElement{}
	}

	return output.Print(output.ElementsResult{
		Device:   dev.ID,
		TS:       time.Now().UnixMilli(),
		Elements: elements,
	})
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
