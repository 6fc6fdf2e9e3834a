package cmd

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/imaging"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a screenshot of the device",
	Long: `Capture the device screen. The image is written to --output, or to stdout
as base64 when no file is given.

--annotate draws the bounding box of every on-screen element with its
centre coordinates, ready to pass to "tap".`,
	Args: cobra.NoArgs,
	RunE: runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().String("output", "", "Output file path (default: stdout as base64)")
	screenshotCmd.Flags().String("format", "png", "Output format: png, jpg")
	screenshotCmd.Flags().Int("quality", imaging.DefaultJPEGQuality, "JPEG quality 1-100")
	screenshotCmd.Flags().Int("width", 0, "Resize to this width in pixels (0 = original size)")
	screenshotCmd.Flags().Bool("points", false, "Resize to the screen width in points")
	screenshotCmd.Flags().String("annotate", "", "Draw element boxes labelled by: coords, index")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	quality, _ := cmd.Flags().GetInt("quality")
	width, _ := cmd.Flags().GetInt("width")
	points, _ := cmd.Flags().GetBool("points")
	annotate, _ := cmd.Flags().GetString("annotate")

	var mode imaging.LabelMode
	switch annotate {
	case "":
	case "coords":
		mode = imaging.LabelCoords
	case "index":
		mode = imaging.LabelIndex
	default:
		return fmt.Errorf("unsupported annotate mode: %s (use coords or index)", annotate)
	}

	ctx := cmd.Context()
	robot, _, err := resolveRobot(cmd)
	if err != nil {
		return err
	}

	data, err := robot.GetScreenshot(ctx)
	if err != nil {
		return err
	}
	if _, _, err := imaging.PNGDimensions(data); err != nil {
		return fmt.Errorf("device returned an invalid screenshot: %w", err)
	}

	if points || annotate != "" {
		size, err := robot.GetScreenSize(ctx)
		if err != nil {
			return err
		}
		if points {
			width = size.Width
		}
		if annotate != "" {
			elements, err := robot.GetElementsOnScreen(ctx)
			if err != nil {
				return err
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("decoding screenshot: %w", err)
			}
			var buf bytes.Buffer
			if err := png.Encode(&buf, imaging.Annotate(img, elements, size, mode)); err != nil {
				return fmt.Errorf("encoding annotated screenshot: %w", err)
			}
			data = buf.Bytes()
		}
	}

	data, _, err = imaging.Transform(data, imaging.Options{Width: width, Format: format, Quality: quality})
	if err != nil {
		return err
	}

	// Output to file or stdout
	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0644)
	}

	// Default: write to stdout as base64 for easy agent consumption
	encoder := base64.NewEncoder(base64.StdEncoding, os.Stdout)
	if _, err := encoder.Write(data); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	fmt.Println() // newline after base64
	return nil
}
