package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/output"
)

// WaitResult is the output of a wait command.
type WaitResult struct {
	OK       bool   `yaml:"ok"                  json:"ok"`
	Action   string `yaml:"action"              json:"action"`
	Device   string `yaml:"device"              json:"device"`
	Elapsed  string `yaml:"elapsed"             json:"elapsed"`
	Match    string `yaml:"match,omitempty"     json:"match,omitempty"`
	TimedOut bool   `yaml:"timed_out,omitempty" json:"timed_out,omitempty"`
}

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for an element to appear or disappear",
	Long:  "Poll the on-screen elements until a specified condition is met or timeout is reached.",
	Args:  cobra.NoArgs,
	RunE:  runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().String("for-text", "", "Wait for an element with this text, label, name, value or identifier (substring match)")
	waitCmd.Flags().String("for-type", "", "Wait for an element of this type (e.g. Button)")
	waitCmd.Flags().Bool("gone", false, "Invert: wait until the condition is NO LONGER true")
	waitCmd.Flags().Int("timeout", 30, "Max seconds to wait")
	waitCmd.Flags().Int("interval", 500, "Polling interval in milliseconds")
}

func runWait(cmd *cobra.Command, args []string) error {
	forText, _ := cmd.Flags().GetString("for-text")
	forType, _ := cmd.Flags().GetString("for-type")
	gone, _ := cmd.Flags().GetBool("gone")
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	intervalMs, _ := cmd.Flags().GetInt("interval")

	if forText == "" && forType == "" {
		return fmt.Errorf("specify at least one condition: --for-text or --for-type")
	}

	ctx := cmd.Context()
	robot, dev, err := resolveRobot(cmd)
	if err != nil {
		return err
	}

	timeout := time.Duration(timeoutSec) * time.Second
	interval := time.Duration(intervalMs) * time.Millisecond
	start := time.Now()
	deadline := start.Add(timeout)
	matchDesc := describeCondition(forText, forType, gone)

	for {
		elements, err := robot.GetElementsOnScreen(ctx)
		if err != nil {
			if time.Now().After(deadline) {
				return fmt.Errorf("timeout after %s (last error: %w)", timeout, err)
			}
		} else if matchesCondition(elements, forText, forType) != gone {
			return output.Print(WaitResult{
				OK:      true,
				Action:  "wait",
				Device:  dev.ID,
				Elapsed: fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
				Match:   matchDesc,
			})
		}

		if time.Now().After(deadline) {
			// Print the result, then return an error for non-zero exit code
			_ = output.Print(WaitResult{
				Action:   "wait",
				Device:   dev.ID,
				Elapsed:  fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
				Match:    matchDesc,
				TimedOut: true,
			})
			return fmt.Errorf("timed out waiting for condition: %s", matchDesc)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// matchesCondition reports whether any element satisfies both the text and
// type criteria. Empty criteria match everything.
func matchesCondition(elements []model.ScreenElement, forText, forType string) bool {
	elements = model.FilterByText(elements, forText)
	if forType != "" {
		elements = model.FilterByType(elements, []string{forType})
	}
	return len(elements) > 0
}

func describeCondition(forText, forType string, gone bool) string {
	var parts []string
	if forText != "" {
		parts = append(parts, fmt.Sprintf("text=%q", forText))
	}
	if forType != "" {
		parts = append(parts, fmt.Sprintf("type=%q", forType))
	}
	desc := strings.Join(parts, " ")
	if gone {
		desc += " gone"
	}
	return desc
}
