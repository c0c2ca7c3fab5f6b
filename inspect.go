package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/tagger/asset"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Display the format and pixel size of an image",
	Long:  "Show the encoded format, the header size and the size regions are measured in after EXIF orientation.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	filename := args[0]

	info, err := asset.Inspect(filename)
	if err != nil {
		return err
	}
	size, err := asset.Measure(filename)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Image Information")
	fmt.Fprintln(out, "=================")
	fmt.Fprintf(out, "File: %s\n", filename)
	fmt.Fprintf(out, "Format: %s\n", info.Format)
	fmt.Fprintf(out, "Header size: %dx%d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Region space: %gx%g\n", size.Width, size.Height)
	if int(size.Width) != info.Width || int(size.Height) != info.Height {
		fmt.Fprintln(out, "Note: EXIF orientation changes the displayed size")
	}
	return nil
}
